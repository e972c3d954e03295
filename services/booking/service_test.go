package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"alabraar/models"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(user *models.User) error { return errors.New("not implemented") }
func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}
func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return f.GetByID(id)
}
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeUserRepo) Update(user *models.User) error { return nil }
func (f *fakeUserRepo) UpdateFields(id string, fields bson.M) error { return nil }
func (f *fakeUserRepo) Delete(id string) error { return nil }
func (f *fakeUserRepo) ListByRole(role string) ([]models.User, error) { return nil, nil }
func (f *fakeUserRepo) ListApprovedUstaadhs() ([]models.User, error) { return nil, nil }

// fakeAvailability declares a fixed set of free windows per date.
type fakeAvailability struct {
	free map[string][]string // date -> "HH:MM-HH:MM"
}

func (f *fakeAvailability) GetAvailability(ctx context.Context, ustaadhID string) ([]models.AvailabilitySlot, error) {
	return nil, nil
}
func (f *fakeAvailability) SetAvailability(ctx context.Context, ustaadhID string, slots []models.AvailabilitySlot) ([]models.AvailabilitySlot, error) {
	return nil, nil
}
func (f *fakeAvailability) GetAvailableTimeSlots(ctx context.Context, ustaadhID, date string) ([]models.TimeWindow, error) {
	return nil, nil
}
func (f *fakeAvailability) GetBookedSlots(ctx context.Context, ustaadhID, date string) ([]models.TimeWindow, error) {
	return nil, nil
}
func (f *fakeAvailability) CheckSlotAvailability(ctx context.Context, ustaadhID, date, startTime, endTime string) (bool, error) {
	for _, w := range f.free[date] {
		if w == startTime+"-"+endTime {
			return true, nil
		}
	}
	return false, nil
}

type fakeBookingRepo struct {
	bookings    map[string]*models.Booking
	created     *models.Booking
	createdRes  []models.SlotReservation
	updated     map[string]bson.M
	slotUpdates []string // "bookingID/slotID/status"
	released    []string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[string]*models.Booking),
		updated:  make(map[string]bson.M),
	}
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, mongo.ErrNoDocuments
}
func (f *fakeBookingRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListByUstaadh(ctx context.Context, ustaadhID string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) UpdateFields(ctx context.Context, id string, fields bson.M) error {
	f.updated[id] = fields
	return nil
}
func (f *fakeBookingRepo) UpdateSlotStatus(ctx context.Context, bookingID, slotID, status string) error {
	f.slotUpdates = append(f.slotUpdates, bookingID+"/"+slotID+"/"+status)
	return nil
}
func (f *fakeBookingRepo) GetReservedWindows(ctx context.Context, ustaadhID, date string) ([]models.SlotReservation, error) {
	return nil, nil
}
func (f *fakeBookingRepo) CreateBookingTransactionally(ctx context.Context, booking *models.Booking, reservations []models.SlotReservation) error {
	f.created = booking
	f.createdRes = reservations
	f.bookings[booking.ID] = booking
	return nil
}
func (f *fakeBookingRepo) ReleaseReservations(ctx context.Context, bookingID string) error {
	f.released = append(f.released, bookingID)
	return nil
}
func (f *fakeBookingRepo) ReleaseSlotReservation(ctx context.Context, bookingID, date string, start int) error {
	f.released = append(f.released, bookingID+"/"+date)
	return nil
}
func (f *fakeBookingRepo) ListSweepCandidates(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func validInput() models.BookingInput {
	return models.BookingInput{
		UstaadhID:          "u1",
		PackageType:        models.PackageBasic,
		HoursPerDay:        1,
		DaysPerWeek:        2,
		SubscriptionMonths: 1,
		StartDate:          "2026-01-05",
		EndDate:            "2026-02-05",
		Schedule: []models.ScheduleSlot{
			{Date: "2026-01-05", StartTime: "09:00", EndTime: "10:00"},
			{Date: "2026-01-07", StartTime: "09:00", EndTime: "10:00"},
		},
	}
}

func newTestBookingService(repo *fakeBookingRepo, avail *fakeAvailability) *DefaultBookingService {
	return &DefaultBookingService{
		Repo: repo,
		Users: &fakeUserRepo{users: map[string]*models.User{
			"u1": {ID: "u1", Role: models.RoleUstaadh, Approved: true},
			"u2": {ID: "u2", Role: models.RoleUstaadh, Approved: false},
			"s1": {ID: "s1", Role: models.RoleStudent},
		}},
		Availability: avail,
	}
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	avail := &fakeAvailability{free: map[string][]string{
		"2026-01-05": {"09:00-10:00"},
		"2026-01-07": {"09:00-10:00"},
	}}
	svc := newTestBookingService(repo, avail)

	got, err := svc.CreateBooking(context.Background(), "s1", validInput())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if got.Status != models.BookingPending || got.PaymentStatus != models.PaymentPending {
		t.Errorf("new booking status = %s/%s, want pending/pending", got.Status, got.PaymentStatus)
	}
	if got.TotalAmount != 64 {
		t.Errorf("TotalAmount = %v, want 64", got.TotalAmount)
	}
	if len(repo.createdRes) != 2 {
		t.Fatalf("wrote %d reservations, want 2", len(repo.createdRes))
	}
	for _, r := range repo.createdRes {
		if r.BookingID != got.ID {
			t.Errorf("reservation bookingID = %s, want %s", r.BookingID, got.ID)
		}
		if r.UstaadhID != "u1" || r.Start != 540 || r.End != 600 {
			t.Errorf("reservation = %+v", r)
		}
	}
	for _, slot := range got.Schedule {
		if slot.ID == "" || slot.Status != models.SlotScheduled {
			t.Errorf("schedule slot missing id or status: %+v", slot)
		}
	}
}

func TestCreateBookingRejectsConflictAllOrNothing(t *testing.T) {
	repo := newFakeBookingRepo()
	// Second slot's window is taken.
	avail := &fakeAvailability{free: map[string][]string{
		"2026-01-05": {"09:00-10:00"},
	}}
	svc := newTestBookingService(repo, avail)

	_, err := svc.CreateBooking(context.Background(), "s1", validInput())
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("error = %v, want *ConflictError", err)
	}
	if conflict.Date != "2026-01-07" {
		t.Errorf("conflict date = %s, want 2026-01-07", conflict.Date)
	}
	if repo.created != nil {
		t.Error("booking was persisted despite a conflicting slot")
	}
}

func TestCreateBookingRejectsUnapprovedUstaadh(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestBookingService(repo, &fakeAvailability{})

	input := validInput()
	input.UstaadhID = "u2"
	if _, err := svc.CreateBooking(context.Background(), "s1", input); err == nil {
		t.Fatal("CreateBooking accepted an unapproved ustaadh")
	}
	if repo.created != nil {
		t.Error("booking was persisted")
	}
}

func TestCreateBookingRejectsSlotOutsidePeriod(t *testing.T) {
	repo := newFakeBookingRepo()
	avail := &fakeAvailability{free: map[string][]string{"2026-03-01": {"09:00-10:00"}}}
	svc := newTestBookingService(repo, avail)

	input := validInput()
	input.Schedule = []models.ScheduleSlot{{Date: "2026-03-01", StartTime: "09:00", EndTime: "10:00"}}
	if _, err := svc.CreateBooking(context.Background(), "s1", input); err == nil {
		t.Fatal("CreateBooking accepted a slot past the booking period")
	}
}

func TestCreateBookingRejectsInvalidInput(t *testing.T) {
	svc := newTestBookingService(newFakeBookingRepo(), &fakeAvailability{})

	input := validInput()
	input.PackageType = "gold"
	if _, err := svc.CreateBooking(context.Background(), "s1", input); err == nil {
		t.Error("CreateBooking accepted unknown package type")
	}

	input = validInput()
	input.EndDate = "2025-12-01"
	if _, err := svc.CreateBooking(context.Background(), "s1", input); err == nil {
		t.Error("CreateBooking accepted endDate before startDate")
	}
}

func TestUpdateStatusEnforcesStateMachine(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{ID: "b1", Status: models.BookingCompleted}
	svc := newTestBookingService(repo, &fakeAvailability{})

	_, err := svc.UpdateStatus(context.Background(), "b1", models.BookingCancelled)
	var terr *TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v, want *TransitionError", err)
	}
	if terr.From != models.BookingCompleted || terr.To != models.BookingCancelled {
		t.Errorf("transition = %s -> %s", terr.From, terr.To)
	}
}

func TestCancelBookingReleasesReservations(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{ID: "b1", Status: models.BookingConfirmed}
	svc := newTestBookingService(repo, &fakeAvailability{})

	got, err := svc.CancelBooking(context.Background(), "b1", "student moved away")
	if err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if got.Status != models.BookingCancelled || got.CancelReason == "" {
		t.Errorf("cancelled booking = %+v", got)
	}
	if len(repo.released) != 1 || repo.released[0] != "b1" {
		t.Errorf("released = %v, want [b1]", repo.released)
	}
}

func TestGetBookingNotFound(t *testing.T) {
	svc := newTestBookingService(newFakeBookingRepo(), &fakeAvailability{})

	if _, err := svc.GetBooking(context.Background(), "nope"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("error = %v, want ErrBookingNotFound", err)
	}
}

func TestSettlePaymentSuccessConfirms(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{
		ID:            "b1",
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
	}
	svc := newTestBookingService(repo, &fakeAvailability{})

	got, err := svc.SettlePayment(context.Background(), "b1", true)
	if err != nil {
		t.Fatalf("SettlePayment: %v", err)
	}
	if got.Status != models.BookingConfirmed || got.PaymentStatus != models.PaymentPaid {
		t.Errorf("settled booking = %s/%s, want confirmed/paid", got.Status, got.PaymentStatus)
	}
}

func TestSettlePaymentFailureKeepsPending(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{
		ID:            "b1",
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
	}
	svc := newTestBookingService(repo, &fakeAvailability{})

	got, err := svc.SettlePayment(context.Background(), "b1", false)
	if err != nil {
		t.Fatalf("SettlePayment: %v", err)
	}
	if got.Status != models.BookingPending || got.PaymentStatus != models.PaymentFailed {
		t.Errorf("settled booking = %s/%s, want pending/failed", got.Status, got.PaymentStatus)
	}
}

type fakePaymentHandler struct {
	requests []models.PaymentRequest
}

func (f *fakePaymentHandler) CreateIntent(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	f.requests = append(f.requests, req)
	return &models.Invoice{
		InvoiceID: "inv1",
		BookingID: req.BookingID,
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    models.PaymentPending,
	}, nil
}

func TestCreatePaymentIntentRetryAfterFailure(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{
		ID:            "b1",
		StudentID:     "s1",
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentFailed,
		TotalAmount:   64,
		Currency:      "usd",
	}
	payments := &fakePaymentHandler{}
	svc := newTestBookingService(repo, &fakeAvailability{})
	svc.Payments = payments

	inv, err := svc.CreatePaymentIntent(context.Background(), "b1")
	if err != nil {
		t.Fatalf("CreatePaymentIntent after failed attempt: %v", err)
	}
	if inv.BookingID != "b1" || len(payments.requests) != 1 {
		t.Errorf("intent = %+v, requests = %d", inv, len(payments.requests))
	}
}

func TestCreatePaymentIntentRejectsPaidBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{
		ID:            "b1",
		Status:        models.BookingConfirmed,
		PaymentStatus: models.PaymentPaid,
	}
	svc := newTestBookingService(repo, &fakeAvailability{})
	svc.Payments = &fakePaymentHandler{}

	if _, err := svc.CreatePaymentIntent(context.Background(), "b1"); err == nil {
		t.Error("CreatePaymentIntent on paid booking succeeded, want error")
	}
}

func TestSweepMissedSlots(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{
		ID:      "b1",
		Status:  models.BookingConfirmed,
		EndDate: "2026-01-06",
		Schedule: []models.ScheduleSlot{
			{ID: "s1", Date: "2026-01-05", StartTime: "09:00", EndTime: "10:00", Status: models.SlotScheduled},
			{ID: "s2", Date: "2026-01-05", StartTime: "11:00", EndTime: "12:00", Status: models.SlotCompleted},
		},
	}
	svc := newTestBookingService(repo, &fakeAvailability{})

	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	swept, err := svc.SweepMissedSlots(context.Background(), now)
	if err != nil {
		t.Fatalf("SweepMissedSlots: %v", err)
	}
	if swept != 1 {
		t.Errorf("swept = %d, want 1", swept)
	}
	if len(repo.slotUpdates) != 1 || repo.slotUpdates[0] != "b1/s1/missed" {
		t.Errorf("slot updates = %v", repo.slotUpdates)
	}
	// Past its period with nothing scheduled left, the booking completes.
	if fields, ok := repo.updated["b1"]; !ok || fields["status"] != models.BookingCompleted {
		t.Errorf("booking completion update = %v", repo.updated["b1"])
	}
}
