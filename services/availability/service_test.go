package availability

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"alabraar/models"
)

// 2026-01-05 is a Monday (dayOfWeek 1).
const testDate = "2026-01-05"

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

type fakeAvailabilityRepo struct {
	slots       []models.AvailabilitySlot
	replaceCall int
}

func (f *fakeAvailabilityRepo) GetByUstaadh(ctx context.Context, ustaadhID string) ([]models.AvailabilitySlot, error) {
	return f.slots, nil
}
func (f *fakeAvailabilityRepo) ReplaceAll(ctx context.Context, ustaadhID string, slots []models.AvailabilitySlot) error {
	f.replaceCall++
	f.slots = slots
	return nil
}

type fakeBookingRepo struct {
	reserved []models.SlotReservation
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeBookingRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListByUstaadh(ctx context.Context, ustaadhID string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) UpdateFields(ctx context.Context, id string, fields bson.M) error {
	return nil
}
func (f *fakeBookingRepo) UpdateSlotStatus(ctx context.Context, bookingID, slotID, status string) error {
	return nil
}
func (f *fakeBookingRepo) GetReservedWindows(ctx context.Context, ustaadhID, date string) ([]models.SlotReservation, error) {
	var out []models.SlotReservation
	for _, r := range f.reserved {
		if r.UstaadhID == ustaadhID && r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeBookingRepo) CreateBookingTransactionally(ctx context.Context, booking *models.Booking, reservations []models.SlotReservation) error {
	return nil
}
func (f *fakeBookingRepo) ReleaseReservations(ctx context.Context, bookingID string) error {
	return nil
}
func (f *fakeBookingRepo) ReleaseSlotReservation(ctx context.Context, bookingID, date string, start int) error {
	return nil
}
func (f *fakeBookingRepo) ListSweepCandidates(ctx context.Context, date string) ([]models.Booking, error) {
	return nil, nil
}

func newTestService(template []models.AvailabilitySlot, reserved []models.SlotReservation) (*DefaultAvailabilityService, *fakeAvailabilityRepo) {
	repo := &fakeAvailabilityRepo{slots: template}
	svc := &DefaultAvailabilityService{
		Repo:     repo,
		Bookings: &fakeBookingRepo{reserved: reserved},
		Users: &fakeUserRepo{users: map[string]*models.User{
			"u1": {ID: "u1", Role: models.RoleUstaadh, Approved: true},
			"s1": {ID: "s1", Role: models.RoleStudent},
		}},
	}
	return svc, repo
}

func TestGetAvailableTimeSlotsSubtractsReservations(t *testing.T) {
	template := []models.AvailabilitySlot{
		{UstaadhID: "u1", DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
	}
	reserved := []models.SlotReservation{
		{UstaadhID: "u1", Date: testDate, Start: 600, End: 660},
	}
	svc, _ := newTestService(template, reserved)

	got, err := svc.GetAvailableTimeSlots(context.Background(), "u1", testDate)
	if err != nil {
		t.Fatalf("GetAvailableTimeSlots: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d windows, want 2: %v", len(got), got)
	}
	if got[0].StartTime != "09:00" || got[0].EndTime != "10:00" {
		t.Errorf("first window = %s-%s, want 09:00-10:00", got[0].StartTime, got[0].EndTime)
	}
	if got[1].StartTime != "11:00" || got[1].EndTime != "12:00" {
		t.Errorf("second window = %s-%s, want 11:00-12:00", got[1].StartTime, got[1].EndTime)
	}
}

func TestGetAvailableTimeSlotsSkipsOtherWeekdays(t *testing.T) {
	template := []models.AvailabilitySlot{
		{UstaadhID: "u1", DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
		{UstaadhID: "u1", DayOfWeek: 1, StartTime: "14:00", EndTime: "15:00", IsAvailable: false},
	}
	svc, _ := newTestService(template, nil)

	got, err := svc.GetAvailableTimeSlots(context.Background(), "u1", testDate)
	if err != nil {
		t.Fatalf("GetAvailableTimeSlots: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want no windows on a Monday", got)
	}
}

func TestCheckSlotAvailability(t *testing.T) {
	template := []models.AvailabilitySlot{
		{UstaadhID: "u1", DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
	}
	reserved := []models.SlotReservation{
		{UstaadhID: "u1", Date: testDate, Start: 600, End: 660},
	}
	svc, _ := newTestService(template, reserved)
	ctx := context.Background()

	cases := []struct {
		start, end string
		want       bool
	}{
		{"09:00", "10:00", true},
		{"11:00", "12:00", true},
		{"10:30", "11:30", false},
		{"08:00", "09:30", false},
		{"12:00", "13:00", false},
	}
	for _, tc := range cases {
		got, err := svc.CheckSlotAvailability(ctx, "u1", testDate, tc.start, tc.end)
		if err != nil {
			t.Fatalf("CheckSlotAvailability(%s-%s): %v", tc.start, tc.end, err)
		}
		if got != tc.want {
			t.Errorf("CheckSlotAvailability(%s-%s) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestCheckSlotAvailabilityMalformedTimes(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	_, err := svc.CheckSlotAvailability(context.Background(), "u1", testDate, "9am", "10:00")
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("error = %v, want ErrMalformed", err)
	}
	_, err = svc.CheckSlotAvailability(context.Background(), "u1", testDate, "11:00", "10:00")
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("inverted range error = %v, want ErrMalformed", err)
	}
}

func TestSetAvailabilityRejectsInvalidBatchWithoutWriting(t *testing.T) {
	existing := []models.AvailabilitySlot{
		{UstaadhID: "u1", DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", IsAvailable: true},
	}
	svc, repo := newTestService(existing, nil)

	bad := []models.AvailabilitySlot{
		{UstaadhID: "u1", DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00", IsAvailable: true},
		{UstaadhID: "u1", DayOfWeek: 1, StartTime: "10:00", EndTime: "12:00", IsAvailable: true},
	}
	if _, err := svc.SetAvailability(context.Background(), "u1", bad); err == nil {
		t.Fatal("SetAvailability accepted an overlapping batch")
	}
	if repo.replaceCall != 0 {
		t.Errorf("ReplaceAll called %d times on invalid input, want 0", repo.replaceCall)
	}
	if len(repo.slots) != 1 {
		t.Errorf("prior template mutated: %v", repo.slots)
	}
}

func TestServiceRejectsUnknownUstaadh(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	if _, err := svc.GetAvailability(context.Background(), "missing"); !errors.Is(err, ErrUstaadhNotFound) {
		t.Errorf("GetAvailability error = %v, want ErrUstaadhNotFound", err)
	}
	// A student id is not a bookable ustaadh either.
	if _, err := svc.GetAvailability(context.Background(), "s1"); !errors.Is(err, ErrUstaadhNotFound) {
		t.Errorf("GetAvailability(student) error = %v, want ErrUstaadhNotFound", err)
	}
}
