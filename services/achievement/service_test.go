package achievement

import (
	"context"
	"testing"

	"alabraar/models"
)

type fakeAchievementRepo struct {
	records map[string]*models.Achievement // keyed by userID/type/title
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{records: make(map[string]*models.Achievement)}
}

func (f *fakeAchievementRepo) CreateIfAbsent(ctx context.Context, a *models.Achievement) (*models.Achievement, bool, error) {
	key := a.UserID + "/" + a.Type + "/" + a.Title
	if existing, ok := f.records[key]; ok {
		return existing, false, nil
	}
	f.records[key] = a
	return a, true, nil
}

func (f *fakeAchievementRepo) ListByUser(ctx context.Context, userID string) ([]models.Achievement, error) {
	var out []models.Achievement
	for _, a := range f.records {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func TestAwardIsIdempotent(t *testing.T) {
	repo := newFakeAchievementRepo()
	svc := &DefaultAchievementService{Repo: repo}
	ctx := context.Background()

	first, err := svc.Award(ctx, "u1", models.AchievementStreak, "7-day streak", nil)
	if err != nil {
		t.Fatalf("first Award: %v", err)
	}
	repeat, err := svc.Award(ctx, "u1", models.AchievementStreak, "7-day streak", nil)
	if err != nil {
		t.Fatalf("repeat Award: %v", err)
	}
	if repeat.ID != first.ID {
		t.Errorf("repeat award ID = %s, want stored %s", repeat.ID, first.ID)
	}

	got, err := svc.ListForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("repeated award produced %d records, want 1", len(got))
	}
}

func TestAwardDistinctTitlesAccumulate(t *testing.T) {
	repo := newFakeAchievementRepo()
	svc := &DefaultAchievementService{Repo: repo}
	ctx := context.Background()

	for _, title := range []string{"7-day streak", "30-day streak"} {
		if _, err := svc.Award(ctx, "u1", models.AchievementStreak, title, nil); err != nil {
			t.Fatalf("Award(%s): %v", title, err)
		}
	}
	got, _ := svc.ListForUser(ctx, "u1")
	if len(got) != 2 {
		t.Errorf("got %d records, want 2", len(got))
	}
}

func TestAwardValidatesInput(t *testing.T) {
	svc := &DefaultAchievementService{Repo: newFakeAchievementRepo()}
	ctx := context.Background()

	if _, err := svc.Award(ctx, "u1", "participation", "showed up", nil); err == nil {
		t.Error("Award accepted unknown type")
	}
	if _, err := svc.Award(ctx, "u1", models.AchievementMilestone, "", nil); err == nil {
		t.Error("Award accepted empty title")
	}
}
