package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	achievementRepo "alabraar/database/repository/achievement"
	"alabraar/models"
	"alabraar/utils"

	"go.uber.org/zap"
)

// AchievementService awards and lists badges. Awarding is idempotent on the
// (userID, type, title) triple, so repeated triggers are harmless.
type AchievementService interface {
	Award(ctx context.Context, userID, achievementType, title string, metadata map[string]interface{}) (*models.Achievement, error)
	ListForUser(ctx context.Context, userID string) ([]models.Achievement, error)
}

// DefaultAchievementService implements AchievementService.
type DefaultAchievementService struct {
	Repo achievementRepo.AchievementRepository
}

func (s *DefaultAchievementService) Award(ctx context.Context, userID, achievementType, title string, metadata map[string]interface{}) (*models.Achievement, error) {
	switch achievementType {
	case models.AchievementStreak, models.AchievementMilestone, models.AchievementReviewer,
		models.AchievementLoyalty, models.AchievementProgress:
	default:
		return nil, fmt.Errorf("unknown achievement type %q", achievementType)
	}
	if title == "" {
		return nil, fmt.Errorf("achievement title is required")
	}

	achievement := &models.Achievement{
		ID:       uuid.New().String(),
		UserID:   userID,
		Type:     achievementType,
		Title:    title,
		EarnedAt: time.Now(),
		Metadata: metadata,
	}

	stored, created, err := s.Repo.CreateIfAbsent(ctx, achievement)
	if err != nil {
		return nil, err
	}
	if created {
		utils.GetLogger().Info("achievement awarded",
			zap.String("userID", userID),
			zap.String("type", achievementType),
			zap.String("title", title))
	}
	return stored, nil
}

func (s *DefaultAchievementService) ListForUser(ctx context.Context, userID string) ([]models.Achievement, error) {
	return s.Repo.ListByUser(ctx, userID)
}
