package models

import "time"

// Achievement types.
const (
	AchievementStreak    = "streak"
	AchievementMilestone = "milestone"
	AchievementReviewer  = "reviewer"
	AchievementLoyalty   = "loyalty"
	AchievementProgress  = "progress"
)

// Achievement is a badge earned by a user. Creation is idempotent on the
// (UserID, Type, Title) triple.
type Achievement struct {
	ID       string                 `bson:"id" json:"id"`
	UserID   string                 `bson:"userId" json:"userId"`
	Type     string                 `bson:"type" json:"type"`
	Title    string                 `bson:"title" json:"title"`
	EarnedAt time.Time              `bson:"earnedAt" json:"earnedAt"`
	Metadata map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}
