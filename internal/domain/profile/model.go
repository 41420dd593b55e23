package profile

import "time"

// ClubProfile is the per-(club,user) preference record, materialized lazily
// on first read from the user's defaults. The (club,user) pair is unique at
// the storage layer.
type ClubProfile struct {
	ID          string        `gorm:"type:uuid;primaryKey"`
	ClubID      string        `gorm:"type:uuid;not null;uniqueIndex:uk_club_profiles_club_user"`
	UserID      string        `gorm:"type:uuid;not null;uniqueIndex:uk_club_profiles_club_user"`
	BudgetLimit float64       `gorm:"type:numeric(10,2);not null"`
	MaximumTime time.Duration `gorm:"type:bigint;not null"`
	CreatedAt   time.Time     `gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime"`
}

type EditInput struct {
	ClubID      string
	UserID      string
	BudgetLimit *float64
	MaximumTime *time.Duration
}
