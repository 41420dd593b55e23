package planner

import "time"

type Activity struct {
	ID          string        `gorm:"type:uuid;primaryKey"`
	ClubID      string        `gorm:"type:uuid;not null;index"`
	Name        string        `gorm:"not null"`
	Cost        float64       `gorm:"type:numeric(10,2);not null"`
	Duration    time.Duration `gorm:"type:bigint;not null"`
	Description string        `gorm:"type:text;not null;default:''"`
	Link        *string       `gorm:"type:text"`
	Location    *string       `gorm:"type:text"`
	CreatedAt   time.Time     `gorm:"autoCreateTime"`
}

// FinalPlan is the single authoritative schedule for a club; the unique
// index on ClubID backs the one-plan-per-club rule at the storage layer.
// ActivityID is cleared, not cascaded, when the activity goes away.
type FinalPlan struct {
	ID         string     `gorm:"type:uuid;primaryKey"`
	ClubID     string     `gorm:"type:uuid;not null;uniqueIndex"`
	ActivityID *string    `gorm:"type:uuid"`
	StartTime  *time.Time `gorm:"type:timestamptz"`
	EndTime    *time.Time `gorm:"type:timestamptz"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime"`
}

type AddActivityInput struct {
	ClubID      string
	Name        string
	Cost        float64
	Duration    time.Duration
	Description *string
	Link        *string
	Location    *string
}

type CreateFinalPlanInput struct {
	ClubID     string
	ActivityID string
	StartTime  time.Time
	EndTime    time.Time
}

// EditFinalPlanInput carries a partial update; nil fields are left alone.
type EditFinalPlanInput struct {
	ClubID     string
	PlanID     string
	ActivityID *string
	StartTime  *time.Time
	EndTime    *time.Time
}
