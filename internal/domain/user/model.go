package user

import "time"

const (
	DefaultBudgetLimit = 50.0
	DefaultMaxTime     = 2 * time.Hour
)

type Profile struct {
	UserID             string        `gorm:"type:uuid;primaryKey"`
	Email              *string       `gorm:"type:text;uniqueIndex"`
	Name               *string       `gorm:"type:text"`
	DefaultBudgetLimit float64       `gorm:"type:numeric(10,2);not null"`
	DefaultMaxTime     time.Duration `gorm:"type:bigint;not null"`
	CreatedAt          time.Time     `gorm:"autoCreateTime"`
	UpdatedAt          time.Time     `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "user_profiles"
}
