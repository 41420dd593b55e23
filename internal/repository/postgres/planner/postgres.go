package planner

import (
	"context"
	"errors"

	plannerdomain "clubhub/internal/domain/planner"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(plannerdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateActivity(ctx context.Context, activity *plannerdomain.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *PostgresRepository) GetActivity(ctx context.Context, clubID, activityID string) (*plannerdomain.Activity, error) {
	var activity plannerdomain.Activity
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND id = ?", clubID, activityID).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plannerdomain.ErrActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (r *PostgresRepository) ListActivities(ctx context.Context, clubID string) ([]plannerdomain.Activity, error) {
	var activities []plannerdomain.Activity
	if err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("created_at asc, id asc").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *PostgresRepository) CreateFinalPlan(ctx context.Context, plan *plannerdomain.FinalPlan) error {
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return plannerdomain.ErrPlanExists
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) GetFinalPlan(ctx context.Context, clubID, planID string) (*plannerdomain.FinalPlan, error) {
	var plan plannerdomain.FinalPlan
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND id = ?", clubID, planID).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plannerdomain.ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PostgresRepository) GetFinalPlanByClub(ctx context.Context, clubID string) (*plannerdomain.FinalPlan, error) {
	var plan plannerdomain.FinalPlan
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plannerdomain.ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PostgresRepository) UpdateFinalPlan(ctx context.Context, plan *plannerdomain.FinalPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *PostgresRepository) DeleteFinalPlan(ctx context.Context, clubID, planID string) error {
	return r.db.WithContext(ctx).
		Delete(&plannerdomain.FinalPlan{}, "club_id = ? AND id = ?", clubID, planID).Error
}
