package planner

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CreateActivity(ctx context.Context, activity *Activity) error
	GetActivity(ctx context.Context, clubID, activityID string) (*Activity, error)
	ListActivities(ctx context.Context, clubID string) ([]Activity, error)
	CreateFinalPlan(ctx context.Context, plan *FinalPlan) error
	GetFinalPlan(ctx context.Context, clubID, planID string) (*FinalPlan, error)
	GetFinalPlanByClub(ctx context.Context, clubID string) (*FinalPlan, error)
	UpdateFinalPlan(ctx context.Context, plan *FinalPlan) error
	DeleteFinalPlan(ctx context.Context, clubID, planID string) error
}
