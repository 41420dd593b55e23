package inmemory

import (
	"context"
	"sort"
	"time"

	plannerdomain "clubhub/internal/domain/planner"
)

type PlannerRepository struct {
	store *Store
}

func (r *PlannerRepository) Transaction(ctx context.Context, fn func(plannerdomain.Repository) error) error {
	return fn(r)
}

func (r *PlannerRepository) CreateActivity(ctx context.Context, activity *plannerdomain.Activity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}
	r.store.activities[activity.ID] = *activity
	return nil
}

func (r *PlannerRepository) GetActivity(ctx context.Context, clubID, activityID string) (*plannerdomain.Activity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	activity, ok := r.store.activities[activityID]
	if !ok || activity.ClubID != clubID {
		return nil, plannerdomain.ErrActivityNotFound
	}
	return &activity, nil
}

func (r *PlannerRepository) ListActivities(ctx context.Context, clubID string) ([]plannerdomain.Activity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	activities := make([]plannerdomain.Activity, 0)
	for _, activity := range r.store.activities {
		if activity.ClubID == clubID {
			activities = append(activities, activity)
		}
	}
	sort.Slice(activities, func(i, j int) bool {
		if activities[i].CreatedAt.Equal(activities[j].CreatedAt) {
			return activities[i].ID < activities[j].ID
		}
		return activities[i].CreatedAt.Before(activities[j].CreatedAt)
	})
	return activities, nil
}

func (r *PlannerRepository) CreateFinalPlan(ctx context.Context, plan *plannerdomain.FinalPlan) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.plans {
		if existing.ClubID == plan.ClubID {
			return plannerdomain.ErrPlanExists
		}
	}
	r.store.plans[plan.ID] = *plan
	return nil
}

func (r *PlannerRepository) GetFinalPlan(ctx context.Context, clubID, planID string) (*plannerdomain.FinalPlan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	plan, ok := r.store.plans[planID]
	if !ok || plan.ClubID != clubID {
		return nil, plannerdomain.ErrPlanNotFound
	}
	return &plan, nil
}

func (r *PlannerRepository) GetFinalPlanByClub(ctx context.Context, clubID string) (*plannerdomain.FinalPlan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, plan := range r.store.plans {
		if plan.ClubID == clubID {
			result := plan
			return &result, nil
		}
	}
	return nil, plannerdomain.ErrPlanNotFound
}

func (r *PlannerRepository) UpdateFinalPlan(ctx context.Context, plan *plannerdomain.FinalPlan) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.plans[plan.ID]; !ok {
		return plannerdomain.ErrPlanNotFound
	}
	r.store.plans[plan.ID] = *plan
	return nil
}

func (r *PlannerRepository) DeleteFinalPlan(ctx context.Context, clubID, planID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	plan, ok := r.store.plans[planID]
	if ok && plan.ClubID == clubID {
		delete(r.store.plans, planID)
	}
	return nil
}
