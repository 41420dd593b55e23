package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddActivity(ctx context.Context, input AddActivityInput) (*Activity, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	activity := Activity{
		ID:       uuid.NewString(),
		ClubID:   input.ClubID,
		Name:     name,
		Cost:     input.Cost,
		Duration: input.Duration,
	}
	if input.Description != nil {
		activity.Description = *input.Description
	}
	if input.Link != nil {
		activity.Link = input.Link
	}
	if input.Location != nil {
		activity.Location = input.Location
	}

	if err := s.repo.CreateActivity(ctx, &activity); err != nil {
		return nil, err
	}

	return &activity, nil
}

func (s *Service) ListActivities(ctx context.Context, clubID string) ([]Activity, error) {
	return s.repo.ListActivities(ctx, clubID)
}

// DeleteActivity verifies the activity exists in the club and stops there.
// The original surface only ever reported found/not-found without deleting;
// TODO: perform the actual delete once product confirms whether removal
// should clear plan references or be blocked while a plan points at it.
func (s *Service) DeleteActivity(ctx context.Context, clubID, activityID string) error {
	_, err := s.repo.GetActivity(ctx, clubID, activityID)
	return err
}

// CreateFinalPlan sets the club's single schedule. It is not an upsert: a
// second plan for the same club is a business-rule failure, backed by the
// unique index for the concurrent case.
func (s *Service) CreateFinalPlan(ctx context.Context, input CreateFinalPlanInput) (*FinalPlan, error) {
	if input.EndTime.Before(input.StartTime) {
		return nil, ErrPlanTimeOrder
	}

	var result FinalPlan
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		activity, err := tx.GetActivity(ctx, input.ClubID, input.ActivityID)
		if err != nil {
			return err
		}

		if _, err := tx.GetFinalPlanByClub(ctx, input.ClubID); err == nil {
			return ErrPlanExists
		} else if !errors.Is(err, ErrPlanNotFound) {
			return err
		}

		start := input.StartTime
		end := input.EndTime
		plan := FinalPlan{
			ID:         uuid.NewString(),
			ClubID:     input.ClubID,
			ActivityID: &activity.ID,
			StartTime:  &start,
			EndTime:    &end,
		}
		if err := tx.CreateFinalPlan(ctx, &plan); err != nil {
			return err
		}

		result = plan
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) GetFinalPlan(ctx context.Context, clubID string) (*FinalPlan, error) {
	return s.repo.GetFinalPlanByClub(ctx, clubID)
}

// EditFinalPlan applies a partial update. Time ordering is validated against
// the mix of supplied and existing values before anything is written, so a
// rejected edit leaves the plan untouched.
func (s *Service) EditFinalPlan(ctx context.Context, input EditFinalPlanInput) (*FinalPlan, error) {
	var result FinalPlan
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		plan, err := tx.GetFinalPlan(ctx, input.ClubID, input.PlanID)
		if err != nil {
			return err
		}

		if input.ActivityID != nil {
			activity, err := tx.GetActivity(ctx, input.ClubID, *input.ActivityID)
			if err != nil {
				return err
			}
			plan.ActivityID = &activity.ID
		}

		start := plan.StartTime
		if input.StartTime != nil {
			start = input.StartTime
		}
		end := plan.EndTime
		if input.EndTime != nil {
			end = input.EndTime
		}
		if start != nil && end != nil && end.Before(*start) {
			return ErrPlanTimeOrder
		}

		plan.StartTime = start
		plan.EndTime = end
		if err := tx.UpdateFinalPlan(ctx, plan); err != nil {
			return err
		}

		result = *plan
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) DeleteFinalPlan(ctx context.Context, clubID, planID string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetFinalPlan(ctx, clubID, planID); err != nil {
			return err
		}
		return tx.DeleteFinalPlan(ctx, clubID, planID)
	})
}
