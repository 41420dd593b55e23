package profile

import (
	"context"
	"errors"

	userdomain "clubhub/internal/domain/user"
	"github.com/google/uuid"
)

// DefaultsSource supplies the user's default preferences used to seed a
// profile on first access.
type DefaultsSource interface {
	GetByID(ctx context.Context, userID string) (*userdomain.Profile, error)
}

type Service struct {
	repo  Repository
	users DefaultsSource
}

func NewService(repo Repository, users DefaultsSource) *Service {
	return &Service{repo: repo, users: users}
}

// GetOrCreate returns the (club,user) profile, creating it from the user's
// defaults the first time around. Two concurrent first reads race on the
// unique constraint; the loser re-fetches the winner's row, so the pair
// never holds more than one profile.
func (s *Service) GetOrCreate(ctx context.Context, clubID, userID string) (*ClubProfile, error) {
	existing, err := s.repo.GetByClubUser(ctx, clubID, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	budget := userdomain.DefaultBudgetLimit
	maxTime := userdomain.DefaultMaxTime
	owner, err := s.users.GetByID(ctx, userID)
	if err == nil {
		budget = owner.DefaultBudgetLimit
		maxTime = owner.DefaultMaxTime
	} else if !errors.Is(err, userdomain.ErrUserNotFound) {
		return nil, err
	}

	created := ClubProfile{
		ID:          uuid.NewString(),
		ClubID:      clubID,
		UserID:      userID,
		BudgetLimit: budget,
		MaximumTime: maxTime,
	}
	if err := s.repo.Create(ctx, &created); err != nil {
		if errors.Is(err, ErrProfileExists) {
			return s.repo.GetByClubUser(ctx, clubID, userID)
		}
		return nil, err
	}

	return &created, nil
}

// Edit mutates only the supplied fields, materializing the profile first if
// this is the pair's initial access.
func (s *Service) Edit(ctx context.Context, input EditInput) (*ClubProfile, error) {
	current, err := s.GetOrCreate(ctx, input.ClubID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.BudgetLimit != nil {
		current.BudgetLimit = *input.BudgetLimit
	}
	if input.MaximumTime != nil {
		current.MaximumTime = *input.MaximumTime
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}

	return current, nil
}
