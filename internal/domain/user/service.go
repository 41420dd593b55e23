package user

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UpsertProfile records the principal resolved by the auth layer. Preference
// defaults are written only on first sight of a user; later upserts refresh
// the identity fields alone.
func (s *Service) UpsertProfile(ctx context.Context, userID, email, name string) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	profile := Profile{
		UserID:             userID,
		DefaultBudgetLimit: DefaultBudgetLimit,
		DefaultMaxTime:     DefaultMaxTime,
	}
	if email != "" {
		profile.Email = &email
	}
	if name != "" {
		profile.Name = &name
	}

	return s.repo.UpsertProfile(ctx, &profile)
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.GetByID(ctx, userID)
}
