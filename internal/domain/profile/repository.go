package profile

import "context"

type Repository interface {
	GetByClubUser(ctx context.Context, clubID, userID string) (*ClubProfile, error)
	Create(ctx context.Context, profile *ClubProfile) error
	Update(ctx context.Context, profile *ClubProfile) error
}
