package club

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetClub(ctx context.Context, id string) (*Club, error)
	GetClubByCode(ctx context.Context, code string) (*Club, error)
	GetMember(ctx context.Context, clubID, userID string) (*Member, error)
	ListOwned(ctx context.Context, userID string) ([]Club, error)
	ListMemberOf(ctx context.Context, userID string) ([]Club, error)
	ListMemberProfiles(ctx context.Context, clubID string) ([]MemberProfile, error)
	CreateClub(ctx context.Context, club *Club) error
	AddMember(ctx context.Context, member *Member) error
	UpdateMemberRole(ctx context.Context, clubID, userID, role string) error
	UpdateOwner(ctx context.Context, clubID, ownerID string) error
	UpdateJoinStatus(ctx context.Context, clubID string, enabled bool, code string) error
	DeleteMember(ctx context.Context, clubID, userID string) error
	DeleteClub(ctx context.Context, clubID string) error
	IsCodeTaken(ctx context.Context, code string) (bool, error)
}
