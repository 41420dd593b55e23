package authz

import (
	"context"
	"errors"

	"clubhub/internal/domain/club"
)

// Principal is the acting user as resolved by the transport layer, passed
// explicitly into every operation. A zero ID means anonymous.
type Principal struct {
	ID    string
	Email string
	Name  string
}

func (p Principal) Authenticated() bool {
	return p.ID != ""
}

// ClubSource is the slice of the club repository the evaluator needs to
// resolve a club and the principal's membership in it.
type ClubSource interface {
	GetClub(ctx context.Context, id string) (*club.Club, error)
	GetMember(ctx context.Context, clubID, userID string) (*club.Member, error)
}

type Evaluator struct {
	clubs ClubSource
}

func NewEvaluator(clubs ClubSource) *Evaluator {
	return &Evaluator{clubs: clubs}
}

// Role tiers; higher subsumes lower, so an allowed set is satisfied by any
// standing at or above its weakest entry.
var roleTiers = map[string]int{
	club.RoleMember: 1,
	club.RoleAdmin:  2,
	club.RoleOwner:  3,
}

// Authorize gates a club-scoped operation: authentication, payload (club id
// present), club existence, then role membership, each check short-circuiting.
// A principal that fails the role check gets the same ErrClubNotFound as a
// missing club, so the response never reveals whether the club exists.
func (e *Evaluator) Authorize(ctx context.Context, p Principal, clubID string, allowedRoles ...string) (*club.Club, error) {
	var resolved *club.Club

	checks := []func(context.Context) error{
		func(context.Context) error {
			if !p.Authenticated() {
				return ErrUnauthenticated
			}
			return nil
		},
		func(context.Context) error {
			if clubID == "" {
				return ErrMissingClubID
			}
			return nil
		},
		func(ctx context.Context) error {
			c, err := e.clubs.GetClub(ctx, clubID)
			if err != nil {
				return err
			}
			resolved = c
			return nil
		},
		func(ctx context.Context) error {
			ok, err := e.roleAllowed(ctx, resolved, p.ID, allowedRoles)
			if err != nil {
				return err
			}
			if !ok {
				return club.ErrClubNotFound
			}
			return nil
		},
	}

	for _, check := range checks {
		if err := check(ctx); err != nil {
			return nil, err
		}
	}

	return resolved, nil
}

func (e *Evaluator) roleAllowed(ctx context.Context, c *club.Club, userID string, allowedRoles []string) (bool, error) {
	if len(allowedRoles) == 0 {
		return false, nil
	}

	required := 0
	for _, role := range allowedRoles {
		tier, ok := roleTiers[role]
		if !ok {
			continue
		}
		if required == 0 || tier < required {
			required = tier
		}
	}
	if required == 0 {
		return false, nil
	}

	effective, err := e.effectiveTier(ctx, c, userID)
	if err != nil {
		return false, err
	}
	return effective >= required, nil
}

func (e *Evaluator) effectiveTier(ctx context.Context, c *club.Club, userID string) (int, error) {
	if c.IsOwner(userID) {
		return roleTiers[club.RoleOwner], nil
	}

	member, err := e.clubs.GetMember(ctx, c.ID, userID)
	if err != nil {
		if errors.Is(err, club.ErrMemberNotFound) {
			return 0, nil
		}
		return 0, err
	}

	tier, ok := roleTiers[member.Role]
	if !ok {
		return 0, nil
	}
	return tier, nil
}
