package club

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userdomain "clubhub/internal/domain/user"
	"github.com/google/uuid"
)

// UserDirectory resolves principals referenced by email in owner operations
// and supplies identity fields for detailed club views.
type UserDirectory interface {
	GetByID(ctx context.Context, userID string) (*userdomain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*userdomain.Profile, error)
}

type Service struct {
	repo  Repository
	users UserDirectory
}

func NewService(repo Repository, users UserDirectory) *Service {
	return &Service{repo: repo, users: users}
}

type CreateInput struct {
	OwnerID     string
	Name        string
	Description string
	JoinEnabled bool
}

// Create persists the club and, when joining is enabled, allocates its code
// in the same transaction. The owner gets no membership row: ownership is
// carried by OwnerID and grants admin and member access implicitly.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Club, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	var result Club
	err := s.retryOnCodeConflict(func() error {
		return s.repo.Transaction(ctx, func(tx Repository) error {
			c := Club{
				ID:          uuid.NewString(),
				Name:        name,
				Description: input.Description,
				OwnerID:     input.OwnerID,
				JoinEnabled: input.JoinEnabled,
			}
			if input.JoinEnabled {
				code, err := allocateJoinCode(ctx, tx)
				if err != nil {
					return err
				}
				c.JoinCode = code
			}

			if err := tx.CreateClub(ctx, &c); err != nil {
				return err
			}

			result = c
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Delete removes the club and everything hanging off it. Activities, the
// final plan, club profiles and membership rows go with it through the
// storage-level cascades, all inside one transaction; dropping the row also
// frees its join code.
func (s *Service) Delete(ctx context.Context, clubID string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetClub(ctx, clubID); err != nil {
			return err
		}
		return tx.DeleteClub(ctx, clubID)
	})
}

// JoinByCode enrolls the user as a plain member of the club matching an
// active code. Joining a club the user already belongs to is a no-op.
func (s *Service) JoinByCode(ctx context.Context, userID, code string) (*Club, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrInvalidJoinCode
	}

	var result Club
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		c, err := tx.GetClubByCode(ctx, code)
		if err != nil {
			return err
		}
		result = *c

		if c.IsOwner(userID) {
			return nil
		}
		if _, err := tx.GetMember(ctx, c.ID, userID); err == nil {
			return nil
		} else if !errors.Is(err, ErrMemberNotFound) {
			return err
		}

		return tx.AddMember(ctx, &Member{
			ClubID: c.ID,
			UserID: userID,
			Role:   RoleMember,
		})
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) Leave(ctx context.Context, clubID, userID string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		c, err := tx.GetClub(ctx, clubID)
		if err != nil {
			return err
		}
		if c.IsOwner(userID) {
			return ErrOwnerCannotLeave
		}
		return tx.DeleteMember(ctx, clubID, userID)
	})
}

// PromoteMember raises an existing member to admin. Promoting someone who
// already holds admin access, the owner included, is a business-rule
// failure, as is promoting an email with no membership in the club.
func (s *Service) PromoteMember(ctx context.Context, clubID, email string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		c, err := tx.GetClub(ctx, clubID)
		if err != nil {
			return err
		}

		target, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, userdomain.ErrUserNotFound) {
				return ErrMemberNotFound
			}
			return err
		}
		if c.IsOwner(target.UserID) {
			return ErrAlreadyAdmin
		}

		member, err := tx.GetMember(ctx, clubID, target.UserID)
		if err != nil {
			return err
		}
		if member.Role == RoleAdmin {
			return ErrAlreadyAdmin
		}

		return tx.UpdateMemberRole(ctx, clubID, target.UserID, RoleAdmin)
	})
}

// RemoveMember ejects the target from the club entirely, whatever their
// role. The owner cannot be removed and the actor cannot remove themselves.
func (s *Service) RemoveMember(ctx context.Context, clubID, actorEmail, targetEmail string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		c, err := tx.GetClub(ctx, clubID)
		if err != nil {
			return err
		}
		if targetEmail == actorEmail {
			return ErrCannotRemoveSelf
		}

		target, err := s.users.GetByEmail(ctx, targetEmail)
		if err != nil {
			if errors.Is(err, userdomain.ErrUserNotFound) {
				return ErrMemberNotFound
			}
			return err
		}
		if c.IsOwner(target.UserID) {
			return ErrCannotRemoveOwner
		}

		if _, err := tx.GetMember(ctx, clubID, target.UserID); err != nil {
			return err
		}
		return tx.DeleteMember(ctx, clubID, target.UserID)
	})
}

// TransferOwnership reassigns the club to an existing member or admin,
// resolved by email. The outgoing owner is not demoted out of the club:
// they stay behind as an ordinary admin.
func (s *Service) TransferOwnership(ctx context.Context, clubID, newOwnerEmail string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		c, err := tx.GetClub(ctx, clubID)
		if err != nil {
			return err
		}

		target, err := s.users.GetByEmail(ctx, newOwnerEmail)
		if err != nil {
			if errors.Is(err, userdomain.ErrUserNotFound) {
				return ErrMemberNotFound
			}
			return err
		}
		if c.IsOwner(target.UserID) {
			return ErrSelfTransfer
		}

		if _, err := tx.GetMember(ctx, clubID, target.UserID); err != nil {
			return err
		}

		// The new owner's access is carried by OwnerID from here on; their
		// membership row goes away. The outgoing owner takes its place.
		if err := tx.DeleteMember(ctx, clubID, target.UserID); err != nil {
			return err
		}
		if err := tx.AddMember(ctx, &Member{
			ClubID: clubID,
			UserID: c.OwnerID,
			Role:   RoleAdmin,
		}); err != nil {
			return err
		}

		return tx.UpdateOwner(ctx, clubID, target.UserID)
	})
}

// SetJoinStatus enables or disables self-service enrollment. Enabling always
// allocates a fresh code, replacing any prior one; disabling clears it.
func (s *Service) SetJoinStatus(ctx context.Context, clubID string, enabled bool) (*Club, error) {
	var result Club
	err := s.retryOnCodeConflict(func() error {
		return s.repo.Transaction(ctx, func(tx Repository) error {
			c, err := tx.GetClub(ctx, clubID)
			if err != nil {
				return err
			}

			code := ""
			if enabled {
				code, err = allocateJoinCode(ctx, tx)
				if err != nil {
					return err
				}
			}

			if err := tx.UpdateJoinStatus(ctx, clubID, enabled, code); err != nil {
				return err
			}

			c.JoinEnabled = enabled
			c.JoinCode = code
			result = *c
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) ListOwned(ctx context.Context, userID string) ([]Club, error) {
	return s.repo.ListOwned(ctx, userID)
}

func (s *Service) ListMemberOf(ctx context.Context, userID string) ([]Club, error) {
	return s.repo.ListMemberOf(ctx, userID)
}

// Info returns the club and, when detailed, the owner summary and the admin
// and member rosters.
func (s *Service) Info(ctx context.Context, clubID string, detailed bool) (*Info, error) {
	c, err := s.repo.GetClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	info := Info{Club: *c}
	if !detailed {
		return &info, nil
	}

	owner, err := s.users.GetByID(ctx, c.OwnerID)
	if err == nil {
		info.Owner = &MemberProfile{
			UserID: owner.UserID,
			Role:   RoleOwner,
			Email:  owner.Email,
			Name:   owner.Name,
		}
	} else if !errors.Is(err, userdomain.ErrUserNotFound) {
		return nil, err
	}

	profiles, err := s.repo.ListMemberProfiles(ctx, clubID)
	if err != nil {
		return nil, err
	}

	info.Admins = make([]MemberProfile, 0)
	info.Members = make([]MemberProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.Role == RoleAdmin {
			info.Admins = append(info.Admins, p)
		}
		// Admins belong to the conceptual member set as well.
		info.Members = append(info.Members, p)
	}

	return &info, nil
}

// MyStatus reports the hierarchical standing of a user in the club.
func (s *Service) MyStatus(ctx context.Context, clubID, userID string) (Status, error) {
	c, err := s.repo.GetClub(ctx, clubID)
	if err != nil {
		return Status{}, err
	}

	if c.IsOwner(userID) {
		return Status{Owner: true, Admin: true, Member: true}, nil
	}

	member, err := s.repo.GetMember(ctx, clubID, userID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return Status{}, nil
		}
		return Status{}, err
	}

	return Status{
		Admin:  member.Role == RoleAdmin,
		Member: true,
	}, nil
}

// retryOnCodeConflict re-runs a code-allocating transaction when the commit
// lost the uniqueness race despite the pre-check. The retry is invisible to
// callers; exhausting the budget is effectively unreachable at 24 chars
// over a 52-letter alphabet.
func (s *Service) retryOnCodeConflict(fn func() error) error {
	var err error
	for i := 0; i < joinCodeAttempts; i++ {
		err = fn()
		if !errors.Is(err, ErrCodeTaken) {
			return err
		}
	}
	return ErrCodeGenerationFailed
}
