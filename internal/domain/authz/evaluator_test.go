package authz

import (
	"context"
	"errors"
	"testing"

	"clubhub/internal/domain/club"
)

type fakeClubSource struct {
	clubs   map[string]*club.Club
	members map[string]map[string]*club.Member
}

func newFakeClubSource() *fakeClubSource {
	return &fakeClubSource{
		clubs:   make(map[string]*club.Club),
		members: make(map[string]map[string]*club.Member),
	}
}

func (s *fakeClubSource) GetClub(ctx context.Context, id string) (*club.Club, error) {
	c, ok := s.clubs[id]
	if !ok {
		return nil, club.ErrClubNotFound
	}
	return c, nil
}

func (s *fakeClubSource) GetMember(ctx context.Context, clubID, userID string) (*club.Member, error) {
	member, ok := s.members[clubID][userID]
	if !ok {
		return nil, club.ErrMemberNotFound
	}
	return member, nil
}

func (s *fakeClubSource) seed(clubID, ownerID string) {
	s.clubs[clubID] = &club.Club{ID: clubID, Name: "Club", OwnerID: ownerID}
}

func (s *fakeClubSource) addMember(clubID, userID, role string) {
	if s.members[clubID] == nil {
		s.members[clubID] = make(map[string]*club.Member)
	}
	s.members[clubID][userID] = &club.Member{ClubID: clubID, UserID: userID, Role: role}
}

func TestAuthorizeUnauthenticated(t *testing.T) {
	e := NewEvaluator(newFakeClubSource())

	_, err := e.Authorize(context.Background(), Principal{}, "club-1", club.RoleMember)
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthorizeMissingClubID(t *testing.T) {
	e := NewEvaluator(newFakeClubSource())

	_, err := e.Authorize(context.Background(), Principal{ID: "user-1"}, "", club.RoleMember)
	if !errors.Is(err, ErrMissingClubID) {
		t.Fatalf("expected ErrMissingClubID, got %v", err)
	}
}

func TestAuthorizeMissingClub(t *testing.T) {
	e := NewEvaluator(newFakeClubSource())

	_, err := e.Authorize(context.Background(), Principal{ID: "user-1"}, "club-1", club.RoleMember)
	if !errors.Is(err, club.ErrClubNotFound) {
		t.Fatalf("expected ErrClubNotFound, got %v", err)
	}
}

func TestAuthorizeOwnerPassesEveryTier(t *testing.T) {
	src := newFakeClubSource()
	src.seed("club-1", "owner-1")
	e := NewEvaluator(src)
	p := Principal{ID: "owner-1"}

	for _, role := range []string{club.RoleMember, club.RoleAdmin, club.RoleOwner} {
		if _, err := e.Authorize(context.Background(), p, "club-1", role); err != nil {
			t.Fatalf("owner rejected at %s tier: %v", role, err)
		}
	}
}

func TestAuthorizeHierarchy(t *testing.T) {
	src := newFakeClubSource()
	src.seed("club-1", "owner-1")
	src.addMember("club-1", "admin-1", club.RoleAdmin)
	src.addMember("club-1", "member-1", club.RoleMember)
	e := NewEvaluator(src)

	if _, err := e.Authorize(context.Background(), Principal{ID: "admin-1"}, "club-1", club.RoleMember); err != nil {
		t.Fatalf("admin rejected at member tier: %v", err)
	}
	if _, err := e.Authorize(context.Background(), Principal{ID: "admin-1"}, "club-1", club.RoleAdmin); err != nil {
		t.Fatalf("admin rejected at admin tier: %v", err)
	}
	if _, err := e.Authorize(context.Background(), Principal{ID: "member-1"}, "club-1", club.RoleAdmin); !errors.Is(err, club.ErrClubNotFound) {
		t.Fatalf("expected ErrClubNotFound for member at admin tier, got %v", err)
	}
	if _, err := e.Authorize(context.Background(), Principal{ID: "admin-1"}, "club-1", club.RoleOwner); !errors.Is(err, club.ErrClubNotFound) {
		t.Fatalf("expected ErrClubNotFound for admin at owner tier, got %v", err)
	}
}

// A non-member probing an existing club and anyone probing a missing club
// must see the exact same error.
func TestAuthorizeDoesNotLeakExistence(t *testing.T) {
	src := newFakeClubSource()
	src.seed("club-1", "owner-1")
	e := NewEvaluator(src)
	outsider := Principal{ID: "outsider"}

	_, realErr := e.Authorize(context.Background(), outsider, "club-1", club.RoleMember)
	_, ghostErr := e.Authorize(context.Background(), outsider, "ghost", club.RoleMember)

	if !errors.Is(realErr, club.ErrClubNotFound) || !errors.Is(ghostErr, club.ErrClubNotFound) {
		t.Fatalf("expected ErrClubNotFound for both, got %v and %v", realErr, ghostErr)
	}
	if realErr.Error() != ghostErr.Error() {
		t.Fatalf("errors must be indistinguishable, got %q and %q", realErr, ghostErr)
	}
}

func TestAuthorizeNoRolesNeverPasses(t *testing.T) {
	src := newFakeClubSource()
	src.seed("club-1", "owner-1")
	e := NewEvaluator(src)

	if _, err := e.Authorize(context.Background(), Principal{ID: "owner-1"}, "club-1"); !errors.Is(err, club.ErrClubNotFound) {
		t.Fatalf("expected rejection with no allowed roles, got %v", err)
	}
}
