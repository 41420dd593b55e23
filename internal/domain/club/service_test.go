package club

import (
	"context"
	"errors"
	"testing"
	"time"

	userdomain "clubhub/internal/domain/user"
)

type fakeClubRepo struct {
	clubs   map[string]*Club
	members map[string]map[string]*Member
}

func newFakeClubRepo() *fakeClubRepo {
	return &fakeClubRepo{
		clubs:   make(map[string]*Club),
		members: make(map[string]map[string]*Member),
	}
}

func (r *fakeClubRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeClubRepo) GetClub(ctx context.Context, id string) (*Club, error) {
	c, ok := r.clubs[id]
	if !ok {
		return nil, ErrClubNotFound
	}
	return c, nil
}

func (r *fakeClubRepo) GetClubByCode(ctx context.Context, code string) (*Club, error) {
	for _, c := range r.clubs {
		if c.JoinEnabled && c.JoinCode == code {
			return c, nil
		}
	}
	return nil, ErrInvalidJoinCode
}

func (r *fakeClubRepo) GetMember(ctx context.Context, clubID, userID string) (*Member, error) {
	member, ok := r.members[clubID][userID]
	if !ok {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

func (r *fakeClubRepo) ListOwned(ctx context.Context, userID string) ([]Club, error) {
	result := make([]Club, 0)
	for _, c := range r.clubs {
		if c.OwnerID == userID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (r *fakeClubRepo) ListMemberOf(ctx context.Context, userID string) ([]Club, error) {
	result := make([]Club, 0)
	for _, c := range r.clubs {
		if c.OwnerID == userID {
			result = append(result, *c)
			continue
		}
		if _, ok := r.members[c.ID][userID]; ok {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (r *fakeClubRepo) ListMemberProfiles(ctx context.Context, clubID string) ([]MemberProfile, error) {
	result := make([]MemberProfile, 0)
	for _, member := range r.members[clubID] {
		result = append(result, MemberProfile{
			UserID:   member.UserID,
			Role:     member.Role,
			JoinedAt: member.JoinedAt,
		})
	}
	return result, nil
}

func (r *fakeClubRepo) CreateClub(ctx context.Context, c *Club) error {
	if c.JoinCode != "" {
		for _, existing := range r.clubs {
			if existing.JoinCode == c.JoinCode {
				return ErrCodeTaken
			}
		}
	}
	r.clubs[c.ID] = c
	return nil
}

func (r *fakeClubRepo) AddMember(ctx context.Context, member *Member) error {
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now().UTC()
	}
	if r.members[member.ClubID] == nil {
		r.members[member.ClubID] = make(map[string]*Member)
	}
	r.members[member.ClubID][member.UserID] = member
	return nil
}

func (r *fakeClubRepo) UpdateMemberRole(ctx context.Context, clubID, userID, role string) error {
	member, ok := r.members[clubID][userID]
	if !ok {
		return ErrMemberNotFound
	}
	member.Role = role
	return nil
}

func (r *fakeClubRepo) UpdateOwner(ctx context.Context, clubID, ownerID string) error {
	c, ok := r.clubs[clubID]
	if !ok {
		return ErrClubNotFound
	}
	c.OwnerID = ownerID
	return nil
}

func (r *fakeClubRepo) UpdateJoinStatus(ctx context.Context, clubID string, enabled bool, code string) error {
	c, ok := r.clubs[clubID]
	if !ok {
		return ErrClubNotFound
	}
	c.JoinEnabled = enabled
	c.JoinCode = code
	return nil
}

func (r *fakeClubRepo) DeleteMember(ctx context.Context, clubID, userID string) error {
	delete(r.members[clubID], userID)
	return nil
}

func (r *fakeClubRepo) DeleteClub(ctx context.Context, clubID string) error {
	delete(r.clubs, clubID)
	delete(r.members, clubID)
	return nil
}

func (r *fakeClubRepo) IsCodeTaken(ctx context.Context, code string) (bool, error) {
	for _, c := range r.clubs {
		if c.JoinCode == code {
			return true, nil
		}
	}
	return false, nil
}

type fakeDirectory struct {
	profiles map[string]*userdomain.Profile
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{profiles: make(map[string]*userdomain.Profile)}
}

func (d *fakeDirectory) add(userID, email string) {
	e := email
	d.profiles[userID] = &userdomain.Profile{UserID: userID, Email: &e}
}

func (d *fakeDirectory) GetByID(ctx context.Context, userID string) (*userdomain.Profile, error) {
	p, ok := d.profiles[userID]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return p, nil
}

func (d *fakeDirectory) GetByEmail(ctx context.Context, email string) (*userdomain.Profile, error) {
	for _, p := range d.profiles {
		if p.Email != nil && *p.Email == email {
			return p, nil
		}
	}
	return nil, userdomain.ErrUserNotFound
}

func seedClub(repo *fakeClubRepo, id, ownerID string, joinEnabled bool, code string) *Club {
	c := &Club{ID: id, Name: "Club " + id, OwnerID: ownerID, JoinEnabled: joinEnabled, JoinCode: code}
	repo.clubs[id] = c
	return c
}

func isLetters(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func TestCreateClubWithJoinEnabled(t *testing.T) {
	repo := newFakeClubRepo()
	svc := NewService(repo, newFakeDirectory())

	created, err := svc.Create(context.Background(), CreateInput{
		OwnerID:     "owner-1",
		Name:        "  Hiking  ",
		JoinEnabled: true,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Name != "Hiking" {
		t.Fatalf("expected name trimmed, got %q", created.Name)
	}
	if created.OwnerID != "owner-1" {
		t.Fatalf("expected owner owner-1, got %q", created.OwnerID)
	}
	if len(created.JoinCode) != JoinCodeLength {
		t.Fatalf("expected %d-char code, got %q", JoinCodeLength, created.JoinCode)
	}
	if !isLetters(created.JoinCode) {
		t.Fatalf("expected alphabetic code, got %q", created.JoinCode)
	}
	if len(repo.members[created.ID]) != 0 {
		t.Fatalf("owner must not hold a membership row, got %d rows", len(repo.members[created.ID]))
	}
}

func TestCreateClubJoinDisabledHasNoCode(t *testing.T) {
	repo := newFakeClubRepo()
	svc := NewService(repo, newFakeDirectory())

	created, err := svc.Create(context.Background(), CreateInput{OwnerID: "owner-1", Name: "Chess"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.JoinEnabled || created.JoinCode != "" {
		t.Fatalf("expected joining disabled with empty code, got %v %q", created.JoinEnabled, created.JoinCode)
	}
}

func TestCreateClubEmptyName(t *testing.T) {
	repo := newFakeClubRepo()
	svc := NewService(repo, newFakeDirectory())

	if _, err := svc.Create(context.Background(), CreateInput{OwnerID: "owner-1", Name: "   "}); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestJoinByCodeAddsMember(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", true, "ABCDEFGHIJKLMNOPQRSTUVWX")
	svc := NewService(repo, newFakeDirectory())

	joined, err := svc.JoinByCode(context.Background(), "user-2", "ABCDEFGHIJKLMNOPQRSTUVWX")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if joined.ID != "club-1" {
		t.Fatalf("expected club-1, got %s", joined.ID)
	}
	member := repo.members["club-1"]["user-2"]
	if member == nil || member.Role != RoleMember {
		t.Fatalf("expected member role, got %+v", member)
	}
}

func TestJoinByCodeIdempotent(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", true, "ABCDEFGHIJKLMNOPQRSTUVWX")
	svc := NewService(repo, newFakeDirectory())

	if _, err := svc.JoinByCode(context.Background(), "user-2", "ABCDEFGHIJKLMNOPQRSTUVWX"); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	repo.members["club-1"]["user-2"].Role = RoleAdmin

	if _, err := svc.JoinByCode(context.Background(), "user-2", "ABCDEFGHIJKLMNOPQRSTUVWX"); err != nil {
		t.Fatalf("second join failed: %v", err)
	}
	if repo.members["club-1"]["user-2"].Role != RoleAdmin {
		t.Fatalf("re-join must not touch the existing membership")
	}
}

func TestJoinByCodeOwnerIsNoOp(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", true, "ABCDEFGHIJKLMNOPQRSTUVWX")
	svc := NewService(repo, newFakeDirectory())

	if _, err := svc.JoinByCode(context.Background(), "owner-1", "ABCDEFGHIJKLMNOPQRSTUVWX"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.members["club-1"]) != 0 {
		t.Fatalf("owner join must not create a membership row")
	}
}

func TestJoinByCodeInvalid(t *testing.T) {
	repo := newFakeClubRepo()
	svc := NewService(repo, newFakeDirectory())

	if _, err := svc.JoinByCode(context.Background(), "user-1", "NOPE"); !errors.Is(err, ErrInvalidJoinCode) {
		t.Fatalf("expected ErrInvalidJoinCode, got %v", err)
	}
	if _, err := svc.JoinByCode(context.Background(), "user-1", "  "); !errors.Is(err, ErrInvalidJoinCode) {
		t.Fatalf("expected ErrInvalidJoinCode for blank code, got %v", err)
	}
}

func TestLeaveOwnerRejected(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", false, "")
	svc := NewService(repo, newFakeDirectory())

	if err := svc.Leave(context.Background(), "club-1", "owner-1"); !errors.Is(err, ErrOwnerCannotLeave) {
		t.Fatalf("expected ErrOwnerCannotLeave, got %v", err)
	}
}

func TestLeaveRemovesMembership(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", false, "")
	repo.AddMember(context.Background(), &Member{ClubID: "club-1", UserID: "user-2", Role: RoleMember})
	svc := NewService(repo, newFakeDirectory())

	if err := svc.Leave(context.Background(), "club-1", "user-2"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := repo.members["club-1"]["user-2"]; ok {
		t.Fatalf("expected membership removed")
	}
}

func TestPromoteMember(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", false, "")
	repo.AddMember(context.Background(), &Member{ClubID: "club-1", UserID: "user-2", Role: RoleMember})
	dir := newFakeDirectory()
	dir.add("user-2", "two@example.com")
	svc := NewService(repo, dir)

	if err := svc.PromoteMember(context.Background(), "club-1", "two@example.com"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.members["club-1"]["user-2"].Role != RoleAdmin {
		t.Fatalf("expected admin role after promotion")
	}

	if err := svc.PromoteMember(context.Background(), "club-1", "two@example.com"); !errors.Is(err, ErrAlreadyAdmin) {
		t.Fatalf("expected ErrAlreadyAdmin on repeat, got %v", err)
	}
}

func TestPromoteOwnerRejected(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", false, "")
	dir := newFakeDirectory()
	dir.add("owner-1", "owner@example.com")
	svc := NewService(repo, dir)

	if err := svc.PromoteMember(context.Background(), "club-1", "owner@example.com"); !errors.Is(err, ErrAlreadyAdmin) {
		t.Fatalf("expected ErrAlreadyAdmin, got %v", err)
	}
}

func TestPromoteUnknownEmail(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", false, "")
	svc := NewService(repo, newFakeDirectory())

	if err := svc.PromoteMember(context.Background(), "club-1", "ghost@example.com"); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestRemoveMemberGuards(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", false, "")
	repo.AddMember(context.Background(), &Member{ClubID: "club-1", UserID: "user-2", Role: RoleMember})
	dir := newFakeDirectory()
	dir.add("owner-1", "owner@example.com")
	dir.add("user-2", "two@example.com")
	svc := NewService(repo, dir)

	if err := svc.RemoveMember(context.Background(), "club-1", "owner@example.com", "owner@example.com"); !errors.Is(err, ErrCannotRemoveSelf) {
		t.Fatalf("expected ErrCannotRemoveSelf, got %v", err)
	}
	if err := svc.RemoveMember(context.Background(), "club-1", "two@example.com", "owner@example.com"); !errors.Is(err, ErrCannotRemoveOwner) {
		t.Fatalf("expected ErrCannotRemoveOwner, got %v", err)
	}
	if err := svc.RemoveMember(context.Background(), "club-1", "owner@example.com", "two@example.com"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := repo.members["club-1"]["user-2"]; ok {
		t.Fatalf("expected target removed")
	}
}

func TestTransferOwnership(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", false, "")
	repo.AddMember(context.Background(), &Member{ClubID: "club-1", UserID: "user-2", Role: RoleMember})
	dir := newFakeDirectory()
	dir.add("user-2", "two@example.com")
	svc := NewService(repo, dir)

	if err := svc.TransferOwnership(context.Background(), "club-1", "two@example.com"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.clubs["club-1"].OwnerID != "user-2" {
		t.Fatalf("expected user-2 as owner, got %s", repo.clubs["club-1"].OwnerID)
	}
	if _, ok := repo.members["club-1"]["user-2"]; ok {
		t.Fatalf("new owner must not keep a membership row")
	}
	previous := repo.members["club-1"]["owner-1"]
	if previous == nil || previous.Role != RoleAdmin {
		t.Fatalf("expected outgoing owner kept as admin, got %+v", previous)
	}
}

func TestTransferToSelfRejected(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", false, "")
	dir := newFakeDirectory()
	dir.add("owner-1", "owner@example.com")
	svc := NewService(repo, dir)

	if err := svc.TransferOwnership(context.Background(), "club-1", "owner@example.com"); !errors.Is(err, ErrSelfTransfer) {
		t.Fatalf("expected ErrSelfTransfer, got %v", err)
	}
}

func TestTransferToNonMemberRejected(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", false, "")
	dir := newFakeDirectory()
	dir.add("user-3", "three@example.com")
	svc := NewService(repo, dir)

	if err := svc.TransferOwnership(context.Background(), "club-1", "three@example.com"); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestSetJoinStatusRotatesCode(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", true, "ABCDEFGHIJKLMNOPQRSTUVWX")
	svc := NewService(repo, newFakeDirectory())

	updated, err := svc.SetJoinStatus(context.Background(), "club-1", true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(updated.JoinCode) != JoinCodeLength {
		t.Fatalf("expected fresh %d-char code, got %q", JoinCodeLength, updated.JoinCode)
	}
	if updated.JoinCode == "ABCDEFGHIJKLMNOPQRSTUVWX" {
		t.Fatalf("expected code replaced on re-enable")
	}

	disabled, err := svc.SetJoinStatus(context.Background(), "club-1", false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if disabled.JoinEnabled || disabled.JoinCode != "" {
		t.Fatalf("expected disabled with empty code, got %v %q", disabled.JoinEnabled, disabled.JoinCode)
	}
}

func TestMyStatusTiers(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", false, "")
	repo.AddMember(context.Background(), &Member{ClubID: "club-1", UserID: "user-2", Role: RoleMember})
	repo.AddMember(context.Background(), &Member{ClubID: "club-1", UserID: "user-3", Role: RoleAdmin})
	svc := NewService(repo, newFakeDirectory())

	owner, err := svc.MyStatus(context.Background(), "club-1", "owner-1")
	if err != nil || !owner.Owner || !owner.Admin || !owner.Member {
		t.Fatalf("expected full status for owner, got %+v %v", owner, err)
	}

	member, err := svc.MyStatus(context.Background(), "club-1", "user-2")
	if err != nil || member.Owner || member.Admin || !member.Member {
		t.Fatalf("expected member-only status, got %+v %v", member, err)
	}

	admin, err := svc.MyStatus(context.Background(), "club-1", "user-3")
	if err != nil || admin.Owner || !admin.Admin || !admin.Member {
		t.Fatalf("expected admin status, got %+v %v", admin, err)
	}

	outsider, err := svc.MyStatus(context.Background(), "club-1", "user-4")
	if err != nil || outsider.Owner || outsider.Admin || outsider.Member {
		t.Fatalf("expected empty status for outsider, got %+v %v", outsider, err)
	}
}

func TestInfoDetailedSplitsRosters(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", false, "")
	repo.AddMember(context.Background(), &Member{ClubID: "club-1", UserID: "user-2", Role: RoleMember})
	repo.AddMember(context.Background(), &Member{ClubID: "club-1", UserID: "user-3", Role: RoleAdmin})
	dir := newFakeDirectory()
	dir.add("owner-1", "owner@example.com")
	svc := NewService(repo, dir)

	info, err := svc.Info(context.Background(), "club-1", true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if info.Owner == nil || info.Owner.UserID != "owner-1" || info.Owner.Role != RoleOwner {
		t.Fatalf("expected owner summary, got %+v", info.Owner)
	}
	if len(info.Admins) != 1 || info.Admins[0].UserID != "user-3" {
		t.Fatalf("expected one admin, got %+v", info.Admins)
	}
	if len(info.Members) != 2 {
		t.Fatalf("expected admins inside the member set, got %+v", info.Members)
	}
}

func TestDeleteClubMissing(t *testing.T) {
	repo := newFakeClubRepo()
	svc := NewService(repo, newFakeDirectory())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrClubNotFound) {
		t.Fatalf("expected ErrClubNotFound, got %v", err)
	}
}

func TestJoinCodeRetriesOnConflict(t *testing.T) {
	repo := newFakeClubRepo()
	seedClub(repo, "club-1", "owner-1", true, "TAKEN")
	svc := NewService(repo, newFakeDirectory())

	created, err := svc.Create(context.Background(), CreateInput{OwnerID: "owner-2", Name: "Second", JoinEnabled: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.JoinCode == "" || created.JoinCode == "TAKEN" {
		t.Fatalf("expected a distinct fresh code, got %q", created.JoinCode)
	}
}
