package inmemory

import (
	"context"
	"sort"
	"time"

	clubdomain "clubhub/internal/domain/club"
)

type ClubRepository struct {
	store *Store
}

func (r *ClubRepository) Transaction(ctx context.Context, fn func(clubdomain.Repository) error) error {
	return fn(r)
}

func (r *ClubRepository) GetClub(ctx context.Context, id string) (*clubdomain.Club, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.clubs[id]
	if !ok {
		return nil, clubdomain.ErrClubNotFound
	}
	return &c, nil
}

func (r *ClubRepository) GetClubByCode(ctx context.Context, code string) (*clubdomain.Club, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.clubs {
		if c.JoinEnabled && c.JoinCode == code {
			result := c
			return &result, nil
		}
	}
	return nil, clubdomain.ErrInvalidJoinCode
}

func (r *ClubRepository) GetMember(ctx context.Context, clubID, userID string) (*clubdomain.Member, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	member, ok := r.store.members[clubID][userID]
	if !ok {
		return nil, clubdomain.ErrMemberNotFound
	}
	return &member, nil
}

func (r *ClubRepository) ListOwned(ctx context.Context, userID string) ([]clubdomain.Club, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	clubs := make([]clubdomain.Club, 0)
	for _, c := range r.store.clubs {
		if c.OwnerID == userID {
			clubs = append(clubs, c)
		}
	}
	sortClubs(clubs)
	return clubs, nil
}

func (r *ClubRepository) ListMemberOf(ctx context.Context, userID string) ([]clubdomain.Club, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	clubs := make([]clubdomain.Club, 0)
	for _, c := range r.store.clubs {
		if c.OwnerID == userID {
			clubs = append(clubs, c)
			continue
		}
		if _, ok := r.store.members[c.ID][userID]; ok {
			clubs = append(clubs, c)
		}
	}
	sortClubs(clubs)
	return clubs, nil
}

func (r *ClubRepository) ListMemberProfiles(ctx context.Context, clubID string) ([]clubdomain.MemberProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	profiles := make([]clubdomain.MemberProfile, 0, len(r.store.members[clubID]))
	for _, member := range r.store.members[clubID] {
		row := clubdomain.MemberProfile{
			UserID:   member.UserID,
			Role:     member.Role,
			JoinedAt: member.JoinedAt,
		}
		if u, ok := r.store.users[member.UserID]; ok {
			row.Email = u.Email
			row.Name = u.Name
		}
		profiles = append(profiles, row)
	}
	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].JoinedAt.Equal(profiles[j].JoinedAt) {
			return profiles[i].UserID < profiles[j].UserID
		}
		return profiles[i].JoinedAt.Before(profiles[j].JoinedAt)
	})
	return profiles, nil
}

func (r *ClubRepository) CreateClub(ctx context.Context, c *clubdomain.Club) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if c.JoinCode != "" {
		for _, existing := range r.store.clubs {
			if existing.JoinCode == c.JoinCode {
				return clubdomain.ErrCodeTaken
			}
		}
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	r.store.clubs[c.ID] = *c
	return nil
}

func (r *ClubRepository) AddMember(ctx context.Context, member *clubdomain.Member) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now().UTC()
	}
	if r.store.members[member.ClubID] == nil {
		r.store.members[member.ClubID] = make(map[string]clubdomain.Member)
	}
	r.store.members[member.ClubID][member.UserID] = *member
	return nil
}

func (r *ClubRepository) UpdateMemberRole(ctx context.Context, clubID, userID, role string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	member, ok := r.store.members[clubID][userID]
	if !ok {
		return clubdomain.ErrMemberNotFound
	}
	member.Role = role
	r.store.members[clubID][userID] = member
	return nil
}

func (r *ClubRepository) UpdateOwner(ctx context.Context, clubID, ownerID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.clubs[clubID]
	if !ok {
		return clubdomain.ErrClubNotFound
	}
	c.OwnerID = ownerID
	r.store.clubs[clubID] = c
	return nil
}

func (r *ClubRepository) UpdateJoinStatus(ctx context.Context, clubID string, enabled bool, code string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if code != "" {
		for id, existing := range r.store.clubs {
			if id != clubID && existing.JoinCode == code {
				return clubdomain.ErrCodeTaken
			}
		}
	}

	c, ok := r.store.clubs[clubID]
	if !ok {
		return clubdomain.ErrClubNotFound
	}
	c.JoinEnabled = enabled
	c.JoinCode = code
	r.store.clubs[clubID] = c
	return nil
}

func (r *ClubRepository) DeleteMember(ctx context.Context, clubID, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.members[clubID], userID)
	return nil
}

// DeleteClub mirrors the postgres cascade: membership rows, activities, the
// final plan and club profiles all go with the club.
func (r *ClubRepository) DeleteClub(ctx context.Context, clubID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.clubs, clubID)
	delete(r.store.members, clubID)
	for id, activity := range r.store.activities {
		if activity.ClubID == clubID {
			delete(r.store.activities, id)
		}
	}
	for id, plan := range r.store.plans {
		if plan.ClubID == clubID {
			delete(r.store.plans, id)
		}
	}
	for key, p := range r.store.profiles {
		if p.ClubID == clubID {
			delete(r.store.profiles, key)
		}
	}
	return nil
}

func (r *ClubRepository) IsCodeTaken(ctx context.Context, code string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.clubs {
		if c.JoinCode == code {
			return true, nil
		}
	}
	return false, nil
}

func sortClubs(clubs []clubdomain.Club) {
	sort.Slice(clubs, func(i, j int) bool {
		if clubs[i].CreatedAt.Equal(clubs[j].CreatedAt) {
			return clubs[i].ID < clubs[j].ID
		}
		return clubs[i].CreatedAt.Before(clubs[j].CreatedAt)
	})
}
