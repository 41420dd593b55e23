package inmemory

import (
	"context"

	profiledomain "clubhub/internal/domain/profile"
)

type ProfileRepository struct {
	store *Store
}

func (r *ProfileRepository) GetByClubUser(ctx context.Context, clubID, userID string) (*profiledomain.ClubProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.profiles[profileKey(clubID, userID)]
	if !ok {
		return nil, profiledomain.ErrProfileNotFound
	}
	return &p, nil
}

func (r *ProfileRepository) Create(ctx context.Context, p *profiledomain.ClubProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := profileKey(p.ClubID, p.UserID)
	if _, ok := r.store.profiles[key]; ok {
		return profiledomain.ErrProfileExists
	}
	r.store.profiles[key] = *p
	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *profiledomain.ClubProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := profileKey(p.ClubID, p.UserID)
	if _, ok := r.store.profiles[key]; !ok {
		return profiledomain.ErrProfileNotFound
	}
	r.store.profiles[key] = *p
	return nil
}
