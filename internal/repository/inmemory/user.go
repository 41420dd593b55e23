package inmemory

import (
	"context"

	userdomain "clubhub/internal/domain/user"
)

type UserRepository struct {
	store *Store
}

func (r *UserRepository) UpsertProfile(ctx context.Context, profile *userdomain.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.users[profile.UserID]
	if !ok {
		r.store.users[profile.UserID] = *profile
		return nil
	}

	if profile.Email != nil {
		existing.Email = profile.Email
	}
	if profile.Name != nil {
		existing.Name = profile.Name
	}
	r.store.users[profile.UserID] = existing
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (*userdomain.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	profile, ok := r.store.users[userID]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return &profile, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userdomain.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, profile := range r.store.users {
		if profile.Email != nil && *profile.Email == email {
			result := profile
			return &result, nil
		}
	}
	return nil, userdomain.ErrUserNotFound
}
