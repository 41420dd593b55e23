package profile

import "errors"

var (
	ErrProfileNotFound = errors.New("club profile not found")

	// ErrProfileExists is returned by repositories when an insert trips the
	// (club,user) unique constraint; GetOrCreate re-fetches on it.
	ErrProfileExists = errors.New("club profile already exists")
)
