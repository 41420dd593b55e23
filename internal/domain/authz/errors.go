package authz

import "errors"

var (
	ErrUnauthenticated = errors.New("you need to be logged in")
	ErrMissingClubID   = errors.New("club id is required")
)
