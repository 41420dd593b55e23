package inmemory

import (
	"sync"

	clubdomain "clubhub/internal/domain/club"
	plannerdomain "clubhub/internal/domain/planner"
	profiledomain "clubhub/internal/domain/profile"
	userdomain "clubhub/internal/domain/user"
)

// Store keeps every table in one place so club deletion can cascade across
// them the way the foreign keys do in postgres. Handy for tests and for
// running the server without a database.
type Store struct {
	mu         sync.RWMutex
	clubs      map[string]clubdomain.Club
	members    map[string]map[string]clubdomain.Member
	activities map[string]plannerdomain.Activity
	plans      map[string]plannerdomain.FinalPlan
	profiles   map[string]profiledomain.ClubProfile
	users      map[string]userdomain.Profile
}

func NewStore() *Store {
	return &Store{
		clubs:      make(map[string]clubdomain.Club),
		members:    make(map[string]map[string]clubdomain.Member),
		activities: make(map[string]plannerdomain.Activity),
		plans:      make(map[string]plannerdomain.FinalPlan),
		profiles:   make(map[string]profiledomain.ClubProfile),
		users:      make(map[string]userdomain.Profile),
	}
}

func (s *Store) Clubs() *ClubRepository {
	return &ClubRepository{store: s}
}

func (s *Store) Planner() *PlannerRepository {
	return &PlannerRepository{store: s}
}

func (s *Store) Profiles() *ProfileRepository {
	return &ProfileRepository{store: s}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{store: s}
}

func profileKey(clubID, userID string) string {
	return clubID + "/" + userID
}
