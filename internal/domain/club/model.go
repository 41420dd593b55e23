package club

import "time"

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Club ownership is carried by OwnerID alone; the owner never holds a
// membership row. Admin- and member-level access are computed from OwnerID
// first and the rows second, so the owner always passes both checks.
type Club struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	OwnerID     string    `gorm:"type:uuid;not null;index"`
	JoinEnabled bool      `gorm:"not null;default:false"`
	JoinCode    string    `gorm:"not null;default:''"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (c *Club) IsOwner(userID string) bool {
	return userID != "" && c.OwnerID == userID
}

type Member struct {
	ClubID   string    `gorm:"type:uuid;primaryKey"`
	UserID   string    `gorm:"type:uuid;primaryKey;index"`
	Role     string    `gorm:"type:varchar(16);not null"`
	JoinedAt time.Time `gorm:"autoCreateTime"`
}

func (Member) TableName() string {
	return "club_members"
}

// Status reports the acting user's standing in a club. Admin and member are
// hierarchical: owner implies admin, admin implies member.
type Status struct {
	Owner  bool `json:"owner"`
	Admin  bool `json:"admin"`
	Member bool `json:"member"`
}

// MemberProfile is a membership row joined with the user's identity fields,
// used for detailed club views.
type MemberProfile struct {
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
	Email    *string   `json:"email"`
	Name     *string   `json:"name"`
}

// Info is a club plus the optional detail block resolved for detailed views.
type Info struct {
	Club    Club
	Owner   *MemberProfile
	Admins  []MemberProfile
	Members []MemberProfile
}
