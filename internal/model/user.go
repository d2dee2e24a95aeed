package model

type UserRole string

const (
	RoleUser           UserRole = "user"
	RoleUnverifiedUser UserRole = "unverified_user"
	RoleAdmin          UserRole = "admin"
)

// IsElevated reports whether the role may manage other users' content.
func (r UserRole) IsElevated() bool {
	return r == RoleAdmin
}

// User is the account record the review domain reads for identity and
// display fields. Accounts are written by the auth service.
// swagger:model User
type User struct {
	BaseModel
	Email          *string  `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	Nickname       string   `gorm:"size:100;not null" json:"nickname"`
	ProfileImageID *string  `gorm:"type:varchar(36)" json:"profileImageId,omitempty"`
	Role           UserRole `gorm:"size:20;default:'user'" json:"role"`
	Disabled       bool     `gorm:"default:false" json:"disabled"`
}

func (User) TableName() string {
	return "users"
}
