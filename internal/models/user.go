package models

import "time"

// UserRole is denormalized onto the user row. It always reflects whether a
// Member or Trainer row currently references the user, and is only ever
// mutated in the same transaction as that row.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleMember  UserRole = "member"
	RoleTrainer UserRole = "trainer"
)

// ValidRole reports whether the value is one of the three known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleMember, RoleTrainer:
		return true
	}
	return false
}

type User struct {
	BaseModel
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	PhoneNumber  string    `gorm:"size:20" json:"phoneNumber"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	DateOfBirth  time.Time `gorm:"type:date" json:"dateOfBirth"`

	// Relations
	Member  *Member  `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	Trainer *Trainer `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
}
