package schema

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Residents file help requests, helpers fulfill them and
// admins moderate the platform.
const (
	UserRoleResident = "Resident"
	UserRoleHelper   = "Helper"
	UserRoleAdmin    = "Admin"
)

const (
	UserActive  = "Active"
	UserBlocked = "Blocked"
)

type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Name           string    `json:"name"`
	ContactInfo    string    `json:"contact_info" gorm:"unique_index:idx_users_contact_role"`
	Location       string    `json:"location"`
	PasswordDigest string    `json:"-"`
	Role           string    `json:"role" gorm:"unique_index:idx_users_contact_role"`
	Status         string    `json:"status" sql:"default:'Active'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) IsBlocked() bool {
	return u.Status == UserBlocked
}
