package schema

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetOTP is a one-time password issued for a password reset.
// A code is bound to the contact info it was requested for, expires
// after a short window and can be consumed exactly once.
type PasswordResetOTP struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	ContactInfo string    `json:"contact_info" gorm:"index"`
	Code        string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
	Consumed    bool      `json:"consumed" sql:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}
