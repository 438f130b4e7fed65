package store

import (
	"fmt"
	"time"

	"github.com/communityaid/communityaid-api/schema"
)

var ErrOTPInvalid = fmt.Errorf("the one-time password is invalid or has expired")

// CreatePasswordResetOTP stores a fresh OTP for a contact info. Any
// previous unconsumed code for the same contact is superseded.
func (s *CommunityStore) CreatePasswordResetOTP(contactInfo, code string, expiresAt time.Time) error {
	if err := s.ormDB.
		Where("contact_info = ? AND consumed = ?", contactInfo, false).
		Delete(schema.PasswordResetOTP{}).Error; err != nil {
		return err
	}

	otp := schema.PasswordResetOTP{
		ContactInfo: contactInfo,
		Code:        code,
		ExpiresAt:   expiresAt,
	}
	return s.ormDB.Create(&otp).Error
}

// VerifyPasswordResetOTP checks a code without consuming it.
func (s *CommunityStore) VerifyPasswordResetOTP(contactInfo, code string) error {
	var count int64
	if err := s.ormDB.Model(schema.PasswordResetOTP{}).
		Where("contact_info = ? AND code = ? AND consumed = ? AND expires_at > ?",
			contactInfo, code, false, time.Now()).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrOTPInvalid
	}
	return nil
}

// ConsumePasswordResetOTP marks a code as used. The update is
// conditional so a code can be consumed exactly once.
func (s *CommunityStore) ConsumePasswordResetOTP(contactInfo, code string) error {
	result := s.ormDB.Model(schema.PasswordResetOTP{}).
		Where("contact_info = ? AND code = ? AND consumed = ? AND expires_at > ?",
			contactInfo, code, false, time.Now()).
		Update("consumed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOTPInvalid
	}
	return nil
}
