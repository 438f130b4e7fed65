package store

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/communityaid/communityaid-api/schema"
)

var (
	ErrUserTaken    = fmt.Errorf("this contact info has been registered for the role")
	ErrUserNotFound = fmt.Errorf("user not found")
)

// CreateUser registers a user into the communityaid system. A contact
// info can be registered once per role.
func (s *CommunityStore) CreateUser(name, contactInfo, location, passwordDigest, role string) (*schema.User, error) {
	u := schema.User{
		Name:           name,
		ContactInfo:    contactInfo,
		Location:       location,
		PasswordDigest: passwordDigest,
		Role:           role,
		Status:         schema.UserActive,
	}

	if err := s.ormDB.Create(&u).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrUserTaken
		}
		return nil, err
	}
	return &u, nil
}

// GetUser returns a user instance of a given id
func (s *CommunityStore) GetUser(id string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByContact returns the user registered with the given contact
// info for a specific role.
func (s *CommunityStore) GetUserByContact(contactInfo, role string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("contact_info = ? AND role = ?", contactInfo, role).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ContactRegistered reports whether any user is registered with the
// given contact info.
func (s *CommunityStore) ContactRegistered(contactInfo string) (bool, error) {
	var count int64
	if err := s.ormDB.Model(schema.User{}).Where("contact_info = ?", contactInfo).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateUserProfile updates name, contact info and location for a user
func (s *CommunityStore) UpdateUserProfile(id, name, contactInfo, location string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}

	if name != "" {
		u.Name = name
	}
	if contactInfo != "" {
		u.ContactInfo = contactInfo
	}
	if location != "" {
		u.Location = location
	}

	if err := s.ormDB.Save(&u).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrUserTaken
		}
		return nil, err
	}
	return &u, nil
}

// UpdateUserPassword replaces the password digest for every account
// registered with the given contact info.
func (s *CommunityStore) UpdateUserPassword(contactInfo, passwordDigest string) error {
	result := s.ormDB.Model(schema.User{}).
		Where("contact_info = ?", contactInfo).
		Update("password_digest", passwordDigest)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListUsers returns all residents and helpers for admin moderation
func (s *CommunityStore) ListUsers() ([]schema.User, error) {
	users := []schema.User{}
	if err := s.ormDB.
		Where("role IN (?)", []string{schema.UserRoleResident, schema.UserRoleHelper}).
		Order("created_at, id").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListActiveHelpers returns all helpers that are not blocked. Used for
// broadcasting new help requests.
func (s *CommunityStore) ListActiveHelpers() ([]schema.User, error) {
	helpers := []schema.User{}
	if err := s.ormDB.
		Where("role = ? AND status = ?", schema.UserRoleHelper, schema.UserActive).
		Find(&helpers).Error; err != nil {
		return nil, err
	}
	return helpers, nil
}

// SetUserStatus blocks or unblocks a user
func (s *CommunityStore) SetUserStatus(id, status string) error {
	result := s.ormDB.Model(schema.User{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *CommunityStore) CountUsersByRole() (map[string]int64, error) {
	return s.countByColumn("users", "role")
}
