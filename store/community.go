package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/communityaid/communityaid-api/schema"
)

// communityaid main datastore
type CommunityCore interface {
	Ping() error

	// Users
	CreateUser(name, contactInfo, location, passwordDigest, role string) (*schema.User, error)
	GetUser(id string) (*schema.User, error)
	GetUserByContact(contactInfo, role string) (*schema.User, error)
	ContactRegistered(contactInfo string) (bool, error)
	UpdateUserProfile(id, name, contactInfo, location string) (*schema.User, error)
	UpdateUserPassword(contactInfo, passwordDigest string) error
	ListUsers() ([]schema.User, error)
	ListActiveHelpers() ([]schema.User, error)
	SetUserStatus(id, status string) error
	CountUsersByRole() (map[string]int64, error)

	// Help requests
	CreateHelpRequest(residentID, title, description, category string) (*schema.HelpRequest, error)
	GetHelpRequest(id string) (*schema.HelpRequest, error)
	ListHelpRequests() ([]schema.HelpRequest, error)
	ListAvailableRequests() ([]schema.HelpRequest, error)
	ListRequestsByUser(userID, role string) ([]schema.HelpRequest, error)
	ListStalePendingRequests(olderThan time.Duration) ([]schema.HelpRequest, error)
	AcceptHelpRequest(id, helperID string) error
	DeclineHelpRequest(id, helperID string) error
	AdvanceRequestStatus(id, helperID, newStatus string) error
	RejectHelpRequest(id string) error
	CountRequestsByStatus() (map[string]int64, error)

	// Reports
	CreateReport(reporterID, reportedUserID, requestID, issueType, description string) (*schema.Report, error)
	ListReportsByReporter(reporterID string) ([]schema.Report, error)
	ListAllReports() ([]schema.Report, error)
	UpdateReportStatus(id, status, adminNotes string) error
	CountReportsByStatus() (map[string]int64, error)

	// Password reset
	CreatePasswordResetOTP(contactInfo, code string, expiresAt time.Time) error
	VerifyPasswordResetOTP(contactInfo, code string) error
	ConsumePasswordResetOTP(contactInfo, code string) error
}

// CommunityStore is an implementation of CommunityCore
type CommunityStore struct {
	ormDB *gorm.DB
}

func NewCommunityStore(ormDB *gorm.DB) *CommunityStore {
	return &CommunityStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *CommunityStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// countByColumn runs a grouped count over a table column.
func (s *CommunityStore) countByColumn(table, column string) (map[string]int64, error) {
	rows, err := s.ormDB.Table(table).
		Select(column + ", count(*) as total").
		Group(column).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var key string
		var total int64
		if err := rows.Scan(&key, &total); err != nil {
			return nil, err
		}
		counts[key] = total
	}

	return counts, rows.Err()
}
