package schema

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses follow the admin moderation flow.
const (
	ReportPending     = "Pending"
	ReportUnderReview = "Under Review"
	ReportResolved    = "Resolved"
	ReportDismissed   = "Dismissed"
)

var reportStatuses = map[string]struct{}{
	ReportPending:     {},
	ReportUnderReview: {},
	ReportResolved:    {},
	ReportDismissed:   {},
}

// ReportIssueTypes is the fixed set of issue types a user can report.
var ReportIssueTypes = []string{
	"Inappropriate Behavior",
	"Harassment",
	"Spam",
	"Fraud",
	"Other",
}

func ValidReportStatus(status string) bool {
	_, ok := reportStatuses[status]
	return ok
}

func ValidIssueType(issueType string) bool {
	for _, t := range ReportIssueTypes {
		if t == issueType {
			return true
		}
	}
	return false
}

type Report struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	ReporterID     uuid.UUID  `json:"reporter_id" gorm:"type:uuid"`
	ReportedUserID uuid.UUID  `json:"reported_user_id" gorm:"type:uuid"`
	RequestID      *uuid.UUID `json:"request_id" gorm:"type:uuid"`
	IssueType      string     `json:"issue_type"`
	Description    string     `json:"description"`
	Status         string     `json:"status" sql:"default:'Pending'"`
	AdminNotes     string     `json:"admin_notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
