package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/communityaid/communityaid-api/schema"
)

var ErrReportNotExist = fmt.Errorf("the report does not exist")

// CreateReport files a moderation report against a user. requestID is
// optional and links the report to a help request when present.
func (s *CommunityStore) CreateReport(reporterID, reportedUserID, requestID, issueType, description string) (*schema.Report, error) {
	reporter, err := uuid.Parse(reporterID)
	if err != nil {
		return nil, err
	}
	reported, err := uuid.Parse(reportedUserID)
	if err != nil {
		return nil, err
	}

	report := schema.Report{
		ReporterID:     reporter,
		ReportedUserID: reported,
		IssueType:      issueType,
		Description:    description,
		Status:         schema.ReportPending,
	}

	if requestID != "" {
		reqID, err := uuid.Parse(requestID)
		if err != nil {
			return nil, err
		}
		report.RequestID = &reqID
	}

	if err := s.ormDB.Create(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *CommunityStore) ListReportsByReporter(reporterID string) ([]schema.Report, error) {
	reports := []schema.Report{}
	if err := s.ormDB.
		Where("reporter_id = ?", reporterID).
		Order("created_at desc, id").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *CommunityStore) ListAllReports() ([]schema.Report, error) {
	reports := []schema.Report{}
	if err := s.ormDB.Order("created_at desc, id").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// UpdateReportStatus is the admin moderation action on a report.
func (s *CommunityStore) UpdateReportStatus(id, status, adminNotes string) error {
	result := s.ormDB.Model(schema.Report{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"admin_notes": adminNotes,
		})
	if result.Error != nil {
		if gorm.IsRecordNotFoundError(result.Error) {
			return ErrReportNotExist
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotExist
	}
	return nil
}

func (s *CommunityStore) CountReportsByStatus() (map[string]int64, error) {
	return s.countByColumn("reports", "status")
}
