package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/communityaid/communityaid-api/schema"
)

var (
	ErrRequestNotExist   = fmt.Errorf("the request does not exist")
	ErrRequestTaken      = fmt.Errorf("the request has already been taken")
	ErrNotAssignedHelper = fmt.Errorf("the requester is not the assigned helper")
	ErrInvalidTransition = fmt.Errorf("the status transition is not allowed")
)

// CreateHelpRequest creates a help request entry with status Pending
// and no helper assigned.
func (s *CommunityStore) CreateHelpRequest(residentID, title, description, category string) (*schema.HelpRequest, error) {
	resident, err := uuid.Parse(residentID)
	if err != nil {
		return nil, err
	}

	req := schema.HelpRequest{
		ResidentID:  resident,
		Title:       title,
		Description: description,
		Category:    category,
		Status:      schema.HelpPending,
	}

	if err := s.ormDB.Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *CommunityStore) GetHelpRequest(id string) (*schema.HelpRequest, error) {
	var req schema.HelpRequest

	if err := s.ormDB.Where("id = ?", id).First(&req).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	return &req, nil
}

// ListHelpRequests returns every request regardless of status
func (s *CommunityStore) ListHelpRequests() ([]schema.HelpRequest, error) {
	reqs := []schema.HelpRequest{}
	if err := s.ormDB.Order("created_at, id").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// ListAvailableRequests returns all pending requests in a stable order
// so helpers browse a deterministic listing.
func (s *CommunityStore) ListAvailableRequests() ([]schema.HelpRequest, error) {
	reqs := []schema.HelpRequest{}
	if err := s.ormDB.
		Where("status = ?", schema.HelpPending).
		Order("created_at, id").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// ListRequestsByUser returns the requests a user participates in:
// residents see requests they filed, helpers see requests assigned to
// them, across all statuses.
func (s *CommunityStore) ListRequestsByUser(userID, role string) ([]schema.HelpRequest, error) {
	reqs := []schema.HelpRequest{}

	query := s.ormDB.Order("created_at desc, id")
	if role == schema.UserRoleHelper {
		query = query.Where("helper_id = ?", userID)
	} else {
		query = query.Where("resident_id = ?", userID)
	}

	if err := query.Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// ListStalePendingRequests returns pending requests older than the
// given duration, for reminder notifications.
func (s *CommunityStore) ListStalePendingRequests(olderThan time.Duration) ([]schema.HelpRequest, error) {
	reqs := []schema.HelpRequest{}
	cutoff := time.Now().Add(-olderThan)
	if err := s.ormDB.
		Where("status = ? AND created_at <= ?", schema.HelpPending, cutoff).
		Order("created_at, id").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// AcceptHelpRequest assigns a helper to a pending request. The update
// is conditional on the request still being Pending so that two
// concurrent accepts resolve to exactly one winner.
func (s *CommunityStore) AcceptHelpRequest(id, helperID string) error {
	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND resident_id != ? AND status = ?", id, helperID, schema.HelpPending).
		Updates(map[string]interface{}{
			"status":    schema.HelpAccepted,
			"helper_id": helperID,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := s.GetHelpRequest(id); err != nil {
			return err
		}
		return ErrRequestTaken
	}

	return nil
}

// DeclineHelpRequest releases a request back to the pending pool. Only
// the assigned helper may decline, and only while the request is
// Accepted or In-progress.
func (s *CommunityStore) DeclineHelpRequest(id, helperID string) error {
	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND helper_id = ? AND status IN (?)",
			id, helperID, []string{schema.HelpAccepted, schema.HelpInProgress}).
		Updates(map[string]interface{}{
			"status":    schema.HelpPending,
			"helper_id": nil,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		req, err := s.GetHelpRequest(id)
		if err != nil {
			return err
		}
		if req.HelperID == nil || req.HelperID.String() != helperID {
			return ErrNotAssignedHelper
		}
		return ErrInvalidTransition
	}

	return nil
}

// AdvanceRequestStatus moves a request forward along
// Accepted -> In-progress -> Completed. Any other target is rejected.
func (s *CommunityStore) AdvanceRequestStatus(id, helperID, newStatus string) error {
	from, ok := schema.AdvanceSource(newStatus)
	if !ok {
		return ErrInvalidTransition
	}

	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND helper_id = ? AND status = ?", id, helperID, from).
		Update("status", newStatus)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		req, err := s.GetHelpRequest(id)
		if err != nil {
			return err
		}
		// a wrong source status is an invalid transition no matter who
		// asks; the helper check only applies when the status matched
		if req.Status != from {
			return ErrInvalidTransition
		}
		return ErrNotAssignedHelper
	}

	return nil
}

// RejectHelpRequest is the admin moderation path into the Rejected
// state. It applies only while a request is still Pending.
func (s *CommunityStore) RejectHelpRequest(id string) error {
	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND status = ?", id, schema.HelpPending).
		Update("status", schema.HelpRejected)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := s.GetHelpRequest(id); err != nil {
			return err
		}
		return ErrInvalidTransition
	}

	return nil
}

func (s *CommunityStore) CountRequestsByStatus() (map[string]int64, error) {
	return s.countByColumn("help_requests", "status")
}
