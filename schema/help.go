package schema

import (
	"time"

	"github.com/google/uuid"
)

// Help request statuses. Completed and Rejected are terminal.
const (
	HelpPending    = "Pending"
	HelpAccepted   = "Accepted"
	HelpInProgress = "In-progress"
	HelpCompleted  = "Completed"
	HelpRejected   = "Rejected"
)

type HelpRequest struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	ResidentID  uuid.UUID  `json:"resident_id" gorm:"type:uuid"`
	HelperID    *uuid.UUID `json:"helper_id" gorm:"type:uuid"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Status      string     `json:"status" sql:"default:'Pending'"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// advanceSources maps a target status to the status a request must
// currently hold before a helper may advance it. Any target not listed
// is not reachable through a helper status update.
var advanceSources = map[string]string{
	HelpInProgress: HelpAccepted,
	HelpCompleted:  HelpInProgress,
}

// AdvanceSource returns the required current status for advancing a
// request to the target status.
func AdvanceSource(target string) (string, bool) {
	from, ok := advanceSources[target]
	return from, ok
}

func (r *HelpRequest) HasHelper() bool {
	return r.HelperID != nil
}

// IsParticipant reports whether a user is the resident or the assigned
// helper of this request.
func (r *HelpRequest) IsParticipant(userID string) bool {
	if r.ResidentID.String() == userID {
		return true
	}
	return r.HelperID != nil && r.HelperID.String() == userID
}
