package background

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// StaleRequestAge is how long a request may sit in Pending before the
// reminder task nudges its resident.
const StaleRequestAge = 12 * time.Hour

// BroadcastNewRequest is a background job to notify active helpers
// that a resident just filed a new help request
func (m *BackgroundManager) BroadcastNewRequest(requestID string) error {
	req, err := m.store.GetHelpRequest(requestID)
	if err != nil {
		return err
	}

	helpers, err := m.store.ListActiveHelpers()
	if err != nil {
		return err
	}

	heading, content, err := LocalizedNotification("en", "notification.new_request", map[string]interface{}{
		"Title":    req.Title,
		"Category": req.Category,
	})
	if err != nil {
		return err
	}

	for _, h := range helpers {
		if err := m.notifier.NotifyUserByText(h.ID.String(),
			map[string]string{"en": heading},
			map[string]string{"en": content},
			map[string]interface{}{
				"notification_type": "BROADCAST_NEW_REQUEST",
				"request_id":        requestID,
			}); err != nil {
			log.WithError(err).WithField("user_id", h.ID).Error("notify helper")
		}
	}

	return nil
}

// NotifyRequestAccepted is a background job to tell a resident their
// request has been accepted by a helper
func (m *BackgroundManager) NotifyRequestAccepted(requestID string) error {
	req, err := m.store.GetHelpRequest(requestID)
	if err != nil {
		return err
	}

	heading, content, err := LocalizedNotification("en", "notification.request_accepted", map[string]interface{}{
		"Title": req.Title,
	})
	if err != nil {
		return err
	}

	return m.notifier.NotifyUserByText(req.ResidentID.String(),
		map[string]string{"en": heading},
		map[string]string{"en": content},
		map[string]interface{}{
			"notification_type": "NOTIFY_REQUEST_ACCEPTED",
			"request_id":        requestID,
		})
}

// RemindStaleRequests is a background job that nudges residents whose
// requests have stayed pending for too long
func (m *BackgroundManager) RemindStaleRequests() error {
	reqs, err := m.store.ListStalePendingRequests(StaleRequestAge)
	if err != nil {
		return err
	}

	for _, req := range reqs {
		heading, content, err := LocalizedNotification("en", "notification.request_follow_up", map[string]interface{}{
			"Title": req.Title,
		})
		if err != nil {
			return err
		}

		if err := m.notifier.NotifyUserByText(req.ResidentID.String(),
			map[string]string{"en": heading},
			map[string]string{"en": content},
			map[string]interface{}{
				"notification_type": "REMIND_STALE_REQUEST",
				"request_id":        req.ID.String(),
			}); err != nil {
			log.WithError(err).WithField("request_id", req.ID).Error("notify resident")
		}
	}

	return nil
}
