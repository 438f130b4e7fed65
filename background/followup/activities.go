package followup

import (
	"context"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/communityaid/communityaid-api/background"
	"github.com/communityaid/communityaid-api/schema"
	"github.com/communityaid/communityaid-api/store"
)

// RequestStillPendingActivity reports whether a help request is still
// waiting for a helper. A removed request counts as not pending so the
// workflow stops following up on it.
func (f *FollowUpWorker) RequestStillPendingActivity(ctx context.Context, requestID string) (bool, error) {
	req, err := f.store.GetHelpRequest(requestID)
	if err != nil {
		if err == store.ErrRequestNotExist {
			return false, nil
		}
		return false, err
	}

	return req.Status == schema.HelpPending, nil
}

// NotifyRequestFollowUpActivity sends a reminder to the resident whose
// request has stayed pending past the check interval
func (f *FollowUpWorker) NotifyRequestFollowUpActivity(ctx context.Context, requestID string) error {
	logger := activity.GetLogger(ctx)

	req, err := f.store.GetHelpRequest(requestID)
	if err != nil {
		return err
	}

	heading, content, err := background.LocalizedNotification("en", "notification.request_follow_up", map[string]interface{}{
		"Title": req.Title,
	})
	if err != nil {
		logger.Error("can not generate follow-up message", zap.Error(err))
		return err
	}

	logger.Info("Send pending request reminder",
		zap.String("requestID", requestID),
		zap.String("residentID", req.ResidentID.String()))

	return f.Background.NotifyUserByText(req.ResidentID.String(),
		map[string]string{"en": heading},
		map[string]string{"en": content},
		map[string]interface{}{
			"notification_type": "REQUEST_PENDING_FOLLOW_UP",
			"request_id":        requestID,
		},
	)
}
