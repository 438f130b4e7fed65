package followup

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"
)

const (
	PendingRequestCheckInterval = 12 * time.Hour
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// PendingRequestFollowUpWorkflow checks a help request periodically and
// reminds its resident as long as the request stays pending. The workflow
// completes once the request leaves the pending state.
func (f *FollowUpWorker) PendingRequestFollowUpWorkflow(ctx workflow.Context, requestID string) error {

	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	logger := workflow.GetLogger(ctx)

	selector := workflow.NewSelector(ctx)

	timerCancelCtx, _ := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, PendingRequestCheckInterval)
	selector.AddFuture(timerFuture, func(future workflow.Future) {
		logger.Info("Start periodically pending request follow up")
	})

	selector.Select(ctx)

	logger.Info("Check request for following up")
	var pending bool
	err := workflow.ExecuteActivity(ctx, f.RequestStillPendingActivity, requestID).Get(ctx, &pending)
	if err != nil {
		logger.Error("Fail to check request status", zap.Error(err), zap.String("requestID", requestID))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, f.PendingRequestFollowUpWorkflow, requestID)
	}

	if !pending {
		logger.Info("Request is no longer pending. Stop following up", zap.String("requestID", requestID))
		return nil
	}

	if err := workflow.ExecuteActivity(ctx, f.NotifyRequestFollowUpActivity, requestID).Get(ctx, nil); err != nil {
		logger.Error("Fail to notify resident", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, f.PendingRequestFollowUpWorkflow, requestID)
	}

	return workflow.NewContinueAsNewError(ctx, f.PendingRequestFollowUpWorkflow, requestID)
}
