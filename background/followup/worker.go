package followup

import (
	"net/http"
	"time"

	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/communityaid/communityaid-api/background"
	"github.com/communityaid/communityaid-api/external/onesignal"
	"github.com/communityaid/communityaid-api/store"
)

const TaskListName = "communityaid-followup-tasks"

type FollowUpWorker struct {
	background.Background
	domain string
	store  store.CommunityCore
}

func NewFollowUpWorker(domain string, community store.CommunityCore) *FollowUpWorker {
	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	b := background.Background{Onesignal: o}
	return &FollowUpWorker{
		Background: b,
		domain:     domain,
		store:      community,
	}
}

func (f *FollowUpWorker) Register() {
	workflow.RegisterWithOptions(f.PendingRequestFollowUpWorkflow, workflow.RegisterOptions{Name: "PendingRequestFollowUpWorkflow"})

	activity.RegisterWithOptions(f.RequestStillPendingActivity, activity.RegisterOptions{Name: "RequestStillPendingActivity"})
	activity.RegisterWithOptions(f.NotifyRequestFollowUpActivity, activity.RegisterOptions{Name: "NotifyRequestFollowUpActivity"})
}

func (f *FollowUpWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	// TaskListName identifies set of client workflows, activities, and workers.
	// It could be your group or client or application name.
	workerOptions := worker.Options{
		Logger:       logger,
		MetricsScope: tally.NewTestScope(TaskListName, map[string]string{}),
	}

	worker := worker.New(
		service,
		f.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
