package followup

import (
	"os"
	"testing"
)

var followUpWorker *FollowUpWorker

func TestMain(m *testing.M) {
	followUpWorker = NewFollowUpWorker("test", nil)
	followUpWorker.Register()
	os.Exit(m.Run())
}
