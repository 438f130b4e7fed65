package schema

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAdvanceSource(t *testing.T) {
	from, ok := AdvanceSource(HelpInProgress)
	assert.True(t, ok)
	assert.Equal(t, HelpAccepted, from)

	from, ok = AdvanceSource(HelpCompleted)
	assert.True(t, ok)
	assert.Equal(t, HelpInProgress, from)

	// no helper-driven path into any other status
	for _, target := range []string{HelpPending, HelpAccepted, HelpRejected, "Done", ""} {
		_, ok := AdvanceSource(target)
		assert.False(t, ok, "unexpected advance target: %s", target)
	}
}

func TestIsParticipant(t *testing.T) {
	resident := uuid.New()
	helper := uuid.New()
	stranger := uuid.New()

	r := HelpRequest{
		ID:         uuid.New(),
		ResidentID: resident,
		Status:     HelpAccepted,
		HelperID:   &helper,
	}

	assert.True(t, r.IsParticipant(resident.String()))
	assert.True(t, r.IsParticipant(helper.String()))
	assert.False(t, r.IsParticipant(stranger.String()))

	pending := HelpRequest{
		ID:         uuid.New(),
		ResidentID: resident,
		Status:     HelpPending,
	}

	assert.False(t, pending.HasHelper())
	assert.True(t, pending.IsParticipant(resident.String()))
	assert.False(t, pending.IsParticipant(helper.String()))
}
