package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionString(t *testing.T) {
	assert.Equal(t, "quit", MonitorQuit.String())
	assert.Equal(t, "pause", MonitorPauseToggle.String())
	assert.Equal(t, "step-up", MonitorStepUp.String())
	assert.Equal(t, "step-down", MonitorStepDown.String())
	assert.Equal(t, "reset", MonitorReset.String())
	assert.Equal(t, "unknown", Action(99).String())
}
