package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/forge/internal/core/domain"
)

func TestPhase_Order(t *testing.T) {
	phases := []domain.Phase{
		domain.PhaseNone,
		domain.PhaseLoadSettings,
		domain.PhaseConfigure,
		domain.PhaseTaskGraph,
		domain.PhaseRunTasks,
		domain.PhaseFinished,
	}
	for i := 1; i < len(phases); i++ {
		assert.Less(t, phases[i-1], phases[i], "%s must precede %s", phases[i-1], phases[i])
	}
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase    domain.Phase
		expected string
	}{
		{domain.PhaseNone, "None"},
		{domain.PhaseLoadSettings, "LoadSettings"},
		{domain.PhaseConfigure, "Configure"},
		{domain.PhaseTaskGraph, "TaskGraph"},
		{domain.PhaseRunTasks, "RunTasks"},
		{domain.PhaseFinished, "Finished"},
		{domain.Phase(42), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestPhase_DisplayName(t *testing.T) {
	assert.Equal(t, "Build", domain.PhaseRunTasks.DisplayName())
	assert.Equal(t, "Configure", domain.PhaseConfigure.DisplayName())
	assert.Equal(t, "LoadSettings", domain.PhaseLoadSettings.DisplayName())
	assert.Equal(t, "Finished", domain.PhaseFinished.DisplayName())
}
