package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBranch(t *testing.T) {
	b, err := ParseBranch("DHA-P6")
	require.NoError(t, err)
	assert.Equal(t, DHAPhase6, b)

	_, err = ParseBranch("Gulberg")
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleNone, r)

	_, err = ParseRole("MOH")
	assert.Error(t, err)
}

func TestParseSelection(t *testing.T) {
	for _, want := range []Selection{Unanswered, Compliant, NonCompliant} {
		got, err := ParseSelection(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseSelection("yes")
	assert.Error(t, err)
}

func TestSelectionAnswered(t *testing.T) {
	assert.False(t, Unanswered.Answered())
	assert.True(t, Compliant.Answered())
	assert.True(t, NonCompliant.Answered())
}
