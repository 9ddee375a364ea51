package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanAssignmentsCommand_Success(t *testing.T) {
	// Act
	cmd := commands.NewPlanAssignmentsCommand()

	// Assert
	assert.NotZero(t, cmd)
	require.NoError(t, cmd.Validate())
}

func TestPlanAssignmentsCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange
	var cmd commands.PlanAssignmentsCommand // zero value, not constructed via constructor

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPlanAssignmentsCommandIsNotConstructed)
}
