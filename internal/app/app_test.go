package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMathSolverApp_Initializers(t *testing.T) {
	app := NewMathSolverApp()
	require.NotNil(t, app, "NewMathSolverApp should not return nil")
}
