package studio_test

import (
	"testing"

	studio "github.com/mn2tech/studiocmd"

	"github.com/stretchr/testify/require"
)

func TestVersion_DefaultValues(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dev", studio.Version)
	require.Equal(t, "none", studio.Commit)
	require.Equal(t, "unknown", studio.CompiledAt)
}
