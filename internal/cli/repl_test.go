package cli_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mn2tech/studiocmd/command"
	"github.com/mn2tech/studiocmd/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepl(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"grain week",
		"",
		"grain year",
		"add trend",
		"quit",
		"theme ignored",
	}, "\n")

	out, err := run(t, input, "repl", "--format", "yaml")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"timeGrain: week",
		"error: grain must be one of: day, week, month",
		"timeGrain: week",
		"enabledBlocks:",
		"  TrendBlock: true",
		"",
	}, "\n"), out)
}

func TestRepl_StatePersists(t *testing.T) {
	t.Parallel()

	state := filepath.Join(t.TempDir(), "repl.zst")

	_, err := run(t, "template govcon\nexit\n", "repl", "--state", state)
	require.NoError(t, err)

	out, err := run(t, "compare half\n", "repl", "--state", state)
	require.NoError(t, err)
	assert.JSONEq(t, `{"templateId":"govcon","compareMode":"half"}`, out)
}

func TestRepl_Help(t *testing.T) {
	t.Parallel()

	out, err := run(t, "HELP\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "topn <1-100>")
}

func TestRepl_StateKeepsOtherSessions(t *testing.T) {
	t.Parallel()

	state := filepath.Join(t.TempDir(), "sessions.zst")

	server, err := session.NewStore(session.Config{Capacity: 8}, nil)
	require.NoError(t, err)

	for _, id := range []string{"run-1", "run-2", "run-3"} {
		require.NoError(t, server.Put(id, command.Overrides{TemplateID: "saas"}))
	}

	require.NoError(t, server.SaveFile(state))

	_, err = run(t, "grain day\n", "repl", "--state", state)
	require.NoError(t, err)

	reloaded, err := session.NewStore(session.Config{Capacity: 8}, nil)
	require.NoError(t, err)
	require.NoError(t, reloaded.LoadFile(state))

	assert.Equal(t, []string{"run-1", "run-2", "run-3", "repl"}, reloaded.IDs())

	got, ok := reloaded.Get("repl")
	require.True(t, ok)
	assert.Equal(t, command.GrainDay, got.TimeGrain)
}
