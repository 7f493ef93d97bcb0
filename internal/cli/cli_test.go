package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mn2tech/studiocmd/command"
	"github.com/mn2tech/studiocmd/internal/cli"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{"serve", "repl", "parse", "apply", "help-commands", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"grain", []string{"parse", "grain", "WEEK"}, `{"type":"grain","value":"week"}`},
		{"quoted words", []string{"parse", `theme "dark blue"`}, `{"type":"theme","value":"dark blue"}`},
		{"focus", []string{"parse", "focus", "agency,", "region"}, `{"type":"focus","value":["agency","region"]}`},
		{"unknown", []string{"parse", "colour", "red"}, `{"type":"unknown","raw":"colour red",` +
			`"error":"Unknown command: colour. Type \"help\" for commands."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, out)
		})
	}
}

func TestParseCommand_Dump(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "parse", "--dump", "compare", "last90")
	require.NoError(t, err)
	assert.Contains(t, out, "last90")
}

func TestParseCommand_NeedsText(t *testing.T) {
	t.Parallel()

	_, err := run(t, "", "parse")
	require.Error(t, err)
}

func TestApplyCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "apply", "template govcon", "add map", "topn 20", "grain month")
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"templateId":"govcon","timeGrain":"month","enabledBlocks":{"GeoBlock":true},"topNLimit":20}`, out)
}

func TestApplyCommand_YAML(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "apply", "--format", "yaml", "breakdown by agency")
	require.NoError(t, err)
	assert.Equal(t, "breakdownDimension: agency\n", out)

	out, err = run(t, "", "apply", "--format", "yaml", "reset")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", out)
}

func TestApplyCommand_FromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")

	require.NoError(t, os.WriteFile(good, []byte(`{"themeId":"dark","enabledBlocks":{"TrendBlock":true}}`), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte(`{"timeGrain":"year"}`), 0o600))

	out, err := run(t, "", "apply", "--from", good, "remove trend")
	require.NoError(t, err)

	var got command.Overrides

	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, command.Overrides{
		ThemeID:       "dark",
		EnabledBlocks: map[command.BlockType]bool{command.TrendBlock: false},
	}, got)

	_, err = run(t, "", "apply", "--from", bad, "reset")
	require.ErrorIs(t, err, command.ErrInvalidOverrides)

	_, err = run(t, "", "apply", "--from", filepath.Join(dir, "missing.json"), "reset")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyCommand_StopsOnFirstError(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "apply", "theme dark", "add sparkline", "topn 5")
	require.ErrorIs(t, err, cli.ErrCommandRejected)
	assert.Contains(t, err.Error(), `"add sparkline"`)
	assert.Contains(t, err.Error(), "add: unknown block")
	assert.Empty(t, out)
}

func TestApplyCommand_Help(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "apply", "theme dark", "help")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, command.HelpText()+"\n"))
	assert.Contains(t, out, `"themeId": "dark"`)
}

func TestFormat_Rejected(t *testing.T) {
	t.Parallel()

	_, err := run(t, "", "apply", "--format", "toml", "reset")
	require.ErrorIs(t, err, cli.ErrUnknownFormat)

	_, err = run(t, "", "repl", "--format", "xml")
	require.ErrorIs(t, err, cli.ErrUnknownFormat)
}

func TestHelpCommands(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "help-commands")
	require.NoError(t, err)
	assert.Equal(t, command.HelpText()+"\n", out)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "studioctl dev (commit none, built unknown)\n", out)
}

func TestServe_BadConfig(t *testing.T) {
	t.Parallel()

	_, err := run(t, "", "serve", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
