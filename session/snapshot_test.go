package session_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mn2tech/studiocmd/command"
	"github.com/mn2tech/studiocmd/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	source, _ := newStore(t, 8)

	require.NoError(t, source.Put("a", command.Overrides{
		TemplateID:    "govcon",
		TimeGrain:     command.GrainMonth,
		EnabledBlocks: map[command.BlockType]bool{command.GeoBlock: false, command.TrendBlock: true},
		TopNLimit:     20,
	}))
	require.NoError(t, source.Put("b", command.Overrides{FocusDimensions: []string{"agency", "state"}}))

	var buf bytes.Buffer

	require.NoError(t, source.Save(&buf))

	target, _ := newStore(t, 8)
	require.NoError(t, target.Load(&buf))

	assert.Equal(t, []string{"a", "b"}, target.IDs())

	restored, ok := target.Get("a")
	require.True(t, ok)
	assert.Equal(t, "govcon", restored.TemplateID)
	assert.Equal(t, command.GrainMonth, restored.TimeGrain)
	assert.Equal(t, 20, restored.TopNLimit)
	assert.Equal(t, map[command.BlockType]bool{command.GeoBlock: false, command.TrendBlock: true}, restored.EnabledBlocks)

	restored, ok = target.Get("b")
	require.True(t, ok)
	assert.Equal(t, []string{"agency", "state"}, restored.FocusDimensions)
}

func TestStore_LoadRejectsGarbage(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, 8)

	err := store.Load(bytes.NewReader([]byte("not a snapshot")))
	require.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestStore_SaveFileAndLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sessions.snapshot")

	source, _ := newStore(t, 8)
	require.NoError(t, source.Put("run-1", command.Overrides{CompareMode: command.CompareLast30}))
	require.NoError(t, source.SaveFile(path))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")

	target, _ := newStore(t, 8)
	require.NoError(t, target.LoadFile(path))

	restored, ok := target.Get("run-1")
	require.True(t, ok)
	assert.Equal(t, command.CompareLast30, restored.CompareMode)
}

func TestStore_LoadFileMissingIsNotAnError(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, 8)

	err := store.LoadFile(filepath.Join(t.TempDir(), "missing.snapshot"))
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestStore_LoadFileDirectoryFails(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, 8)

	err := store.LoadFile(t.TempDir())
	require.Error(t, err)
}

func TestNewStore_NilLogger(t *testing.T) {
	t.Parallel()

	store, err := session.NewStore(session.Config{}, nil)
	require.NoError(t, err)
	require.NotNil(t, store)
}

func TestStore_LoadRejectsInvalidSession(t *testing.T) {
	t.Parallel()

	// Put stores what it is given, so a bad entry can reach a snapshot.
	source, _ := newStore(t, 8)
	require.NoError(t, source.Put("ok", command.Overrides{TimeGrain: command.GrainWeek}))
	require.NoError(t, source.Put("bad", command.Overrides{TimeGrain: "year", TopNLimit: 500}))

	var buf bytes.Buffer

	require.NoError(t, source.Save(&buf))

	target, _ := newStore(t, 8)

	err := target.Load(&buf)
	require.ErrorIs(t, err, session.ErrInvalidSnapshot)
	require.ErrorIs(t, err, command.ErrInvalidOverrides)
	assert.Equal(t, 0, target.Len(), "a rejected snapshot adds nothing")
}

func TestStore_LoadGrowsWhenAsked(t *testing.T) {
	t.Parallel()

	source, _ := newStore(t, 8)
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, source.Put(id, command.Overrides{ThemeID: id}))
	}

	var buf bytes.Buffer

	require.NoError(t, source.Save(&buf))

	snapshot := buf.Bytes()

	fixed, _ := newStore(t, 1)
	require.NoError(t, fixed.Load(bytes.NewReader(snapshot)))
	assert.Equal(t, []string{"c"}, fixed.IDs())

	growing, err := session.NewStore(session.Config{Capacity: 1, GrowOnLoad: true}, nil)
	require.NoError(t, err)
	require.NoError(t, growing.Load(bytes.NewReader(snapshot)))
	assert.Equal(t, []string{"a", "b", "c"}, growing.IDs())

	growing.Reserve(1)
	require.NoError(t, growing.Put("d", command.Overrides{}))
	assert.Equal(t, []string{"a", "b", "c", "d"}, growing.IDs())
}
