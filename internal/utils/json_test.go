package utils

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Chest  string             `json:"chest"`
	Opens  int                `json:"opens"`
	Counts map[string]float64 `json:"counts"`
}

func TestReadJSON(t *testing.T) {
	t.Run("decodes into the requested type", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"chest":"epic","opens":3,"counts":{"mythic":0.5}}`), 0o600))

		got, err := ReadJSON[sample](path)

		require.NoError(t, err)
		assert.Equal(t, sample{Chest: "epic", Opens: 3, Counts: map[string]float64{"mythic": 0.5}}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadJSON[sample](filepath.Join(t.TempDir(), "none.json"))

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{chest:"), 0o600))

		_, err := ReadJSON[sample](path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal JSON")
	})

	t.Run("type mismatch", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mismatch.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"opens":"many"}`), 0o600))

		_, err := ReadJSON[sample](path)
		assert.Error(t, err)
	})
}

func TestWriteJSON(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reports", "nested", "run.json")
		in := sample{Chest: "rare", Opens: 10, Counts: map[string]float64{"rare": 71.43}}

		require.NoError(t, WriteJSON(path, in))

		got, err := ReadJSON[sample](path)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("overwrites without leaving temp files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "run.json")

		require.NoError(t, WriteJSON(path, sample{Opens: 1}))
		require.NoError(t, WriteJSON(path, sample{Opens: 2}))

		got, err := ReadJSON[sample](path)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Opens)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("unmarshalable value keeps the old file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.json")
		require.NoError(t, WriteJSON(path, sample{Opens: 7}))

		err := WriteJSON(path, math.NaN())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal data")
		got, err := ReadJSON[sample](path)
		require.NoError(t, err)
		assert.Equal(t, 7, got.Opens)
	})
}
