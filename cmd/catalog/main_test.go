package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeDefs(t *testing.T, defs []catalog.GameDefinition) string {
	t.Helper()
	data, err := json.Marshal(defs)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "games.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func invalidDef() catalog.GameDefinition {
	def := catalog.DefaultGames[0]
	def.Title = "Too Short"
	def.Words = def.Words[:15]
	return def
}

func TestSeedCommandIsIdempotent(t *testing.T) {
	db := filepath.Join(t.TempDir(), "catalog.db")

	out, err := run(t, "seed", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 11 games")

	out, err = run(t, "seed", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing seeded")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "--file", writeDefs(t, catalog.DefaultGames))
	require.NoError(t, err)
	assert.Contains(t, out, "11 games are valid")

	out, err = run(t, "validate", "--file", writeDefs(t, []catalog.GameDefinition{catalog.DefaultGames[1], invalidDef()}))
	assert.ErrorContains(t, err, "1 of 2 games are invalid")
	assert.Contains(t, out, "Too Short")

	_, err = run(t, "validate")
	assert.ErrorContains(t, err, "--file is required")
}

func TestImportCommandReportsEachGame(t *testing.T) {
	db := filepath.Join(t.TempDir(), "catalog.db")
	file := writeDefs(t, []catalog.GameDefinition{catalog.DefaultGames[0], invalidDef(), catalog.DefaultGames[5]})

	out, err := run(t, "import", "--db", db, "--file", file)
	assert.ErrorContains(t, err, "1 of 3 games failed")
	assert.Contains(t, out, "OK ")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "2 imported, 1 failed")
}

func TestDailyCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "catalog.db")
	_, err := run(t, "seed", "--db", db)
	require.NoError(t, err)

	first, err := run(t, "daily", "--db", db, "--level", "hard", "--date", "2024-03-01")
	require.NoError(t, err)
	assert.Contains(t, first, "daily-hard-2024-03-01")
	assert.Contains(t, first, "[4]")

	second, err := run(t, "daily", "--db", db, "--level", "hard", "--date", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = run(t, "daily", "--db", db, "--level", "expert")
	assert.ErrorIs(t, err, models.ErrInvalidLevel)

	_, err = run(t, "daily", "--db", db, "--level", "easy", "--date", "01-03-2024")
	assert.Error(t, err)
}
