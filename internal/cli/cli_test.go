package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champlain/campus/internal/bootstrap"
)

func TestNewRootCommand_Subcommands(t *testing.T) {
	courses := NewRootCommand(Options{Service: bootstrap.CoursesService, WithMigrate: true})
	enrollments := NewRootCommand(Options{Service: bootstrap.EnrollmentsService})

	var got []string
	for _, c := range courses.Commands() {
		got = append(got, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "seed", "migrate"}, got)

	got = nil
	for _, c := range enrollments.Commands() {
		got = append(got, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "seed"}, got)
}

func TestMigrateAndSeed_SQLite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", filepath.Join(dir, "courses.db"))

	root := NewRootCommand(Options{Service: bootstrap.CoursesService, WithMigrate: true})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"migrate", "--config", filepath.Join(dir, "none.yaml")})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Applied 1 migration(s)")

	root = NewRootCommand(Options{Service: bootstrap.CoursesService, WithMigrate: true})
	out.Reset()
	root.SetOut(&out)
	root.SetArgs([]string{"seed", "-c", filepath.Join(dir, "none.yaml")})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Seeded 2 record(s)")
}
