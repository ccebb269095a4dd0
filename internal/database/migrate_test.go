package database

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-share/backend/migrations"
)

func TestLoadMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"0002_add_index.up.sql":   {Data: []byte("CREATE INDEX x;")},
		"0002_add_index.down.sql": {Data: []byte("DROP INDEX x;")},
		"0001_init.up.sql":        {Data: []byte("CREATE TABLE t();")},
		"README.md":               {Data: []byte("ignored")},
	}

	got, err := LoadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "0001", got[0].Version)
	assert.Equal(t, "init", got[0].Name)
	assert.Empty(t, got[0].Down)
	assert.Equal(t, "0002", got[1].Version)
	assert.Equal(t, "DROP INDEX x;", got[1].Down)
}

func TestLoadMigrationsRejectsBadNames(t *testing.T) {
	tests := map[string]fstest.MapFS{
		"no direction":  {"0001_init.sql": {Data: []byte("x")}},
		"no version":    {"init.up.sql": {Data: []byte("x")}},
		"down only":     {"0001_init.down.sql": {Data: []byte("x")}},
		"version clash": {"0001_a.up.sql": {Data: []byte("x")}, "0001_b.up.sql": {Data: []byte("y")}},
	}
	for name, fsys := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadMigrations(fsys)
			assert.Error(t, err)
		})
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	got, err := LoadMigrations(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, m := range got {
		assert.NotEmpty(t, m.Down, "migration %s_%s needs a down script", m.Version, m.Name)
	}
}
