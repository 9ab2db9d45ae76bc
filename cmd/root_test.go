package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "migrate", "expire-rentals"} {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
	assert.NotNil(t, serveCmd.RunE)
}

func TestMigrateThenExpireOnSQLite(t *testing.T) {
	t.Setenv("DATABASE", "sqlite3")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "renthub.db"))

	rootCmd.SetArgs([]string{"--config", "", "migrate"})
	require.NoError(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"--config", "", "expire-rentals"})
	require.NoError(t, rootCmd.Execute())
}
