package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigratePrint(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"migrate", "--print"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		migratePrint = false
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "portfolio_projects")
}

func TestMigrateRejectsMemoryDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	rootCmd.SetArgs([]string{"migrate"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "STORE_DRIVER=postgres")
}

func TestSyncRequiresFolder(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("GOOGLE_DRIVE_FOLDER_ID", "")
	t.Setenv("SYNC_SCHEDULE", "")
	t.Setenv("REDIS_URL", "")

	rootCmd.SetArgs([]string{"sync", "--api-key", "k"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		syncAPIKey = ""
	})

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "apiKey and folderId")
}
