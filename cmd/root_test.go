package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFailureReturnsErrorOnce(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		dbPath = ""
	})

	rootCmd.SetArgs([]string{"generate", "--db-path", filepath.Join(t.TempDir(), "empty.db"), "--quiet"})
	err := Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrSchemaMissing)
	assert.Contains(t, err.Error(), "db/schema/001_initial_schema.sql")
	assert.NotContains(t, out.String()+errOut.String(), "Usage:")
	assert.NotContains(t, out.String()+errOut.String(), "Error:")
}
