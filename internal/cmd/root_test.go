package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "wfsync", rootCmd.Use)

	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "sync")
	assert.Contains(t, names, "list")
}

func TestSyncCommandFlags(t *testing.T) {
	for _, flag := range []string{"dry-run", "all", "commit", "push", "from-comments", "workflows-dir"} {
		assert.NotNil(t, syncCmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
}
