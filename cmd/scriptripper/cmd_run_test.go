package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTranscripts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"standup.txt", "retro.TXT", "notes.md", ".hidden.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.txt"), 0o755))

	names, err := listTranscripts(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"retro.TXT", "standup.txt"}, names)
}

func TestListTranscriptsMissingDir(t *testing.T) {
	_, err := listTranscripts(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
