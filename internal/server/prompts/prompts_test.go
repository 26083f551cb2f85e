package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPath(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("persona: Be brief.\ntitle: Name it.\n"), 0o600))

	p, err := Load(path)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, "Be brief.", p.Persona)
	assert.Equal(t, "Name it.", p.Title)
	assert.Equal(t, def.Summary, p.Summary)
	assert.Equal(t, def.OpeningQuestion, p.OpeningQuestion)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("persona: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
