package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "anchorscan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "fail_on_findings: false\nmanifest: ./programs/stake\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.FailOnFindings)
	assert.False(t, *cfg.FailOnFindings)
	assert.Equal(t, "./programs/stake", cfg.Manifest)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "fail_on_findings: [unclosed")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestConfig_FailOnFindingsDefault(t *testing.T) {
	var nilCfg *Config
	assert.True(t, nilCfg.failOnFindings())

	assert.True(t, (&Config{}).failOnFindings())

	f := false
	assert.False(t, (&Config{FailOnFindings: &f}).failOnFindings())

	tr := true
	assert.True(t, (&Config{FailOnFindings: &tr}).failOnFindings())
}
