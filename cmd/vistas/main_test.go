package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRun_ReturnsStartupErrors(t *testing.T) {
	dir := t.TempDir()
	chartDir := filepath.Join(dir, "charts")
	require.NoError(t, os.Mkdir(chartDir, 0o755))
	writeFile(t, filepath.Join(chartDir, "broken.yaml"), "name: broken\nsource: invoices\nmeasures:\n  - name: n\n    operator: count\n")

	cfgPath := filepath.Join(dir, "vistas.yaml")
	writeFile(t, cfgPath, "database:\n  type: memory\ncharts:\n  config_dir: "+chartDir+"\nretention:\n  enabled: false\n")

	err := run(cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "load chart definitions")
}

func TestRun_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "vistas.yaml")
	writeFile(t, cfgPath, "database:\n  type: sqlite\n")

	err := run(cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "load config")
}
