//go:build !change

package grocerconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grocer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmpty(t *testing.T) {
	config, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, Default(), config)
	require.NoError(t, config.Validate())
}

func TestLoad(t *testing.T) {
	config, err := Load(writeConfig(t, `
input: groceries.txt
restore: true
marker: "#"
lookup_mode: index
metrics_file: /tmp/grocer.prom
log:
  level: debug
`))
	require.NoError(t, err)
	require.Equal(t, "groceries.txt", config.Input)
	require.Equal(t, DefaultBackup, config.Backup)
	require.True(t, config.Restore)
	require.Equal(t, '#', config.MarkerRune())
	require.Equal(t, 15, config.ColumnWidth)
	require.Equal(t, "index", config.LookupMode)
	require.Equal(t, "/tmp/grocer.prom", config.MetricsFile)
	require.Equal(t, "development", config.Log.Mode)
	require.Equal(t, "debug", config.Log.Level)
	require.NoError(t, config.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "input: [unclosed"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "inptu: typo.txt\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		modify func(c *Config)
		isErr  bool
	}{
		{name: "default", modify: func(c *Config) {}},
		{name: "unicode marker", modify: func(c *Config) { c.Marker = "█" }},
		{name: "empty input", modify: func(c *Config) { c.Input = "" }, isErr: true},
		{name: "empty backup", modify: func(c *Config) { c.Backup = "" }, isErr: true},
		{name: "empty marker", modify: func(c *Config) { c.Marker = "" }, isErr: true},
		{name: "long marker", modify: func(c *Config) { c.Marker = "**" }, isErr: true},
		{name: "zero width", modify: func(c *Config) { c.ColumnWidth = 0 }, isErr: true},
		{name: "bad mode", modify: func(c *Config) { c.LookupMode = "fuzzy" }, isErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			config := Default()
			tc.modify(&config)
			err := config.Validate()
			if tc.isErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
