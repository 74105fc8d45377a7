package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deckmockd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 0, cfg.ControlPort)
	assert.Equal(t, "web/DeckEditorPage.html", cfg.HTMLFile)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Len(t, cfg.Seeds, 3)
	assert.Equal(t, "/anki/Spanish.csv", cfg.Seeds[0].Path)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
port: 3000
controlPort: 3001
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 3001, cfg.ControlPort)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Keys absent from the file keep defaults.
	assert.Equal(t, "web/DeckEditorPage.html", cfg.HTMLFile)
	assert.Len(t, cfg.Seeds, 3)
}

func TestLoadCustomSeeds(t *testing.T) {
	path := writeConfig(t, `
seeds:
  - path: /anki/Geography.csv
    content: "Front,Back\r\nNile,Egypt\r\n"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Seeds, 1)
	assert.Equal(t, "/anki/Geography.csv", cfg.Seeds[0].Path)
	assert.Contains(t, cfg.Seeds[0].Content, "Nile,Egypt")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "port: [not a port")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Port = 0 },
			wantErr: "port must be between",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = 70000 },
			wantErr: "port must be between",
		},
		{
			name:    "control port conflict",
			mutate:  func(c *Config) { c.ControlPort = c.Port },
			wantErr: "conflicts with port",
		},
		{
			name:    "empty html file",
			mutate:  func(c *Config) { c.HTMLFile = "" },
			wantErr: "htmlFile cannot be empty",
		},
		{
			name: "seed without leading slash",
			mutate: func(c *Config) {
				c.Seeds[0].Path = "anki/Spanish.csv"
			},
			wantErr: "must start with /",
		},
		{
			name: "duplicate seed path",
			mutate: func(c *Config) {
				c.Seeds[1].Path = c.Seeds[0].Path
			},
			wantErr: "duplicate path",
		},
		{
			name: "empty seed path",
			mutate: func(c *Config) {
				c.Seeds[0].Path = ""
			},
			wantErr: "path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
