package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "people.yaml", `
people:
  - name: A
    time: 1
  - name: B
    time: 2
logging:
  level: debug
report:
  format: csv
  stats: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.People, 2)
	assert.Equal(t, "A", cfg.People[0].Name)
	assert.Equal(t, 2.0, cfg.People[1].Time)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "csv", cfg.Report.Format)
	assert.True(t, cfg.Report.Stats)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "people.json", `{"people":[{"name":"A","time":1.5}]}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.People, 1)
	assert.Equal(t, 1.5, cfg.People[0].Time)
}

func TestLoadDefaults(t *testing.T) {
	path := writeFile(t, "people.yaml", "people:\n  - name: A\n    time: 1\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.False(t, cfg.Report.Stats)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeFile(t, "people.yaml", "people:\n  - name: A\n    time: 1\n")
	t.Setenv("CROSSING_LOGGING__LEVEL", "warn")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsBadSpeed(t *testing.T) {
	path := writeFile(t, "people.yaml", "people:\n  - name: A\n    time: 0\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBlankName(t *testing.T) {
	path := writeFile(t, "people.yaml", "people:\n  - name: \"\"\n    time: 3\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeFile(t, "people.toml", "people = []\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadLevelAndFormat(t *testing.T) {
	path := writeFile(t, "people.yaml", "people: []\nlogging:\n  level: loud\n")
	_, err := Load(path)
	assert.Error(t, err)

	path = writeFile(t, "people2.yaml", "people: []\nreport:\n  format: xml\n")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestDefinitionsPreserveOrder(t *testing.T) {
	cfg := Config{People: []PersonConfig{{Name: "B", Time: 2}, {Name: "A", Time: 1}}}
	defs := cfg.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "B", defs[0].Name)
	assert.Equal(t, 1.0, defs[1].Speed)
}
