package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Endpoint string `json:"endpoint"`
	Timeout  int    `json:"timeout"`
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "service.json5")

	writeFile(t, name, `{endpoint: "https://example.com", timeout: 10}`)

	config, err := ReadConfig[testConfig](name)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "https://example.com", config.Endpoint)
	require.Equal(t, 10, config.Timeout)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "service.json5")

	writeFile(t, name, `{endpoint: "https://example.com", timeout: 10}`)
	writeFile(t, filepath.Join(dir, "service.local.json5"), `{timeout: 99}`)

	config, err := ReadConfig[testConfig](name)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "https://example.com", config.Endpoint)
	require.Equal(t, 99, config.Timeout)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "nope.json5"))
	require.True(t, os.IsNotExist(err))
}
