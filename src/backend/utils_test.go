package backend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := LoadSettings()
	assert.Error(t, err)

	dir := filepath.Join(home, "Superbox CLI")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"),
		[]byte(`{"router_ip":"192.168.8.1","username":"admin","webhook_url":"https://example.invalid/hook"}`), 0644))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, Settings{RouterIP: "192.168.8.1", Username: "admin", WebhookUrl: "https://example.invalid/hook"}, settings)

	exports, err := ExportsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "exports"), exports)
}
