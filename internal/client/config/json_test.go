package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	data := `{"base_url": "https://api.lostlink.com", "request_timeout": "20s", "session_db_path": "/var/lib/lostlink/state.db"}`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))

	os.Args = []string{"cmd", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "https://api.lostlink.com", cfg.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/var/lib/lostlink/state.db", cfg.SessionDBPath)
}

func TestParseJson_IntegerNanoseconds(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"request_timeout": 30000000000}`), 0o600))

	os.Args = []string{"cmd", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"base_url": "https://api.lostlink.com"}`), 0o600))

	os.Args = []string{"cmd", "-config", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "https://api.lostlink.com", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "lostlink.db", cfg.SessionDBPath)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	os.Args = []string{"cmd"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.BaseURL)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("LOSTLINK_BASE_URL", "https://staging.lostlink.com")
	t.Setenv("LOSTLINK_REQUEST_TIMEOUT", "25s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://staging.lostlink.com", cfg.BaseURL)
	assert.Equal(t, 25*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "lostlink.db", cfg.SessionDBPath, "unset variables keep defaults")
}

func TestParseEnv_InvalidDurationPanicsWithVariableContext(t *testing.T) {
	t.Setenv("LOSTLINK_REQUEST_TIMEOUT", "25")

	cfg := &Config{}
	cfg.LoadDefaults()

	defer func() {
		r := recover()
		require.NotNil(t, r, "a unitless duration must not be silently accepted")
		err, ok := r.(error)
		require.True(t, ok)
		assert.Contains(t, err.Error(), "LOSTLINK_")
	}()
	parseEnv(cfg)
}
