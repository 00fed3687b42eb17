package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Anshvachhani998/Terdl-api/internal/config"
)

func TestParse(t *testing.T) {
	t.Run("no env, no config", func(t *testing.T) {
		os.Clearenv()
		opts := config.Parse()
		require.Equal(t, "localhost:8080", opts.Port)
		require.Equal(t, "http://localhost:8080", opts.ResultHostname)
		require.Equal(t, "temp", opts.TempDir)
		require.Equal(t, time.Duration(0), opts.ManifestTTL)
		require.Equal(t, 30*time.Second, opts.StreamTimeout)
		require.False(t, opts.EnableHTTPS)
		require.False(t, opts.EnablePprof)
		require.Equal(t, "config.json", opts.Config)
	})

	t.Run("env overrides", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("SERVER_ADDRESS", "127.0.0.1:9999")
		os.Setenv("BASE_URL", "http://example.com")
		os.Setenv("TEMP_DIR", "/tmp/manifests")
		os.Setenv("ENABLE_HTTPS", "true")
		os.Setenv("TRUSTED_SUBNET", "192.168.0.0/24")
		os.Setenv("MANIFEST_TTL", "2h")

		opts := config.Parse()
		require.Equal(t, "127.0.0.1:9999", opts.Port)
		require.Equal(t, "http://example.com", opts.ResultHostname)
		require.Equal(t, "/tmp/manifests", opts.TempDir)
		require.True(t, opts.EnableHTTPS)
		require.Equal(t, "192.168.0.0/24", opts.TrustedSubnet)
		require.Equal(t, 2*time.Hour, opts.ManifestTTL)
	})

	t.Run("config file overrides", func(t *testing.T) {
		os.Clearenv()

		tmpDir, err := os.MkdirTemp("", "testconfig")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		cfgPath := filepath.Join(tmpDir, "cfg.json")
		cfg := config.Options{
			Port:             "10.0.0.1:8081",
			ResultHostname:   "http://testhost",
			TempDir:          "/config/manifests",
			TrustedSubnet:    "10.10.0.0/16",
			ManifestVideoURL: "https://media.example.com/v.webm",
			ManifestAudioURL: "https://media.example.com/a.webm",
			EnablePprof:      true,
			EnableHTTPS:      true,
		}
		content, _ := json.Marshal(cfg)
		require.NoError(t, os.WriteFile(cfgPath, content, 0644))
		os.Setenv("CONFIG", cfgPath)

		opts := config.Parse()
		require.Equal(t, "10.0.0.1:8081", opts.Port)
		require.Equal(t, "http://testhost", opts.ResultHostname)
		require.Equal(t, "/config/manifests", opts.TempDir)
		require.Equal(t, "10.10.0.0/16", opts.TrustedSubnet)
		require.Equal(t, "https://media.example.com/v.webm", opts.ManifestVideoURL)
		require.Equal(t, "https://media.example.com/a.webm", opts.ManifestAudioURL)
		require.True(t, opts.EnablePprof)
		require.True(t, opts.EnableHTTPS)
	})
}
