// Package config provides functionality for managing configuration options
// for the application using command-line flags, environment variables and an
// optional JSON config file.
package config

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"time"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"server_address"`

	// ResultHostname is the base URL used for derived links.
	ResultHostname string `json:"base_url"`

	// TempDir is the directory where generated manifests are written.
	TempDir string `json:"temp_dir"`

	// TrustedSubnet is the CIDR allowed to call internal endpoints.
	TrustedSubnet string `json:"trusted_subnet"`

	// ManifestVideoURL is the default video source for /generate.
	ManifestVideoURL string `json:"manifest_video_url"`

	// ManifestAudioURL is the default audio source for /generate.
	ManifestAudioURL string `json:"manifest_audio_url"`

	// ManifestTTL enables the manifest sweeper when non-zero.
	ManifestTTL time.Duration `json:"manifest_ttl"`

	// StreamTimeout bounds establishing the upstream response.
	StreamTimeout time.Duration `json:"stream_timeout"`

	// EnablePprof indicates whether to enable pprof for performance profiling.
	EnablePprof bool `json:"enable_pprof"`

	// EnableHTTPS indicates whether to enable https.
	EnableHTTPS bool `json:"enable_https"`

	// Config is the path to the JSON config file.
	Config string `json:"-"`
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.ResultHostname, "b", "http://localhost:8080", "result base url")
	flag.StringVar(&options.TempDir, "f", "temp", "directory for generated manifests")
	flag.StringVar(&options.TrustedSubnet, "t", "", "trusted subnet for internal endpoints")
	flag.StringVar(&options.ManifestVideoURL, "v", "", "default manifest video source url")
	flag.StringVar(&options.ManifestAudioURL, "u", "", "default manifest audio source url")
	flag.DurationVar(&options.ManifestTTL, "x", 0, "manifest lifetime, 0 keeps them forever")
	flag.DurationVar(&options.StreamTimeout, "w", 30*time.Second, "upstream fetch timeout")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
	flag.StringVar(&options.Config, "c", "config.json", "path to json config file")
}

// Parse parses the command-line flags, the optional config file and the
// environment variables, strongest last. It returns a pointer to the Options
// struct containing the final configuration values.
func Parse() *Options {
	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if content, err := os.ReadFile(options.Config); err == nil {
		var fromFile Options
		if err := json.Unmarshal(content, &fromFile); err == nil {
			applyFile(&fromFile)
		}
	}

	// Override with environment variables if set
	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}

	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		options.ResultHostname = baseURL
	}

	if tempDir := os.Getenv("TEMP_DIR"); tempDir != "" {
		options.TempDir = tempDir
	}

	if trustedSubnet := os.Getenv("TRUSTED_SUBNET"); trustedSubnet != "" {
		options.TrustedSubnet = trustedSubnet
	}

	if videoURL := os.Getenv("MANIFEST_VIDEO_URL"); videoURL != "" {
		options.ManifestVideoURL = videoURL
	}

	if audioURL := os.Getenv("MANIFEST_AUDIO_URL"); audioURL != "" {
		options.ManifestAudioURL = audioURL
	}

	if ttl := os.Getenv("MANIFEST_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			options.ManifestTTL = parsed
		}
	}

	if enableHTTPS := os.Getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpsMode, err := strconv.ParseBool(enableHTTPS)
		if err != nil {
			options.EnableHTTPS = false
		}

		options.EnableHTTPS = httpsMode
	}

	return options
}

func applyFile(fromFile *Options) {
	if fromFile.Port != "" {
		options.Port = fromFile.Port
	}
	if fromFile.ResultHostname != "" {
		options.ResultHostname = fromFile.ResultHostname
	}
	if fromFile.TempDir != "" {
		options.TempDir = fromFile.TempDir
	}
	if fromFile.TrustedSubnet != "" {
		options.TrustedSubnet = fromFile.TrustedSubnet
	}
	if fromFile.ManifestVideoURL != "" {
		options.ManifestVideoURL = fromFile.ManifestVideoURL
	}
	if fromFile.ManifestAudioURL != "" {
		options.ManifestAudioURL = fromFile.ManifestAudioURL
	}
	if fromFile.ManifestTTL != 0 {
		options.ManifestTTL = fromFile.ManifestTTL
	}
	if fromFile.StreamTimeout != 0 {
		options.StreamTimeout = fromFile.StreamTimeout
	}
	if fromFile.EnablePprof {
		options.EnablePprof = true
	}
	if fromFile.EnableHTTPS {
		options.EnableHTTPS = true
	}
}
