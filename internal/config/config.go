package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/akyairhashvil/resultpro/internal/util"
)

// Environment overrides.
const (
	EnvBaseURL     = "RESULTPRO_BASE_URL"
	EnvDataDir     = "RESULTPRO_DATA_DIR"
	EnvDownloadDir = "RESULTPRO_DOWNLOAD_DIR"
	EnvLogLevel    = "RESULTPRO_LOG_LEVEL"
)

// Config is the runtime configuration. Precedence is defaults, then the YAML
// file, then environment, then command line flags (applied by the caller).
type Config struct {
	BaseURL          string        `yaml:"base_url"`
	DataDir          string        `yaml:"data_dir"`
	DownloadDir      string        `yaml:"download_dir"`
	RequestTimeout   time.Duration `yaml:"request_timeout"`
	StrictScoreRange bool          `yaml:"strict_score_range"`
	VerifyPDF        bool          `yaml:"verify_pdf"`
	LogLevel         string        `yaml:"log_level"`
	LogFormat        string        `yaml:"log_format"`
	Theme            string        `yaml:"theme"`
}

// Default returns the built-in configuration. A zero RequestTimeout leaves
// the transport default in place.
func Default() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		DataDir:     util.DataDir(AppName),
		DownloadDir: util.DownloadsDir(),
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		Theme:       DefaultTheme,
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load builds a Config from defaults, the YAML file at path and the
// environment. A missing file is only an error when path was given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDataDir)); v != "" {
		c.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDownloadDir)); v != "" {
		c.DownloadDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

// Validate checks the fields that would otherwise fail late.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base_url %q: expected http(s)://host", c.BaseURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("invalid request_timeout %s: must not be negative", c.RequestTimeout)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data_dir must not be empty")
	}
	return nil
}

// DBPath is the snapshot database location.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, DBFileName)
}

// LogPath is where the interactive mode writes its log.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, LogFileName)
}
