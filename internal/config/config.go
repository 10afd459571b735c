package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	DataDir    string `yaml:"data_dir"`
	DBPath     string `yaml:"db_path"`
	RemoteURL  string `yaml:"remote_url"`
	Timezone   string `yaml:"timezone"`
	LogLevel   string `yaml:"log_level"`
	// LoginRate is the number of login attempts allowed per minute and client.
	LoginRate      int           `yaml:"login_rate"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	SessionMaxIdle time.Duration `yaml:"session_max_idle"`
	// TrustProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Only turn it on behind a proxy that overwrites those headers.
	TrustProxy bool `yaml:"trust_proxy"`
}

func Defaults() Config {
	return Config{
		ListenAddr:     ":8080",
		DataDir:        "./data",
		RemoteURL:      "https://lichess.org",
		Timezone:       "Local",
		LogLevel:       "info",
		LoginRate:      10,
		RequestTimeout: 30 * time.Second,
		SessionMaxIdle: 30 * 24 * time.Hour,
	}
}

// Load reads the optional YAML file at path, then applies environment
// overrides. A .env file in the working directory is loaded first if present.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "arbiter.sqlite")
	}
	return cfg, cfg.Validate()
}

// FromEnv is Load without a config file.
func FromEnv() (Config, error) {
	return Load("")
}

func (c *Config) applyEnv() {
	c.ListenAddr = getenv("ARBITER_LISTEN_ADDR", c.ListenAddr)
	c.DataDir = getenv("ARBITER_DATA_DIR", c.DataDir)
	c.DBPath = getenv("ARBITER_DB_PATH", c.DBPath)
	c.RemoteURL = getenv("ARBITER_REMOTE_URL", c.RemoteURL)
	c.Timezone = getenv("ARBITER_TIMEZONE", c.Timezone)
	c.LogLevel = getenv("ARBITER_LOG_LEVEL", c.LogLevel)
	if v, err := strconv.Atoi(os.Getenv("ARBITER_LOGIN_RATE")); err == nil {
		c.LoginRate = v
	}
	if v, err := time.ParseDuration(os.Getenv("ARBITER_REQUEST_TIMEOUT")); err == nil {
		c.RequestTimeout = v
	}
	if v, err := time.ParseDuration(os.Getenv("ARBITER_SESSION_MAX_IDLE")); err == nil {
		c.SessionMaxIdle = v
	}
	if v, err := strconv.ParseBool(os.Getenv("ARBITER_TRUST_PROXY")); err == nil {
		c.TrustProxy = v
	}
}

func (c Config) Validate() error {
	u, err := url.Parse(c.RemoteURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("remote_url must be an absolute URL, got %q", c.RemoteURL)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.LoginRate <= 0 {
		return fmt.Errorf("login_rate must be positive")
	}
	return nil
}

// Location is the zone form datetimes are typed in.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getenv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
