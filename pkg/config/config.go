// Package config loads ghcount settings from a TOML file and the environment.
//
// Settings are resolved once at process start, in increasing precedence:
// built-in defaults, the config file, then command-line flags (applied by the
// caller). The API token is read from the environment variable named by
// token_env exactly once, in [Load], and travels from there as an explicit
// [Credential] value.
//
// Example config.toml:
//
//	api_url   = "https://api.github.com"
//	token_env = "GITHUB_TOKEN"
//	timeout   = "30s"
//	jobs      = 4
//	highlight = true
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ghcount/pkg/errors"
)

const (
	appName = "ghcount"

	// DefaultAPIURL is the public GitHub REST API origin.
	DefaultAPIURL = "https://api.github.com"

	// DefaultTokenEnv is the environment variable holding the API token.
	DefaultTokenEnv = "GITHUB_TOKEN"

	// DefaultTimeout bounds a single API request.
	DefaultTimeout = 30 * time.Second

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "GHCOUNT_CONFIG"
)

// Credential is an optional API token. The zero value means unauthenticated.
type Credential string

// IsSet reports whether a non-empty token is present.
func (c Credential) IsSet() bool { return c != "" }

// String masks the token so it never ends up in logs.
func (c Credential) String() string {
	if !c.IsSet() {
		return "<none>"
	}
	return "<redacted>"
}

// Config holds resolved settings.
type Config struct {
	APIURL    string        `toml:"api_url"`
	TokenEnv  string        `toml:"token_env"`
	Timeout   time.Duration `toml:"timeout"`
	Jobs      int           `toml:"jobs"`
	Highlight bool          `toml:"highlight"`

	// Credential is filled from the environment, never from the file.
	Credential Credential `toml:"-"`

	// Path is the config file that was read, or "" when defaults were used.
	Path string `toml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIURL:    DefaultAPIURL,
		TokenEnv:  DefaultTokenEnv,
		Timeout:   DefaultTimeout,
		Jobs:      1,
		Highlight: true,
	}
}

// Load reads the config file and the credential.
//
// If path is empty the default location is used (see [DefaultPath]) and a
// missing file is not an error. An explicitly named file must exist. getenv
// is normally os.Getenv; tests pass a map lookup.
func Load(path string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := Default()
	explicit := path != ""
	if !explicit {
		if env := getenv(EnvConfigPath); env != "" {
			path, explicit = env, true
		} else if p, err := DefaultPath(getenv); err == nil {
			path = p
		}
	}

	if path != "" {
		if err := cfg.readFile(path, explicit); err != nil {
			return nil, err
		}
	}

	cfg.Credential = Credential(getenv(cfg.TokenEnv))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) readFile(path string, mustExist bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !mustExist {
			return nil
		}
		return errors.Wrap(errors.ErrCodeConfig, err, "read config %s", path)
	}

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeConfig, "config %s: unknown key %q", path, undecoded[0].String())
	}
	c.Path = path
	return nil
}

// Validate checks that settings are usable. Flag overrides should be
// validated again after they are applied.
func (c *Config) Validate() error {
	if err := errors.ValidateURL(c.APIURL); err != nil {
		return errors.New(errors.ErrCodeConfig, "api_url: %s", errors.UserMessage(err))
	}
	if c.TokenEnv == "" {
		return errors.New(errors.ErrCodeConfig, "token_env cannot be empty")
	}
	if c.Timeout < 0 {
		return errors.New(errors.ErrCodeConfig, "timeout cannot be negative")
	}
	if c.Jobs < 1 {
		return errors.New(errors.ErrCodeConfig, "jobs must be at least 1, got %d", c.Jobs)
	}
	return nil
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/ghcount/config.toml).
func DefaultPath(getenv func(string) string) (string, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if configHome := getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
