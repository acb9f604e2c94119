package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "outreach_config.yaml"

	// Secrets are never stored in the config file; these are the
	// environment variables they come from by default.
	defaultTokenEnv  = "OUTREACH_API_TOKEN"
	defaultSecretEnv = "OUTREACH_API_CLIENT_SECRET"
	mirrorDSNEnv     = "OUTREACH_MIRROR_DSN"
)

// AuthConfig says how the CLI authenticates to the site API. Either a
// static token from the environment, or a client-credentials token
// endpoint. The config file only ever names environment variables; the
// secret values themselves stay out of it.
type AuthConfig struct {
	TokenEnv        string   `yaml:"tokenEnv,omitempty"`
	TokenURL        string   `yaml:"tokenURL,omitempty" validate:"omitempty,url"`
	ClientID        string   `yaml:"clientID,omitempty"`
	ClientSecretEnv string   `yaml:"clientSecretEnv,omitempty"`
	Scopes          []string `yaml:"scopes,omitempty"`
}

// Config is the application configuration
type Config struct {
	APIBaseURL            string     `yaml:"apiBaseURL" validate:"required,url"`
	RequestTimeoutSeconds int        `yaml:"requestTimeoutSeconds,omitempty" validate:"omitempty,min=1"`
	CacheTTLSeconds       int        `yaml:"cacheTTLSeconds,omitempty" validate:"omitempty,min=1"`
	Auth                  AuthConfig `yaml:"auth,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration for an environment.
// It looks for outreach_config.<env>.yaml first, then the unsuffixed file,
// in the current directory and then in the user's home directory.
func LoadWithEnv(env string) (*Config, error) {
	path, err := findConfigFile(env)
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if cfg.Auth.TokenURL != "" && cfg.Auth.ClientID == "" {
		return fmt.Errorf("auth.clientID is required when auth.tokenURL is set")
	}
	return nil
}

// RequestTimeout returns the API request timeout
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// CacheTTL returns the query cache TTL (zero means the cache's default)
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// MirrorDSN returns the local mirror connection string, empty when the
// mirror is not configured.
func (c *Config) MirrorDSN() string {
	return os.Getenv(mirrorDSNEnv)
}

// TokenSource builds the API token source from the configuration.
// A client-credentials endpoint wins when configured; otherwise a static
// token is read from the environment. Returns nil when neither is set, in
// which case only public endpoints work.
func (c *Config) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if c.Auth.TokenURL != "" {
		secretEnv := c.Auth.ClientSecretEnv
		if secretEnv == "" {
			secretEnv = defaultSecretEnv
		}
		secret := os.Getenv(secretEnv)
		if secret == "" {
			return nil, fmt.Errorf("client secret not set in $%s", secretEnv)
		}
		cc := &clientcredentials.Config{
			ClientID:     c.Auth.ClientID,
			ClientSecret: secret,
			TokenURL:     c.Auth.TokenURL,
			Scopes:       c.Auth.Scopes,
		}
		return cc.TokenSource(ctx), nil
	}

	tokenEnv := c.Auth.TokenEnv
	if tokenEnv == "" {
		tokenEnv = defaultTokenEnv
	}
	if token := os.Getenv(tokenEnv); token != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}), nil
	}

	return nil, nil
}

// findConfigFile searches for the config file, preferring the
// environment-suffixed name
func findConfigFile(env string) (string, error) {
	names := []string{configFileName}
	if env != "" {
		names = []string{
			fmt.Sprintf("outreach_config.%s.yaml", env),
			configFileName,
		}
	}

	dirs := []string{"."}
	if homeDir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, homeDir)
	}

	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
