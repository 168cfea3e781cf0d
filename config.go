package repolink

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/labstack/gommon/log"

	"github.com/eringen/repolink/views"
)

// SiteConfig holds all configuration for a repolink site.
type SiteConfig struct {
	URL  string `yaml:"url" env:"SITE_URL" validate:"required,http_url"` // Public base URL (default "http://localhost:3000")
	Addr string `yaml:"addr" env:"HTTP_ADDR" validate:"required"`        // Listen address (default ":3000")

	Repo RepoConfig `yaml:"repo"`

	PageCacheSize int           `yaml:"pageCacheSize" env:"PAGE_CACHE_SIZE" validate:"gt=0"` // Rendered pages kept (default 256)
	PageCacheTTL  time.Duration `yaml:"pageCacheTTL" env:"PAGE_CACHE_TTL" validate:"gt=0"`   // Rendered page lifetime (default 10min)
	RenderLimit   int           `yaml:"renderLimit" env:"RENDER_LIMIT" validate:"gt=0"`      // Uncached renders per client IP per minute (default 120)

	LogLevel        string        `yaml:"logLevel" env:"LOG_LEVEL" validate:"oneof=debug info warn error off"` // default "info"
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`              // default 10s
}

// RepoConfig describes the linked repository.
type RepoConfig struct {
	Name     string `yaml:"name" env:"REPO_NAME" validate:"required"`
	URL      string `yaml:"url" env:"REPO_URL" validate:"required,http_url"`
	Language string `yaml:"language" env:"REPO_LANGUAGE" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads SiteConfig from the YAML file at path, if path is not
// empty, and then from environment variables. Defaults are applied and the
// result is validated.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return SiteConfig{}, fmt.Errorf("repolink: read config: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Repo.Name == "" {
		c.Repo.Name = views.DefaultRepoName
	}
	if c.Repo.URL == "" {
		c.Repo.URL = views.DefaultRepoURL
	}
	if c.Repo.Language == "" {
		c.Repo.Language = views.DefaultRepoLanguage
	}
	if c.PageCacheSize == 0 {
		c.PageCacheSize = 256
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 10 * time.Minute
	}
	if c.RenderLimit == 0 {
		c.RenderLimit = 120
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// Validate checks the configuration after defaults have been applied.
func (c SiteConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("repolink: invalid config: %w", err)
	}
	return nil
}

// Repository returns the linked repository as the views package models it.
func (c SiteConfig) Repository() views.Repository {
	return views.Repository{
		Name:     c.Repo.Name,
		URL:      c.Repo.URL,
		Language: c.Repo.Language,
	}
}

// PageURL is the canonical URL of the page at the site root.
func (c SiteConfig) PageURL() string {
	return c.URL + "/"
}

func (c SiteConfig) logLevel() log.Lvl {
	switch c.LogLevel {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithShell sets the HTML document pages are mounted into. It must contain
// a <head> and an element with id "root". The embedded shell is used when
// path is empty.
func WithShell(path string) Option {
	return func(a *App) {
		a.shellPath = path
	}
}
