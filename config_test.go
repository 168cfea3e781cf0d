package repolink

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eringen/repolink/views"
)

func TestSetDefaults(t *testing.T) {
	var cfg SiteConfig
	cfg.setDefaults()

	if cfg.URL != "http://localhost:3000" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	repo := cfg.Repository()
	if repo != views.DefaultRepository() {
		t.Errorf("Repository() = %+v, want %+v", repo, views.DefaultRepository())
	}
	if repo.URL != "https://github.com/fwehiu/Calculator_fruit" {
		t.Errorf("Repo.URL = %q", repo.URL)
	}
	if cfg.PageCacheSize != 256 || cfg.PageCacheTTL != 10*time.Minute {
		t.Errorf("page cache = %d/%s", cfg.PageCacheSize, cfg.PageCacheTTL)
	}
	if cfg.RenderLimit != 120 {
		t.Errorf("RenderLimit = %d", cfg.RenderLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestPageURLTrimsTrailingSlash(t *testing.T) {
	cfg := SiteConfig{URL: "https://links.example.com/"}
	cfg.setDefaults()
	if got := cfg.PageURL(); got != "https://links.example.com/" {
		t.Errorf("PageURL() = %q", got)
	}
}

func TestValidateRejectsBadURLs(t *testing.T) {
	tests := []struct {
		name string
		cfg  SiteConfig
	}{
		{"relative repo url", SiteConfig{Repo: RepoConfig{URL: "/fwehiu/Calculator_fruit"}}},
		{"javascript repo url", SiteConfig{Repo: RepoConfig{URL: "javascript:alert(1)"}}},
		{"site url without scheme", SiteConfig{URL: "links.example.com"}},
		{"unknown log level", SiteConfig{LogLevel: "verbose"}},
		{"negative cache size", SiteConfig{PageCacheSize: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.setDefaults()
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for %+v", cfg)
			}
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := `url: https://links.example.com/
addr: ":8080"
repo:
  name: Widget
  url: https://github.com/acme/widget
  language: Go
pageCacheSize: 16
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.URL != "https://links.example.com" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Repo.Name != "Widget" || cfg.Repo.URL != "https://github.com/acme/widget" || cfg.Repo.Language != "Go" {
		t.Errorf("Repo = %+v", cfg.Repo)
	}
	if cfg.PageCacheSize != 16 {
		t.Errorf("PageCacheSize = %d", cfg.PageCacheSize)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_URL", "https://env.example.com")
	t.Setenv("RENDER_LIMIT", "7")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.URL != "https://env.example.com" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.RenderLimit != 7 {
		t.Errorf("RenderLimit = %d, want 7", cfg.RenderLimit)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %s, want 3s", cfg.ShutdownTimeout)
	}
}

func TestLoadConfigInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("repo:\n  url: not-a-url\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected LoadConfig to reject an invalid repository URL")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected LoadConfig to fail for a missing file")
	}
}
