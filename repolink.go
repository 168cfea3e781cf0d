// Package repolink serves a single page that links to a source repository.
// The page sets its title, meta description and canonical link, and embeds a
// schema.org SoftwareSourceCode JSON-LD block describing the repository.
//
// Every request mounts a fresh views.Page into an HTML shell. Rendered
// documents are cached per page URL.
package repolink

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/eringen/repolink/views"
)

// App is the central repolink application. It wires together the shell,
// page cache, handlers and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Cache  *PageCache

	shell         *shell
	registry      *prometheus.Registry
	renderLimiter *RenderLimiter
	customRoutes  []func(*App)
	staticDir     string
	shellPath     string
}

// New creates a new repolink App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init validates the configuration, loads the shell and sets up the cache,
// middleware and routes. Start calls it; call it directly to render pages
// without serving them.
func (a *App) Init() error {
	if err := a.Config.Validate(); err != nil {
		return err
	}

	s, err := loadShell(a.shellPath)
	if err != nil {
		return err
	}
	a.shell = s

	a.registry = prometheus.NewRegistry()
	a.Cache = NewPageCache(a.Config.PageCacheSize, a.Config.PageCacheTTL, a.registry)
	a.renderLimiter = NewRenderLimiter(a.Config.RenderLimit, time.Minute)

	a.Echo.Logger.SetLevel(a.Config.logLevel())
	a.Echo.HideBanner = true

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and serves HTTP until the server is shut down.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("serving %s (%s) on %s", a.Config.PageURL(), a.Config.Repo.URL, a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.GET("/public/styles.css", echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS)))))

	// User's static assets
	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", handleHealth)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: a.registry,
	}))

	e.GET("/", a.handleIndex)
	e.HEAD("/", a.handleIndex)
}

// RenderPage mounts the repository page for pageURL into the shell and
// returns the serialized document. Documents are cached per pageURL.
func (a *App) RenderPage(ctx context.Context, pageURL string) ([]byte, error) {
	if doc, ok := a.Cache.Get(pageURL); ok {
		return doc, nil
	}
	page := views.NewPage(pageURL, a.Config.Repository())
	doc, err := a.shell.mount(ctx, page, page.Mount)
	if err != nil {
		return nil, fmt.Errorf("repolink: render %s: %w", pageURL, err)
	}
	a.Echo.Logger.Debugf("rendered %s (%d bytes)", pageURL, len(doc))
	a.Cache.Add(pageURL, doc)
	return doc, nil
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Cache != nil {
		a.Cache.Invalidate()
	}
	if a.renderLimiter != nil {
		a.renderLimiter.Stop()
	}
	return a.Echo.Close()
}
