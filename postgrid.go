// Package postgrid serves a paginated, tag-filterable grid of blog post cards
// built from a pre-generated post index. Filter and page state live in the URL
// fragment; a small embedded script forwards clicks and the fragment to the
// server, which owns every state transition and all of the markup.
package postgrid

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/postgrid/views"
)

// App wires together the index, handlers, middleware and views.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Index  *Index
	Logger *zap.Logger

	source       Source
	closeSource  func() error
	gridLimiter  *RateLimiter
	thumbs       *Thumbnailer
	customRoutes []func(*App)
}

// New creates an App with the given configuration. Routes are registered
// immediately so the App can be used as an http.Handler in tests.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		l, err := zap.NewProduction()
		if err != nil {
			return nil, fmt.Errorf("postgrid: init logger: %w", err)
		}
		a.Logger = l
	}

	if a.source == nil {
		src, closeFn, err := sourceFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		a.source = src
		a.closeSource = closeFn
	}
	a.Index = NewIndex(a.source, cfg.Tags, a.Logger)
	a.gridLimiter = NewRateLimiter(cfg.GridRateLimit, rateWindow)
	if cfg.ThumbWidth > 0 {
		a.thumbs = NewThumbnailer(cfg.StaticDir, cfg.ThumbWidth)
	}

	a.Echo.HideBanner = true
	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

// sourceFromConfig picks the index source: database, then URL, then file.
func sourceFromConfig(cfg SiteConfig) (Source, func() error, error) {
	switch {
	case cfg.DatabasePath != "":
		s, err := NewSQLiteSource(cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("postgrid: open database: %w", err)
		}
		return s, s.Close, nil
	case cfg.IndexURL != "":
		s, err := NewHTTPSource(cfg.URL, cfg.IndexURL)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	default:
		return FileSource{Path: cfg.IndexPath}, nil, nil
	}
}

// Start serves until the server is shut down.
func (a *App) Start() error {
	a.Logger.Info("starting server", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// ServeHTTP lets the App stand in for an http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.Echo.ServeHTTP(w, r)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/static/postgrid.js", a.handleScript)
	e.Static("/public", a.Config.StaticDir)
	if a.thumbs != nil {
		e.GET("/thumbs/*", a.handleThumb)
	}

	e.GET("/", a.handleHome)
	e.GET("/grid/", a.handleGrid, a.rateLimit(a.gridLimiter))
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/sitemap.xml", a.handleSitemap)
}

// Close releases the index source. Call it when the app is shutting down.
func (a *App) Close() error {
	a.gridLimiter.Stop()
	var err error
	if a.closeSource != nil {
		err = a.closeSource()
	}
	_ = a.Logger.Sync()
	return err
}

func (a *App) siteView() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
	}
}
