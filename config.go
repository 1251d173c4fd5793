package postgrid

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/eringen/postgrid/grid"
)

// EnvPrefix is the prefix of environment overrides, e.g. POSTGRID_PAGE_SIZE.
const EnvPrefix = "POSTGRID_"

// SiteConfig holds all configuration for a postgrid site.
type SiteConfig struct {
	Name        string `koanf:"name"`        // Site name (default "Blog")
	URL         string `koanf:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `koanf:"description"` // Site description for RSS and meta tags

	Addr string `koanf:"addr"` // Listen address (default ":3000")

	// Exactly one index source is used, checked in this order.
	DatabasePath string `koanf:"database_path"` // pubengine SQLite database
	IndexURL     string `koanf:"index_url"`     // site-relative path or absolute URL of posts.json
	IndexPath    string `koanf:"index_path"`    // posts.json on disk (default "public/assets/posts.json")

	PageSize int      `koanf:"page_size"` // Cards per page (default 5)
	Tags     []string `koanf:"tags"`      // Tag buttons; empty means every tag in the index

	StaticDir     string `koanf:"static_dir"`      // User static assets (default "public")
	ThumbWidth    int    `koanf:"thumb_width"`     // Card thumbnail width; 0 disables /thumbs/
	GridRateLimit int    `koanf:"grid_rate_limit"` // /grid/ requests per IP per minute (default 120)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" && c.IndexURL == "" && c.IndexPath == "" {
		c.IndexPath = "public/assets/posts.json"
	}
	if c.PageSize <= 0 {
		c.PageSize = grid.DefaultPageSize
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.GridRateLimit <= 0 {
		c.GridRateLimit = 120
	}
}

// LoadConfig reads the YAML file at path when it exists and overlays
// POSTGRID_* environment variables. Defaults fill whatever is left.
func LoadConfig(path string) (SiteConfig, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return SiteConfig{}, fmt.Errorf("postgrid: reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return SiteConfig{}, fmt.Errorf("postgrid: accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return SiteConfig{}, fmt.Errorf("postgrid: loading env overrides: %w", err)
	}

	var cfg SiteConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("postgrid: unmarshalling config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger replaces the default production logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithSource overrides the index source derived from SiteConfig.
func WithSource(src Source) Option {
	return func(a *App) {
		a.source = src
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
