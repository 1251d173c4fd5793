package views

import "github.com/eringen/postgrid/grid"

// SiteConfig holds the site-wide settings the page shell needs.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
}

// PageData is everything the page shell renders in one pass.
type PageData struct {
	Site SiteConfig

	// Tags is the selectable button set, "all" excluded; it is rendered first.
	Tags []string
	// ActiveTag is the button marked active, empty when none matches.
	ActiveTag string

	View  grid.View
	State grid.State

	// LoadFailed swaps the grid for the fallback message and drops the pagers.
	LoadFailed bool

	GridEndpoint string
	ScriptSrc    string

	// ImageURL rewrites card thumbnails; nil leaves them untouched.
	ImageURL func(string) string
}
