package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/postgrid/grid"
)

// Page renders the full listing page: tag buttons, the card grid and the two
// pagers the script keeps in sync.
func Page(d PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		writeHead(h, d.Site, d.Site.Name)

		h.raw(`<main class="posts">`)
		h.printf(`<h1 class="posts__title">%s</h1>`, esc(d.Site.Name))

		h.raw(`<div class="tag-filter" role="toolbar" aria-label="Filter by tag">`)
		if h.err == nil {
			h.err = TagButtons(d.Tags, d.ActiveTag).Render(ctx, w)
		}
		h.raw(`</div>`)

		h.raw(`<nav id="pagination" class="pagination" aria-label="Pagination">`)
		writePager(ctx, h, d)
		h.raw(`</nav>`)

		h.printf(`<div id="post-grid" class="post-grid" data-endpoint="%s" data-fragment="%s">`,
			esc(d.GridEndpoint), esc(grid.EncodeFragment(d.State)))
		if h.err == nil {
			if d.LoadFailed {
				h.err = LoadError().Render(ctx, w)
			} else {
				h.err = Cards(d.View.Items, d.ImageURL).Render(ctx, w)
			}
		}
		h.raw(`</div>`)

		h.raw(`<nav id="pagination-bottom" class="pagination" aria-label="Pagination">`)
		writePager(ctx, h, d)
		h.raw(`</nav>`)
		h.raw(`</main>`)

		if d.ScriptSrc != "" {
			h.printf(`<script src="%s" defer></script>`, safeURL(d.ScriptSrc))
		}
		h.raw(`</body></html>`)
		return h.err
	})
}

func writePager(ctx context.Context, h *htmlWriter, d PageData) {
	if d.LoadFailed || h.err != nil {
		return
	}
	h.err = Pager(d.View.TotalPages, d.View.Current).Render(ctx, h.w)
}

func writeHead(h *htmlWriter, site SiteConfig, title string) {
	h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
	h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	h.printf(`<title>%s</title>`, esc(title))
	if site.Description != "" {
		h.printf(`<meta name="description" content="%s">`, esc(site.Description))
	}
	h.printf(`<link rel="alternate" type="application/rss+xml" title="%s" href="/feed.xml">`, esc(site.Name))
	h.raw(`</head><body>`)
}

// NotFound renders the 404 page.
func NotFound(site SiteConfig) templ.Component {
	return statusPage(site, "Page not found", "The page you are looking for does not exist.")
}

// ServerError renders the 500 page.
func ServerError(site SiteConfig) templ.Component {
	return statusPage(site, "Something went wrong", "Please try again later.")
}

func statusPage(site SiteConfig, title, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		writeHead(h, site, title+" | "+site.Name)
		h.printf(`<main class="status"><h1>%s</h1><p>%s</p><a href="/">Back to posts</a></main>`, esc(title), esc(message))
		h.raw(`</body></html>`)
		return h.err
	})
}
