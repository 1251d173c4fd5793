package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/postgrid/grid"
)

// Cards renders one post card per item. Every call regenerates the whole grid.
func Cards(items []grid.Post, imageURL func(string) string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		for _, p := range items {
			writeCard(h, p, imageURL)
		}
		return h.err
	})
}

func writeCard(h *htmlWriter, p grid.Post, imageURL func(string) string) {
	h.printf(`<article class="post-card" data-tags="%s">`, esc(joinTags(p.Tags)))
	h.printf(`<a class="post-card__link" href="%s">`, safeURL(p.URL))
	h.raw(`<div class="post-card__media">`)
	if p.Image != "" {
		src := p.Image
		if imageURL != nil {
			src = imageURL(src)
		}
		h.printf(`<img class="post-card__thumb" src="%s" alt="">`, safeURL(src))
	} else {
		h.raw(`<div class="post-card__thumb placeholder" aria-hidden="true"></div>`)
	}
	h.raw(`</div>`)
	h.raw(`<div class="post-card__body">`)
	h.printf(`<h2 class="post-card__title">%s</h2>`, esc(p.Title))
	h.printf(`<p class="post-card__meta"><time datetime="%s">%s</time></p>`, esc(p.Date), esc(p.DisplayDate))
	if len(p.Tags) > 0 {
		h.raw(`<ul class="post-card__tags">`)
		for _, t := range p.Tags {
			h.printf(`<li class="tag">%s</li>`, esc(t))
		}
		h.raw(`</ul>`)
	}
	h.raw(`</div></a></article>`)
}

// Pager renders the page selector. The current page is a plain marker so
// clicking it does nothing.
func Pager(totalPages, current int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		for i := 1; i <= totalPages; i++ {
			if i == current {
				h.printf(`<span class="page current" aria-current="page">%d</span>`, i)
			} else {
				h.printf(`<button class="page" type="button" data-page="%d">%d</button>`, i, i)
			}
		}
		return h.err
	})
}

// TagButtons renders the "all" button followed by one button per tag.
func TagButtons(tags []string, active string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.printf(`<button class="%s" type="button" data-tag="%s">All</button>`,
			TagClass(active == grid.AllTags), grid.AllTags)
		for _, t := range tags {
			h.printf(`<button class="%s" type="button" data-tag="%s">%s</button>`,
				TagClass(active != "" && grid.Norm(active) == grid.Norm(t)), esc(t), esc(t))
		}
		return h.err
	})
}

// LoadError is the grid content when the post index is unavailable.
func LoadError() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>"+LoadErrorMessage+"</p>")
		return err
	})
}
