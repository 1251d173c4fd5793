package views

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// LoadErrorMessage is shown in place of the grid when the index cannot load.
const LoadErrorMessage = "Unable to load posts."

// esc escapes text and attribute values.
func esc(s string) string {
	return templ.EscapeString(s)
}

// safeURL drops javascript: and similar schemes before escaping.
func safeURL(s string) string {
	return esc(string(templ.URL(s)))
}

// TagClass returns the CSS classes for a tag button.
func TagClass(active bool) string {
	if active {
		return "tag-btn is-active"
	}
	return "tag-btn"
}

// RenderString renders cmp into a string, for JSON responses and the CLI.
func RenderString(ctx context.Context, cmp templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := cmp.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// htmlWriter accumulates markup and remembers the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) printf(format string, args ...any) {
	if h.err != nil {
		return
	}
	_, h.err = fmt.Fprintf(h.w, format, args...)
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}
