package grid

import (
	"net/url"
	"strconv"
	"strings"
)

// Fragment keys.
const (
	tagKey  = "t"
	pageKey = "p"
)

// EncodeFragment writes s as "#", "#t=<tag>", "#p=<page>" or "#t=<tag>&p=<page>".
// Default values are left out.
func EncodeFragment(s State) string {
	var parts []string
	if s.Tag != "" && s.Tag != AllTags {
		parts = append(parts, tagKey+"="+escapeComponent(s.Tag))
	}
	if s.Page > 1 {
		parts = append(parts, pageKey+"="+strconv.Itoa(s.Page))
	}
	return "#" + strings.Join(parts, "&")
}

// DecodeFragment parses a fragment (with or without its leading "#") back into
// a State. Unknown keys are ignored, keys match case-insensitively and the
// first occurrence of a key wins. Anything malformed falls back to the
// default for that field.
func DecodeFragment(fragment string) State {
	s := DefaultState()
	fragment = strings.TrimPrefix(fragment, "#")
	var sawTag, sawPage bool
	for _, pair := range strings.Split(fragment, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || value == "" {
			continue
		}
		switch strings.ToLower(key) {
		case tagKey:
			if sawTag {
				continue
			}
			sawTag = true
			if tag, err := url.PathUnescape(value); err == nil {
				if n := Norm(tag); n != "" {
					s.Tag = n
				}
			}
		case pageKey:
			if sawPage {
				continue
			}
			sawPage = true
			if page, ok := parseDigits(value); ok {
				s.Page = page
			}
		}
	}
	return s
}

// parseDigits accepts only unsigned decimal numbers that fit in an int.
func parseDigits(v string) (int, bool) {
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// componentUnescaper undoes the QueryEscape encodings that
// encodeURIComponent leaves alone, and writes spaces as %20.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeComponent percent-encodes like encodeURIComponent.
func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
