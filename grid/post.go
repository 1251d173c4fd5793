// Package grid holds the pure filter, pagination and fragment logic behind the
// post card grid. Nothing in here performs I/O; handlers and the CLI feed it a
// post slice and a State and render whatever View comes back.
package grid

import "strings"

// AllTags is the tag value that disables filtering.
const AllTags = "all"

// Post is one entry of the post index as produced by the site build.
type Post struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Date        string   `json:"date"`
	DisplayDate string   `json:"display_date"`
	Image       string   `json:"image,omitempty"`
	Tags        []string `json:"tags"`
}

// Norm trims and lower-cases a tag for comparison.
func Norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// HasTag reports whether p carries tag, ignoring case and surrounding space.
func (p Post) HasTag(tag string) bool {
	t := Norm(tag)
	for _, pt := range p.Tags {
		if Norm(pt) == t {
			return true
		}
	}
	return false
}

// FilterPosts returns the posts tagged with tag. The "all" tag returns posts
// itself, order untouched.
func FilterPosts(posts []Post, tag string) []Post {
	if tag == AllTags {
		return posts
	}
	filtered := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.HasTag(tag) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// MatchTag finds the button tag equal to tag after normalisation.
func MatchTag(buttons []string, tag string) (string, bool) {
	t := Norm(tag)
	for _, b := range buttons {
		if Norm(b) == t {
			return b, true
		}
	}
	return "", false
}

// CollectTags returns the distinct normalised tags of posts in first-seen order.
func CollectTags(posts []Post) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			n := Norm(t)
			if n == "" {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			tags = append(tags, n)
		}
	}
	return tags
}
