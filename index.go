package postgrid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/eringen/postgrid/grid"
)

// ErrIndexUnavailable is returned by every Index read after the single load
// attempt failed. Only a restart retries.
var ErrIndexUnavailable = errors.New("postgrid: post index unavailable")

// Source produces the post index, newest first.
type Source interface {
	Load(ctx context.Context) ([]grid.Post, error)
}

// HTTPSource fetches posts.json with a single GET.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource resolves ref against the site URL, so a site-relative path
// like "/assets/posts.json" stays same-origin.
func NewHTTPSource(siteURL, ref string) (*HTTPSource, error) {
	base, err := url.Parse(siteURL)
	if err != nil {
		return nil, fmt.Errorf("postgrid: parse site url: %w", err)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("postgrid: parse index url: %w", err)
	}
	return &HTTPSource{URL: base.ResolveReference(r).String(), Client: http.DefaultClient}, nil
}

// Load implements Source.
func (s *HTTPSource) Load(ctx context.Context) ([]grid.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: status %d", s.URL, resp.StatusCode)
	}
	return decodePosts(resp.Body)
}

// FileSource reads posts.json from disk.
type FileSource struct {
	Path string
}

// Load implements Source.
func (s FileSource) Load(ctx context.Context) ([]grid.Post, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodePosts(f)
}

func decodePosts(r io.Reader) ([]grid.Post, error) {
	var posts []grid.Post
	if err := json.NewDecoder(r).Decode(&posts); err != nil {
		return nil, fmt.Errorf("decode post index: %w", err)
	}
	return posts, nil
}

// Index holds the post index for the lifetime of the process. The source is
// read once, on first use; after that the posts are never mutated.
type Index struct {
	mu      sync.Mutex
	loaded  bool
	posts   []grid.Post
	tags    []string
	err     error
	source  Source
	buttons []string
	logger  *zap.Logger
}

// NewIndex creates an Index backed by src. A non-empty buttons list fixes
// the selectable tags; otherwise they are collected from the posts.
func NewIndex(src Source, buttons []string, logger *zap.Logger) *Index {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Index{source: src, buttons: buttons, logger: logger}
}

// ensureLoaded runs the single load attempt and returns its outcome.
func (x *Index) ensureLoaded(ctx context.Context) ([]grid.Post, []string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.loaded {
		return x.posts, x.tags, x.err
	}
	x.loaded = true

	// The first caller's cancellation must not turn into a permanent failure.
	posts, err := x.source.Load(context.WithoutCancel(ctx))
	if err != nil {
		x.logger.Error("failed to load post index", zap.Error(err))
		x.err = fmt.Errorf("%w: %w", ErrIndexUnavailable, err)
		return nil, nil, x.err
	}
	x.posts = posts
	if len(x.buttons) > 0 {
		x.tags = x.buttons
	} else {
		x.tags = grid.CollectTags(posts)
	}
	x.logger.Info("post index loaded", zap.Int("posts", len(posts)), zap.Int("tags", len(x.tags)))
	return x.posts, x.tags, nil
}

// Posts returns the index in the order the source delivered it.
func (x *Index) Posts(ctx context.Context) ([]grid.Post, error) {
	posts, _, err := x.ensureLoaded(ctx)
	return posts, err
}

// Tags returns the selectable tag buttons, "all" excluded.
func (x *Index) Tags(ctx context.Context) ([]string, error) {
	_, tags, err := x.ensureLoaded(ctx)
	return tags, err
}
