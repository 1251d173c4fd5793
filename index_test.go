package postgrid

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/postgrid/grid"
)

const sampleIndex = `[
  {"title": "Second", "url": "/2024/02/second/", "date": "2024-02-01", "display_date": "Feb 1, 2024", "tags": ["Go", "Web"]},
  {"title": "First", "url": "/2024/01/first/", "date": "2024-01-01", "display_date": "Jan 1, 2024", "image": "/public/first.png", "tags": ["go"]}
]`

type countingSource struct {
	mu    sync.Mutex
	calls int
	posts []grid.Post
	err   error
}

func (s *countingSource) Load(ctx context.Context) ([]grid.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.posts, s.err
}

func TestHTTPSourceResolvesSameOrigin(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleIndex))
	}))
	defer srv.Close()

	src, err := NewHTTPSource(srv.URL+"/blog", "/assets/posts.json")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/assets/posts.json", src.URL)

	posts, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/assets/posts.json", gotPath)
	require.Len(t, posts, 2)
	assert.Equal(t, "Second", posts[0].Title)
	assert.Equal(t, "Feb 1, 2024", posts[0].DisplayDate)
	assert.Equal(t, []string{"Go", "Web"}, posts[0].Tags)
	assert.Equal(t, "/public/first.png", posts[1].Image)
}

func TestHTTPSourceErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status", func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) }},
		{"invalid json", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("<html>")) }},
		{"not an array", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"title":"x"}`)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			src := &HTTPSource{URL: srv.URL}
			_, err := src.Load(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestHTTPSourceTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := (&HTTPSource{URL: url}).Load(context.Background())
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleIndex), 0o644))

	posts, err := FileSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	_, err = FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}.Load(context.Background())
	assert.Error(t, err)
}

func TestIndexLoadsOnce(t *testing.T) {
	src := &countingSource{posts: []grid.Post{{Title: "a", Tags: []string{"Go"}}, {Title: "b", Tags: []string{"web", "go"}}}}
	idx := NewIndex(src, nil, nil)

	for i := 0; i < 3; i++ {
		posts, err := idx.Posts(context.Background())
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	}
	tags, err := idx.Tags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "web"}, tags)
	assert.Equal(t, 1, src.calls)
}

func TestIndexConfiguredButtons(t *testing.T) {
	src := &countingSource{posts: []grid.Post{{Title: "a", Tags: []string{"Go"}}}}
	idx := NewIndex(src, []string{"Go", "Biology"}, nil)

	tags, err := idx.Tags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Biology"}, tags)
}

func TestIndexFailureIsTerminal(t *testing.T) {
	cause := errors.New("connection refused")
	src := &countingSource{err: cause}
	idx := NewIndex(src, nil, nil)

	for i := 0; i < 3; i++ {
		_, err := idx.Posts(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIndexUnavailable)
		assert.ErrorIs(t, err, cause)
	}
	_, err := idx.Tags(context.Background())
	assert.ErrorIs(t, err, ErrIndexUnavailable)
	assert.Equal(t, 1, src.calls, "a failed load must not be retried")
}

func TestIndexIgnoresCallerCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleIndex))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	idx := NewIndex(&HTTPSource{URL: srv.URL}, nil, nil)
	posts, err := idx.Posts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}
