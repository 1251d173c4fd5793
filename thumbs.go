package postgrid

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	jpegQuality   = 80
	thumbsPrefix  = "/thumbs/"
	publicPrefix  = "/public/"
	maxThumbCache = 512
)

// Thumbnailer scales local card images down to a fixed width and keeps the
// encoded JPEGs in memory.
type Thumbnailer struct {
	dir   string
	width int

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewThumbnailer serves thumbnails of images under dir, at most width pixels wide.
func NewThumbnailer(dir string, width int) *Thumbnailer {
	return &Thumbnailer{dir: dir, width: width, cache: make(map[string][]byte)}
}

// Get returns the JPEG thumbnail for name, a slash-separated path inside dir.
func (t *Thumbnailer) Get(name string) ([]byte, error) {
	clean := strings.TrimPrefix(path.Clean("/"+name), "/")
	if clean == "" {
		return nil, fs.ErrNotExist
	}

	t.mu.RLock()
	b, ok := t.cache[clean]
	t.mu.RUnlock()
	if ok {
		return b, nil
	}

	f, err := os.Open(filepath.Join(t.dir, filepath.FromSlash(clean)))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err = t.scale(f)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	if len(t.cache) >= maxThumbCache {
		t.cache = make(map[string][]byte)
	}
	t.cache[clean] = b
	t.mu.Unlock()
	return b, nil
}

func (t *Thumbnailer) scale(f *os.File) ([]byte, error) {
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > t.width {
		newH := h * t.width / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, t.width, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// thumbURL points local card images at the thumbnail route. Remote images
// and disabled thumbnails pass through unchanged.
func (a *App) thumbURL(src string) string {
	if a.thumbs == nil || !strings.HasPrefix(src, publicPrefix) {
		return src
	}
	return thumbsPrefix + strings.TrimPrefix(src, publicPrefix)
}

func (a *App) handleThumb(c echo.Context) error {
	b, err := a.thumbs.Get(c.Param("*"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return c.Blob(http.StatusOK, "image/jpeg", b)
}
