package postgrid

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/postgrid/grid"
	"github.com/eringen/postgrid/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// RenderGrid resolves state against posts and renders the cards and pager
// markup. Both pagers share the returned Pager string.
func RenderGrid(ctx context.Context, posts []grid.Post, tags []string, state grid.State, pageSize int, imageURL func(string) string) (GridResponse, error) {
	s, v := grid.Resolve(posts, state, pageSize)
	cards, err := views.RenderString(ctx, views.Cards(v.Items, imageURL))
	if err != nil {
		return GridResponse{}, err
	}
	pager, err := views.RenderString(ctx, views.Pager(v.TotalPages, v.Current))
	if err != nil {
		return GridResponse{}, err
	}
	return GridResponse{
		Grid:       cards,
		Pager:      pager,
		Tag:        s.Tag,
		Page:       s.Page,
		TotalPages: v.TotalPages,
		Active:     activeButton(tags, s.Tag),
		Fragment:   grid.EncodeFragment(s),
	}, nil
}

func (a *App) gridResponse(c echo.Context, posts []grid.Post, tags []string, state grid.State) (GridResponse, error) {
	return RenderGrid(c.Request().Context(), posts, tags, state, a.Config.PageSize, a.thumbURL)
}
