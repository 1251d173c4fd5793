package postgrid

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/postgrid/grid"
	"github.com/eringen/postgrid/views"
)

// GridResponse is the /grid/ payload: fresh markup for the grid and both
// pagers plus the state the script writes back into the fragment. Active is
// omitted when no tag button matches, leaving the buttons as they are.
type GridResponse struct {
	Grid       string `json:"grid"`
	Pager      string `json:"pager"`
	Tag        string `json:"tag"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	Active     string `json:"active,omitempty"`
	Fragment   string `json:"fragment"`
}

// handleHome renders the page shell. The fragment never reaches the server,
// so the initial state comes from the same t/p pairs in the query string.
// Form-encoded links write spaces as "+", which the fragment never does.
func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	state := grid.DecodeFragment(strings.ReplaceAll(c.QueryString(), "+", "%20"))
	data := views.PageData{
		Site:         a.siteView(),
		State:        state,
		GridEndpoint: "/grid/",
		ScriptSrc:    "/static/postgrid.js",
		ImageURL:     a.thumbURL,
	}

	posts, err := a.Index.Posts(ctx)
	if err != nil {
		if !errors.Is(err, ErrIndexUnavailable) {
			return err
		}
		data.LoadFailed = true
		return Render(c, views.Page(data))
	}
	tags, err := a.Index.Tags(ctx)
	if err != nil {
		return err
	}

	data.State, data.View = grid.Resolve(posts, state, a.Config.PageSize)
	data.Tags = tags
	data.ActiveTag = activeButton(tags, data.State.Tag)
	return Render(c, views.Page(data))
}

// handleGrid applies one action to the state carried in the fragment and
// returns the re-rendered grid.
func (a *App) handleGrid(c echo.Context) error {
	ctx := c.Request().Context()
	state := grid.Reduce(grid.DefaultState(), grid.Init(c.QueryParam("fragment")))

	value := c.QueryParam("value")
	switch c.QueryParam("action") {
	case "":
	case "tag":
		state = grid.Reduce(state, grid.SelectTag(value))
	case "page":
		page, err := strconv.Atoi(value)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid page")
		}
		state = grid.Reduce(state, grid.GoToPage(page))
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown action")
	}

	posts, err := a.Index.Posts(ctx)
	if err != nil {
		if !errors.Is(err, ErrIndexUnavailable) {
			return err
		}
		msg, rerr := views.RenderString(ctx, views.LoadError())
		if rerr != nil {
			return rerr
		}
		return c.JSON(http.StatusServiceUnavailable, GridResponse{
			Grid:     msg,
			Tag:      state.Tag,
			Page:     state.Page,
			Fragment: grid.EncodeFragment(state),
		})
	}
	tags, err := a.Index.Tags(ctx)
	if err != nil {
		return err
	}

	resp, err := a.gridResponse(c, posts, tags, state)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *App) handleScript(c echo.Context) error {
	b, err := EmbeddedAssets.ReadFile("embedded/postgrid.js")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/javascript; charset=utf-8", b)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Index.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Index.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

// activeButton returns the button to highlight for tag, or "" when none matches.
func activeButton(tags []string, tag string) string {
	if grid.Norm(tag) == grid.AllTags {
		return grid.AllTags
	}
	b, _ := grid.MatchTag(tags, tag)
	return b
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteView()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.Error(err),
			zap.String("uri", c.Request().RequestURI),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)))
		_ = RenderStatus(c, code, views.ServerError(a.siteView()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
