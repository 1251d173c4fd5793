package postgrid

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/eringen/postgrid/grid"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// renderSitemap lists the grid page and every post hosted on this site.
// Posts linking to other hosts are left out.
func (a *App) renderSitemap(c echo.Context, posts []grid.Post) error {
	base := a.Config.URL
	baseURL, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("postgrid: parse site url: %w", err)
	}
	urls := []sitemapURL{
		{Loc: BuildURL(base)},
	}
	for _, p := range posts {
		loc := AbsoluteURL(base, p.URL)
		if u, err := url.Parse(loc); err != nil || u.Host != baseURL.Host {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc:     loc,
			LastMod: p.Date,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
