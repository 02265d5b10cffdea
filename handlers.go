package promptblog

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

func handleRootRedirect(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/blog")
}

func (a *App) handleIndex(c echo.Context) error {
	var l Listing
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &l); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	meta := a.SEO.IndexSEO()
	// Filtered views are duplicates of the index; keep them out of the index.
	meta.NoIndex = l.Active()
	return Render(c, a.Views.Index(a.indexPage(meta, l)))
}

func (a *App) handleCategory(c echo.Context) error {
	category, ok := a.Store.CategoryBySlug(c.Param("category"))
	if !ok {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config))
	}
	l := Listing{Category: category, Query: c.QueryParam("q")}
	meta := a.SEO.CategorySEO(category)
	meta.NoIndex = strings.TrimSpace(l.Query) != ""
	return Render(c, a.Views.Index(a.indexPage(meta, l)))
}

func (a *App) indexPage(meta SEOMetadata, l Listing) IndexPage {
	return IndexPage{
		Config:      a.Config,
		Meta:        meta,
		Listing:     l,
		Posts:       a.Store.Filter(l),
		Featured:    a.Store.FeaturedPosts(),
		Categories:  a.Store.AllCategories(),
		Breadcrumbs: a.SEO.BreadcrumbData(nil),
		FAQ:         a.SEO.FAQData(),
	}
}

func (a *App) handlePost(c echo.Context) error {
	post, ok := a.Store.PostBySlug(c.Param("slug"))
	if !ok {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config))
	}
	return Render(c, a.Views.Post(a.postPage(post)))
}

func (a *App) postPage(post BlogPost) PostPage {
	return PostPage{
		Config:      a.Config,
		Meta:        a.SEO.PostSEO(post),
		Post:        post,
		Related:     a.Store.RelatedPosts(post, DefaultRelatedLimit),
		Share:       NewShareLinks(post),
		ShareText:   SocialShareText(post),
		ReadingTime: EstimateReadingTime(post.Content),
		Breadcrumbs: a.SEO.BreadcrumbData(&post),
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	body, err := GenerateSitemap(a.Config, a.Store, time.Now())
	if err != nil {
		return err
	}
	return renderBlob(c, "application/xml; charset=utf-8", []byte(body))
}

func (a *App) handleRobots(c echo.Context) error {
	return renderBlob(c, echo.MIMETextPlainCharsetUTF8, []byte(GenerateRobotsTxt(a.Config)))
}

func (a *App) handleFeed(c echo.Context) error {
	body, err := GenerateFeed(a.Config, a.Store.Posts())
	if err != nil {
		return err
	}
	return renderBlob(c, "application/rss+xml; charset=utf-8", body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		a.Echo.DefaultHTTPErrorHandler(err, c)
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.Config))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
