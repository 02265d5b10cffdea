package promptblog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("post not found")

// PostList is the response of GET /api/posts.
type PostList struct {
	Posts      []BlogPost `json:"posts"`
	Total      int        `json:"total"`
	Categories []string   `json:"categories"`
	Listing    Listing    `json:"listing"`
}

// PostDetail is the response of GET /api/posts/:slug.
type PostDetail struct {
	Post         BlogPost   `json:"post"`
	Related      []BlogPost `json:"related"`
	Share        ShareLinks `json:"share"`
	ShareText    string     `json:"shareText"`
	ReadingTime  int        `json:"readingTime"`
	WordCount    int        `json:"wordCount"`
	MetaKeywords string     `json:"metaKeywords"`
}

func (a *App) lookup(c echo.Context) (BlogPost, error) {
	post, ok := a.Store.PostBySlug(c.Param("slug"))
	if !ok {
		return BlogPost{}, echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error()).SetInternal(ErrNotFound)
	}
	return post, nil
}

func (a *App) apiListPosts(c echo.Context) error {
	var l Listing
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &l); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	posts := a.Store.Filter(l)
	if featured, _ := strconv.ParseBool(c.QueryParam("featured")); featured {
		kept := []BlogPost{}
		for _, p := range posts {
			if p.Featured {
				kept = append(kept, p)
			}
		}
		posts = kept
	}
	return c.JSON(http.StatusOK, PostList{
		Posts:      posts,
		Total:      len(posts),
		Categories: a.Store.AllCategories(),
		Listing:    l,
	})
}

func (a *App) apiGetPost(c echo.Context) error {
	post, err := a.lookup(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, PostDetail{
		Post:         post,
		Related:      a.Store.RelatedPosts(post, DefaultRelatedLimit),
		Share:        NewShareLinks(post),
		ShareText:    SocialShareText(post),
		ReadingTime:  EstimateReadingTime(post.Content),
		WordCount:    WordCount(post.Content),
		MetaKeywords: MetaKeywords(post),
	})
}

func (a *App) apiPostSEO(c echo.Context) error {
	post, err := a.lookup(c)
	if err != nil {
		return err
	}
	return a.metaJSON(c, a.SEO.PostSEO(post))
}

func (a *App) apiIndexSEO(c echo.Context) error {
	return a.metaJSON(c, a.SEO.IndexSEO())
}

// metaJSON answers with meta and mirrors it into the response headers.
func (a *App) metaJSON(c echo.Context, meta SEOMetadata) error {
	HeaderApplier{Header: c.Response().Header()}.Apply(meta)
	return c.JSON(http.StatusOK, meta)
}

func (a *App) apiFAQ(c echo.Context) error {
	return c.JSON(http.StatusOK, a.SEO.FAQData())
}

// apiBreadcrumbs answers GET /api/seo/breadcrumbs[?slug=].
func (a *App) apiBreadcrumbs(c echo.Context) error {
	slug := c.QueryParam("slug")
	if slug == "" {
		return c.JSON(http.StatusOK, a.SEO.BreadcrumbData(nil))
	}
	post, ok := a.Store.PostBySlug(slug)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error()).SetInternal(ErrNotFound)
	}
	return c.JSON(http.StatusOK, a.SEO.BreadcrumbData(&post))
}

func (a *App) apiCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Store.GroupByCategory())
}

func (a *App) apiTags(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Store.AllTags())
}
