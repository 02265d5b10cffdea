package promptblog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/promptblog"
	"github.com/eringen/promptblog/views"
)

func newTestApp(t *testing.T, cfg promptblog.SiteConfig) *promptblog.App {
	t.Helper()
	cfg.URL = "https://example.com"
	store := promptblog.NewPostStore(promptblog.DefaultPosts(cfg.URL))
	app := promptblog.New(cfg, views.Funcs(), promptblog.WithStore(store))
	require.NoError(t, app.Setup())
	t.Cleanup(func() { _ = app.Shutdown(t.Context()) })
	return app
}

func get(app *promptblog.App, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func TestRootRedirectsToBlog(t *testing.T) {
	rec := get(newTestApp(t, promptblog.SiteConfig{}), "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/blog", rec.Header().Get("Location"))
}

func TestBlogIndex(t *testing.T) {
	rec := get(newTestApp(t, promptblog.SiteConfig{}), "/blog")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=UTF-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>"+promptblog.IndexTitle+"</title>")
	assert.Contains(t, body, `<link rel="canonical" href="https://example.com/blog">`)
	assert.Contains(t, body, `content="index, follow"`)
	assert.Contains(t, body, `"@type":"FAQPage"`)
	assert.Contains(t, body, `"@type":"BreadcrumbList"`)
	assert.Contains(t, body, `href="/blog/suno-vs-udio-comparison"`)
	assert.Contains(t, body, "Featured")
}

func TestBlogIndexFilteredIsNoIndex(t *testing.T) {
	app := newTestApp(t, promptblog.SiteConfig{})
	rec := get(app, "/blog?q=cinematic")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `content="noindex, nofollow"`)
	assert.Contains(t, body, `href="/blog/cinematic-soundtrack-prompts"`)
	assert.NotContains(t, body, `class="featured"`)

	rec = get(app, "/blog?q=polka+accordion")
	assert.Contains(t, rec.Body.String(), "No articles match your search.")
}

func TestCategoryPage(t *testing.T) {
	app := newTestApp(t, promptblog.SiteConfig{})
	rec := get(app, "/blog/category/genre-guides")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<link rel="canonical" href="https://example.com/blog/category/genre-guides">`)
	assert.Contains(t, body, `href="/blog/lofi-hip-hop-prompts-genre-guide"`)
	assert.NotContains(t, body, `<h3><a href="/blog/suno-vs-udio-comparison"`)

	rec = get(app, "/blog/category/podcasts")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestPostPage(t *testing.T) {
	rec := get(newTestApp(t, promptblog.SiteConfig{}), "/blog/complete-guide-ai-music-prompts")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "<title>The Complete Guide to Writing AI Music Prompts | AI Music Prompter Blog</title>")
	assert.Contains(t, body, `<meta property="og:type" content="article">`)
	assert.Contains(t, body, `<h2 id="why-prompts-matter">Why prompts matter</h2>`)
	assert.Contains(t, body, `href="#the-five-building-blocks"`)
	assert.Contains(t, body, "https://twitter.com/intent/tweet?")
	assert.Contains(t, body, `class="related"`)
	assert.Equal(t, 1, strings.Count(body, `"@type":"BlogPosting"`))
}

func TestUnknownPageRendersNotFound(t *testing.T) {
	app := newTestApp(t, promptblog.SiteConfig{})
	for _, target := range []string{"/blog/no-such-post", "/nowhere"} {
		rec := get(app, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Contains(t, rec.Body.String(), `content="noindex, nofollow"`, target)
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	rec := get(newTestApp(t, promptblog.SiteConfig{}), "/blog/")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/blog", rec.Header().Get("Location"))
}

func TestCrawlDocuments(t *testing.T) {
	app := newTestApp(t, promptblog.SiteConfig{})

	rec := get(app, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "<loc>https://example.com/blog/suno-vs-udio-comparison</loc>")

	rec = get(app, "/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=UTF-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Sitemap: https://example.com/sitemap.xml\n")

	rec = get(app, "/feed.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/rss+xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `<rss version="2.0">`)

	rec = get(app, "/public/styles.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"))
}

func TestAPIPosts(t *testing.T) {
	app := newTestApp(t, promptblog.SiteConfig{})

	rec := get(app, "/api/posts?featured=true")
	require.Equal(t, http.StatusOK, rec.Code)
	var list promptblog.PostList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 3, list.Total)
	for _, p := range list.Posts {
		assert.True(t, p.Featured)
	}

	rec = get(app, "/api/posts?category=Tips+%26+Tricks&q=vocals")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "suno-prompt-tricks-better-vocals", list.Posts[0].Slug)
	assert.Equal(t, "Tips & Tricks", list.Listing.Category)
}

func TestAPIPostDetail(t *testing.T) {
	app := newTestApp(t, promptblog.SiteConfig{})

	rec := get(app, "/api/posts/suno-vs-udio-comparison")
	require.Equal(t, http.StatusOK, rec.Code)
	var detail promptblog.PostDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "suno-vs-udio-comparison", detail.Post.Slug)
	assert.Len(t, detail.Related, promptblog.DefaultRelatedLimit)
	assert.Equal(t, promptblog.EstimateReadingTime(detail.Post.Content), detail.ReadingTime)
	assert.Contains(t, detail.Share.LinkedIn, "linkedin.com")

	rec = get(app, "/api/posts/no-such-post")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestAPISEO(t *testing.T) {
	app := newTestApp(t, promptblog.SiteConfig{})

	rec := get(app, "/api/posts/cinematic-soundtrack-prompts/seo")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `<https://example.com/blog/cinematic-soundtrack-prompts>; rel="canonical"`, rec.Header().Get("Link"))

	var meta map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meta))
	assert.Equal(t, "https://example.com/blog/cinematic-soundtrack-prompts", meta["canonicalUrl"])
	ld := meta["structuredData"].(map[string]any)
	assert.Equal(t, "Writing Prompts for Cinematic Soundtracks", ld["headline"])

	rec = get(app, "/api/seo/index")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "index, follow", rec.Header().Get("X-Robots-Tag"))

	rec = get(app, "/api/seo/breadcrumbs?slug=prompt-keywords-mood")
	require.Equal(t, http.StatusOK, rec.Code)
	var crumbs map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &crumbs))
	assert.Len(t, crumbs["itemListElement"], 3)

	rec = get(app, "/api/seo/faq")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"@type":"FAQPage"`)
}

func TestAPICategoriesAndTags(t *testing.T) {
	app := newTestApp(t, promptblog.SiteConfig{})

	rec := get(app, "/api/categories")
	var groups []promptblog.CategoryGroup
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
	require.Len(t, groups, 4)
	assert.Equal(t, "Tutorials", groups[0].Category)

	rec = get(app, "/api/tags")
	var tags []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tags))
	assert.Contains(t, tags, "orchestral")
}

func TestAPICORS(t *testing.T) {
	app := newTestApp(t, promptblog.SiteConfig{})
	req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = get(app, "/blog")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPIRateLimit(t *testing.T) {
	app := newTestApp(t, promptblog.SiteConfig{APIRateLimit: 2})
	assert.Equal(t, http.StatusOK, get(app, "/api/tags").Code)
	assert.Equal(t, http.StatusOK, get(app, "/api/tags").Code)
	rec := get(app, "/api/tags")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	// Pages are not limited.
	assert.Equal(t, http.StatusOK, get(app, "/blog").Code)
}

func TestErrorResponsesAreNotCached(t *testing.T) {
	app := newTestApp(t, promptblog.SiteConfig{})
	for _, target := range []string{"/blog/no-such-post", "/nowhere", "/api/posts/no-such-post", "/blog/category/podcasts"} {
		rec := get(app, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"), target)
	}

	assert.Equal(t, "public, max-age=3600", get(app, "/blog").Header().Get("Cache-Control"))
	assert.Equal(t, "public, max-age=300", get(app, "/api/tags").Header().Get("Cache-Control"))
}
