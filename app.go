// Package promptblog is the blog and SEO service of AI Music Prompter.
// It serves an immutable post collection as HTML pages, a JSON API, a
// sitemap, robots.txt and an RSS feed, and derives search and social
// metadata for every page.
//
// Templates are supplied through ViewFuncs; the views package has the
// defaults.
package promptblog

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// IndexPage is the data of the listing page and of category pages.
type IndexPage struct {
	Config      SiteConfig
	Meta        SEOMetadata
	Listing     Listing
	Posts       []BlogPost
	Featured    []BlogPost
	Categories  []string
	Breadcrumbs JSONLD
	FAQ         JSONLD
}

// PostPage is the data of a single post page.
type PostPage struct {
	Config      SiteConfig
	Meta        SEOMetadata
	Post        BlogPost
	Related     []BlogPost
	Share       ShareLinks
	ShareText   string
	ReadingTime int
	Breadcrumbs JSONLD
}

// ViewFuncs holds the templ components the App renders pages with.
type ViewFuncs struct {
	Index       func(page IndexPage) templ.Component
	Post        func(page PostPage) templ.Component
	NotFound    func(cfg SiteConfig) templ.Component
	ServerError func(cfg SiteConfig) templ.Component
}

// App wires the post store, the SEO synthesizer, handlers and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *PostStore
	SEO    *SEO
	Views  ViewFuncs

	limiter      *RequestLimiter
	customRoutes []func(*App)
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		SEO:    NewSEO(cfg),
		Views:  views,
	}
	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(log.INFO)

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup loads the post store (unless one was injected) and registers
// middleware and routes. Start calls it; tests call it directly.
func (a *App) Setup() error {
	if a.Views.Index == nil || a.Views.Post == nil || a.Views.NotFound == nil || a.Views.ServerError == nil {
		return fmt.Errorf("promptblog: all ViewFuncs are required")
	}
	if a.Store == nil {
		store, err := LoadPostStore(a.Config)
		if err != nil {
			return fmt.Errorf("promptblog: init store: %w", err)
		}
		a.Store = store
	}
	a.limiter = NewRequestLimiter(a.Config.APIRateLimit, time.Minute)
	a.Echo.Logger.Infof("loaded %d posts in %d categories", a.Store.Len(), len(a.Store.AllCategories()))

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start sets the App up and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends.
func (a *App) Shutdown(ctx context.Context) error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	assets, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.GET("/public/styles.css", echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(assets)))))
	e.Static("/public", a.Config.StaticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", handleRootRedirect)
	e.GET("/blog", a.handleIndex)
	e.GET("/blog/category/:category", a.handleCategory)
	e.GET("/blog/:slug", a.handlePost)

	api := e.Group("/api", a.limiter.Middleware)
	api.GET("/posts", a.apiListPosts)
	api.GET("/posts/:slug", a.apiGetPost)
	api.GET("/posts/:slug/seo", a.apiPostSEO)
	api.GET("/seo/index", a.apiIndexSEO)
	api.GET("/seo/faq", a.apiFAQ)
	api.GET("/seo/breadcrumbs", a.apiBreadcrumbs)
	api.GET("/categories", a.apiCategories)
	api.GET("/tags", a.apiTags)
}
