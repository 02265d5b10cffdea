package promptblog

import (
	"os"
	"strings"
)

// SiteConfig holds all configuration for the blog.
type SiteConfig struct {
	Name         string // Product / publisher name (default "AI Music Prompter")
	BlogTitle    string // Suffix of every post title (default "AI Music Prompter Blog")
	URL          string // Canonical base URL without trailing slash
	Description  string // Blog index description
	Author       string // Default author; posts by this author are attributed to the publisher
	Logo         string // Publisher logo path, relative to URL
	DefaultImage string // Social preview image used when a post has none
	Language     string // inLanguage of structured data (default "en-US")

	Addr                string // Listen address (default ":3000")
	ContentDatabasePath string // Optional SQLite snapshot; empty uses the compiled-in seed
	StaticDir           string // Directory served under /public (default "public")
	CrawlDelay          int    // robots.txt Crawl-delay in seconds (default 1)
	APIRateLimit        int    // Requests per minute per client on /api (default 120)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "AI Music Prompter"
	}
	if c.BlogTitle == "" {
		c.BlogTitle = c.Name + " Blog"
	}
	if c.URL == "" {
		c.URL = DefaultBaseURL
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Description == "" {
		c.Description = "Guides, tutorials and techniques for writing better prompts for AI music generators like Suno and Udio."
	}
	if c.Author == "" {
		c.Author = c.Name + " Team"
	}
	if c.Logo == "" {
		c.Logo = "/images/logo.png"
	}
	if c.DefaultImage == "" {
		c.DefaultImage = "/images/blog-og-default.jpg"
	}
	if c.Language == "" {
		c.Language = "en-US"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.CrawlDelay == 0 {
		c.CrawlDelay = 1
	}
	if c.APIRateLimit == 0 {
		c.APIRateLimit = 120
	}
}

// WithDefaults returns a copy of c with every empty field set to its default.
func (c SiteConfig) WithDefaults() SiteConfig {
	c.setDefaults()
	return c
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStore injects a prebuilt post store instead of loading one on Start.
func WithStore(s *PostStore) Option {
	return func(a *App) {
		a.Store = s
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
