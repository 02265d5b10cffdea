// Command promptblog serves the AI Music Prompter blog and generates its
// crawl documents.
package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/eringen/promptblog"
)

// version is set at build time via ldflags.
var version = "dev"

var flags struct {
	siteURL   string
	contentDB string
}

var rootCmd = &cobra.Command{
	Use:           "promptblog",
	Short:         "Blog and SEO service for AI Music Prompter",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.siteURL, "site-url", "", "canonical base URL (overrides SITE_URL)")
	rootCmd.PersistentFlags().StringVar(&flags.contentDB, "content-db", "", "SQLite content snapshot (overrides CONTENT_DB)")
}

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrf("Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig builds the site config from the environment, then applies
// command line overrides.
func loadConfig() promptblog.SiteConfig {
	crawlDelay, _ := strconv.Atoi(os.Getenv("CRAWL_DELAY"))
	rateLimit, _ := strconv.Atoi(os.Getenv("API_RATE_LIMIT"))
	cfg := promptblog.SiteConfig{
		Name:                os.Getenv("SITE_NAME"),
		URL:                 promptblog.EnvOr("SITE_URL", promptblog.DefaultBaseURL),
		Description:         os.Getenv("SITE_DESCRIPTION"),
		Author:              os.Getenv("SITE_AUTHOR"),
		Addr:                promptblog.EnvOr("ADDR", ":3000"),
		ContentDatabasePath: os.Getenv("CONTENT_DB"),
		StaticDir:           promptblog.EnvOr("STATIC_DIR", "public"),
		CrawlDelay:          crawlDelay,
		APIRateLimit:        rateLimit,
	}
	if flags.siteURL != "" {
		cfg.URL = flags.siteURL
	}
	if flags.contentDB != "" {
		cfg.ContentDatabasePath = flags.contentDB
	}
	return cfg.WithDefaults()
}
