package promptblog

import (
	"fmt"
	"strings"
)

var (
	robotsAllow    = []string{"/", "/blog/"}
	robotsDisallow = []string{"/api/", "/admin/", "/private/"}
)

// GenerateRobotsTxt renders the robots policy for cfg.
func GenerateRobotsTxt(cfg SiteConfig) string {
	cfg.setDefaults()
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	for _, p := range robotsAllow {
		fmt.Fprintf(&b, "Allow: %s\n", p)
	}
	for _, p := range robotsDisallow {
		fmt.Fprintf(&b, "Disallow: %s\n", p)
	}
	fmt.Fprintf(&b, "Crawl-delay: %d\n", cfg.CrawlDelay)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", cfg.URL)
	return b.String()
}
