package promptblog

import (
	"encoding/xml"
	"strconv"
	"time"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapURLSet is the <urlset> envelope of a sitemap.
type SitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapURL is one <url> entry. Empty fields are left out of the XML.
type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type staticRoute struct {
	path       string
	changeFreq string
	priority   float64
}

var staticRoutes = []staticRoute{
	{"", "daily", 1.0},
	{"blog", "daily", 0.9},
	{"subscription", "monthly", 0.8},
	{"privacy-policy", "yearly", 0.3},
	{"terms-of-service", "yearly", 0.3},
}

func priority(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}

// BuildSitemap lists the static routes, every post and every category.
// Entries that are not posts carry now as their lastmod.
func BuildSitemap(cfg SiteConfig, store *PostStore, now time.Time) SitemapURLSet {
	cfg.setDefaults()
	today := now.Format("2006-01-02")

	urls := make([]SitemapURL, 0, len(staticRoutes)+store.Len())
	for _, r := range staticRoutes {
		loc := BuildURL(cfg.URL)
		if r.path != "" {
			loc = BuildURL(cfg.URL, r.path)
		}
		urls = append(urls, SitemapURL{
			Loc:        loc,
			LastMod:    today,
			ChangeFreq: r.changeFreq,
			Priority:   priority(r.priority),
		})
	}
	for _, p := range store.Posts() {
		prio := 0.7
		if p.Featured {
			prio = 0.9
		}
		urls = append(urls, SitemapURL{
			Loc:        p.URL,
			LastMod:    p.LastModified,
			ChangeFreq: "weekly",
			Priority:   priority(prio),
		})
	}
	for _, c := range store.AllCategories() {
		urls = append(urls, SitemapURL{
			Loc:        CategoryURL(cfg.URL, c),
			LastMod:    today,
			ChangeFreq: "weekly",
			Priority:   priority(0.6),
		})
	}
	return SitemapURLSet{XMLNS: sitemapNS, URLs: urls}
}

// XML serializes the set with the standard XML header.
func (s SitemapURLSet) XML() ([]byte, error) {
	body, err := xml.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	return append(out, '\n'), nil
}

// GenerateSitemap renders the sitemap document. It is recomputed on every
// call; only the non-post lastmod values depend on now.
func GenerateSitemap(cfg SiteConfig, store *PostStore, now time.Time) (string, error) {
	b, err := BuildSitemap(cfg, store, now).XML()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
