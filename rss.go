package promptblog

import (
	"encoding/xml"
	"sort"
	"time"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category"`
	PubDate     string   `xml:"pubDate"`
	GUID        string   `xml:"guid"`
}

// GenerateFeed renders an RSS 2.0 feed of posts, newest first.
func GenerateFeed(cfg SiteConfig, posts []BlogPost) ([]byte, error) {
	cfg.setDefaults()
	sorted := append([]BlogPost{}, posts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishDate > sorted[j].PublishDate
	})

	items := make([]rssItem, 0, len(sorted))
	for _, p := range sorted {
		pubDate := ""
		if t, err := time.Parse("2006-01-02", p.PublishDate); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        p.URL,
			Description: p.Excerpt,
			Author:      p.Author,
			Categories:  append([]string{p.Category}, p.Tags...),
			PubDate:     pubDate,
			GUID:        p.URL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.BlogTitle,
			Link:        BuildURL(cfg.URL, "blog"),
			Description: cfg.Description,
			Language:    cfg.Language,
			Items:       items,
		},
	}
	body, err := xml.Marshal(feed)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
