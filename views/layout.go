package views

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/promptblog"
)

// layout wraps body in the document shell. The head is built through a
// HeadDocument so every page gets the same tag set; extra JSON-LD blocks
// (breadcrumbs, FAQ) are appended after it.
func layout(cfg promptblog.SiteConfig, meta promptblog.SEOMetadata, extra []promptblog.JSONLD, body templ.Component) templ.Component {
	return html(func(ctx context.Context, b *strings.Builder) error {
		head := promptblog.NewHeadDocument()
		head.Apply(meta)

		b.WriteString("<!doctype html>\n<html lang=\"" + esc(htmlLang(cfg.Language)) + "\">\n<head>\n")
		b.WriteString("<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		if err := renderInto(ctx, b, head.Component()); err != nil {
			return err
		}
		for _, ld := range extra {
			if ld == nil {
				continue
			}
			js, err := promptblog.MarshalJSONLD(ld)
			if err != nil {
				return err
			}
			b.WriteString("<script type=\"application/ld+json\">" + js + "</script>\n")
		}
		b.WriteString("<link rel=\"alternate\" type=\"application/rss+xml\" title=\"" + esc(cfg.BlogTitle) + "\" href=\"/feed.xml\">\n")
		b.WriteString("<link rel=\"stylesheet\" href=\"/public/styles.css\">\n")
		b.WriteString("</head>\n<body>\n")
		b.WriteString("<header class=\"site-header\"><a href=\"/blog\">" + esc(cfg.BlogTitle) + "</a></header>\n<main>\n")
		if err := renderInto(ctx, b, body); err != nil {
			return err
		}
		b.WriteString("</main>\n<footer class=\"site-footer\">")
		b.WriteString("<a href=\"/privacy-policy\">Privacy</a> · <a href=\"/terms-of-service\">Terms</a> · <a href=\"/feed.xml\">RSS</a>")
		b.WriteString("</footer>\n</body>\n</html>\n")
		return nil
	})
}
