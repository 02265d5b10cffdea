// Package views holds the default page components of the blog.
package views

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/promptblog"
	"github.com/eringen/promptblog/markdown"
)

// Funcs returns the default view set for promptblog.New.
func Funcs() promptblog.ViewFuncs {
	return promptblog.ViewFuncs{
		Index:       Index,
		Post:        Post,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}

// Index renders the listing: search box, category pills, the featured strip
// (only when unfiltered) and the matching posts.
func Index(page promptblog.IndexPage) templ.Component {
	body := html(func(ctx context.Context, b *strings.Builder) error {
		l := page.Listing
		b.WriteString("<section class=\"blog-index\">\n")
		b.WriteString("<h1>" + esc(page.Meta.Title) + "</h1>\n")

		b.WriteString("<form class=\"search\" method=\"get\" action=\"/blog\">")
		if l.Category != "" {
			b.WriteString("<input type=\"hidden\" name=\"category\" value=\"" + esc(l.Category) + "\">")
		}
		b.WriteString("<input type=\"search\" name=\"q\" placeholder=\"Search articles\" value=\"" + esc(l.Query) + "\">")
		b.WriteString("</form>\n")

		b.WriteString("<nav class=\"categories\">")
		cats := append([]string{promptblog.AllCategoriesLabel}, page.Categories...)
		for _, c := range cats {
			active := c == l.Category || (c == promptblog.AllCategoriesLabel && l.Category == "")
			b.WriteString("<a class=\"" + CategoryClass(active) + "\" href=\"" + esc(categoryHref(c, l.Query)) + "\">" + esc(c) + "</a>")
		}
		b.WriteString("</nav>\n")

		if !l.Active() && len(page.Featured) > 0 {
			b.WriteString("<section class=\"featured\"><h2>Featured</h2>\n")
			for _, p := range page.Featured {
				writeCard(b, p)
			}
			b.WriteString("</section>\n")
		}

		b.WriteString("<section class=\"posts\">\n")
		if len(page.Posts) == 0 {
			b.WriteString("<p class=\"empty\">No articles match your search.</p>\n")
		}
		for _, p := range page.Posts {
			writeCard(b, p)
		}
		b.WriteString("</section>\n</section>\n")
		return nil
	})
	return layout(page.Config, page.Meta, []promptblog.JSONLD{page.Breadcrumbs, page.FAQ}, body)
}

func writeCard(b *strings.Builder, p promptblog.BlogPost) {
	b.WriteString("<article class=\"card\">")
	b.WriteString("<span class=\"category\">" + esc(p.Category) + "</span>")
	b.WriteString("<h3><a href=\"" + postHref(p) + "\">" + esc(p.Title) + "</a></h3>")
	b.WriteString("<p>" + esc(p.Excerpt) + "</p>")
	b.WriteString("<p class=\"byline\">" + esc(p.Author) + " · " + FormatDate(p.PublishDate) + " · " + readTime(p.ReadTime) + "</p>")
	b.WriteString("</article>\n")
}

// Post renders a single article with its share links and related posts.
func Post(page promptblog.PostPage) templ.Component {
	p := page.Post
	body := html(func(ctx context.Context, b *strings.Builder) error {
		b.WriteString("<article class=\"post\">\n")
		b.WriteString("<nav class=\"breadcrumbs\"><a href=\"/\">Home</a> / <a href=\"/blog\">Blog</a> / " + esc(p.Title) + "</nav>\n")
		b.WriteString("<a class=\"category\" href=\"" + esc(promptblog.CategoryURL("", p.Category)) + "\">" + esc(p.Category) + "</a>\n")
		b.WriteString("<h1>" + esc(p.Title) + "</h1>\n")
		b.WriteString("<p class=\"byline\">" + esc(p.Author) + " · " + FormatDate(p.PublishDate))
		if p.LastModified != p.PublishDate {
			b.WriteString(" · Updated " + FormatDate(p.LastModified))
		}
		b.WriteString(" · " + readTime(page.ReadingTime) + "</p>\n")
		if p.Image != "" {
			b.WriteString("<img class=\"hero\" src=\"" + esc(p.Image) + "\" alt=\"" + esc(p.Title) + "\">\n")
		}

		if toc := markdown.Headings(p.Content); len(toc) > 1 {
			b.WriteString("<nav class=\"toc\"><ol>")
			for _, h := range toc {
				b.WriteString("<li class=\"toc-h" + strconv.Itoa(h.Level) + "\"><a href=\"#" + esc(h.ID) + "\">" + esc(h.Text) + "</a></li>")
			}
			b.WriteString("</ol></nav>\n")
		}

		b.WriteString("<div class=\"content\">\n")
		if err := renderInto(ctx, b, markdown.Markdown(p.Content)); err != nil {
			return err
		}
		b.WriteString("</div>\n")

		b.WriteString("<ul class=\"tags\">")
		for _, t := range p.Tags {
			b.WriteString("<li>" + esc(t) + "</li>")
		}
		b.WriteString("</ul>\n")

		b.WriteString("<aside class=\"share\" data-share-text=\"" + esc(page.ShareText) + "\">")
		b.WriteString("<a href=\"" + esc(page.Share.Twitter) + "\" rel=\"noopener\" target=\"_blank\">Share on X</a>")
		b.WriteString("<a href=\"" + esc(page.Share.Facebook) + "\" rel=\"noopener\" target=\"_blank\">Share on Facebook</a>")
		b.WriteString("<a href=\"" + esc(page.Share.LinkedIn) + "\" rel=\"noopener\" target=\"_blank\">Share on LinkedIn</a>")
		b.WriteString("</aside>\n</article>\n")

		if len(page.Related) > 0 {
			b.WriteString("<section class=\"related\"><h2>Related articles</h2>\n")
			for _, r := range page.Related {
				writeCard(b, r)
			}
			b.WriteString("</section>\n")
		}
		return nil
	})
	return layout(page.Config, page.Meta, []promptblog.JSONLD{page.Breadcrumbs}, body)
}

// NotFound renders the 404 page. It is never indexed.
func NotFound(cfg promptblog.SiteConfig) templ.Component {
	return errorPage(cfg, "Page not found", "The article you are looking for does not exist or has moved.")
}

// ServerError renders the 500 page.
func ServerError(cfg promptblog.SiteConfig) templ.Component {
	return errorPage(cfg, "Something went wrong", "Please try again in a moment.")
}

func errorPage(cfg promptblog.SiteConfig, title, message string) templ.Component {
	meta := promptblog.NewSEO(cfg).ErrorSEO(title, message)
	body := html(func(ctx context.Context, b *strings.Builder) error {
		b.WriteString("<section class=\"error\"><h1>" + esc(title) + "</h1><p>" + esc(message) + "</p>")
		b.WriteString("<a href=\"/blog\">Back to the blog</a></section>\n")
		return nil
	})
	return layout(cfg, meta, nil, body)
}
