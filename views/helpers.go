package views

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/promptblog"
)

// esc escapes s for HTML text and attribute values.
func esc(s string) string {
	return templ.EscapeString(s)
}

// PathEscape wraps url.PathEscape for use in links.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// FormatDate renders a YYYY-MM-DD date as "Jan 2, 2006". Unparseable input
// is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

// CategoryClass returns CSS classes for a category pill, with active variant.
func CategoryClass(active bool) string {
	base := "inline-flex items-center rounded border border-ink bg-stone-100 px-2.5 py-1 text-[11px] font-semibold uppercase tracking-[0.12em] transition"
	if active {
		base += " bg-ink text-white"
	}
	return base
}

// categoryHref links a category pill to the filtered listing.
func categoryHref(category, query string) string {
	v := url.Values{}
	if category != "" && category != promptblog.AllCategoriesLabel {
		v.Set("category", category)
	}
	if strings.TrimSpace(query) != "" {
		v.Set("q", query)
	}
	if len(v) == 0 {
		return "/blog"
	}
	return "/blog?" + v.Encode()
}

// htmlLang is the html lang attribute for a configured language tag.
func htmlLang(tag string) string {
	if tag == "" {
		return "en"
	}
	return tag
}

func postHref(p promptblog.BlogPost) string {
	return "/blog/" + PathEscape(p.Slug)
}

func readTime(minutes int) string {
	return strconv.Itoa(minutes) + " min read"
}

// html builds a component from a function writing into a strings.Builder.
func html(fn func(ctx context.Context, b *strings.Builder) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		if err := fn(ctx, &b); err != nil {
			return err
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// renderInto renders cmp into b.
func renderInto(ctx context.Context, b *strings.Builder, cmp templ.Component) error {
	return cmp.Render(ctx, b)
}
