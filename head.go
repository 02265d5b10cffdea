package promptblog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// HeadApplier applies page metadata to whatever "head" a platform has: an
// HTML document head, HTTP response headers, or nothing at all.
type HeadApplier interface {
	Apply(meta SEOMetadata)
}

// Robots directives written to the robots meta tag and X-Robots-Tag.
const (
	RobotsIndex   = "index, follow"
	RobotsNoIndex = "noindex, nofollow"
)

func robotsDirective(noIndex bool) string {
	if noIndex {
		return RobotsNoIndex
	}
	return RobotsIndex
}

// HeadTag is one element of a document head.
type HeadTag struct {
	Element  string      // "meta", "link" or "script"
	Selector string      // stable lookup key, e.g. meta[property="og:title"]
	Attrs    [][2]string // attributes in render order
	Body     string      // script body; empty for void elements
}

// Attr returns the value of attribute name.
func (t HeadTag) Attr(name string) string {
	for _, a := range t.Attrs {
		if a[0] == name {
			return a[1]
		}
	}
	return ""
}

// HeadDocument is an ordered set of head tags. Every tag is keyed by a
// stable selector, so applying metadata again updates tags in place
// instead of adding duplicates.
type HeadDocument struct {
	title string
	tags  []HeadTag
	index map[string]int
}

// NewHeadDocument returns an empty head.
func NewHeadDocument() *HeadDocument {
	return &HeadDocument{index: make(map[string]int)}
}

// Apply sets or creates the title, robots, description, keywords and
// canonical tags, six Open Graph tags, four Twitter tags and the JSON-LD
// script.
func (d *HeadDocument) Apply(meta SEOMetadata) {
	d.title = meta.Title
	d.setMeta("name", "robots", robotsDirective(meta.NoIndex))
	d.setMeta("name", "description", meta.Description)
	d.setMeta("name", "keywords", strings.Join(meta.Keywords, ", "))
	d.set(HeadTag{
		Element:  "link",
		Selector: `link[rel="canonical"]`,
		Attrs:    [][2]string{{"rel", "canonical"}, {"href", meta.CanonicalURL}},
	})

	og := meta.OpenGraph
	d.setMeta("property", "og:title", og.Title)
	d.setMeta("property", "og:description", og.Description)
	d.setMeta("property", "og:image", og.Image)
	d.setMeta("property", "og:url", og.URL)
	d.setMeta("property", "og:type", og.Type)
	d.setMeta("property", "og:site_name", og.SiteName)

	tw := meta.Twitter
	d.setMeta("name", "twitter:card", tw.Card)
	d.setMeta("name", "twitter:title", tw.Title)
	d.setMeta("name", "twitter:description", tw.Description)
	d.setMeta("name", "twitter:image", tw.Image)

	body, err := MarshalJSONLD(meta.StructuredData)
	if err != nil {
		body = "{}"
	}
	d.set(HeadTag{
		Element:  "script",
		Selector: `script[type="application/ld+json"]`,
		Attrs:    [][2]string{{"type", "application/ld+json"}},
		Body:     body,
	})
}

func (d *HeadDocument) setMeta(key, name, content string) {
	d.set(HeadTag{
		Element:  "meta",
		Selector: fmt.Sprintf(`meta[%s="%s"]`, key, name),
		Attrs:    [][2]string{{key, name}, {"content", content}},
	})
}

func (d *HeadDocument) set(tag HeadTag) {
	if i, ok := d.index[tag.Selector]; ok {
		d.tags[i] = tag
		return
	}
	d.index[tag.Selector] = len(d.tags)
	d.tags = append(d.tags, tag)
}

// Title returns the document title.
func (d *HeadDocument) Title() string {
	return d.title
}

// Tags returns the head tags in creation order.
func (d *HeadDocument) Tags() []HeadTag {
	return append([]HeadTag(nil), d.tags...)
}

// Lookup finds a tag by selector.
func (d *HeadDocument) Lookup(selector string) (HeadTag, bool) {
	i, ok := d.index[selector]
	if !ok {
		return HeadTag{}, false
	}
	return d.tags[i], true
}

// Component renders the head contents (not the <head> element itself).
func (d *HeadDocument) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<title>" + templ.EscapeString(d.title) + "</title>\n")
		for _, t := range d.tags {
			b.WriteString("<" + t.Element)
			for _, a := range t.Attrs {
				b.WriteString(" " + a[0] + "=\"" + templ.EscapeString(a[1]) + "\"")
			}
			b.WriteString(">")
			if t.Element == "script" {
				b.WriteString(t.Body + "</script>")
			}
			b.WriteString("\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// HeadTags is a convenience component applying meta to a fresh document.
func HeadTags(meta SEOMetadata) templ.Component {
	d := NewHeadDocument()
	d.Apply(meta)
	return d.Component()
}

// HeaderApplier exposes the crawl-relevant part of the metadata as HTTP
// response headers, for responses that carry no HTML head.
type HeaderApplier struct {
	Header http.Header
}

// Apply sets the canonical Link header and X-Robots-Tag.
func (h HeaderApplier) Apply(meta SEOMetadata) {
	if meta.CanonicalURL != "" {
		h.Header.Set("Link", fmt.Sprintf(`<%s>; rel="canonical"`, meta.CanonicalURL))
	}
	h.Header.Set("X-Robots-Tag", robotsDirective(meta.NoIndex))
}

// NopHead discards metadata. Native clients that manage their own share
// sheets use it.
type NopHead struct{}

// Apply does nothing.
func (NopHead) Apply(SEOMetadata) {}

var (
	_ HeadApplier = (*HeadDocument)(nil)
	_ HeadApplier = HeaderApplier{}
	_ HeadApplier = NopHead{}
)
