package promptblog

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLD(t *testing.T, data JSONLD) map[string]any {
	t.Helper()
	js, err := MarshalJSONLD(data)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(js), &out))
	return out
}

func TestPostSEOCanonicalAndTitle(t *testing.T) {
	seo := NewSEO(SiteConfig{URL: "https://example.com/"})
	for _, p := range DefaultPosts("https://example.com") {
		meta := seo.PostSEO(p)
		assert.Equal(t, "https://example.com/blog/"+p.Slug, meta.CanonicalURL)
		assert.Equal(t, p.Title+" | AI Music Prompter Blog", meta.Title)
		assert.Equal(t, meta.CanonicalURL, meta.OpenGraph.URL)
		assert.Equal(t, "article", meta.OpenGraph.Type)
		assert.Equal(t, "summary_large_image", meta.Twitter.Card)
		assert.Equal(t, p.MetaDescription, meta.Description)
		assert.False(t, meta.NoIndex)
	}
}

func TestPostSEOStructuredDataRoundTrip(t *testing.T) {
	seo := NewSEO(SiteConfig{})
	p, _ := seedStore().PostBySlug("suno-prompt-tricks-better-vocals")

	ld := decodeLD(t, seo.PostSEO(p).StructuredData)
	assert.Equal(t, "https://schema.org", ld["@context"])
	assert.Equal(t, "BlogPosting", ld["@type"])
	assert.Equal(t, p.Title, ld["headline"])
	assert.Equal(t, p.PublishDate, ld["datePublished"])
	assert.Equal(t, p.LastModified, ld["dateModified"])
	assert.Equal(t, float64(WordCount(p.Content)), ld["wordCount"])
	assert.Equal(t, "PT6M", ld["timeRequired"])
	assert.Equal(t, strings.Join(p.Keywords, ", "), ld["keywords"])

	author := ld["author"].(map[string]any)
	assert.Equal(t, "Person", author["@type"])
	assert.Equal(t, "Maya Chen", author["name"])

	about := ld["about"].([]any)
	assert.Len(t, about, len(p.Tags))
}

func TestPostSEOKeyOrder(t *testing.T) {
	p, _ := seedStore().PostBySlug("complete-guide-ai-music-prompts")
	js, err := MarshalJSONLD(NewSEO(SiteConfig{}).PostSEO(p).StructuredData)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(js, `{"@context":"https://schema.org","@type":"BlogPosting","headline":`), js)
}

func TestPostSEOTeamAuthorIsOrganization(t *testing.T) {
	p, _ := seedStore().PostBySlug("complete-guide-ai-music-prompts")
	ld := decodeLD(t, NewSEO(SiteConfig{}).PostSEO(p).StructuredData)
	author := ld["author"].(map[string]any)
	assert.Equal(t, "Organization", author["@type"])
	assert.Equal(t, "AI Music Prompter", author["name"])
}

func TestPostSEOImage(t *testing.T) {
	seo := NewSEO(SiteConfig{URL: "https://example.com"})
	withImage, _ := seedStore().PostBySlug("suno-vs-udio-comparison")
	assert.Equal(t, "https://example.com/images/blog/suno-vs-udio.jpg", seo.PostSEO(withImage).OpenGraph.Image)

	noImage, _ := seedStore().PostBySlug("lofi-hip-hop-prompts-genre-guide")
	meta := seo.PostSEO(noImage)
	assert.Equal(t, "https://example.com/images/blog-og-default.jpg", meta.OpenGraph.Image)
	assert.Equal(t, meta.OpenGraph.Image, meta.Twitter.Image)
}

func TestIndexSEO(t *testing.T) {
	meta := NewSEO(SiteConfig{}).IndexSEO()
	assert.Equal(t, IndexTitle, meta.Title)
	assert.Equal(t, "https://aimusicprompter.com/blog", meta.CanonicalURL)
	assert.Equal(t, "website", meta.OpenGraph.Type)
	assert.Contains(t, meta.Keywords, "Suno prompts")

	ld := decodeLD(t, meta.StructuredData)
	assert.Equal(t, "Blog", ld["@type"])
	assert.Equal(t, meta.CanonicalURL, ld["url"])
}

func TestCategorySEO(t *testing.T) {
	meta := NewSEO(SiteConfig{}).CategorySEO("Tips & Tricks")
	assert.Equal(t, "Tips & Tricks | AI Music Prompter Blog", meta.Title)
	assert.Equal(t, "https://aimusicprompter.com/blog/category/tips-&-tricks", meta.CanonicalURL)
	assert.Equal(t, "CollectionPage", decodeLD(t, meta.StructuredData)["@type"])
}

func TestErrorSEO(t *testing.T) {
	meta := NewSEO(SiteConfig{URL: "https://example.com"}).ErrorSEO("Page not found", "Gone.")
	assert.True(t, meta.NoIndex)
	assert.Equal(t, "Page not found | AI Music Prompter Blog", meta.Title)
	assert.Equal(t, "https://example.com/blog", meta.CanonicalURL)
	assert.Equal(t, meta.CanonicalURL, meta.OpenGraph.URL)
	assert.Equal(t, "https://example.com/images/blog-og-default.jpg", meta.OpenGraph.Image)
	assert.Equal(t, meta.OpenGraph.Image, meta.Twitter.Image)
	assert.Equal(t, "WebPage", decodeLD(t, meta.StructuredData)["@type"])
}

func TestBreadcrumbData(t *testing.T) {
	seo := NewSEO(SiteConfig{})

	ld := decodeLD(t, seo.BreadcrumbData(nil))
	assert.Equal(t, "BreadcrumbList", ld["@type"])
	items := ld["itemListElement"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "Home", items[0].(map[string]any)["name"])
	assert.Equal(t, "https://aimusicprompter.com/", items[0].(map[string]any)["item"])

	p, _ := seedStore().PostBySlug("prompt-keywords-mood")
	items = decodeLD(t, seo.BreadcrumbData(&p))["itemListElement"].([]any)
	require.Len(t, items, 3)
	for i, it := range items {
		assert.Equal(t, float64(i+1), it.(map[string]any)["position"])
	}
	last := items[2].(map[string]any)
	assert.Equal(t, p.Title, last["name"])
	assert.Equal(t, p.URL, last["item"])
}

func TestFAQData(t *testing.T) {
	ld := decodeLD(t, NewSEO(SiteConfig{}).FAQData())
	assert.Equal(t, "FAQPage", ld["@type"])
	entities := ld["mainEntity"].([]any)
	require.Len(t, entities, len(faqEntries))
	q := entities[0].(map[string]any)
	assert.Equal(t, "Question", q["@type"])
	assert.Equal(t, "Answer", q["acceptedAnswer"].(map[string]any)["@type"])
}

func TestMetaKeywordsKeepsDuplicates(t *testing.T) {
	p := BlogPost{Keywords: []string{"suno", "prompts"}, Tags: []string{"suno"}, Category: "Tutorials"}
	assert.Equal(t, "suno, prompts, suno, Tutorials", MetaKeywords(p))
}

func TestSocialShareText(t *testing.T) {
	p := BlogPost{Title: "Lo-Fi", Excerpt: "Chill beats."}
	assert.Equal(t, `Check out "Lo-Fi" on the AI Music Prompter blog! Chill beats.`, SocialShareText(p))
}

func TestMarshalJSONLD(t *testing.T) {
	js, err := MarshalJSONLD(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", js)

	js, err = MarshalJSONLD(ldNode("Thing", "name", "</script><b>"))
	require.NoError(t, err)
	assert.NotContains(t, js, "</script>")
}
