package promptblog

import (
	"fmt"
	"strings"
)

// IndexTitle is the <title> of the blog index page.
const IndexTitle = "AI Music Prompter Blog | Prompt Guides, Tutorials & Tips for AI Music"

var indexKeywords = []string{
	"AI music prompts",
	"Suno prompts",
	"Udio prompts",
	"AI music generator",
	"music prompt engineering",
	"AI songwriting",
}

// faqEntries is editorial copy; it does not depend on any post.
var faqEntries = []struct{ question, answer string }{
	{
		"What is an AI music prompt?",
		"An AI music prompt is a short text description of genre, mood, instrumentation, tempo and vocals that tells an AI music generator such as Suno or Udio what kind of track to create.",
	},
	{
		"How long should a music prompt be?",
		"Most generators work best with one to three sentences. Lead with genre and mood, then add instruments, tempo and production details. Overlong prompts tend to get partially ignored.",
	},
	{
		"Can I use the same prompt in Suno and Udio?",
		"Yes, but each model weighs details differently. Suno responds well to style tags, while Udio benefits from descriptive sentences. AI Music Prompter adapts a single idea to each platform.",
	},
	{
		"Who owns music generated from my prompts?",
		"Ownership depends on the generator's terms and your subscription tier. Check the platform's licensing page before releasing tracks commercially.",
	},
}

// SEO derives page metadata and structured data from posts and site
// configuration. It holds no state beyond the configuration.
type SEO struct {
	cfg SiteConfig
}

// NewSEO returns a synthesizer for cfg. Empty config fields take their
// defaults.
func NewSEO(cfg SiteConfig) *SEO {
	cfg.setDefaults()
	return &SEO{cfg: cfg}
}

func (s *SEO) url(segments ...string) string {
	return BuildURL(s.cfg.URL, segments...)
}

func (s *SEO) asset(path string) string {
	return s.cfg.URL + path
}

func (s *SEO) blogURL() string {
	return s.url("blog")
}

// PostSEO builds the metadata of a single post page.
func (s *SEO) PostSEO(post BlogPost) SEOMetadata {
	title := fmt.Sprintf("%s | %s", post.Title, s.cfg.BlogTitle)
	canonical := PostURL(s.cfg.URL, post.Slug)
	image := s.asset(s.cfg.DefaultImage)
	if post.Image != "" {
		image = s.asset(post.Image)
	}

	about := make([]JSONLD, 0, len(post.Tags))
	for _, t := range post.Tags {
		about = append(about, ldNode("Thing", "name", t))
	}

	data := ldDocument("BlogPosting",
		"headline", post.Title,
		"description", post.MetaDescription,
		"image", image,
		"author", s.author(post.Author),
		"publisher", s.publisher(),
		"datePublished", post.PublishDate,
		"dateModified", post.LastModified,
		"mainEntityOfPage", ldNode("WebPage", "@id", canonical),
		"url", canonical,
		"keywords", strings.Join(post.Keywords, ", "),
		"articleSection", post.Category,
		"wordCount", WordCount(post.Content),
		"timeRequired", fmt.Sprintf("PT%dM", post.ReadTime),
		"inLanguage", s.cfg.Language,
		"about", about,
		"mentions", s.product(),
		"isPartOf", ldNode("Blog", "@id", s.blogURL(), "name", s.cfg.BlogTitle, "url", s.blogURL()),
	)

	return SEOMetadata{
		Title:        title,
		Description:  post.MetaDescription,
		CanonicalURL: canonical,
		Keywords:     append([]string{}, post.Keywords...),
		OpenGraph: OpenGraph{
			Title:       title,
			Description: post.MetaDescription,
			Image:       image,
			URL:         canonical,
			Type:        "article",
			SiteName:    s.cfg.BlogTitle,
		},
		Twitter: TwitterCard{
			Card:        "summary_large_image",
			Title:       title,
			Description: post.MetaDescription,
			Image:       image,
		},
		StructuredData: data,
	}
}

// IndexSEO builds the metadata of the blog index page.
func (s *SEO) IndexSEO() SEOMetadata {
	canonical := s.blogURL()
	image := s.asset(s.cfg.DefaultImage)

	data := ldDocument("Blog",
		"@id", canonical,
		"name", s.cfg.BlogTitle,
		"description", s.cfg.Description,
		"url", canonical,
		"image", image,
		"inLanguage", s.cfg.Language,
		"publisher", s.publisher(),
		"about", ldNode("Thing", "name", "AI music generation"),
		"mentions", s.product(),
	)

	return SEOMetadata{
		Title:        IndexTitle,
		Description:  s.cfg.Description,
		CanonicalURL: canonical,
		Keywords:     append([]string{}, indexKeywords...),
		OpenGraph: OpenGraph{
			Title:       IndexTitle,
			Description: s.cfg.Description,
			Image:       image,
			URL:         canonical,
			Type:        "website",
			SiteName:    s.cfg.BlogTitle,
		},
		Twitter: TwitterCard{
			Card:        "summary_large_image",
			Title:       IndexTitle,
			Description: s.cfg.Description,
			Image:       image,
		},
		StructuredData: data,
	}
}

// CategorySEO builds the metadata of a category listing page.
func (s *SEO) CategorySEO(category string) SEOMetadata {
	title := fmt.Sprintf("%s | %s", category, s.cfg.BlogTitle)
	description := fmt.Sprintf("%s articles from the %s.", category, s.cfg.BlogTitle)
	canonical := CategoryURL(s.cfg.URL, category)
	image := s.asset(s.cfg.DefaultImage)

	data := ldDocument("CollectionPage",
		"name", title,
		"description", description,
		"url", canonical,
		"inLanguage", s.cfg.Language,
		"isPartOf", ldNode("Blog", "@id", s.blogURL(), "name", s.cfg.BlogTitle, "url", s.blogURL()),
	)

	return SEOMetadata{
		Title:        title,
		Description:  description,
		CanonicalURL: canonical,
		Keywords:     []string{category},
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			Image:       image,
			URL:         canonical,
			Type:        "website",
			SiteName:    s.cfg.BlogTitle,
		},
		Twitter: TwitterCard{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
			Image:       image,
		},
		StructuredData: data,
	}
}

// ErrorSEO builds the metadata of an error page. Error pages are never
// indexed; their canonical URL points at the blog index so every head tag
// still carries a value.
func (s *SEO) ErrorSEO(heading, message string) SEOMetadata {
	title := fmt.Sprintf("%s | %s", heading, s.cfg.BlogTitle)
	canonical := s.blogURL()
	image := s.asset(s.cfg.DefaultImage)

	return SEOMetadata{
		Title:        title,
		Description:  message,
		CanonicalURL: canonical,
		Keywords:     []string{s.cfg.BlogTitle},
		NoIndex:      true,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: message,
			Image:       image,
			URL:         canonical,
			Type:        "website",
			SiteName:    s.cfg.BlogTitle,
		},
		Twitter: TwitterCard{
			Card:        "summary",
			Title:       title,
			Description: message,
			Image:       image,
		},
		StructuredData: ldDocument("WebPage",
			"name", title,
			"description", message,
			"isPartOf", ldNode("Blog", "@id", canonical, "name", s.cfg.BlogTitle, "url", canonical),
		),
	}
}

// BreadcrumbData returns Home > Blog, plus the post itself when post is not
// nil. Positions start at 1.
func (s *SEO) BreadcrumbData(post *BlogPost) JSONLD {
	items := []JSONLD{
		ldNode("ListItem", "position", 1, "name", "Home", "item", s.url()),
		ldNode("ListItem", "position", 2, "name", "Blog", "item", s.blogURL()),
	}
	if post != nil {
		items = append(items, ldNode("ListItem",
			"position", 3,
			"name", post.Title,
			"item", PostURL(s.cfg.URL, post.Slug),
		))
	}
	return ldDocument("BreadcrumbList", "itemListElement", items)
}

// FAQData returns the FAQPage shown on the blog index.
func (s *SEO) FAQData() JSONLD {
	entities := make([]JSONLD, 0, len(faqEntries))
	for _, e := range faqEntries {
		entities = append(entities, ldNode("Question",
			"name", e.question,
			"acceptedAnswer", ldNode("Answer", "text", e.answer),
		))
	}
	return ldDocument("FAQPage", "mainEntity", entities)
}

func (s *SEO) author(name string) JSONLD {
	if name == "" || name == s.cfg.Author || name == s.cfg.Name {
		return ldNode("Organization", "name", s.cfg.Name, "url", s.url())
	}
	return ldNode("Person", "name", name)
}

func (s *SEO) publisher() JSONLD {
	return ldNode("Organization",
		"name", s.cfg.Name,
		"url", s.url(),
		"logo", ldNode("ImageObject", "url", s.asset(s.cfg.Logo)),
	)
}

func (s *SEO) product() JSONLD {
	return ldNode("SoftwareApplication",
		"name", s.cfg.Name,
		"applicationCategory", "MultimediaApplication",
		"operatingSystem", "iOS, Android, Web",
		"url", s.url(),
	)
}

// MetaKeywords joins the post keywords, its tags and its category with
// ", ". Duplicates are kept.
func MetaKeywords(post BlogPost) string {
	all := make([]string, 0, len(post.Keywords)+len(post.Tags)+1)
	all = append(all, post.Keywords...)
	all = append(all, post.Tags...)
	all = append(all, post.Category)
	return strings.Join(all, ", ")
}

// SocialShareText is the prefilled text of a share action.
func SocialShareText(post BlogPost) string {
	return fmt.Sprintf("Check out \"%s\" on the AI Music Prompter blog! %s", post.Title, post.Excerpt)
}
