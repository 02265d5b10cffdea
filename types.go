package promptblog

// BlogPost is a single article in the post store. Records are seeded once at
// startup and never mutated afterwards.
type BlogPost struct {
	ID              string   `json:"id" validate:"required"`
	Title           string   `json:"title" validate:"required"`
	Slug            string   `json:"slug" validate:"required,slug"`
	Excerpt         string   `json:"excerpt" validate:"required"`
	Content         string   `json:"content" validate:"required"`
	MetaDescription string   `json:"metaDescription" validate:"required"`
	Author          string   `json:"author" validate:"required"`
	PublishDate     string   `json:"publishDate" validate:"required,datetime=2006-01-02"`
	LastModified    string   `json:"lastModified" validate:"required,datetime=2006-01-02"`
	Tags            []string `json:"tags" validate:"unique,dive,required,excludesall=0x2C"`
	Category        string   `json:"category" validate:"required"`
	ReadTime        int      `json:"readTime" validate:"gt=0"`
	Featured        bool     `json:"featured"`
	Keywords        []string `json:"keywords" validate:"dive,required,excludesall=0x2C"`
	Image           string   `json:"image,omitempty" validate:"omitempty,startswith=/"`
	URL             string   `json:"url" validate:"required,url"`
}

// OpenGraph holds the og:* values of a page.
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	URL         string `json:"url"`
	Type        string `json:"type"` // "website" or "article"
	SiteName    string `json:"siteName"`
}

// TwitterCard holds the twitter:* values of a page.
type TwitterCard struct {
	Card        string `json:"card"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// SEOMetadata is everything a page head needs for search engines and social
// previews. It is rebuilt per request and never stored.
type SEOMetadata struct {
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	CanonicalURL   string      `json:"canonicalUrl"`
	Keywords       []string    `json:"keywords"`
	NoIndex        bool        `json:"noIndex"`
	OpenGraph      OpenGraph   `json:"openGraph"`
	Twitter        TwitterCard `json:"twitter"`
	StructuredData JSONLD      `json:"structuredData"`
}

// ShareLinks are prefilled share URLs for a post, computed from its
// canonical URL rather than stored on the record.
type ShareLinks struct {
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	LinkedIn string `json:"linkedin"`
}

// CategoryGroup is a category together with its posts in store order.
type CategoryGroup struct {
	Category string     `json:"category"`
	Slug     string     `json:"slug"`
	Posts    []BlogPost `json:"posts"`
}
