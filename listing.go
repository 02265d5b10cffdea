package promptblog

import (
	"net/url"
	"strings"
)

// Listing is the filter state of the blog listing screen: a selected
// category and a free-text search string.
type Listing struct {
	Category string `query:"category" json:"category"`
	Query    string `query:"q" json:"q"`
}

// Active reports whether the listing narrows the post set at all.
func (l Listing) Active() bool {
	return l.category() != "" || strings.TrimSpace(l.Query) != ""
}

func (l Listing) category() string {
	if l.Category == AllCategoriesLabel {
		return ""
	}
	return l.Category
}

// Filter applies a listing to the store. A blank query does not filter by
// text; any other query is searched exactly as typed. An empty or "All"
// category does not filter by category.
func (s *PostStore) Filter(l Listing) []BlogPost {
	posts := s.Posts()
	if strings.TrimSpace(l.Query) != "" {
		posts = s.Search(l.Query)
	}
	c := l.category()
	if c == "" {
		return posts
	}
	out := []BlogPost{}
	for _, p := range posts {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// NewShareLinks builds share URLs for post on each supported network.
func NewShareLinks(post BlogPost) ShareLinks {
	u := url.QueryEscape(post.URL)
	text := url.QueryEscape(SocialShareText(post))
	return ShareLinks{
		Twitter:  "https://twitter.com/intent/tweet?text=" + text + "&url=" + u,
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + u,
		LinkedIn: "https://www.linkedin.com/sharing/share-offsite/?url=" + u,
	}
}
