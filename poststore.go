package promptblog

import (
	"sort"
	"strings"
)

// DefaultRelatedLimit is the number of related posts shown under an article.
const DefaultRelatedLimit = 3

// AllCategoriesLabel is the listing filter value that disables category
// filtering.
const AllCategoriesLabel = "All"

// PostStore is the read-only collection of blog posts. The order of the
// slice it was built from is the native order of every query result.
//
// A PostStore is never mutated after construction, so it is safe for any
// number of concurrent readers.
type PostStore struct {
	posts  []BlogPost
	bySlug map[string]int
}

// NewPostStore builds a store over a copy of posts. It performs no
// validation; see ValidatePosts.
func NewPostStore(posts []BlogPost) *PostStore {
	s := &PostStore{
		posts:  make([]BlogPost, len(posts)),
		bySlug: make(map[string]int, len(posts)),
	}
	copy(s.posts, posts)
	for i, p := range s.posts {
		if _, dup := s.bySlug[p.Slug]; !dup {
			s.bySlug[p.Slug] = i
		}
	}
	return s
}

// Len returns the number of posts.
func (s *PostStore) Len() int {
	return len(s.posts)
}

// Posts returns every post in native order.
func (s *PostStore) Posts() []BlogPost {
	return s.filter(func(BlogPost) bool { return true })
}

// FeaturedPosts returns the posts flagged as featured.
func (s *PostStore) FeaturedPosts() []BlogPost {
	return s.filter(func(p BlogPost) bool { return p.Featured })
}

// PostsByCategory returns the posts whose category equals category exactly.
func (s *PostStore) PostsByCategory(category string) []BlogPost {
	return s.filter(func(p BlogPost) bool { return p.Category == category })
}

// PostBySlug looks up a post by slug. ok is false when no post matches.
func (s *PostStore) PostBySlug(slug string) (BlogPost, bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return BlogPost{}, false
	}
	return s.posts[i], true
}

// AllCategories returns the distinct categories in first-occurrence order.
func (s *PostStore) AllCategories() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range s.posts {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// CategoryBySlug resolves a /blog/category/ path segment to its category.
func (s *PostStore) CategoryBySlug(slug string) (string, bool) {
	for _, c := range s.AllCategories() {
		if CategorySlug(c) == slug {
			return c, true
		}
	}
	return "", false
}

// AllTags returns the distinct tags in first-occurrence order.
func (s *PostStore) AllTags() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range s.posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// Search returns the posts where query occurs, ignoring case, in the title,
// excerpt, content, category or any tag. An empty query matches every post.
func (s *PostStore) Search(query string) []BlogPost {
	q := strings.ToLower(query)
	return s.filter(func(p BlogPost) bool {
		return matches(p, q)
	})
}

func matches(p BlogPost, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Excerpt), q) ||
		strings.Contains(strings.ToLower(p.Content), q) ||
		strings.Contains(strings.ToLower(p.Category), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// RelatedPosts picks up to limit posts for current. Posts in the same
// category or sharing a tag come first, in store order. Remaining slots are
// filled with the most recently published other posts.
func (s *PostStore) RelatedPosts(current BlogPost, limit int) []BlogPost {
	related := []BlogPost{}
	if limit <= 0 {
		return related
	}

	tagSet := make(map[string]struct{}, len(current.Tags))
	for _, t := range current.Tags {
		tagSet[t] = struct{}{}
	}
	picked := make(map[int]struct{})

	for i, p := range s.posts {
		if len(related) == limit {
			return related
		}
		if samePost(p, current) {
			continue
		}
		if p.Category == current.Category || sharesTag(p, tagSet) {
			related = append(related, p)
			picked[i] = struct{}{}
		}
	}

	// Indices into s.posts, newest first. SliceStable keeps store order for
	// equal dates.
	order := make([]int, 0, len(s.posts))
	for i := range s.posts {
		order = append(order, i)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return s.posts[order[a]].PublishDate > s.posts[order[b]].PublishDate
	})
	for _, i := range order {
		if len(related) == limit {
			break
		}
		if _, ok := picked[i]; ok || samePost(s.posts[i], current) {
			continue
		}
		related = append(related, s.posts[i])
		picked[i] = struct{}{}
	}
	return related
}

// GroupByCategory returns the posts of every category, categories in
// first-occurrence order.
func (s *PostStore) GroupByCategory() []CategoryGroup {
	groups := []CategoryGroup{}
	for _, c := range s.AllCategories() {
		groups = append(groups, CategoryGroup{
			Category: c,
			Slug:     CategorySlug(c),
			Posts:    s.PostsByCategory(c),
		})
	}
	return groups
}

func (s *PostStore) filter(keep func(BlogPost) bool) []BlogPost {
	out := []BlogPost{}
	for _, p := range s.posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func sharesTag(p BlogPost, tagSet map[string]struct{}) bool {
	for _, t := range p.Tags {
		if _, ok := tagSet[t]; ok {
			return true
		}
	}
	return false
}

// samePost compares by ID, or by slug when either ID is missing.
func samePost(a, b BlogPost) bool {
	if a.ID != "" && b.ID != "" {
		return a.ID == b.ID
	}
	return a.Slug == b.Slug
}
