package promptblog

import (
	"math"
	"net/url"
	"path"
	"regexp"
	"strings"
)

const wordsPerMinute = 200

var reWhitespace = regexp.MustCompile(`\s+`)

// CategorySlug lowercases a category and replaces whitespace runs with
// hyphens. It is the path segment used under /blog/category/.
func CategorySlug(category string) string {
	return reWhitespace.ReplaceAllString(strings.ToLower(category), "-")
}

// BuildURL joins a base URL with path segments. Unlike a directory join it
// never appends a trailing slash, so canonical URLs stay stable.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	if len(pathSegments) == 0 {
		if u.Path == "" {
			u.Path = "/"
		}
		return u.String()
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	return u.String()
}

// PostURL returns the canonical URL of the post with the given slug.
func PostURL(base, slug string) string {
	return strings.TrimSuffix(base, "/") + "/blog/" + slug
}

// CategoryURL returns the listing URL of a category.
func CategoryURL(base, category string) string {
	return strings.TrimSuffix(base, "/") + "/blog/category/" + CategorySlug(category)
}

// FillURLs returns a copy of posts where every empty URL is derived from
// the post slug.
func FillURLs(posts []BlogPost, base string) []BlogPost {
	out := make([]BlogPost, len(posts))
	for i, p := range posts {
		if p.URL == "" {
			p.URL = PostURL(base, p.Slug)
		}
		out[i] = p
	}
	return out
}

// WordCount counts runs of non-whitespace characters.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// EstimateReadingTime returns the minutes needed to read content at 200
// words per minute, rounded up.
func EstimateReadingTime(content string) int {
	return int(math.Ceil(float64(WordCount(content)) / wordsPerMinute))
}

// ParseTags splits a comma-delimited tag string (e.g. ",suno,udio,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// formatTags is the inverse of ParseTags.
func formatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "," + strings.Join(tags, ",") + ","
}
