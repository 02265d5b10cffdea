package promptblog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPostsAreValid(t *testing.T) {
	posts := DefaultPosts(DefaultBaseURL)
	require.Len(t, posts, 6)
	require.NoError(t, ValidatePosts(posts))
	for _, p := range posts {
		assert.Equal(t, PostURL(DefaultBaseURL, p.Slug), p.URL)
	}
}

func TestDefaultPostsFreshSlice(t *testing.T) {
	a := DefaultPosts(DefaultBaseURL)
	a[0].Title = "changed"
	assert.NotEqual(t, "changed", DefaultPosts(DefaultBaseURL)[0].Title)
}

func TestValidateRejectsBadFields(t *testing.T) {
	base := post("1", "good-slug", "Tutorials", "2024-01-10", false, "suno")
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*BlogPost)
	}{
		{"slug with spaces", func(p *BlogPost) { p.Slug = "Bad Slug" }},
		{"missing title", func(p *BlogPost) { p.Title = "" }},
		{"bad date", func(p *BlogPost) { p.PublishDate = "2024-13-01" }},
		{"comma in tag", func(p *BlogPost) { p.Tags = []string{"a,b"} }},
		{"duplicate tag", func(p *BlogPost) { p.Tags = []string{"suno", "suno"} }},
		{"zero read time", func(p *BlogPost) { p.ReadTime = 0 }},
		{"relative url", func(p *BlogPost) { p.URL = "/blog/x" }},
		{"image without slash", func(p *BlogPost) { p.Image = "img.png" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			p.Tags = append([]string{}, base.Tags...)
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestValidateModifiedBeforePublished(t *testing.T) {
	p := post("1", "a", "Tutorials", "2024-02-01", false)
	p.LastModified = "2024-01-31"
	assert.ErrorIs(t, p.Validate(), ErrModifiedDate)
}

func TestValidatePostsDuplicates(t *testing.T) {
	a := post("1", "a", "Tutorials", "2024-01-01", false)
	b := post("1", "a", "Reviews", "2024-01-02", false)
	err := ValidatePosts([]BlogPost{a, b})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestNewValidatorRegistersSlug(t *testing.T) {
	var v interface{ Var(any, string) error }
	require.NotPanics(t, func() { v = newValidator() })
	assert.NoError(t, v.Var("suno-vs-udio", "slug"))
	assert.Error(t, v.Var("Suno vs Udio", "slug"))
	assert.Error(t, v.Var("trailing-", "slug"))
}
