package promptblog

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	reSlug   = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return reSlug.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("promptblog: register slug validation: %v", err))
	}
	return v
}

// Errors returned by ValidatePosts, wrapped with the offending post.
var (
	ErrDuplicateID   = errors.New("duplicate post id")
	ErrDuplicateSlug = errors.New("duplicate post slug")
	ErrModifiedDate  = errors.New("lastModified before publishDate")
)

// Validate checks the field constraints of a single post.
func (p BlogPost) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	// Both dates are YYYY-MM-DD here, so string order is date order.
	if p.LastModified < p.PublishDate {
		return ErrModifiedDate
	}
	return nil
}

// ValidatePosts checks every post and the collection invariants: ids and
// slugs are unique. The post store itself never validates; seed loaders
// call this before building one.
func ValidatePosts(posts []BlogPost) error {
	ids := make(map[string]struct{}, len(posts))
	slugs := make(map[string]struct{}, len(posts))
	var errs []error
	for i, p := range posts {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("post %d (%q): %w", i, p.Slug, err))
		}
		if _, ok := ids[p.ID]; ok {
			errs = append(errs, fmt.Errorf("post %d (%q): %w: %s", i, p.Slug, ErrDuplicateID, p.ID))
		}
		if _, ok := slugs[p.Slug]; ok {
			errs = append(errs, fmt.Errorf("post %d: %w: %s", i, ErrDuplicateSlug, p.Slug))
		}
		ids[p.ID] = struct{}{}
		slugs[p.Slug] = struct{}{}
	}
	return errors.Join(errs...)
}
