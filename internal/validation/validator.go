package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"article_importer/internal/domain"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidationError reports one host rule a post violates.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every failed rule for a post.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "invalid post: " + strings.Join(msgs, "; ")
}

// PostValidator enforces the host site's publishing rules. A post failing
// any rule is rejected whole; the importer logs and skips it.
type PostValidator struct {
	// MaxTitleLength guards the host's title column; zero disables the check.
	MaxTitleLength int
}

func NewPostValidator() *PostValidator {
	return &PostValidator{MaxTitleLength: 500}
}

func (v *PostValidator) Validate(post *domain.LocalPost) error {
	var errs ValidationErrors

	if strings.TrimSpace(post.Title) == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "title is required"})
	} else if v.MaxTitleLength > 0 && len(post.Title) > v.MaxTitleLength {
		errs = append(errs, ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title exceeds %d characters", v.MaxTitleLength),
		})
	}

	if post.Slug == "" {
		errs = append(errs, ValidationError{Field: "slug", Message: "slug is required"})
	} else if !slugRegex.MatchString(post.Slug) {
		errs = append(errs, ValidationError{
			Field:   "slug",
			Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)",
		})
	}

	if strings.TrimSpace(post.Content) == "" {
		errs = append(errs, ValidationError{Field: "content", Message: "content is required"})
	}

	if post.ID == uuid.Nil {
		errs = append(errs, ValidationError{Field: "id", Message: "id is required"})
	}

	if post.DateCreated.IsZero() {
		errs = append(errs, ValidationError{Field: "date_created", Message: "date_created is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
