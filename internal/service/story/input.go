package story

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/pentest-stories/internal/domain"
)

const (
	MaxTitleLen   = 200
	MaxContentLen = 50000
	MaxRegionLen  = 100
	MaxTagNameLen = 50
	MaxPageSize   = 100
)

var (
	suspiciousPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<script`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)on\w+\s*=`),
		regexp.MustCompile(`(?i)data:text/html`),
	}

	scriptTagRe    = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	jsProtocolRe   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRe = regexp.MustCompile(`(?i)on\w+\s*=`)
)

// StoryInput holds the author-editable fields of a story.
type StoryInput struct {
	Title      string
	Content    string
	VerticalID *uuid.UUID
	Region     *string
	TagIDs     []uuid.UUID
	DiagramURL *string
}

func (i *StoryInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Content = strings.TrimSpace(i.Content)
	if i.Region != nil {
		r := strings.TrimSpace(*i.Region)
		if r == "" {
			i.Region = nil
		} else {
			i.Region = &r
		}
	}
	if i.DiagramURL != nil && strings.TrimSpace(*i.DiagramURL) == "" {
		i.DiagramURL = nil
	}
}

// Validate checks every field and collects all errors. Call after normalize.
func (i StoryInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateText("title", i.Title, MaxTitleLen)...)
	errs = append(errs, validateText("content", i.Content, MaxContentLen)...)

	if i.Region != nil && utf8.RuneCountInString(*i.Region) > MaxRegionLen {
		errs = append(errs, domain.FieldError{Field: "region", Message: "too long"})
	}
	for _, id := range i.TagIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "tag_ids", Message: "invalid tag id"})
			break
		}
	}
	if i.DiagramURL != nil && !isDiagramRef(*i.DiagramURL) {
		errs = append(errs, domain.FieldError{Field: "diagram_url", Message: "must be an https URL or an image data reference"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// sanitize strips script tags, javascript: and inline handler prefixes that
// survived validation, then trims.
func (i *StoryInput) sanitize() {
	i.Title = Sanitize(i.Title)
	i.Content = Sanitize(i.Content)
}

// Sanitize removes script tags, javascript: protocols and inline event
// handler prefixes from s and trims the result.
func Sanitize(s string) string {
	s = scriptTagRe.ReplaceAllString(s, "")
	s = jsProtocolRe.ReplaceAllString(s, "")
	s = eventHandlerRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ContainsSuspicious reports whether s matches any rejected markup pattern.
func ContainsSuspicious(s string) bool {
	for _, re := range suspiciousPatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func validateText(field, v string, max int) []domain.FieldError {
	switch {
	case v == "":
		return []domain.FieldError{{Field: field, Message: "required"}}
	case utf8.RuneCountInString(v) > max:
		return []domain.FieldError{{Field: field, Message: "too long"}}
	case ContainsSuspicious(v):
		return []domain.FieldError{{Field: field, Message: "invalid characters detected"}}
	}
	return nil
}

func isDiagramRef(ref string) bool {
	return strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "data:image/png;base64,") ||
		strings.HasPrefix(ref, "data:image/svg+xml;base64,")
}

// CreateTagInput holds the name of an ad-hoc tag.
type CreateTagInput struct {
	Name string
}

// Validate validates the tag input. Call after trimming.
func (i CreateTagInput) Validate() error {
	switch {
	case i.Name == "":
		return domain.NewValidationError("name", "required")
	case utf8.RuneCountInString(i.Name) > MaxTagNameLen:
		return domain.NewValidationError("name", "too long")
	}
	return nil
}

func validateFilter(f domain.StoryFilter) error {
	var errs []domain.FieldError

	if f.Sort != "" && !f.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be newest, oldest or title"})
	}
	if f.Limit < 0 || f.Limit > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if f.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
