package admin

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/pentest-stories/internal/domain"
)

const (
	maxTagNameLen      = 50
	maxVerticalNameLen = 100
	maxDescriptionLen  = 500
)

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// TagInput holds the admin-editable fields of a tag. Nil Color means the
// default color.
type TagInput struct {
	Name  string
	Color *string
}

func (i *TagInput) normalize() {
	i.Name = domain.CleanName(i.Name)
	if i.Color != nil {
		c := strings.TrimSpace(*i.Color)
		if c == "" {
			i.Color = nil
		} else {
			i.Color = &c
		}
	}
}

func (i TagInput) color() string {
	if i.Color == nil {
		return domain.DefaultTagColor
	}
	return *i.Color
}

// Validate validates the tag input.
func (i TagInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case utf8.RuneCountInString(i.Name) > maxTagNameLen:
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Color != nil && !colorRe.MatchString(*i.Color) {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be a #rrggbb hex color"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// VerticalInput holds the admin-editable fields of a business vertical.
type VerticalInput struct {
	Name        string
	Description *string
}

func (i *VerticalInput) normalize() {
	i.Name = domain.CleanName(i.Name)
	if i.Description != nil {
		d := strings.TrimSpace(*i.Description)
		if d == "" {
			i.Description = nil
		} else {
			i.Description = &d
		}
	}
}

// Validate validates the vertical input.
func (i VerticalInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case utf8.RuneCountInString(i.Name) > maxVerticalNameLen:
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
