package session

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/pentest-stories/internal/domain"
)

const (
	minPasswordLen    = 8
	maxPasswordBytes  = 72 // bcrypt ignores anything longer
	maxDisplayNameLen = 100
	maxProfileText    = 100
	maxEmailLen       = 254
)

// SignInInput holds credentials for SignIn.
type SignInInput struct {
	Email    string
	Password string
}

func (i *SignInInput) normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
}

// Validate validates the sign-in input.
func (i SignInInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SignUpInput holds parameters for SignUp.
type SignUpInput struct {
	Email            string
	Password         string
	DisplayName      string
	Department       *string
	BusinessVertical *string
}

func (i *SignUpInput) normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.DisplayName = strings.TrimSpace(i.DisplayName)
	i.Department = trimOptional(i.Department)
	i.BusinessVertical = trimOptional(i.BusinessVertical)
}

// Validate validates the sign-up input.
func (i SignUpInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, validatePassword("password", i.Password)...)
	errs = append(errs, validateDisplayName(i.DisplayName)...)
	errs = append(errs, validateOptionalText("department", i.Department)...)
	errs = append(errs, validateOptionalText("business_vertical", i.BusinessVertical)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for ChangePassword.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate validates the change-password input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	}
	errs = append(errs, validatePassword("new_password", i.NewPassword)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// normalizePatch trims every set field of the patch.
func normalizePatch(p domain.ProfilePatch) domain.ProfilePatch {
	if p.DisplayName != nil {
		v := strings.TrimSpace(*p.DisplayName)
		p.DisplayName = &v
	}
	p.Department = trimOptional(p.Department)
	p.BusinessVertical = trimOptional(p.BusinessVertical)
	return p
}

func validatePatch(p domain.ProfilePatch) error {
	if p.IsEmpty() {
		return domain.NewValidationError("profile", "no fields to update")
	}

	var errs []domain.FieldError
	if p.DisplayName != nil {
		errs = append(errs, validateDisplayName(*p.DisplayName)...)
	}
	errs = append(errs, validateOptionalText("department", p.Department)...)
	errs = append(errs, validateOptionalText("business_vertical", p.BusinessVertical)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > maxEmailLen {
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return []domain.FieldError{{Field: "email", Message: "invalid email"}}
	}
	return nil
}

// ValidatePassword checks the password policy shared with the admin reset flow.
func ValidatePassword(password string) error {
	if errs := validatePassword("password", password); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validatePassword(field, password string) []domain.FieldError {
	switch {
	case password == "":
		return []domain.FieldError{{Field: field, Message: "required"}}
	case utf8.RuneCountInString(password) < minPasswordLen:
		return []domain.FieldError{{Field: field, Message: "must be at least 8 characters"}}
	case len(password) > maxPasswordBytes:
		return []domain.FieldError{{Field: field, Message: "must be at most 72 bytes"}}
	}
	return nil
}

func validateDisplayName(name string) []domain.FieldError {
	switch {
	case name == "":
		return []domain.FieldError{{Field: "display_name", Message: "required"}}
	case utf8.RuneCountInString(name) > maxDisplayNameLen:
		return []domain.FieldError{{Field: "display_name", Message: "too long"}}
	}
	return nil
}

func validateOptionalText(field string, v *string) []domain.FieldError {
	if v != nil && utf8.RuneCountInString(*v) > maxProfileText {
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
