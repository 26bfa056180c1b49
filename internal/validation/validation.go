// Package validation checks form input before it is sent to the backend.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lehigh-university-libraries/libadmin/internal/models"
)

// Kind categorises a field failure
type Kind string

const (
	KindMissingField  Kind = "missing_field"
	KindInvalidEmail  Kind = "invalid_email"
	KindInvalidChoice Kind = "invalid_choice"
)

// Sentinels for errors.Is
var (
	ErrMissingField  = errors.New("missing field")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrInvalidChoice = errors.New("invalid choice")
)

// notSpace matches anything but @ and Unicode white space. RE2's \s is ASCII only.
const notSpace = `[^\t\n\v\f\r \p{Z}\x{FEFF}@]`

var emailPattern = regexp.MustCompile(`^` + notSpace + `+@` + notSpace + `+\.` + notSpace + `+$`)

// FieldError reports the first field that failed validation
type FieldError struct {
	Field   string
	Kind    Kind
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Is(target error) bool {
	switch target {
	case ErrMissingField:
		return e.Kind == KindMissingField
	case ErrInvalidEmail:
		return e.Kind == KindInvalidEmail
	case ErrInvalidChoice:
		return e.Kind == KindInvalidChoice
	}
	return false
}

// MissingField builds the error for an empty required field
func MissingField(field, message string) *FieldError {
	return &FieldError{Field: field, Kind: KindMissingField, Message: message}
}

// InvalidEmail builds the error for a malformed address
func InvalidEmail() *FieldError {
	return &FieldError{Field: "email", Kind: KindInvalidEmail, Message: "Please enter a valid email address"}
}

// IsEmail reports whether s looks like local@domain.tld
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

type requiredField struct {
	name    string
	value   string
	message string
}

// ValidateUser trims the submitted values and checks them in form order:
// userId, name, email, role, then the email format. The first failure wins.
func ValidateUser(in models.User) (models.User, error) {
	out := models.User{
		ID:     strings.TrimSpace(in.ID),
		UserID: strings.TrimSpace(in.UserID),
		Name:   strings.TrimSpace(in.Name),
		Email:  strings.TrimSpace(in.Email),
		Role:   strings.TrimSpace(in.Role),
	}

	required := []requiredField{
		{"userId", out.UserID, "Please enter a User ID"},
		{"name", out.Name, "Please enter a Name"},
		{"email", out.Email, "Please enter an Email"},
		{"role", out.Role, "Please select a Role"},
	}
	for _, f := range required {
		if f.value == "" {
			return models.User{}, MissingField(f.name, f.message)
		}
	}

	if !IsEmail(out.Email) {
		return models.User{}, InvalidEmail()
	}

	return out, nil
}

// UserValidator returns ValidateUser extended with a role whitelist.
// An empty role set accepts any role.
func UserValidator(roles []string) func(models.User) (models.User, error) {
	return func(in models.User) (models.User, error) {
		out, err := ValidateUser(in)
		if err != nil {
			return out, err
		}
		if err := OneOf("role", out.Role, roles); err != nil {
			return models.User{}, err
		}
		return out, nil
	}
}

// ValidateBook trims the submitted values. Books have no required fields
// on the client; a status, when given, must be a known one.
func ValidateBook(in models.Book) (models.Book, error) {
	out := models.Book{
		ID:         strings.TrimSpace(in.ID),
		Title:      strings.TrimSpace(in.Title),
		Author:     strings.TrimSpace(in.Author),
		ISBN:       strings.TrimSpace(in.ISBN),
		Status:     strings.TrimSpace(in.Status),
		Department: strings.TrimSpace(in.Department),
	}
	if out.Status != "" {
		if err := OneOf("status", out.Status, models.BookStatuses); err != nil {
			return models.Book{}, err
		}
	}
	return out, nil
}

// OneOf checks an enum selection
func OneOf(field, value string, options []string) error {
	if len(options) == 0 {
		return nil
	}
	for _, opt := range options {
		if value == opt {
			return nil
		}
	}
	return &FieldError{
		Field:   field,
		Kind:    KindInvalidChoice,
		Message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(options, ", ")),
	}
}
