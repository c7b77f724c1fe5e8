// Package validation checks onboarding and logging forms before anything is
// dispatched. Each failure is a coded error with a localized user message.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	apperrors "github.com/louisbranch/bloom/internal/platform/errors"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/selector"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

var (
	ErrNameRequired        = apperrors.New(apperrors.CodeValidationNameRequired, "name is required")
	ErrEmailRequired       = apperrors.New(apperrors.CodeValidationEmailRequired, "email is required")
	ErrEmailInvalid        = apperrors.New(apperrors.CodeValidationEmailInvalid, "email is invalid")
	ErrPhoneRequired       = apperrors.New(apperrors.CodeValidationPhoneRequired, "phone is required")
	ErrPhoneInvalid        = apperrors.New(apperrors.CodeValidationPhoneInvalid, "phone is invalid")
	ErrPasswordRequired    = apperrors.New(apperrors.CodeValidationPasswordRequired, "password is required")
	ErrPasswordTooShort    = apperrors.WithMetadata(apperrors.CodeValidationPasswordTooShort, "password is too short", map[string]string{"MinLength": strconv.Itoa(MinPasswordLength)})
	ErrPasswordMismatch    = apperrors.New(apperrors.CodeValidationPasswordMismatch, "passwords do not match")
	ErrDateOfBirthRequired = apperrors.New(apperrors.CodeValidationDateOfBirthRequired, "date of birth is required")
	ErrDueDateRequired     = apperrors.New(apperrors.CodeValidationDueDateRequired, "due date is required")
	ErrDueDateInvalid      = apperrors.New(apperrors.CodeValidationDueDateInvalid, "due date is not a recognized date")
	ErrGlassesInvalid      = apperrors.New(apperrors.CodeValidationGlassesInvalid, "glasses must be a positive number")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-\(\)]{10,}$`)
)

// LoginForm is the sign-in form.
type LoginForm struct {
	Email    string
	Password string
}

// RegisterForm is the account creation form.
type RegisterForm struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	DateOfBirth     string
	DueDate         string
	PregnancyType   string
}

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Phone reports whether s looks like a phone number: an optional plus
// followed by at least ten digits, spaces, dashes or parentheses.
func Phone(s string) bool {
	return phonePattern.MatchString(s)
}

// Login validates the sign-in form in field order and returns the first
// failure.
func Login(form LoginForm) error {
	if err := requireEmail(form.Email); err != nil {
		return err
	}
	return requirePassword(form.Password)
}

// Register validates the account form in field order and returns the first
// failure.
func Register(form RegisterForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return ErrNameRequired
	}
	if err := requireEmail(form.Email); err != nil {
		return err
	}
	if strings.TrimSpace(form.Phone) == "" {
		return ErrPhoneRequired
	}
	if !Phone(form.Phone) {
		return ErrPhoneInvalid
	}
	if err := requirePassword(form.Password); err != nil {
		return err
	}
	if form.Password != form.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if strings.TrimSpace(form.DateOfBirth) == "" {
		return ErrDateOfBirthRequired
	}
	if strings.TrimSpace(form.DueDate) == "" {
		return ErrDueDateRequired
	}
	if _, err := selector.ParseDate(form.DueDate); err != nil {
		return apperrors.Wrap(apperrors.CodeValidationDueDateInvalid, "due date is not a recognized date", err)
	}
	return nil
}

// ForgotPassword validates the password reset request.
func ForgotPassword(email string) error {
	return requireEmail(email)
}

// WaterGlasses parses a glasses count typed by the user. Only positive
// numbers are accepted.
func WaterGlasses(input string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, ErrGlassesInvalid
	}
	return n, nil
}

func requireEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if !Email(email) {
		return ErrEmailInvalid
	}
	return nil
}

func requirePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrPasswordRequired
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
