package validation

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/bloom/internal/platform/errors"
)

func validRegisterForm() RegisterForm {
	return RegisterForm{
		Name:            "Ana Souza",
		Email:           "ana@example.com",
		Phone:           "+55 (11) 91234-5678",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		DateOfBirth:     "1992-04-03",
		DueDate:         "2026-09-01",
		PregnancyType:   "First Pregnancy",
	}
}

func TestEmail(t *testing.T) {
	tests := map[string]bool{
		"ana@example.com":  true,
		"a.b+c@d.co":       true,
		"ana@example":      false,
		"ana example@x.io": false,
		"@example.com":     false,
		"":                 false,
	}
	for input, want := range tests {
		if got := Email(input); got != want {
			t.Fatalf("Email(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestPhone(t *testing.T) {
	tests := map[string]bool{
		"+1234567890":     true,
		"(11) 9123-45678": true,
		"123456789":       false,
		"+12345abc890":    false,
	}
	for input, want := range tests {
		if got := Phone(input); got != want {
			t.Fatalf("Phone(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name string
		form LoginForm
		want error
	}{
		{name: "valid", form: LoginForm{Email: "ana@example.com", Password: "secret1"}},
		{name: "missing email", form: LoginForm{Email: "  ", Password: "secret1"}, want: ErrEmailRequired},
		{name: "bad email", form: LoginForm{Email: "ana", Password: "secret1"}, want: ErrEmailInvalid},
		{name: "missing password", form: LoginForm{Email: "ana@example.com"}, want: ErrPasswordRequired},
		{name: "short password", form: LoginForm{Email: "ana@example.com", Password: "12345"}, want: ErrPasswordTooShort},
		{name: "accented password counts characters", form: LoginForm{Email: "ana@example.com", Password: "çãé"}, want: ErrPasswordTooShort},
		{name: "six accented characters", form: LoginForm{Email: "ana@example.com", Password: "çãéíõú"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Login(tc.form)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("login: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	if err := Register(validRegisterForm()); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*RegisterForm)
		code   apperrors.Code
	}{
		{name: "name", mutate: func(f *RegisterForm) { f.Name = " " }, code: apperrors.CodeValidationNameRequired},
		{name: "email", mutate: func(f *RegisterForm) { f.Email = "" }, code: apperrors.CodeValidationEmailRequired},
		{name: "email format", mutate: func(f *RegisterForm) { f.Email = "ana@" }, code: apperrors.CodeValidationEmailInvalid},
		{name: "phone", mutate: func(f *RegisterForm) { f.Phone = "" }, code: apperrors.CodeValidationPhoneRequired},
		{name: "phone format", mutate: func(f *RegisterForm) { f.Phone = "12-34" }, code: apperrors.CodeValidationPhoneInvalid},
		{name: "password", mutate: func(f *RegisterForm) { f.Password = "" }, code: apperrors.CodeValidationPasswordRequired},
		{name: "password length", mutate: func(f *RegisterForm) { f.Password, f.ConfirmPassword = "abc", "abc" }, code: apperrors.CodeValidationPasswordTooShort},
		{name: "confirmation", mutate: func(f *RegisterForm) { f.ConfirmPassword = "secret2" }, code: apperrors.CodeValidationPasswordMismatch},
		{name: "date of birth", mutate: func(f *RegisterForm) { f.DateOfBirth = "" }, code: apperrors.CodeValidationDateOfBirthRequired},
		{name: "due date", mutate: func(f *RegisterForm) { f.DueDate = "" }, code: apperrors.CodeValidationDueDateRequired},
		{name: "due date format", mutate: func(f *RegisterForm) { f.DueDate = "next spring" }, code: apperrors.CodeValidationDueDateInvalid},
		{name: "first failure wins", mutate: func(f *RegisterForm) { f.Name, f.Email = "", "" }, code: apperrors.CodeValidationNameRequired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := validRegisterForm()
			tc.mutate(&form)
			if got := apperrors.GetCode(Register(form)); got != tc.code {
				t.Fatalf("code = %s, want %s", got, tc.code)
			}
		})
	}
}

func TestForgotPassword(t *testing.T) {
	if err := ForgotPassword("ana@example.com"); err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	if err := ForgotPassword("ana"); !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("expected invalid email, got %v", err)
	}
}

func TestWaterGlasses(t *testing.T) {
	n, err := WaterGlasses(" 8 ")
	if err != nil || n != 8 {
		t.Fatalf("glasses = %v, %v", n, err)
	}
	for _, input := range []string{"", "0", "-2", "many", "NaN", "Inf"} {
		if _, err := WaterGlasses(input); !errors.Is(err, ErrGlassesInvalid) {
			t.Fatalf("WaterGlasses(%q) error = %v", input, err)
		}
	}
}

func TestPasswordTooShortCarriesMinimum(t *testing.T) {
	if got := apperrors.GetMetadata(ErrPasswordTooShort)["MinLength"]; got != "6" {
		t.Fatalf("min length = %q", got)
	}
}
