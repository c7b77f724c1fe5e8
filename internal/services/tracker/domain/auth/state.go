package auth

import "github.com/louisbranch/bloom/internal/services/tracker/domain/lookup"

// User is the signed-in account profile.
type User struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	DateOfBirth   string  `json:"dateOfBirth"`
	DueDate       string  `json:"dueDate"`
	CurrentWeek   int     `json:"currentWeek"`
	PregnancyType string  `json:"pregnancyType"`
	BabyName      *string `json:"babyName,omitempty"`
	BabyBirthDate *string `json:"babyBirthDate,omitempty"`
	BabyGender    *string `json:"babyGender,omitempty"`
}

// State is the auth slice.
type State struct {
	// IsAuthenticated is true exactly when User is non-nil.
	IsAuthenticated bool    `json:"isAuthenticated"`
	User            *User   `json:"user"`
	IsLoading       bool    `json:"isLoading"`
	Error           *string `json:"error"`
}

// Consistent reports whether the user/authenticated pairing holds.
func (s State) Consistent() bool {
	return (s.User != nil) == s.IsAuthenticated
}

// SignedOut returns the state with no session.
func SignedOut() State {
	return State{}
}

// InitialState returns the starting auth slice. A demo session signs in the
// demo account from tables; otherwise the slice starts signed out.
func InitialState(tables lookup.Tables, demo bool) State {
	if !demo {
		return SignedOut()
	}
	demoUser := tables.DemoUser
	user := &User{
		ID:            demoUser.ID,
		Email:         demoUser.Email,
		Name:          demoUser.Name,
		Phone:         demoUser.Phone,
		DateOfBirth:   demoUser.DateOfBirth,
		DueDate:       demoUser.DueDate,
		CurrentWeek:   demoUser.CurrentWeek,
		PregnancyType: demoUser.PregnancyType,
	}
	if demoUser.BabyName != "" {
		name := demoUser.BabyName
		user.BabyName = &name
	}
	return State{IsAuthenticated: true, User: user}
}
