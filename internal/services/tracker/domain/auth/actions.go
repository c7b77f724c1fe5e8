package auth

import (
	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/patch"
)

// Slice is the auth namespace.
const Slice action.Slice = "auth"

const (
	TypeLoginStart   action.Type = "auth/loginStart"
	TypeLoginSuccess action.Type = "auth/loginSuccess"
	TypeLoginFailure action.Type = "auth/loginFailure"
	TypeLogout       action.Type = "auth/logout"
	TypeClearError   action.Type = "auth/clearError"
	TypeUpdateUser   action.Type = "auth/updateUser"
)

// LoginStart marks a sign-in attempt in flight.
type LoginStart struct{}

// LoginSuccess installs the signed-in user.
type LoginSuccess User

// LoginFailure signs out and records the failure message.
type LoginFailure string

// Logout ends the session.
type Logout struct{}

// ClearError drops the recorded error.
type ClearError struct{}

// UserPatch is a partial user update. The id cannot be patched.
type UserPatch struct {
	Email         patch.Field[string] `json:"email,omitzero"`
	Name          patch.Field[string] `json:"name,omitzero"`
	Phone         patch.Field[string] `json:"phone,omitzero"`
	DateOfBirth   patch.Field[string] `json:"dateOfBirth,omitzero"`
	DueDate       patch.Field[string] `json:"dueDate,omitzero"`
	CurrentWeek   patch.Field[int]    `json:"currentWeek,omitzero"`
	PregnancyType patch.Field[string] `json:"pregnancyType,omitzero"`
	BabyName      patch.Field[string] `json:"babyName,omitzero"`
	BabyBirthDate patch.Field[string] `json:"babyBirthDate,omitzero"`
	BabyGender    patch.Field[string] `json:"babyGender,omitzero"`
}

// UpdateUser merges a patch into the signed-in user.
type UpdateUser UserPatch

func (LoginStart) Type() action.Type   { return TypeLoginStart }
func (LoginSuccess) Type() action.Type { return TypeLoginSuccess }
func (LoginFailure) Type() action.Type { return TypeLoginFailure }
func (Logout) Type() action.Type       { return TypeLogout }
func (ClearError) Type() action.Type   { return TypeClearError }
func (UpdateUser) Type() action.Type   { return TypeUpdateUser }

func (p UserPatch) apply(u *User) {
	p.Email.Apply(&u.Email)
	p.Name.Apply(&u.Name)
	p.Phone.Apply(&u.Phone)
	p.DateOfBirth.Apply(&u.DateOfBirth)
	p.DueDate.Apply(&u.DueDate)
	p.CurrentWeek.Apply(&u.CurrentWeek)
	p.PregnancyType.Apply(&u.PregnancyType)
	p.BabyName.ApplyPtr(&u.BabyName)
	p.BabyBirthDate.ApplyPtr(&u.BabyBirthDate)
	p.BabyGender.ApplyPtr(&u.BabyGender)
}
