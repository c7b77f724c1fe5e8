package auth

import (
	"fmt"

	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
)

// FoldHandledTypes returns the action types handled by the auth fold.
func FoldHandledTypes() []action.Type {
	return []action.Type{
		TypeLoginStart,
		TypeLoginSuccess,
		TypeLoginFailure,
		TypeLogout,
		TypeClearError,
		TypeUpdateUser,
	}
}

// Fold applies an action to auth state. User records are replaced, never
// edited, so earlier snapshots keep their user.
func Fold(state State, a action.Action) (State, error) {
	switch a := a.(type) {
	case LoginStart:
		state.IsLoading = true
		state.Error = nil
	case LoginSuccess:
		user := User(a)
		state.User = &user
		state.IsAuthenticated = true
		state.IsLoading = false
		state.Error = nil
	case LoginFailure:
		msg := string(a)
		state.User = nil
		state.IsAuthenticated = false
		state.IsLoading = false
		state.Error = &msg
	case Logout:
		state.User = nil
		state.IsAuthenticated = false
		state.Error = nil
	case ClearError:
		state.Error = nil
	case UpdateUser:
		if state.User == nil {
			return state, nil
		}
		user := *state.User
		UserPatch(a).apply(&user)
		state.User = &user
	default:
		return state, fmt.Errorf("auth fold: unhandled action %T", a)
	}
	return state, nil
}
