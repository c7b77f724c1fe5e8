package auth

import (
	"errors"

	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
)

// RegisterActions registers auth actions with the shared registry.
func RegisterActions(registry *action.Registry) error {
	if registry == nil {
		return errors.New("action registry is required")
	}
	return errors.Join(
		action.Register[LoginStart](registry, Slice, nil),
		action.Register(registry, Slice, validateLoginSuccess),
		action.Register[LoginFailure](registry, Slice, nil),
		action.Register[Logout](registry, Slice, nil),
		action.Register[ClearError](registry, Slice, nil),
		action.Register(registry, Slice, validateUpdateUser),
	)
}

func validateLoginSuccess(a LoginSuccess) error {
	if err := action.RequireID(a.ID); err != nil {
		return err
	}
	return action.RequireNonNegative("currentWeek", a.CurrentWeek)
}

func validateUpdateUser(a UpdateUser) error {
	if week, ok := a.CurrentWeek.Value(); ok {
		return action.RequireNonNegative("currentWeek", week)
	}
	return nil
}
