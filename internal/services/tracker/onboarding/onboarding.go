// Package onboarding runs the sign-in and account creation flows: validate the
// form, then move the auth slice through loginStart and loginSuccess.
package onboarding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/bloom/internal/platform/id"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/auth"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/lookup"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/selector"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/store"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/validation"
)

const (
	loginFailedMessage    = "Login failed. Please try again."
	registerFailedMessage = "Registration failed. Please try again."
)

// Dispatcher applies actions to the application state.
type Dispatcher interface {
	Dispatch(ctx context.Context, a action.Action) (store.State, error)
}

// Flow runs onboarding against one store.
type Flow struct {
	dispatcher Dispatcher
	tables     lookup.Tables
	newID      id.Generator
	now        func() time.Time
}

// Option configures a Flow.
type Option func(*Flow)

// WithIDGenerator sets how new account ids are minted.
func WithIDGenerator(gen id.Generator) Option {
	return func(f *Flow) {
		if gen != nil {
			f.newID = gen
		}
	}
}

// WithClock sets the clock used to derive the pregnancy week.
func WithClock(now func() time.Time) Option {
	return func(f *Flow) {
		if now != nil {
			f.now = now
		}
	}
}

// WithLookup sets the tables the sign-in profile is read from.
func WithLookup(tables lookup.Tables) Option {
	return func(f *Flow) { f.tables = tables }
}

// New builds a Flow that dispatches into d.
func New(d Dispatcher, opts ...Option) *Flow {
	f := &Flow{
		dispatcher: d,
		tables:     lookup.Default(),
		newID:      id.NewID,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Login validates form and signs in the demo account under the given email.
// There is no credential backend, so any well-formed form succeeds.
func (f *Flow) Login(ctx context.Context, form validation.LoginForm) (auth.User, error) {
	if err := validation.Login(form); err != nil {
		return auth.User{}, err
	}
	demo := f.tables.DemoUser
	user := auth.User{
		ID:            demo.ID,
		Email:         form.Email,
		Name:          demo.Name,
		Phone:         demo.Phone,
		DateOfBirth:   demo.DateOfBirth,
		DueDate:       demo.DueDate,
		CurrentWeek:   demo.CurrentWeek,
		PregnancyType: demo.PregnancyType,
	}
	if demo.BabyName != "" {
		name := demo.BabyName
		user.BabyName = &name
	}
	return f.signIn(ctx, user, loginFailedMessage)
}

// Register validates form and signs in a new account. The current week is
// estimated from the due date.
func (f *Flow) Register(ctx context.Context, form validation.RegisterForm) (auth.User, error) {
	if err := validation.Register(form); err != nil {
		return auth.User{}, err
	}
	due, err := selector.ParseDate(form.DueDate)
	if err != nil {
		return auth.User{}, validation.ErrDueDateInvalid
	}
	userID, err := f.newID()
	if err != nil {
		return auth.User{}, fmt.Errorf("generate user id: %w", err)
	}
	user := auth.User{
		ID:            userID,
		Email:         form.Email,
		Name:          strings.TrimSpace(form.Name),
		Phone:         strings.TrimSpace(form.Phone),
		DateOfBirth:   strings.TrimSpace(form.DateOfBirth),
		DueDate:       strings.TrimSpace(form.DueDate),
		CurrentWeek:   selector.WeekFromDueDate(due, f.now()),
		PregnancyType: strings.TrimSpace(form.PregnancyType),
	}
	return f.signIn(ctx, user, registerFailedMessage)
}

func (f *Flow) signIn(ctx context.Context, user auth.User, failure string) (auth.User, error) {
	if _, err := f.dispatcher.Dispatch(ctx, auth.LoginStart{}); err != nil {
		return auth.User{}, fmt.Errorf("start sign-in: %w", err)
	}
	if _, err := f.dispatcher.Dispatch(ctx, auth.LoginSuccess(user)); err != nil {
		// Leave the slice out of its loading state. The original error wins.
		_, _ = f.dispatcher.Dispatch(context.WithoutCancel(ctx), auth.LoginFailure(failure))
		return auth.User{}, fmt.Errorf("complete sign-in: %w", err)
	}
	return user, nil
}
