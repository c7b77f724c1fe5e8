package store

import (
	"fmt"
	"slices"

	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/auth"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/baby"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/pregnancy"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/settings"
)

type foldFunc func(state *State, a action.Action) error

// sliceDomain bundles the hooks each slice package exports. Adding a slice
// means adding one entry to sliceDomains.
type sliceDomain struct {
	slice            action.Slice
	registerActions  func(*action.Registry) error
	foldHandledTypes func() []action.Type
	fold             foldFunc
}

func sliceDomains() []sliceDomain {
	return []sliceDomain{
		{
			slice:            auth.Slice,
			registerActions:  auth.RegisterActions,
			foldHandledTypes: auth.FoldHandledTypes,
			fold: func(state *State, a action.Action) error {
				updated, err := auth.Fold(state.Auth, a)
				if err != nil {
					return err
				}
				state.Auth = updated
				return nil
			},
		},
		{
			slice:            pregnancy.Slice,
			registerActions:  pregnancy.RegisterActions,
			foldHandledTypes: pregnancy.FoldHandledTypes,
			fold: func(state *State, a action.Action) error {
				updated, err := pregnancy.Fold(state.Pregnancy, a)
				if err != nil {
					return err
				}
				state.Pregnancy = updated
				return nil
			},
		},
		{
			slice:            baby.Slice,
			registerActions:  baby.RegisterActions,
			foldHandledTypes: baby.FoldHandledTypes,
			fold: func(state *State, a action.Action) error {
				updated, err := baby.Fold(state.Baby, a)
				if err != nil {
					return err
				}
				state.Baby = updated
				return nil
			},
		},
		{
			slice:            settings.Slice,
			registerActions:  settings.RegisterActions,
			foldHandledTypes: settings.FoldHandledTypes,
			fold: func(state *State, a action.Action) error {
				updated, err := settings.Fold(state.Settings, a)
				if err != nil {
					return err
				}
				state.Settings = updated
				return nil
			},
		},
	}
}

// buildIndex registers every slice's actions and maps each type to its fold.
// It fails when a registered type has no fold, when a fold claims a type that
// was never registered, or when two folds claim the same type.
func buildIndex(domains []sliceDomain) (*action.Registry, map[action.Type]foldFunc, error) {
	registry := action.NewRegistry()
	index := make(map[action.Type]foldFunc)
	for _, domain := range domains {
		if err := domain.registerActions(registry); err != nil {
			return nil, nil, fmt.Errorf("register %s actions: %w", domain.slice, err)
		}
		for _, t := range domain.foldHandledTypes() {
			if t.Slice() != domain.slice {
				return nil, nil, fmt.Errorf("%s fold claims foreign type %s", domain.slice, t)
			}
			if _, exists := index[t]; exists {
				return nil, nil, fmt.Errorf("action type %s folded twice", t)
			}
			index[t] = domain.fold
		}
	}

	registered := registry.Types()
	for _, t := range registered {
		if _, ok := index[t]; !ok {
			return nil, nil, fmt.Errorf("action type %s is registered but no fold handles it", t)
		}
	}
	for t := range index {
		if !slices.Contains(registered, t) {
			return nil, nil, fmt.Errorf("action type %s is folded but never registered", t)
		}
	}
	return registry, index, nil
}
