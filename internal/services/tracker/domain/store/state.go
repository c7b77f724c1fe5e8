package store

import (
	"github.com/louisbranch/bloom/internal/services/tracker/domain/auth"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/baby"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/lookup"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/pregnancy"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/settings"
)

// State is the root snapshot. Each field is owned by one slice.
type State struct {
	Auth      auth.State      `json:"auth"`
	Pregnancy pregnancy.State `json:"pregnancy"`
	Baby      baby.State      `json:"baby"`
	Settings  settings.State  `json:"settings"`
}

// InitialState builds the starting snapshot from the reference tables.
func InitialState(tables lookup.Tables, authState auth.State) State {
	return State{
		Auth:      authState,
		Pregnancy: pregnancy.InitialState(tables),
		Baby:      baby.InitialState(tables),
		Settings:  settings.InitialState(),
	}
}
