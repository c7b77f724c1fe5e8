package action

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Slice names one independently owned partition of the root state.
type Slice string

// Type identifies an action as "<slice>/<operation>".
type Type string

// Slice returns the namespace portion of the type.
func (t Type) Slice() Slice {
	slice, _, _ := strings.Cut(string(t), "/")
	return Slice(slice)
}

// Operation returns the portion after the namespace separator.
func (t Type) Operation() string {
	_, op, _ := strings.Cut(string(t), "/")
	return op
}

// Action is one typed state transition request.
type Action interface {
	Type() Type
}

// Envelope is the serialized form of an action: a type plus its JSON payload.
type Envelope struct {
	Type    Type            `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Encode serializes a typed action into its envelope.
func Encode(a Action) (Envelope, error) {
	if a == nil {
		return Envelope{}, ErrTypeRequired
	}
	payload, err := json.Marshal(a)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s payload: %w", a.Type(), err)
	}
	if string(payload) == "{}" || string(payload) == "null" {
		payload = nil
	}
	return Envelope{Type: a.Type(), Payload: payload}, nil
}
