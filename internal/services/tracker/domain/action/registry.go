package action

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	apperrors "github.com/louisbranch/bloom/internal/platform/errors"
)

var (
	// ErrTypeRequired indicates a missing action type.
	ErrTypeRequired = apperrors.New(apperrors.CodeActionTypeRequired, "action type is required")
	// ErrTypeUnknown indicates an action type no slice has registered.
	ErrTypeUnknown = apperrors.New(apperrors.CodeActionTypeUnknown, "action type is not registered")
	// ErrPayloadInvalid indicates a payload that fails decoding or validation.
	ErrPayloadInvalid = apperrors.New(apperrors.CodeActionPayloadInvalid, "action payload is invalid")
)

// Definition registers metadata for one action type.
type Definition struct {
	Type  Type
	Slice Slice

	decode   func(json.RawMessage) (Action, error)
	validate func(Action) error
}

// Registry stores action definitions and validates actions against them.
type Registry struct {
	definitions map[Type]Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{definitions: make(map[Type]Definition)}
}

// Register adds action variant T, owned by slice. T must be a value type
// whose Type method does not depend on its fields. validate may be nil.
func Register[T Action](r *Registry, slice Slice, validate func(T) error) error {
	decode := func(raw json.RawMessage) (Action, error) {
		var value T
		if len(bytes.TrimSpace(raw)) == 0 {
			return value, nil
		}
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, err
		}
		return value, nil
	}
	return register[T](r, slice, decode, validate)
}

// RegisterTarget adds an id-addressed action variant such as a delete. The
// payload may be a bare JSON string or an object with an "id" field.
func RegisterTarget[T interface {
	Action
	~string
}](r *Registry, slice Slice) error {
	decode := func(raw json.RawMessage) (Action, error) {
		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '{' {
			var obj struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(raw, &obj); err != nil {
				return nil, err
			}
			return T(obj.ID), nil
		}
		var id string
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &id); err != nil {
				return nil, err
			}
		}
		return T(id), nil
	}
	// An empty id matches no record, so the delete folds to a no-op.
	return register[T](r, slice, decode, nil)
}

func register[T Action](r *Registry, slice Slice, decode func(json.RawMessage) (Action, error), validate func(T) error) error {
	if r == nil {
		return fmt.Errorf("registry is required")
	}
	var zero T
	typ := Type(strings.TrimSpace(string(zero.Type())))
	if typ == "" {
		return ErrTypeRequired
	}
	if slice == "" {
		return fmt.Errorf("slice is required for %s", typ)
	}
	if typ.Slice() != slice || typ.Operation() == "" {
		return fmt.Errorf("action type %s must be namespaced as %s/<operation>", typ, slice)
	}
	if r.definitions == nil {
		r.definitions = make(map[Type]Definition)
	}
	if _, exists := r.definitions[typ]; exists {
		return fmt.Errorf("action type already registered: %s", typ)
	}

	def := Definition{Type: typ, Slice: slice, decode: decode}
	def.validate = func(a Action) error {
		value, ok := a.(T)
		if !ok {
			return fmt.Errorf("action %s has unexpected go type %T", typ, a)
		}
		if validate == nil {
			return nil
		}
		return validate(value)
	}
	r.definitions[typ] = def
	return nil
}

// Definition returns the definition for a type.
func (r *Registry) Definition(t Type) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	def, ok := r.definitions[t]
	return def, ok
}

// Types returns every registered type, sorted.
func (r *Registry) Types() []Type {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.definitions))
}

// TypesForSlice returns the registered types owned by slice, sorted.
func (r *Registry) TypesForSlice(slice Slice) []Type {
	var out []Type
	for _, t := range r.Types() {
		if r.definitions[t].Slice == slice {
			out = append(out, t)
		}
	}
	return out
}

// Validate checks that a is registered and that its payload is acceptable.
func (r *Registry) Validate(a Action) (Definition, error) {
	if a == nil {
		return Definition{}, ErrTypeRequired
	}
	def, ok := r.Definition(a.Type())
	if !ok {
		return Definition{}, unknownType(a.Type())
	}
	if err := def.validate(a); err != nil {
		return Definition{}, invalidPayload(def.Type, err)
	}
	return def, nil
}

// Decode turns an envelope into its typed action and validates it.
func (r *Registry) Decode(env Envelope) (Action, error) {
	typ := Type(strings.TrimSpace(string(env.Type)))
	if typ == "" {
		return nil, ErrTypeRequired
	}
	def, ok := r.Definition(typ)
	if !ok {
		return nil, unknownType(typ)
	}
	a, err := def.decode(env.Payload)
	if err != nil {
		return nil, invalidPayload(typ, err)
	}
	if err := def.validate(a); err != nil {
		return nil, invalidPayload(typ, err)
	}
	return a, nil
}

func unknownType(t Type) error {
	return apperrors.WithMetadata(
		apperrors.CodeActionTypeUnknown,
		fmt.Sprintf("action type is not registered: %s", t),
		map[string]string{"Type": string(t)},
	)
}

func invalidPayload(t Type, cause error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeActionPayloadInvalid,
		fmt.Sprintf("invalid %s payload: %v", t, cause),
		map[string]string{"Type": string(t), "Reason": cause.Error()},
		cause,
	)
}
