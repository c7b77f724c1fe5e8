// Package action defines the typed state transitions accepted by the tracker
// store and the registry that closes the set of known transitions.
//
// Every action type is namespaced as "<slice>/<operation>". Slice packages
// declare their action variants as concrete Go types, register them with a
// Registry, and fold them into their own state. The store resolves each type
// to exactly one owning slice when it is constructed.
package action
