// Package server wires the tracker store, its action journal and the gRPC
// lifecycle.
package server
