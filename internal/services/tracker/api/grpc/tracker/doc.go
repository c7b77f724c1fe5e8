// Package tracker exposes the application state store over gRPC.
//
// Messages are google.protobuf.Struct bodies carrying the same JSON shapes the
// store exports, so snapshots, envelopes and exports read identically on both
// sides of the wire. The package holds the server (Service, ServiceDesc) and
// the typed Client used by bloomctl.
package tracker
