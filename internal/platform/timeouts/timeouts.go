// Package timeouts defines shared timeout constants used across bloom processes.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing a gRPC peer.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single unary gRPC request.
const GRPCRequest = 2 * time.Second

// Shutdown limits how long a server waits for in-flight calls during graceful stop.
const Shutdown = 5 * time.Second
