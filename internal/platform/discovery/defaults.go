// Package discovery centralizes service address conventions.
package discovery

import (
	"strconv"
	"strings"
)

// ServiceTracker is the tracker gRPC service identity.
const ServiceTracker = "tracker"

var grpcPorts = map[string]int{
	ServiceTracker: 8092,
}

// DefaultGRPCPort returns the conventional gRPC port for a service, or zero.
func DefaultGRPCPort(service string) int {
	return grpcPorts[strings.TrimSpace(service)]
}

// DefaultGRPCAddr returns the canonical in-network gRPC address for a service.
func DefaultGRPCAddr(service string) string {
	service = strings.TrimSpace(service)
	return joinHostPort(service, DefaultGRPCPort(service))
}

// LocalGRPCAddr returns the loopback address a developer machine uses for a service.
func LocalGRPCAddr(service string) string {
	return joinHostPort("localhost", DefaultGRPCPort(service))
}

func joinHostPort(host string, port int) string {
	if host == "" || port <= 0 {
		return ""
	}
	return host + ":" + strconv.Itoa(port)
}
