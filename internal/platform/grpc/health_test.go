package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const trackerService = "bloom.tracker.v1.TrackerService"

func TestWaitForHealth(t *testing.T) {
	serving := grpc_health_v1.HealthCheckResponse_SERVING
	notServing := grpc_health_v1.HealthCheckResponse_NOT_SERVING

	tests := []struct {
		name     string
		statuses map[string]grpc_health_v1.HealthCheckResponse_ServingStatus
		service  string
		flip     string
		wantErr  bool
		wantLog  string
	}{
		{
			name:     "server serving",
			statuses: map[string]grpc_health_v1.HealthCheckResponse_ServingStatus{"": serving},
			wantLog:  "SERVING",
		},
		{
			name:     "tracker serving",
			statuses: map[string]grpc_health_v1.HealthCheckResponse_ServingStatus{"": serving, trackerService: serving},
			service:  trackerService,
		},
		{
			name:     "tracker down while server serves",
			statuses: map[string]grpc_health_v1.HealthCheckResponse_ServingStatus{"": serving, trackerService: notServing},
			service:  trackerService,
			wantErr:  true,
			wantLog:  "NOT_SERVING",
		},
		{
			name:     "tracker not registered",
			statuses: map[string]grpc_health_v1.HealthCheckResponse_ServingStatus{"": serving},
			service:  trackerService,
			wantErr:  true,
			wantLog:  "NotFound",
		},
		{
			name:     "tracker comes up",
			statuses: map[string]grpc_health_v1.HealthCheckResponse_ServingStatus{"": serving, trackerService: notServing},
			service:  trackerService,
			flip:     trackerService,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			addr, healthServer := startHealthServer(t, tc.statuses)
			conn := dialHealthServer(t, addr)

			if tc.flip != "" {
				go func() {
					time.Sleep(250 * time.Millisecond)
					healthServer.SetServingStatus(tc.flip, serving)
				}()
			}

			var (
				mu   sync.Mutex
				logs []string
			)
			logf := func(format string, args ...any) {
				mu.Lock()
				defer mu.Unlock()
				logs = append(logs, fmt.Sprintf(format, args...))
			}

			timeout := 2 * time.Second
			if tc.wantErr {
				timeout = 400 * time.Millisecond
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			err := WaitForHealth(ctx, conn, tc.service, logf)
			if tc.wantErr {
				if !errors.Is(err, context.DeadlineExceeded) {
					t.Fatalf("error = %v, want deadline exceeded", err)
				}
			} else if err != nil {
				t.Fatalf("wait for health: %v", err)
			}

			if tc.wantLog != "" {
				mu.Lock()
				joined := strings.Join(logs, "\n")
				mu.Unlock()
				if !strings.Contains(joined, tc.wantLog) {
					t.Fatalf("logs = %q, want mention of %q", joined, tc.wantLog)
				}
			}
		})
	}
}

func TestWaitForHealthRejectsNilConn(t *testing.T) {
	if err := WaitForHealth(context.Background(), nil, trackerService, nil); err == nil {
		t.Fatal("expected nil connection error")
	}
}

func startHealthServer(t *testing.T, statuses map[string]grpc_health_v1.HealthCheckResponse_ServingStatus) (string, *health.Server) {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	grpcServer := gogrpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	for service, status := range statuses {
		healthServer.SetServingStatus(service, status)
	}

	go func() { _ = grpcServer.Serve(listener) }()
	t.Cleanup(grpcServer.Stop)

	return listener.Addr().String(), healthServer
}

func dialHealthServer(t *testing.T, addr string) *gogrpc.ClientConn {
	t.Helper()

	conn, err := gogrpc.NewClient(addr, gogrpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial health server: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}
