package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/bloom/internal/platform/timeouts"
	trackerservice "github.com/louisbranch/bloom/internal/services/tracker/api/grpc/tracker"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/auth"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/store"
	"github.com/louisbranch/bloom/internal/services/tracker/sessiongrant"
	"github.com/louisbranch/bloom/internal/services/tracker/storage"
	"github.com/louisbranch/bloom/internal/services/tracker/storage/memory"
	trackersqlite "github.com/louisbranch/bloom/internal/services/tracker/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Config describes one tracker server.
type Config struct {
	// Addr is the listen address, e.g. ":8092".
	Addr string
	// JournalPath selects a SQLite journal file. Empty keeps the journal in
	// memory.
	JournalPath string
	// DemoSession starts the store signed in as the demo account.
	DemoSession bool
	// Grants enables session grants when its key is set.
	Grants sessiongrant.Config
	// ShutdownTimeout bounds graceful stop before open streams are cut.
	ShutdownTimeout time.Duration
}

// Server hosts the tracker gRPC API and store lifecycle.
type Server struct {
	listener        net.Listener
	grpcServer      *grpc.Server
	health          *health.Server
	store           *store.Store
	closeJournal    func() error
	shutdownTimeout time.Duration
}

// New creates a configured tracker server.
func New(ctx context.Context, cfg Config) (*Server, error) {
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	journal, closeJournal, err := openJournal(ctx, cfg.JournalPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	storeOpts := []store.Option{store.WithJournal(journal)}
	if !cfg.DemoSession {
		storeOpts = append(storeOpts, store.WithInitialAuth(auth.SignedOut()))
	}
	st, err := store.New(storeOpts...)
	if err != nil {
		_ = listener.Close()
		_ = closeJournal()
		return nil, fmt.Errorf("create store: %w", err)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(trackerservice.UnaryGrantInterceptor(cfg.Grants)),
		grpc.ChainStreamInterceptor(trackerservice.StreamGrantInterceptor(cfg.Grants)),
	)
	apiService := trackerservice.NewService(st,
		trackerservice.WithJournal(journal),
		trackerservice.WithGrants(cfg.Grants),
	)
	healthServer := health.NewServer()
	trackerservice.RegisterTrackerServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(trackerservice.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = timeouts.Shutdown
	}
	if cfg.Grants.Enabled() {
		log.Printf("tracker session grants enabled for audience %s", cfg.Grants.Audience)
	}

	return &Server{
		listener:        listener,
		grpcServer:      grpcServer,
		health:          healthServer,
		store:           st,
		closeJournal:    closeJournal,
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Store returns the application state store the server exposes.
func (s *Server) Store() *store.Store {
	if s == nil {
		return nil
	}
	return s.store
}

// Run creates and serves a tracker server until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("tracker server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.gracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// gracefulStop drains unary calls. Subscribe streams only end with their
// callers, so they are cut once the shutdown timeout passes.
func (s *Server) gracefulStop() {
	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()
	timer := time.NewTimer(s.shutdownTimeout)
	defer timer.Stop()
	select {
	case <-stopped:
	case <-timer.C:
		log.Printf("tracker graceful stop timed out after %s; closing open streams", s.shutdownTimeout)
		s.grpcServer.Stop()
		<-stopped
	}
}

// Close releases tracker server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close tracker store: %v", err)
		}
	}
	if s.closeJournal != nil {
		if err := s.closeJournal(); err != nil {
			log.Printf("close tracker journal: %v", err)
		}
		s.closeJournal = nil
	}
}

func openJournal(ctx context.Context, path string) (storage.Journal, func() error, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return memory.New(), func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create journal dir: %w", err)
		}
	}
	journal, err := trackersqlite.Open(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("open tracker sqlite journal: %w", err)
	}
	return journal, journal.Close, nil
}
