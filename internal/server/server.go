package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/projecthelena/flowtest/internal/config"
)

// Server binds the listener before the handler exists so the handler can
// report the port actually bound.
type Server struct {
	cfg    *config.Config
	logger *log.Logger
	ln     net.Listener
}

func New(cfg *config.Config, logger *log.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// Listen binds cfg.Addr(). A port already in use fails here, before any
// request is served.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr(), err)
	}
	s.ln = ln
	return nil
}

// Addr is the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Port is the bound TCP port, or 0 before Listen.
func (s *Server) Port() int {
	if addr, ok := s.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

// Serve handles requests until ctx is done, then shuts down gracefully
// within cfg.ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, handler http.Handler) error {
	if s.ln == nil {
		return errors.New("serve called before listen")
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}

	base := fmt.Sprintf("http://localhost:%d", s.Port())
	s.logger.Printf("Server running on %s", s.ln.Addr())
	s.logger.Printf("Health check: %s/health", base)
	s.logger.Printf("Environment: %s/env", base)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(s.ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.logger.Println("Server exiting")
	return nil
}
