// Package server implements the development static file server: plain
// HTTP, permissive CORS for ES module loading, and a corrected MIME type
// for .js files.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/ryokushen/devserver/internal/logging"
)

// Config holds server configuration.
type Config struct {
	// Port is the TCP port to listen on.
	Port int

	// Host is used when printing the service URL.
	Host string

	// Dir is the root directory served.
	Dir string
}

// Server wraps the static file server with lifecycle management.
type Server struct {
	config     *Config
	httpServer *http.Server
}

// New creates a new static file server.
func New(cfg *Config) *Server {
	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Handler:     NewHandler(cfg.Dir),
			ReadTimeout: 30 * time.Second,
			IdleTimeout: 60 * time.Second,
		},
	}
}

// URL returns the service URL.
func (s *Server) URL() string {
	return fmt.Sprintf("http://%s:%d/", s.config.Host, s.config.Port)
}

// Listen binds the listening socket. The socket is created with
// SO_REUSEADDR so a quick restart never fails with address-in-use while
// the previous instance's connections linger in TIME_WAIT.
func (s *Server) Listen() (net.Listener, error) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var sockErr error
			err := c.Control(func(fd uintptr) {
				sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
			})
			if err != nil {
				return err
			}
			return sockErr
		},
	}
	return lc.Listen(context.Background(), "tcp", fmt.Sprintf(":%d", s.config.Port))
}

// Run serves until the context is cancelled, then shuts down cleanly.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()

	logging.Info("server listening", "addr", ln.Addr().String(), "dir", s.config.Dir)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
