// Package app wires the storefront runtime and HTTP lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rahulmehra/fashionstore/internal/storefront/admin"
	"github.com/rahulmehra/fashionstore/internal/storefront/api/rest"
	"github.com/rahulmehra/fashionstore/internal/storefront/cart"
	"github.com/rahulmehra/fashionstore/internal/storefront/contact"
	"github.com/rahulmehra/fashionstore/internal/storefront/media"
	"github.com/rahulmehra/fashionstore/internal/storefront/storage/sqlite"
)

const shutdownTimeout = 20 * time.Second

// Config holds the storefront server configuration.
type Config struct {
	Addr         string
	DBPath       string
	AdminKey     string
	MediaDir     string
	ContactPhone string
	ContactEmail string
}

// Server hosts the storefront HTTP API and storage lifecycle.
type Server struct {
	listener net.Listener
	httpSrv  *http.Server
	store    *sqlite.Store
}

// New creates a configured storefront server listening on cfg.Addr.
func New(ctx context.Context, cfg Config) (*Server, error) {
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	store, err := openStore(cfg.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	uploads, err := media.NewStore(cfg.MediaDir, "/media")
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, fmt.Errorf("init media store: %w", err)
	}

	engine := cart.NewEngine(ctx, store)
	guard := admin.NewGuard(ctx, cfg.AdminKey, store)
	channels := contact.Channels{Phone: cfg.ContactPhone, Email: cfg.ContactEmail}

	handler := rest.NewHandler(store, engine, guard, uploads, channels)

	return &Server{
		listener: listener,
		httpSrv:  &http.Server{Handler: handler.Router()},
		store:    store,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a storefront server until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the HTTP server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("storefront server listening at %v", s.listener.Addr())

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := s.httpSrv.Serve(s.listener); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http: %w", err)
		}
		return nil
	})
	return group.Wait()
}

// Close releases storefront server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpSrv != nil {
		_ = s.httpSrv.Close()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close storefront store: %v", err)
		}
	}
}

func openStore(path string) (*sqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open storefront sqlite store: %w", err)
	}
	return store, nil
}
