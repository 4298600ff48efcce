package web

import (
	"context"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/cjeanneret/ov5640/internal/config"
)

// Server wraps the HTTP server and handlers.
type Server struct {
	addr     string
	handlers *Handlers
}

// NewServer creates a control server for the given address and dependencies.
func NewServer(addr string, broadcaster *StatusBroadcaster, sensor Sensor, cfg *config.Config, tune TuneFunc, focus FocusFunc) *Server {
	subFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatalf("web: failed to sub static fs: %v", err)
	}

	return &Server{
		addr:     addr,
		handlers: NewHandlers(broadcaster, sensor, cfg, tune, focus, subFS),
	}
}

// Handlers returns the server's handlers.
func (s *Server) Handlers() *Handlers { return s.handlers }

// Mux returns an http.Handler with all routes registered.
func (s *Server) Mux() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /status", s.handlers.HandleStatus)
	mux.HandleFunc("GET /config", s.handlers.HandleConfig)
	mux.HandleFunc("POST /tuning", s.handlers.HandleTuning)
	mux.HandleFunc("POST /focus", s.handlers.HandleFocus)
	mux.HandleFunc("GET /status/stream", s.handlers.HandleStatusStream)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.handlers.staticFS))))
	mux.HandleFunc("GET /{$}", s.handlers.ServeIndex) // exact match for root only

	return mux
}

// Run starts the server and blocks until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Mux()}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("web server listening on %s", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
