package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"
)

// Server is the squish HTTP service.
type Server struct {
	addr    string
	handler *CodecHandler
}

// NewServer creates a new server.
func NewServer(addr string, opts Options) *Server {
	return &Server{
		addr:    addr,
		handler: NewCodecHandler(opts),
	}
}

// Handler returns the routes served by the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/compress", s.handler.HandleCompress)
	mux.HandleFunc("/decompress", s.handler.HandleDecompress)
	mux.HandleFunc("/ping", s.handler.HandlePing)
	return mux
}

// Start serves requests until `ctx` is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown failed: %s", err)
		}
	}()

	log.Printf("squish server listening on %s", s.addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
