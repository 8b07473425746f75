package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"channel-message-service/internal/storage"

	"go.uber.org/zap"
)

// Server defines fields used in HTTP processing
type Server struct {
	logger        *zap.SugaredLogger
	httpServer    *http.Server
	h             *handler
	afterShutdown []func()
}

// NewServer returns new Server struct with provided zap.SugaredLogger and storage.Store
func NewServer(logger *zap.SugaredLogger, store *storage.Store, opts ...Option) (*Server, error) {
	h := &handler{
		logger: logger,
		store:  store,
	}

	cfg := &config{
		httpServer: &http.Server{Addr: "0.0.0.0:9000"},
		handlers: map[string]http.Handler{
			"GET /{$}":                     http.HandlerFunc(h.index),
			"GET /create":                  http.HandlerFunc(h.createKeyspace),
			"GET /drop":                    http.HandlerFunc(h.dropKeyspace),
			"GET /messages/create":         http.HandlerFunc(h.createMessagesTable),
			"GET /messages":                http.HandlerFunc(h.allMessages),
			"GET /channels/{id}/messages":  http.HandlerFunc(h.channelMessages),
			"POST /channels/{id}/messages": enforceJSON(http.HandlerFunc(h.appendMessage)),
			"GET /users":                   http.HandlerFunc(h.allUsers),
			"GET /users/create":            http.HandlerFunc(h.createUsersTable),
			"POST /users/register":         enforceJSON(http.HandlerFunc(h.register)),
			"POST /users/login":            enforceJSON(http.HandlerFunc(h.login)),
		},
	}

	for _, opt := range opts {
		opt.apply(cfg)
	}

	mux := http.NewServeMux()
	for pattern, hd := range cfg.handlers {
		mux.Handle(pattern, hd)
	}
	cfg.httpServer.Handler = log(mux, logger.Desugar())

	srv := &Server{
		logger:        logger,
		httpServer:    cfg.httpServer,
		h:             h,
		afterShutdown: cfg.afterShutdown,
	}

	return srv, nil
}

// Start calls ListenAndServe on http.Server instance inside Server struct
// and implements graceful shutdown via goroutine waiting for signals
func (s *Server) Start() error {
	idleConnsClosed := make(chan struct{})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		s.logger.Info("Shutting down HTTP server")

		if err := s.httpServer.Shutdown(context.Background()); err != nil {
			s.logger.Errorf("srv.Shutdown: %v", err)
		}
		s.logger.Info("HTTP server is stopped")

		close(idleConnsClosed)
	}()

	s.logger.Infof("Starting HTTP server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("s.httpServer.ListenAndServe: %v", err)
	}

	<-idleConnsClosed

	for _, f := range s.afterShutdown {
		f()
	}

	s.logger.Info("Closing store")
	s.h.store.Close()
	s.logger.Info("Store is closed")

	return nil
}
