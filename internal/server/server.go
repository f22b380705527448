// Package server exposes the activity logger over HTTP for local front
// ends: one POST /chat endpoint that accepts free text and replies with the
// logger's confirmation text.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"tomatolog/internal/extract"
	"tomatolog/models"
)

// Extractor turns user free text into a candidate activity record.
type Extractor interface {
	Extract(ctx context.Context, userText string, history []extract.Turn) (models.Candidate, error)
}

// ActivityLogger persists one candidate record and reports the outcome as
// text, never an error.
type ActivityLogger interface {
	LogActivity(c models.Candidate) string
}

// Server hosts the chat endpoint. Session histories live in memory only;
// the ledger on disk is the durable state.
type Server struct {
	extractor Extractor
	logger    ActivityLogger

	mu        sync.Mutex
	histories map[string][]extract.Turn

	httpServer *http.Server
}

// New builds a server listening on the given port.
func New(port int, extractor Extractor, logger ActivityLogger) *Server {
	s := &Server{
		extractor: extractor,
		logger:    logger,
		histories: make(map[string][]extract.Turn),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           corsMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start blocks serving requests until Shutdown or a listener error.
func (s *Server) Start() error {
	slog.Info("chat server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("chat server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// history returns a copy of the session's prior turns.
func (s *Server) history(sessionID string) []extract.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := s.histories[sessionID]
	out := make([]extract.Turn, len(turns))
	copy(out, turns)
	return out
}

// remember appends one exchange to the session history.
func (s *Server) remember(sessionID, userText, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.histories[sessionID] = append(s.histories[sessionID],
		extract.Turn{Role: "user", Content: userText},
		extract.Turn{Role: "assistant", Content: reply},
	)
}
