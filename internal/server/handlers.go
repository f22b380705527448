package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ChatRequest is the POST /chat payload. SessionID is optional; a new
// session is started when it is absent.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse carries the logger's textual reply.
type ChatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "消息不能为空"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	candidate, err := s.extractor.Extract(r.Context(), req.Message, s.history(sessionID))
	if err != nil {
		slog.Error("extraction failed", "session_id", sessionID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: err.Error()})
		return
	}

	reply := s.logger.LogActivity(candidate)
	s.remember(sessionID, req.Message, reply)

	writeJSON(w, http.StatusOK, ChatResponse{Reply: reply, SessionID: sessionID})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response", "error", err)
	}
}
