package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"soluna/config"
	"soluna/logging"
	"soluna/pipeline"
)

// Server exposes the analysis pipeline over HTTP and WebSocket.  Each request
// is analyzed independently with fresh pipeline state; concurrent requests
// never share anything mutable.
type Server struct {
	cfg *config.Config
	mux *http.ServeMux
}

// New creates a server for the given configuration
func New(cfg *config.Config) *Server {
	s := &Server{cfg: cfg, mux: http.NewServeMux()}
	s.mux.HandleFunc("/ws", s.handleWebSocket)
	s.mux.HandleFunc("/analyze", s.handleAnalyze)
	return s
}

// ListenAndServe blocks serving requests until the listener fails
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	logging.LogInfo("Server", fmt.Sprintf("listening on %s", addr))

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// analyzeRequest is the JSON request shape; clients may also submit the raw
// source text directly
type analyzeRequest struct {
	Code string `json:"code"`
}

// extractSource accepts either a JSON envelope or a plain source text
func extractSource(data []byte) string {
	var req analyzeRequest
	if err := json.Unmarshal(data, &req); err == nil && req.Code != "" {
		return req.Code
	}
	return string(data)
}

// handleAnalyze runs one analysis per POST request and answers with the full
// result as JSON
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, int64(s.cfg.Server.MaxSourceLen)+1))
	if err != nil {
		http.Error(w, "unable to read request body", http.StatusBadRequest)
		return
	}
	if len(body) > s.cfg.Server.MaxSourceLen {
		http.Error(w, "source text too large", http.StatusRequestEntityTooLarge)
		return
	}

	result := pipeline.Run(extractSource(body))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logging.LogInfo("Server", fmt.Sprintf("response write failed: %s", err))
	}
}
