// Package server exposes the generator to browser clients: a WebSocket
// endpoint that streams the recorded step log for animated playback, and a
// plain JSON endpoint that returns only the final result. The server holds
// no generation state; every connection owns its run end to end.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lawnchairsociety/dungeonforge/internal/config"
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/export"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
)

// Server is the preview server.
type Server struct {
	cfg      config.ServerConfig
	upgrader websocket.Upgrader
}

// New creates a preview server with the given settings.
func New(cfg config.ServerConfig) *Server {
	s := &Server{cfg: cfg}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return s.cfg.IsOriginAllowed(r.Header.Get("Origin"), r.Host)
		},
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handlePlayback)
	mux.HandleFunc("/api/generate", s.handleGenerate)
	mux.HandleFunc("/api/export", s.handleExport)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// ListenAndServe runs the server on the configured address.
func (s *Server) ListenAndServe() error {
	logger.Info("Preview server listening", "address", s.cfg.Address)
	return http.ListenAndServe(s.cfg.Address, s.Handler())
}

// playbackRequest is the single message a playback client sends after
// connecting. StepIntervalMS of zero uses the server's configured interval.
type playbackRequest struct {
	dungeon.Request
	StepIntervalMS int `json:"stepIntervalMs,omitempty"`
}

// frame is one outbound playback message.
type frame struct {
	Type  string                  `json:"type"` // "step", "result" or "error"
	Index int                     `json:"index,omitempty"`
	Total int                     `json:"total,omitempty"`
	Step  *dungeon.GenerationStep `json:"step,omitempty"`
	Rooms []dungeon.Room          `json:"rooms,omitempty"`
	Grid  dungeon.Grid            `json:"grid,omitempty"`
	Stats *dungeon.Stats          `json:"stats,omitempty"`
	Error string                  `json:"error,omitempty"`
}

// handlePlayback upgrades the connection, reads one generate request, then
// streams the step log at the playback interval followed by a final result
// frame. A client that disconnects mid-playback simply stops consuming;
// generation itself already completed synchronously.
func (s *Server) handlePlayback(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warning("WebSocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	if s.cfg.MaxMessageSize > 0 {
		conn.SetReadLimit(s.cfg.MaxMessageSize)
	}

	var req playbackRequest
	if err := conn.ReadJSON(&req); err != nil {
		writeFrame(conn, frame{Type: "error", Error: "malformed request"})
		return
	}

	res, err := dungeon.Generate(req.Request)
	if err != nil {
		writeFrame(conn, frame{Type: "error", Error: err.Error()})
		return
	}

	logger.Info("Streaming playback",
		"remote", r.RemoteAddr,
		"seed", res.Request.Seed,
		"algorithm", res.Request.Algorithm,
		"steps", len(res.Steps))

	interval := time.Duration(req.StepIntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = time.Duration(s.cfg.StepIntervalMS) * time.Millisecond
	}

	for i := range res.Steps {
		f := frame{Type: "step", Index: i, Total: len(res.Steps), Step: &res.Steps[i]}
		if err := writeFrame(conn, f); err != nil {
			return // client went away; nothing to cancel
		}
		if interval > 0 && i < len(res.Steps)-1 {
			time.Sleep(interval)
		}
	}

	writeFrame(conn, frame{Type: "result", Grid: res.Grid, Rooms: res.Rooms, Stats: &res.Stats})
}

func writeFrame(conn *websocket.Conn, f frame) error {
	return conn.WriteJSON(f)
}

// handleGenerate runs one generation and returns the final result without
// the step log.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dungeon.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request", http.StatusBadRequest)
		return
	}

	res, err := dungeon.Generate(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Grid  dungeon.Grid   `json:"grid"`
		Rooms []dungeon.Room `json:"rooms"`
		Stats dungeon.Stats  `json:"stats"`
	}{res.Grid, res.Rooms, res.Stats})
}

// handleExport runs one generation and returns the JSON export snapshot.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dungeon.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request", http.StatusBadRequest)
		return
	}

	res, err := dungeon.Generate(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := export.NewSnapshot(res).JSON()
	if err != nil {
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
