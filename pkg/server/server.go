// Package server exposes a demo over HTTP.
//
// The server speaks JSON to the browser front end: the component layout at
// /config, predictions at /api/predict, sensitivity interpretation at
// /api/interpret, component events at /api/event, and a websocket at /live
// that streams refreshed component values. Rendering the widgets is the front
// end's job; this side only serves their configuration and values.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/websocket"

	"github.com/go-vitrine/vitrine/pkg/errors"
	"github.com/go-vitrine/vitrine/pkg/events"
	"github.com/go-vitrine/vitrine/pkg/session"
)

// Config configures a Server.
type Config struct {
	// Addr is the listen address for [Server.ListenAndServe]. Empty means
	// :7860.
	Addr string
	// Log is the server logger. Nil discards everything.
	Log *zap.Logger
}

// Server serves one demo.
type Server struct {
	demo *session.Demo
	log  *zap.Logger
	addr string
	mux  *http.ServeMux
}

// New builds a Server around demo.
func New(demo *session.Demo, cfg Config) *Server {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	addr := cfg.Addr
	if addr == "" {
		addr = ":7860"
	}
	s := &Server{demo: demo, log: log, addr: addr, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /config", s.handleConfig)
	s.mux.HandleFunc("POST /api/predict", s.handlePredict)
	s.mux.HandleFunc("POST /api/interpret", s.handleInterpret)
	s.mux.HandleFunc("POST /api/event", s.handleEvent)
	s.mux.Handle("/live", websocket.Handler(s.handleLive))
	return s
}

// Handler returns the server's routes, mainly for tests.
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.mux}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("listening", zap.String("addr", s.addr))

	select {
	case err := <-errc:
		return errors.E("server.ListenAndServe", errors.KindServer, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.E("server.ListenAndServe", errors.KindServer, err)
		}
		<-errc
		return nil
	}
}

// predictRequest is the body of /api/predict and /api/interpret: one
// transport value per input component.
type predictRequest struct {
	Data []json.RawMessage `json:"data"`
}

type predictResponse struct {
	Data []json.RawMessage `json:"data"`
}

type eventRequest struct {
	ComponentID string          `json:"component_id"`
	Event       string          `json:"event"`
	Data        json.RawMessage `json:"data"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<!doctype html><title>vitrine</title><p>Demo API is up. Component layout at <a href=\"/config\">/config</a>.")
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.demo.Config())
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.E("server.predict", errors.KindSerialize, err))
		return
	}
	out, err := s.demo.Process(r.Context(), req.Data)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, predictResponse{Data: out})
}

func (s *Server) handleInterpret(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.E("server.interpret", errors.KindSerialize, err))
		return
	}
	results, err := s.demo.Interpret(r.Context(), req.Data)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"interpretation": results})
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.E("server.event", errors.KindSerialize, err))
		return
	}
	if err := s.demo.Dispatch(req.ComponentID, events.Event(req.Event), req.Data); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleLive opens a session and streams value refreshes until the client
// disconnects.
func (s *Server) handleLive(ws *websocket.Conn) {
	sess := s.demo.NewSession()
	log := s.log.With(zap.String("session", sess.ID()))
	log.Info("live channel open")

	ctx, cancel := context.WithCancel(ws.Request().Context())
	defer cancel()
	go sess.Run(ctx)

	// Drain client frames so we notice the disconnect.
	go func() {
		defer cancel()
		var discard json.RawMessage
		for websocket.JSON.Receive(ws, &discard) == nil {
		}
	}()

	for update := range sess.Updates() {
		if err := websocket.JSON.Send(ws, update); err != nil {
			log.Warn("live send failed", zap.Error(err))
			break
		}
	}
	log.Info("live channel closed")
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("response encode failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.KindOf(err) {
	case errors.KindSerialize, errors.KindProcess, errors.KindConfig:
		status = http.StatusBadRequest
	}
	s.log.Info("request failed", zap.Int("status", status), zap.Error(err))
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
