// Package api exposes the simulation engine over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"vector3/internal/sim"
)

// Engine is the part of *sim.Engine the API drives.
type Engine interface {
	Submit(cmd sim.Command) error
	GetState(ctx context.Context) (sim.AircraftState, error)
	Subscribe(ctx context.Context) (<-chan sim.AircraftState, func())
}

type Server struct {
	eng    Engine
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewServer(eng Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{eng: eng, mux: http.NewServeMux(), logger: logger.Named("api")}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.health)
	s.mux.HandleFunc("/state", s.state)

	s.mux.HandleFunc("/command/goto", s.command(decodeGoTo))
	s.mux.HandleFunc("/command/trajectory", s.command(decodeTrajectory))
	s.mux.HandleFunc("/command/hold", s.command(func(*http.Request) (sim.Command, map[string]any, error) {
		return sim.HoldCommand{Meta: sim.NewMeta()}, nil, nil
	}))
	s.mux.HandleFunc("/command/stop", s.command(func(*http.Request) (sim.Command, map[string]any, error) {
		return sim.StopCommand{Meta: sim.NewMeta()}, nil, nil
	}))

	s.mux.HandleFunc("/stream", s.streamSSE)
	s.mux.HandleFunc("/ws", s.streamWS)
}

// allow rejects the request with 405 unless it uses method.
func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	http.Error(w, method+" only", http.StatusMethodNotAllowed)
	return false
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) state(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	st, err := s.eng.GetState(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestTimeout)
		return
	}
	writeJSON(w, st)
}

// commandDecoder builds a command from a request body. extra is merged into
// the acceptance response.
type commandDecoder func(r *http.Request) (cmd sim.Command, extra map[string]any, err error)

func decodeGoTo(r *http.Request) (sim.Command, map[string]any, error) {
	cmd := sim.GoToCommand{Meta: sim.NewMeta()}
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		return nil, nil, errInvalidJSON
	}
	return cmd, nil, nil
}

func decodeTrajectory(r *http.Request) (sim.Command, map[string]any, error) {
	cmd := sim.TrajectoryCommand{Meta: sim.NewMeta()}
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		return nil, nil, errInvalidJSON
	}
	if len(cmd.Waypoints) == 0 {
		return nil, nil, errNoWaypoints
	}
	return cmd, map[string]any{"count": len(cmd.Waypoints)}, nil
}

// command serves POST requests that queue one engine command each.
func (s *Server) command(decode commandDecoder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allow(w, r, http.MethodPost) {
			return
		}

		cmd, extra, err := decode(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := s.eng.Submit(cmd); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, sim.ErrQueueFull) {
				status = http.StatusServiceUnavailable
			}
			http.Error(w, err.Error(), status)
			return
		}

		resp := map[string]any{
			"status": "accepted",
			"type":   cmd.Type(),
			"id":     cmd.CommandID().String(),
		}
		for k, v := range extra {
			resp[k] = v
		}
		writeJSON(w, resp)
	}
}

func (s *Server) streamSSE(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ctx := r.Context()
	ch, unsub := s.eng.Subscribe(ctx)
	defer unsub()

	fmt.Fprintf(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-ch:
			if !ok {
				return
			}
			b, err := json.Marshal(st)
			if err != nil {
				s.logger.Error("encode state", zap.Error(err))
				return
			}
			fmt.Fprintf(w, "event: state\n")
			fmt.Fprintf(w, "data: %s\n\n", b)
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
