// internal/httpserver/server.go
//
// HTTP server wiring for the Higher or Lower front end.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/" (embedded page), "/health".
//   - Game endpoints: POST /game/start, /game/guess, /game/restart; GET /game/view, /scores.
//
// Notes:
//   - One Session and one Board per process; every request shares them.
//   - Button and Enter-key submission both arrive as POST /game/guess.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Azza132/Higher-or-Lower-Guessing-Game/assets"
	"github.com/Azza132/Higher-or-Lower-Guessing-Game/internal/game"
	"github.com/Azza132/Higher-or-Lower-Guessing-Game/internal/score"
)

const defaultTimeout = 10 * time.Second

// Server bundles the router and the controller over the game core.
type Server struct {
	r   *chi.Mux
	ctl *controller
}

// New constructs a Server, installs middleware, and registers routes.
// A non-positive timeout uses 10s.
func New(session *game.Session, board *score.Board, timeout time.Duration) *Server {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	s := &Server{r: chi.NewRouter(), ctl: newController(session, board)}

	// --- middleware ---
	s.r.Use(chimw.RequestID)        // add X-Request-ID
	s.r.Use(accessLog)              // debug-level request log
	s.r.Use(chimw.Recoverer)        // recover from panics
	s.r.Use(chimw.Timeout(timeout)) // bound handler time
	s.r.Use(jsonContentType)        // default JSON responses

	// --- page + diagnostics ---
	s.r.Get("/", s.handleIndex)
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/game", func(r chi.Router) {
		r.Post("/start", s.handleStart)
		r.Post("/guess", s.handleGuess)
		r.Post("/restart", s.handleRestart)
		r.Get("/view", s.handleView)
	})
	s.r.Get("/scores", s.handleScores)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ PAGE ---------------------------------------

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := assets.Index()
	if err != nil {
		log.Error().Err(err).Msg("read index page")
		writeError(w, http.StatusInternalServerError, "page_missing")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// ------------------------------ GAME ---------------------------------------

// startReq/Res payloads for POST /game/start.
type startReq struct {
	Difficulty string `json:"difficulty"` // "Easy" | "Medium" | "Hard", any case
}
type startRes struct {
	Round game.RoundInfo `json:"round"`
	View  View           `json:"view"`
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	d, err := game.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_difficulty")
		return
	}
	info, v := s.ctl.start(d)
	writeJSON(w, http.StatusOK, startRes{Round: info, View: v})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	Guess string `json:"guess"`
}
type guessRes struct {
	Outcome game.Outcome `json:"outcome"`
	Score   score.Result `json:"score,omitempty"` // set only on a win
	View    View         `json:"view"`
}

// handleGuess never fails on the guess text itself; malformed or
// out-of-range input is an outcome, not an HTTP error.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	out, rec, v := s.ctl.guess(req.Guess)
	writeJSON(w, http.StatusOK, guessRes{Outcome: out, Score: rec, View: v})
}

type viewRes struct {
	View View `json:"view"`
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewRes{View: s.ctl.restart()})
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewRes{View: s.ctl.view()})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ctl.scores())
}

// ------------------------------ helpers ------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
