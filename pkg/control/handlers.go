package control

import (
	"net/http"
	"time"

	"github.com/deckmock/deckmockd/pkg/deck"
	"github.com/deckmock/deckmockd/pkg/httputil"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Status    string `json:"status"`
	Uptime    int64  `json:"uptime"`
	DeckCount int    `json:"deckCount"`
}

// DeckListResponse is the body of GET /decks.
type DeckListResponse struct {
	Decks []deck.Descriptor `json:"decks"`
	Count int               `json:"count"`
}

// ResetResponse is the body of POST /reset.
type ResetResponse struct {
	Decks   int    `json:"decks"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Status:    "running",
		Uptime:    int64(s.engine.Uptime()),
		DeckCount: s.engine.Store().Count(),
	}
	if !s.engine.IsRunning() {
		resp.Status = "stopped"
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	decks := s.engine.Store().List()
	httputil.WriteJSON(w, http.StatusOK, DeckListResponse{
		Decks: decks,
		Count: len(decks),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	store := s.engine.Store()
	store.Reset()

	s.log.Info("store reset to seed state", "decks", store.Count())
	httputil.WriteJSON(w, http.StatusOK, ResetResponse{
		Decks:   store.Count(),
		Message: "store reset to seed state",
	})
}
