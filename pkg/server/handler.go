package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/deckmock/deckmockd/pkg/deck"
	"github.com/deckmock/deckmockd/pkg/httputil"
	"github.com/deckmock/deckmockd/pkg/logging"
)

// maxBodySize caps deck save payloads (10 MB). Prevents accidental huge
// uploads from a misbehaving page; real decks are a few KB.
const maxBodySize = 10 << 20

// route maps one method + exact path to its handler.
type route struct {
	method string
	path   string
	handle http.HandlerFunc
}

// Handler dispatches requests against the fixed route table.
type Handler struct {
	store    *deck.Store
	htmlFile string
	log      *slog.Logger
	routes   []route
}

// NewHandler creates a Handler serving the given store and editor page.
func NewHandler(store *deck.Store, htmlFile string) *Handler {
	h := &Handler{
		store:    store,
		htmlFile: htmlFile,
		log:      logging.Nop(),
	}
	h.routes = []route{
		{http.MethodGet, "/", h.handleEditorPage},
		{http.MethodGet, "/deck-editor", h.handleEditorPage},
		{http.MethodGet, "/api/decks", h.handleListDecks},
		{http.MethodGet, "/api/deck", h.handleGetDeck},
		{http.MethodPost, "/api/deck", h.handleSaveDeck},
		{http.MethodPost, "/api/rename-deck", h.handleRenameDeck},
	}
	return h
}

// SetLogger sets the operational logger.
func (h *Handler) SetLogger(log *slog.Logger) {
	if log != nil {
		h.log = log
	}
}

// ServeHTTP evaluates the route table in order and falls back to a
// plain-text 404 for any other method/path combination.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for _, rt := range h.routes {
		if r.Method == rt.method && r.URL.Path == rt.path {
			rt.handle(w, r)
			return
		}
	}
	httputil.WriteText(w, http.StatusNotFound, "Not found")
}

// handleEditorPage serves the deck editor HTML from disk. The file is read
// on every request so edits show up on reload. A missing asset fails only
// this request.
func (h *Handler) handleEditorPage(w http.ResponseWriter, r *http.Request) {
	body, err := os.ReadFile(h.htmlFile)
	if err != nil {
		h.log.Warn("editor page unreadable", "file", h.htmlFile, "error", err)
		httputil.WriteText(w, http.StatusNotFound, "Not found")
		return
	}
	httputil.WriteHTML(w, http.StatusOK, body)
}

func (h *Handler) handleListDecks(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.store.List())
}

func (h *Handler) handleGetDeck(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		httputil.WriteText(w, http.StatusNotFound, "Deck not found")
		return
	}
	content, ok := h.store.Content(path)
	if !ok {
		httputil.WriteText(w, http.StatusNotFound, "Deck not found")
		return
	}
	httputil.WriteText(w, http.StatusOK, content)
}

func (h *Handler) handleSaveDeck(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		httputil.WriteText(w, http.StatusBadRequest, "Missing path")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Warn("failed to read deck body", "path", path, "error", err)
		httputil.WriteText(w, http.StatusBadRequest, "Bad request")
		return
	}

	created := h.store.Save(path, string(body))
	h.log.Info("deck saved", "path", path, "bytes", len(body), "created", created)
	httputil.WriteText(w, http.StatusOK, "OK")
}

func (h *Handler) handleRenameDeck(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		httputil.WriteText(w, http.StatusBadRequest, "Missing params")
		return
	}

	if err := h.store.Rename(from, to); err != nil {
		var notFound *deck.NotFoundError
		var conflict *deck.ConflictError
		switch {
		case errors.As(err, &notFound):
			httputil.WriteText(w, http.StatusNotFound, "Not found")
		case errors.As(err, &conflict):
			httputil.WriteText(w, http.StatusConflict, "Already exists")
		default:
			httputil.WriteText(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	h.log.Info("deck renamed", "from", from, "to", to)
	httputil.WriteText(w, http.StatusOK, "OK")
}
