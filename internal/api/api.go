package api

import (
	"log/slog"
	"net/http"

	"careproxy/internal/store"

	"github.com/go-chi/chi/v5"
)

// QueryService exposes read-only access to saved conversations. Malformed
// persisted documents surface as 500s; they are never silently recovered.
type QueryService struct {
	store *store.Store
}

func NewQueryService(s *store.Store) *QueryService {
	return &QueryService{store: s}
}

func (s *QueryService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Route("/api", func(r chi.Router) {
		r.Get("/latest", RestHandler(s.GetLatest))
		r.Get("/history", RestHandler(s.GetHistory))
	})
}

// GetLatest returns the most recently saved conversation, or an empty object
// when nothing has been saved yet.
func (s *QueryService) GetLatest(r *http.Request) (any, error) {
	record, ok, err := s.store.Latest()
	if err != nil {
		slog.Error("error reading latest conversation", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error reading latest conversation")
	}

	if !ok {
		return struct{}{}, nil
	}
	return record, nil
}

type historyParams struct {
	Limit int `schema:"limit"`
}

// GetHistory returns saved conversations oldest first, capped at 10. An
// optional limit query param returns only the most recent N entries.
func (s *QueryService) GetHistory(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[historyParams](r)
	if err != nil {
		return nil, err
	}

	if params.Limit < 0 {
		return nil, CodedErrorf(http.StatusBadRequest, "limit must be positive")
	}

	history, err := s.store.History()
	if err != nil {
		slog.Error("error reading conversation history", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error reading conversation history")
	}

	if params.Limit > 0 && params.Limit < len(history) {
		history = history[len(history)-params.Limit:]
	}

	return history, nil
}
