// Package http wires the assistant endpoints
package http

import (
	"net/http"

	"assistant/internal/modkit/httpkit"
	"assistant/internal/services/assistant/domain"
)

type handlers struct {
	query   domain.QueryPort
	history domain.HistoryPort
}

// MountRoutes attaches the assistant endpoints to r
func MountRoutes(r httpkit.Router, query domain.QueryPort, history domain.HistoryPort) {
	h := &handlers{query: query, history: history}

	httpkit.PostJSON(r, "/query", h.postQuery)
	httpkit.Get(r, "/history/{userId}", h.getHistory)
}

func (h *handlers) postQuery(r *http.Request, in domain.QueryInput) (any, error) {
	if in.UserID == "" {
		in.UserID = r.Header.Get("X-User-ID")
	}
	out, err := h.query.Query(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (h *handlers) getHistory(r *http.Request) (any, error) {
	in := domain.HistoryInput{UserID: httpkit.Param(r, "userId")}
	entries, err := h.history.History(r.Context(), in)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return entries, nil
}
