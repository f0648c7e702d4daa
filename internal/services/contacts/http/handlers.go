// Package http wires the contacts endpoints
package http

import (
	"net/http"

	"assistant/internal/modkit/httpkit"
	"assistant/internal/services/contacts/domain"
)

type handlers struct {
	svc domain.CRUDPort
}

// MountRoutes attaches the contacts endpoints to r
func MountRoutes(r httpkit.Router, svc domain.CRUDPort) {
	h := &handlers{svc: svc}

	httpkit.Get(r, "/", h.list)
	httpkit.PostJSONCreated(r, "/", h.create)
	httpkit.PutJSON(r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

func (h *handlers) list(r *http.Request) (any, error) {
	userID := r.URL.Query().Get("userId")
	out, err := h.svc.List(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Contact{}
	}
	return out, nil
}

func (h *handlers) create(r *http.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

func (h *handlers) update(r *http.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), httpkit.Param(r, "id"), in)
}

func (h *handlers) remove(r *http.Request) error {
	return h.svc.Delete(r.Context(), httpkit.Param(r, "id"), r.URL.Query().Get("userId"))
}
