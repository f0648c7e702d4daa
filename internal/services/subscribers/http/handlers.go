// Package http wires the subscribe endpoint
package http

import (
	"net/http"

	"assistant/internal/modkit/httpkit"
	"assistant/internal/services/subscribers/domain"
)

// MountRoutes attaches the subscribe endpoint to r
func MountRoutes(r httpkit.Router, svc domain.SubscribePort) {
	httpkit.PostJSON(r, "/", func(req *http.Request, in domain.SubscribeInput) (any, error) {
		return svc.Subscribe(req.Context(), in)
	})
}
