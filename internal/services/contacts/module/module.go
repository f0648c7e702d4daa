// Package module wires the contacts service into the API using modkit
package module

import (
	"net/http"

	"assistant/internal/modkit"
	"assistant/internal/modkit/httpkit"
	str "assistant/internal/platform/strings"
	"assistant/internal/services/contacts/domain"
	chttp "assistant/internal/services/contacts/http"
	"assistant/internal/services/contacts/repo"
	"assistant/internal/services/contacts/service"
)

// Ports exposed by the contacts module
type Ports struct {
	CRUD domain.CRUDPort
}

// Module implements the contacts service module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the contacts module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("contacts"),
		modkit.WithPrefix("/contacts"),
	}, opts...)...)

	svc := service.New(deps.DB, repo.NewSQL())

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}
	m.ports = Ports{CRUD: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		chttp.MountRoutes(r, m.ports.CRUD)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }
