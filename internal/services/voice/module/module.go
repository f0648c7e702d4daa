// Package module wires the voice gateway into the API using modkit
package module

import (
	"net/http"

	"assistant/internal/modkit"
	"assistant/internal/modkit/httpkit"
	str "assistant/internal/platform/strings"
	apptdomain "assistant/internal/services/appointments/domain"
	asstdomain "assistant/internal/services/assistant/domain"
	"assistant/internal/services/voice/ws"
)

// Ports the voice module consumes from its siblings
type Ports struct {
	Query        asstdomain.QueryPort
	Appointments apptdomain.CRUDPort
}

// Module implements the voice service module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the voice module on top of the assistant and
// appointments ports supplied via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("voice"),
		modkit.WithPrefix("/voice"),
	}, opts...)...)

	// guardrails against incorrect wiring
	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("voice module: expected WithPorts(voice/module.Ports)")
	}
	if ports.Query == nil || ports.Appointments == nil {
		panic("voice module: Ports missing Query or Appointments")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     ports,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		r.Get("/", ws.Handler(ws.Deps{
			Log:          m.deps.Log,
			Query:        m.ports.Query,
			Appointments: m.ports.Appointments,
			Clock:        m.deps.Clock,
		}))
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

// Ports returns the sibling port set the gateway runs on
func (m *Module) Ports() any { return m.ports }
