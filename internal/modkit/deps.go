// Package modkit provides module wiring and core deps
package modkit

import (
	"assistant/internal/modkit/repokit"
	"assistant/internal/platform/clock"
	"assistant/internal/platform/config"
	"assistant/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   *logger.Logger
	Cfg   config.Conf
	DB    repokit.TxRunner
	Clock clock.Clock
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional stores
func (d Deps) ZeroOK() bool { return true }
