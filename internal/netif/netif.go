// Package netif lists the network interfaces that are currently up, using
// a chain of platform tools tried in order.
package netif

import (
	"context"

	"github.com/user/vexo-checker/internal/logger"
)

// Strategy is one way of listing active interfaces.
type Strategy struct {
	Name string
	Run  func(ctx context.Context) ([]string, error)
}

// Enumerator tries its strategies in order and keeps the first non-empty answer.
type Enumerator struct {
	strategies []Strategy
}

// NewEnumerator creates an enumerator over the given strategies.
func NewEnumerator(strategies ...Strategy) *Enumerator {
	return &Enumerator{strategies: strategies}
}

// Active returns the names of the active interfaces in the order reported
// by the first strategy that found any. Results are never merged across
// strategies and never cached. A failing strategy counts as "nothing".
func (e *Enumerator) Active(ctx context.Context) []string {
	log := logger.WithComponent("netif")
	for _, s := range e.strategies {
		names, err := s.Run(ctx)
		if err != nil {
			log.Debugf("%s: %v", s.Name, err)
			continue
		}
		if len(names) > 0 {
			log.Debugf("%s: %v", s.Name, names)
			return names
		}
	}
	log.Debug("No active interfaces found")
	return []string{}
}

// Lister is satisfied by Enumerator.
type Lister interface {
	Active(ctx context.Context) []string
}
