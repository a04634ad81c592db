// Package health runs periodic reachability probes against remote
// backends and caches the result for the health endpoint.
package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const pingTimeout = 5 * time.Second

// Checker polls a single Pinger and keeps the last observed state.
type Checker struct {
	name    string
	pinger  Pinger
	healthy atomic.Int32
	log     zerolog.Logger
}

// NewChecker builds a checker for one backend. The checker starts out
// healthy so a slow first probe does not flap the endpoint at boot.
func NewChecker(log zerolog.Logger, name string, p Pinger) *Checker {
	c := &Checker{name: name, pinger: p, log: log}
	c.healthy.Store(1)
	return c
}

// Name returns the backend name used in health reports.
func (c *Checker) Name() string { return c.name }

// IsHealthy returns the cached state from the last probe.
func (c *Checker) IsHealthy() bool { return c.healthy.Load() == 1 }

// Start probes immediately, then on every tick until ctx is cancelled.
// State transitions are logged once per flip, not per probe.
func (c *Checker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := int32(1)
	eval := func() {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := c.pinger.HealthPing(pctx)
		cancel()

		if err != nil {
			c.healthy.Store(0)
		} else {
			c.healthy.Store(1)
		}
		cur := c.healthy.Load()
		if cur != prev {
			if cur == 1 {
				c.log.Info().Str("backend", c.name).Msg("backend health: UP")
			} else {
				c.log.Error().Str("backend", c.name).Err(err).Msg("backend health: DOWN")
			}
			prev = cur
		}
	}

	eval()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			eval()
		}
	}
}
