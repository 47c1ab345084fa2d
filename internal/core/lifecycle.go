package core

import (
	"context"
	"time"

	"github.com/user/vexo-checker/internal/logger"
)

// StartMonitor polls the DNS status until ctx or the app is done. Polls are
// skipped while a DNS operation is in progress.
func (a *App) StartMonitor(ctx context.Context) {
	logger.SafeGo("dnsMonitor", func() {
		ticker := time.NewTicker(a.timings.DNSPoll)
		defer ticker.Stop()

		for {
			a.pollDNS(ctx)
			select {
			case <-ctx.Done():
				return
			case <-a.ctx.Done():
				return
			case <-ticker.C:
			}
		}
	})
}

func (a *App) pollDNS(ctx context.Context) {
	a.mu.Lock()
	if a.busy {
		a.mu.Unlock()
		return
	}
	gen := a.dnsGen
	target := ""
	if a.record != nil {
		target = a.record.DNS1
	}
	a.mu.Unlock()

	a.post(DNSStatusEvent{Connected: a.dns.CheckStatus(ctx, target), Gen: gen})
}

// Shutdown stops background work, restores DNS if it was switched or a
// DNS operation was cut short, and saves settings. Safe to call more than
// once.
func (a *App) Shutdown(ctx context.Context) {
	a.stopOnce.Do(func() {
		logger.Info("Shutting down...")
		a.cancel()

		a.mu.Lock()
		if a.watchdog != nil {
			a.watchdog.Stop()
			a.watchdog = nil
		}
		// An interrupted Set may have switched some interfaces already.
		restore := a.dnsConnected || a.busy
		a.mu.Unlock()

		if restore {
			if a.dns.UnsetSync(ctx) {
				logger.Info("DNS restored on exit")
				a.mu.Lock()
				a.dnsConnected = false
				a.mu.Unlock()
			} else {
				logger.Warning("DNS could not be restored on exit")
			}
		}

		if err := a.settings.Save(); err != nil {
			logger.Error("Failed to save settings: %v", err)
		}
	})
}
