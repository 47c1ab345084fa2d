package core

import (
	"github.com/user/vexo-checker/internal/dns"
	"github.com/user/vexo-checker/internal/logger"
	"github.com/user/vexo-checker/internal/subscription"
	"github.com/user/vexo-checker/internal/workflow"
)

// ConnectDNS refreshes the subscription and, if it is active, switches DNS
// to the subscription's servers. The outcome arrives as events.
func (a *App) ConnectDNS() error {
	a.mu.Lock()
	if a.busy {
		a.mu.Unlock()
		logger.Warning("DNS connect ignored: operation in progress")
		return ErrBusy
	}
	a.busy = true
	a.dnsGen++
	a.mu.Unlock()

	if _, err := a.StartFetch(FollowConnectDNS); err != nil {
		a.mu.Lock()
		a.busy = false
		a.mu.Unlock()
		return err
	}
	return nil
}

// proceedConnect runs after the refresh chained by ConnectDNS succeeded.
func (a *App) proceedConnect() *Notice {
	rec := a.LastRecord()
	log := logger.WithComponent("core")

	if rec == nil || rec.Status() != subscription.StatusActive {
		a.setBusy(false)
		log.Info("DNS connect denied: subscription is not active")
		n := warningNotice("dns_connect_denied_status")
		return &n
	}

	if err := validateDNSRecord(rec); err != nil {
		a.setBusy(false)
		log.Warnf("DNS connect refused: %v", err)
		n := errorNotice(dns.ErrSetFailed)
		return &n
	}

	logger.SafeGo("connectDNS", func() {
		if a.probe != nil {
			if err := a.probe(a.ctx, rec.DNS1); err != nil {
				log.Warnf("DNS server %s did not answer: %v", rec.DNS1, err)
			}
		}
		res := a.dns.Set(a.ctx, rec.DNS1, rec.DNS2)
		a.post(DNSEvent{Connect: true, Set: res})
	})
	return nil
}

// DisconnectDNS restores automatic DNS in the background.
func (a *App) DisconnectDNS() error {
	a.mu.Lock()
	if a.busy {
		a.mu.Unlock()
		logger.Warning("DNS disconnect ignored: operation in progress")
		return ErrBusy
	}
	a.busy = true
	a.dnsGen++
	a.mu.Unlock()
	a.broadcastStatus()

	logger.SafeGo("disconnectDNS", func() {
		res := a.dns.Unset(a.ctx)
		a.post(DNSEvent{Unset: res})
	})
	return nil
}

// ToggleDNS connects or disconnects depending on the current state.
func (a *App) ToggleDNS() error {
	if a.DNSConnected() {
		return a.DisconnectDNS()
	}
	return a.ConnectDNS()
}

func (a *App) handleDNS(ev DNSEvent) []Notice {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.busy = false

	if ev.Connect {
		if !ev.Set.Success {
			a.dnsConnected = false
			return []Notice{errorNotice(ev.Set.ErrKind)}
		}
		a.dnsConnected = true
		return []Notice{{
			TitleKey: "dns_set_success_title",
			Key:      "dns_set_success_message",
			Params:   []any{ev.Set.DNSIP},
			Style:    workflow.StyleSuccess,
			Modal:    true,
		}}
	}

	if !ev.Unset.Success {
		a.dnsConnected = true
		return []Notice{errorNotice(ev.Unset.ErrKind)}
	}
	a.dnsConnected = false
	return []Notice{{
		TitleKey: "dns_unset_success_title",
		Key:      "dns_unset_success_message",
		Style:    workflow.StyleSuccess,
		Modal:    true,
	}}
}

func (a *App) handleDNSStatus(ev DNSStatusEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	// A result computed before an operation started is stale.
	if a.busy || ev.Gen != a.dnsGen {
		return
	}
	if a.dnsConnected != ev.Connected {
		logger.Info("DNS status changed: connected=%v", ev.Connected)
	}
	a.dnsConnected = ev.Connected
}

func (a *App) setBusy(v bool) {
	a.mu.Lock()
	a.busy = v
	a.mu.Unlock()
}
