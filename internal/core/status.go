package core

import (
	"time"

	"github.com/user/vexo-checker/internal/subscription"
)

// StatusPayload is a snapshot of the state for the presentation layer.
type StatusPayload struct {
	Language     string
	Record       *subscription.Record
	Fetching     bool
	Busy         bool
	DNSConnected bool
	IPWait       time.Duration
}

// StatusListener is called after every state change.
type StatusListener func(status *StatusPayload)

// SetStatusListener sets the listener.
func (a *App) SetStatusListener(listener StatusListener) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.statusListener = listener
}

// GetStatusPayload returns the current state.
func (a *App) GetStatusPayload() *StatusPayload {
	status := &StatusPayload{
		Language: a.Language(),
		Record:   a.LastRecord(),
		IPWait:   a.IPWaitRemaining(),
	}

	a.mu.Lock()
	status.Fetching = a.active.Seq != 0
	status.Busy = a.busy
	status.DNSConnected = a.dnsConnected
	a.mu.Unlock()
	return status
}

func (a *App) broadcastStatus() {
	a.mu.Lock()
	listener := a.statusListener
	a.mu.Unlock()
	if listener != nil {
		listener(a.GetStatusPayload())
	}
}
