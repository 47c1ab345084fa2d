// Package core owns the checker's application state: the stored
// subscription, the in-flight check, and whether DNS is switched.
//
// Background work never touches state directly. It posts an Event to the
// channel returned by Events, and the single consumer applies it with
// Handle.
package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/user/vexo-checker/internal/config"
	"github.com/user/vexo-checker/internal/dns"
	"github.com/user/vexo-checker/internal/logger"
	"github.com/user/vexo-checker/internal/subscription"
	"github.com/user/vexo-checker/internal/workflow"
)

var (
	// ErrNoURL is returned when no subscription link has been saved yet.
	ErrNoURL = errors.New("no subscription URL configured")
	// ErrBusy is returned while a DNS operation is in progress.
	ErrBusy = errors.New("another operation is in progress")
)

// Workflow runs one subscription check.
type Workflow interface {
	Run(ctx context.Context, subURL, lang string) workflow.Result
}

// DNS switches the system resolver.
type DNS interface {
	CheckStatus(ctx context.Context, target string) bool
	Set(ctx context.Context, primary, secondary string) dns.SetResult
	Unset(ctx context.Context) dns.UnsetResult
	UnsetSync(ctx context.Context) bool
}

// HostRefresher caches the IP-echo hosts' addresses.
type HostRefresher interface {
	Refresh(ctx context.Context) (bool, error)
}

// ProbeFunc checks that a DNS server answers.
type ProbeFunc func(ctx context.Context, server string) error

// Timings controls the timers owned by App.
type Timings struct {
	Watchdog time.Duration
	DNSPoll  time.Duration
	IPWait   time.Duration
}

// DefaultTimings are used for zero fields.
var DefaultTimings = Timings{
	Watchdog: 20 * time.Second,
	DNSPoll:  3 * time.Second,
	IPWait:   60 * time.Second,
}

// Deps are the collaborators of App. Hosts and Probe are optional.
type Deps struct {
	Settings *config.Manager
	Workflow Workflow
	DNS      DNS
	Hosts    HostRefresher
	Probe    ProbeFunc
	Timings  Timings
}

// App is the application state.
type App struct {
	mu       sync.Mutex
	settings *config.Manager
	workflow Workflow
	dns      DNS
	hosts    HostRefresher
	probe    ProbeFunc
	timings  Timings

	ctx      context.Context
	cancel   context.CancelFunc
	events   chan Event
	stopOnce sync.Once

	seq      uint64
	active   RunToken
	followUp FollowUp
	watchdog *time.Timer

	record       *subscription.Record
	busy         bool
	dnsGen       uint64
	dnsConnected bool
	ipWaitUntil  time.Time

	statusListener StatusListener
}

// New creates the application state. The stored subscription record, if
// any, is restored from settings.
func New(deps Deps) *App {
	t := deps.Timings
	if t.Watchdog <= 0 {
		t.Watchdog = DefaultTimings.Watchdog
	}
	if t.DNSPoll <= 0 {
		t.DNSPoll = DefaultTimings.DNSPoll
	}
	if t.IPWait <= 0 {
		t.IPWait = DefaultTimings.IPWait
	}

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		settings: deps.Settings,
		workflow: deps.Workflow,
		dns:      deps.DNS,
		hosts:    deps.Hosts,
		probe:    deps.Probe,
		timings:  t,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
		record:   deps.Settings.Get().LastFetched,
	}
	logger.Info("Application state initialized")
	return a
}

// Events returns the channel background work posts to. It has exactly one
// consumer, which must pass every event to Handle.
func (a *App) Events() <-chan Event {
	return a.events
}

// post delivers ev unless the app is shutting down.
func (a *App) post(ev Event) {
	select {
	case a.events <- ev:
	case <-a.ctx.Done():
	}
}

// Language returns the UI language.
func (a *App) Language() string {
	return a.settings.Get().Language
}

// SetLanguage stores and persists the UI language.
func (a *App) SetLanguage(lang string) error {
	if err := a.settings.Update(func(s *config.Settings) { s.Language = lang }); err != nil {
		return err
	}
	a.broadcastStatus()
	return a.settings.Save()
}

// URL returns the stored subscription link.
func (a *App) URL() string {
	return a.settings.LastUsedURL()
}

// SetURL validates, stores and persists the subscription link.
func (a *App) SetURL(raw string) error {
	if err := validateURL(raw); err != nil {
		return err
	}
	if err := a.settings.Update(func(s *config.Settings) { s.LastUsedURL = raw }); err != nil {
		return err
	}
	return a.settings.Save()
}

// LastRecord returns a copy of the current subscription record, or nil.
func (a *App) LastRecord() *subscription.Record {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.record == nil {
		return nil
	}
	c := *a.record
	return &c
}

// DNSConnected reports whether DNS is believed to point at the
// subscription's server.
func (a *App) DNSConnected() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dnsConnected
}

// OperationInProgress reports whether a DNS operation is running.
func (a *App) OperationInProgress() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.busy
}

// Fetching reports whether a check is in flight.
func (a *App) Fetching() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active.Seq != 0
}
