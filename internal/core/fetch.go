package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/user/vexo-checker/internal/logger"
	"github.com/user/vexo-checker/internal/workflow"
)

// StartFetch launches a check in the background and arms the watchdog.
// A check already in flight is superseded: its result will be discarded.
// FollowConnectDNS chains a DNS connect onto the check.
func (a *App) StartFetch(followUp FollowUp) (RunToken, error) {
	url := a.settings.LastUsedURL()
	if url == "" {
		return RunToken{}, ErrNoURL
	}
	lang := a.Language()

	a.mu.Lock()
	if a.active.Seq != 0 && a.followUp > followUp {
		followUp = a.followUp
	}
	a.seq++
	token := RunToken{Seq: a.seq, ID: uuid.New()}
	a.active = token
	a.followUp = followUp
	if a.watchdog != nil {
		a.watchdog.Stop()
	}
	a.watchdog = time.AfterFunc(a.timings.Watchdog, func() {
		a.post(TimeoutEvent{Token: token})
	})
	refreshHosts := !a.dnsConnected && a.hosts != nil
	a.mu.Unlock()

	log := logger.WithComponent("core").WithField("run", token.ID.String())
	log.Infof("Check #%d started", token.Seq)

	if refreshHosts {
		logger.SafeGo("refreshHosts", func() {
			if _, err := a.hosts.Refresh(a.ctx); err != nil {
				log.Warnf("Host cache not saved: %v", err)
			}
		})
	}

	logger.SafeGo("fetch", func() {
		res := a.workflow.Run(a.ctx, url, lang)
		a.post(RunEvent{Token: token, Result: res})
	})

	a.broadcastStatus()
	return token, nil
}

// Handle applies ev to the state and returns the notices to show. Results
// of superseded or timed-out checks return nil and change nothing.
func (a *App) Handle(ev Event) []Notice {
	var notices []Notice
	switch ev := ev.(type) {
	case RunEvent:
		notices = a.handleRun(ev)
	case TimeoutEvent:
		notices = a.handleTimeout(ev)
	case DNSEvent:
		notices = a.handleDNS(ev)
	case DNSStatusEvent:
		a.handleDNSStatus(ev)
	}
	a.broadcastStatus()
	return notices
}

// finishRun clears the active check if tok is still the active one.
func (a *App) finishRun(tok RunToken) (FollowUp, bool) {
	if a.active.Seq == 0 || tok.Seq != a.active.Seq {
		return FollowNone, false
	}
	if a.watchdog != nil {
		a.watchdog.Stop()
		a.watchdog = nil
	}
	followUp := a.followUp
	a.active = RunToken{}
	a.followUp = FollowNone
	return followUp, true
}

func (a *App) handleRun(ev RunEvent) []Notice {
	log := logger.WithComponent("core").WithField("run", ev.Token.ID.String())

	a.mu.Lock()
	followUp, ok := a.finishRun(ev.Token)
	if !ok {
		a.mu.Unlock()
		log.Debugf("Discarding stale result of check #%d", ev.Token.Seq)
		return nil
	}

	res := ev.Result
	if !res.Success {
		a.record = nil
		if followUp == FollowConnectDNS {
			a.busy = false
		}
		a.mu.Unlock()

		log.Warnf("Check #%d failed: %s", ev.Token.Seq, res.Err.Kind)
		n := errorNotice("error_unknown")
		n.Message = res.Err.Message
		return []Notice{n}
	}

	a.record = res.Record
	notice := Notice{Key: "success_status", Style: workflow.StyleSuccess}
	if st := res.IPStatus; st != nil {
		if st.Kind == workflow.IPChanged {
			a.ipWaitUntil = time.Now().Add(a.timings.IPWait)
			notice = Notice{
				Key:    "ip_wait_notice",
				Params: []any{int(a.timings.IPWait / time.Second)},
				Style:  workflow.StyleWarning,
			}
		} else {
			notice = Notice{Key: st.MessageKey(), Params: st.Params(), Style: st.Style()}
		}
	}
	a.mu.Unlock()

	log.Infof("Check #%d done: user=%s status=%s", ev.Token.Seq, res.Record.Username, res.Record.Status())
	a.settings.SetLastFetched(res.Record)
	if err := a.settings.Save(); err != nil {
		log.Errorf("Failed to save settings: %v", err)
	}

	notices := []Notice{notice}
	if followUp == FollowConnectDNS {
		if n := a.proceedConnect(); n != nil {
			notices = append(notices, *n)
		}
	}
	return notices
}

func (a *App) handleTimeout(ev TimeoutEvent) []Notice {
	a.mu.Lock()
	followUp, ok := a.finishRun(ev.Token)
	if ok && followUp == FollowConnectDNS {
		a.busy = false
	}
	a.mu.Unlock()

	if !ok {
		return nil
	}
	logger.WithComponent("core").WithField("run", ev.Token.ID.String()).
		Warnf("Check #%d timed out after %s", ev.Token.Seq, a.timings.Watchdog)
	return []Notice{errorNotice("error_timeout")}
}

// IPWaitRemaining returns how long the user should wait for a changed IP
// to take effect, or zero.
func (a *App) IPWaitRemaining() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	left := time.Until(a.ipWaitUntil)
	if left < 0 {
		return 0
	}
	return left.Round(time.Second)
}
