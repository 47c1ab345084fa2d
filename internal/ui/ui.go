// Package ui provides the system tray shell of the checker.
package ui

import (
	"context"
	"errors"
	"time"

	"fyne.io/systray"

	"github.com/user/vexo-checker/internal/core"
	"github.com/user/vexo-checker/internal/i18n"
	"github.com/user/vexo-checker/internal/logger"
)

// ShutdownTimeout bounds DNS restoration on quit.
const ShutdownTimeout = 15 * time.Second

// StartAction is performed once the tray is ready.
type StartAction int

const (
	StartRefresh StartAction = iota
	StartConnectDNS
	StartDisconnectDNS
)

var (
	app         *core.App
	startAction StartAction

	// notice currently shown in the status line
	statusNotice *core.Notice

	mStatus    *systray.MenuItem
	mUser      *systray.MenuItem
	mSubState  *systray.MenuItem
	mTime      *systray.MenuItem
	mVolume    *systray.MenuItem
	mIP        *systray.MenuItem
	mRefresh   *systray.MenuItem
	mDNS       *systray.MenuItem
	mLanguage  *systray.MenuItem
	mLangs     = map[string]*systray.MenuItem{}
	mLink      *systray.MenuItem
	mLogs      *systray.MenuItem
	mClearLogs *systray.MenuItem
	mQuit      *systray.MenuItem
)

// Run shows the tray and blocks until Quit. The app must not have an
// event consumer yet; the tray becomes it.
func Run(a *core.App, action StartAction) {
	app = a
	startAction = action
	systray.Run(onReady, onExit)
}

func onReady() {
	lang := app.Language()
	systray.SetIcon(GetIcon("idle"))
	systray.SetTitle(i18n.T(lang, "window_title"))
	systray.SetTooltip(i18n.T(lang, "window_title"))

	mStatus = systray.AddMenuItem("", "")
	mStatus.Disable()
	systray.AddSeparator()

	mUser = systray.AddMenuItem("", "")
	mSubState = systray.AddMenuItem("", "")
	mTime = systray.AddMenuItem("", "")
	mVolume = systray.AddMenuItem("", "")
	mIP = systray.AddMenuItem("", "")
	for _, m := range []*systray.MenuItem{mUser, mSubState, mTime, mVolume, mIP} {
		m.Disable()
	}
	systray.AddSeparator()

	mRefresh = systray.AddMenuItem("", "")
	mDNS = systray.AddMenuItem("", "")
	mLink = systray.AddMenuItem("", "")
	systray.AddSeparator()

	mLanguage = systray.AddMenuItem("", "")
	langClicks := make(chan string)
	for _, code := range i18n.Languages {
		item := mLanguage.AddSubMenuItemCheckbox(i18n.Names[code], "", code == lang)
		mLangs[code] = item
		go func(code string, item *systray.MenuItem) {
			defer logger.Recover("languageItem")
			for range item.ClickedCh {
				langClicks <- code
			}
		}(code, item)
	}
	mLogs = systray.AddMenuItem("", "")
	mClearLogs = systray.AddMenuItem("", "")
	mQuit = systray.AddMenuItem("", "")

	app.SetStatusListener(func(s *core.StatusPayload) { updateUI(s) })
	updateUI(app.GetStatusPayload())

	ctx, cancel := context.WithCancel(context.Background())
	app.StartMonitor(ctx)

	switch {
	case startAction == StartDisconnectDNS:
		doToggleDNSTo(false)
	case app.URL() == "":
		showNotice(core.Notice{TitleKey: "warning_title", Key: "warning_add_link_first", Style: "warning", Modal: true})
	case startAction == StartConnectDNS:
		doToggleDNSTo(true)
	default:
		doRefresh()
	}

	go func() {
		defer logger.Recover("systray-menu-loop")
		defer cancel()

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		links := make(chan string, 1)

		for {
			select {
			case ev := <-app.Events():
				for _, n := range app.Handle(ev) {
					showNotice(n)
				}
			case <-mRefresh.ClickedCh:
				doRefresh()
			case <-mDNS.ClickedCh:
				doToggleDNS()
			case <-mLink.ClickedCh:
				lang, current := app.Language(), app.URL()
				logger.SafeGo("linkDialog", func() {
					if link, ok := promptLink(lang, current); ok {
						links <- link
					}
				})
			case link := <-links:
				doSetLink(link)
			case code := <-langClicks:
				doSetLanguage(code)
			case <-mLogs.ClickedCh:
				openLogFile()
			case <-mClearLogs.ClickedCh:
				if err := logger.ClearLogs(); err != nil {
					logger.Error("Failed to clear log: %v", err)
				}
			case <-ticker.C:
				tickIPWait()
			case <-mQuit.ClickedCh:
				systray.Quit()
				return
			}
		}
	}()
}

func onExit() {
	logger.Info("Vexo Checker shutting down")
	if app != nil {
		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		app.Shutdown(ctx)
	}
	logger.Close()
}

func doRefresh() {
	if _, err := app.StartFetch(core.FollowNone); err != nil {
		reportStartError(err)
		return
	}
	setStatusLine(&core.Notice{Key: "connecting_status", Style: "warning"})
}

func doToggleDNS() {
	if err := app.ToggleDNS(); err != nil {
		reportStartError(err)
	}
}

func doToggleDNSTo(connect bool) {
	var err error
	if connect {
		err = app.ConnectDNS()
	} else {
		err = app.DisconnectDNS()
	}
	if err != nil {
		reportStartError(err)
	}
}

func doSetLink(entered string) {
	link, changed := linkChange(app.URL(), entered)
	if !changed {
		return
	}
	if err := app.SetURL(link); err != nil {
		logger.Warning("Subscription link rejected: %v", err)
		showNotice(core.Notice{TitleKey: "error_title", Key: "error_url", Style: "danger", Modal: true})
		return
	}
	logger.Info("Subscription link updated")
	doRefresh()
}

func doSetLanguage(code string) {
	if err := app.SetLanguage(code); err != nil {
		logger.Error("Failed to set language: %v", err)
		return
	}
	for c, item := range mLangs {
		if c == code {
			item.Check()
		} else {
			item.Uncheck()
		}
	}
}

func reportStartError(err error) {
	switch {
	case errors.Is(err, core.ErrNoURL):
		showNotice(core.Notice{TitleKey: "warning_title", Key: "warning_add_link_first", Style: "warning", Modal: true})
	case errors.Is(err, core.ErrBusy):
		setStatusLine(&core.Notice{Key: "operation_in_progress", Style: "warning"})
	default:
		logger.Error("Operation failed to start: %v", err)
	}
}

func showNotice(n core.Notice) {
	if n.Modal {
		go func() {
			defer logger.Recover("showModal")
			showModal(n, app.Language())
		}()
		if n.Key == "" && n.Message == "" {
			return
		}
	}
	setStatusLine(&n)
}

func setStatusLine(n *core.Notice) {
	statusNotice = n
	mStatus.SetTitle(n.Text(app.Language()))
}

// tickIPWait counts the IP wait notice down.
func tickIPWait() {
	if statusNotice == nil || statusNotice.Key != "ip_wait_notice" {
		return
	}
	left := int(app.IPWaitRemaining() / time.Second)
	if left <= 0 {
		setStatusLine(&core.Notice{Key: "success_status", Style: "success"})
		return
	}
	setStatusLine(&core.Notice{Key: "ip_wait_notice", Params: []any{left}, Style: "warning"})
}

func updateUI(status *core.StatusPayload) {
	defer logger.Recover("updateUI")
	if status == nil {
		return
	}

	v := Render(status)
	lang := status.Language

	systray.SetIcon(GetIcon(v.Icon))
	systray.SetTooltip(v.Tooltip)
	mUser.SetTitle(v.Username)
	mSubState.SetTitle(v.Status)
	mTime.SetTitle(v.Time)
	mVolume.SetTitle(v.Volume)
	mIP.SetTitle(v.IP)

	mRefresh.SetTitle(v.Refresh)
	setEnabled(mRefresh, v.RefreshEnabled)
	mDNS.SetTitle(v.DNSButton)
	setEnabled(mDNS, v.DNSEnabled)

	mLanguage.SetTitle(i18n.T(lang, "menu_language"))
	mLink.SetTitle(i18n.T(lang, "menu_link"))
	mLogs.SetTitle(i18n.T(lang, "menu_logs"))
	mClearLogs.SetTitle(i18n.T(lang, "menu_clear_logs"))
	mQuit.SetTitle(i18n.T(lang, "menu_quit"))

	if statusNotice != nil {
		mStatus.SetTitle(statusNotice.Text(lang))
	}
}

func setEnabled(m *systray.MenuItem, enabled bool) {
	if enabled {
		m.Enable()
	} else {
		m.Disable()
	}
}
