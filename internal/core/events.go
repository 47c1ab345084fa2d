package core

import (
	"github.com/google/uuid"

	"github.com/user/vexo-checker/internal/dns"
	"github.com/user/vexo-checker/internal/i18n"
	"github.com/user/vexo-checker/internal/workflow"
)

// RunToken identifies one check. Seq orders runs; ID correlates log lines.
type RunToken struct {
	Seq uint64
	ID  uuid.UUID
}

// FollowUp is work chained after a successful check.
type FollowUp int

const (
	FollowNone FollowUp = iota
	FollowConnectDNS
)

// Event is posted by background work and applied by Handle.
type Event interface {
	event()
}

// RunEvent carries the result of a check.
type RunEvent struct {
	Token  RunToken
	Result workflow.Result
}

// TimeoutEvent is posted by the watchdog.
type TimeoutEvent struct {
	Token RunToken
}

// DNSEvent carries the result of a connect or disconnect.
type DNSEvent struct {
	Connect bool
	Set     dns.SetResult
	Unset   dns.UnsetResult
}

// DNSStatusEvent carries a periodic DNS status check. Gen is the DNS
// operation generation the poll started in.
type DNSStatusEvent struct {
	Connected bool
	Gen       uint64
}

func (RunEvent) event()       {}
func (TimeoutEvent) event()   {}
func (DNSEvent) event()       {}
func (DNSStatusEvent) event() {}

// Notice is a message for the user. Modal notices need acknowledgement;
// the rest belong in a status line.
type Notice struct {
	TitleKey string
	Key      string
	Params   []any
	Message  string
	Style    workflow.Style
	Modal    bool
}

// Text renders the notice in lang. A preset Message wins over Key.
func (n Notice) Text(lang string) string {
	if n.Message != "" {
		return n.Message
	}
	return i18n.T(lang, n.Key, n.Params...)
}

// Title renders the notice title in lang.
func (n Notice) Title(lang string) string {
	return i18n.T(lang, n.TitleKey)
}

func errorNotice(key string) Notice {
	return Notice{TitleKey: "error_title", Key: key, Style: workflow.StyleDanger, Modal: true}
}

func warningNotice(key string) Notice {
	return Notice{TitleKey: "warning_title", Key: key, Style: workflow.StyleWarning, Modal: true}
}
