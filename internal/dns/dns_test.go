package dns

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticLister []string

func (l staticLister) Active(ctx context.Context) []string { return l }

// recorder fails any command whose joined line contains one of failOn.
type recorder struct {
	failOn  []string
	outputs map[string]string
	lines   []string
}

func (r *recorder) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	line := name + " " + strings.Join(args, " ")
	r.lines = append(r.lines, line)
	for _, f := range r.failOn {
		if strings.Contains(line, f) {
			return nil, errors.New("exit status 1")
		}
	}
	return []byte(r.outputs[line]), nil
}

func (r *recorder) count(substr string) int {
	n := 0
	for _, l := range r.lines {
		if strings.Contains(l, substr) {
			n++
		}
	}
	return n
}

func TestSetStopsAtFirstSuccess(t *testing.T) {
	r := &recorder{failOn: []string{"name=Ethernet static"}}
	c := NewConfigurator(r, NetshCommands(), staticLister{"Ethernet", "Wi-Fi", "Ethernet 2"})

	res := c.Set(context.Background(), "10.0.0.53", "10.0.0.54")

	assert.Equal(t, SetResult{Success: true, DNSIP: "10.0.0.53"}, res)
	assert.Equal(t, 1, r.count("name=Ethernet static"))
	assert.Equal(t, 1, r.count("name=Wi-Fi static 10.0.0.53 primary"))
	assert.Equal(t, 1, r.count("add dnsservers name=Wi-Fi address=10.0.0.54 index=2"))
	assert.Zero(t, r.count("Ethernet 2"))
	assert.Equal(t, 1, r.count("ipconfig /flushdns"))
}

func TestSetIgnoresSecondaryFailure(t *testing.T) {
	r := &recorder{failOn: []string{"add dnsservers"}}
	c := NewConfigurator(r, NetshCommands(), staticLister{"Ethernet"})

	res := c.Set(context.Background(), "10.0.0.53", "10.0.0.54")
	assert.True(t, res.Success)
}

func TestSetFailures(t *testing.T) {
	tests := []struct {
		name    string
		ifaces  staticLister
		primary string
		wantErr string
		wantRun int
	}{
		{"no interfaces", nil, "10.0.0.53", ErrNoActiveInterface, 0},
		{"invalid address", staticLister{"Ethernet"}, "10.0.0.53; shutdown", ErrSetFailed, 0},
		{"empty address", staticLister{"Ethernet"}, "", ErrSetFailed, 0},
		{"all interfaces refuse", staticLister{"Ethernet", "Wi-Fi"}, "10.0.0.53", ErrSetFailed, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{failOn: []string{"static"}}
			c := NewConfigurator(r, NetshCommands(), tt.ifaces)

			res := c.Set(context.Background(), tt.primary, "")
			assert.False(t, res.Success)
			assert.Equal(t, tt.wantErr, res.ErrKind)
			assert.Len(t, r.lines, tt.wantRun)
		})
	}
}

func TestUnsetAttemptsEveryInterface(t *testing.T) {
	tests := []struct {
		name   string
		failOn []string
	}{
		{"only first succeeds", []string{"name=Wi-Fi source", "name=Ethernet 2 source"}},
		{"only last succeeds", []string{"name=Ethernet source", "name=Wi-Fi source"}},
		{"all succeed", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{failOn: tt.failOn}
			c := NewConfigurator(r, NetshCommands(), staticLister{"Ethernet", "Wi-Fi", "Ethernet 2"})

			res := c.Unset(context.Background())

			assert.Equal(t, UnsetResult{Success: true}, res)
			assert.Equal(t, 3, r.count("source=dhcp"))
			assert.Equal(t, 1, r.count("name=Ethernet 2 source=dhcp"))
			assert.Equal(t, 1, r.count("ipconfig /flushdns"))
		})
	}
}

func TestUnsetFailures(t *testing.T) {
	c := NewConfigurator(&recorder{}, NetshCommands(), staticLister{})
	assert.Equal(t, UnsetResult{ErrKind: ErrNoActiveInterface}, c.Unset(context.Background()))
	assert.False(t, c.UnsetSync(context.Background()))

	r := &recorder{failOn: []string{"source=dhcp"}}
	c = NewConfigurator(r, NetshCommands(), staticLister{"Ethernet", "Wi-Fi"})
	assert.Equal(t, UnsetResult{ErrKind: ErrUnsetFailed}, c.Unset(context.Background()))
	assert.Zero(t, r.count("flushdns"))
}

const showDNSOutput = `
Configuration for interface "Ethernet"
    Statically Configured DNS Servers:    10.0.0.53
                                          10.0.0.54
    Register with which suffix:           Primary only
`

func TestCurrentServers(t *testing.T) {
	r := &recorder{outputs: map[string]string{
		"netsh interface ipv4 show dnsservers name=Ethernet": showDNSOutput,
		"netsh interface ipv4 show dnsservers name=Wi-Fi":    "DNS servers configured through DHCP:  0.0.0.0\n",
	}}
	c := NewConfigurator(r, NetshCommands(), staticLister{"Ethernet"})

	assert.Equal(t, []string{"10.0.0.53", "10.0.0.54"}, c.CurrentServers(context.Background(), "Ethernet"))
	assert.Empty(t, c.CurrentServers(context.Background(), "Wi-Fi"))

	r.failOn = []string{"show"}
	assert.Empty(t, c.CurrentServers(context.Background(), "Ethernet"))
}

func TestCheckStatus(t *testing.T) {
	r := &recorder{outputs: map[string]string{
		"netsh interface ipv4 show dnsservers name=Wi-Fi":    "DNS servers configured through DHCP:  192.168.1.1\n",
		"netsh interface ipv4 show dnsservers name=Ethernet": showDNSOutput,
	}}
	c := NewConfigurator(r, NetshCommands(), staticLister{"Wi-Fi", "Ethernet"})
	ctx := context.Background()

	assert.False(t, c.CheckStatus(ctx, ""))
	assert.Empty(t, r.lines)

	assert.True(t, c.CheckStatus(ctx, "10.0.0.54"))
	assert.False(t, c.CheckStatus(ctx, "10.0.0.99"))

	none := NewConfigurator(r, NetshCommands(), staticLister{})
	assert.False(t, none.CheckStatus(ctx, "10.0.0.53"))
}

func TestCheckStatusShortCircuits(t *testing.T) {
	r := &recorder{outputs: map[string]string{
		"netsh interface ipv4 show dnsservers name=Ethernet": showDNSOutput,
	}}
	c := NewConfigurator(r, NetshCommands(), staticLister{"Ethernet", "Wi-Fi"})

	assert.True(t, c.CheckStatus(context.Background(), "10.0.0.53"))
	assert.Equal(t, 0, r.count("name=Wi-Fi"))
}

func TestPlatformCommandSets(t *testing.T) {
	rc := ResolvectlCommands()
	assert.Equal(t, Command{"resolvectl", []string{"dns", "eth0", "1.1.1.1", "8.8.8.8"}}, rc.AddSecondary("eth0", "1.1.1.1", "8.8.8.8"))
	assert.Equal(t, Command{"resolvectl", []string{"revert", "eth0"}}, rc.Restore("eth0"))

	ns := NetworksetupCommands()
	assert.Equal(t, Command{"networksetup", []string{"-setdnsservers", "Wi-Fi", "Empty"}}, ns.Restore("Wi-Fi"))
	assert.Equal(t, "dscacheutil", ns.Flush.Name)
}
