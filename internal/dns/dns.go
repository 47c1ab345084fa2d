// Package dns switches the system resolver of the active interfaces to the
// subscription's DNS servers and back to DHCP.
package dns

import (
	"context"
	"net/netip"
	"regexp"

	"github.com/user/vexo-checker/internal/logger"
	"github.com/user/vexo-checker/internal/netif"
	"github.com/user/vexo-checker/internal/procutil"
)

// Failure kinds, also used as message keys.
const (
	ErrNoActiveInterface = "no_active_interface"
	ErrSetFailed         = "dns_set_fail_message"
	ErrUnsetFailed       = "dns_unset_fail_message"
)

var ipv4Pattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// SetResult is the outcome of Set.
type SetResult struct {
	Success bool
	DNSIP   string
	ErrKind string
}

// UnsetResult is the outcome of Unset.
type UnsetResult struct {
	Success bool
	ErrKind string
}

// Configurator applies a CommandSet to the interfaces reported by a lister.
type Configurator struct {
	runner   procutil.Runner
	commands CommandSet
	lister   netif.Lister
}

// NewConfigurator creates a configurator.
func NewConfigurator(runner procutil.Runner, commands CommandSet, lister netif.Lister) *Configurator {
	return &Configurator{runner: runner, commands: commands, lister: lister}
}

func (c *Configurator) run(ctx context.Context, cmd Command) ([]byte, error) {
	return c.runner.Run(ctx, cmd.Name, cmd.Args...)
}

// CurrentServers returns the IPv4 DNS servers configured on iface.
// Any failure yields an empty list.
func (c *Configurator) CurrentServers(ctx context.Context, iface string) []string {
	out, err := c.run(ctx, c.commands.Query(iface))
	if err != nil {
		logger.WithComponent("dns").Debugf("Query %q: %v", iface, err)
		return nil
	}

	var servers []string
	for _, ip := range ipv4Pattern.FindAllString(string(out), -1) {
		if ip != "0.0.0.0" {
			servers = append(servers, ip)
		}
	}
	return servers
}

// CheckStatus reports whether target is among the DNS servers of any
// active interface.
func (c *Configurator) CheckStatus(ctx context.Context, target string) bool {
	if target == "" {
		return false
	}
	for _, iface := range c.lister.Active(ctx) {
		for _, server := range c.CurrentServers(ctx, iface) {
			if server == target {
				return true
			}
		}
	}
	return false
}

// Set points the first interface that accepts it at primary, adding
// secondary when given. Later interfaces are left untouched.
func (c *Configurator) Set(ctx context.Context, primary, secondary string) SetResult {
	log := logger.WithComponent("dns")

	if !isIPv4(primary) {
		log.Warnf("Refusing to set invalid DNS address %q", primary)
		return SetResult{ErrKind: ErrSetFailed}
	}

	ifaces := c.lister.Active(ctx)
	if len(ifaces) == 0 {
		return SetResult{ErrKind: ErrNoActiveInterface}
	}

	for _, iface := range ifaces {
		if _, err := c.run(ctx, c.commands.SetPrimary(iface, primary)); err != nil {
			log.Debugf("Set DNS on %q: %v", iface, err)
			continue
		}

		if isIPv4(secondary) {
			if _, err := c.run(ctx, c.commands.AddSecondary(iface, primary, secondary)); err != nil {
				log.Debugf("Add secondary DNS on %q: %v", iface, err)
			}
		}

		log.Infof("DNS set to %s on %q", primary, iface)
		c.FlushCache(ctx)
		return SetResult{Success: true, DNSIP: primary}
	}

	log.Warnf("DNS could not be set on any of %v", ifaces)
	return SetResult{ErrKind: ErrSetFailed}
}

// Unset restores DHCP-provided DNS on every active interface. It succeeds
// if at least one interface was restored.
func (c *Configurator) Unset(ctx context.Context) UnsetResult {
	log := logger.WithComponent("dns")

	ifaces := c.lister.Active(ctx)
	if len(ifaces) == 0 {
		return UnsetResult{ErrKind: ErrNoActiveInterface}
	}

	restored := 0
	for _, iface := range ifaces {
		if _, err := c.run(ctx, c.commands.Restore(iface)); err != nil {
			log.Debugf("Restore DNS on %q: %v", iface, err)
			continue
		}
		restored++
	}

	if restored == 0 {
		log.Warnf("DNS could not be restored on any of %v", ifaces)
		return UnsetResult{ErrKind: ErrUnsetFailed}
	}

	log.Infof("DNS restored on %d of %d interfaces", restored, len(ifaces))
	c.FlushCache(ctx)
	return UnsetResult{Success: true}
}

// UnsetSync is Unset for teardown paths: it never panics and only reports
// whether anything was restored.
func (c *Configurator) UnsetSync(ctx context.Context) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("PANIC in dns.UnsetSync: %v", r)
			ok = false
		}
	}()
	return c.Unset(ctx).Success
}

// FlushCache clears the OS resolver cache. Failures are only logged.
func (c *Configurator) FlushCache(ctx context.Context) {
	if c.commands.Flush.Name == "" {
		return
	}
	if _, err := c.run(ctx, c.commands.Flush); err != nil {
		logger.WithComponent("dns").Debugf("Flush cache: %v", err)
	}
}

func isIPv4(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}
