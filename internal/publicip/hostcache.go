package publicip

import (
	"context"
	"net"

	"github.com/user/vexo-checker/internal/logger"
)

// HostStore persists the last-known addresses of the echo hosts.
type HostStore interface {
	HostIP(host string) string
	SetHostIP(host, ip string)
	Save() error
}

// LookupFunc resolves a hostname.
type LookupFunc func(ctx context.Context, host string) ([]net.IPAddr, error)

// HostCache remembers the echo hosts' addresses while the system resolver
// is still the regular one, so they are known once DNS has been switched.
type HostCache struct {
	store  HostStore
	lookup LookupFunc
	hosts  []string
}

// NewHostCache creates a cache for hosts using the system resolver.
func NewHostCache(store HostStore, hosts ...string) *HostCache {
	return &HostCache{
		store:  store,
		lookup: net.DefaultResolver.LookupIPAddr,
		hosts:  hosts,
	}
}

// WithLookup replaces the resolver function.
func (c *HostCache) WithLookup(fn LookupFunc) *HostCache {
	c.lookup = fn
	return c
}

// Refresh resolves every host and stores addresses that changed. Hosts that
// fail to resolve are skipped. The store is saved only if something changed.
func (c *HostCache) Refresh(ctx context.Context) (changed bool, err error) {
	log := logger.WithComponent("hostcache")
	for _, host := range c.hosts {
		addrs, err := c.lookup(ctx, host)
		if err != nil {
			log.Debugf("Resolve %s: %v", host, err)
			continue
		}
		ip := firstIPv4(addrs)
		if ip == "" || ip == c.store.HostIP(host) {
			continue
		}
		log.Infof("%s now resolves to %s", host, ip)
		c.store.SetHostIP(host, ip)
		changed = true
	}

	if !changed {
		return false, nil
	}
	return true, c.store.Save()
}

func firstIPv4(addrs []net.IPAddr) string {
	for _, a := range addrs {
		if v4 := a.IP.To4(); v4 != nil {
			return v4.String()
		}
	}
	return ""
}
