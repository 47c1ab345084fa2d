//go:build linux

package netif

import (
	"context"
	"net"

	"github.com/vishvananda/netlink"

	"github.com/user/vexo-checker/internal/procutil"
)

// NetlinkStrategy lists non-loopback links whose operational state is up.
func NetlinkStrategy() Strategy {
	return Strategy{Name: "netlink", Run: func(ctx context.Context) ([]string, error) {
		links, err := netlink.LinkList()
		if err != nil {
			return nil, err
		}

		var names []string
		for _, link := range links {
			attrs := link.Attrs()
			if attrs.Flags&net.FlagLoopback != 0 {
				continue
			}
			if attrs.OperState != netlink.OperUp {
				continue
			}
			names = append(names, attrs.Name)
		}
		return names, nil
	}}
}

// Default returns the Linux strategy chain.
func Default(r procutil.Runner) *Enumerator {
	return NewEnumerator(NetlinkStrategy(), NmcliStrategy(r), IPLinkStrategy(r))
}
