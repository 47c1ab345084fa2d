package netif

import (
	"context"
	"strings"

	"github.com/user/vexo-checker/internal/procutil"
)

// NmcliStrategy lists NetworkManager devices in the connected state.
func NmcliStrategy(r procutil.Runner) Strategy {
	return Strategy{Name: "nmcli", Run: func(ctx context.Context) ([]string, error) {
		out, err := r.Run(ctx, "nmcli", "-t", "-f", "DEVICE,STATE", "device")
		if err != nil {
			return nil, err
		}
		return parseNmcli(out), nil
	}}
}

// IPLinkStrategy lists links reported up by iproute2.
func IPLinkStrategy(r procutil.Runner) Strategy {
	return Strategy{Name: "ip-link", Run: func(ctx context.Context) ([]string, error) {
		out, err := r.Run(ctx, "ip", "-o", "link", "show", "up")
		if err != nil {
			return nil, err
		}
		return parseIPLink(out), nil
	}}
}

// NetworksetupStrategy lists enabled macOS network services.
func NetworksetupStrategy(r procutil.Runner) Strategy {
	return Strategy{Name: "networksetup", Run: func(ctx context.Context) ([]string, error) {
		out, err := r.Run(ctx, "networksetup", "-listallnetworkservices")
		if err != nil {
			return nil, err
		}
		return parseNetworkServices(out), nil
	}}
}

func parseNmcli(out []byte) []string {
	var names []string
	for _, line := range procutil.Lines(out) {
		device, state, ok := strings.Cut(line, ":")
		if !ok || device == "" || device == "lo" {
			continue
		}
		if state == "connected" {
			names = append(names, device)
		}
	}
	return names
}

// parseIPLink reads "2: eth0: <BROADCAST,MULTICAST,UP,LOWER_UP> mtu 1500 ..." rows.
func parseIPLink(out []byte) []string {
	var names []string
	for _, line := range procutil.Lines(out) {
		fields := strings.Fields(line)
		if len(fields) < 3 || !strings.Contains(fields[2], "LOWER_UP") {
			continue
		}
		name := strings.TrimSuffix(fields[1], ":")
		// veth peers are printed as "veth0@if5".
		if i := strings.IndexByte(name, '@'); i >= 0 {
			name = name[:i]
		}
		if name == "" || name == "lo" {
			continue
		}
		names = append(names, name)
	}
	return names
}

func parseNetworkServices(out []byte) []string {
	lines := procutil.Lines(out)
	if len(lines) <= 1 {
		return nil
	}

	var names []string
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "*") {
			continue
		}
		names = append(names, line)
	}
	return names
}
