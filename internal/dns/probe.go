package dns

import (
	"context"
	"fmt"
	"net"
	"time"

	mdns "github.com/miekg/dns"
)

// ProbeTimeout bounds a single probe exchange.
const ProbeTimeout = 2 * time.Second

// ProbeName is the name looked up by Probe.
const ProbeName = "icanhazip.com."

// Probe sends an A query to server on port 53 and reports whether it
// answered with a usable response.
func Probe(ctx context.Context, server string) error {
	return probe(ctx, net.JoinHostPort(server, "53"))
}

func probe(ctx context.Context, addr string) error {
	query := new(mdns.Msg)
	query.SetQuestion(ProbeName, mdns.TypeA)
	query.RecursionDesired = true

	client := &mdns.Client{Timeout: ProbeTimeout}
	resp, _, err := client.ExchangeContext(ctx, query, addr)
	if err != nil {
		return fmt.Errorf("probe %s: %w", addr, err)
	}
	if resp.Rcode != mdns.RcodeSuccess {
		return fmt.Errorf("probe %s: %s", addr, mdns.RcodeToString[resp.Rcode])
	}
	return nil
}
