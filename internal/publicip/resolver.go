// Package publicip discovers the machine's public IPv4 address through
// plain-text IP-echo services.
package publicip

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/user/vexo-checker/internal/logger"
)

// DefaultTimeout bounds a single echo request.
const DefaultTimeout = 5 * time.Second

// DefaultEndpoints are queried in order; the first answer wins.
var DefaultEndpoints = []string{
	"https://icanhazip.com",
	"https://v4.ident.me",
}

// Resolver queries IP-echo endpoints one after another.
type Resolver struct {
	client    *http.Client
	endpoints []string
}

// NewResolver creates a resolver. A nil client gets a DefaultTimeout client;
// no endpoints means DefaultEndpoints.
func NewResolver(client *http.Client, endpoints ...string) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if len(endpoints) == 0 {
		endpoints = DefaultEndpoints
	}
	return &Resolver{client: client, endpoints: endpoints}
}

// PublicIP returns the first address reported by an endpoint. Each
// endpoint gets exactly one attempt; ok is false when all of them failed.
func (r *Resolver) PublicIP(ctx context.Context) (ip string, ok bool) {
	log := logger.WithComponent("publicip")
	for _, endpoint := range r.endpoints {
		ip, err := r.query(ctx, endpoint)
		if err != nil {
			log.Debugf("%s: %v", endpoint, err)
			continue
		}
		return ip, true
	}
	log.Warn("Public IP could not be determined")
	return "", false
}

func (r *Resolver) query(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(string(body))
	addr, err := netip.ParseAddr(text)
	if err != nil {
		return "", fmt.Errorf("not an IP address: %q", text)
	}
	return addr.String(), nil
}
