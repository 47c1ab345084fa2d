//go:build !windows && !linux && !darwin

package netif

import "github.com/user/vexo-checker/internal/procutil"

// Default returns the iproute2 strategy, the only portable guess left.
func Default(r procutil.Runner) *Enumerator {
	return NewEnumerator(IPLinkStrategy(r))
}
