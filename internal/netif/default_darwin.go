package netif

import "github.com/user/vexo-checker/internal/procutil"

// Default returns the macOS strategy chain.
func Default(r procutil.Runner) *Enumerator {
	return NewEnumerator(NetworksetupStrategy(r))
}
