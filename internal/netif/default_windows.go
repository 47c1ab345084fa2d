package netif

import "github.com/user/vexo-checker/internal/procutil"

// Default returns the Windows strategy chain.
func Default(r procutil.Runner) *Enumerator {
	return NewEnumerator(WindowsStrategies(r)...)
}
