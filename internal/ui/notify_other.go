//go:build !windows

package ui

import (
	"github.com/user/vexo-checker/internal/core"
	"github.com/user/vexo-checker/internal/logger"
)

// showModal logs the notice; only the status line shows it on this platform.
func showModal(n core.Notice, lang string) {
	logger.Info("%s: %s", n.Title(lang), n.Text(lang))
}
