//go:build !windows

package ui

import (
	"github.com/user/vexo-checker/internal/i18n"
	"github.com/user/vexo-checker/internal/logger"
)

// promptLink has no dialog on this platform; the link is set with --url.
func promptLink(lang, current string) (string, bool) {
	logger.Info("%s", i18n.T(lang, "manage_link_hint"))
	return "", false
}
