package ui

import (
	"github.com/lxn/walk"

	"github.com/user/vexo-checker/internal/core"
	"github.com/user/vexo-checker/internal/workflow"
)

// showModal shows a notice in a message box.
func showModal(n core.Notice, lang string) {
	style := walk.MsgBoxIconInformation
	switch n.Style {
	case workflow.StyleDanger:
		style = walk.MsgBoxIconError
	case workflow.StyleWarning:
		style = walk.MsgBoxIconWarning
	}
	walk.MsgBox(nil, n.Title(lang), n.Text(lang), style|walk.MsgBoxSetForeground)
}
