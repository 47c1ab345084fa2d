package ui

import (
	"github.com/lxn/walk"
	. "github.com/lxn/walk/declarative"

	"github.com/user/vexo-checker/internal/i18n"
	"github.com/user/vexo-checker/internal/logger"
)

// promptLink asks for a new subscription link. ok is false when the
// dialog was cancelled.
func promptLink(lang, current string) (link string, ok bool) {
	var dlg *walk.Dialog
	var edit *walk.LineEdit
	var saveBtn, cancelBtn *walk.PushButton

	res, err := Dialog{
		AssignTo:      &dlg,
		Title:         i18n.T(lang, "manage_link_title"),
		DefaultButton: &saveBtn,
		CancelButton:  &cancelBtn,
		MinSize:       Size{Width: 460, Height: 140},
		Layout:        VBox{},
		Children: []Widget{
			Label{Text: i18n.T(lang, "manage_link_prompt")},
			LineEdit{AssignTo: &edit, Text: current},
			Composite{
				Layout: HBox{MarginsZero: true},
				Children: []Widget{
					HSpacer{},
					PushButton{
						AssignTo: &saveBtn,
						Text:     i18n.T(lang, "save_button"),
						OnClicked: func() {
							link = edit.Text()
							dlg.Accept()
						},
					},
					PushButton{
						AssignTo:  &cancelBtn,
						Text:      i18n.T(lang, "cancel_button"),
						OnClicked: func() { dlg.Cancel() },
					},
				},
			},
		},
	}.Run(nil)
	if err != nil {
		logger.Error("Link dialog failed: %v", err)
		return "", false
	}
	return link, res == walk.DlgCmdOK
}
