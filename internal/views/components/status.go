package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the outcome of the last form action
type StatusBar struct {
	container    *fyne.Container
	messageLabel *widget.Label
	recordInfo   *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.messageLabel = widget.NewLabel("")
	sb.messageLabel.Wrapping = fyne.TextWrapWord
	sb.recordInfo = widget.NewLabel("")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewVBox(
		sb.messageLabel,
		sb.recordInfo,
	)
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() fyne.CanvasObject {
	return sb.container
}

// SetMessage shows a normal status message
func (sb *StatusBar) SetMessage(message string) {
	sb.messageLabel.Importance = widget.MediumImportance
	sb.messageLabel.SetText(message)
}

// SetError shows a message in the danger colour
func (sb *StatusBar) SetError(message string) {
	sb.messageLabel.Importance = widget.DangerImportance
	sb.messageLabel.SetText(message)
}

// SetRecordInfo shows where records are stored
func (sb *StatusBar) SetRecordInfo(info string) {
	sb.recordInfo.SetText(info)
}

// GetMessage returns the current message text
func (sb *StatusBar) GetMessage() string {
	return sb.messageLabel.Text
}

// IsError reports whether the current message is an error
func (sb *StatusBar) IsError() bool {
	return sb.messageLabel.Importance == widget.DangerImportance
}

// Reset clears the status bar
func (sb *StatusBar) Reset() {
	sb.SetMessage("")
}
