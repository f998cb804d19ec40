package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the last operation status on the left and a short detail
// line (next check-in, log location) on the right.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	detailLabel *widget.Label
}

func NewStatusBar(initial string) *StatusBar {
	statusLabel := widget.NewLabel(initial)
	statusLabel.Wrapping = fyne.TextWrapWord
	statusLabel.Importance = widget.SuccessImportance

	detailLabel := widget.NewLabel("")
	detailLabel.Importance = widget.LowImportance

	mainContainer := container.NewBorder(
		nil, nil,
		nil,
		detailLabel,
		statusLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		detailLabel: detailLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// SetStatus only touches the label when the text changed; both apps call it
// every frame.
func (sb *StatusBar) SetStatus(status string) {
	if sb.statusLabel.Text != status {
		sb.statusLabel.SetText(status)
	}
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetDetail(detail string) {
	if sb.detailLabel.Text != detail {
		sb.detailLabel.SetText(detail)
	}
}
