// Package dialog holds the confirmation and notification dialogs shown
// around destructive or state-changing post operations, and the presenters
// that render them.
package dialog

import (
	"context"
	"time"
)

type Icon string

const (
	IconSuccess  Icon = "success"
	IconWarning  Icon = "warning"
	IconError    Icon = "error"
	IconInfo     Icon = "info"
	IconQuestion Icon = "question"
)

const (
	ConfirmColor = "#3085d6"
	CancelColor  = "#d33"
)

// Confirmation asks the user to accept or decline an action.
type Confirmation struct {
	Title        string
	Text         string
	Icon         Icon
	ConfirmText  string
	CancelText   string
	ConfirmColor string
	CancelColor  string
}

// Notification is shown once and needs no answer.
// A positive Timer dismisses it automatically.
type Notification struct {
	Icon             Icon
	Title            string
	Text             string
	Timer            time.Duration
	TimerProgressBar bool
}

type Presenter interface {
	// Confirm blocks until the user answers. Declining is not an error.
	Confirm(ctx context.Context, c Confirmation) (bool, error)
	Notify(ctx context.Context, n Notification)
}

func (i Icon) Glyph() string {
	switch i {
	case IconSuccess:
		return "✔"
	case IconWarning:
		return "⚠"
	case IconError:
		return "✖"
	case IconInfo:
		return "ℹ"
	case IconQuestion:
		return "?"
	default:
		return "•"
	}
}
