package dialog

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// ScriptedPresenter answers every confirmation with a fixed decision and
// logs notifications instead of drawing them. Used for non-interactive runs.
type ScriptedPresenter struct {
	confirm bool
}

func NewScriptedPresenter(confirm bool) *ScriptedPresenter {
	return &ScriptedPresenter{confirm: confirm}
}

func (p *ScriptedPresenter) Confirm(_ context.Context, c Confirmation) (bool, error) {
	log.Debugf("confirmation [%s] answered automatically: %t", c.Title, p.confirm)
	return p.confirm, nil
}

func (p *ScriptedPresenter) Notify(_ context.Context, n Notification) {
	log.WithFields(log.Fields{
		"icon":  n.Icon,
		"title": n.Title,
	}).Info(n.Text)
}
