package app

import (
	"lifeboard/internal/sim"
	"lifeboard/internal/ui"
)

// HandleClick applies a left click at window pixel (px, py) to the session:
// menu buttons start or reset the run, board clicks toggle a cell. It returns
// the menu action that was triggered.
func HandleClick(s *sim.Session, l ui.Layout, px, py int) (ui.Action, error) {
	switch action := l.Hit(px, py); action {
	case ui.ActionGo:
		s.Start()
		return action, nil
	case ui.ActionReset:
		s.Reset()
		return action, nil
	}
	x, y, ok := l.CellAt(px, py)
	if !ok {
		return ui.ActionNone, nil
	}
	return ui.ActionNone, s.Toggle(x, y)
}
