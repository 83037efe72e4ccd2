package life

import "github.com/pkg/errors"

// ErrOutOfBounds is returned when a coordinate falls outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

func outOfBounds(op string, x, y, w, h int) error {
	return errors.Wrapf(ErrOutOfBounds, "[%s] (%d,%d) on %dx%d grid", op, x, y, w, h)
}
