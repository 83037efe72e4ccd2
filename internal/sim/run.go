package sim

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// View receives frames to display. A Render error stops Run.
type View interface {
	Render(f Frame) error
}

// ViewFunc adapts a function to View.
type ViewFunc func(Frame) error

// Render calls fn(f).
func (fn ViewFunc) Render(f Frame) error { return fn(f) }

// Clock pauses between steps.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock sleeps on a timer and wakes early when ctx is cancelled.
type RealClock struct{}

// Sleep blocks for d or until ctx is done, returning ctx.Err() in that case.
func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Run starts the session and drives it until the run finishes: each
// iteration advances one tick, renders the frame, then sleeps for interval.
// The final frame (with the finished status) is rendered before returning.
// A failing view ends the run with its error.
func Run(ctx context.Context, s *Session, view View, clock Clock, interval time.Duration) error {
	if clock == nil {
		clock = RealClock{}
	}
	s.Start()
	if err := view.Render(s.Frame()); err != nil {
		return errors.Wrap(err, "[Run] render")
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		stepped := s.Advance()
		if err := view.Render(s.Frame()); err != nil {
			return errors.Wrapf(err, "[Run] render generation %d", s.engine.Generation())
		}
		if !stepped {
			return nil
		}
		if err := clock.Sleep(ctx, interval); err != nil {
			return err
		}
	}
}
