package arm

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "arm",
})

type Arm struct {
	Components []Component
	State      *State

	// Set from any goroutine by Shutdown. Copied into the state at the start of
	// the next tick, so components only ever see it from the loop goroutine.
	shutdown atomic.Bool
}

// Component is a piece of the arm which is ticked every frame. Components run
// in the order they were added, and share the state.
type Component interface {
	Boot() error
	Tick(now time.Time, state *State) error
}

// New creates a new Arm with no components, starting from the given state.
func New(initial State) *Arm {
	return &Arm{
		Components: []Component{},
		State:      &initial,
	}
}

// Add registers a component to receive ticks every frame.
func (a *Arm) Add(c Component) {
	a.Components = append(a.Components, c)
}

// Boot calls Boot on each component, stopping at the first error.
func (a *Arm) Boot() error {
	for _, c := range a.Components {
		err := c.Boot()
		if err != nil {
			return err
		}
	}

	return nil
}

// Shutdown asks the loop to stop after one more tick, during which every
// component sees State.Shutdown. Safe to call from any goroutine.
func (a *Arm) Shutdown() {
	a.shutdown.Store(true)
}

// Tick calls Tick on each component. Errors don't stop the remaining
// components from ticking; they are all returned together.
func (a *Arm) Tick(now time.Time) error {
	if a.shutdown.Load() {
		a.State.Shutdown = true
	}

	var err error
	for _, c := range a.Components {
		err = multierr.Append(err, c.Tick(now, a.State))
	}

	return err
}

// Run ticks the arm fps times per second on the given clock, until the context
// is cancelled or the arm is shut down.
func (a *Arm) Run(ctx context.Context, clk clock.Clock, fps int) error {
	t := clk.Ticker(time.Second / time.Duration(fps))
	defer t.Stop()

	return a.Loop(ctx, t.C)
}

// Loop ticks the arm once for every time received from ticks.
func (a *Arm) Loop(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case now := <-ticks:
			err := a.Tick(now)
			if err != nil {
				log.Warnf("tick: %s", err)
			}

			if a.State.Shutdown {
				log.Info("shut down")
				return nil
			}
		}
	}
}
