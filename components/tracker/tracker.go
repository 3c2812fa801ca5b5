// Package tracker moves the arm towards the target in the shared state, one
// solver step per tick.
package tracker

import (
	"time"

	"github.com/adammck/arm"
	"github.com/adammck/arm/ik"
	"github.com/adammck/arm/math3d"
	"github.com/adammck/arm/utils"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "tracker",
})

type Tracker struct {
	solver *ik.Solver

	// Known-good position to warp to at boot.
	home math3d.Vector3

	last    time.Time
	blocked utils.Latch
}

func New(solver *ik.Solver, home math3d.Vector3) *Tracker {
	return &Tracker{
		solver: solver,
		home:   home,
	}
}

// Boot seeds the solver with the home position, so the first ticks don't
// sweep in from the origin.
func (t *Tracker) Boot() error {
	log.Infof("home=%s", t.home)
	t.solver.Goto(t.home)
	return nil
}

func (t *Tracker) Tick(now time.Time, state *arm.State) error {
	var dt time.Duration
	if !t.last.IsZero() {
		dt = now.Sub(t.last)
	}
	t.last = now

	res := t.solver.Solve(state.Target, state.Effector, dt)
	state.Angles = res.ArmState
	state.OutOfBounds = res.OutOfBounds
	state.Position = t.solver.Current()
	state.Tip = ik.Forward(t.solver.Settings(), res.ArmState)

	// Only log the edges, not every tick spent blocked.
	wasBlocked := t.blocked.Value()
	if t.blocked.Run(res.OutOfBounds) {
		err := t.solver.Violations(state.Target, state.Effector.Pitch, state.Effector.Roll)
		log.WithField("target", state.Target).Warnf("blocked: %s", err)

	} else if wasBlocked && !res.OutOfBounds {
		log.WithField("target", state.Target).Info("unblocked")
	}

	log.Debugf("pos=%s angles=%s", state.Position, state.Angles)
	return nil
}
