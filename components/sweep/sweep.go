// Package sweep moves the target around a circle, and opens and closes the
// gripper once per lap. It stands in for a human at the controls.
package sweep

import (
	"math"
	"time"

	"github.com/adammck/arm"
	"github.com/adammck/arm/math3d"
)

type Sweep struct {

	// The circle is vertical, facing the arm.
	Center math3d.Vector3
	Radius float64
	Period time.Duration

	// The effector position at the widest point of each lap.
	Actuation float64

	start time.Time
}

func New(center math3d.Vector3, radius float64, period time.Duration, actuation float64) *Sweep {
	return &Sweep{
		Center:    center,
		Radius:    radius,
		Period:    period,
		Actuation: actuation,
	}
}

func (s *Sweep) Boot() error {
	return nil
}

func (s *Sweep) Tick(now time.Time, state *arm.State) error {
	if s.start.IsZero() {
		s.start = now
	}

	// Stop moving the target once shutting down, so the arm settles.
	if state.Shutdown {
		return nil
	}

	phase := 2 * math.Pi * float64(now.Sub(s.start)) / float64(s.Period)

	state.Target = *s.Center.Add(math3d.Vector3{
		X: s.Radius * math.Sin(phase),
		Y: s.Radius * (1 - math.Cos(phase)),
		Z: 0,
	})

	state.Effector.Position = s.Actuation * (1 - math.Cos(phase)) / 2
	return nil
}
