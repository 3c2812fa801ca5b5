// Package ik solves the joint angles of a five-axis arm (rotunda, shoulder,
// elbow, wrist pitch and wrist roll) which place the end-effector at a target
// point with a given pitch.
package ik

import (
	"math"
	"time"

	"github.com/adammck/arm/math3d"
	"github.com/adammck/arm/trig"
	"github.com/adammck/arm/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "ik",
})

// checkedJoints are validated against their constraints. The effector
// position is passed through unchecked.
var checkedJoints = []Joint{Rotunda, Shoulder, Elbow, WristRoll, WristPitch}

// Solver tracks a moving target, one step per tick, and holds the last pose
// which satisfied every constraint. It never moves to an invalid pose; when a
// step would leave the limits, it stays where it is.
//
// A Solver is not safe for concurrent use. Each control loop should own its
// own instance.
type Solver struct {
	settings Settings

	// The last accepted (stepped) target, and the angles which reach it.
	current       math3d.Vector3
	currentAngles ArmState

	// The dt of the most recent Solve, used by CheckBounds to predict the next
	// step when ScaleByDt is set.
	lastDt time.Duration
}

// New returns a solver with the overrides applied to DefaultSettings. The
// tracked position and angles start at zero.
func New(o Overrides) (*Solver, error) {
	s := o.Apply(DefaultSettings())
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid arm settings")
	}

	return &Solver{settings: s}, nil
}

// Configure merges the overrides into the current settings. The tracked
// position and angles are left alone. If the result is invalid, an error is
// returned and the settings are unchanged.
func (s *Solver) Configure(o Overrides) error {
	ns := o.Apply(s.settings)
	if err := ns.Validate(); err != nil {
		return errors.Wrap(err, "invalid arm settings")
	}

	s.settings = ns
	log.Debugf("configured: %+v", ns)
	return nil
}

// Settings returns a copy of the current settings.
func (s *Solver) Settings() Settings {
	ss := s.settings
	ss.Constraints = ss.Constraints.Clone()
	return ss
}

// Goto warps the tracked position to target without solving or checking it.
// It's meant for seeding a known-good position at startup; the angles are not
// updated until the next Solve.
func (s *Solver) Goto(target math3d.Vector3) {
	log.Debugf("goto %s", target)
	s.current = target
}

// Current returns the last accepted target position.
func (s *Solver) Current() math3d.Vector3 {
	return s.current
}

// CurrentAngles returns the last accepted joint angles.
func (s *Solver) CurrentAngles() ArmState {
	return s.currentAngles
}

// CheckBounds returns true if the step which Solve would take towards target
// leaves any joint limit. Nothing is changed. Callers use this to reject an
// input before solving it.
//
// Only the next step is checked, not target itself. With ScaleByDt set, the
// step is sized by the dt of the last Solve; before the first Solve that is
// zero, so the current position is checked and a target out of bounds is
// reported as in bounds.
func (s *Solver) CheckBounds(target math3d.Vector3, effectorPitch, effectorRoll float64) bool {
	return s.Violations(target, effectorPitch, effectorRoll) != nil
}

// Violations is like CheckBounds, but returns an error made of one
// *ConstraintError per joint which would leave its limits. Use
// multierr.Errors to pick them apart.
func (s *Solver) Violations(target math3d.Vector3, effectorPitch, effectorRoll float64) error {
	next := s.step(target, s.lastDt)
	return s.check(Inverse(s.settings, next, effectorPitch, effectorRoll))
}

// Solve takes one step towards target and returns the joint angles which put
// the end-effector there, with the given pitch and roll. The step covers a
// tenth of the remaining distance, capped at MaximumSpeed.
//
// If the angles satisfy every constraint, they are committed and returned.
// Otherwise nothing changes, and the previous angles are returned with
// OutOfBounds set.
func (s *Solver) Solve(target math3d.Vector3, effector EffectorState, dt time.Duration) Result {
	s.lastDt = dt

	next := s.step(target, dt)
	a := Inverse(s.settings, next, effector.Pitch, effector.Roll)
	a.EffectorPosition = effector.Position

	if err := s.check(a); err != nil {
		log.WithField("target", next).Debugf("rejected: %s", err)
		return Result{ArmState: s.currentAngles, OutOfBounds: true}
	}

	s.current = next
	s.currentAngles = a
	return Result{ArmState: a, OutOfBounds: false}
}

// step returns the point which is one tick from the current position towards
// target. If the target has already been reached, that's the current position.
func (s *Solver) step(target math3d.Vector3, dt time.Duration) math3d.Vector3 {
	dir := target.Subtract(s.current)
	dist := dir.Magnitude()
	if dist == 0 {
		return s.current
	}

	limit := s.settings.MaximumSpeed
	if s.settings.ScaleByDt {
		limit *= dt.Seconds()
	}

	speed := utils.Clamp(dist*approachRate, -limit, limit)
	return *s.current.Add(dir.Unit().MultiplyByScalar(speed))
}

// check returns an error for every checked joint which violates its
// constraint, or nil.
func (s *Solver) check(a ArmState) error {
	var err error

	for _, j := range checkedJoints {
		c := s.settings.Constraints.For(j)
		v := a.Angle(j)

		if !c.Satisfied(v) || (c == nil && s.settings.RejectNaN && math.IsNaN(v)) {
			err = multierr.Append(err, &ConstraintError{Joint: j, Value: v, Constraint: c})
		}
	}

	return err
}

// Inverse returns the joint angles which put the end-effector at target with
// the given pitch and roll, without checking any constraints. Targets which
// can't be reached produce NaN angles. The effector position is zero.
func Inverse(s Settings, target math3d.Vector3, effectorPitch, effectorRoll float64) ArmState {

	// Looking down from above, the rotunda points straight at the target, and
	// everything else moves in the vertical plane which contains it. So the
	// rest can be solved in 2d, with r as the horizontal axis.
	r := math.Sqrt((target.X * target.X) + (target.Z * target.Z))

	// Walk back from the target along the wrist to find the wrist pitch pivot,
	// relative to the shoulder pivot.
	//
	//           (?)
	//           / \
	//          a   b
	//         /     \
	//     (sh)---c---(wp)----(target)
	//
	elevation := target.Y - s.ShoulderAbsolutePosition.Y - (s.WristLength * math.Sin(effectorPitch))
	reach := r - s.ShoulderAbsolutePosition.Z - (s.WristLength * math.Cos(effectorPitch))
	c := math.Sqrt((reach * reach) + (elevation * elevation))

	// The shoulder and elbow are zero when the upper arm is vertical and the
	// forearm is perpendicular to it.
	shoulder := (math.Pi / 2) - (trig.AngleFromSides(s.ElbowLength, c, s.ShoulderLength) + math.Asin(elevation/c))
	elbow := (math.Pi / 2) - trig.AngleFromSides(c, s.ShoulderLength, s.ElbowLength)

	return ArmState{
		Rotunda:    math.Atan2(target.X, target.Z),
		Shoulder:   shoulder,
		Elbow:      elbow,
		WristPitch: -(elbow + shoulder + effectorPitch),
		WristRoll:  effectorRoll,
	}
}
