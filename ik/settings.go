package ik

import (
	"github.com/adammck/arm/math3d"
	"github.com/adammck/arm/utils"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (

	// Fraction of the remaining distance to the target which is covered in a
	// single tick, before the speed cap is applied.
	approachRate = 0.1

	defaultShoulderLength = 1.546
	defaultElbowLength    = 1.546
	defaultWristLength    = 0.6
	defaultLerpAmount     = 10.0
	defaultMaximumSpeed   = 0.1
)

var defaultShoulderPosition = math3d.Vector3{X: 0, Y: 0.261, Z: 0.287}

// Settings is the geometry and limits of an arm. Lengths are in meters and
// angles in radians.
type Settings struct {

	// Position of the shoulder pivot in the arm base frame. Only Y (height) and
	// Z (forward reach from the rotunda axis) are used.
	ShoulderAbsolutePosition math3d.Vector3

	ShoulderLength float64
	ElbowLength    float64
	WristLength    float64

	// Maximum distance the tracked target may move per call to Solve (or per
	// second, when ScaleByDt is set).
	MaximumSpeed float64

	// Not applied by the solver yet. Kept so configurations round-trip.
	MaximumAngularSpeed float64
	LerpAmount          float64

	Constraints Constraints

	// RejectNaN treats a joint with no solution as out of bounds even when it
	// has no constraint. Off by default, in which case the NaN is returned.
	RejectNaN bool

	// ScaleByDt caps each step at MaximumSpeed*dt rather than MaximumSpeed, so
	// the arm moves at the same speed regardless of the tick rate.
	ScaleByDt bool
}

// DefaultSettings returns the settings of the full-size arm.
func DefaultSettings() Settings {
	return Settings{
		ShoulderAbsolutePosition: defaultShoulderPosition,
		ShoulderLength:           defaultShoulderLength,
		ElbowLength:              defaultElbowLength,
		WristLength:              defaultWristLength,
		MaximumSpeed:             defaultMaximumSpeed,
		MaximumAngularSpeed:      utils.Rad(60),
		LerpAmount:               defaultLerpAmount,
		Constraints: Constraints{
			Shoulder:   Degrees(-40, 80),
			Elbow:      Degrees(-50, 90),
			WristPitch: Degrees(-90, 90),
		},
	}
}

// Validate returns an error describing every problem with the settings, or
// nil if they can be used.
func (s Settings) Validate() error {
	var err error

	if s.ShoulderLength <= 0 {
		err = multierr.Append(err, errors.Errorf("shoulder length must be positive, got %v", s.ShoulderLength))
	}

	if s.ElbowLength <= 0 {
		err = multierr.Append(err, errors.Errorf("elbow length must be positive, got %v", s.ElbowLength))
	}

	if s.WristLength < 0 {
		err = multierr.Append(err, errors.Errorf("wrist length must not be negative, got %v", s.WristLength))
	}

	if s.MaximumSpeed < 0 {
		err = multierr.Append(err, errors.Errorf("maximum speed must not be negative, got %v", s.MaximumSpeed))
	}

	if s.MaximumAngularSpeed < 0 {
		err = multierr.Append(err, errors.Errorf("maximum angular speed must not be negative, got %v", s.MaximumAngularSpeed))
	}

	for _, j := range Joints {
		c := s.Constraints.For(j)
		if c != nil && c.Min > c.Max {
			err = multierr.Append(err, errors.Errorf("%s constraint min %v is greater than max %v", j, c.Min, c.Max))
		}
	}

	return err
}

// Overrides is a sparse set of changes to Settings. Nil fields are left
// alone. Constraints, when set, replaces the whole constraint set.
type Overrides struct {
	ShoulderAbsolutePosition *math3d.Vector3
	ShoulderLength           *float64
	ElbowLength              *float64
	WristLength              *float64
	MaximumSpeed             *float64
	MaximumAngularSpeed      *float64
	LerpAmount               *float64
	Constraints              *Constraints
	RejectNaN                *bool
	ScaleByDt                *bool
}

// Apply returns a copy of s with the overrides applied.
func (o Overrides) Apply(s Settings) Settings {
	s.Constraints = s.Constraints.Clone()

	if o.ShoulderAbsolutePosition != nil {
		s.ShoulderAbsolutePosition = *o.ShoulderAbsolutePosition
	}

	if o.ShoulderLength != nil {
		s.ShoulderLength = *o.ShoulderLength
	}

	if o.ElbowLength != nil {
		s.ElbowLength = *o.ElbowLength
	}

	if o.WristLength != nil {
		s.WristLength = *o.WristLength
	}

	if o.MaximumSpeed != nil {
		s.MaximumSpeed = *o.MaximumSpeed
	}

	if o.MaximumAngularSpeed != nil {
		s.MaximumAngularSpeed = *o.MaximumAngularSpeed
	}

	if o.LerpAmount != nil {
		s.LerpAmount = *o.LerpAmount
	}

	if o.Constraints != nil {
		s.Constraints = o.Constraints.Clone()
	}

	if o.RejectNaN != nil {
		s.RejectNaN = *o.RejectNaN
	}

	if o.ScaleByDt != nil {
		s.ScaleByDt = *o.ScaleByDt
	}

	return s
}

// Float returns a pointer to v, for building Overrides.
func Float(v float64) *float64 {
	return &v
}

// Bool returns a pointer to v, for building Overrides.
func Bool(v bool) *bool {
	return &v
}
