package ik

import (
	"fmt"
	"math"

	"github.com/adammck/arm/utils"
)

// Constraint is the closed interval (in radians) which a joint must stay in.
type Constraint struct {
	Min float64
	Max float64
}

// Degrees returns a constraint from limits given in degrees.
func Degrees(min, max float64) *Constraint {
	return &Constraint{Min: utils.Rad(min), Max: utils.Rad(max)}
}

// Satisfied returns true if v is within the constraint. A nil constraint is
// always satisfied. NaN never satisfies a non-nil constraint.
func (c *Constraint) Satisfied(v float64) bool {
	if c == nil {
		return true
	}

	return c.Min <= v && v <= c.Max
}

func (c *Constraint) String() string {
	if c == nil {
		return "unconstrained"
	}

	return fmt.Sprintf("[%+.2f°, %+.2f°]", utils.Deg(c.Min), utils.Deg(c.Max))
}

// Constraints holds the optional limit of each joint. A nil field means the
// joint is unconstrained.
type Constraints struct {
	Rotunda          *Constraint
	Shoulder         *Constraint
	Elbow            *Constraint
	WristPitch       *Constraint
	WristRoll        *Constraint
	EffectorPosition *Constraint
}

// For returns the constraint of the given joint, which may be nil.
func (cs Constraints) For(j Joint) *Constraint {
	switch j {
	case Rotunda:
		return cs.Rotunda
	case Shoulder:
		return cs.Shoulder
	case Elbow:
		return cs.Elbow
	case WristPitch:
		return cs.WristPitch
	case WristRoll:
		return cs.WristRoll
	case EffectorPosition:
		return cs.EffectorPosition
	}

	return nil
}

// Clone returns a deep copy, so settings never share constraints.
func (cs Constraints) Clone() Constraints {
	return Constraints{
		Rotunda:          cs.Rotunda.clone(),
		Shoulder:         cs.Shoulder.clone(),
		Elbow:            cs.Elbow.clone(),
		WristPitch:       cs.WristPitch.clone(),
		WristRoll:        cs.WristRoll.clone(),
		EffectorPosition: cs.EffectorPosition.clone(),
	}
}

func (c *Constraint) clone() *Constraint {
	if c == nil {
		return nil
	}

	cc := *c
	return &cc
}

// ConstraintError describes a single joint which would leave its limits.
type ConstraintError struct {
	Joint      Joint
	Value      float64
	Constraint *Constraint
}

func (e *ConstraintError) Error() string {
	if math.IsNaN(e.Value) {
		return fmt.Sprintf("%s has no solution (limits %s)", e.Joint, e.Constraint)
	}

	return fmt.Sprintf("%s angle %+.2f° outside %s", e.Joint, utils.Deg(e.Value), e.Constraint)
}
