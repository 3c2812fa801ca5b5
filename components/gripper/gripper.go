// Package gripper poses the jaws of the gripper from the effector position.
package gripper

import (
	"math"
	"time"

	"github.com/adammck/arm"
	"github.com/adammck/arm/linkage"
	"github.com/pkg/errors"
)

type Gripper struct {
	linkage linkage.Gripper
}

func New(g linkage.Gripper) *Gripper {
	return &Gripper{g}
}

func (g *Gripper) Boot() error {
	return nil
}

// Tick updates both jaws. If the linkage can't close at the current effector
// position, the NaN angles are stored anyway and an error is returned.
func (g *Gripper) Tick(now time.Time, state *arm.State) error {
	theta := state.Angles.EffectorPosition
	state.RightJaw = g.linkage.Right(theta)
	state.LeftJaw = g.linkage.Left(theta)

	if math.IsNaN(state.RightJaw.Coupler) || math.IsNaN(state.RightJaw.Follower) {
		return errors.Errorf("gripper linkage can't close at %0.3f", theta)
	}

	return nil
}
