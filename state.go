package arm

import (
	"github.com/adammck/arm/ik"
	"github.com/adammck/arm/linkage"
	"github.com/adammck/arm/math3d"
)

// State is shared by all components, and updated once per tick.
type State struct {

	// Where the caller wants the end-effector to be, and how it should be
	// oriented and actuated.
	Target   math3d.Vector3
	Effector ik.EffectorState

	// The last accepted position and angles. Position lags behind Target,
	// since the solver moves towards it in limited steps.
	Position    math3d.Vector3
	Angles      ik.ArmState
	OutOfBounds bool

	// Where Angles actually put the tip of the end-effector. Matches Position
	// unless the arm is in a pose the solver couldn't reach.
	Tip math3d.Vector3

	// The pose of each gripper jaw, derived from Angles.EffectorPosition.
	RightJaw linkage.LinkPose
	LeftJaw  linkage.LinkPose

	// Set when the arm is about to stop. Components get one last tick to park
	// or notify hardware.
	Shutdown bool
}
