package ik

import (
	"fmt"
	"math"

	"github.com/adammck/arm/utils"
)

// Joint names one of the actuated degrees of freedom of the arm.
type Joint int

const (
	Rotunda Joint = iota
	Shoulder
	Elbow
	WristPitch
	WristRoll
	EffectorPosition
)

// Joints lists every joint, in the order they appear in an ArmState and in the
// outbound command.
var Joints = []Joint{Rotunda, Shoulder, Elbow, WristPitch, WristRoll, EffectorPosition}

func (j Joint) String() string {
	switch j {
	case Rotunda:
		return "rotunda"
	case Shoulder:
		return "shoulder"
	case Elbow:
		return "elbow"
	case WristPitch:
		return "wristPitch"
	case WristRoll:
		return "wristRoll"
	case EffectorPosition:
		return "effectorPosition"
	}

	return fmt.Sprintf("joint(%d)", int(j))
}

// ArmState is a full set of joint angles, in radians. EffectorPosition drives
// the gripper linkage and is passed through from the caller.
type ArmState struct {
	Rotunda          float64
	Shoulder         float64
	Elbow            float64
	WristPitch       float64
	WristRoll        float64
	EffectorPosition float64
}

// Angle returns the value of a single joint.
func (s ArmState) Angle(j Joint) float64 {
	switch j {
	case Rotunda:
		return s.Rotunda
	case Shoulder:
		return s.Shoulder
	case Elbow:
		return s.Elbow
	case WristPitch:
		return s.WristPitch
	case WristRoll:
		return s.WristRoll
	case EffectorPosition:
		return s.EffectorPosition
	}

	return math.NaN()
}

// Valid returns false if any joint is NaN.
func (s ArmState) Valid() bool {
	for _, j := range Joints {
		if math.IsNaN(s.Angle(j)) {
			return false
		}
	}

	return true
}

func (s ArmState) String() string {
	return fmt.Sprintf("&Arm{rot=%+.2f° sh=%+.2f° el=%+.2f° wp=%+.2f° wr=%+.2f° ef=%+.2f}",
		utils.Deg(s.Rotunda), utils.Deg(s.Shoulder), utils.Deg(s.Elbow),
		utils.Deg(s.WristPitch), utils.Deg(s.WristRoll), s.EffectorPosition)
}

// EffectorState is the orientation and actuation which the caller wants the
// end-effector to have. Pitch and Roll are in radians.
type EffectorState struct {
	Pitch    float64
	Roll     float64
	Position float64
}

// Result is returned by Solver.Solve. When OutOfBounds is true, the angles are
// the last accepted ones, and the arm should not move.
type Result struct {
	ArmState
	OutOfBounds bool
}
