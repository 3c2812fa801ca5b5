package linkage

import (
	"math"

	"github.com/adammck/arm/math3d"
)

// Driven wraps a FourBar so that a drive angle of zero is the rest pose of the
// linkage, and positive angles close it.
type Driven struct {
	FourBar

	// The interior A-D angle when the drive angle is zero.
	Rest float64
}

// Solve is like FourBar.Solve, but theta is relative to the rest pose. The
// first element is theta as given, not the interior angle.
func (d Driven) Solve(theta float64) [4]float64 {
	out := d.FourBar.Solve(d.Rest - theta)
	out[0] = theta
	return out
}

// InitialAngle returns the rest angle of a linkage, given the offset of the
// drive link's pivot from its parent (p2) and the offset of the next pivot
// along the drive link (p3). Both are in the same coordinate space.
func InitialAngle(p2, p3 math3d.Vector3) float64 {
	return p2.MultiplyByScalar(-1).AngleTo(p3)
}

// LinkPose is the rotation (in radians) of each moving link in a gripper jaw,
// relative to its parent link.
type LinkPose struct {
	Drive    float64
	Coupler  float64
	Follower float64
}

// Gripper is a pair of mirrored four-bar linkages, one per jaw, driven by the
// same actuation angle.
type Gripper struct {
	Linkage Driven
}

// NewGripper builds a gripper from the pivot offsets of one jaw, each relative
// to the previous pivot: p2 is the drive pivot, then p3, p4 and p5 follow
// around the loop.
func NewGripper(p2, p3, p4, p5 math3d.Vector3) Gripper {
	return Gripper{
		Linkage: Driven{
			FourBar: NewFourBar(p3.Magnitude(), p4.Magnitude(), p5.Magnitude(), p2.Magnitude()),
			Rest:    InitialAngle(p2, p3),
		},
	}
}

// Right returns the pose of the right jaw for the given actuation angle.
func (g Gripper) Right(theta float64) LinkPose {
	a := g.Linkage.Solve(theta)
	return LinkPose{
		Drive:    a[0],
		Coupler:  math.Pi - a[1],
		Follower: math.Pi - a[2],
	}
}

// Left returns the pose of the left jaw, which mirrors the right.
func (g Gripper) Left(theta float64) LinkPose {
	r := g.Right(theta)
	return LinkPose{
		Drive:    -r.Drive,
		Coupler:  -r.Coupler,
		Follower: -r.Follower,
	}
}
