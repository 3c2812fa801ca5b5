package ik

import (
	"math"

	"github.com/adammck/arm/math3d"
)

// Chain returns the segments of an arm in the given pose, from the rotunda to
// the tip of the end-effector. The root segment ends at the shoulder pivot.
//
// Wrist roll spins the wrist around its own length, so it doesn't move any of
// the pivots and isn't part of the chain.
func Chain(s Settings, a ArmState) []*Segment {
	root := MakeRootSegment(
		*math3d.MakeSingularEulerAngle(math3d.RotationHeading, a.Rotunda),
		math3d.Vector3{X: 0, Y: s.ShoulderAbsolutePosition.Y, Z: s.ShoulderAbsolutePosition.Z})

	upper := MakeSegment("shoulder", root, *math3d.MakeSingularEulerAngle(math3d.RotationPitch, a.Shoulder), math3d.Vector3{Y: s.ShoulderLength})
	fore := MakeSegment("elbow", upper, *math3d.MakeSingularEulerAngle(math3d.RotationPitch, a.Elbow+(math.Pi/2)), math3d.Vector3{Y: s.ElbowLength})
	wrist := MakeSegment("wrist", fore, *math3d.MakeSingularEulerAngle(math3d.RotationPitch, a.WristPitch), math3d.Vector3{Y: s.WristLength})

	return []*Segment{root, upper, fore, wrist}
}

// Forward returns the position of the tip of the end-effector, in the arm base
// frame, for the given pose. It's the inverse of Inverse.
func Forward(s Settings, a ArmState) math3d.Vector3 {
	chain := Chain(s, a)
	return chain[len(chain)-1].End()
}
