package ik

import (
	"math"
	"testing"

	"github.com/adammck/arm/math3d"
	"github.com/stretchr/testify/assert"
)

func TestChainZeroPose(t *testing.T) {
	s := DefaultSettings()
	chain := Chain(s, ArmState{})

	sh := s.ShoulderAbsolutePosition
	exp := []math3d.Vector3{

		// Shoulder pivot.
		{X: 0, Y: sh.Y, Z: sh.Z},

		// The upper arm points straight up.
		{X: 0, Y: sh.Y + s.ShoulderLength, Z: sh.Z},

		// The forearm and wrist point straight forwards.
		{X: 0, Y: sh.Y + s.ShoulderLength, Z: sh.Z + s.ElbowLength},
		{X: 0, Y: sh.Y + s.ShoulderLength, Z: sh.Z + s.ElbowLength + s.WristLength},
	}

	for i, seg := range chain {
		act := seg.End()
		assert.InDelta(t, 0, act.Distance(exp[i]), 1e-9, "%s: got %s, expected %s", seg.Name, act, exp[i])
	}

	assert.InDelta(t, 0, chain[1].Start().Distance(exp[0]), 1e-9)
}

func TestChainRotunda(t *testing.T) {
	s := DefaultSettings()
	a := ArmState{Rotunda: math.Pi / 2}

	// Swinging the rotunda a quarter turn moves everything onto the X axis.
	tip := Forward(s, a)
	assert.InDelta(t, s.ShoulderAbsolutePosition.Z+s.ElbowLength+s.WristLength, tip.X, 1e-9)
	assert.InDelta(t, 0, tip.Z, 1e-9)
}

func TestSegmentString(t *testing.T) {
	root := MakeRootSegment(math3d.IdentityOrientation, math3d.ZeroVector3)
	child := MakeSegment("child", root, *math3d.MakeSingularEulerAngle(math3d.RotationPitch, math.Pi/2), math3d.Vector3{Y: 1.5})

	assert.Equal(t, "&Seg{root on base: &Euler{h=+0.00° p=+0.00° b=+0.00°} len=0.000}", root.String())
	assert.Equal(t, "&Seg{child on root: &Euler{h=+0.00° p=+90.00° b=+0.00°} len=1.500}", child.String())
}

func TestSegmentPitch(t *testing.T) {

	// Pitching a quarter turn tips a vertical segment forwards along Z.
	root := MakeRootSegment(math3d.IdentityOrientation, math3d.Vector3{Y: 1})
	child := MakeSegment("child", root, *math3d.MakeSingularEulerAngle(math3d.RotationPitch, math.Pi/2), math3d.Vector3{Y: 2})

	assert.InDelta(t, 0, child.Start().Distance(math3d.Vector3{Y: 1}), 1e-9)
	assert.InDelta(t, 0, child.End().Distance(math3d.Vector3{Y: 1, Z: 2}), 1e-9)
}
