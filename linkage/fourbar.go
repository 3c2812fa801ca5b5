// Package linkage solves planar four-bar linkages, such as the parallel
// linkage which opens and closes the gripper.
package linkage

import (
	"fmt"

	"github.com/adammck/arm/trig"
)

// FourBar is a closed loop of four rigid links. A and D meet at the grounded
// vertex, B and C float, and each link is joined to the next (A-B, B-C, C-D,
// D-A). The shape never changes after construction.
type FourBar struct {
	A float64
	B float64
	C float64
	D float64
}

func NewFourBar(a, b, c, d float64) FourBar {
	return FourBar{A: a, B: b, C: c, D: d}
}

func (fb FourBar) String() string {
	return fmt.Sprintf("&FourBar{a=%0.3f b=%0.3f c=%0.3f d=%0.3f}", fb.A, fb.B, fb.C, fb.D)
}

// Solve returns the interior angles of the linkage at the A-D, A-B, B-C and
// C-D vertices (in that order), given the drive angle theta between A and D.
// The first element is always theta.
//
// The quadrilateral is split along the diagonal x, which runs from the A-B
// vertex to the C-D vertex:
//
//	      B
//	  +-------+
//	  | \     |
//	A |   x   | C
//	  |     \ |
//	  +-------+
//	      D
//
// Each triangle is solved on its own, and the angles meeting at the ends of the
// diagonal are summed. If the links can't close for this theta, some of the
// angles are NaN.
func (fb FourBar) Solve(theta float64) [4]float64 {
	x := trig.SideFromAngle(theta, fb.A, fb.D)

	return [4]float64{
		theta,
		trig.AngleFromSides(fb.C, x, fb.B) + trig.AngleFromSides(fb.D, x, fb.A),
		trig.AngleFromSides(x, fb.C, fb.B),
		trig.AngleFromSides(fb.B, x, fb.C) + trig.AngleFromSides(fb.A, x, fb.D),
	}
}
