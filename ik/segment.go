package ik

import (
	"fmt"

	"github.com/adammck/arm/math3d"
)

// Segment is one rigid link of the arm. It pivots around the end of its parent
// (or the arm base, for the root) by angles, and extends by vec in its own
// space. Segments can't be changed once made, so the world transform is
// worked out up front.
type Segment struct {
	Name   string
	parent *Segment
	angles math3d.EulerAngles
	vec    math3d.Vector3
	world  math3d.Matrix44
}

func MakeSegment(name string, parent *Segment, angles math3d.EulerAngles, vec math3d.Vector3) *Segment {
	s := &Segment{
		Name:   name,
		parent: parent,
		angles: angles,
		vec:    vec,
	}

	if parent == nil {
		s.world = *math3d.MakeMatrix44(math3d.ZeroVector3, angles)
	} else {
		// Rotate in place, move to the end of the parent, then into the
		// parent's own frame.
		local := math3d.MakeMatrix44(parent.vec, angles)
		s.world = *math3d.MultiplyMatrices(*local, parent.world)
	}

	return s
}

func MakeRootSegment(angles math3d.EulerAngles, vec math3d.Vector3) *Segment {
	return MakeSegment("root", nil, angles, vec)
}

func (s Segment) String() string {
	parent := "base"
	if s.parent != nil {
		parent = s.parent.Name
	}

	return fmt.Sprintf("&Seg{%s on %s: %s len=%0.3f}", s.Name, parent, s.angles, s.vec.Magnitude())
}

// Start returns the pivot of this segment in the arm base frame.
func (s *Segment) Start() math3d.Vector3 {
	return s.Project(math3d.ZeroVector3)
}

// End returns the far end of this segment in the arm base frame, which is the
// pivot of the next segment along.
func (s *Segment) End() math3d.Vector3 {
	return s.Project(s.vec)
}

// Project transforms a vector in this segment's space into the arm base frame.
func (s *Segment) Project(v math3d.Vector3) math3d.Vector3 {
	return v.MultiplyByMatrix44(s.world)
}
