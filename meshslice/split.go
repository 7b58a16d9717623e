package meshslice

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

var (
	// ErrUnsupportedClassification is returned when a straddling triangle's
	// sides do not sum to +1 or -1.
	ErrUnsupportedClassification = errors.New("unsupported classification sum")

	// ErrNoIsolatedVertex is returned when no vertex of a straddling triangle
	// is alone on its side of the plane.
	ErrNoIsolatedVertex = errors.New("no isolated vertex")
)

// A SplitMode determines which parts of a straddling triangle are kept.
type SplitMode int

const (
	// KeepFront keeps only the part of the triangle in front of the plane.
	KeepFront SplitMode = iota

	// KeepBoth re-triangulates the whole triangle, keeping both sides.
	KeepBoth
)

// A OneNewVertexTriangle is a replacement triangle that reuses two vertices
// of the source mesh and adds one new vertex.
type OneNewVertexTriangle struct {
	Existing1 int
	Existing2 int
	New       Vertex

	// Flipped reverses the emitted winding order.
	Flipped bool
}

// Indices gets the triangle's indices given the index of its new vertex.
func (o *OneNewVertexTriangle) Indices(newIndex int) [3]int {
	if o.Flipped {
		return [3]int{newIndex, o.Existing2, o.Existing1}
	}
	return [3]int{o.Existing1, o.Existing2, newIndex}
}

// A TwoNewVertexTriangle is a replacement triangle that reuses one vertex of
// the source mesh and adds two new vertices.
//
// When not flipped, the existing vertex is expected to lie on the opposite
// side of the New1-New2 edge from the vertex the new points were interpolated
// away from.
type TwoNewVertexTriangle struct {
	Existing int
	New1     Vertex
	New2     Vertex

	// Flipped reverses the emitted winding order.
	Flipped bool
}

// Indices gets the triangle's indices given the indices of its new vertices.
func (t *TwoNewVertexTriangle) Indices(new1, new2 int) [3]int {
	if t.Flipped {
		return [3]int{t.Existing, new1, new2}
	}
	return [3]int{new2, new1, t.Existing}
}

// A SplitResult accumulates replacement triangles in the order they were
// produced.
type SplitResult struct {
	One []OneNewVertexTriangle
	Two []TwoNewVertexTriangle
}

// NumTriangles gets the number of replacement triangles.
func (s *SplitResult) NumTriangles() int {
	return len(s.One) + len(s.Two)
}

// NumVertices gets the number of new vertices.
func (s *SplitResult) NumVertices() int {
	return len(s.One) + len(s.Two)*2
}

// A Splitter re-triangulates triangles which straddle a plane.
type Splitter struct {
	Plane *Plane
	Mode  SplitMode

	// Offset is added to every new point after it is interpolated.
	Offset model3d.Coord3D
}

// Split re-triangulates a straddling triangle of m and appends the
// replacement triangles to out.
//
// The sides must be the classification of m's positions against s.Plane, and
// the triangle must be a TriangleStraddle according to them.
func (s *Splitter) Split(m *Mesh, tri [3]int, sides []Side, out *SplitResult) error {
	triSides := [3]Side{sides[tri[0]], sides[tri[1]], sides[tri[2]]}
	sum := int(triSides[0]) + int(triSides[1]) + int(triSides[2])
	if sum != 1 && sum != -1 {
		return errors.Wrapf(ErrUnsupportedClassification, "sum %d", sum)
	}
	isolated, err := isolatedVertex(triSides, sum)
	if err != nil {
		return err
	}

	iso := tri[isolated]
	a := tri[(isolated+1)%3]
	b := tri[(isolated+2)%3]

	newA := m.LerpVertex(iso, a, s.Plane.Interpolant(m.Positions[iso], m.Positions[a]))
	newB := m.LerpVertex(iso, b, s.Plane.Interpolant(m.Positions[iso], m.Positions[b]))
	newA.Position = newA.Position.Add(s.Offset)
	newB.Position = newB.Position.Add(s.Offset)

	keepQuad := s.Mode == KeepBoth || triSides[isolated] == Back
	keepIsolated := s.Mode == KeepBoth || triSides[isolated] == Front

	if keepQuad {
		out.One = append(out.One, OneNewVertexTriangle{
			Existing1: a,
			Existing2: b,
			New:       newA,
		})
		out.Two = append(out.Two, TwoNewVertexTriangle{
			Existing: b,
			New1:     newA,
			New2:     newB,
		})
	}
	if keepIsolated {
		out.Two = append(out.Two, TwoNewVertexTriangle{
			Existing: iso,
			New1:     newA,
			New2:     newB,
			Flipped:  true,
		})
	}
	return nil
}

// isolatedVertex finds the local index of the vertex whose side differs from
// the majority, given the sum of the sides.
func isolatedVertex(sides [3]Side, sum int) (int, error) {
	for i, s := range sides {
		if int(s) != sum {
			return i, nil
		}
	}
	return -1, ErrNoIsolatedVertex
}
