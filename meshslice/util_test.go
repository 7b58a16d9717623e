package meshslice

import (
	"math"
	"math/rand"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

// newCube creates a cube with 8 shared vertices and 12 outward-facing
// triangles, centered at the origin with side length 1.
//
// Vertex i has coordinate +0.5 along axis j if bit j of i is set, and -0.5
// otherwise.
func newCube() *Mesh {
	res := &Mesh{}
	for i := 0; i < 8; i++ {
		res.Positions = append(res.Positions, model3d.XYZ(
			float64(i&1)-0.5,
			float64((i>>1)&1)-0.5,
			float64((i>>2)&1)-0.5,
		))
	}
	res.Indices = []int{
		0, 4, 6, 0, 6, 2, // -X
		1, 3, 7, 1, 7, 5, // +X
		0, 1, 5, 0, 5, 4, // -Y
		2, 6, 7, 2, 7, 3, // +Y
		0, 2, 3, 0, 3, 1, // -Z
		4, 5, 7, 4, 7, 6, // +Z
	}
	return res
}

func triangleGeometry(m *Mesh, i int) *model3d.Triangle {
	t := m.Triangle(i)
	return &model3d.Triangle{m.Positions[t[0]], m.Positions[t[1]], m.Positions[t[2]]}
}

func randomTriangle(r *rand.Rand) *model3d.Triangle {
	var res model3d.Triangle
	for i := range res {
		res[i] = model3d.XYZ(r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
	}
	return &res
}

func randomPlane(r *rand.Rand) *Plane {
	normal := model3d.XYZ(r.NormFloat64(), r.NormFloat64(), r.NormFloat64()).Normalize()
	return &Plane{Normal: normal, Distance: r.NormFloat64() * 0.5}
}

// checkOutwardFacing checks that every non-zero triangle of a mesh derived
// from a convex shape centered at center faces away from center.
func checkOutwardFacing(t *testing.T, m *Mesh, center model3d.Coord3D) {
	for i := 0; i < m.NumTriangles(); i++ {
		if m.IsZeroTriangle(i) {
			continue
		}
		tri := triangleGeometry(m, i)
		if tri.Area() < 1e-12 {
			continue
		}
		mid := tri[0].Add(tri[1]).Add(tri[2]).Scale(1.0 / 3)
		if tri.Normal().Dot(mid.Sub(center)) <= 0 {
			t.Fatalf("triangle %d faces inward: %v", i, tri)
		}
	}
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
