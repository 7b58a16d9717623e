package meshslice

import (
	"fmt"
	"strings"

	"github.com/unixpickle/model3d/model3d"
)

// Stats summarizes the contents of a mesh.
type Stats struct {
	Triangles     int
	ZeroTriangles int
	Vertices      int
	UVs           int
	Normals       int
	Tangents      int

	Min  model3d.Coord3D
	Max  model3d.Coord3D
	Area float64
}

// Stats computes statistics for the mesh.
func (m *Mesh) Stats() *Stats {
	res := &Stats{
		Triangles: m.NumTriangles(),
		Vertices:  m.NumVertices(),
		UVs:       len(m.UVs),
		Normals:   len(m.Normals),
		Tangents:  len(m.Tangents),
		Min:       m.Min(),
		Max:       m.Max(),
	}
	for i := 0; i < m.NumTriangles(); i++ {
		if m.IsZeroTriangle(i) {
			res.ZeroTriangles++
			continue
		}
		t := m.Triangle(i)
		tri := model3d.Triangle{m.Positions[t[0]], m.Positions[t[1]], m.Positions[t[2]]}
		res.Area += tri.Area()
	}
	return res
}

func (s *Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Triangles: %d (%d zero)\n", s.Triangles, s.ZeroTriangles)
	fmt.Fprintf(&b, "Vertices: %d\n", s.Vertices)
	fmt.Fprintf(&b, "UV: %d\n", s.UVs)
	fmt.Fprintf(&b, "Normals: %d\n", s.Normals)
	fmt.Fprintf(&b, "Tangents: %d\n", s.Tangents)
	fmt.Fprintf(&b, "Bounds: %v - %v\n", s.Min, s.Max)
	fmt.Fprintf(&b, "Area: %f", s.Area)
	return b.String()
}
