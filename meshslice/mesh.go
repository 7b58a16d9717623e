package meshslice

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// A Tangent is a tangent direction plus a handedness sign in W, matching the
// four-component tangents used by most renderers.
type Tangent struct {
	Dir model3d.Coord3D
	W   float64
}

// Lerp linearly interpolates between t and t1.
func (t Tangent) Lerp(t1 Tangent, frac float64) Tangent {
	return Tangent{
		Dir: lerp(t.Dir, t1.Dir, frac),
		W:   lerpScalar(t.W, t1.W, frac),
	}
}

// A Vertex holds one entry of every attribute stream of a Mesh.
// Fields for streams that a mesh does not have are left zero.
type Vertex struct {
	Position model3d.Coord3D
	UV       model2d.Coord
	Normal   model3d.Coord3D
	Tangent  Tangent
}

// A Mesh is an indexed triangle mesh with index-aligned attribute streams.
//
// Positions is required. UVs, Normals, and Tangents are optional, and are
// either empty or the same length as Positions.
//
// Every three entries of Indices form a triangle, whose winding order
// determines its facing.
type Mesh struct {
	Positions []model3d.Coord3D
	UVs       []model2d.Coord
	Normals   []model3d.Coord3D
	Tangents  []Tangent

	Indices []int
}

// FromTriangles creates a mesh with three unshared vertices per triangle,
// using each triangle's face normal as its vertex normals.
func FromTriangles(tris []*model3d.Triangle) *Mesh {
	res := &Mesh{
		Positions: make([]model3d.Coord3D, 0, len(tris)*3),
		Normals:   make([]model3d.Coord3D, 0, len(tris)*3),
		Indices:   make([]int, 0, len(tris)*3),
	}
	for _, t := range tris {
		n := t.Normal()
		for _, c := range t {
			res.Indices = append(res.Indices, len(res.Positions))
			res.Positions = append(res.Positions, c)
			res.Normals = append(res.Normals, n)
		}
	}
	return res
}

// NumVertices returns the length of the attribute streams.
func (m *Mesh) NumVertices() int {
	return len(m.Positions)
}

// NumTriangles returns the number of index triples, including zeroed ones.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Triangle returns the indices of the i-th triangle.
func (m *Mesh) Triangle(i int) [3]int {
	return [3]int{m.Indices[i*3], m.Indices[i*3+1], m.Indices[i*3+2]}
}

func (m *Mesh) HasUVs() bool {
	return len(m.UVs) > 0
}

func (m *Mesh) HasNormals() bool {
	return len(m.Normals) > 0
}

func (m *Mesh) HasTangents() bool {
	return len(m.Tangents) > 0
}

// Vertex gathers the attributes of the i-th vertex.
func (m *Mesh) Vertex(i int) Vertex {
	v := Vertex{Position: m.Positions[i]}
	if m.HasUVs() {
		v.UV = m.UVs[i]
	}
	if m.HasNormals() {
		v.Normal = m.Normals[i]
	}
	if m.HasTangents() {
		v.Tangent = m.Tangents[i]
	}
	return v
}

// LerpVertex interpolates every present stream between vertices i1 and i2.
func (m *Mesh) LerpVertex(i1, i2 int, t float64) Vertex {
	v := Vertex{Position: lerp(m.Positions[i1], m.Positions[i2], t)}
	if m.HasUVs() {
		v.UV = lerp(m.UVs[i1], m.UVs[i2], t)
	}
	if m.HasNormals() {
		v.Normal = lerp(m.Normals[i1], m.Normals[i2], t)
	}
	if m.HasTangents() {
		v.Tangent = m.Tangents[i1].Lerp(m.Tangents[i2], t)
	}
	return v
}

// Validate checks that the mesh can be processed.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Indices)%3 != 0 {
		return errors.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	streams := []struct {
		Name  string
		Count int
	}{
		{"uv", len(m.UVs)},
		{"normal", len(m.Normals)},
		{"tangent", len(m.Tangents)},
	}
	for _, s := range streams {
		if s.Count != 0 && s.Count != n {
			return errors.Errorf("%s stream has %d entries but there are %d positions",
				s.Name, s.Count, n)
		}
	}
	for i, idx := range m.Indices {
		if idx < 0 || idx >= n {
			return errors.Errorf("index %d at offset %d out of range [0, %d)", idx, i, n)
		}
	}
	for i, c := range m.Positions {
		if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Z) {
			return errors.Errorf("position %d is NaN", i)
		}
	}
	return nil
}

// Copy creates a deep copy of the mesh.
func (m *Mesh) Copy() *Mesh {
	return &Mesh{
		Positions: slices.Clone(m.Positions),
		UVs:       slices.Clone(m.UVs),
		Normals:   slices.Clone(m.Normals),
		Tangents:  slices.Clone(m.Tangents),
		Indices:   slices.Clone(m.Indices),
	}
}

// Min gets the minimum corner of the bounding box of every position.
func (m *Mesh) Min() model3d.Coord3D {
	if len(m.Positions) == 0 {
		return model3d.Origin
	}
	res := m.Positions[0]
	for _, c := range m.Positions[1:] {
		res = res.Min(c)
	}
	return res
}

// Max gets the maximum corner of the bounding box of every position.
func (m *Mesh) Max() model3d.Coord3D {
	if len(m.Positions) == 0 {
		return model3d.Origin
	}
	res := m.Positions[0]
	for _, c := range m.Positions[1:] {
		res = res.Max(c)
	}
	return res
}

// Size gets the dimensions of the bounding box.
func (m *Mesh) Size() model3d.Coord3D {
	return m.Max().Sub(m.Min())
}

// IsZeroTriangle checks if the i-th triangle is degenerate because all of its
// indices are the same, as is the case for removed triangles.
func (m *Mesh) IsZeroTriangle(i int) bool {
	t := m.Triangle(i)
	return t[0] == t[1] && t[1] == t[2]
}

// Compact creates a copy of the mesh without zero triangles.
//
// Vertices are left untouched, even if no triangle refers to them anymore.
func (m *Mesh) Compact() *Mesh {
	res := m.Copy()
	res.Indices = res.Indices[:0]
	for i := 0; i < m.NumTriangles(); i++ {
		if !m.IsZeroTriangle(i) {
			res.Indices = append(res.Indices, m.Indices[i*3:i*3+3]...)
		}
	}
	return res
}

// Model3D converts the mesh into a model3d.Mesh, dropping zero triangles and
// every attribute but positions.
func (m *Mesh) Model3D() *model3d.Mesh {
	res := model3d.NewMesh()
	for i := 0; i < m.NumTriangles(); i++ {
		if m.IsZeroTriangle(i) {
			continue
		}
		t := m.Triangle(i)
		res.Add(&model3d.Triangle{m.Positions[t[0]], m.Positions[t[1]], m.Positions[t[2]]})
	}
	return res
}

type lerpable[T any] interface {
	Add(T) T
	Sub(T) T
	Scale(float64) T
}

func lerp[T lerpable[T]](a, b T, t float64) T {
	return a.Add(b.Sub(a).Scale(t))
}

func lerpScalar[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}
