package meshslice

import (
	"fmt"

	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// Rebuild creates a new mesh from src with the removed triangles taken out
// and the replacement triangles in res added.
//
// If compact is false, removed triangles are kept as zero triangles whose
// indices are all 0, so that the index of every source triangle is
// unchanged. Otherwise, they are dropped.
//
// The new vertices are appended after the source vertices: first one for
// every entry of res.One, then two for every entry of res.Two. The new
// triangles are appended in the same order.
//
// The removed slice must have one entry per triangle of src, or Rebuild
// panics. The src mesh is not modified.
func Rebuild(src *Mesh, removed []bool, res *SplitResult, compact bool) *Mesh {
	if len(removed) != src.NumTriangles() {
		panic(fmt.Sprintf("removed flags for %d triangles but mesh has %d",
			len(removed), src.NumTriangles()))
	}
	numKept := src.NumTriangles()
	if compact {
		numKept = 0
		for _, r := range removed {
			if !r {
				numKept++
			}
		}
	}
	numVertices := src.NumVertices() + res.NumVertices()
	numIndices := (numKept + res.NumTriangles()) * 3

	out := &Mesh{
		Positions: make([]model3d.Coord3D, numVertices),
		Indices:   make([]int, 0, numIndices),
	}
	copy(out.Positions, src.Positions)
	if src.HasUVs() {
		out.UVs = make([]model2d.Coord, numVertices)
		copy(out.UVs, src.UVs)
	}
	if src.HasNormals() {
		out.Normals = make([]model3d.Coord3D, numVertices)
		copy(out.Normals, src.Normals)
	}
	if src.HasTangents() {
		out.Tangents = make([]Tangent, numVertices)
		copy(out.Tangents, src.Tangents)
	}

	for i := 0; i < src.NumTriangles(); i++ {
		if !removed[i] {
			out.Indices = append(out.Indices, src.Indices[i*3:i*3+3]...)
		} else if !compact {
			out.Indices = append(out.Indices, 0, 0, 0)
		}
	}

	next := src.NumVertices()
	for i := range res.One {
		t := &res.One[i]
		out.setVertex(next, t.New)
		idx := t.Indices(next)
		out.Indices = append(out.Indices, idx[:]...)
		next++
	}
	for i := range res.Two {
		t := &res.Two[i]
		out.setVertex(next, t.New1)
		out.setVertex(next+1, t.New2)
		idx := t.Indices(next, next+1)
		out.Indices = append(out.Indices, idx[:]...)
		next += 2
	}

	return out
}

// setVertex writes v into every stream that the mesh has.
func (m *Mesh) setVertex(i int, v Vertex) {
	m.Positions[i] = v.Position
	if m.HasUVs() {
		m.UVs[i] = v.UV
	}
	if m.HasNormals() {
		m.Normals[i] = v.Normal
	}
	if m.HasTangents() {
		m.Tangents[i] = v.Tangent
	}
}
