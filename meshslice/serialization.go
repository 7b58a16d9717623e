package meshslice

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

const (
	streamUVs = 1 << iota
	streamNormals
	streamTangents
)

// WriteMesh serializes m in a 32-bit precision binary format which keeps
// every attribute stream.
func WriteMesh(w io.Writer, m *Mesh) error {
	var flags uint32
	if m.HasUVs() {
		flags |= streamUVs
	}
	if m.HasNormals() {
		flags |= streamNormals
	}
	if m.HasTangents() {
		flags |= streamTangents
	}
	header := []uint32{uint32(m.NumVertices()), uint32(len(m.Indices)), flags}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return errors.Wrap(err, "write mesh")
	}

	values := make([]float32, 0, m.NumVertices()*12)
	for _, c := range m.Positions {
		values = append(values, float32(c.X), float32(c.Y), float32(c.Z))
	}
	for _, c := range m.UVs {
		values = append(values, float32(c.X), float32(c.Y))
	}
	for _, c := range m.Normals {
		values = append(values, float32(c.X), float32(c.Y), float32(c.Z))
	}
	for _, t := range m.Tangents {
		values = append(values, float32(t.Dir.X), float32(t.Dir.Y), float32(t.Dir.Z), float32(t.W))
	}
	if err := binary.Write(w, binary.LittleEndian, values); err != nil {
		return errors.Wrap(err, "write mesh")
	}

	indices := make([]uint32, len(m.Indices))
	for i, x := range m.Indices {
		indices[i] = uint32(x)
	}
	if err := binary.Write(w, binary.LittleEndian, indices); err != nil {
		return errors.Wrap(err, "write mesh")
	}
	return nil
}

// ReadMesh reads the output written by WriteMesh.
func ReadMesh(r io.Reader) (*Mesh, error) {
	res, err := readMesh(r)
	if err != nil {
		return nil, errors.Wrap(err, "read mesh")
	}
	if err := res.Validate(); err != nil {
		return nil, errors.Wrap(err, "read mesh")
	}
	return res, nil
}

func readMesh(r io.Reader) (*Mesh, error) {
	var header [3]uint32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	numVertices, numIndices, flags := int(header[0]), int(header[1]), header[2]

	res := &Mesh{}
	positions, err := readFloats(r, numVertices*3)
	if err != nil {
		return nil, err
	}
	res.Positions = make([]model3d.Coord3D, numVertices)
	for i := range res.Positions {
		res.Positions[i] = model3d.XYZ(positions[i*3], positions[i*3+1], positions[i*3+2])
	}

	if flags&streamUVs != 0 {
		uvs, err := readFloats(r, numVertices*2)
		if err != nil {
			return nil, err
		}
		res.UVs = make([]model2d.Coord, numVertices)
		for i := range res.UVs {
			res.UVs[i] = model2d.XY(uvs[i*2], uvs[i*2+1])
		}
	}
	if flags&streamNormals != 0 {
		normals, err := readFloats(r, numVertices*3)
		if err != nil {
			return nil, err
		}
		res.Normals = make([]model3d.Coord3D, numVertices)
		for i := range res.Normals {
			res.Normals[i] = model3d.XYZ(normals[i*3], normals[i*3+1], normals[i*3+2])
		}
	}
	if flags&streamTangents != 0 {
		tangents, err := readFloats(r, numVertices*4)
		if err != nil {
			return nil, err
		}
		res.Tangents = make([]Tangent, numVertices)
		for i := range res.Tangents {
			res.Tangents[i] = Tangent{
				Dir: model3d.XYZ(tangents[i*4], tangents[i*4+1], tangents[i*4+2]),
				W:   tangents[i*4+3],
			}
		}
	}

	indices, err := readChunked[uint32](r, numIndices)
	if err != nil {
		return nil, err
	}
	res.Indices = make([]int, numIndices)
	for i, x := range indices {
		res.Indices[i] = int(x)
	}
	return res, nil
}

func readFloats(r io.Reader, n int) ([]float64, error) {
	values, err := readChunked[float32](r, n)
	if err != nil {
		return nil, err
	}
	res := make([]float64, n)
	for i, x := range values {
		res[i] = float64(x)
	}
	return res, nil
}

// readChunked reads n values, growing the buffer only as data arrives so
// that a corrupt header cannot trigger a huge allocation.
func readChunked[T float32 | uint32](r io.Reader, n int) ([]T, error) {
	const chunkSize = 1 << 16
	var res []T
	chunk := make([]T, chunkSize)
	for len(res) < n {
		if remaining := n - len(res); remaining < chunkSize {
			chunk = chunk[:remaining]
		}
		if err := binary.Read(r, binary.LittleEndian, chunk); err != nil {
			return nil, err
		}
		res = append(res, chunk...)
	}
	return res, nil
}

// Load opens a file and decodes it with f.
func Load[T any](path string, f func(r io.Reader) (T, error)) (T, error) {
	var zero T
	r, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer r.Close()
	return f(r)
}

// Save creates a file and encodes obj into it with f.
func Save[T any](path string, obj T, f func(w io.Writer, obj T) error) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f(w, obj); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// LoadFile reads a mesh from an STL file or a file written by WriteMesh,
// depending on the extension.
func LoadFile(path string) (*Mesh, error) {
	if isSTL(path) {
		tris, err := Load(path, model3d.ReadSTL)
		if err != nil {
			return nil, errors.Wrap(err, "load mesh")
		}
		return FromTriangles(tris), nil
	}
	res, err := Load(path, ReadMesh)
	if err != nil {
		return nil, errors.Wrap(err, "load mesh")
	}
	return res, nil
}

// SaveFile writes a mesh to an STL file or in the format of WriteMesh,
// depending on the extension. STL files only keep positions, and skip zero
// triangles.
func SaveFile(path string, m *Mesh) error {
	var err error
	if isSTL(path) {
		err = Save(path, m.Model3D().TriangleSlice(), model3d.WriteSTL)
	} else {
		err = Save(path, m, WriteMesh)
	}
	if err != nil {
		return errors.Wrap(err, "save mesh")
	}
	return nil
}

func isSTL(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".stl"
}
