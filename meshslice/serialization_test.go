package meshslice

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestMeshSerialization(t *testing.T) {
	box := NewBox(model3d.XYZ(-1, -2, -3), model3d.XYZ(1, 0.5, 0.25))
	clipped, err := Clip(box, NewPlanePoint(model3d.X(1), model3d.X(0.5)), nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, m := range []*Mesh{newCube(), box, clipped} {
		var buf bytes.Buffer
		if err := WriteMesh(&buf, m); err != nil {
			t.Fatal(err)
		}
		decoded, err := ReadMesh(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(decoded, m) {
			t.Errorf("mesh %d: decoded mesh differs", i)
		}
	}
}

func TestReadMeshErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMesh(&buf, newCube()); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	if _, err := ReadMesh(bytes.NewReader(data[:len(data)-2])); err == nil {
		t.Error("expected an error for truncated data")
	}

	// Headers claiming more data than present must fail without
	// allocating for the claimed size.
	for _, header := range [][3]uint32{{1 << 30, 0, 0}, {8, 1 << 31, 0}, {1 << 28, 0, 7}} {
		buf.Reset()
		if err := binary.Write(&buf, binary.LittleEndian, header); err != nil {
			t.Fatal(err)
		}
		if _, err := ReadMesh(&buf); err == nil {
			t.Errorf("expected an error for header %v", header)
		}
	}

	m := newCube()
	m.Indices[4] = 100
	buf.Reset()
	if err := WriteMesh(&buf, m); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadMesh(&buf); err == nil {
		t.Error("expected an error for an invalid mesh")
	}
}

func TestMeshSerializationLarge(t *testing.T) {
	// More values than fit in a single read chunk.
	var tris []*model3d.Triangle
	for i := 0; i < 10000; i++ {
		x := float64(i)
		tris = append(tris, &model3d.Triangle{model3d.X(x), model3d.XYZ(x, 1, 0), model3d.XYZ(x, 0, 1)})
	}
	m := FromTriangles(tris)
	var buf bytes.Buffer
	if err := WriteMesh(&buf, m); err != nil {
		t.Fatal(err)
	}
	decoded, err := ReadMesh(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, m) {
		t.Fatal("decoded mesh differs")
	}
}

func TestMeshFiles(t *testing.T) {
	dir := t.TempDir()
	box := NewBox(model3d.XYZ(-1, -1, -1), model3d.XYZ(1, 1, 1))

	meshPath := filepath.Join(dir, "box.mesh")
	if err := SaveFile(meshPath, box); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadFile(meshPath)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded, box) {
		t.Fatal("mesh file round trip differs")
	}

	stlPath := filepath.Join(dir, "box.STL")
	if err := SaveFile(stlPath, box); err != nil {
		t.Fatal(err)
	}
	loaded, err = LoadFile(stlPath)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.NumTriangles() != 12 || loaded.HasUVs() || loaded.HasTangents() {
		t.Fatalf("unexpected STL mesh: %v", loaded.Stats())
	}
	if area := loaded.Stats().Area; !almostEqual(area, 24, 1e-5) {
		t.Fatalf("expected area 24 but got %f", area)
	}
	checkOutwardFacing(t, loaded, model3d.Origin)

	if _, err := LoadFile(filepath.Join(dir, "missing.mesh")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
