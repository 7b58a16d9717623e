package meshslice

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/slices"
)

func TestClipCube(t *testing.T) {
	src := newCube()
	plane := &Plane{Normal: model3d.X(1), Distance: 0}
	out, err := Clip(src, plane, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Each of the four side faces has one triangle with two kept vertices,
	// which becomes two triangles with three new vertices, and one with one
	// kept vertex, which becomes one triangle with two new vertices.
	if n := out.NumVertices(); n != 8+4*5 {
		t.Fatalf("expected %d vertices but got %d", 8+4*5, n)
	}
	if n := out.NumTriangles(); n != 12+4*3 {
		t.Fatalf("expected %d triangles but got %d", 12+4*3, n)
	}
	if !slices.Equal(out.Positions[:8], src.Positions) {
		t.Fatal("source vertices should be unchanged")
	}
	for _, c := range out.Positions[8:] {
		if c.X != 0 {
			t.Fatalf("new vertex %v should be on the plane", c)
		}
	}

	for i := 0; i < src.NumTriangles(); i++ {
		if i < 2 {
			if out.Triangle(i) != src.Triangle(i) {
				t.Fatalf("front triangle %d changed from %v to %v", i, src.Triangle(i), out.Triangle(i))
			}
		} else if !out.IsZeroTriangle(i) {
			t.Fatalf("triangle %d should be removed but got %v", i, out.Triangle(i))
		}
	}

	var area float64
	for i := 0; i < out.NumTriangles(); i++ {
		if out.IsZeroTriangle(i) {
			continue
		}
		tri := triangleGeometry(out, i)
		for _, c := range tri {
			if c.X > 0 {
				t.Fatalf("triangle %d has point %v past the plane", i, c)
			}
		}
		area += tri.Area()
	}
	if math.Abs(area-3) > 1e-8 {
		t.Fatalf("expected area 3 but got %f", area)
	}
	checkOutwardFacing(t, out, model3d.Origin)

	compact, err := Clip(src, plane, &Options{Compact: true})
	if err != nil {
		t.Fatal(err)
	}
	if n := compact.NumTriangles(); n != 2+4*3 {
		t.Fatalf("expected %d compact triangles but got %d", 2+4*3, n)
	}
	if !reflect.DeepEqual(compact, out.Compact()) {
		t.Fatal("compact clip should match compacted clip")
	}
}

func TestClipIdempotent(t *testing.T) {
	// Axis-aligned planes at dyadic offsets put new vertices exactly on the
	// plane, so the first result is entirely in front of it.
	planes := []*Plane{
		NewPlanePoint(model3d.X(1), model3d.X(0.25)),
		NewPlanePoint(model3d.Y(-1), model3d.Y(-0.5)),
		NewPlanePoint(model3d.Z(1), model3d.Z(0.75)),
	}
	for _, compact := range []bool{false, true} {
		for i, plane := range planes {
			opts := &Options{Compact: compact}
			once, err := Clip(NewBox(model3d.XYZ(-1, -1, -1), model3d.XYZ(1, 1, 1)), plane, opts)
			if err != nil {
				t.Fatal(err)
			}
			twice, err := Clip(once, plane, opts)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(once, twice) {
				t.Fatalf("plane %d: clipping twice changed the mesh (compact=%v)", i, compact)
			}
		}
	}
}

func TestClipBoxAttributes(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	src := NewBox(model3d.XYZ(-1, -2, -3), model3d.XYZ(1, 2, 3))
	for i := 0; i < 20; i++ {
		plane := randomPlane(r)
		out, err := Clip(src, plane, nil)
		if err != nil {
			t.Fatal(err)
		}
		if err := out.Validate(); err != nil {
			t.Fatal(err)
		}
		checkOutwardFacing(t, out, model3d.Origin)

		// Every face has constant normals and tangents, so every triangle
		// must have a single normal and tangent which matches its facing.
		for j := 0; j < out.NumTriangles(); j++ {
			if out.IsZeroTriangle(j) {
				continue
			}
			tri := out.Triangle(j)
			geom := triangleGeometry(out, j)
			for _, idx := range tri {
				if out.Normals[idx].Dist(out.Normals[tri[0]]) > 1e-8 {
					t.Fatalf("triangle %d has mixed normals", j)
				}
				if out.Tangents[idx].Dir.Dist(out.Tangents[tri[0]].Dir) > 1e-8 {
					t.Fatalf("triangle %d has mixed tangents", j)
				}
				if plane.Value(out.Positions[idx]) > 1e-8 {
					t.Fatalf("triangle %d has a point behind the plane", j)
				}
			}
			if geom.Area() > 1e-8 && geom.Normal().Dot(out.Normals[tri[0]]) < 1-1e-5 {
				t.Fatalf("triangle %d has normal %v but faces %v", j, out.Normals[tri[0]], geom.Normal())
			}
		}
	}
}

func TestClipConcurrency(t *testing.T) {
	src := NewBox(model3d.XYZ(-1, -1, -1), model3d.XYZ(1, 1, 1))
	plane := NewPlanePoint(model3d.X(1), model3d.X(0.5))
	expected, err := Clip(src, plane, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, concurrency := range []int{-1, 1, 2} {
		actual, err := Clip(src, plane, &Options{Concurrency: concurrency})
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(actual, expected) {
			t.Fatalf("concurrency %d changed the result", concurrency)
		}
	}
	if area := expected.Stats().Area; !almostEqual(area, 16, 1e-8) {
		t.Fatalf("unexpected area %f", area)
	}
}

func TestClipSourceUnmodified(t *testing.T) {
	src := NewBox(model3d.XYZ(-1, -1, -1), model3d.XYZ(1, 1, 1))
	expected := src.Copy()
	if _, err := Clip(src, NewPlanePoint(model3d.XYZ(1, 1, 0).Normalize(), model3d.Origin), nil); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(src, expected) {
		t.Fatal("source mesh was modified")
	}
}
