package meshslice

import (
	"fmt"
	"runtime"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

// A Side is the classification of a vertex relative to a plane.
type Side int8

const (
	Front Side = 1
	Back  Side = -1
)

func (s Side) String() string {
	if s == Front {
		return "front"
	}
	return "back"
}

// A TriangleClass describes where a triangle lies relative to a plane.
type TriangleClass int

const (
	TriangleFront TriangleClass = iota
	TriangleStraddle
	TriangleBack
)

func (t TriangleClass) String() string {
	switch t {
	case TriangleFront:
		return "front"
	case TriangleStraddle:
		return "straddle"
	case TriangleBack:
		return "back"
	default:
		return fmt.Sprintf("TriangleClass(%d)", int(t))
	}
}

// ClassifyVertices computes the Side of every position relative to a plane.
//
// Positions are classified on up to concurrency Goroutines. If concurrency is
// not positive, GOMAXPROCS is used. All work is finished by the time this
// returns.
func ClassifyVertices(positions []model3d.Coord3D, plane *Plane, concurrency int) []Side {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	sides := make([]Side, len(positions))
	essentials.ConcurrentMap(concurrency, len(positions), func(i int) {
		sides[i] = plane.Side(positions[i])
	})
	return sides
}

// ClassifyTriangle classifies a triangle by the sides of its vertices.
func ClassifyTriangle(i1, i2, i3 int, sides []Side) TriangleClass {
	var numFront int
	for _, i := range [3]int{i1, i2, i3} {
		if sides[i] == Front {
			numFront++
		}
	}
	switch numFront {
	case 0:
		return TriangleBack
	case 3:
		return TriangleFront
	default:
		return TriangleStraddle
	}
}
