package meshslice

import (
	"log"

	"github.com/pkg/errors"
)

// Options control how a Modifier processes a mesh.
type Options struct {
	// Concurrency is the maximum number of Goroutines used to classify
	// vertices. If not positive, GOMAXPROCS is used.
	Concurrency int

	// Compact drops removed triangles instead of leaving zero triangles in
	// their place.
	Compact bool

	// Verbose, if true, logs statistics for every plane.
	Verbose bool
}

// A Modifier computes a new mesh from a source mesh.
//
// Implementations never modify the source mesh, and return freshly allocated
// buffers.
type Modifier interface {
	Modify(src *Mesh) (*Mesh, error)
}

// Recompute validates src and then applies m to it.
//
// On failure, no mesh is returned, so a caller holding a previous result can
// keep displaying it.
func Recompute(src *Mesh, m Modifier) (*Mesh, error) {
	if err := src.Validate(); err != nil {
		return nil, errors.Wrap(err, "recompute: invalid source mesh")
	}
	res, err := m.Modify(src)
	if err != nil {
		return nil, errors.Wrap(err, "recompute")
	}
	return res, nil
}

// applyPlane classifies and splits every triangle of src against the
// splitter's plane and rebuilds the result.
//
// The returned sides classify the vertices of src, which are also the first
// vertices of the result.
func applyPlane(src *Mesh, s *Splitter, removeBack bool, opts *Options) (*Mesh, []Side, error) {
	if opts == nil {
		opts = &Options{}
	}
	sides := ClassifyVertices(src.Positions, s.Plane, opts.Concurrency)

	removed := make([]bool, src.NumTriangles())
	res := &SplitResult{}
	var numBack, numStraddle int
	for i := range removed {
		tri := src.Triangle(i)
		switch ClassifyTriangle(tri[0], tri[1], tri[2], sides) {
		case TriangleStraddle:
			if err := s.Split(src, tri, sides, res); err != nil {
				return nil, nil, errors.Wrapf(err, "split triangle %d against plane %v", i, *s.Plane)
			}
			removed[i] = true
			numStraddle++
		case TriangleBack:
			removed[i] = removeBack
			numBack++
		}
	}

	if opts.Verbose {
		log.Printf(
			"plane normal=%v distance=%f: back=%d straddle=%d new_triangles=%d new_vertices=%d",
			s.Plane.Normal, s.Plane.Distance, numBack, numStraddle,
			res.NumTriangles(), res.NumVertices(),
		)
	}

	return Rebuild(src, removed, res, opts.Compact), sides, nil
}
