package meshslice

import (
	"github.com/pkg/errors"
)

// A Slicer resizes a mesh with nine-slice scaling: the regions near each
// side of the bounding box keep their shape and are translated, while the
// region between them is stretched.
type Slicer struct {
	Config *SliceConfig
	Options
}

// Slice resizes src according to cfg.
//
// The opts argument may be nil to use default options.
func Slice(src *Mesh, cfg *SliceConfig, opts *Options) (*Mesh, error) {
	s := &Slicer{Config: cfg}
	if opts != nil {
		s.Options = *opts
	}
	return s.Modify(src)
}

// Modify resizes src. It fails without a Config.
//
// Every plane splits the mesh produced by the previous plane, so triangles
// crossing several planes are cut by all of them. Afterwards, every vertex
// is classified against every plane before any vertex is moved.
func (s *Slicer) Modify(src *Mesh) (*Mesh, error) {
	if s.Config == nil {
		return nil, errors.New("slice mesh: no configuration")
	}
	if err := src.Validate(); err != nil {
		return nil, errors.Wrap(err, "slice mesh")
	}
	if err := s.Config.Validate(); err != nil {
		return nil, errors.Wrap(err, "slice mesh")
	}
	axes, err := s.Config.axisSlices(src.Min(), src.Max())
	if err != nil {
		return nil, errors.Wrap(err, "slice mesh")
	}

	mesh := src.Copy()
	for _, a := range axes {
		for _, p := range a.Planes {
			splitter := &Splitter{Plane: p, Mode: KeepBoth}
			mesh, _, err = applyPlane(mesh, splitter, false, &s.Options)
			if err != nil {
				return nil, errors.Wrapf(err, "slice mesh along axis %d", a.Axis)
			}
		}
	}

	sides := make([][2][]Side, len(axes))
	for i, a := range axes {
		for j, p := range a.Planes {
			sides[i][j] = ClassifyVertices(mesh.Positions, p, s.Concurrency)
		}
	}
	for v, c := range mesh.Positions {
		for i, a := range axes {
			c = a.transform(c, sides[i][0][v], sides[i][1][v])
		}
		mesh.Positions[v] = c
	}

	return mesh, nil
}
