package meshslice

import "github.com/pkg/errors"

// A Stretcher moves all geometry behind a plane along the plane's normal,
// splitting the triangles across the plane so that the gap is bridged by
// stretched triangles instead of a crack.
type Stretcher struct {
	Plane *Plane

	// Offset is the distance to move by. Positive values move the back
	// geometry further away from the plane.
	Offset float64

	Options
}

// Stretch moves the geometry of src behind plane by offset along the normal.
//
// The opts argument may be nil to use default options.
func Stretch(src *Mesh, plane *Plane, offset float64, opts *Options) (*Mesh, error) {
	s := &Stretcher{Plane: plane, Offset: offset}
	if opts != nil {
		s.Options = *opts
	}
	return s.Modify(src)
}

// Modify stretches src.
func (s *Stretcher) Modify(src *Mesh) (*Mesh, error) {
	if err := src.Validate(); err != nil {
		return nil, errors.Wrap(err, "stretch mesh")
	}
	offset := s.Plane.Normal.Scale(s.Offset)
	splitter := &Splitter{Plane: s.Plane, Mode: KeepBoth, Offset: offset}
	res, sides, err := applyPlane(src, splitter, false, &s.Options)
	if err != nil {
		return nil, errors.Wrap(err, "stretch mesh")
	}
	for i, side := range sides {
		if side == Back {
			res.Positions[i] = res.Positions[i].Add(offset)
		}
	}
	return res, nil
}
