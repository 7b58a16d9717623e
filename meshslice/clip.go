package meshslice

import "github.com/pkg/errors"

// A Clipper cuts a mesh with a plane, keeping only the geometry in front of
// it.
type Clipper struct {
	Plane *Plane
	Options
}

// Clip cuts src with a plane, keeping the geometry in front of it.
//
// The opts argument may be nil to use default options.
func Clip(src *Mesh, plane *Plane, opts *Options) (*Mesh, error) {
	c := &Clipper{Plane: plane}
	if opts != nil {
		c.Options = *opts
	}
	return c.Modify(src)
}

// Modify clips src.
//
// Back and straddling triangles are removed, and the front part of every
// straddling triangle is re-triangulated. The cut is left open.
func (c *Clipper) Modify(src *Mesh) (*Mesh, error) {
	if err := src.Validate(); err != nil {
		return nil, errors.Wrap(err, "clip mesh")
	}
	s := &Splitter{Plane: c.Plane, Mode: KeepFront}
	res, _, err := applyPlane(src, s, true, &c.Options)
	if err != nil {
		return nil, errors.Wrap(err, "clip mesh")
	}
	return res, nil
}
