package meshslice

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// An AxisConfig configures the two slicing planes of one axis.
//
// Each inset is the fraction of the source size, along the axis, between a
// side of the bounding box and the plane on that side. Geometry in the inset
// regions is translated when resizing, while geometry between the planes is
// scaled.
type AxisConfig struct {
	Inset1 float64 `json:"inset1"`
	Inset2 float64 `json:"inset2"`
}

// NewAxisConfig creates an AxisConfig with the same inset on both sides.
func NewAxisConfig(inset float64) *AxisConfig {
	return &AxisConfig{Inset1: inset, Inset2: inset}
}

// Validate checks that the insets leave room between the two planes.
func (a *AxisConfig) Validate() error {
	if a.Inset1 < 0 || a.Inset1 > 1 || a.Inset2 < 0 || a.Inset2 > 1 {
		return errors.Errorf("insets %f and %f must be in [0, 1]", a.Inset1, a.Inset2)
	}
	if a.Inset1+a.Inset2 >= 1 {
		return errors.Errorf("insets %f and %f must sum to less than 1", a.Inset1, a.Inset2)
	}
	return nil
}

// A SliceConfig configures a nine-slice resize.
type SliceConfig struct {
	// Size is the size of the resulting bounding box along every enabled
	// axis.
	Size model3d.Coord3D `json:"size"`

	// Axes configures the X, Y, and Z axes. A nil entry disables slicing
	// along that axis.
	Axes [3]*AxisConfig `json:"axes"`
}

// Validate checks the configuration independently of any mesh.
func (s *SliceConfig) Validate() error {
	size := s.Size.Array()
	for i, a := range s.Axes {
		if a == nil {
			continue
		}
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "axis %d", i)
		}
		if size[i] < 0 {
			return errors.Errorf("axis %d: negative target size %f", i, size[i])
		}
	}
	return nil
}

// An axisSlice is the derived plane pair of one axis for a particular
// source mesh.
type axisSlice struct {
	Axis int

	// Planes are the low and high plane. Each plane's back side is the
	// outer region on its side of the bounding box.
	Planes [2]*Plane

	// Offsets are the translations for the outer regions of each plane.
	Offsets [2]model3d.Coord3D

	// Scale and Pivot transform the axis coordinate in the inner region.
	Scale float64
	Pivot float64
}

// transform moves c according to its classification against both planes.
func (a *axisSlice) transform(c model3d.Coord3D, low, high Side) model3d.Coord3D {
	if low == Back || high == Back {
		if low == Back {
			c = c.Add(a.Offsets[0])
		}
		if high == Back {
			c = c.Add(a.Offsets[1])
		}
		return c
	}
	if a.Scale == 1 {
		return c
	}
	arr := c.Array()
	arr[a.Axis] = a.Pivot + (arr[a.Axis]-a.Pivot)*a.Scale
	return model3d.NewCoord3DArray(arr)
}

// axisSlices derives the planes for every enabled axis from the bounds of a
// source mesh.
func (s *SliceConfig) axisSlices(min, max model3d.Coord3D) ([]*axisSlice, error) {
	minArr, maxArr := min.Array(), max.Array()
	targetArr := s.Size.Array()

	var res []*axisSlice
	for axis, a := range s.Axes {
		if a == nil {
			continue
		}
		size := maxArr[axis] - minArr[axis]
		if size <= 0 {
			return nil, errors.Errorf("axis %d: source mesh has no extent", axis)
		}
		inset1 := size * a.Inset1
		inset2 := size * a.Inset2
		innerTarget := targetArr[axis] - inset1 - inset2
		if innerTarget < 0 {
			return nil, errors.Errorf("axis %d: target size %f is smaller than the insets",
				axis, targetArr[axis])
		}

		var dirArr [3]float64
		dirArr[axis] = 1
		dir := model3d.NewCoord3DArray(dirArr)

		low := minArr[axis] + inset1
		high := maxArr[axis] - inset2
		offset := (targetArr[axis] - size) / 2
		res = append(res, &axisSlice{
			Axis: axis,
			Planes: [2]*Plane{
				NewPlanePoint(dir.Scale(-1), dir.Scale(low)),
				NewPlanePoint(dir, dir.Scale(high)),
			},
			Offsets: [2]model3d.Coord3D{
				dir.Scale(-offset),
				dir.Scale(offset),
			},
			Scale: innerTarget / (size - inset1 - inset2),
			Pivot: (low + high) / 2,
		})
	}
	return res, nil
}
