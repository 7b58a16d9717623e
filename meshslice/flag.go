package meshslice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// A CoordFlag is a flag.Value for a comma-separated coordinate, such as
// "1,0,-2.5".
type CoordFlag struct {
	model3d.Coord3D
}

// NewCoordFlag creates a flag with a default value.
func NewCoordFlag(c model3d.Coord3D) *CoordFlag {
	return &CoordFlag{Coord3D: c}
}

func (c *CoordFlag) String() string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", c.X, c.Y, c.Z)
}

func (c *CoordFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return errors.Errorf("expected 3 comma-separated values but got %d", len(parts))
	}
	var arr [3]float64
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return errors.Wrapf(err, "component %d", i)
		}
		arr[i] = x
	}
	c.Coord3D = model3d.NewCoord3DArray(arr)
	return nil
}
