package meshslice

import (
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// NewBox creates an axis-aligned box with four vertices per face, so that
// every face has its own normals, tangents, and a full [0, 1] UV square.
//
// Triangles are wound counter-clockwise when viewed from outside the box.
func NewBox(min, max model3d.Coord3D) *Mesh {
	center := min.Mid(max)
	half := max.Sub(min).Scale(0.5)

	// Each face is given by its normal and two in-plane axes with u x v = n.
	faces := [6][3]model3d.Coord3D{
		{model3d.X(1), model3d.Y(1), model3d.Z(1)},
		{model3d.X(-1), model3d.Z(1), model3d.Y(1)},
		{model3d.Y(1), model3d.Z(1), model3d.X(1)},
		{model3d.Y(-1), model3d.X(1), model3d.Z(1)},
		{model3d.Z(1), model3d.X(1), model3d.Y(1)},
		{model3d.Z(-1), model3d.Y(1), model3d.X(1)},
	}
	corners := [4]model2d.Coord{
		model2d.XY(0, 0),
		model2d.XY(1, 0),
		model2d.XY(1, 1),
		model2d.XY(0, 1),
	}

	res := &Mesh{}
	for _, f := range faces {
		n, u, v := f[0], f[1], f[2]
		base := len(res.Positions)
		faceCenter := center.Add(n.Mul(half))
		for _, uv := range corners {
			p := faceCenter.
				Add(u.Mul(half).Scale(uv.X*2 - 1)).
				Add(v.Mul(half).Scale(uv.Y*2 - 1))
			res.Positions = append(res.Positions, p)
			res.UVs = append(res.UVs, uv)
			res.Normals = append(res.Normals, n)
			res.Tangents = append(res.Tangents, Tangent{Dir: u, W: 1})
		}
		res.Indices = append(res.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return res
}
