package barb

import (
	"math"

	"github.com/sgostarter/libfeather/vec3"
	"seehuhn.de/go/geom/vec"
)

// CurvePoints returns the four control points of a barb growing from origin.
// The barb lies in the plane y = origin.Y. The first half of its length leaves
// origin at StartAngle (degrees, measured from +Z toward +X); the second half
// bends to EndAngle. The extra point at a quarter of the length keeps the
// fitted curve from collapsing onto a straight segment.
func CurvePoints(origin vec3.Vec3, p Parameters) [4]vec3.Vec3 {
	half := p.length / 2

	start := direction(p.startAngle)
	end := direction(p.endAngle)

	o := vec.Vec2{X: origin.X, Y: origin.Z}
	quarter := o.Add(start.Mul(half / 2))
	mid := o.Add(start.Mul(half))
	tip := mid.Add(end.Mul(half))

	lift := func(v vec.Vec2) vec3.Vec3 {
		return vec3.New(v.X, origin.Y, v.Y)
	}

	return [4]vec3.Vec3{origin, lift(quarter), lift(mid), lift(tip)}
}

// direction maps an angle in degrees to a unit vector in the XZ plane, with
// X stored in vec.Vec2.X and Z in vec.Vec2.Y.
func direction(degrees float64) vec.Vec2 {
	rad := degrees * math.Pi / 180

	return vec.Vec2{X: math.Sin(rad), Y: math.Cos(rad)}
}
