package optictrace

import (
	"math"

	"github.com/timdestan/go-raytracer/internal/prim"
)

// NewCappedCone builds a finite cone of the given half-angle and
// height, apex at the origin opening along +Y, as a pre-baked CSG tree:
// InfiniteCone(origin, +Y, halfAngle) intersected with a capping plane
// at y = height, whose normal points into the half-space {y <= height},
// and with a base plane through the apex, whose normal points into
// {y >= 0}. The cap discards everything above y = height; the base
// plane discards the InfiniteCone's mirror nappe below the apex.
func NewCappedCone(halfAngleDeg, height float64, material Material) Hittable {
	halfAngleRad := halfAngleDeg * math.Pi / 180
	cone := NewInfiniteCone(prim.Vec3{}, prim.Vec3{Y: 1}, halfAngleRad, material)
	cap := NewPlane(prim.Vec3{Y: height}, prim.Vec3{Y: -1}, material)
	base := NewPlane(prim.Vec3{}, prim.Vec3{Y: 1}, material)
	capped := NewCSGNode(Intersection, cone, cap)
	return NewCSGNode(Intersection, capped, base)
}
