package optictrace

import "github.com/timdestan/go-raytracer/internal/prim"

// NewCappedCylinder builds a finite cylinder of the given radius and
// height, centered on the origin with its axis along Y, as a pre-baked
// CSG tree: InfiniteCylinder(Y-axis, radius) intersected with two
// capping planes at y = +-height/2. Each capping plane's normal points
// into the half-space it keeps, so the intersection clips the infinite
// tube to y in [-height/2, height/2].
func NewCappedCylinder(radius, height float64, material Material) Hittable {
	tube := NewInfiniteCylinder(prim.Vec3{}, prim.Vec3{Y: 1}, radius, material)
	topCap := NewPlane(prim.Vec3{Y: height / 2}, prim.Vec3{Y: -1}, material)
	bottomCap := NewPlane(prim.Vec3{Y: -height / 2}, prim.Vec3{Y: 1}, material)

	capped := NewCSGNode(Intersection, tube, topCap)
	return NewCSGNode(Intersection, capped, bottomCap)
}
