package optictrace

import "github.com/timdestan/go-raytracer/internal/prim"

// NewLens builds a finite spherical lens centered on the Z optical
// axis, as a pre-baked CSG tree: two back-to-back surfaces (a sphere
// when the radius of curvature is finite, a plane when it is zero,
// standing in for an infinite radius) intersected with each other and
// then with an InfiniteCylinder of radius diameter/2 giving a finite
// aperture.
//
// The front surface vertex sits at z=0, the back surface vertex at
// z=centerThickness. Sign convention: r1, r2 > 0 place the
// corresponding surface's center of curvature on the +Z side of its
// vertex; r < 0 places it on the -Z side. r == 0 is the sentinel for a
// flat (infinite-radius) surface.
func NewLens(centerThickness, diameter, r1, r2 float64, material Material) Hittable {
	front := lensSurface(0, r1, true, material)
	back := lensSurface(centerThickness, r2, false, material)
	core := NewCSGNode(Intersection, front, back)

	aperture := NewInfiniteCylinder(prim.Vec3{}, prim.Vec3{Z: 1}, diameter/2, material)
	return NewCSGNode(Intersection, core, aperture)
}

// lensSurface returns the sphere or plane bounding one face of a lens.
// front selects which way a flat (r == 0) surface's normal points, so
// that its kept half-space faces into the lens body.
func lensSurface(vertexZ, r float64, front bool, material Material) Hittable {
	if r == 0 {
		if front {
			return NewPlane(prim.Vec3{Z: vertexZ}, prim.Vec3{Z: 1}, material)
		}
		return NewPlane(prim.Vec3{Z: vertexZ}, prim.Vec3{Z: -1}, material)
	}
	center := prim.Vec3{Z: vertexZ + r}
	radius := r
	if radius < 0 {
		radius = -radius
	}
	return NewSphere(center, radius, material)
}
