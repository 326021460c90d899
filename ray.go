// Package optictrace implements a deterministic, analytic geometric ray
// tracer for optical path simulation: given a scene of solid optical
// elements built from primitive surfaces and CSG combinations, it traces
// each ray through reflections and refractions and returns the polyline
// of 3-D positions visited.
package optictrace

import "github.com/timdestan/go-raytracer/internal/prim"

// selfIntersectionGuard is the lower t-bound used when searching for the
// next hit, and the distance the next ray's origin is pushed off the
// surface it just left. Together they prevent a ray from re-selecting
// the surface it just bounced off of. Deliberately not unified with
// degenerateEpsilon or faceEpsilon: see the package doc on epsilon
// constants in csg.go.
const selfIntersectionGuard = 0.001

// Ray is a directed line used to probe the scene for intersections.
// Direction must always have unit length; CurrentIOR names the
// refractive index of the medium the ray currently occupies and is
// needed to compute the correct refraction ratio at the next glass
// surface.
type Ray struct {
	Origin     prim.Vec3
	Direction  prim.Vec3
	CurrentIOR float64
}

// At returns the point origin + t*direction.
func (r Ray) At(t float64) prim.Vec3 {
	d := r.Direction
	return prim.Vec3{
		X: r.Origin.X + t*d.X,
		Y: r.Origin.Y + t*d.Y,
		Z: r.Origin.Z + t*d.Z,
	}
}

// HitRecord describes a single boundary crossing along a ray.
//
// Normal always points against the incoming ray: normal = front_face ?
// outward_normal : -outward_normal. FrontFace is true iff the ray struck
// the outward-facing side of the surface.
type HitRecord struct {
	T         float64
	Point     prim.Vec3
	Normal    prim.Vec3
	FrontFace bool
	Material  Material
}

// Hittable is implemented by every surface, compound assembly, CSG node,
// and transform wrapper in the scene graph.
//
// IntersectAll returns the ordered list of boundary crossings the ray
// makes with the receiver, restricted to t strictly within (tMin, tMax).
// The returned slice is nil (not a zero-length non-nil slice) when there
// are no crossings; callers must treat nil and empty identically.
type Hittable interface {
	IntersectAll(ray Ray, tMin, tMax float64) []HitRecord
}

// setFrontFace derives FrontFace from the ray direction and an outward
// normal, and sets Normal to the convention described on HitRecord.
func setFrontFace(ray Ray, outward prim.Vec3) (normal prim.Vec3, frontFace bool) {
	frontFace = ray.Direction.Dot(&outward) < 0
	if frontFace {
		return outward, true
	}
	neg := outward.Neg()
	return *neg, false
}
