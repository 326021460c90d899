package optictrace

import (
	"math"

	"github.com/timdestan/go-raytracer/internal/prim"
)

// InfiniteCylinder is an unbounded circular cylinder of the given
// radius centered on the line through AxisPoint in direction AxisDir.
// It is meaningful in a scene only as a child of a CSG intersection
// with capping half-spaces (see NewCappedCylinder); used bare it
// represents an infinite tube.
type InfiniteCylinder struct {
	AxisPoint prim.Vec3
	AxisDir   prim.Vec3
	Radius    float64
	Material  Material
}

// NewInfiniteCylinder constructs an InfiniteCylinder. AxisDir need not
// be unit length; NewInfiniteCylinder normalizes it. NewInfiniteCylinder
// panics if radius is not positive.
func NewInfiniteCylinder(axisPoint, axisDir prim.Vec3, radius float64, material Material) *InfiniteCylinder {
	if radius <= 0 {
		panic("optictrace.NewInfiniteCylinder: radius must be positive")
	}
	return &InfiniteCylinder{
		AxisPoint: axisPoint,
		AxisDir:   *axisDir.Normalize(),
		Radius:    radius,
		Material:  material,
	}
}

// perpComponent returns v minus its projection onto the unit axis
// direction a, i.e. the component of v perpendicular to the axis.
func perpComponent(v, a prim.Vec3) prim.Vec3 {
	proj := a.Scale(v.Dot(&a))
	return *v.Sub(proj)
}

// IntersectAll decomposes the ray and the origin-to-axis vector into
// components perpendicular to the axis and solves the resulting 2-D
// quadratic. A ray near-parallel to the axis yields no hits.
func (cyl *InfiniteCylinder) IntersectAll(ray Ray, tMin, tMax float64) []HitRecord {
	co := ray.Origin.Sub(&cyl.AxisPoint)
	dPerp := perpComponent(ray.Direction, cyl.AxisDir)
	coPerp := perpComponent(*co, cyl.AxisDir)

	a := dPerp.Dot(&dPerp)
	if a < degenerateEpsilon {
		return nil
	}
	b := dPerp.Dot(&coPerp)
	c := coPerp.Dot(&coPerp) - cyl.Radius*cyl.Radius

	discriminant := b*b - a*c
	if discriminant < 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)

	var hits []HitRecord
	for _, t := range [...]float64{(-b - sqrtD) / a, (-b + sqrtD) / a} {
		if t <= tMin || t >= tMax {
			continue
		}
		point := ray.At(t)
		toAxis := point.Sub(&cyl.AxisPoint)
		closest := cyl.AxisPoint.Add(cyl.AxisDir.Scale(toAxis.Dot(&cyl.AxisDir)))
		radial := point.Sub(closest)
		outward := *radial.Normalize()
		normal, frontFace := setFrontFace(ray, outward)
		hits = append(hits, HitRecord{
			T:         t,
			Point:     point,
			Normal:    normal,
			FrontFace: frontFace,
			Material:  cyl.Material,
		})
	}
	if len(hits) == 2 && hits[0].T > hits[1].T {
		hits[0], hits[1] = hits[1], hits[0]
	}
	return hits
}
