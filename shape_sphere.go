package optictrace

import (
	"math"

	"github.com/timdestan/go-raytracer/internal/prim"
)

// Sphere is a solid ball of the given material.
type Sphere struct {
	Center   prim.Vec3
	Radius   float64
	Material Material
}

// NewSphere constructs a Sphere. NewSphere panics if radius is not
// positive.
func NewSphere(center prim.Vec3, radius float64, material Material) *Sphere {
	if radius <= 0 {
		panic("optictrace.NewSphere: radius must be positive")
	}
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// IntersectAll solves |O + tD - C|^2 = r^2 for t and returns the 0, 1,
// or 2 roots that fall in (tMin, tMax), ordered by increasing t.
func (s *Sphere) IntersectAll(ray Ray, tMin, tMax float64) []HitRecord {
	oc := ray.Origin.Sub(&s.Center)
	d := ray.Direction
	a := d.Dot(&d)
	b := oc.Dot(&d)
	c := oc.Dot(oc) - s.Radius*s.Radius

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
		diff := point.Sub(&s.Center)
		outward := *diff.Scale(1 / s.Radius)
		normal, frontFace := setFrontFace(ray, outward)
		hits = append(hits, HitRecord{
			T:         t,
			Point:     point,
			Normal:    normal,
			FrontFace: frontFace,
			Material:  s.Material,
		})
	}
	if len(hits) == 2 && hits[0].T > hits[1].T {
		hits[0], hits[1] = hits[1], hits[0]
	}
	return hits
}
