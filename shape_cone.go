package optictrace

import (
	"math"

	"github.com/timdestan/go-raytracer/internal/prim"
)

// InfiniteCone is an unbounded double-napped cone with apex at Vertex,
// axis AxisDir, and half-angle HalfAngleRad. The analytic intersection
// formula yields crossings of both the forward nappe and its mirror
// image through the vertex; InfiniteCone must only be used as a child
// of a CSG intersection with a capping half-space (see
// NewCappedCone), which discards the unwanted nappe.
type InfiniteCone struct {
	Vertex       prim.Vec3
	AxisDir      prim.Vec3
	HalfAngleRad float64
	Material     Material
}

// NewInfiniteCone constructs an InfiniteCone. AxisDir need not be unit
// length; NewInfiniteCone normalizes it. NewInfiniteCone panics if
// halfAngleRad is not in (0, pi/2).
func NewInfiniteCone(vertex, axisDir prim.Vec3, halfAngleRad float64, material Material) *InfiniteCone {
	if halfAngleRad <= 0 || halfAngleRad >= math.Pi/2 {
		panic("optictrace.NewInfiniteCone: halfAngleRad must be in (0, pi/2)")
	}
	return &InfiniteCone{
		Vertex:       vertex,
		AxisDir:      *axisDir.Normalize(),
		HalfAngleRad: halfAngleRad,
		Material:     material,
	}
}

// IntersectAll solves the quadratic in t derived from
// (D*V)^2 - k = a, 2[(D*V)(CO*V) - (D*CO)k] = b, (CO*V)^2 - |CO|^2*k = c
// where CO = O - vertex and k = cos^2(half-angle).
func (cone *InfiniteCone) IntersectAll(ray Ray, tMin, tMax float64) []HitRecord {
	k := math.Cos(cone.HalfAngleRad)
	k *= k

	co := ray.Origin.Sub(&cone.Vertex)
	d := ray.Direction
	v := cone.AxisDir

	dv := d.Dot(&v)
	cov := co.Dot(&v)
	dco := d.Dot(co)
	coLenSq := co.LengthSquared()

	a := dv*dv - k
	b := 2 * (dv*cov - dco*k)
	c := cov*cov - coLenSq*k

	var hits []HitRecord
	if a > -degenerateEpsilon && a < degenerateEpsilon {
		if b > -degenerateEpsilon && b < degenerateEpsilon {
			return nil
		}
		t := -c / b
		if t > tMin && t < tMax {
			hits = append(hits, cone.hitAt(ray, t))
		}
		return hits
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)
	for _, t := range [...]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if t <= tMin || t >= tMax {
			continue
		}
		hits = append(hits, cone.hitAt(ray, t))
	}
	if len(hits) == 2 && hits[0].T > hits[1].T {
		hits[0], hits[1] = hits[1], hits[0]
	}
	return hits
}

// hitAt builds the HitRecord for a root t already known to be in range.
// Outward normal at P with pv = P - vertex and m = pv*V is
// normalize(k*pv - m*V).
func (cone *InfiniteCone) hitAt(ray Ray, t float64) HitRecord {
	k := math.Cos(cone.HalfAngleRad)
	k *= k

	point := ray.At(t)
	pv := point.Sub(&cone.Vertex)
	m := pv.Dot(&cone.AxisDir)
	scaledAxis := cone.AxisDir.Scale(m)
	scaledPV := pv.Scale(k)
	diff := scaledPV.Sub(scaledAxis)
	outward := *diff.Normalize()

	normal, frontFace := setFrontFace(ray, outward)
	return HitRecord{
		T:         t,
		Point:     point,
		Normal:    normal,
		FrontFace: frontFace,
		Material:  cone.Material,
	}
}
