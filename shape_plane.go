package optictrace

import "github.com/timdestan/go-raytracer/internal/prim"

// degenerateEpsilon is the threshold below which a dot product is
// treated as zero for degeneracy checks (ray parallel to a plane, ray
// parallel to a cylinder axis). Deliberately distinct from faceEpsilon
// and selfIntersectionGuard: see the package doc on epsilon constants
// in csg.go.
const degenerateEpsilon = 1e-6

// Plane is an infinite, two-sided flat surface through Point with the
// given Normal. Planes are only meaningful in this domain as children
// of a CSG intersection providing a capping half-space; used bare in a
// scene they represent an infinite mirror or dielectric sheet.
type Plane struct {
	Point    prim.Vec3
	Normal   prim.Vec3
	Material Material
}

// NewPlane constructs a Plane. The normal need not be unit length on
// input; NewPlane normalizes it.
func NewPlane(point, normal prim.Vec3, material Material) *Plane {
	return &Plane{Point: point, Normal: *normal.Normalize(), Material: material}
}

// IntersectAll solves (Point - O)*N / (D*N) = t. A ray parallel to the
// plane (|D*N| < degenerateEpsilon) yields no hits.
func (p *Plane) IntersectAll(ray Ray, tMin, tMax float64) []HitRecord {
	denom := ray.Direction.Dot(&p.Normal)
	if denom > -degenerateEpsilon && denom < degenerateEpsilon {
		return nil
	}
	diff := p.Point.Sub(&ray.Origin)
	t := diff.Dot(&p.Normal) / denom
	if t <= tMin || t >= tMax {
		return nil
	}
	normal, frontFace := setFrontFace(ray, p.Normal)
	return []HitRecord{{
		T:         t,
		Point:     ray.At(t),
		Normal:    normal,
		FrontFace: frontFace,
		Material:  p.Material,
	}}
}
