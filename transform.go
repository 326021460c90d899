package optictrace

import "github.com/timdestan/go-raytracer/internal/prim"

// Transform wraps a single child Hittable with a 4x4 affine matrix,
// pulling incoming rays into the child's local space and pushing
// returned hits back into world space.
//
// Only rigid motions (translation and rotation) are supported: if M
// applies a non-unit scale or a shear, the t-values returned by
// IntersectAll no longer correspond to world-space distances along the
// world-space ray direction, because the local-space ray direction is
// not renormalized after the transform (renormalizing would decouple
// local t from world t in the opposite way). Construction does not
// assert rigidity; the TOML scene schema only ever produces
// translate*rotateY matrices.
type Transform struct {
	Child   Hittable
	Matrix  prim.Mat4
	Inverse prim.Mat4
}

// NewTransform constructs a Transform, caching the inverse of m at
// construction. NewTransform panics if m is not invertible.
func NewTransform(child Hittable, m prim.Mat4) *Transform {
	return &Transform{Child: child, Matrix: m, Inverse: m.Inverse()}
}

// IntersectAll transforms ray into the child's local space with
// Inverse, queries the child over the same (tMin, tMax) window, then
// maps each returned hit's point back with Matrix and its normal back
// with the transpose of Inverse, renormalized. T, FrontFace, and
// Material pass through unchanged.
func (tr *Transform) IntersectAll(ray Ray, tMin, tMax float64) []HitRecord {
	localRay := Ray{
		Origin:     tr.Inverse.MulPoint(ray.Origin),
		Direction:  tr.Inverse.MulVector(ray.Direction),
		CurrentIOR: ray.CurrentIOR,
	}

	childHits := tr.Child.IntersectAll(localRay, tMin, tMax)
	if len(childHits) == 0 {
		return nil
	}

	normalMatrix := tr.Inverse.Transpose()
	hits := make([]HitRecord, len(childHits))
	for i, h := range childHits {
		worldNormal := normalMatrix.MulVector(h.Normal)
		hits[i] = HitRecord{
			T:         h.T,
			Point:     tr.Matrix.MulPoint(h.Point),
			Normal:    *(&worldNormal).Normalize(),
			FrontFace: h.FrontFace,
			Material:  h.Material,
		}
	}
	return hits
}
