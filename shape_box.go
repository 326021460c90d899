package optictrace

import "github.com/timdestan/go-raytracer/internal/prim"

// faceEpsilon is the tolerance used to identify which axis-aligned face
// of an AxisAlignedBox a hit t-value came from. Deliberately distinct
// from degenerateEpsilon and selfIntersectionGuard.
const faceEpsilon = 1e-4

// AxisAlignedBox is a solid rectangular box spanning [Min, Max] on each
// axis.
type AxisAlignedBox struct {
	Min, Max prim.Vec3
	Material Material
}

// NewAxisAlignedBox constructs an AxisAlignedBox. NewAxisAlignedBox
// panics if any axis of Min is not strictly less than the corresponding
// axis of Max.
func NewAxisAlignedBox(min, max prim.Vec3, material Material) *AxisAlignedBox {
	if min.X >= max.X || min.Y >= max.Y || min.Z >= max.Z {
		panic("optictrace.NewAxisAlignedBox: min must be strictly less than max on every axis")
	}
	return &AxisAlignedBox{Min: min, Max: max, Material: material}
}

// IntersectAll runs the standard slab test across the three axes,
// narrowing a running [tEnter, tExit] interval and remembering which
// axis produced each bound, then emits entry and exit HitRecords for
// the surviving interval.
func (box *AxisAlignedBox) IntersectAll(ray Ray, tMin, tMax float64) []HitRecord {
	tEnter, tExit := tMin, tMax
	enterAxis, exitAxis := -1, -1

	for axis := range 3 {
		origin := ray.Origin.Get(axis)
		dir := ray.Direction.Get(axis)
		minB := box.Min.Get(axis)
		maxB := box.Max.Get(axis)

		if dir > -degenerateEpsilon && dir < degenerateEpsilon {
			if origin < minB || origin > maxB {
				return nil
			}
			continue
		}

		t0 := (minB - origin) / dir
		t1 := (maxB - origin) / dir
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > tEnter {
			// Only swap the recorded entry face when this axis
			// clearly dominates; a near-tie (edge or corner hit)
			// keeps the lower-indexed axis's face normal.
			if enterAxis == -1 || t0 > tEnter+faceEpsilon {
				enterAxis = axis
			}
			tEnter = t0
		}
		if t1 < tExit {
			if exitAxis == -1 || t1 < tExit-faceEpsilon {
				exitAxis = axis
			}
			tExit = t1
		}
		if tEnter > tExit {
			return nil
		}
	}

	var hits []HitRecord
	if enterAxis != -1 && tEnter > tMin && tEnter < tMax {
		outward := axisNormal(enterAxis, -sign(ray.Direction.Get(enterAxis)))
		normal, frontFace := setFrontFace(ray, outward)
		hits = append(hits, HitRecord{T: tEnter, Point: ray.At(tEnter), Normal: normal, FrontFace: frontFace, Material: box.Material})
	}
	if exitAxis != -1 && tExit > tMin && tExit < tMax {
		// The exit crossing's normal is stored pointing against the ray
		// (same convention as every other shape's IntersectAll): the
		// geometric outward normal of the exit face points along the
		// ray, so it is negated here rather than reported as-is.
		inward := axisNormal(exitAxis, -sign(ray.Direction.Get(exitAxis)))
		hits = append(hits, HitRecord{T: tExit, Point: ray.At(tExit), Normal: inward, FrontFace: false, Material: box.Material})
	}
	if len(hits) == 2 && hits[0].T > hits[1].T {
		hits[0], hits[1] = hits[1], hits[0]
	}
	return hits
}

// sign returns 1 for non-negative x and -1 for negative x.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// axisNormal returns the unit vector +-1 along the given axis (0=X,
// 1=Y, 2=Z).
func axisNormal(axis int, s float64) prim.Vec3 {
	var n prim.Vec3
	switch axis {
	case 0:
		n.X = s
	case 1:
		n.Y = s
	case 2:
		n.Z = s
	}
	return n
}
