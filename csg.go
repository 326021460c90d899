package optictrace

import "sort"

// csgTieEpsilon is the t-value tolerance within which two crossings
// from opposite children are treated as simultaneous; ties are broken
// by preferring the left child's crossing first, so enter/exit pairing
// stays consistent across recursive CSG nodes. Deliberately distinct
// from degenerateEpsilon, faceEpsilon, and selfIntersectionGuard: see
// the package doc on epsilon constants below.
//
// All four epsilon constants in this package (degenerateEpsilon,
// faceEpsilon, selfIntersectionGuard, csgTieEpsilon) are independently
// tuned to the geometric situation they guard and are not unified into
// a single constant.
const csgTieEpsilon = 1e-6

// CSGOp names the boolean operation a CSGNode combines its two
// children under.
type CSGOp int

const (
	// Union keeps a point inside if it is inside either child.
	Union CSGOp = iota
	// Intersection keeps a point inside if it is inside both children.
	Intersection
	// Difference keeps a point inside if it is inside the left child
	// and outside the right child.
	Difference
)

func (op CSGOp) apply(inLeft, inRight bool) bool {
	switch op {
	case Union:
		return inLeft || inRight
	case Intersection:
		return inLeft && inRight
	case Difference:
		return inLeft && !inRight
	default:
		panic("optictrace.CSGOp: unknown operation")
	}
}

// CSGNode combines two child Hittables under a boolean operation.
// Ownership is strictly tree-shaped: Left and Right are exclusively
// owned by this node. Sharing a subtree across two CSGNodes requires
// cloning it first.
type CSGNode struct {
	Op          CSGOp
	Left, Right Hittable
}

// NewCSGNode constructs a CSGNode.
func NewCSGNode(op CSGOp, left, right Hittable) *CSGNode {
	return &CSGNode{Op: op, Left: left, Right: right}
}

// csgCrossing is one entry in the merged, side-tagged interval list
// walked by IntersectAll.
type csgCrossing struct {
	hit      HitRecord
	fromLeft bool
}

// IntersectAll merges the left and right children's interval lists by
// t, walks the merged list tracking which child's interior the ray
// currently occupies, and emits a crossing wherever op's truth value
// changes. For Difference, crossings that originated from the right
// child have their normal and FrontFace flipped, since entering the
// subtracted solid means leaving the combined solid.
func (n *CSGNode) IntersectAll(ray Ray, tMin, tMax float64) []HitRecord {
	leftHits := n.Left.IntersectAll(ray, tMin, tMax)
	rightHits := n.Right.IntersectAll(ray, tMin, tMax)
	if len(leftHits) == 0 && len(rightHits) == 0 {
		return nil
	}

	merged := make([]csgCrossing, 0, len(leftHits)+len(rightHits))
	for _, h := range leftHits {
		merged = append(merged, csgCrossing{hit: h, fromLeft: true})
	}
	for _, h := range rightHits {
		merged = append(merged, csgCrossing{hit: h, fromLeft: false})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		ti, tj := merged[i].hit.T, merged[j].hit.T
		if ti < tj-csgTieEpsilon {
			return true
		}
		if tj < ti-csgTieEpsilon {
			return false
		}
		// Within the tie window: left before right, stable otherwise.
		return merged[i].fromLeft && !merged[j].fromLeft
	})

	var inLeft, inRight bool
	var out []HitRecord
	for _, c := range merged {
		wasInside := n.Op.apply(inLeft, inRight)
		if c.fromLeft {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
		isInside := n.Op.apply(inLeft, inRight)
		if wasInside == isInside {
			continue
		}

		hit := c.hit
		if n.Op == Difference && !c.fromLeft {
			neg := hit.Normal.Neg()
			hit.Normal = *neg
			hit.FrontFace = !hit.FrontFace
		}
		out = append(out, hit)
	}
	return out
}
