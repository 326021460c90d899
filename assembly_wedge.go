package optictrace

import (
	"math"

	"github.com/timdestan/go-raytracer/internal/prim"
)

// NewWedge builds a triangular wedge prism as the intersection of five
// half-spaces: a floor at y=0, a vertical left face at x=0, front and
// back faces at z=0 and z=size, and a roof that starts at y=size on the
// left face and slopes down as x increases, tilted from horizontal by
// wedgeAngleRad about the Z axis. The roof meets the floor at
// x = size/tan(wedgeAngleRad), so the prism is thickest at x=0 and
// narrows to an edge on its far side.
func NewWedge(size, wedgeAngleRad float64, material Material) Hittable {
	bottom := NewPlane(prim.Vec3{}, prim.Vec3{Y: 1}, material)
	left := NewPlane(prim.Vec3{}, prim.Vec3{X: 1}, material)
	front := NewPlane(prim.Vec3{}, prim.Vec3{Z: 1}, material)
	back := NewPlane(prim.Vec3{Z: size}, prim.Vec3{Z: -1}, material)

	s, c := math.Sin(wedgeAngleRad), math.Cos(wedgeAngleRad)
	roof := NewPlane(prim.Vec3{Y: size}, prim.Vec3{X: -s, Y: -c}, material)

	node := NewCSGNode(Intersection, bottom, left)
	node = NewCSGNode(Intersection, node, front)
	node = NewCSGNode(Intersection, node, back)
	return NewCSGNode(Intersection, node, roof)
}
