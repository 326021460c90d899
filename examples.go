package optictrace

import "github.com/timdestan/go-raytracer/internal/prim"

// ExampleScene1 returns a small canned scene: a glass sphere sitting
// above a mirror floor, with a handful of rays aimed at the sphere from
// different heights. It exists so cmd/optictrace has something to run
// when no scene file is given.
func ExampleScene1() *Scene {
	floor := NewPlane(prim.Vec3{Y: -5}, prim.Vec3{Y: 1}, Mirror())
	sphere := NewSphere(prim.Vec3{}, 5, Glass(1.5))

	objects := []Hittable{floor, sphere}

	var rays []Ray
	for _, y := range []float64{0, 2, -2} {
		rays = append(rays, Ray{
			Origin:     prim.Vec3{X: -20, Y: y, Z: 0},
			Direction:  *(&prim.Vec3{X: 1, Y: 0, Z: 0}).Normalize(),
			CurrentIOR: 1.0,
		})
	}

	return NewScene(objects, rays, SimulationSettings{
		InfinityDistance: 200,
		MaxBounces:       10,
		Seed:             0,
	})
}
