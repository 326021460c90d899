package optictrace

import (
	"math"
	"runtime"
	"sync"

	"github.com/timdestan/go-raytracer/internal/prim"
)

// SimulationSettings bounds the ray-march loop. InfinityDistance and
// MaxBounces must be positive.
type SimulationSettings struct {
	// InfinityDistance is the synthetic length used to draw the
	// terminal segment of a ray that escapes the scene entirely.
	InfinityDistance float64
	// MaxBounces is the upper limit on surface interactions traced per
	// ray before its trace is abandoned without a far-field point.
	MaxBounces int
	// Seed is the base seed each ray's per-ray Rng is derived from.
	Seed uint64
}

// Scene is an ordered list of top-level hittables and an ordered list
// of initial rays. Objects do not reference one another: CSG trees and
// transforms own their children exclusively. The Scene is read-only for
// the duration of SimulateRays.
type Scene struct {
	Objects  []Hittable
	Rays     []Ray
	Settings SimulationSettings
}

// NewScene constructs a Scene.
func NewScene(objects []Hittable, rays []Ray, settings SimulationSettings) *Scene {
	return &Scene{Objects: objects, Rays: rays, Settings: settings}
}

// SimulateRays traces every ray in the scene and returns, per ray in
// input order, the polyline of 3-D positions visited: the start, one
// point per bounce, and either a far-field point or nothing if the
// bounce budget was exhausted.
//
// The outer loop is farmed across a worker pool sized to
// runtime.GOMAXPROCS(0); each ray gets its own Rng seeded from
// Settings.Seed and the ray's index, so the result is identical across
// runs regardless of how goroutines interleave.
func (s *Scene) SimulateRays() [][]prim.Vec3 {
	paths := make([][]prim.Vec3, len(s.Rays))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(s.Rays) {
		workers = len(s.Rays)
	}
	if workers < 1 {
		return paths
	}

	indices := make(chan int, len(s.Rays))
	for i := range s.Rays {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range indices {
				rng := NewRng(s.Settings.Seed, i)
				paths[i] = s.traceRay(s.Rays[i], rng)
			}
		}()
	}
	wg.Wait()
	return paths
}

// traceRay runs the ray-march loop for a single ray: repeatedly find
// the closest forward hit across all scene objects, dispatch on its
// material to update direction and current_ior, and advance the
// origin, until the bounce budget is exhausted or no hit is found.
func (s *Scene) traceRay(ray Ray, rng Rng) []prim.Vec3 {
	path := []prim.Vec3{ray.Origin}

	for bounce := 0; bounce < s.Settings.MaxBounces; bounce++ {
		hit, found := s.closestHit(ray)
		if !found {
			last := path[len(path)-1]
			end := last.Add(ray.Direction.Scale(s.Settings.InfinityDistance))
			path = append(path, *end)
			return path
		}

		path = append(path, hit.Point)
		ray = s.applyMaterial(ray, hit, rng)
	}
	return path
}

// closestHit finds the nearest forward intersection across all scene
// objects, searching (0.001, +Inf) — the self-intersection guard — and
// narrowing the upper bound to the best t found so far as it goes.
func (s *Scene) closestHit(ray Ray) (HitRecord, bool) {
	best := HitRecord{}
	found := false
	bestT := math.Inf(1)

	for _, obj := range s.Objects {
		hits := obj.IntersectAll(ray, selfIntersectionGuard, bestT)
		if len(hits) == 0 {
			continue
		}
		candidate := hits[0]
		if !found || candidate.T < bestT {
			best = candidate
			bestT = candidate.T
			found = true
		}
	}
	return best, found
}

// applyMaterial dispatches on hit.Material and returns the continuation
// ray: origin pushed off the surface by selfIntersectionGuard along the
// outgoing direction, direction updated per the material law, and
// current_ior updated for Glass.
func (s *Scene) applyMaterial(ray Ray, hit HitRecord, rng Rng) Ray {
	direction := ray.Direction
	currentIOR := ray.CurrentIOR

	switch hit.Material.Kind {
	case MaterialMirror:
		direction = prim.Reflect(direction, hit.Normal)

	case MaterialGlass:
		n1 := ray.CurrentIOR
		n2 := 1.0
		if hit.FrontFace {
			n2 = hit.Material.IOR
		}
		refracted, ok := prim.Refract(direction, hit.Normal, n1/n2)
		if ok {
			direction = refracted
			currentIOR = n2
		} else {
			direction = prim.Reflect(direction, hit.Normal)
		}

	case MaterialHalfMirror:
		if rng.NextUnit() < hit.Material.Reflectance {
			direction = prim.Reflect(direction, hit.Normal)
		}

	default:
		panic("optictrace.applyMaterial: unknown material kind")
	}

	origin := hit.Point.Add(direction.Scale(selfIntersectionGuard))
	return Ray{Origin: *origin, Direction: direction, CurrentIOR: currentIOR}
}
