package optictrace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/timdestan/go-raytracer/internal/prim"
)

func TestPlaneIntersectAllHit(t *testing.T) {
	p := NewPlane(prim.Vec3{Y: 5}, prim.Vec3{Y: 1}, Mirror())
	ray := Ray{Origin: prim.Vec3{Y: 0}, Direction: prim.Vec3{Y: 1}, CurrentIOR: 1}

	hits := p.IntersectAll(ray, 0, 1e9)
	if len(hits) != 1 {
		t.Fatalf("IntersectAll() returned %d hits, want 1", len(hits))
	}
	if diff := cmp.Diff(hits[0].T, 5.0, approxOpts); diff != "" {
		t.Errorf("T mismatch (-got +want):\n%s", diff)
	}
	if hits[0].FrontFace {
		t.Errorf("ray travelling toward the normal should not be front-facing")
	}
}

func TestPlaneIntersectAllParallelMiss(t *testing.T) {
	p := NewPlane(prim.Vec3{Y: 5}, prim.Vec3{Y: 1}, Mirror())
	ray := Ray{Origin: prim.Vec3{Y: 0}, Direction: prim.Vec3{X: 1}, CurrentIOR: 1}
	if hits := p.IntersectAll(ray, 0, 1e9); hits != nil {
		t.Errorf("IntersectAll() = %v, want nil for a parallel ray", hits)
	}
}

func TestPlaneIntersectAllBehindRayMiss(t *testing.T) {
	p := NewPlane(prim.Vec3{Y: 5}, prim.Vec3{Y: 1}, Mirror())
	ray := Ray{Origin: prim.Vec3{Y: 10}, Direction: prim.Vec3{Y: 1}, CurrentIOR: 1}
	if hits := p.IntersectAll(ray, 0, 1e9); hits != nil {
		t.Errorf("IntersectAll() = %v, want nil when the plane is behind the ray", hits)
	}
}
