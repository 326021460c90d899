package config

import (
	"fmt"

	"github.com/timdestan/go-raytracer/internal/prim"
	rt "github.com/timdestan/go-raytracer"
)

// ObjectGridConfig stamps a rectangular grid of clones of Template,
// each placed at PositionStart + i*StepX + j*StepZ for i in
// [0, CountX), j in [0, CountZ). Restored from the original source's
// object generator, which the distilled scene schema dropped: it is a
// convenient way to place many identical lenses or mirrors (e.g. a
// lenslet array) without repeating the object block by hand.
type ObjectGridConfig struct {
	CountX        int          `toml:"count_x"`
	CountZ        int          `toml:"count_z"`
	PositionStart [3]float64   `toml:"position_start"`
	StepX         [3]float64   `toml:"step_x"`
	StepZ         [3]float64   `toml:"step_z"`
	Template      ObjectConfig `toml:"template"`
}

func (g ObjectGridConfig) expand() ([]rt.Hittable, error) {
	if g.CountX <= 0 || g.CountZ <= 0 {
		return nil, fmt.Errorf("config: object grid count_x and count_z must be positive")
	}
	material, err := g.Template.Material.build()
	if err != nil {
		return nil, err
	}
	var out []rt.Hittable
	for i := 0; i < g.CountX; i++ {
		for j := 0; j < g.CountZ; j++ {
			shape, err := g.Template.Shape.build(material)
			if err != nil {
				return nil, err
			}
			pos := [3]float64{
				g.PositionStart[0] + float64(i)*g.StepX[0] + float64(j)*g.StepZ[0],
				g.PositionStart[1] + float64(i)*g.StepX[1] + float64(j)*g.StepZ[1],
				g.PositionStart[2] + float64(i)*g.StepX[2] + float64(j)*g.StepZ[2],
			}
			transform := TransformConfig{Position: pos, RotationYDeg: g.Template.Transform.RotationYDeg}
			out = append(out, rt.NewTransform(shape, transform.matrix()))
		}
	}
	return out, nil
}

// RayParallelGridConfig expands into a rectangular grid of parallel
// rays sharing Direction, spaced by StepRight and StepUp starting at
// Origin — a uniform beam of probes, as opposed to the single-ray list
// the core spec models directly.
type RayParallelGridConfig struct {
	CountRight int        `toml:"count_right"`
	CountUp    int        `toml:"count_up"`
	Origin     [3]float64 `toml:"origin"`
	Direction  [3]float64 `toml:"direction"`
	StepRight  [3]float64 `toml:"step_right"`
	StepUp     [3]float64 `toml:"step_up"`
}

func (g RayParallelGridConfig) expand() ([]rt.Ray, error) {
	if g.CountRight <= 0 || g.CountUp <= 0 {
		return nil, fmt.Errorf("config: ray_parallel_grid count_right and count_up must be positive")
	}
	dir := prim.Vec3{X: g.Direction[0], Y: g.Direction[1], Z: g.Direction[2]}
	if dir.IsZero() {
		return nil, fmt.Errorf("config: ray_parallel_grid direction must be nonzero")
	}
	unit := *dir.Normalize()

	var rays []rt.Ray
	for i := 0; i < g.CountRight; i++ {
		for j := 0; j < g.CountUp; j++ {
			origin := prim.Vec3{
				X: g.Origin[0] + float64(i)*g.StepRight[0] + float64(j)*g.StepUp[0],
				Y: g.Origin[1] + float64(i)*g.StepRight[1] + float64(j)*g.StepUp[1],
				Z: g.Origin[2] + float64(i)*g.StepRight[2] + float64(j)*g.StepUp[2],
			}
			rays = append(rays, rt.Ray{Origin: origin, Direction: unit, CurrentIOR: 1.0})
		}
	}
	return rays, nil
}

// RayProjectorConfig fans rays out from a single pinhole Origin toward
// a rectangular grid of aim points on a target plane centered at Target
// with half-extents HalfWidth/HalfHeight along Right/Up — a
// pinhole-style projector, matching the original source's
// RayGeneratorConfig::Projector.
type RayProjectorConfig struct {
	Origin     [3]float64 `toml:"origin"`
	Target     [3]float64 `toml:"target"`
	Right      [3]float64 `toml:"right"`
	Up         [3]float64 `toml:"up"`
	HalfWidth  float64    `toml:"half_width"`
	HalfHeight float64    `toml:"half_height"`
	CountX     int        `toml:"count_x"`
	CountY     int        `toml:"count_y"`
}

func (g RayProjectorConfig) expand() ([]rt.Ray, error) {
	if g.CountX <= 0 || g.CountY <= 0 {
		return nil, fmt.Errorf("config: ray_projector count_x and count_y must be positive")
	}
	origin := prim.Vec3{X: g.Origin[0], Y: g.Origin[1], Z: g.Origin[2]}
	target := prim.Vec3{X: g.Target[0], Y: g.Target[1], Z: g.Target[2]}
	right := prim.Vec3{X: g.Right[0], Y: g.Right[1], Z: g.Right[2]}
	up := prim.Vec3{X: g.Up[0], Y: g.Up[1], Z: g.Up[2]}

	var rays []rt.Ray
	for i := 0; i < g.CountX; i++ {
		for j := 0; j < g.CountY; j++ {
			u := -1.0
			if g.CountX > 1 {
				u = -1 + 2*float64(i)/float64(g.CountX-1)
			}
			v := -1.0
			if g.CountY > 1 {
				v = -1 + 2*float64(j)/float64(g.CountY-1)
			}
			aim := prim.Vec3{
				X: target.X + u*g.HalfWidth*right.X + v*g.HalfHeight*up.X,
				Y: target.Y + u*g.HalfWidth*right.Y + v*g.HalfHeight*up.Y,
				Z: target.Z + u*g.HalfWidth*right.Z + v*g.HalfHeight*up.Z,
			}
			dir := aim.Sub(&origin)
			if dir.IsZero() {
				return nil, fmt.Errorf("config: ray_projector produced a zero-length direction")
			}
			rays = append(rays, rt.Ray{Origin: origin, Direction: *dir.Normalize(), CurrentIOR: 1.0})
		}
	}
	return rays, nil
}
