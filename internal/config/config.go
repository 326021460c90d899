// Package config loads a scene description from a TOML file and
// converts it into the flat object/ray lists the optictrace package
// consumes. Object and ray generators are expanded here: the core scene
// never sees a generator, only the flat list it produces.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/timdestan/go-raytracer/internal/prim"
	rt "github.com/timdestan/go-raytracer"
)

// SceneConfig is the root of a TOML scene file.
type SceneConfig struct {
	SimulationSettings SimulationSettingsConfig `toml:"simulation_settings"`
	Objects            []ObjectConfig           `toml:"objects"`
	Rays               []RayConfig              `toml:"rays"`
	ObjectGrids        []ObjectGridConfig        `toml:"object_grids"`
	RayParallelGrids   []RayParallelGridConfig   `toml:"ray_parallel_grids"`
	RayProjectors      []RayProjectorConfig      `toml:"ray_projectors"`
}

// SimulationSettingsConfig mirrors rt.SimulationSettings.
type SimulationSettingsConfig struct {
	InfinityDistance float64 `toml:"infinity_distance"`
	MaxBounces       int     `toml:"max_bounces"`
	Seed             uint64  `toml:"seed"`
}

// TransformConfig composes as Translate(Position) * RotateY(RotationYDeg).
type TransformConfig struct {
	Position     [3]float64 `toml:"position"`
	RotationYDeg float64    `toml:"rotation_y_deg"`
}

func (t TransformConfig) matrix() prim.Mat4 {
	translate := prim.Translate(prim.Vec3{X: t.Position[0], Y: t.Position[1], Z: t.Position[2]})
	rotate := prim.RotateY(t.RotationYDeg * math.Pi / 180)
	return translate.Mul(rotate)
}

// MaterialConfig is a tagged union over Mirror/Glass/HalfMirror,
// selected by Type.
type MaterialConfig struct {
	Type        string  `toml:"type"`
	IOR         float64 `toml:"ior"`
	Reflectance float64 `toml:"reflectance"`
}

func (m MaterialConfig) build() (rt.Material, error) {
	switch m.Type {
	case "Mirror":
		return rt.Mirror(), nil
	case "Glass":
		if m.IOR <= 0 || math.IsNaN(m.IOR) || math.IsInf(m.IOR, 0) {
			return rt.Material{}, fmt.Errorf("config: Glass material requires a positive finite ior, got %v", m.IOR)
		}
		return rt.Glass(m.IOR), nil
	case "HalfMirror":
		if m.Reflectance < 0 || m.Reflectance > 1 {
			return rt.Material{}, fmt.Errorf("config: HalfMirror reflectance must be in [0, 1], got %v", m.Reflectance)
		}
		return rt.HalfMirror(m.Reflectance), nil
	default:
		return rt.Material{}, fmt.Errorf("config: unknown material type %q", m.Type)
	}
}

// ShapeConfig is a tagged union over every shape and CSG combinator
// variant. Union/Intersection/Difference recurse through Left/Right.
type ShapeConfig struct {
	Type string `toml:"type"`

	// Sphere
	Radius float64 `toml:"radius"`

	// Box
	Min [3]float64 `toml:"min"`
	Max [3]float64 `toml:"max"`

	// Cylinder / Cone (capped assemblies; axis is always local +Y)
	Height       float64 `toml:"height"`
	HalfAngleDeg float64 `toml:"half_angle_deg"`

	// Lens
	CenterThickness float64 `toml:"center_thickness"`
	Diameter        float64 `toml:"diameter"`
	R1              float64 `toml:"r1"`
	R2              float64 `toml:"r2"`

	// Wedge
	Size         float64 `toml:"size"`
	WedgeAngleDeg float64 `toml:"wedge_angle_deg"`

	// Union / Intersection / Difference
	Left  *ShapeConfig `toml:"left"`
	Right *ShapeConfig `toml:"right"`
}

func (s ShapeConfig) build(material rt.Material) (rt.Hittable, error) {
	switch s.Type {
	case "Sphere":
		if s.Radius <= 0 {
			return nil, fmt.Errorf("config: Sphere radius must be positive, got %v", s.Radius)
		}
		return rt.NewSphere(prim.Vec3{}, s.Radius, material), nil
	case "Box":
		if s.Min[0] >= s.Max[0] || s.Min[1] >= s.Max[1] || s.Min[2] >= s.Max[2] {
			return nil, fmt.Errorf("config: Box min must be strictly less than max on every axis")
		}
		min := prim.Vec3{X: s.Min[0], Y: s.Min[1], Z: s.Min[2]}
		max := prim.Vec3{X: s.Max[0], Y: s.Max[1], Z: s.Max[2]}
		return rt.NewAxisAlignedBox(min, max, material), nil
	case "Plane":
		return rt.NewPlane(prim.Vec3{}, prim.Vec3{Y: 1}, material), nil
	case "Cylinder":
		if s.Radius <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("config: Cylinder radius and height must be positive")
		}
		return rt.NewCappedCylinder(s.Radius, s.Height, material), nil
	case "Cone":
		if s.HalfAngleDeg <= 0 || s.HalfAngleDeg >= 90 || s.Height <= 0 {
			return nil, fmt.Errorf("config: Cone half_angle_deg must be in (0, 90) and height positive")
		}
		return rt.NewCappedCone(s.HalfAngleDeg, s.Height, material), nil
	case "Lens":
		if s.CenterThickness <= 0 || s.Diameter <= 0 {
			return nil, fmt.Errorf("config: Lens center_thickness and diameter must be positive")
		}
		return rt.NewLens(s.CenterThickness, s.Diameter, s.R1, s.R2, material), nil
	case "Wedge":
		if s.Size <= 0 {
			return nil, fmt.Errorf("config: Wedge size must be positive")
		}
		return rt.NewWedge(s.Size, s.WedgeAngleDeg*math.Pi/180, material), nil
	case "Union", "Intersection", "Difference":
		if s.Left == nil || s.Right == nil {
			return nil, fmt.Errorf("config: %s requires both left and right shapes", s.Type)
		}
		left, err := s.Left.build(material)
		if err != nil {
			return nil, err
		}
		right, err := s.Right.build(material)
		if err != nil {
			return nil, err
		}
		op := map[string]rt.CSGOp{
			"Union":        rt.Union,
			"Intersection": rt.Intersection,
			"Difference":   rt.Difference,
		}[s.Type]
		return rt.NewCSGNode(op, left, right), nil
	default:
		return nil, fmt.Errorf("config: unknown shape type %q", s.Type)
	}
}

// ObjectConfig is one scene object: a shape built with a material,
// placed by a transform.
type ObjectConfig struct {
	Transform TransformConfig `toml:"transform"`
	Material  MaterialConfig  `toml:"material"`
	Shape     ShapeConfig     `toml:"shape"`
}

func (o ObjectConfig) build() (rt.Hittable, error) {
	material, err := o.Material.build()
	if err != nil {
		return nil, err
	}
	shape, err := o.Shape.build(material)
	if err != nil {
		return nil, err
	}
	return rt.NewTransform(shape, o.Transform.matrix()), nil
}

// RayConfig is one initial ray. Direction need not be unit; it is
// normalized on conversion.
type RayConfig struct {
	Origin     [3]float64 `toml:"origin"`
	Direction  [3]float64 `toml:"direction"`
	CurrentIOR float64    `toml:"current_ior"`
}

func (r RayConfig) build() (rt.Ray, error) {
	dir := prim.Vec3{X: r.Direction[0], Y: r.Direction[1], Z: r.Direction[2]}
	if dir.IsZero() {
		return rt.Ray{}, fmt.Errorf("config: ray direction must be nonzero")
	}
	ior := r.CurrentIOR
	if ior == 0 {
		ior = 1.0
	}
	return rt.Ray{
		Origin:     prim.Vec3{X: r.Origin[0], Y: r.Origin[1], Z: r.Origin[2]},
		Direction:  *dir.Normalize(),
		CurrentIOR: ior,
	}, nil
}

// Load reads and parses a TOML scene file at path, expands any
// generators into flat object/ray lists, and returns a ready-to-run
// rt.Scene. All errors are wrapped config errors; Load never
// panics on malformed input.
func Load(path string) (*rt.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg SceneConfig
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	settings := rt.SimulationSettings{
		InfinityDistance: cfg.SimulationSettings.InfinityDistance,
		MaxBounces:       cfg.SimulationSettings.MaxBounces,
		Seed:             cfg.SimulationSettings.Seed,
	}
	if settings.InfinityDistance <= 0 {
		return nil, fmt.Errorf("config: simulation_settings.infinity_distance must be positive")
	}
	if settings.MaxBounces <= 0 {
		return nil, fmt.Errorf("config: simulation_settings.max_bounces must be positive")
	}

	var objects []rt.Hittable
	for i, oc := range cfg.Objects {
		obj, err := oc.build()
		if err != nil {
			return nil, fmt.Errorf("config: objects[%d]: %w", i, err)
		}
		objects = append(objects, obj)
	}
	for i, g := range cfg.ObjectGrids {
		grid, err := g.expand()
		if err != nil {
			return nil, fmt.Errorf("config: object_grids[%d]: %w", i, err)
		}
		objects = append(objects, grid...)
	}

	var rays []rt.Ray
	for i, rc := range cfg.Rays {
		ray, err := rc.build()
		if err != nil {
			return nil, fmt.Errorf("config: rays[%d]: %w", i, err)
		}
		rays = append(rays, ray)
	}
	for i, g := range cfg.RayParallelGrids {
		expanded, err := g.expand()
		if err != nil {
			return nil, fmt.Errorf("config: ray_parallel_grids[%d]: %w", i, err)
		}
		rays = append(rays, expanded...)
	}
	for i, g := range cfg.RayProjectors {
		expanded, err := g.expand()
		if err != nil {
			return nil, fmt.Errorf("config: ray_projectors[%d]: %w", i, err)
		}
		rays = append(rays, expanded...)
	}

	return rt.NewScene(objects, rays, settings), nil
}
