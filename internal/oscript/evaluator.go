// Package oscript implements a small PostScript-like stack language for
// interactively building a scene and tracing rays through it — a scene
// probe for trying out a shape or material combination before
// committing it to a TOML scene file. The lexer and parser are a
// generic postfix tokenizer with no assumptions about what the
// language is used for; only the builtin set and value types below are
// specific to optical path tracing.
package oscript

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"

	"github.com/timdestan/go-raytracer/internal/prim"
	rt "github.com/timdestan/go-raytracer"
)

// EvalState holds the stack, the variable environment bound by /name,
// the token currently being evaluated, and an optional step tracer.
type EvalState struct {
	CurrToken TokenGroup
	Stack     []Value
	Env       map[string]Value
	// Tracer, if non-nil, receives a line of execution trace per step.
	Tracer func(string)
}

func NewEvalState() *EvalState {
	return &EvalState{Env: make(map[string]Value)}
}

// Value is anything that can live on the oscript stack.
type Value interface {
	fmt.Stringer
	value()
}

type VReal float64

func (VReal) value() {}
func (v VReal) String() string {
	str := strconv.FormatFloat(float64(v), 'g', -1, 64)
	if strings.Contains(str, ".") || strings.ContainsAny(str, "eE") {
		return str
	}
	return str + ".0"
}

type VBool bool

func (VBool) value() {}
func (v VBool) String() string { return strconv.FormatBool(bool(v)) }

type VString string

func (VString) value() {}
func (v VString) String() string { return strconv.Quote(string(v)) }

type VClosure struct {
	Code TokenList
	Env  map[string]Value
}

func (VClosure) value() {}
func (v VClosure) String() string {
	return fmt.Sprintf("Closure(%v)", v.Code)
}

// VArray is produced by evaluating a [ ... ] token group.
type VArray struct {
	Elements []Value
}

func (VArray) value() {}
func (a VArray) String() string {
	parts := make([]string, len(a.Elements))
	for i, v := range a.Elements {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// VShape wraps an rt.Hittable along with the material it was built
// with. translate/rotatey wrap it in a new Transform and keep the
// material; union/intersection/difference keep the left operand's
// material.
type VShape struct {
	Hittable rt.Hittable
	Material rt.Material
}

func (VShape) value() {}
func (v VShape) String() string {
	return fmt.Sprintf("Shape(%T, material=%v)", v.Hittable, v.Material.Kind)
}

// VRay wraps an rt.Ray.
type VRay struct {
	Ray rt.Ray
}

func (VRay) value() {}
func (v VRay) String() string {
	return fmt.Sprintf("Ray(origin=%v, dir=%v)", v.Ray.Origin, v.Ray.Direction)
}

// VPath is the polyline the trace builtin produces.
type VPath struct {
	Points []prim.Vec3
}

func (VPath) value() {}
func (v VPath) String() string {
	parts := make([]string, len(v.Points))
	for i, p := range v.Points {
		parts[i] = p.String()
	}
	return "Path[" + strings.Join(parts, " -> ") + "]"
}

var ErrEmptyStack = errors.New("empty stack")
var ErrUnboundIdentifier = errors.New("unbound identifier")

func (e *EvalState) tracef(format string, args ...any) {
	if e.Tracer != nil {
		e.Tracer(fmt.Sprintf(format, args...))
	}
}

// Eval evaluates every token group in program against the receiver's
// stack and environment, in order.
func (e *EvalState) Eval(program TokenList) error {
	for _, token := range program {
		if err := e.evalOneStep(token); err != nil {
			return err
		}
	}
	return nil
}

func (e *EvalState) evalOneStep(token TokenGroup) error {
	e.CurrToken = token
	e.tracef("step: %v (stack depth %d)", TokenGroupDebugString(token), len(e.Stack))

	switch token := token.(type) {
	case *IntLiteral:
		e.push(VReal(token.Value))
	case *FloatLiteral:
		e.push(VReal(token.Value))
	case *BoolLiteral:
		e.push(VBool(token.Value))
	case *StringLiteral:
		e.push(VString(token.Value))
	case *Function:
		e.push(VClosure{Code: token.Body, Env: maps.Clone(e.Env)})
	case *Binder:
		v, err := e.pop()
		if err != nil {
			return err
		}
		e.Env[token.Name] = v
	case *Identifier:
		if b := builtins[token.Name]; b != nil {
			return b.Run(e)
		}
		if val, ok := e.Env[token.Name]; ok {
			e.push(val)
		} else {
			return fmt.Errorf("%w: %s", ErrUnboundIdentifier, token.Name)
		}
	case *Array:
		oldStack := e.Stack
		e.Stack = nil
		err := e.Eval(token.Elements)
		result := e.Stack
		e.Stack = oldStack
		if err != nil {
			return err
		}
		e.push(VArray{Elements: result})
	default:
		return fmt.Errorf("unknown token: %v", token)
	}
	return nil
}

func (e *EvalState) push(value Value) {
	e.Stack = append(e.Stack, value)
}

func (e *EvalState) pop() (Value, error) {
	if len(e.Stack) == 0 {
		return nil, fmt.Errorf("%w: token: %v", ErrEmptyStack, TokenGroupDebugString(e.CurrToken))
	}
	val := e.Stack[len(e.Stack)-1]
	e.Stack = e.Stack[:len(e.Stack)-1]
	return val, nil
}

func popValue[T Value](e *EvalState) (T, error) {
	v, err := e.pop()
	if err != nil {
		return *new(T), err
	}
	derived, ok := v.(T)
	if !ok {
		zero := *new(T)
		return zero, fmt.Errorf("type mismatch (evaluating %s): expected %T, got %v (%T)",
			TokenGroupDebugString(e.CurrToken), zero, v, v)
	}
	return derived, nil
}

func pop3Real(e *EvalState) (x, y, z VReal, err error) {
	if z, err = popValue[VReal](e); err != nil {
		return
	}
	if y, err = popValue[VReal](e); err != nil {
		return
	}
	if x, err = popValue[VReal](e); err != nil {
		return
	}
	return
}

type Builtin struct {
	Name string
	Func func(*EvalState) error
}

var errNotImplemented = errors.New("not implemented")

func (b Builtin) Run(e *EvalState) error {
	if b.Func == nil {
		return fmt.Errorf("%w: %s", errNotImplemented, b.Name)
	}
	return b.Func(e)
}

var builtins map[string]*Builtin

func init() {
	builtins = map[string]*Builtin{}
	register := func(name string, f func(*EvalState) error) {
		builtins[name] = &Builtin{Name: name, Func: f}
	}

	register("sphere", biSphere)
	register("plane", biPlane)
	register("cylinder", biCylinder)
	register("cone", biCone)
	register("box", biBox)
	register("lens", biLens)
	register("wedge", biWedge)

	register("mirror", biMirror)
	register("glass", biGlass)
	register("halfmirror", biHalfMirror)

	register("union", biUnion)
	register("intersection", biIntersection)
	register("difference", biDifference)

	register("translate", biTranslate)
	register("rotatey", biRotateY)

	register("ray", biRay)
	register("trace", biTrace)
}

// Rebuilding a shape's backing Hittable with a new material is not
// possible after construction (primitives close over their material at
// build time), so mirror/glass/halfmirror instead apply to freshly
// built shapes: the material tag is pushed right after the
// shape-building arguments, on top of them, and biSphere and friends
// pop it first.

func biSphere(e *EvalState) error {
	mat, err := popValue[VString](e)
	if err != nil {
		return err
	}
	radius, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	material, err := materialFromTag(e, string(mat))
	if err != nil {
		return err
	}
	e.push(VShape{Hittable: rt.NewSphere(prim.Vec3{}, float64(radius), material), Material: material})
	return nil
}

func biPlane(e *EvalState) error {
	mat, err := popValue[VString](e)
	if err != nil {
		return err
	}
	material, err := materialFromTag(e, string(mat))
	if err != nil {
		return err
	}
	e.push(VShape{Hittable: rt.NewPlane(prim.Vec3{}, prim.Vec3{Y: 1}, material), Material: material})
	return nil
}

func biCylinder(e *EvalState) error {
	mat, err := popValue[VString](e)
	if err != nil {
		return err
	}
	height, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	radius, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	material, err := materialFromTag(e, string(mat))
	if err != nil {
		return err
	}
	e.push(VShape{Hittable: rt.NewCappedCylinder(float64(radius), float64(height), material), Material: material})
	return nil
}

func biCone(e *EvalState) error {
	mat, err := popValue[VString](e)
	if err != nil {
		return err
	}
	height, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	halfAngleDeg, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	material, err := materialFromTag(e, string(mat))
	if err != nil {
		return err
	}
	e.push(VShape{Hittable: rt.NewCappedCone(float64(halfAngleDeg), float64(height), material), Material: material})
	return nil
}

func biBox(e *EvalState) error {
	mat, err := popValue[VString](e)
	if err != nil {
		return err
	}
	maxX, maxY, maxZ, err := pop3Real(e)
	if err != nil {
		return err
	}
	minX, minY, minZ, err := pop3Real(e)
	if err != nil {
		return err
	}
	material, err := materialFromTag(e, string(mat))
	if err != nil {
		return err
	}
	min := prim.Vec3{X: float64(minX), Y: float64(minY), Z: float64(minZ)}
	max := prim.Vec3{X: float64(maxX), Y: float64(maxY), Z: float64(maxZ)}
	e.push(VShape{Hittable: rt.NewAxisAlignedBox(min, max, material), Material: material})
	return nil
}

func biLens(e *EvalState) error {
	mat, err := popValue[VString](e)
	if err != nil {
		return err
	}
	r2, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	r1, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	diameter, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	thickness, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	material, err := materialFromTag(e, string(mat))
	if err != nil {
		return err
	}
	e.push(VShape{
		Hittable: rt.NewLens(float64(thickness), float64(diameter), float64(r1), float64(r2), material),
		Material: material,
	})
	return nil
}

func biWedge(e *EvalState) error {
	mat, err := popValue[VString](e)
	if err != nil {
		return err
	}
	angleDeg, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	size, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	material, err := materialFromTag(e, string(mat))
	if err != nil {
		return err
	}
	e.push(VShape{
		Hittable: rt.NewWedge(float64(size), float64(angleDeg)*math.Pi/180, material),
		Material: material,
	})
	return nil
}

// materialFromTag interprets a material keyword pushed just after (on
// top of) a shape's numeric arguments. "mirror" and "halfmirror:<reflectance>"
// and "glass:<ior>" are accepted so that shape builtins can take their
// material as a single string argument rather than three separate
// stack-juggling builtins per shape.
func materialFromTag(e *EvalState, tag string) (rt.Material, error) {
	switch {
	case tag == "mirror":
		return rt.Mirror(), nil
	case strings.HasPrefix(tag, "glass:"):
		ior, err := strconv.ParseFloat(strings.TrimPrefix(tag, "glass:"), 64)
		if err != nil {
			return rt.Material{}, fmt.Errorf("oscript: bad glass ior in %q: %w", tag, err)
		}
		return rt.Glass(ior), nil
	case strings.HasPrefix(tag, "halfmirror:"):
		r, err := strconv.ParseFloat(strings.TrimPrefix(tag, "halfmirror:"), 64)
		if err != nil {
			return rt.Material{}, fmt.Errorf("oscript: bad halfmirror reflectance in %q: %w", tag, err)
		}
		return rt.HalfMirror(r), nil
	default:
		return rt.Material{}, fmt.Errorf("oscript: unknown material tag %q (want mirror, glass:<ior>, or halfmirror:<r>)", tag)
	}
}

// biMirror, biGlass, and biHalfMirror are standalone builtins that push
// the material tag string a shape builtin expects, so a script can read
// naturally as "5.0 mirror sphere" instead of repeating the tag syntax.
func biMirror(e *EvalState) error {
	e.push(VString("mirror"))
	return nil
}

func biGlass(e *EvalState) error {
	ior, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	e.push(VString(fmt.Sprintf("glass:%v", float64(ior))))
	return nil
}

func biHalfMirror(e *EvalState) error {
	r, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	e.push(VString(fmt.Sprintf("halfmirror:%v", float64(r))))
	return nil
}

func biUnion(e *EvalState) error      { return combine(e, rt.Union) }
func biIntersection(e *EvalState) error { return combine(e, rt.Intersection) }
func biDifference(e *EvalState) error { return combine(e, rt.Difference) }

func combine(e *EvalState, op rt.CSGOp) error {
	right, err := popValue[VShape](e)
	if err != nil {
		return err
	}
	left, err := popValue[VShape](e)
	if err != nil {
		return err
	}
	e.push(VShape{
		Hittable: rt.NewCSGNode(op, left.Hittable, right.Hittable),
		Material: left.Material,
	})
	return nil
}

func biTranslate(e *EvalState) error {
	x, y, z, err := pop3Real(e)
	if err != nil {
		return err
	}
	shape, err := popValue[VShape](e)
	if err != nil {
		return err
	}
	m := prim.Translate(prim.Vec3{X: float64(x), Y: float64(y), Z: float64(z)})
	e.push(VShape{Hittable: rt.NewTransform(shape.Hittable, m), Material: shape.Material})
	return nil
}

func biRotateY(e *EvalState) error {
	deg, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	shape, err := popValue[VShape](e)
	if err != nil {
		return err
	}
	m := prim.RotateY(float64(deg) * math.Pi / 180)
	e.push(VShape{Hittable: rt.NewTransform(shape.Hittable, m), Material: shape.Material})
	return nil
}

func biRay(e *EvalState) error {
	dx, dy, dz, err := pop3Real(e)
	if err != nil {
		return err
	}
	ox, oy, oz, err := pop3Real(e)
	if err != nil {
		return err
	}
	dir := prim.Vec3{X: float64(dx), Y: float64(dy), Z: float64(dz)}
	if dir.IsZero() {
		return fmt.Errorf("oscript: ray direction must be nonzero")
	}
	e.push(VRay{Ray: rt.Ray{
		Origin:     prim.Vec3{X: float64(ox), Y: float64(oy), Z: float64(oz)},
		Direction:  *dir.Normalize(),
		CurrentIOR: 1.0,
	}})
	return nil
}

// biTrace runs the ray-march loop against a single shape and a single
// ray, with a default bounce budget of 10 and infinity distance of 200,
// matching the core package's end-to-end test defaults. It pushes back
// the resulting polyline as a VPath.
func biTrace(e *EvalState) error {
	ray, err := popValue[VRay](e)
	if err != nil {
		return err
	}
	shape, err := popValue[VShape](e)
	if err != nil {
		return err
	}
	scene := rt.NewScene(
		[]rt.Hittable{shape.Hittable},
		[]rt.Ray{ray.Ray},
		rt.SimulationSettings{InfinityDistance: 200, MaxBounces: 10, Seed: 0},
	)
	paths := scene.SimulateRays()
	e.push(VPath{Points: paths[0]})
	return nil
}
