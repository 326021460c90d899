package oscript

import (
	"testing"

	rt "github.com/timdestan/go-raytracer"
)

func evalProgram(t *testing.T, src string) *EvalState {
	t.Helper()
	tokens, err := NewParser(src).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	state := NewEvalState()
	if err := state.Eval(tokens); err != nil {
		t.Fatalf("Eval(%q) error = %v", src, err)
	}
	return state
}

func TestEvalBuildsSphereWithMirror(t *testing.T) {
	state := evalProgram(t, "5.0 mirror sphere")
	if len(state.Stack) != 1 {
		t.Fatalf("stack depth = %d, want 1", len(state.Stack))
	}
	shape, ok := state.Stack[0].(VShape)
	if !ok {
		t.Fatalf("top of stack is %T, want VShape", state.Stack[0])
	}
	if shape.Material.Kind != rt.MaterialMirror {
		t.Errorf("material kind = %v, want Mirror", shape.Material.Kind)
	}
}

func TestEvalTraceSphereHit(t *testing.T) {
	state := evalProgram(t, "5.0 mirror sphere -20.0 0.0 0.0 1.0 0.0 0.0 ray trace")
	if len(state.Stack) != 1 {
		t.Fatalf("stack depth = %d, want 1", len(state.Stack))
	}
	path, ok := state.Stack[0].(VPath)
	if !ok {
		t.Fatalf("top of stack is %T, want VPath", state.Stack[0])
	}
	if len(path.Points) < 3 {
		t.Fatalf("path has %d points, want at least 3 (origin, sphere hit, far-field)", len(path.Points))
	}
}

func TestEvalCSGUnion(t *testing.T) {
	state := evalProgram(t, "5.0 mirror sphere 3.0 mirror sphere union")
	if len(state.Stack) != 1 {
		t.Fatalf("stack depth = %d, want 1", len(state.Stack))
	}
	if _, ok := state.Stack[0].(VShape); !ok {
		t.Fatalf("top of stack is %T, want VShape", state.Stack[0])
	}
}

func TestEvalUnboundIdentifierErrors(t *testing.T) {
	tokens, err := NewParser("nosuchname").Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	state := NewEvalState()
	if err := state.Eval(tokens); err == nil {
		t.Errorf("Eval() error = nil, want an unbound-identifier error")
	}
}
