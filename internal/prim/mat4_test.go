package prim

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMat4IdentityRoundTrip(t *testing.T) {
	p := Vec3{X: 1, Y: 2, Z: 3}
	got := Identity().MulPoint(p)
	if diff := cmp.Diff(got, p, approxOpts); diff != "" {
		t.Errorf("Identity().MulPoint() mismatch (-got +want):\n%s", diff)
	}
}

func TestMat4TranslatePoint(t *testing.T) {
	m := Translate(Vec3{X: 1, Y: 2, Z: 3})
	got := m.MulPoint(Vec3{X: 5, Y: 5, Z: 5})
	want := Vec3{X: 6, Y: 7, Z: 8}
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("Translate().MulPoint() mismatch (-got +want):\n%s", diff)
	}
}

func TestMat4TranslateDoesNotAffectVectors(t *testing.T) {
	m := Translate(Vec3{X: 1, Y: 2, Z: 3})
	got := m.MulVector(Vec3{X: 5, Y: 5, Z: 5})
	want := Vec3{X: 5, Y: 5, Z: 5}
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("Translate().MulVector() mismatch (-got +want):\n%s", diff)
	}
}

func TestMat4RotateYQuarterTurn(t *testing.T) {
	m := RotateY(math.Pi / 2)
	got := m.MulVector(Vec3{X: 1, Y: 0, Z: 0})
	want := Vec3{X: 0, Y: 0, Z: -1}
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("RotateY(pi/2).MulVector() mismatch (-got +want):\n%s", diff)
	}
}

func TestMat4InverseUndoesTransform(t *testing.T) {
	m := Translate(Vec3{X: 3, Y: -1, Z: 2}).Mul(RotateY(1.2))
	inv := m.Inverse()

	p := Vec3{X: 4, Y: 5, Z: -6}
	got := inv.MulPoint(m.MulPoint(p))
	if diff := cmp.Diff(got, p, approxOpts); diff != "" {
		t.Errorf("Inverse().MulPoint(Matrix().MulPoint(p)) mismatch (-got +want):\n%s", diff)
	}
}

func TestMat4InverseSingularPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Inverse() on a singular matrix did not panic")
		}
	}()
	var zero Mat4
	zero.Inverse()
}
