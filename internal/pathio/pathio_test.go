package pathio

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/timdestan/go-raytracer/internal/prim"
)

func TestWritePathsWritesOneFilePerRay(t *testing.T) {
	dir := t.TempDir()
	paths := [][]prim.Vec3{
		{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 2, Z: 3}},
		{{X: 5, Y: 5, Z: 5}},
	}

	if err := WritePaths(dir, paths); err != nil {
		t.Fatalf("WritePaths() error = %v", err)
	}

	for i := range paths {
		name := filepath.Join(dir, "path_"+strconv.Itoa(i)+".csv")
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestWritePathsHeaderAndRows(t *testing.T) {
	dir := t.TempDir()
	paths := [][]prim.Vec3{{{X: 1, Y: 2, Z: 3}}}
	if err := WritePaths(dir, paths); err != nil {
		t.Fatalf("WritePaths() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "path_0.csv"))
	if err != nil {
		t.Fatalf("reading path_0.csv: %v", err)
	}
	want := "x,y,z\n1,2,3\n"
	if string(data) != want {
		t.Errorf("path_0.csv = %q, want %q", string(data), want)
	}
}

func TestWritePathsCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if err := WritePaths(dir, nil); err != nil {
		t.Fatalf("WritePaths() error = %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("directory not created: %v", err)
	}
}
