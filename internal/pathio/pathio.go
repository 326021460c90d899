// Package pathio serializes traced ray polylines to CSV files, one file
// per ray.
package pathio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/timdestan/go-raytracer/internal/prim"
)

// WritePaths writes one path_<i>.csv file per entry in paths into dir,
// creating dir if it does not exist. Each file has header "x,y,z"
// followed by one row per polyline vertex. This is a one-shot, narrow
// format conversion with no analytic content, so the standard library's
// encoding/csv is used directly rather than a third-party CSV library.
func WritePaths(dir string, paths [][]prim.Vec3) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("pathio: creating %s: %w", dir, err)
	}

	for i, path := range paths {
		name := filepath.Join(dir, fmt.Sprintf("path_%d.csv", i))
		if err := writeOnePath(name, path); err != nil {
			return fmt.Errorf("pathio: writing %s: %w", name, err)
		}
	}
	return nil
}

func writeOnePath(name string, path []prim.Vec3) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}
	for _, p := range path {
		row := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
			strconv.FormatFloat(p.Z, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
