// The optictrace command loads a TOML scene file, simulates every ray
// in it, and writes the resulting polylines as CSV.
package main

import (
	"flag"
	"fmt"
	"log"

	rt "github.com/timdestan/go-raytracer"
	"github.com/timdestan/go-raytracer/internal/config"
	"github.com/timdestan/go-raytracer/internal/pathio"
)

var (
	sceneFile = flag.String("scene_file", "", "TOML scene file to load")
	outDir    = flag.String("out_dir", "./dist", "directory to write path_<i>.csv files into")
)

func main() {
	flag.Parse()

	var scene *rt.Scene
	if len(*sceneFile) == 0 {
		log.Print("--scene_file not specified, using canned scene.")
		scene = rt.ExampleScene1()
	} else {
		loaded, err := config.Load(*sceneFile)
		if err != nil {
			log.Fatal(err)
		}
		scene = loaded
	}

	paths := scene.SimulateRays()

	if err := pathio.WritePaths(*outDir, paths); err != nil {
		log.Fatal(err)
	}

	for i, path := range paths {
		fmt.Printf("ray %d: %d points\n", i, len(path))
	}
	fmt.Printf("wrote %d path(s) to %s\n", len(paths), *outDir)
}
