// Command terrain renders the height-banded terrain grid under an orbit
// camera. With -export it writes the grid as glTF and exits without opening
// a window.
package main

import (
	"flag"
	"fmt"
	"os"

	"render-exercises/app"
	"render-exercises/config"
	"render-exercises/internal/logging"
	"render-exercises/scene"
)

func main() {
	configPath := flag.String("config", "assets/config.toml", "configuration file")
	export := flag.String("export", "", "write the terrain to this .gltf or .glb file and exit")
	debug := flag.Bool("debug", false, "log debug records")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, *debug || cfg.Debug)

	if *export != "" {
		t := buildTerrain(cfg.Terrain)
		if err := scene.ExportGLTF(t, *export); err != nil {
			logger.Error("export failed", "err", err)
			os.Exit(1)
		}
		logger.Info("terrain exported",
			"path", *export,
			"vertices", len(t.Mesh.Vertices),
			"triangles", t.Mesh.TriangleCount())
		return
	}

	cfg.Window.Title = "Terrain"
	if err := app.Run(cfg, logger, &terrainDemo{}); err != nil {
		logger.Error("terrain demo failed", "err", err)
		os.Exit(1)
	}
}

func buildTerrain(cfg config.Terrain) *scene.Terrain {
	var height scene.HeightFunc = scene.Flat
	if cfg.Amplitude != 0 {
		height = scene.Waves(cfg.Amplitude, cfg.Frequency)
	}
	return scene.NewTerrain(cfg.GridX, cfg.GridY, height)
}
