// Command particles runs the portal demo: a spinning ring of particles around
// a stencil-masked portal, plus particles trailing the mouse while the left
// button is held.
package main

import (
	"flag"
	"fmt"
	"os"

	"render-exercises/app"
	"render-exercises/config"
	"render-exercises/internal/logging"
)

func main() {
	configPath := flag.String("config", "assets/config.toml", "configuration file")
	debug := flag.Bool("debug", false, "log debug records")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, *debug || cfg.Debug)

	if err := app.Run(cfg, logger, newPortalDemo()); err != nil {
		logger.Error("particles demo failed", "err", err)
		os.Exit(1)
	}
}
