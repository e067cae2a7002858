package core

// WindowConfig describes the main window of an exercise.
type WindowConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Resizable  bool   `toml:"resizable"`
	VSync      bool   `toml:"vsync"`
	Fullscreen bool   `toml:"fullscreen"`
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:      1024,
		Height:     1024,
		Title:      "Particles demo",
		Resizable:  true,
		VSync:      true,
		Fullscreen: false,
	}
}
