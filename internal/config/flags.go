package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and the overlay")
	flagFaceColors = flag.Bool("face-colors", false, "Color quads by face direction")
	flagDistance   = flag.Int("distance", 0, "Render distance in chunks")
	flagSeed       = flag.Int64("seed", 0, "Terrain generation seed")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Game.ShowOverlay = true
	}
	if *flagFaceColors {
		cfg.Terrain.DebugFaceColors = true
	}
	if *flagDistance > 0 {
		cfg.Terrain.RenderDistance = *flagDistance
	}
	if *flagSeed != 0 {
		cfg.World.Seed = *flagSeed
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
