// Package config handles configuration loading and management.
package config

// Config holds all runtime settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	World    WorldConfig    `yaml:"world"`
	Game     GameConfig     `yaml:"game"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"`
}

// TerrainConfig holds meshing and terrain rendering settings.
type TerrainConfig struct {
	// RenderDistance is the generated area radius in chunks.
	RenderDistance int `yaml:"render_distance"`
	// MeshWorkers is the greedy-mesh worker count; 0 means one per CPU.
	MeshWorkers int `yaml:"mesh_workers"`
	// DebugFaceColors colors quads by face direction instead of voxel type.
	DebugFaceColors bool `yaml:"debug_face_colors"`
}

// WorldConfig holds terrain generation settings.
type WorldConfig struct {
	Seed int64 `yaml:"seed"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	ShowOverlay bool `yaml:"show_overlay"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOV:        60,
		},
		Terrain: TerrainConfig{
			RenderDistance:  4,
			MeshWorkers:     0,
			DebugFaceColors: false,
		},
		World: WorldConfig{
			Seed: 1337,
		},
		Game: GameConfig{
			ShowOverlay: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
