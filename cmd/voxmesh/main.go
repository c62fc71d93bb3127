package main

import (
	"fmt"
	"runtime"
	"time"

	"voxmesh/internal/config"
	"voxmesh/internal/graphics/renderables/overlay"
	"voxmesh/internal/graphics/renderables/terrain"
	"voxmesh/internal/graphics/renderer"
	"voxmesh/internal/logger"
	"voxmesh/internal/profiling"
	"voxmesh/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		panic(err)
	}
	closer.Bind(logger.Sync)

	if err := glfw.Init(); err != nil {
		logger.Fatal("glfw init failed", zap.Error(err))
	}
	closer.Bind(glfw.Terminate)
	defer closer.Close()

	window, err := setupWindow(cfg)
	if err != nil {
		logger.Fatal("window setup failed", zap.Error(err))
	}

	workers := cfg.Terrain.MeshWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	terrainRenderer := terrain.New(workers, cfg.Terrain.DebugFaceColors)
	overlayRenderer := overlay.New(cfg.Graphics.Width, cfg.Graphics.Height)

	r, err := renderer.New(cfg.Graphics.Width, cfg.Graphics.Height,
		terrainRenderer,
		overlayRenderer,
	)
	if err != nil {
		logger.Fatal("renderer init failed", zap.Error(err))
	}
	closer.Bind(r.Dispose)
	r.Camera().FOV = cfg.Graphics.FOV

	gameWorld := world.New()
	genStart := time.Now()
	world.NewGenerator(cfg.World.Seed).GenerateArea(gameWorld, cfg.Terrain.RenderDistance)
	logger.Info("terrain generated",
		zap.Int("radius_chunks", cfg.Terrain.RenderDistance),
		zap.Int("chunks", len(gameWorld.Chunks())),
		zap.Duration("took", time.Since(genStart)))

	setupInputHandlers(window, r)

	runLoop(window, r, gameWorld, terrainRenderer, overlayRenderer, cfg.Game.ShowOverlay)
}

func setupWindow(cfg *config.Config) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	var monitor *glfw.Monitor
	if cfg.Graphics.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	window, err := glfw.CreateWindow(cfg.Graphics.Width, cfg.Graphics.Height, "voxmesh", monitor, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	if cfg.Graphics.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

func setupInputHandlers(window *glfw.Window, r *renderer.Renderer) {
	paused := false

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !paused {
			r.Camera().ProcessMouse(xpos, ypos)
		}
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			paused = !paused
			if paused {
				w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
			} else {
				w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
				r.Camera().ResetMouse()
			}
		}
		if key == glfw.KeyQ && action == glfw.Press && mods == glfw.ModControl {
			w.SetShouldClose(true)
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.UpdateViewport(width, height)
	})
}

func runLoop(window *glfw.Window, r *renderer.Renderer, w *world.World, t *terrain.Terrain, o *overlay.Overlay, showOverlay bool) {
	frames := 0
	fps := 0
	lastFPSCheckTime := time.Now()
	lastTime := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		r.Camera().ProcessKeyboard(window, dt)

		r.Render(w, dt)
		frames++

		if time.Since(lastFPSCheckTime) >= time.Second {
			fps = frames
			frames = 0
			lastFPSCheckTime = time.Now()
			logger.Debug("frame stats", zap.Int("fps", fps), zap.Int("quads", t.QuadCount()))
		}

		if showOverlay {
			o.SetText(fmt.Sprintf("FPS: %d\nQuads: %d\n%s", fps, t.QuadCount(), profiling.TopN(3)))
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
