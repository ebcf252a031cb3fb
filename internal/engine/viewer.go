package engine

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"SolarSystem/internal/behaviour"
	"SolarSystem/internal/config"
	"SolarSystem/internal/logger"
	"SolarSystem/internal/renderer"
	"SolarSystem/internal/solar"
	"SolarSystem/scripts"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Fixed updates run every fixedUpdateFrames frames.
const fixedUpdateFrames = 2

// Viewer owns the window and drives the frame loop of a scene.
type Viewer struct {
	Width      int32
	Height     int32
	Settings   config.Settings
	ConfigPath string // Watched for changes when set
	DysonOnly  bool

	rendererAPI  renderer.Render
	window       *glfw.Window
	scene        *solar.Scene
	reloads      chan config.Settings
	frameTrackId int

	dragging     bool
	lastX, lastY float64
}

func NewViewer(settings config.Settings) *Viewer {
	return &Viewer{
		Width:       int32(settings.Window.Width),
		Height:      int32(settings.Window.Height),
		Settings:    settings,
		rendererAPI: &renderer.OpenGLRenderer{},
		reloads:     make(chan config.Settings, 1),
	}
}

// Run opens the window and renders until it is closed or ctx is done. It must
// be called from the main goroutine.
func (v *Viewer) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(v.Width), int(v.Height), v.Settings.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	v.window = window
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize OpenGL: %w", err)
	}
	if v.Settings.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	if err := v.rendererAPI.Init(int32(fbWidth), int32(fbHeight), window); err != nil {
		return fmt.Errorf("initialize renderer: %w", err)
	}
	defer v.rendererAPI.Cleanup()

	if err := v.load(ctx); err != nil {
		return err
	}

	window.SetCursorPosCallback(v.cursorCallback)
	window.SetScrollCallback(v.scrollCallback)
	window.SetFramebufferSizeCallback(v.framebufferSizeCallback)
	window.SetSizeCallback(v.sizeCallback)
	window.SetKeyCallback(v.keyCallback)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if v.ConfigPath != "" {
		if err := config.Watch(watchCtx, v.ConfigPath, v.offer); err != nil {
			logger.Log.Warn("Settings will not reload", zap.Error(err))
		}
	}

	v.renderLoop(ctx)
	return nil
}

// load builds the scene, attaches its scripts and hands it to the renderer.
func (v *Viewer) load(ctx context.Context) error {
	var scene *solar.Scene
	var err error
	if v.DysonOnly {
		scene, err = solar.BuildDysonScene(v.Settings, v.Width, v.Height)
	} else {
		scene, err = solar.BuildScene(ctx, v.Settings, v.Width, v.Height)
	}
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	if err := scripts.AttachSolarSystem(scene); err != nil {
		return err
	}
	behaviour.GlobalComponentManager.Clear()
	scene.Register(behaviour.GlobalComponentManager)
	behaviour.GlobalBehaviourManager.Clear()
	behaviour.GlobalBehaviourManager.Add(&cameraRig{scene: scene})
	if err := scene.Attach(v.rendererAPI); err != nil {
		return err
	}
	v.scene = scene
	return nil
}

func (v *Viewer) renderLoop(ctx context.Context) {
	start := time.Now()
	for !v.window.ShouldClose() {
		select {
		case <-ctx.Done():
			v.window.SetShouldClose(true)
		case next := <-v.reloads:
			v.scene.ApplySettings(next)
		default:
		}

		v.step(time.Now())
		v.rendererAPI.Render(*v.scene.Camera, v.scene.Lights)

		v.window.SwapBuffers()
		glfw.PollEvents()
	}
	logger.Log.Info("Viewer closed",
		zap.Uint64("frames", behaviour.Time.Frame),
		zap.Duration("uptime", time.Since(start)))
}

// step advances the scene by one frame without touching GL.
func (v *Viewer) step(now time.Time) {
	behaviour.GlobalBehaviourManager.Advance(now)
	if v.frameTrackId >= fixedUpdateFrames {
		behaviour.GlobalBehaviourManager.UpdateAllFixed()
		v.frameTrackId = 0
	}
	behaviour.GlobalBehaviourManager.UpdateAll()
	v.frameTrackId++
}

// cameraRig eases the camera toward the orbit controls every frame.
type cameraRig struct {
	scene *solar.Scene
}

func (c *cameraRig) Start()       {}
func (c *cameraRig) UpdateFixed() {}

func (c *cameraRig) Update() {
	c.scene.Controls.Update(c.scene.Camera)
}

// offer queues settings for the render loop, replacing any not yet applied.
// It is called from the watcher goroutine.
func (v *Viewer) offer(s config.Settings) {
	for {
		select {
		case v.reloads <- s:
			return
		default:
		}
		select {
		case <-v.reloads:
		default:
		}
	}
}

func (v *Viewer) SetDebugMode(debug bool) {
	renderer.Debug = debug
}

func (v *Viewer) SetFrustumCulling(enabled bool) {
	renderer.FrustumCullingEnabled = enabled
}

// drag turns cursor movement with the left button held into orbit rotation.
func (v *Viewer) drag(x, y float64, pressed bool) {
	if !pressed {
		v.dragging = false
		return
	}
	if !v.dragging {
		v.lastX, v.lastY = x, y
		v.dragging = true
		return
	}
	v.scene.Controls.Rotate(float32(x-v.lastX), float32(y-v.lastY))
	v.lastX, v.lastY = x, y
}

func (v *Viewer) cursorCallback(w *glfw.Window, x, y float64) {
	v.drag(x, y, w.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press)
}

func (v *Viewer) scrollCallback(_ *glfw.Window, _, yoff float64) {
	v.scene.Controls.Zoom(float32(yoff))
}

func (v *Viewer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	v.rendererAPI.UpdateViewport(int32(width), int32(height))
}

func (v *Viewer) sizeCallback(_ *glfw.Window, width, height int) {
	v.resize(int32(width), int32(height))
}

func (v *Viewer) resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	v.Width, v.Height = width, height
	v.scene.Camera.SetViewport(width, height)
}

func (v *Viewer) keyCallback(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}
