// Package render owns the viewer's window, shader program and frame loop.
package render

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/glgl/v4.6-core/glgl"

	"github.com/leterax/go-raymarch/internal/config"
	"github.com/leterax/go-raymarch/internal/openglhelper"
	"github.com/leterax/go-raymarch/internal/shadersource"
	"github.com/leterax/go-raymarch/pkg/camera"
	"github.com/leterax/go-raymarch/pkg/frame"
)

// Renderer handles the frame loop and owns every piece of viewer state.
// GLFW callbacks are bound to it; nothing lives at package scope.
type Renderer struct {
	window   *openglhelper.Window
	shader   *openglhelper.Shader
	triangle *openglhelper.FullscreenTriangle

	loop     *frameLoop
	isClosed bool
}

// NewRenderer creates the window and program described by cfg. Shader paths
// are resolved in shaders. Only window and context failures are returned;
// unreadable or broken shaders are logged and the viewer keeps running.
func NewRenderer(cfg *config.Config, shaders fs.FS) (*Renderer, error) {
	// Create window
	window, err := openglhelper.NewWindow(openglhelper.WindowConfig{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		VSync:  cfg.Window.VSync,
		Debug:  cfg.Window.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if cfg.Window.Debug && openglhelper.EnableDebugOutput(logDebugMessage) {
		log.Println("OpenGL debug output enabled")
	}

	// Load and compile the fullscreen program
	sources := shadersource.LoadPair(shaders, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err := sources.Err(); err != nil {
		log.Printf("shader not successfully read: %v", err)
	}
	shader, err := openglhelper.NewShader(sources.Vertex, sources.Fragment)
	if err != nil {
		log.Printf("shader program unusable, continuing:\n%v", err)
	}

	triangle := openglhelper.NewFullscreenTriangle()
	r := &Renderer{
		window:   window,
		shader:   shader,
		triangle: triangle,
		loop: &frameLoop{
			surface:    window,
			input:      windowInput{window},
			program:    shader,
			scene:      triangle,
			controller: camera.NewController(camera.New(cfg.CameraSettings())),
			clock:      frame.NewClock(),
			clearColor: cfg.ClearColor(),
		},
	}

	// Set up callbacks
	window.GLFWWindow().SetKeyCallback(r.keyCallback)
	window.GLFWWindow().SetScrollCallback(r.scrollCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(r.framebufferSizeCallback)

	shader.Use()
	width, height := window.Size()
	camera.PushResolution(shader, width, height)

	if err := glgl.Err(); err != nil {
		log.Printf("OpenGL error during setup: %v", err)
	}

	return r, nil
}

// Run starts the main rendering loop and releases every resource when the
// window is asked to close.
func (r *Renderer) Run() {
	defer r.Cleanup()

	for !r.window.ShouldClose() {
		r.loop.step(glfw.GetTime())

		// Swap buffers and poll events
		r.window.SwapBuffers()
		r.window.PollEvents()
	}
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.isClosed {
		return
	}
	r.isClosed = true

	r.triangle.Delete()
	r.shader.Delete()
	r.window.Close()
}

func formatTitle(base string, report frame.Report) string {
	return fmt.Sprintf("%s - FPS: %.1f | MS: %.3f", base, report.FPS, report.MsPerFrame)
}

func logDebugMessage(msg openglhelper.DebugMessage) {
	log.Printf("---------------\nDebug message (%d): %s\nSource: %s\nType: %s\nSeverity: %s\n",
		msg.ID, msg.Text, msg.Source, msg.Type, msg.Severity)
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == KeyEscape && action == glfw.Press {
		r.window.RequestClose()
	}
}

func (r *Renderer) scrollCallback(_ *glfw.Window, xoffset, yoffset float64) {
	r.loop.controller.Scroll(yoffset)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	// Minimised windows report a zero-sized framebuffer.
	if width <= 0 || height <= 0 {
		return
	}
	r.window.OnResize(width, height)

	r.shader.Use()
	camera.PushResolution(r.shader, width, height)
}
