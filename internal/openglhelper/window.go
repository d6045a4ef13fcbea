package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// WindowConfig describes the window and context to create. Debug requests
// an OpenGL debug context.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
	Debug  bool
}

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow *glfw.Window
	width      int
	height     int
	title      string
}

// NewWindow creates a new GLFW window with an OpenGL 4.6 core context
func NewWindow(cfg WindowConfig) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if cfg.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	// Create window
	glfwWindow, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		glfwWindow.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Print OpenGL version
	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	// The framebuffer can differ from the requested size on HiDPI displays.
	width, height := glfwWindow.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	return &Window{
		glfwWindow: glfwWindow,
		width:      width,
		height:     height,
		title:      cfg.Title,
	}, nil
}

// Clear clears the color buffer
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// RequestClose flags the window to close at the end of the current frame
func (w *Window) RequestClose() {
	w.glfwWindow.SetShouldClose(true)
}

// Close destroys the window and releases GLFW
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the framebuffer dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Title returns the base title the window was created with
func (w *Window) Title() string {
	return w.title
}

// SetTitle sets the window title
func (w *Window) SetTitle(title string) {
	w.glfwWindow.SetTitle(title)
}

// IsKeyPressed reports whether key is currently held
func (w *Window) IsKeyPressed(key glfw.Key) bool {
	return w.glfwWindow.GetKey(key) == glfw.Press
}

// IsMouseButtonPressed reports whether button is currently held
func (w *Window) IsMouseButtonPressed(button glfw.MouseButton) bool {
	return w.glfwWindow.GetMouseButton(button) == glfw.Press
}

// CursorPos returns the cursor position in screen pixels
func (w *Window) CursorPos() (x, y float64) {
	return w.glfwWindow.GetCursorPos()
}

// SetCursorPos moves the cursor to x, y in screen pixels
func (w *Window) SetCursorPos(x, y float64) {
	w.glfwWindow.SetCursorPos(x, y)
}

// OnResize is called when the framebuffer is resized
func (w *Window) OnResize(width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// GLFWWindow returns the underlying GLFW window
func (w *Window) GLFWWindow() *glfw.Window {
	return w.glfwWindow
}

// SetCursorCaptured hides and locks the cursor, or restores it
func (w *Window) SetCursorCaptured(captured bool) {
	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}
