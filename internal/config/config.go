package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/leterax/go-raymarch/pkg/camera"
)

// DefaultPath is the optional configuration file read from the working directory.
const DefaultPath = "raymarch.yaml"

// Config holds all viewer configuration values
type Config struct {
	Window  WindowConfig `yaml:"window"`
	Shaders ShaderConfig `yaml:"shaders"`
	Camera  CameraConfig `yaml:"camera"`
	Render  RenderConfig `yaml:"render"`
}

// WindowConfig sizes the window. Debug requests a GL debug context, which
// costs some performance.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
	Debug  bool   `yaml:"debug"`
}

type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	FOV         float32    `yaml:"fov"`
	MoveSpeed   float32    `yaml:"move_speed"`
	Sensitivity float32    `yaml:"sensitivity"`
}

type RenderConfig struct {
	ClearColor [4]float32 `yaml:"clear_color"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cam := camera.DefaultConfig()
	return &Config{
		Window: WindowConfig{
			Width:  2560,
			Height: 1440,
			Title:  "OpenGL",
			VSync:  true,
			Debug:  true,
		},
		Shaders: ShaderConfig{
			Vertex:   "shaders/fullscreen.vert",
			Fragment: "shaders/fullscreen.frag",
		},
		Camera: CameraConfig{
			Position:    cam.Position,
			Yaw:         cam.Yaw,
			Pitch:       cam.Pitch,
			FOV:         cam.FOV,
			MoveSpeed:   cam.MoveSpeed,
			Sensitivity: cam.Sensitivity,
		},
		Render: RenderConfig{
			ClearColor: [4]float32{0.1, 0.1, 0.1, 1.0},
		},
	}
}

// LoadConfig reads filename on top of Default and validates the result.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return config, nil
}

// LoadOrDefault behaves like LoadConfig but falls back to Default when
// filename does not exist.
func LoadOrDefault(filename string) (*Config, error) {
	config, err := LoadConfig(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return config, err
}

// Validate reports every out-of-range value.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		errs = append(errs, errors.New("both vertex and fragment shader paths are required"))
	}
	if c.Camera.Pitch < camera.MinPitch || c.Camera.Pitch > camera.MaxPitch {
		errs = append(errs, fmt.Errorf("camera pitch %v outside [%v, %v]", c.Camera.Pitch, camera.MinPitch, camera.MaxPitch))
	}
	if c.Camera.MoveSpeed < camera.MinMoveSpeed || c.Camera.MoveSpeed > camera.MaxMoveSpeed {
		errs = append(errs, fmt.Errorf("camera move_speed %v outside [%v, %v]", c.Camera.MoveSpeed, camera.MinMoveSpeed, camera.MaxMoveSpeed))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %v outside (0, 180)", c.Camera.FOV))
	}
	if c.Camera.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("camera sensitivity must be positive, got %v", c.Camera.Sensitivity))
	}
	return errors.Join(errs...)
}

// CameraSettings converts the camera section for camera.New.
func (c *Config) CameraSettings() camera.Config {
	return camera.Config{
		Position:    mgl32.Vec3(c.Camera.Position),
		Yaw:         c.Camera.Yaw,
		Pitch:       c.Camera.Pitch,
		FOV:         c.Camera.FOV,
		MoveSpeed:   c.Camera.MoveSpeed,
		Sensitivity: c.Camera.Sensitivity,
	}
}

// ClearColor returns the framebuffer clear colour.
func (c *Config) ClearColor() mgl32.Vec4 {
	return mgl32.Vec4(c.Render.ClearColor)
}
