package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-raymarch/pkg/camera"
	"github.com/leterax/go-raymarch/pkg/frame"
)

// surface is the part of the window a frame writes to.
type surface interface {
	Title() string
	SetTitle(title string)
	Clear(color mgl32.Vec4)
}

// program is a shader that can be bound and fed uniforms.
type program interface {
	camera.UniformSink
	Use()
}

// drawable issues a draw call against the bound program.
type drawable interface {
	Draw()
}

// frameLoop runs one tick of the viewer against its collaborators.
type frameLoop struct {
	surface    surface
	input      camera.Input
	program    program
	scene      drawable
	controller *camera.Controller
	clock      *frame.Clock
	clearColor mgl32.Vec4
}

// step runs one tick at now: timing, input, uniforms, clear, draw.
func (f *frameLoop) step(now float64) {
	dt, report, ok := f.clock.Tick(now)
	if ok {
		f.surface.SetTitle(formatTitle(f.surface.Title(), report))
	}

	// Movement uses last frame's basis; mouse look rebuilds it for this frame.
	f.controller.Update(f.input, float32(dt))

	f.program.Use()
	f.controller.Camera().Uniforms(f.clock.Elapsed()).Push(f.program)

	f.surface.Clear(f.clearColor)
	f.scene.Draw()
}
