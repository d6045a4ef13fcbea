package openglhelper

import "github.com/go-gl/gl/v4.6-core/gl"

// FullscreenTriangle draws one triangle covering the viewport. It has no
// vertex buffer; the vertex shader derives positions from gl_VertexID.
type FullscreenTriangle struct {
	vao *VertexArrayObject
}

// NewFullscreenTriangle creates the empty vertex array core profile
// contexts require for any draw call.
func NewFullscreenTriangle() *FullscreenTriangle {
	return &FullscreenTriangle{vao: NewVAO()}
}

// Draw issues the attributeless 3-vertex draw. The caller binds the program.
func (t *FullscreenTriangle) Draw() {
	t.vao.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
}

// Delete releases the vertex array.
func (t *FullscreenTriangle) Delete() {
	t.vao.Unbind()
	t.vao.Delete()
}
