// Package openglhelper provides utilities for working with OpenGL windows,
// programs and vertex arrays. It wraps the low-level OpenGL functions in a
// more Go-friendly API.
package openglhelper

import "github.com/go-gl/gl/v4.6-core/gl"

// VertexArrayObject represents an OpenGL vertex array object (VAO) that stores vertex attribute configurations.
type VertexArrayObject struct {
	ID uint32
}

// NewVAO creates a new vertex array object.
func NewVAO() *VertexArrayObject {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)
	return &VertexArrayObject{ID: vaoID}
}

// Bind binds the vertex array object.
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

// Unbind unbinds the vertex array object.
func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// Delete deletes the vertex array object.
func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
}
