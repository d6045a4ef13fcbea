// Package shadersource reads GLSL source text for the viewer's program.
package shadersource

import (
	"errors"
	"fmt"
	"io/fs"
)

// Load reads the shader at path from fsys.
func Load(fsys fs.FS, path string) (string, error) {
	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	return string(src), nil
}

// Pair is the vertex and fragment source of one program. A stage that could
// not be read has empty source and its error recorded.
type Pair struct {
	Vertex      string
	Fragment    string
	VertexErr   error
	FragmentErr error
}

// Err joins the read errors of both stages.
func (p Pair) Err() error {
	return errors.Join(p.VertexErr, p.FragmentErr)
}

// LoadPair reads both stages. Read failures do not stop the other stage from
// loading; the caller decides whether an empty stage is fatal.
func LoadPair(fsys fs.FS, vertexPath, fragmentPath string) Pair {
	var p Pair
	p.Vertex, p.VertexErr = Load(fsys, vertexPath)
	p.Fragment, p.FragmentErr = Load(fsys, fragmentPath)
	return p
}
