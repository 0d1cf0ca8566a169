// Package assets holds the files the host needs at run time: GLSL sources
// compiled into the binary, and PNG import/export for frames.
package assets

import (
	"embed"
	"fmt"
)

//go:embed shaders
var shaders embed.FS

// LoadShader returns an embedded GLSL source as a null-terminated string for
// OpenGL.
func LoadShader(name string) (string, error) {
	b, err := shaders.ReadFile("shaders/" + name)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
