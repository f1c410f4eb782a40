package render

import (
	_ "embed"
)

// Shader sources are compiled into the binary so the renderer has no
// runtime dependency on a shader directory.
var (
	//go:embed shaders/scene.vert
	vertexShaderSource string

	//go:embed shaders/scene.frag
	fragmentShaderSource string
)
