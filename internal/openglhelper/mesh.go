package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Mesh represents a 3D mesh with vertices and indices uploaded to the GPU.
// A mesh is loaded once and drawn as many times as the scene needs it.
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads the given geometry and returns a drawable mesh.
func NewMesh(geometry Geometry) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(geometry.Vertices, StaticDraw)
	ebo := NewEBO(geometry.Indices, StaticDraw)

	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, VertexStride*4, 0)
	// Normal attribute (3 floats)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, VertexStride*4, 3*4)
	// Texture coordinates attribute (2 floats)
	vao.SetVertexAttribPointer(2, 2, gl.FLOAT, false, VertexStride*4, 6*4)

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(geometry.Indices)),
	}
}

// Draw renders the mesh with the currently active shader program.
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all GPU resources held by the mesh.
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}

// Tessellation levels for the curved primitives.
const (
	cylinderSegments = 36
	sphereStacks     = 18
	sphereSlices     = 36
)

// NewPlane creates a flat quad mesh in the XZ plane.
func NewPlane() *Mesh {
	return NewMesh(PlaneGeometry())
}

// NewBox creates a unit cube mesh.
func NewBox() *Mesh {
	return NewMesh(BoxGeometry())
}

// NewCylinder creates a capped cylinder mesh of radius 1 and height 1.
func NewCylinder() *Mesh {
	return NewMesh(CylinderGeometry(cylinderSegments, 1))
}

// NewTaperedCylinder creates a capped cylinder whose top radius is half
// its base radius.
func NewTaperedCylinder() *Mesh {
	return NewMesh(CylinderGeometry(cylinderSegments, 0.5))
}

// NewPyramid4 creates a four-sided pyramid mesh.
func NewPyramid4() *Mesh {
	return NewMesh(Pyramid4Geometry())
}

// NewSphere creates a unit UV-sphere mesh.
func NewSphere() *Mesh {
	return NewMesh(SphereGeometry(sphereStacks, sphereSlices))
}

// NewHalfSphere creates the upper dome of a unit sphere.
func NewHalfSphere() *Mesh {
	return NewMesh(HalfSphereGeometry(sphereStacks/2, sphereSlices))
}
