package openglhelper

import (
	"math"
)

// Geometry is raw mesh data before it is uploaded to the GPU.
// Vertex layout: position (3 floats), normal (3 floats), texture coordinates (2 floats).
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// VertexStride is the number of float32 values per vertex.
const VertexStride = 8

// VertexCount returns the number of vertices in the geometry.
func (g Geometry) VertexCount() int {
	return len(g.Vertices) / VertexStride
}

// appendVertex appends a single vertex to the geometry and returns its index.
func (g *Geometry) appendVertex(px, py, pz, nx, ny, nz, u, v float32) uint32 {
	idx := uint32(g.VertexCount())
	g.Vertices = append(g.Vertices, px, py, pz, nx, ny, nz, u, v)
	return idx
}

// PlaneGeometry builds a flat quad in the XZ plane spanning -1..1 on both
// axes, facing +Y.
func PlaneGeometry() Geometry {
	return Geometry{
		Vertices: []float32{
			-1, 0, 1, 0, 1, 0, 0, 0,
			1, 0, 1, 0, 1, 0, 1, 0,
			1, 0, -1, 0, 1, 0, 1, 1,
			-1, 0, -1, 0, 1, 0, 0, 1,
		},
		Indices: []uint32{0, 1, 2, 2, 3, 0},
	}
}

// BoxGeometry builds a unit cube centered on the origin with per-face
// normals and 0..1 texture coordinates on every face.
func BoxGeometry() Geometry {
	return Geometry{
		Vertices: []float32{
			// Front face
			-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
			0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
			0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
			-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,

			// Back face
			-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
			-0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
			0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
			0.5, -0.5, -0.5, 0, 0, -1, 0, 0,

			// Top face
			-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
			-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
			0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
			0.5, 0.5, -0.5, 0, 1, 0, 1, 1,

			// Bottom face
			-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
			0.5, -0.5, -0.5, 0, -1, 0, 1, 0,
			0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
			-0.5, -0.5, 0.5, 0, -1, 0, 0, 1,

			// Right face
			0.5, -0.5, -0.5, 1, 0, 0, 1, 0,
			0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
			0.5, 0.5, 0.5, 1, 0, 0, 0, 1,
			0.5, -0.5, 0.5, 1, 0, 0, 0, 0,

			// Left face
			-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
			-0.5, -0.5, 0.5, -1, 0, 0, 1, 0,
			-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
			-0.5, 0.5, -0.5, -1, 0, 0, 0, 1,
		},
		Indices: []uint32{
			0, 1, 2, 2, 3, 0, // Front face
			4, 5, 6, 6, 7, 4, // Back face
			8, 9, 10, 10, 11, 8, // Top face
			12, 13, 14, 14, 15, 12, // Bottom face
			16, 17, 18, 18, 19, 16, // Right face
			20, 21, 22, 22, 23, 20, // Left face
		},
	}
}

// CylinderGeometry builds a cylinder with its base circle (radius 1) on the
// XZ plane at the origin, rising to height 1 along +Y. The top radius may
// differ from the base radius to produce a tapered cylinder. Both ends are
// capped.
func CylinderGeometry(segments int, topRadius float32) Geometry {
	var g Geometry

	// slope of the side in the radius/height plane; 0 for a straight cylinder
	slope := 1 - topRadius

	// Side surface: two rows of segments+1 vertices so the seam gets its own
	// texture coordinate column.
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		cos := float32(math.Cos(theta))
		sin := float32(math.Sin(theta))

		nl := float32(math.Sqrt(float64(1 + slope*slope)))
		nx, ny, nz := cos/nl, slope/nl, sin/nl
		u := float32(i) / float32(segments)

		g.appendVertex(cos, 0, sin, nx, ny, nz, u, 0)
		g.appendVertex(topRadius*cos, 1, topRadius*sin, nx, ny, nz, u, 1)
	}
	for i := 0; i < segments; i++ {
		b0 := uint32(2 * i)
		t0 := b0 + 1
		b1 := b0 + 2
		t1 := b0 + 3
		g.Indices = append(g.Indices, b0, b1, t1, t1, t0, b0)
	}

	// Bottom cap
	center := g.appendVertex(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		cos := float32(math.Cos(theta))
		sin := float32(math.Sin(theta))
		g.appendVertex(cos, 0, sin, 0, -1, 0, cos*0.5+0.5, sin*0.5+0.5)
	}
	for i := 0; i < segments; i++ {
		g.Indices = append(g.Indices, center, center+uint32(i)+2, center+uint32(i)+1)
	}

	// Top cap
	center = g.appendVertex(0, 1, 0, 0, 1, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		cos := float32(math.Cos(theta))
		sin := float32(math.Sin(theta))
		g.appendVertex(topRadius*cos, 1, topRadius*sin, 0, 1, 0, cos*0.5+0.5, sin*0.5+0.5)
	}
	for i := 0; i < segments; i++ {
		g.Indices = append(g.Indices, center, center+uint32(i)+1, center+uint32(i)+2)
	}

	return g
}

// Pyramid4Geometry builds a four-sided pyramid with a unit square base at
// y=-0.5 and its apex at y=0.5.
func Pyramid4Geometry() Geometry {
	var g Geometry

	base := [4][3]float32{
		{-0.5, -0.5, 0.5},  // front-left
		{0.5, -0.5, 0.5},   // front-right
		{0.5, -0.5, -0.5},  // back-right
		{-0.5, -0.5, -0.5}, // back-left
	}
	apex := [3]float32{0, 0.5, 0}

	// Each side face gets its own vertices so the face normal stays flat.
	for i := 0; i < 4; i++ {
		v0 := base[i]
		v1 := base[(i+1)%4]

		e1 := [3]float32{v1[0] - v0[0], v1[1] - v0[1], v1[2] - v0[2]}
		e2 := [3]float32{apex[0] - v0[0], apex[1] - v0[1], apex[2] - v0[2]}
		nx := e1[1]*e2[2] - e1[2]*e2[1]
		ny := e1[2]*e2[0] - e1[0]*e2[2]
		nz := e1[0]*e2[1] - e1[1]*e2[0]
		nl := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
		nx, ny, nz = nx/nl, ny/nl, nz/nl

		a := g.appendVertex(v0[0], v0[1], v0[2], nx, ny, nz, 0, 0)
		b := g.appendVertex(v1[0], v1[1], v1[2], nx, ny, nz, 1, 0)
		c := g.appendVertex(apex[0], apex[1], apex[2], nx, ny, nz, 0.5, 1)
		g.Indices = append(g.Indices, a, b, c)
	}

	// Base, facing -Y
	a := g.appendVertex(base[0][0], base[0][1], base[0][2], 0, -1, 0, 0, 0)
	b := g.appendVertex(base[1][0], base[1][1], base[1][2], 0, -1, 0, 1, 0)
	c := g.appendVertex(base[2][0], base[2][1], base[2][2], 0, -1, 0, 1, 1)
	d := g.appendVertex(base[3][0], base[3][1], base[3][2], 0, -1, 0, 0, 1)
	g.Indices = append(g.Indices, a, c, b, a, d, c)

	return g
}

// SphereGeometry builds a UV sphere of radius 1 centered on the origin.
func SphereGeometry(stacks, slices int) Geometry {
	return latitudeBand(stacks, slices, -math.Pi/2, math.Pi/2)
}

// HalfSphereGeometry builds the upper (y >= 0) dome of a unit sphere.
// The dome is open at the equator.
func HalfSphereGeometry(stacks, slices int) Geometry {
	return latitudeBand(stacks, slices, 0, math.Pi/2)
}

// latitudeBand builds the portion of a unit sphere between two latitudes.
func latitudeBand(stacks, slices int, phiMin, phiMax float64) Geometry {
	var g Geometry

	for s := 0; s <= stacks; s++ {
		phi := phiMin + (phiMax-phiMin)*float64(s)/float64(stacks)
		y := float32(math.Sin(phi))
		r := float32(math.Cos(phi))
		v := float32(phi/math.Pi + 0.5)

		for i := 0; i <= slices; i++ {
			theta := 2 * math.Pi * float64(i) / float64(slices)
			x := r * float32(math.Cos(theta))
			z := r * float32(math.Sin(theta))
			u := float32(i) / float32(slices)

			// position doubles as the normal on a unit sphere
			g.appendVertex(x, y, z, x, y, z, u, v)
		}
	}

	cols := uint32(slices + 1)
	for s := 0; s < stacks; s++ {
		for i := 0; i < slices; i++ {
			a := uint32(s)*cols + uint32(i)
			b := a + 1
			c := a + cols
			d := c + 1
			g.Indices = append(g.Indices, a, d, b, a, c, d)
		}
	}

	return g
}
