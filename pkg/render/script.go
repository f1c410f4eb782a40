package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SurfaceKind selects which shader state setter runs before a draw.
type SurfaceKind int

const (
	// SurfaceTexture resolves a texture tag and UV tiling.
	SurfaceTexture SurfaceKind = iota
	// SurfaceMaterial resolves a material tag.
	SurfaceMaterial
	// SurfaceColor uploads a flat RGBA color.
	SurfaceColor
)

// Surface is the appearance half of a draw item.
type Surface struct {
	Kind    SurfaceKind
	Tag     string
	UVScale mgl32.Vec2
	Color   mgl32.Vec4
}

// Textured builds a texture surface with the given UV tiling.
func Textured(tag string, u, v float32) Surface {
	return Surface{Kind: SurfaceTexture, Tag: tag, UVScale: mgl32.Vec2{u, v}}
}

// Shaded builds a material surface.
func Shaded(tag string) Surface {
	return Surface{Kind: SurfaceMaterial, Tag: tag}
}

// Tinted builds a flat-color surface.
func Tinted(r, g, b, a float32) Surface {
	return Surface{Kind: SurfaceColor, Color: mgl32.Vec4{r, g, b, a}}
}

// DrawItem is one entry of the scene script: which primitive to draw,
// where, and with what surface. Rotation is in degrees per axis, applied
// X then Y then Z.
type DrawItem struct {
	Mesh        MeshKind
	Scale       mgl32.Vec3
	RotationDeg mgl32.Vec3
	Position    mgl32.Vec3
	Surface     Surface
}

// TextureAsset pairs an image file with its registry tag.
type TextureAsset struct {
	File string
	Tag  string
}

// sceneTextures lists the image assets of the still life, in slot order.
func sceneTextures() []TextureAsset {
	return []TextureAsset{
		{"floor_tile.jpg", "floorTile"},
		{"desk_wood.jpg", "deskWood"},
		{"desk_metal.jpg", "deskBlotter"},
		{"flower_stem.png", "stem"},
		{"clay_vase.png", "clay"},
		{"red_petal.png", "red_petal"},
		{"blue_petal.png", "blue_petal"},
		{"pc_desktop.png", "pc_desktop"},
		{"pc_plastic.png", "pc_plastic"},
		{"knife_handle.jpg", "knife_handle"},
		{"stainless_end.jpg", "stainless"},
		{"bottle_holder.png", "bottle_holder"},
		{"white_paint.png", "white_paint"},
		{"white_paint_2.png", "white_accent"},
		{"book_pages.png", "book_pages"},
	}
}

// sceneMaterials lists the material definitions of the still life. The
// "default" material is the lighting base for textured surfaces: no
// ambient contribution, full diffuse, a touch of specular.
func sceneMaterials() []Material {
	return []Material{
		{
			Tag:             "default",
			AmbientColor:    mgl32.Vec3{1, 1, 1},
			AmbientStrength: 0,
			DiffuseColor:    mgl32.Vec3{1, 1, 1},
			SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess:       16,
		},
		{
			// Dark purple glass reflecting the wine within
			Tag:             "wineBottle",
			AmbientColor:    mgl32.Vec3{0.2, 0.005, 0.2},
			AmbientStrength: 0.15,
			DiffuseColor:    mgl32.Vec3{0.1, 0.05, 0.1},
			SpecularColor:   mgl32.Vec3{0.5, 0.5, 0.5},
			Shininess:       180,
		},
		{
			Tag:             "royalBlueLeather",
			AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.4},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{0.1, 0.1, 0.4},
			SpecularColor:   mgl32.Vec3{0.7, 0.7, 1},
			Shininess:       64,
		},
		{
			Tag:             "redLeather",
			AmbientColor:    mgl32.Vec3{0.1, 0.2, 0.2},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{0.5, 0.05, 0.05},
			SpecularColor:   mgl32.Vec3{1, 0.05, 0.05},
			Shininess:       64,
		},
		{
			Tag:             "coffeeLeather",
			AmbientColor:    mgl32.Vec3{0.1, 0.05, 0.025},
			AmbientStrength: 0.3,
			DiffuseColor:    mgl32.Vec3{0.4, 0.2, 0.1},
			SpecularColor:   mgl32.Vec3{0.6, 0.4, 0.3},
			Shininess:       64,
		},
	}
}

// sceneLights returns the two fixed light sources: a soft white fill and a
// faint warm accent, both meant to read as indirect sunlight.
func sceneLights() []LightSource {
	return []LightSource{
		{
			Position:          mgl32.Vec3{20, 30, 3},
			AmbientColor:      mgl32.Vec3{0.1, 0.1, 0.1},
			DiffuseColor:      mgl32.Vec3{0.3, 0.3, 0.3},
			SpecularColor:     mgl32.Vec3{0, 0, 0},
			FocalStrength:     32,
			SpecularIntensity: 0,
		},
		{
			Position:          mgl32.Vec3{50, 0, 20},
			AmbientColor:      mgl32.Vec3{0.1, 0.08, 0.04},
			DiffuseColor:      mgl32.Vec3{0.9, 0.75, 0.4},
			SpecularColor:     mgl32.Vec3{0.8, 0.7, 0.5},
			FocalStrength:     1,
			SpecularIntensity: 0,
		},
	}
}

// deskScene is the still-life script: a desk against a wall carrying a
// monitor, a vase of flowers, a wine bottle on its stand and three stacked
// books. Positions are in world units; the floor plane is at y=0.
func deskScene() []DrawItem {
	return []DrawItem{
		// Tiled floor
		{
			Mesh:     MeshPlane,
			Scale:    mgl32.Vec3{20, 1, 10},
			Position: mgl32.Vec3{0, 0, 0},
			Surface:  Textured("floorTile", 4, 4),
		},
		// Desk body
		{
			Mesh:     MeshBox,
			Scale:    mgl32.Vec3{20, 8, -1.5},
			Position: mgl32.Vec3{0, -0.5, 0},
			Surface:  Textured("deskWood", 1, 1),
		},
		// Ink blotter on the desktop
		{
			Mesh:     MeshPlane,
			Scale:    mgl32.Vec3{9.5, 3, 0.62},
			Position: mgl32.Vec3{0, 3.54, 0},
			Surface:  Textured("deskBlotter", 6, 1),
		},
		// Clay vase, flipped tapered cylinder
		{
			Mesh:        MeshTaperedCylinder,
			Scale:       mgl32.Vec3{0.7, 0.7, 0.5},
			RotationDeg: mgl32.Vec3{180, 0, 0},
			Position:    mgl32.Vec3{-6, 4.25, -0.25},
			Surface:     Textured("clay", 5, 5),
		},
		// Two flower stems leaning out of the vase
		{
			Mesh:        MeshCylinder,
			Scale:       mgl32.Vec3{0.03, 2.5, 0.03},
			RotationDeg: mgl32.Vec3{5, 0, 20},
			Position:    mgl32.Vec3{-6.4, 4.25, -0.1},
			Surface:     Textured("stem", 1, 1),
		},
		{
			Mesh:        MeshCylinder,
			Scale:       mgl32.Vec3{0.03, 2.5, 0.03},
			RotationDeg: mgl32.Vec3{-5, 0, -20},
			Position:    mgl32.Vec3{-5.5, 4.25, -0.1},
			Surface:     Textured("stem", 1, 1),
		},
		// Flower heads
		{
			Mesh:        MeshTaperedCylinder,
			Scale:       mgl32.Vec3{0.4, 0.4, 0.4},
			RotationDeg: mgl32.Vec3{-160, 0, -40},
			Position:    mgl32.Vec3{-7.5, 6.8, 0.18},
			Surface:     Textured("red_petal", 1, 1),
		},
		{
			Mesh:        MeshTaperedCylinder,
			Scale:       mgl32.Vec3{0.4, 0.4, 0.4},
			RotationDeg: mgl32.Vec3{150, 60, 40},
			Position:    mgl32.Vec3{-4.55, 6.8, -0.3},
			Surface:     Textured("blue_petal", 1, 1),
		},
		// Monitor: pyramid base and tilted screen plane
		{
			Mesh:     MeshPyramid4,
			Scale:    mgl32.Vec3{1, 1, 1},
			Position: mgl32.Vec3{0, 4.05, -0.29},
			Surface:  Textured("pc_plastic", 1, 1),
		},
		{
			Mesh:        MeshPlane,
			Scale:       mgl32.Vec3{2, 1, 1},
			RotationDeg: mgl32.Vec3{70, 0, 0},
			Position:    mgl32.Vec3{0, 5, -0.29},
			Surface:     Textured("pc_desktop", 1, 1),
		},
		// Pull-out drawer under the desk with two handles
		{
			Mesh:     MeshBox,
			Scale:    mgl32.Vec3{10, 4, 1},
			Position: mgl32.Vec3{0, 0, 0.5},
			Surface:  Textured("knife_handle", 1, 1),
		},
		{
			Mesh:        MeshCylinder,
			Scale:       mgl32.Vec3{0.1, 2, 0.1},
			RotationDeg: mgl32.Vec3{0, 0, 90},
			Position:    mgl32.Vec3{-2, 1, 1.1},
			Surface:     Textured("stainless", 1, 1),
		},
		{
			Mesh:        MeshCylinder,
			Scale:       mgl32.Vec3{0.1, 2, 0.1},
			RotationDeg: mgl32.Vec3{0, 0, 90},
			Position:    mgl32.Vec3{4, 1, 1.1},
			Surface:     Textured("stainless", 1, 1),
		},
		// Back wall
		{
			Mesh:        MeshPlane,
			Scale:       mgl32.Vec3{20, 100, 10},
			RotationDeg: mgl32.Vec3{90, 0, 0},
			Position:    mgl32.Vec3{0, 10, -2},
			Surface:     Textured("white_paint", 1, 1),
		},
		// Rectangular molding on the wall: top, bottom, two sides
		{
			Mesh:        MeshCylinder,
			Scale:       mgl32.Vec3{0.3, 17, 0.3},
			RotationDeg: mgl32.Vec3{0, 0, 90},
			Position:    mgl32.Vec3{8, 13, -1.8},
			Surface:     Textured("white_accent", 1, 1),
		},
		{
			Mesh:        MeshCylinder,
			Scale:       mgl32.Vec3{0.3, 17, 0.3},
			RotationDeg: mgl32.Vec3{0, 0, 90},
			Position:    mgl32.Vec3{8, 8, -1.8},
			Surface:     Textured("white_accent", 1, 1),
		},
		{
			Mesh:     MeshCylinder,
			Scale:    mgl32.Vec3{0.3, 5, 0.3},
			Position: mgl32.Vec3{-9, 8, -1.8},
			Surface:  Textured("white_accent", 1, 1),
		},
		{
			Mesh:     MeshCylinder,
			Scale:    mgl32.Vec3{0.3, 5, 0.3},
			Position: mgl32.Vec3{8, 8, -1.8},
			Surface:  Textured("white_accent", 1, 1),
		},
		// Wine bottle stand
		{
			Mesh:     MeshBox,
			Scale:    mgl32.Vec3{0.2, 0.7, 1},
			Position: mgl32.Vec3{5, 3.9, 0},
			Surface:  Textured("bottle_holder", 1, 1),
		},
		// Wine bottle resting on the stand: body, shoulder, neck
		{
			Mesh:        MeshCylinder,
			Scale:       mgl32.Vec3{0.3, 1.8, 0.3},
			RotationDeg: mgl32.Vec3{0, 0, -70},
			Position:    mgl32.Vec3{3.8, 3.8, 0},
			Surface:     Shaded("wineBottle"),
		},
		{
			Mesh:        MeshHalfSphere,
			Scale:       mgl32.Vec3{0.3, 0.3, 0.3},
			RotationDeg: mgl32.Vec3{0, 0, -70},
			Position:    mgl32.Vec3{5.45, 4.4, 0},
			Surface:     Shaded("wineBottle"),
		},
		{
			Mesh:        MeshCylinder,
			Scale:       mgl32.Vec3{0.15, 0.8, 0.15},
			RotationDeg: mgl32.Vec3{0, 0, -70},
			Position:    mgl32.Vec3{5.5, 4.45, 0},
			Surface:     Shaded("wineBottle"),
		},
		// Bottom book: coffee-brown leather covers, page block, spine
		{
			Mesh:     MeshBox,
			Scale:    mgl32.Vec3{1, 0.05, 1},
			Position: mgl32.Vec3{9, 3.57, 0},
			Surface:  Shaded("coffeeLeather"),
		},
		{
			Mesh:     MeshBox,
			Scale:    mgl32.Vec3{0.95, 0.25, 0.8},
			Position: mgl32.Vec3{9, 3.7, 0},
			Surface:  Textured("book_pages", 1, 1),
		},
		{
			Mesh:     MeshBox,
			Scale:    mgl32.Vec3{1, 0.05, 1},
			Position: mgl32.Vec3{9, 3.85, 0},
			Surface:  Shaded("coffeeLeather"),
		},
		{
			Mesh:     MeshBox,
			Scale:    mgl32.Vec3{0.05, 0.28, 1},
			Position: mgl32.Vec3{8.5, 3.71, 0},
			Surface:  Shaded("coffeeLeather"),
		},
		// Middle book: red leather, rotated on the stack
		{
			Mesh:        MeshBox,
			Scale:       mgl32.Vec3{1, 0.05, 1},
			RotationDeg: mgl32.Vec3{0, -30, 0},
			Position:    mgl32.Vec3{9, 3.9, 0},
			Surface:     Shaded("redLeather"),
		},
		{
			Mesh:        MeshBox,
			Scale:       mgl32.Vec3{0.95, 0.25, 0.8},
			RotationDeg: mgl32.Vec3{0, -30, 0},
			Position:    mgl32.Vec3{9, 4, 0},
			Surface:     Textured("book_pages", 1, 1),
		},
		{
			Mesh:        MeshBox,
			Scale:       mgl32.Vec3{1, 0.05, 1},
			RotationDeg: mgl32.Vec3{0, -30, 0},
			Position:    mgl32.Vec3{9, 4.15, 0},
			Surface:     Shaded("redLeather"),
		},
		{
			Mesh:        MeshBox,
			Scale:       mgl32.Vec3{0.05, 0.28, 1},
			RotationDeg: mgl32.Vec3{0, -30, 0},
			Position:    mgl32.Vec3{8.56, 4.03, -0.25},
			Surface:     Shaded("redLeather"),
		},
		// Top book: royal blue leather
		{
			Mesh:     MeshBox,
			Scale:    mgl32.Vec3{1, 0.05, 1},
			Position: mgl32.Vec3{9, 4.2, 0},
			Surface:  Shaded("royalBlueLeather"),
		},
		{
			Mesh:     MeshBox,
			Scale:    mgl32.Vec3{0.95, 0.25, 0.8},
			Position: mgl32.Vec3{9, 4.3, 0},
			Surface:  Textured("book_pages", 1, 1),
		},
		{
			Mesh:     MeshBox,
			Scale:    mgl32.Vec3{1, 0.05, 1},
			Position: mgl32.Vec3{9, 4.45, 0},
			Surface:  Shaded("royalBlueLeather"),
		},
		{
			Mesh:     MeshBox,
			Scale:    mgl32.Vec3{0.05, 0.28, 1},
			Position: mgl32.Vec3{8.5, 4.33, 0},
			Surface:  Shaded("royalBlueLeather"),
		},
	}
}
