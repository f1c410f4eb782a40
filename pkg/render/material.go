package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material bundles the lighting properties of a surface. Materials are
// defined once during scene setup and immutable afterwards.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialRegistry is a small ordered list of named materials. Lookup is
// linear first-match, so redefining a tag shadows the later entry instead
// of replacing it.
type MaterialRegistry struct {
	materials []Material
}

// NewMaterialRegistry creates an empty registry.
func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

// Define appends a material to the registry. Duplicate tags are not
// rejected; the first definition wins on lookup.
func (r *MaterialRegistry) Define(m Material) {
	r.materials = append(r.materials, m)
}

// Find returns the material registered under the tag. The second return is
// false whenever the tag is not present, including on a non-empty registry.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len returns the number of defined materials.
func (r *MaterialRegistry) Len() int {
	return len(r.materials)
}
