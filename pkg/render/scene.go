package render

import (
	"errors"
	"fmt"
	"path/filepath"

	"openglhelper"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Uniform names form a fixed protocol with the scene shader.
const (
	uniModel         = "model"
	uniObjectColor   = "objectColor"
	uniObjectTexture = "objectTexture"
	uniUseTexture    = "bUseTexture"
	uniUseLighting   = "bUseLighting"
	uniUVScale       = "UVscale"
)

// UniformSetter is the shader surface the scene manager drives: named
// uniform writes on the active program. openglhelper.Shader implements it;
// tests substitute a recorder.
type UniformSetter interface {
	SetMat4(name string, mat mgl32.Mat4)
	SetVec2(name string, vec mgl32.Vec2)
	SetVec3(name string, vec mgl32.Vec3)
	SetVec4(name string, vec mgl32.Vec4)
	SetFloat(name string, value float32)
	SetInt(name string, value int32)
	SetBool(name string, value bool)
	SetSampler2D(name string, slot int32)
}

// MeshKind names one of the primitive meshes the scene can draw.
type MeshKind int

const (
	MeshPlane MeshKind = iota
	MeshBox
	MeshCylinder
	MeshTaperedCylinder
	MeshPyramid4
	MeshSphere
	MeshHalfSphere
)

// sceneMesh is the draw surface of a loaded primitive.
type sceneMesh interface {
	Draw()
	Delete()
}

// LightSource describes one of the fixed scene lights. Lights have no
// persistent state beyond the uniforms they are pushed into.
type LightSource struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// ModelMatrix composes a model transform from scale, per-axis rotation in
// degrees and translation. The multiplication order is a contract:
// translation * rotationX * rotationY * rotationZ * scale.
func ModelMatrix(scale mgl32.Vec3, xRotDeg, yRotDeg, zRotDeg float32, position mgl32.Vec3) mgl32.Mat4 {
	translation := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rotationX := mgl32.HomogRotate3DX(mgl32.DegToRad(xRotDeg))
	rotationY := mgl32.HomogRotate3DY(mgl32.DegToRad(yRotDeg))
	rotationZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(zRotDeg))
	scaling := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())

	return translation.Mul4(rotationX).Mul4(rotationY).Mul4(rotationZ).Mul4(scaling)
}

// SceneManager owns the still-life content: the texture and material
// registries, the primitive meshes, and the per-draw shader state pipeline
// that feeds transforms, materials and textures to the shader before each
// draw call.
type SceneManager struct {
	shader    UniformSetter
	textures  *TextureRegistry
	materials *MaterialRegistry
	log       *zap.Logger

	meshes map[MeshKind]sceneMesh
	script []DrawItem
}

// NewSceneManager creates a scene manager driving the given shader.
func NewSceneManager(shader UniformSetter, textures *TextureRegistry, materials *MaterialRegistry, log *zap.Logger) *SceneManager {
	return &SceneManager{
		shader:    shader,
		textures:  textures,
		materials: materials,
		log:       log,
		meshes:    make(map[MeshKind]sceneMesh),
	}
}

// Textures exposes the texture registry.
func (s *SceneManager) Textures() *TextureRegistry {
	return s.textures
}

// Materials exposes the material registry.
func (s *SceneManager) Materials() *MaterialRegistry {
	return s.materials
}

// PrepareScene loads the primitive meshes, the texture set and the material
// definitions, and pushes the scene lighting. A texture that fails to
// decode is logged and skipped so the scene still renders, just with the
// affected surfaces untextured; running out of texture slots aborts.
func (s *SceneManager) PrepareScene(assetsDir string) error {
	// One instance of each primitive mesh serves every draw of that shape.
	s.meshes[MeshPlane] = openglhelper.NewPlane()
	s.meshes[MeshBox] = openglhelper.NewBox()
	s.meshes[MeshCylinder] = openglhelper.NewCylinder()
	s.meshes[MeshTaperedCylinder] = openglhelper.NewTaperedCylinder()
	s.meshes[MeshPyramid4] = openglhelper.NewPyramid4()
	s.meshes[MeshSphere] = openglhelper.NewSphere()
	s.meshes[MeshHalfSphere] = openglhelper.NewHalfSphere()

	for _, asset := range sceneTextures() {
		err := s.textures.Load(filepath.Join(assetsDir, asset.File), asset.Tag)
		if errors.Is(err, ErrRegistryFull) {
			return err
		}
		// Other load failures are already logged by the registry; the
		// affected draws fall back to an unresolved texture slot.
	}

	s.DefineObjectMaterials()
	s.SetupSceneLights()

	s.script = deskScene()

	return nil
}

// DefineObjectMaterials registers the material set used by the scene.
func (s *SceneManager) DefineObjectMaterials() {
	for _, m := range sceneMaterials() {
		s.materials.Define(m)
	}
}

// SetupSceneLights turns on lighting and pushes the two fixed light
// sources into the shader.
func (s *SceneManager) SetupSceneLights() {
	s.shader.SetBool(uniUseLighting, true)

	for i, light := range sceneLights() {
		prefix := fmt.Sprintf("lightSources[%d]", i)
		s.shader.SetVec3(prefix+".position", light.Position)
		s.shader.SetVec3(prefix+".ambientColor", light.AmbientColor)
		s.shader.SetVec3(prefix+".diffuseColor", light.DiffuseColor)
		s.shader.SetVec3(prefix+".specularColor", light.SpecularColor)
		s.shader.SetFloat(prefix+".focalStrength", light.FocalStrength)
		s.shader.SetFloat(prefix+".specularIntensity", light.SpecularIntensity)
	}
}

// SetTransformations composes the model matrix from the given scale,
// rotation (degrees, applied X then Y then Z) and position, and uploads it
// for the next draw call.
func (s *SceneManager) SetTransformations(scale mgl32.Vec3, xRotDeg, yRotDeg, zRotDeg float32, position mgl32.Vec3) {
	s.shader.SetMat4(uniModel, ModelMatrix(scale, xRotDeg, yRotDeg, zRotDeg, position))
}

// SetShaderColor disables texturing for the next draw and uploads a flat
// RGBA color.
func (s *SceneManager) SetShaderColor(red, green, blue, alpha float32) {
	s.shader.SetBool(uniUseTexture, false)
	s.shader.SetVec4(uniObjectColor, mgl32.Vec4{red, green, blue, alpha})
}

// SetShaderTexture enables texturing and lighting for the next draw and
// resolves the tag to a texture unit slot. Textured surfaces get the
// "default" material as a lighting base so they are not washed out. An
// unresolved tag uploads the -1 sentinel and the draw proceeds untextured.
func (s *SceneManager) SetShaderTexture(textureTag string) {
	s.shader.SetBool(uniUseTexture, true)
	s.shader.SetBool(uniUseLighting, true)

	if def, ok := s.materials.Find("default"); ok {
		s.setMaterialUniforms(def)
	}

	slot := s.textures.FindSlot(textureTag)
	if slot < 0 {
		s.log.Debug("texture tag not found", zap.String("tag", textureTag))
	}
	s.shader.SetSampler2D(uniObjectTexture, slot)
}

// SetShaderMaterial disables texturing, enables lighting and uploads the
// material registered under the tag. On a miss the material uniforms keep
// whatever the previous draw set; callers own that sticky-state contract.
func (s *SceneManager) SetShaderMaterial(materialTag string) {
	s.shader.SetBool(uniUseTexture, false)
	s.shader.SetBool(uniUseLighting, true)

	material, ok := s.materials.Find(materialTag)
	if !ok {
		s.log.Debug("material tag not found", zap.String("tag", materialTag))
		return
	}
	s.setMaterialUniforms(material)
}

func (s *SceneManager) setMaterialUniforms(m Material) {
	s.shader.SetVec3("material.ambientColor", m.AmbientColor)
	s.shader.SetFloat("material.ambientStrength", m.AmbientStrength)
	s.shader.SetVec3("material.diffuseColor", m.DiffuseColor)
	s.shader.SetVec3("material.specularColor", m.SpecularColor)
	s.shader.SetFloat("material.shininess", m.Shininess)
}

// SetTextureUVScale uploads the UV tiling factors applied by the fragment
// stage.
func (s *SceneManager) SetTextureUVScale(u, v float32) {
	s.shader.SetVec2(uniUVScale, mgl32.Vec2{u, v})
}

// RenderScene iterates the declarative scene script, pushing each item's
// transform and surface state and issuing its draw. Exactly one surface
// setter runs before each draw; the setters share enable flags, so the
// last write wins.
func (s *SceneManager) RenderScene() {
	for _, item := range s.script {
		s.drawItem(item)
	}
}

func (s *SceneManager) drawItem(item DrawItem) {
	s.SetTransformations(item.Scale, item.RotationDeg.X(), item.RotationDeg.Y(), item.RotationDeg.Z(), item.Position)

	switch item.Surface.Kind {
	case SurfaceTexture:
		s.SetShaderTexture(item.Surface.Tag)
		s.SetTextureUVScale(item.Surface.UVScale.X(), item.Surface.UVScale.Y())
	case SurfaceMaterial:
		s.SetShaderMaterial(item.Surface.Tag)
	case SurfaceColor:
		s.SetShaderColor(item.Surface.Color.X(), item.Surface.Color.Y(), item.Surface.Color.Z(), item.Surface.Color.W())
	}

	if mesh, ok := s.meshes[item.Mesh]; ok {
		mesh.Draw()
	}
}

// Destroy releases the GPU resources owned by the scene: the primitive
// meshes and every registered texture.
func (s *SceneManager) Destroy() {
	for _, mesh := range s.meshes {
		mesh.Delete()
	}
	s.meshes = make(map[MeshKind]sceneMesh)
	s.textures.DestroyAll()
}
