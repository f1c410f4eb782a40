package render

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// uniformRecorder captures every uniform write, keyed by name. Last write
// wins, matching how a real shader program holds uniform state.
type uniformRecorder struct {
	mats     map[string]mgl32.Mat4
	vec2s    map[string]mgl32.Vec2
	vec3s    map[string]mgl32.Vec3
	vec4s    map[string]mgl32.Vec4
	floats   map[string]float32
	ints     map[string]int32
	bools    map[string]bool
	samplers map[string]int32
}

func newUniformRecorder() *uniformRecorder {
	return &uniformRecorder{
		mats:     make(map[string]mgl32.Mat4),
		vec2s:    make(map[string]mgl32.Vec2),
		vec3s:    make(map[string]mgl32.Vec3),
		vec4s:    make(map[string]mgl32.Vec4),
		floats:   make(map[string]float32),
		ints:     make(map[string]int32),
		bools:    make(map[string]bool),
		samplers: make(map[string]int32),
	}
}

func (u *uniformRecorder) SetMat4(name string, mat mgl32.Mat4) { u.mats[name] = mat }
func (u *uniformRecorder) SetVec2(name string, vec mgl32.Vec2) { u.vec2s[name] = vec }
func (u *uniformRecorder) SetVec3(name string, vec mgl32.Vec3) { u.vec3s[name] = vec }
func (u *uniformRecorder) SetVec4(name string, vec mgl32.Vec4) { u.vec4s[name] = vec }
func (u *uniformRecorder) SetFloat(name string, value float32) { u.floats[name] = value }
func (u *uniformRecorder) SetInt(name string, value int32) { u.ints[name] = value }
func (u *uniformRecorder) SetBool(name string, value bool) { u.bools[name] = value }
func (u *uniformRecorder) SetSampler2D(name string, slot int32) { u.samplers[name] = slot }

// countingMesh stands in for a GPU mesh and counts draw calls.
type countingMesh struct {
	draws   int
	deletes int
}

func (m *countingMesh) Draw()   { m.draws++ }
func (m *countingMesh) Delete() { m.deletes++ }

func newTestScene(t *testing.T) (*SceneManager, *uniformRecorder, *fakeBackend) {
	t.Helper()
	rec := newUniformRecorder()
	backend := newFakeBackend()
	s := NewSceneManager(rec,
		NewTextureRegistry(backend, zap.NewNop()),
		NewMaterialRegistry(),
		zap.NewNop())
	return s, rec, backend
}

func TestModelMatrix_MatchesComposition(t *testing.T) {
	tests := []struct {
		name       string
		scale      mgl32.Vec3
		rx, ry, rz float32
		position   mgl32.Vec3
	}{
		{"identity", mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{}},
		{"scale and translate", mgl32.Vec3{2, 3, 4}, 0, 0, 0, mgl32.Vec3{1, -2, 5}},
		{"all rotations", mgl32.Vec3{1, 1, 1}, 30, 45, 60, mgl32.Vec3{}},
		{"full transform", mgl32.Vec3{0.7, 0.7, 0.5}, 180, 0, 0, mgl32.Vec3{-6, 4.25, -0.25}},
		{"negative angles", mgl32.Vec3{0.4, 0.4, 0.4}, -160, 0, -40, mgl32.Vec3{-7.5, 6.8, 0.18}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := mgl32.Translate3D(tc.position.X(), tc.position.Y(), tc.position.Z()).
				Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(tc.rx))).
				Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(tc.ry))).
				Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(tc.rz))).
				Mul4(mgl32.Scale3D(tc.scale.X(), tc.scale.Y(), tc.scale.Z()))

			got := ModelMatrix(tc.scale, tc.rx, tc.ry, tc.rz, tc.position)
			assert.True(t, got.ApproxEqualThreshold(want, 1e-5))
		})
	}
}

func TestModelMatrix_ProbePoints(t *testing.T) {
	// Scale then translate: a unit corner lands at position + scale.
	m := ModelMatrix(mgl32.Vec3{2, 2, 2}, 0, 0, 0, mgl32.Vec3{1, 0, 0})
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 3, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Y(), 1e-5)
	assert.InDelta(t, 0, p.Z(), 1e-5)

	// Rotation applies after scale: 90 degrees about Y sends +X to -Z.
	m = ModelMatrix(mgl32.Vec3{2, 1, 1}, 0, 90, 0, mgl32.Vec3{})
	p = m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, -2, p.Z(), 1e-5)
}

func TestSceneManager_SetTransformations(t *testing.T) {
	s, rec, _ := newTestScene(t)

	s.SetTransformations(mgl32.Vec3{1, 2, 3}, 10, 20, 30, mgl32.Vec3{4, 5, 6})

	want := ModelMatrix(mgl32.Vec3{1, 2, 3}, 10, 20, 30, mgl32.Vec3{4, 5, 6})
	got, ok := rec.mats[uniModel]
	require.True(t, ok)
	assert.True(t, got.ApproxEqualThreshold(want, 1e-6))
}

func TestSceneManager_SetShaderColor(t *testing.T) {
	s, rec, _ := newTestScene(t)

	s.SetShaderColor(0.2, 0.4, 0.6, 1)

	assert.False(t, rec.bools[uniUseTexture])
	assert.Equal(t, mgl32.Vec4{0.2, 0.4, 0.6, 1}, rec.vec4s[uniObjectColor])
}

func TestSceneManager_SetShaderTexture(t *testing.T) {
	s, rec, _ := newTestScene(t)
	s.DefineObjectMaterials()

	dir := t.TempDir()
	path := filepath.Join(dir, "clay.png")
	writeTestTexture(t, path)
	require.NoError(t, s.Textures().Load(path, "clay"))

	s.SetShaderTexture("clay")

	assert.True(t, rec.bools[uniUseTexture])
	assert.True(t, rec.bools[uniUseLighting])
	assert.Equal(t, int32(0), rec.samplers[uniObjectTexture])

	// Textured draws carry the default material as their lighting base.
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, rec.vec3s["material.diffuseColor"])
	assert.Equal(t, float32(16), rec.floats["material.shininess"])
}

func TestSceneManager_SetShaderTextureUnknownTag(t *testing.T) {
	s, rec, _ := newTestScene(t)

	s.SetShaderTexture("missing")

	// The draw still proceeds, just with the sentinel slot.
	assert.True(t, rec.bools[uniUseTexture])
	assert.Equal(t, int32(-1), rec.samplers[uniObjectTexture])
}

func TestSceneManager_SetShaderMaterial(t *testing.T) {
	s, rec, _ := newTestScene(t)
	s.DefineObjectMaterials()

	s.SetShaderMaterial("wineBottle")

	assert.False(t, rec.bools[uniUseTexture])
	assert.True(t, rec.bools[uniUseLighting])
	assert.Equal(t, mgl32.Vec3{0.2, 0.005, 0.2}, rec.vec3s["material.ambientColor"])
	assert.Equal(t, float32(0.15), rec.floats["material.ambientStrength"])
	assert.Equal(t, mgl32.Vec3{0.1, 0.05, 0.1}, rec.vec3s["material.diffuseColor"])
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, rec.vec3s["material.specularColor"])
	assert.Equal(t, float32(180), rec.floats["material.shininess"])
}

func TestSceneManager_SetShaderMaterialMissIsSticky(t *testing.T) {
	s, rec, _ := newTestScene(t)
	s.DefineObjectMaterials()

	s.SetShaderMaterial("redLeather")
	before := rec.vec3s["material.diffuseColor"]

	s.SetShaderMaterial("unobtainium")

	// A miss leaves the material uniforms from the previous draw in place.
	assert.Equal(t, before, rec.vec3s["material.diffuseColor"])
	assert.False(t, rec.bools[uniUseTexture])
	assert.True(t, rec.bools[uniUseLighting])
}

func TestSceneManager_SetTextureUVScale(t *testing.T) {
	s, rec, _ := newTestScene(t)

	s.SetTextureUVScale(4, 2)

	assert.Equal(t, mgl32.Vec2{4, 2}, rec.vec2s[uniUVScale])
}

func TestSceneManager_SetupSceneLights(t *testing.T) {
	s, rec, _ := newTestScene(t)

	s.SetupSceneLights()

	assert.True(t, rec.bools[uniUseLighting])
	assert.Equal(t, mgl32.Vec3{20, 30, 3}, rec.vec3s["lightSources[0].position"])
	assert.Equal(t, mgl32.Vec3{0.3, 0.3, 0.3}, rec.vec3s["lightSources[0].diffuseColor"])
	assert.Equal(t, float32(32), rec.floats["lightSources[0].focalStrength"])
	assert.Equal(t, mgl32.Vec3{50, 0, 20}, rec.vec3s["lightSources[1].position"])
	assert.Equal(t, mgl32.Vec3{0.9, 0.75, 0.4}, rec.vec3s["lightSources[1].diffuseColor"])
	assert.Equal(t, float32(0), rec.floats["lightSources[1].specularIntensity"])
}

func TestSceneManager_RenderSceneDrawsScript(t *testing.T) {
	s, rec, _ := newTestScene(t)
	s.DefineObjectMaterials()

	plane := &countingMesh{}
	box := &countingMesh{}
	s.meshes[MeshPlane] = plane
	s.meshes[MeshBox] = box

	s.script = []DrawItem{
		{
			Mesh:     MeshPlane,
			Scale:    mgl32.Vec3{20, 1, 10},
			Surface:  Textured("floorTile", 4, 4),
			Position: mgl32.Vec3{0, 0, 0},
		},
		{
			Mesh:    MeshBox,
			Scale:   mgl32.Vec3{1, 1, 1},
			Surface: Shaded("coffeeLeather"),
		},
		{
			Mesh:    MeshBox,
			Scale:   mgl32.Vec3{1, 1, 1},
			Surface: Tinted(1, 0, 0, 1),
		},
	}

	s.RenderScene()

	assert.Equal(t, 1, plane.draws)
	assert.Equal(t, 2, box.draws)

	// The last item was a flat color, so texturing ends up disabled and the
	// color uploaded.
	assert.False(t, rec.bools[uniUseTexture])
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, rec.vec4s[uniObjectColor])
	// The first item's UV tiling is still in place; nothing after it wrote
	// that uniform.
	assert.Equal(t, mgl32.Vec2{4, 4}, rec.vec2s[uniUVScale])
}

func TestSceneManager_RenderSceneSkipsUnloadedMesh(t *testing.T) {
	s, _, _ := newTestScene(t)
	s.script = []DrawItem{{Mesh: MeshSphere, Scale: mgl32.Vec3{1, 1, 1}, Surface: Tinted(1, 1, 1, 1)}}

	// No meshes loaded; rendering must not panic.
	s.RenderScene()
}

func TestSceneManager_Destroy(t *testing.T) {
	s, _, backend := newTestScene(t)

	mesh := &countingMesh{}
	s.meshes[MeshBox] = mesh

	dir := t.TempDir()
	path := filepath.Join(dir, "tex.png")
	writeTestTexture(t, path)
	require.NoError(t, s.Textures().Load(path, "tex"))
	id := uint32(s.Textures().FindID("tex"))

	s.Destroy()

	assert.Equal(t, 1, mesh.deletes)
	assert.Equal(t, 0, s.Textures().Len())
	assert.Contains(t, backend.deleted, id)
}

func TestDeskScene_ReferencesOnlyDefinedTags(t *testing.T) {
	materials := NewMaterialRegistry()
	for _, m := range sceneMaterials() {
		materials.Define(m)
	}

	textureTags := make(map[string]bool)
	for _, asset := range sceneTextures() {
		textureTags[asset.Tag] = true
	}

	for i, item := range deskScene() {
		switch item.Surface.Kind {
		case SurfaceTexture:
			assert.True(t, textureTags[item.Surface.Tag],
				"item %d references unknown texture %q", i, item.Surface.Tag)
		case SurfaceMaterial:
			_, ok := materials.Find(item.Surface.Tag)
			assert.True(t, ok, "item %d references unknown material %q", i, item.Surface.Tag)
		}
	}
}

func TestSceneTextures_FitInRegistry(t *testing.T) {
	assert.LessOrEqual(t, len(sceneTextures()), MaxTextureSlots)
}
