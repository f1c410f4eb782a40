package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBackend records uploads, binds and deletes without touching the GPU.
type fakeBackend struct {
	nextID   uint32
	uploaded []*image.RGBA
	bound    map[int32]uint32
	deleted  []uint32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{bound: make(map[int32]uint32)}
}

func (b *fakeBackend) Upload(img *image.RGBA) (uint32, error) {
	b.nextID++
	b.uploaded = append(b.uploaded, img)
	return b.nextID, nil
}

func (b *fakeBackend) Bind(unit int32, id uint32) {
	b.bound[unit] = id
}

func (b *fakeBackend) Delete(id uint32) {
	b.deleted = append(b.deleted, id)
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func writeTestTexture(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	writePNG(t, path, img)
}

func TestTextureRegistry_SlotIsLoadOrder(t *testing.T) {
	dir := t.TempDir()
	backend := newFakeBackend()
	r := NewTextureRegistry(backend, zap.NewNop())

	tags := []string{"floorTile", "deskWood", "clay"}
	for _, tag := range tags {
		path := filepath.Join(dir, tag+".png")
		writeTestTexture(t, path)
		require.NoError(t, r.Load(path, tag))
	}

	require.Equal(t, 3, r.Len())
	for i, tag := range tags {
		assert.Equal(t, int32(i), r.FindSlot(tag))
		assert.NotEqual(t, int32(-1), r.FindID(tag))
	}

	assert.Equal(t, int32(-1), r.FindSlot("missing"))
	assert.Equal(t, int32(-1), r.FindID("missing"))
}

func TestTextureRegistry_LoadMissingFile(t *testing.T) {
	r := NewTextureRegistry(newFakeBackend(), zap.NewNop())

	err := r.Load(filepath.Join(t.TempDir(), "nope.png"), "nope")
	assert.Error(t, err)
	assert.Equal(t, 0, r.Len())
}

func TestTextureRegistry_RejectsGrayscale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gray.png")
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	writePNG(t, path, gray)

	r := NewTextureRegistry(newFakeBackend(), zap.NewNop())
	err := r.Load(path, "gray")
	assert.ErrorContains(t, err, "channels")
	assert.Equal(t, 0, r.Len())
}

func TestTextureRegistry_CapacityIsHardError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.png")
	writeTestTexture(t, path)

	r := NewTextureRegistry(newFakeBackend(), zap.NewNop())
	for i := 0; i < MaxTextureSlots; i++ {
		require.NoError(t, r.Load(path, fmt.Sprintf("tex%d", i)))
	}
	require.Equal(t, MaxTextureSlots, r.Len())

	err := r.Load(path, "overflow")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRegistryFull))
	assert.Equal(t, MaxTextureSlots, r.Len())
}

func TestTextureRegistry_DuplicateTagShadows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.png")
	writeTestTexture(t, path)

	r := NewTextureRegistry(newFakeBackend(), zap.NewNop())
	require.NoError(t, r.Load(path, "stem"))
	require.NoError(t, r.Load(path, "stem"))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, int32(0), r.FindSlot("stem"))
}

func TestTextureRegistry_FlipsVertically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "twotone.png")

	// Red top row, blue bottom row. After the flip the upload must carry
	// blue in the top row.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})
	writePNG(t, path, img)

	backend := newFakeBackend()
	r := NewTextureRegistry(backend, zap.NewNop())
	require.NoError(t, r.Load(path, "twotone"))

	require.Len(t, backend.uploaded, 1)
	top := backend.uploaded[0].RGBAAt(0, 0)
	assert.Equal(t, uint8(0), top.R)
	assert.Equal(t, uint8(255), top.B)
}

func TestTextureRegistry_BindAll(t *testing.T) {
	dir := t.TempDir()
	backend := newFakeBackend()
	r := NewTextureRegistry(backend, zap.NewNop())

	for i := 0; i < 3; i++ {
		path := filepath.Join(dir, fmt.Sprintf("tex%d.png", i))
		writeTestTexture(t, path)
		require.NoError(t, r.Load(path, fmt.Sprintf("tex%d", i)))
	}

	r.BindAll()

	require.Len(t, backend.bound, 3)
	for i := int32(0); i < 3; i++ {
		assert.Equal(t, uint32(r.FindID(fmt.Sprintf("tex%d", i))), backend.bound[i])
	}
}

func TestTextureRegistry_DestroyAll(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.png")
	writeTestTexture(t, path)

	backend := newFakeBackend()
	r := NewTextureRegistry(backend, zap.NewNop())
	require.NoError(t, r.Load(path, "a"))
	require.NoError(t, r.Load(path, "b"))

	ids := []uint32{uint32(r.FindID("a")), uint32(r.FindID("b"))}
	r.DestroyAll()

	assert.Equal(t, 0, r.Len())
	assert.Equal(t, int32(-1), r.FindSlot("a"))
	assert.ElementsMatch(t, ids, backend.deleted)
}

func TestColorChannels(t *testing.T) {
	tests := []struct {
		name     string
		img      image.Image
		channels int
		ok       bool
	}{
		{"rgba", image.NewRGBA(image.Rect(0, 0, 1, 1)), 4, true},
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 1, 1)), 4, true},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 1, 1), image.YCbCrSubsampleRatio444), 3, true},
		{"gray", image.NewGray(image.Rect(0, 0, 1, 1)), 1, false},
		{"alpha", image.NewAlpha(image.Rect(0, 0, 1, 1)), 1, false},
		{"cmyk", image.NewCMYK(image.Rect(0, 0, 1, 1)), 4, false},
		{"paletted", image.NewPaletted(image.Rect(0, 0, 1, 1), nil), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			channels, ok := colorChannels(tc.img)
			assert.Equal(t, tc.channels, channels)
			assert.Equal(t, tc.ok, ok)
		})
	}
}
