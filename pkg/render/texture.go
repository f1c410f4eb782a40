package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"go.uber.org/zap"
)

// ErrRegistryFull is returned by Load once all texture units are occupied.
var ErrRegistryFull = errors.New("texture registry full")

// TextureEntry associates a loaded GPU texture with its lookup tag. The
// entry's position in the registry is also its texture unit slot.
type TextureEntry struct {
	ID  uint32
	Tag string
}

// TextureBackend is the GPU side of the texture registry. The real backend
// talks to OpenGL; tests substitute a recorder.
type TextureBackend interface {
	// Upload creates a texture object from RGBA pixel data, generates
	// mipmaps and returns the texture handle.
	Upload(img *image.RGBA) (uint32, error)
	// Bind binds a texture to the given texture unit.
	Bind(unit int32, id uint32)
	// Delete releases a texture object.
	Delete(id uint32)
}

// TextureRegistry loads image files into GPU textures and answers tag
// lookups. The slot a texture occupies is its load order, so the registry
// caps out at MaxTextureSlots entries. Lookup is linear first-match:
// a duplicate tag shadows later entries, it does not replace them.
type TextureRegistry struct {
	backend TextureBackend
	log     *zap.Logger
	entries []TextureEntry
}

// NewTextureRegistry creates an empty registry on the given backend.
func NewTextureRegistry(backend TextureBackend, log *zap.Logger) *TextureRegistry {
	return &TextureRegistry{
		backend: backend,
		log:     log,
	}
}

// Load decodes an image file, flips it vertically so the image origin
// matches the renderer's UV convention, uploads it and registers it under
// the given tag. Only 3- and 4-channel images are accepted. Loading past
// capacity is a hard error.
func (r *TextureRegistry) Load(path, tag string) error {
	if len(r.entries) >= MaxTextureSlots {
		r.log.Error("texture registry full",
			zap.String("path", path),
			zap.String("tag", tag),
			zap.Int("capacity", MaxTextureSlots))
		return fmt.Errorf("loading %q: %w", path, ErrRegistryFull)
	}

	img, err := imgio.Open(path)
	if err != nil {
		r.log.Error("could not load image",
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("loading %q: %w", path, err)
	}

	channels, ok := colorChannels(img)
	if !ok {
		r.log.Error("unsupported channel count",
			zap.String("path", path),
			zap.Int("channels", channels))
		return fmt.Errorf("loading %q: image with %d channels not supported", path, channels)
	}

	// Image files store rows top-down, texture space runs bottom-up.
	flipped := transform.FlipV(img)

	id, err := r.backend.Upload(flipped)
	if err != nil {
		r.log.Error("could not upload texture",
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("uploading %q: %w", path, err)
	}

	r.entries = append(r.entries, TextureEntry{ID: id, Tag: tag})

	bounds := img.Bounds()
	r.log.Info("loaded texture",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
		zap.Int("channels", channels),
		zap.Int("slot", len(r.entries)-1))

	return nil
}

// colorChannels maps a decoded image to its channel count and reports
// whether the registry accepts it. Grayscale and paletted images are
// rejected rather than padded.
func colorChannels(img image.Image) (int, bool) {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.NYCbCrA:
		return 4, true
	case *image.YCbCr:
		return 3, true
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1, false
	case *image.CMYK:
		return 4, false
	default:
		return 0, false
	}
}

// BindAll binds every loaded texture to its positional texture unit
// (entry i to unit i). Call once per frame before issuing textured draws.
func (r *TextureRegistry) BindAll() {
	for i, entry := range r.entries {
		r.backend.Bind(int32(i), entry.ID)
	}
}

// FindID returns the texture handle registered under the tag, or -1 if the
// tag is unknown.
func (r *TextureRegistry) FindID(tag string) int32 {
	for _, entry := range r.entries {
		if entry.Tag == tag {
			return int32(entry.ID)
		}
	}
	return -1
}

// FindSlot returns the texture unit slot of the tag, or -1 if the tag is
// unknown. A -1 slot means "draw without texturing", not a valid handle.
func (r *TextureRegistry) FindSlot(tag string) int32 {
	for i, entry := range r.entries {
		if entry.Tag == tag {
			return int32(i)
		}
	}
	return -1
}

// Len returns the number of loaded textures.
func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

// DestroyAll releases every texture object and clears the registry.
func (r *TextureRegistry) DestroyAll() {
	for _, entry := range r.entries {
		r.backend.Delete(entry.ID)
	}
	r.entries = nil
}
