package render

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// glTextureBackend implements TextureBackend against the active OpenGL
// context. It must only be used from the render thread.
type glTextureBackend struct{}

func (glTextureBackend) Upload(img *image.RGBA) (uint32, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if img.Stride != width*4 {
		return 0, fmt.Errorf("unsupported image stride %d", img.Stride)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	// Wrapping and filtering parameters
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id, nil
}

func (glTextureBackend) Bind(unit int32, id uint32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func (glTextureBackend) Delete(id uint32) {
	gl.DeleteTextures(1, &id)
}
