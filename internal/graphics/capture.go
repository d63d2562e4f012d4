package graphics

import (
	"bytes"
	"fmt"
	"image"

	"github.com/HugoSmits86/nativewebp"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// CaptureFrame reads the rendered frame back from the framebuffer. GL rows
// come out bottom-up, so the result is flipped into image order. Must run
// on the render thread, after drawing and before the buffer swap.
func CaptureFrame(width, height int) *image.RGBA {
	pix := make([]uint8, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowLen := width * 4
	for y := 0; y < height; y++ {
		src := pix[(height-1-y)*rowLen : (height-y)*rowLen]
		copy(img.Pix[y*img.Stride:y*img.Stride+rowLen], src)
	}
	return img
}

// EncodeWebP encodes a captured frame as lossless WebP.
func EncodeWebP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, img, nil); err != nil {
		return nil, fmt.Errorf("WebP encode: %v", err)
	}
	return buf.Bytes(), nil
}
