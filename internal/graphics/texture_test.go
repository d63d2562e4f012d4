package graphics

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/HugoSmits86/nativewebp"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 120), B: 200, A: 255})
		}
	}
	return img
}

func TestDecodeImagePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earth.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if err := png.Encode(f, testImage()); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	rgba, err := DecodeImage(path)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if rgba.Bounds().Dx() != 4 || rgba.Bounds().Dy() != 2 {
		t.Errorf("Expected 4x2 image, got %v", rgba.Bounds())
	}
}

func TestDecodeImageWebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moon.webp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if err := nativewebp.Encode(f, testImage(), nil); err != nil {
		t.Fatalf("Failed to encode WebP: %v", err)
	}
	f.Close()

	rgba, err := DecodeImage(path)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if rgba.Bounds().Dx() != 4 || rgba.Bounds().Dy() != 2 {
		t.Errorf("Expected 4x2 image, got %v", rgba.Bounds())
	}
}

func TestDecodeImageMissingFile(t *testing.T) {
	if _, err := DecodeImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Expected error for missing texture file")
	}
}

func TestDecodeImageGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	if _, err := DecodeImage(path); err == nil {
		t.Error("Expected error for undecodable data")
	}
}
