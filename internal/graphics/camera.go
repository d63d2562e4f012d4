package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the shared perspective projection. The viewport is fixed
// for the lifetime of the run; the projection never needs recomputing.
type Camera struct {
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		NearPlane:   0.1,
		FarPlane:    100.0,
	}
}

// ProjectionMatrix builds the perspective transform for the given vertical
// field of view in degrees.
func (c *Camera) ProjectionMatrix(fovDegrees float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), c.AspectRatio, c.NearPlane, c.FarPlane)
}
