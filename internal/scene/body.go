package scene

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"planets/internal/config"
	"planets/internal/geometry"
)

// Body is one textured sphere in the scene: a mesh, a texture source and a
// static placement, plus the rotation angle that the animation tick
// advances. The angle is owned by the Body; nothing outside the frame tick
// mutates it.
type Body struct {
	Name        string
	Mesh        *geometry.Mesh
	TexturePath string

	FOV            float32 // degrees
	CameraDistance float32
	Translation    mgl32.Vec3
	Axis           mgl32.Vec3 // unit rotation axis
	Speed          float32    // radians per frame
	Angle          float32

	// GL state, populated by Scene.Bind
	vao          uint32
	posVBO       uint32
	texVBO       uint32
	modelViewLoc int32
	texture      uint32
	textureReady bool

	// One-shot delivery from the decode goroutine to the render thread.
	// Closed without a value when decoding fails; nil once resolved.
	pendingImage chan *image.RGBA
}

// NewBody creates a body with the default camera placement and rotation
// policy. Translation is the only placement parameter that differs between
// the bodies rendered here.
func NewBody(name string, mesh *geometry.Mesh, texturePath string, translation mgl32.Vec3) *Body {
	return &Body{
		Name:           name,
		Mesh:           mesh,
		TexturePath:    texturePath,
		FOV:            config.FieldOfView,
		CameraDistance: config.CameraDistance,
		Translation:    translation,
		Axis:           mgl32.Vec3{0, 1, 0},
		Speed:          config.RotationSpeed,
		pendingImage:   make(chan *image.RGBA, 1),
	}
}

// Advance steps the rotation by the body's fixed per-frame speed.
func (b *Body) Advance() {
	b.Angle += b.Speed
}

// Rotation builds the per-frame rotation transform from the current angle
// and the body's axis.
func (b *Body) Rotation() mgl32.Mat4 {
	return mgl32.HomogRotate3D(b.Angle, b.Axis)
}

// BaseModelView is the static part of the body's placement: a look-at from
// (0, 0, CameraDistance) toward the origin, composed with the body's
// translation. Uploaded once at bind time.
func (b *Body) BaseModelView() mgl32.Mat4 {
	eye := mgl32.Vec3{0, 0, b.CameraDistance}
	look := mgl32.LookAtV(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	return look.Mul4(mgl32.Translate3D(b.Translation.X(), b.Translation.Y(), b.Translation.Z()))
}

// ModelView composes the current rotation onto the static placement. Equals
// BaseModelView exactly when the angle is zero.
func (b *Body) ModelView() mgl32.Mat4 {
	return b.BaseModelView().Mul4(b.Rotation())
}

// TextureReady reports whether the body's texture has been decoded and
// uploaded. Until then the body's draw call is skipped.
func (b *Body) TextureReady() bool {
	return b.textureReady
}
