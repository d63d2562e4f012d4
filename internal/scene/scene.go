package scene

import (
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"

	"planets/internal/graphics"
)

// Scene owns the shared shader program, the shared projection and the set
// of bodies. Bodies draw in registration order every frame; that order is
// the paint order for any overlapping geometry.
type Scene struct {
	shader *graphics.Shader
	camera *graphics.Camera
	bodies []*Body

	projectionLoc int32
	samplerLoc    int32
}

// New wires the scene to a compiled shader program. The shared uniform
// names are part of the shader contract; a missing one aborts setup.
func New(shader *graphics.Shader, camera *graphics.Camera) (*Scene, error) {
	gl.Enable(gl.DEPTH_TEST)

	projectionLoc, err := shader.UniformLocation("projection")
	if err != nil {
		return nil, err
	}
	samplerLoc, err := shader.UniformLocation("sampler")
	if err != nil {
		return nil, err
	}

	return &Scene{
		shader:        shader,
		camera:        camera,
		projectionLoc: projectionLoc,
		samplerLoc:    samplerLoc,
	}, nil
}

// Add registers a body. Registration order determines draw order.
func (s *Scene) Add(b *Body) {
	s.bodies = append(s.bodies, b)
}

// Bodies returns the registered bodies in draw order.
func (s *Scene) Bodies() []*Body {
	return s.bodies
}

// Bind performs the one-time GPU setup for a body: uploads its position and
// texcoord streams as two separate buffers, wires them to the program's
// attributes, uploads the shared projection and the body's static
// model-view, and starts the asynchronous texture decode. Not repeated per
// frame.
func (s *Scene) Bind(b *Body) error {
	s.shader.Use()

	posLoc, err := s.shader.AttribLocation("position")
	if err != nil {
		return err
	}
	texLoc, err := s.shader.AttribLocation("texCoord")
	if err != nil {
		return err
	}
	b.modelViewLoc, err = s.shader.UniformLocation("modelView")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.Mesh.Positions)*4, gl.Ptr(b.Mesh.Positions), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(posLoc)
	gl.VertexAttribPointerWithOffset(posLoc, 3, gl.FLOAT, false, 3*4, 0)

	gl.GenBuffers(1, &b.texVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.texVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.Mesh.TexCoords)*4, gl.Ptr(b.Mesh.TexCoords), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(texLoc)
	gl.VertexAttribPointerWithOffset(texLoc, 2, gl.FLOAT, false, 2*4, 0)

	projection := s.camera.ProjectionMatrix(b.FOV)
	s.shader.SetMatrix4(s.projectionLoc, &projection[0])

	base := b.BaseModelView()
	s.shader.SetMatrix4(b.modelViewLoc, &base[0])
	s.shader.SetInt(s.samplerLoc, 0)

	go decodeTexture(b)

	return nil
}

// decodeTexture runs off the render thread and hands the decoded image over
// via the body's one-shot channel. A failed decode closes the channel; the
// body stays untextured and its draw is skipped from then on.
func decodeTexture(b *Body) {
	rgba, err := graphics.DecodeImage(b.TexturePath)
	if err != nil {
		log.Printf("texture %s: %v", b.TexturePath, err)
		close(b.pendingImage)
		return
	}
	b.pendingImage <- rgba
}

// Frame runs one animation tick: clears the targets, then for each body in
// registration order advances its rotation, uploads the composed model-view
// and issues the triangle-strip draw. Bodies whose texture has not resolved
// still get their transform uploaded but are not drawn.
func (s *Scene) Frame() {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.shader.Use()

	for _, b := range s.bodies {
		s.resolveTexture(b)

		b.Advance()
		modelView := b.ModelView()
		s.shader.SetMatrix4(b.modelViewLoc, &modelView[0])

		if !b.textureReady {
			continue
		}

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, b.texture)
		gl.BindVertexArray(b.vao)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, b.Mesh.VertexCount)
	}
}

// resolveTexture polls the body's pending decode without blocking and does
// the GPU upload here, on the render thread.
func (s *Scene) resolveTexture(b *Body) {
	if b.pendingImage == nil {
		return
	}
	select {
	case rgba, ok := <-b.pendingImage:
		b.pendingImage = nil
		if !ok {
			return
		}
		b.texture = graphics.UploadTexture(rgba)
		b.textureReady = true
	default:
	}
}

// BodyStatus is a read-only view of one body's animation state.
type BodyStatus struct {
	Name         string  `json:"name"`
	Angle        float32 `json:"angle"`
	TextureReady bool    `json:"textureReady"`
	VertexCount  int32   `json:"vertexCount"`
}

// Snapshot reports the animation state of every body, in draw order. Built
// on the render thread and handed over by value.
func (s *Scene) Snapshot() []BodyStatus {
	out := make([]BodyStatus, 0, len(s.bodies))
	for _, b := range s.bodies {
		out = append(out, BodyStatus{
			Name:         b.Name,
			Angle:        b.Angle,
			TextureReady: b.textureReady,
			VertexCount:  b.Mesh.VertexCount,
		})
	}
	return out
}
