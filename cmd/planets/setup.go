package main

import (
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"planets/internal/config"
	"planets/internal/geometry"
	"planets/internal/graphics"
	"planets/internal/scene"
)

// Shader file paths
const (
	ShadersDir = "assets/shaders"

	BodyVertShader = "body.vert"
	BodyFragShader = "body.frag"
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// The projection is computed once; keep the viewport fixed for the run.
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(config.WinWidth, config.WinHeight, "planets", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	// Disable V-Sync; the FPS limiter paces frames instead
	glfw.SwapInterval(0)

	return window, nil
}

func setupScene(textureDir string) (*scene.Scene, error) {
	vertPath := filepath.Join(ShadersDir, BodyVertShader)
	fragPath := filepath.Join(ShadersDir, BodyFragShader)
	shader, err := graphics.NewShader(vertPath, fragPath)
	if err != nil {
		return nil, err
	}

	camera := graphics.NewCamera(config.WinWidth, config.WinHeight)

	sc, err := scene.New(shader, camera)
	if err != nil {
		return nil, err
	}

	// Both bodies share one tessellated unit sphere; only texture and
	// placement differ.
	mesh, err := geometry.GenerateSphere(config.LatitudeDivisions, config.LongitudeDivisions)
	if err != nil {
		return nil, err
	}

	earth := scene.NewBody("earth", mesh, filepath.Join(textureDir, "earth.png"), mgl32.Vec3{-1, 0, 0})
	moon := scene.NewBody("moon", mesh, filepath.Join(textureDir, "moon.png"), mgl32.Vec3{4, 0, 0})

	for _, b := range []*scene.Body{earth, moon} {
		sc.Add(b)
		if err := sc.Bind(b); err != nil {
			return nil, err
		}
	}

	return sc, nil
}
