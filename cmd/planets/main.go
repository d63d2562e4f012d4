package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"planets/internal/app"
	"planets/internal/config"
	"planets/internal/status"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	textureDir := flag.String("textures", "assets/textures", "directory containing earth.png and moon.png")
	statusAddr := flag.String("status", "", "listen address for the status server (empty = disabled)")
	fpsLimit := flag.Int("fps", 60, "frame rate cap (0 = uncapped)")
	flag.Parse()

	config.SetFPSLimit(*fpsLimit)

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	// Window setup
	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	// Scene setup: shared shader, sphere mesh, earth + moon
	sc, err := setupScene(*textureDir)
	if err != nil {
		panic(err)
	}

	var statusServer *status.Server
	if *statusAddr != "" {
		statusServer = status.NewServer(*statusAddr)
		go func() {
			if err := statusServer.Run(); err != nil {
				log.Printf("status server: %v", err)
			}
		}()
	}

	// Main frame loop
	app.NewLoop(window, sc, statusServer).Run()
}
