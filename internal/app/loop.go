package app

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"planets/internal/config"
	"planets/internal/graphics"
	"planets/internal/profiling"
	"planets/internal/scene"
	"planets/internal/status"
)

// Loop drives the scene: one frame tick per iteration until the window
// closes. All GL work happens here, on the thread that owns the context;
// the only outside traffic is value snapshots out and capture requests in.
type Loop struct {
	window *glfw.Window
	scene  *scene.Scene
	status *status.Server // nil when the status server is disabled

	fpsLimiter *FPSLimiter

	// Timing
	ticks            int64
	frames           int
	currentFPS       int
	lastFPSCheckTime time.Time
}

// NewLoop creates the frame loop. statusServer may be nil.
func NewLoop(window *glfw.Window, sc *scene.Scene, statusServer *status.Server) *Loop {
	return &Loop{
		window:           window,
		scene:            sc,
		status:           statusServer,
		fpsLimiter:       NewFPSLimiter(),
		lastFPSCheckTime: time.Now(),
	}
}

// Run blocks until the window is closed. Each iteration hands control back
// to the window system after one frame; closing the window is the only way
// the loop ends.
func (l *Loop) Run() {
	for !l.window.ShouldClose() {
		l.tick()
	}
}

func (l *Loop) tick() {
	profiling.ResetFrame()
	frameStart := time.Now()

	func() { defer profiling.Track("scene.Frame")(); l.scene.Frame() }()
	l.ticks++
	l.frames++

	if time.Since(l.lastFPSCheckTime) >= time.Second {
		fmt.Println("FPS: ", l.frames)
		l.currentFPS = l.frames
		l.frames = 0
		l.lastFPSCheckTime = time.Now()
		l.publishStatus()
	}

	l.handleCapture()

	func() { defer profiling.Track("glfw.SwapBuffers")(); l.window.SwapBuffers() }()
	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	l.warnSlowFrame(time.Since(frameStart))

	l.fpsLimiter.Wait()
}

func (l *Loop) publishStatus() {
	if l.status == nil {
		return
	}
	l.status.Publish(status.Frame{
		Tick:   l.ticks,
		FPS:    l.currentFPS,
		Bodies: l.scene.Snapshot(),
	})
}

// handleCapture services at most one pending frame grab per tick, after
// drawing and before the buffer swap so the back buffer holds the frame.
func (l *Loop) handleCapture() {
	if l.status == nil {
		return
	}
	select {
	case req := <-l.status.Captures():
		width, height := l.window.GetFramebufferSize()
		img := graphics.CaptureFrame(width, height)
		data, err := graphics.EncodeWebP(img)
		if err != nil {
			log.Printf("frame capture: %v", err)
			close(req.Reply)
			return
		}
		req.Reply <- data
	default:
	}
}

func (l *Loop) warnSlowFrame(frameDur time.Duration) {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		return
	}
	targetFrameTime := time.Second / time.Duration(limit)
	if frameDur > targetFrameTime {
		fmt.Printf("Frame took too long: %.2fms (target: %.2fms) [%s]\n",
			float64(frameDur.Nanoseconds())/1000000.0,
			float64(targetFrameTime.Nanoseconds())/1000000.0,
			profiling.TopN(3))
	}
}
