package status

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"planets/internal/scene"
)

// Frame is the state snapshot pushed to websocket clients.
type Frame struct {
	Tick   int64              `json:"tick"`
	FPS    int                `json:"fps"`
	Bodies []scene.BodyStatus `json:"bodies"`
}

// CaptureRequest asks the render thread for an encoded frame grab. Reply
// carries WebP bytes, or is closed when the capture fails.
type CaptureRequest struct {
	Reply chan []byte
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local debug endpoint
	},
}

// Server exposes scene state over a websocket plus a frame-grab endpoint.
// It never touches GL or the scene directly: snapshots arrive by value via
// Publish and captures go through a request channel serviced by the render
// loop.
type Server struct {
	addr string

	mu     sync.RWMutex
	latest Frame

	captures chan CaptureRequest
}

func NewServer(addr string) *Server {
	return &Server{
		addr:     addr,
		captures: make(chan CaptureRequest, 1),
	}
}

// Publish replaces the snapshot served to clients. Called from the render
// thread once per second.
func (s *Server) Publish(f Frame) {
	s.mu.Lock()
	s.latest = f
	s.mu.Unlock()
}

// Captures is drained by the render loop between draw and buffer swap.
func (s *Server) Captures() <-chan CaptureRequest {
	return s.captures
}

// Run serves until the listener fails. Meant to be started on its own
// goroutine.
func (s *Server) Run() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/frame.webp", s.handleFrame)

	log.Printf("status server listening on %s", s.addr)
	return http.ListenAndServe(s.addr, mux)
}

func (s *Server) snapshot() Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	// Send the current state immediately, then push updates.
	if err := conn.WriteJSON(s.snapshot()); err != nil {
		return
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		if err := conn.WriteJSON(s.snapshot()); err != nil {
			return
		}
	}
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	req := CaptureRequest{Reply: make(chan []byte, 1)}

	select {
	case s.captures <- req:
	default:
		http.Error(w, "capture already in flight", http.StatusServiceUnavailable)
		return
	}

	select {
	case data, ok := <-req.Reply:
		if !ok {
			http.Error(w, "capture failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/webp")
		if _, err := w.Write(data); err != nil {
			log.Println("frame write error:", err)
		}
	case <-time.After(5 * time.Second):
		// Render loop stalled or not running.
		http.Error(w, "capture timed out", http.StatusGatewayTimeout)
	}
}
