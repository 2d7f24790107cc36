// Package web mirrors frames to browsers over a websocket. It is output only:
// anything a client sends is read and discarded.
package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/led-arcade/internal/core"
)

const writeWait = 200 * time.Millisecond

// Topology is sent once when a client connects.
type Topology struct {
	W      int    `json:"w"`
	H      int    `json:"h"`
	Layout string `json:"layout"`
}

// Frame is one flushed frame. RGB holds three bytes per element in wiring order.
type Frame struct {
	T       int64  `json:"t"`
	FrameID uint64 `json:"frame_id"`
	W       int    `json:"w"`
	H       int    `json:"h"`
	RGB     []byte `json:"rgb"`
}

// Mirror is a display sink that broadcasts every frame to connected clients.
// A slow or gone client is dropped; it never fails the flush.
type Mirror struct {
	mu       sync.RWMutex
	grid     core.Grid
	clients  map[*websocket.Conn]bool
	frameID  uint64
	rgb      []byte
	start    time.Time
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewMirror creates a mirror for grid. A nil logger uses log.Default().
func NewMirror(grid core.Grid, logger *log.Logger) *Mirror {
	if logger == nil {
		logger = log.Default()
	}
	return &Mirror{
		grid:    grid,
		clients: map[*websocket.Conn]bool{},
		rgb:     make([]byte, grid.Len()*3),
		start:   time.Now(),
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handler serves /ws/frames and /healthz.
func (m *Mirror) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/frames", m.HandleFrames)
	mux.HandleFunc("/healthz", m.HandleHealth)
	return mux
}

// Flush implements engine.Sink.
func (m *Mirror) Flush(frame []core.Color) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.frameID++
	for i, c := range frame {
		if o := i * 3; o+2 < len(m.rgb) {
			m.rgb[o], m.rgb[o+1], m.rgb[o+2] = c.R, c.G, c.B
		}
	}
	if len(m.clients) == 0 {
		return nil
	}

	b, err := json.Marshal(Frame{
		T:       time.Now().UnixNano(),
		FrameID: m.frameID,
		W:       m.grid.W,
		H:       m.grid.H,
		RGB:     m.rgb,
	})
	if err != nil {
		return err
	}
	for c := range m.clients {
		c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			m.logger.Debug("dropping mirror client", "remote", c.RemoteAddr(), "err", err)
			delete(m.clients, c)
			c.Close()
		}
	}
	return nil
}

// HandleFrames upgrades the request and registers the client.
func (m *Mirror) HandleFrames(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.logger.Debug("websocket upgrade failed", "err", err)
		return
	}

	top, _ := json.Marshal(Topology{W: m.grid.W, H: m.grid.H, Layout: "serpentine"})
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, top); err != nil {
		conn.Close()
		return
	}

	m.mu.Lock()
	m.clients[conn] = true
	m.mu.Unlock()
	m.logger.Info("mirror client connected", "remote", conn.RemoteAddr())

	go func() {
		defer func() {
			m.mu.Lock()
			delete(m.clients, conn)
			m.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// HandleHealth reports the frame counter and client count as JSON.
func (m *Mirror) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"frame_id": m.frameID,
		"uptime_s": time.Since(m.start).Seconds(),
		"count":    m.grid.Len(),
		"clients":  len(m.clients),
	})
}

// Clients returns the number of connected clients.
func (m *Mirror) Clients() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// Close disconnects every client.
func (m *Mirror) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for c := range m.clients {
		c.Close()
		delete(m.clients, c)
	}
	return nil
}
