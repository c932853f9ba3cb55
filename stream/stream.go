// Package stream serves glow-field frames to websocket viewers.
//
// The frame loop stays the sole owner of the simulation: it pushes one
// Frame per simulated frame through Broadcast, and viewer commands travel
// back only through the simulation's trigger queue, which is built for
// exactly this kind of asynchronous source.
package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/moptim/glimmer"
)

const writeTimeout = 10 * time.Second

// A Frame is the wire form of one simulation frame.
type Frame struct {
	Time   float32        `json:"time"`
	Tail   float32        `json:"tail"`
	PosRad []glimmer.Vec3 `json:"posRad"`
	Color  []glimmer.Vec3 `json:"color"`
	Shape  []glimmer.Vec4 `json:"shape"`
}

// FrameOf converts a simulation snapshot into its wire form.
func FrameOf(snap glimmer.Snapshot) Frame {
	return Frame{
		Time:   snap.Time,
		Tail:   snap.TailCritical,
		PosRad: snap.PosRad,
		Color:  snap.Color,
		Shape:  snap.Shape,
	}
}

// A Command is a control action sent by a viewer.
type Command struct {
	Action string `json:"action"`
}

// actions maps wire names onto control actions.
var actions = map[string]glimmer.Action{
	"sharpen":   glimmer.Sharpen,
	"soften":    glimmer.Soften,
	"draw":      glimmer.ToggleDraw,
	"limit":     glimmer.ToggleLimitTime,
	"friction+": glimmer.MoreFriction,
	"friction-": glimmer.LessFriction,
}

var upgrader = websocket.Upgrader{
	// Viewers are expected on other hosts; allow all origins.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// A Server fans frames out to connected websocket viewers and feeds their
// commands into the simulation's trigger queue.
type Server struct {
	keys *glimmer.Keys

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// New returns a server feeding commands into the given trigger queue.
func New(keys *glimmer.Keys) *Server {
	return &Server{
		keys:    keys,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handler upgrades incoming requests and runs a read loop per viewer.
func (srv *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		srv.add(conn)
		defer srv.remove(conn)

		conn.SetReadLimit(1 << 16)
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var cmd Command
			if err := json.Unmarshal(msg, &cmd); err != nil {
				log.Println("bad command:", err)
				continue
			}
			if !srv.dispatch(cmd) {
				log.Printf("unknown action %q", cmd.Action)
			}
		}
	})
}

// dispatch queues the command's action and reports whether it was known.
func (srv *Server) dispatch(cmd Command) bool {
	a, ok := actions[cmd.Action]
	if ok {
		srv.keys.Trigger(a)
	}
	return ok
}

// Broadcast sends one frame to every connected viewer, dropping viewers
// whose connection has failed. It is called from the frame loop only, so
// each connection has a single writer.
func (srv *Server) Broadcast(f Frame) {
	msg, err := json.Marshal(f)
	if err != nil {
		log.Println("marshal frame:", err)
		return
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()
	for conn := range srv.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			conn.Close()
			delete(srv.clients, conn)
		}
	}
}

// Clients returns the number of connected viewers.
func (srv *Server) Clients() int {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	return len(srv.clients)
}

func (srv *Server) add(conn *websocket.Conn) {
	srv.mu.Lock()
	srv.clients[conn] = struct{}{}
	srv.mu.Unlock()
}

func (srv *Server) remove(conn *websocket.Conn) {
	srv.mu.Lock()
	if _, ok := srv.clients[conn]; ok {
		conn.Close()
		delete(srv.clients, conn)
	}
	srv.mu.Unlock()
}
