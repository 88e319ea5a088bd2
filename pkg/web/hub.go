// Package web streams CPU snapshots to websocket clients, so that a
// debugger can follow execution from another process.
package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/pkg/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub keeps track of the connected clients and broadcasts every
// published Snapshot to them.
type Hub struct {
	clients map[*Client]bool

	broadcast            chan []byte
	register, unregister chan *Client
	count                chan int
	done                 chan struct{}

	log log.Logger
}

// NewHub returns a Hub, which must be started with Run.
func NewHub(logger log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		count:      make(chan int),
		done:       make(chan struct{}),
		log:        logger,
	}
}

// Run handles clients and broadcasting until ctx is done, at which
// point every client is disconnected.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			h.log.Debugf("web: client %s connected", c.remoteAddr)
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.log.Debugf("web: client %s disconnected", c.remoteAddr)
			}
		case h.count <- len(h.clients):
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// slow client, drop the snapshot
				}
			}
		}
	}
}

// Publish queues the Snapshot for every connected client. It never
// blocks, snapshots are dropped when the hub is backed up.
func (h *Hub) Publish(s cpu.Snapshot) {
	message, err := json.Marshal(s)
	if err != nil {
		h.log.Errorf("web: encoding snapshot: %v", err)
		return
	}

	select {
	case h.broadcast <- message:
	default:
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	select {
	case n := <-h.count:
		return n
	case <-h.done:
		return 0
	}
}

// ServeHTTP upgrades the connection to a websocket and registers the
// client with the hub.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("web: upgrade: %v", err)
		return
	}

	c := &Client{
		hub:        h,
		conn:       conn,
		send:       make(chan []byte, 64),
		remoteAddr: r.RemoteAddr,
	}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.WritePump()
	go c.ReadPump()
}
