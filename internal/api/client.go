/*
Package api
File: client.go
Description:
    One Client per WebSocket connection. It acts as the middleman
    between the socket and a room: the room enqueues outbound frames on
    the client's buffered channel, and the writePump drains it to the
    socket so slow readers never stall the room's event loop.
*/

package api

import (
	"fmt"
	"math/rand"

	"github.com/gorilla/websocket"
)

const sendQueueSize = 256

// Client represents a single connected participant.
type Client struct {
	id   string
	name string
	conn *websocket.Conn
	send chan []byte // Buffered channel of outbound frames
}

func newClient(id, name string, conn *websocket.Conn) *Client {
	return &Client{
		id:   id,
		name: name,
		conn: conn,
		send: make(chan []byte, sendQueueSize),
	}
}

// enqueue hands a frame to the writePump without blocking. Delivery is
// best-effort: when the queue is full the frame is dropped for this
// client only.
func (c *Client) enqueue(frame []byte) bool {
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// writePump drains the send queue to the socket.
// Range stops automatically once the lifecycle handler closes c.send.
func (c *Client) writePump() {
	defer c.conn.Close()

	for frame := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}

	// Queue was closed cleanly; tell the peer we're done.
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// displayNames feeds generateName. Same roster as the original client.
var displayNames = []string{"Tigre", "Panda", "Aigle", "Lynx", "Renard", "Dragon"}

// generateName produces a throwaway display name like "Tigre-1234".
func generateName() string {
	return fmt.Sprintf("%s-%d", displayNames[rand.Intn(len(displayNames))], rand.Intn(10000))
}
