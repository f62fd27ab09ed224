/*
Package api
File: ws.go
Description:
    The connection lifecycle handler. Upgrades HTTP requests on
    /parties/{room} to WebSockets, binds each connection to its room,
    pumps inbound frames into the room's event loop, and tears the
    binding down again on disconnect.

    The room never touches the transport layer; this file is the only
    place where sockets and rooms meet.
*/

package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Server bundles the registry with the transport configuration.
type Server struct {
	registry *Registry
	upgrader websocket.Upgrader
}

// NewServer creates the transport front-end over a registry.
func NewServer(registry *Registry) *Server {
	return &Server{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS serves "/parties/{room}". The room name is the connection's
// addressing: every frame on this socket is scoped to that one room.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	roomName := strings.TrimPrefix(r.URL.Path, "/parties/")
	if roomName == "" || strings.Contains(roomName, "/") {
		http.Error(w, "Room name required", http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WS Upgrade Error:", err)
		return
	}

	client := newClient(uuid.NewString(), generateName(), conn)
	room := s.registry.Connect(roomName)

	go client.writePump()
	room.Join(client)
	log.Printf("Client connected: %s (%s) in %s", client.id, client.name, roomName)

	// Reader loop. Runs until the peer disconnects or errors out.
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}
		room.Forward(client, raw)
	}

	// Cleanup, strictly in this order: once Leave returns the room no
	// longer references the client, so closing its queue is safe.
	room.Leave(client)
	s.registry.Disconnect(roomName, room)
	close(client.send)
	log.Printf("Client disconnected: %s from %s", client.id, roomName)
}
