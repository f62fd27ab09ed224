/*
Package api
File: registry.go
Description:
    Maps a room name to at most one live Room. Rooms are created lazily
    on first connection and destroyed once the last participant
    disconnects; nothing is persisted.

    The registry serializes creation and destruction with one mutex and
    a per-room reference count, so concurrent first-connections to the
    same name can never race into two rooms, and a room can never be
    stopped while a connection still holds it.
*/

package api

import (
	"log"
	"sync"

	"github.com/gaiaworks/gaia-server/internal/game"
)

type roomEntry struct {
	room *Room
	refs int
}

// Registry owns every live room.
type Registry struct {
	mu      sync.Mutex
	cfg     game.Config
	catalog *game.Catalog
	rooms   map[string]*roomEntry
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg game.Config, catalog *game.Catalog) *Registry {
	return &Registry{
		cfg:     cfg,
		catalog: catalog,
		rooms:   make(map[string]*roomEntry),
	}
}

// Connect resolves (or lazily creates) the room for a name and takes a
// reference on it. Every Connect must be paired with one Disconnect.
func (reg *Registry) Connect(name string) *Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	entry := reg.rooms[name]
	if entry == nil {
		entry = &roomEntry{room: newRoom(name, reg.catalog, reg.cfg)}
		reg.rooms[name] = entry
		go entry.room.run()
	}
	entry.refs++
	return entry.room
}

// Disconnect releases one reference. When the last reference is gone
// the room is removed from the registry and its loop stopped; the next
// connector to this name starts a fresh room.
func (reg *Registry) Disconnect(name string, room *Room) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	entry := reg.rooms[name]
	if entry == nil || entry.room != room {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(reg.rooms, name)
		room.stop()
		log.Printf("Room destroyed: %s", name)
	}
}

// Snapshot summarizes every live room for the REST listing. Room
// queries run outside the registry lock; a room that dies mid-listing
// just reports itself empty.
func (reg *Registry) Snapshot() []RoomInfo {
	reg.mu.Lock()
	rooms := make([]*Room, 0, len(reg.rooms))
	for _, entry := range reg.rooms {
		rooms = append(rooms, entry.room)
	}
	reg.mu.Unlock()

	infos := make([]RoomInfo, 0, len(rooms))
	for _, room := range rooms {
		infos = append(infos, room.Info())
	}
	return infos
}
