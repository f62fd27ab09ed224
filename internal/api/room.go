/*
Package api
File: room.go
Description:
    One Room per session name. The room owns the authoritative planet
    state, the participant roster, the host designation, and the
    message transcript.

    Concurrency model: one goroutine per room. Every mutation (join,
    leave, inbound request) flows through the loop's channels and is
    applied in strict serial order, so the room state needs no lock and
    a join snapshot can never observe a half-applied mutation. Rooms
    are fully independent of each other.
*/

package api

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gaiaworks/gaia-server/internal/game"
)

const inboxSize = 64

// RoomInfo is a read-only summary for the REST listing.
type RoomInfo struct {
	Name          string `json:"name"`
	Users         int    `json:"users"`
	AssignedTiles int    `json:"assignedTiles"`
}

type joinRequest struct {
	client *Client
	done   chan struct{}
}

type leaveRequest struct {
	client *Client
	done   chan struct{}
}

type inboundFrame struct {
	sender *Client
	raw    []byte
}

// Room is the per-session actor.
type Room struct {
	name    string
	catalog *game.Catalog
	tuning  game.StatsTuning
	planet  *game.Planet

	joins  chan joinRequest
	leaves chan leaveRequest
	inbox  chan inboundFrame
	infos  chan chan RoomInfo
	done   chan struct{}

	// Loop-owned state below. Only the run goroutine touches these.
	hostID       string
	participants []*Client
	history      []string
}

func newRoom(name string, catalog *game.Catalog, cfg game.Config) *Room {
	return &Room{
		name:    name,
		catalog: catalog,
		tuning:  cfg.Stats,
		planet:  game.NewPlanet(cfg.TotalTiles),
		joins:   make(chan joinRequest),
		leaves:  make(chan leaveRequest),
		inbox:   make(chan inboundFrame, inboxSize),
		infos:   make(chan chan RoomInfo),
		done:    make(chan struct{}),
	}
}

// run is the room's event loop. It exits when the registry stops the
// room, which only happens after the last participant has left.
func (r *Room) run() {
	for {
		select {
		case <-r.done:
			return
		case j := <-r.joins:
			r.handleJoin(j.client)
			close(j.done)
		case l := <-r.leaves:
			r.handleLeave(l.client)
			close(l.done)
		case f := <-r.inbox:
			r.handleFrame(f.sender, f.raw)
		case reply := <-r.infos:
			reply <- RoomInfo{Name: r.name, Users: len(r.participants), AssignedTiles: r.planet.AssignedCount()}
		}
	}
}

func (r *Room) stop() {
	close(r.done)
}

// Join adds a client to the room and blocks until the full join
// sequence (role, roster, transcript, snapshot) has been enqueued.
func (r *Room) Join(c *Client) {
	req := joinRequest{client: c, done: make(chan struct{})}
	select {
	case r.joins <- req:
		<-req.done
	case <-r.done:
	}
}

// Leave removes a client and blocks until the room no longer
// references it, after which its send queue may be closed safely.
func (r *Room) Leave(c *Client) {
	req := leaveRequest{client: c, done: make(chan struct{})}
	select {
	case r.leaves <- req:
		<-req.done
	case <-r.done:
	}
}

// Forward hands a raw inbound frame to the event loop.
func (r *Room) Forward(c *Client, raw []byte) {
	select {
	case r.inbox <- inboundFrame{sender: c, raw: raw}:
	case <-r.done:
	}
}

// Info queries the loop for a consistent summary.
func (r *Room) Info() RoomInfo {
	reply := make(chan RoomInfo, 1)
	select {
	case r.infos <- reply:
		return <-reply
	case <-r.done:
		return RoomInfo{Name: r.name}
	}
}

// handleJoin runs the join sequence, in order:
//  1. the first participant of an empty room becomes host
//  2. unicast the role message to the joiner
//  3. broadcast the updated roster to everyone, joiner included
//  4. announce the arrival and replay the transcript to the joiner
//  5. unicast the full planet snapshot to the joiner
//
// The snapshot comes last so a joiner always has its role and the
// roster before the potentially large planet state arrives.
func (r *Room) handleJoin(c *Client) {
	if len(r.participants) == 0 {
		r.hostID = c.id
		log.Printf("Room created: %s, host = %s", r.name, c.id)
	}
	r.participants = append(r.participants, c)

	r.unicast(c, RoleMessage{Type: TypeRole, IsHost: c.id == r.hostID, HostID: r.hostID})
	r.broadcastUsers()

	welcome := fmt.Sprintf("%s a rejoint la room !", c.name)
	r.broadcastText(welcome)
	for _, line := range r.history {
		c.enqueue([]byte(line))
	}
	r.history = append(r.history, welcome)

	r.unicast(c, SyncStateMessage{
		Type:       TypeSyncState,
		TileBiomes: r.planet.Snapshot(),
		Stats:      r.planet.Stats(r.tuning),
	})
}

// handleLeave removes the participant and tells the rest. The host
// designation is intentionally NOT reassigned when the host leaves.
func (r *Room) handleLeave(c *Client) {
	for i, p := range r.participants {
		if p == c {
			r.participants = append(r.participants[:i], r.participants[i+1:]...)
			break
		}
	}

	if len(r.participants) > 0 {
		r.broadcastUsers()
		r.broadcastText(fmt.Sprintf("%s a quitté la room.", c.name))
	}
}

// handleFrame decodes and applies one inbound frame. Anything that
// fails validation is dropped without a reply: there is no NACK
// channel in this protocol, and a sender that applied a rejected
// mutation optimistically simply diverges until its next sync.
func (r *Room) handleFrame(sender *Client, raw []byte) {
	req, ok := DecodeRequest(raw)
	if !ok {
		return
	}

	switch m := req.(type) {
	case SetBiomeRequest:
		biome, found := r.catalog.Get(m.Biome.Name)
		if !found {
			if hint, ok := r.catalog.Closest(m.Biome.Name); ok {
				log.Printf("Room %s: unknown biome %q from %s (closest: %q)", r.name, m.Biome.Name, sender.id, hint)
			}
			return
		}
		if !r.planet.ValidIndex(m.TileIndex) {
			log.Printf("Room %s: tile %d out of range [0,%d) from %s", r.name, m.TileIndex, r.planet.TotalTiles(), sender.id)
			return
		}

		r.planet.SetBiome(m.TileIndex, biome)
		r.broadcastExcept(sender, SetBiomeBroadcast{
			Type:      TypeSetBiome,
			TileIndex: m.TileIndex,
			Biome:     biome.Ref(),
			Stats:     r.planet.Stats(r.tuning),
		})

	case ResetPlanetRequest:
		r.planet.Reset()
		r.broadcast(ResetPlanetBroadcast{
			Type:  TypeResetPlanet,
			Stats: r.planet.Stats(r.tuning),
		})
	}
}

func (r *Room) broadcastUsers() {
	users := make([]User, 0, len(r.participants))
	for _, p := range r.participants {
		users = append(users, User{ID: p.id, Name: p.name, IsHost: p.id == r.hostID})
	}
	r.broadcast(UsersMessage{Type: TypeUsers, Users: users})
}

// broadcast sends a message to every participant.
func (r *Room) broadcast(v any) {
	r.broadcastExcept(nil, v)
}

// broadcastExcept marshals once and enqueues the frame to every
// participant but the excluded one. A participant whose queue is full
// misses this frame only; the room never blocks on a slow socket.
func (r *Room) broadcastExcept(excluded *Client, v any) {
	frame, err := json.Marshal(v)
	if err != nil {
		log.Printf("Room %s: marshal broadcast: %v", r.name, err)
		return
	}
	for _, p := range r.participants {
		if p == excluded {
			continue
		}
		if !p.enqueue(frame) {
			log.Printf("Room %s: dropped frame for %s (queue full)", r.name, p.id)
		}
	}
}

// broadcastText sends a plain text frame to every participant.
// Transcript lines keep the legacy text framing of the oldest
// protocol revision; structured clients ignore them.
func (r *Room) broadcastText(line string) {
	for _, p := range r.participants {
		p.enqueue([]byte(line))
	}
}

func (r *Room) unicast(c *Client, v any) {
	frame, err := json.Marshal(v)
	if err != nil {
		log.Printf("Room %s: marshal unicast: %v", r.name, err)
		return
	}
	if !c.enqueue(frame) {
		log.Printf("Room %s: dropped frame for %s (queue full)", r.name, c.id)
	}
}
