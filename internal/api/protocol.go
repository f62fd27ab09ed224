/*
Package api
File: protocol.go
Description:
    The wire protocol: flat JSON objects discriminated by a "type"
    field, sent as UTF-8 text frames.

    Inbound payloads are decoded exactly once at the transport boundary
    into a small tagged union. A payload that is not valid JSON, or that
    carries an unknown type, decodes to "not a request" and is silently
    ignored upstream; invalid client input never becomes an error path.
*/

package api

import (
	"encoding/json"

	"github.com/gaiaworks/gaia-server/internal/game"
)

// Message type discriminators. The casing is uneven for historical
// reasons: "role" and "users" predate the planet sync messages.
const (
	TypeRole        = "role"
	TypeUsers       = "users"
	TypeSyncState   = "SYNC_STATE"
	TypeSetBiome    = "SET_BIOME"
	TypeResetPlanet = "RESET_PLANET"
)

// baseMessage lets us route raw JSON by type before committing to a
// concrete struct.
type baseMessage struct {
	Type string `json:"type"`
}

// Request is a decoded client request. The concrete types are
// SetBiomeRequest and ResetPlanetRequest.
type Request interface {
	requestType() string
}

// SetBiomeRequest asks the room to assign a biome to one tile.
type SetBiomeRequest struct {
	TileIndex int           `json:"tileIndex"`
	Biome     game.BiomeRef `json:"biome"`
}

func (SetBiomeRequest) requestType() string { return TypeSetBiome }

// ResetPlanetRequest asks the room to clear every tile assignment.
type ResetPlanetRequest struct{}

func (ResetPlanetRequest) requestType() string { return TypeResetPlanet }

// DecodeRequest turns a raw text frame into a Request. The second
// return value is false for anything that should be ignored: malformed
// JSON, unknown types, or a recognized type with an unreadable body.
func DecodeRequest(raw []byte) (Request, bool) {
	var base baseMessage
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, false
	}

	switch base.Type {
	case TypeSetBiome:
		var req SetBiomeRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, false
		}
		return req, true
	case TypeResetPlanet:
		return ResetPlanetRequest{}, true
	}

	return nil, false
}

// User is one roster entry in a "users" broadcast.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsHost bool   `json:"isHost"`
}

// RoleMessage is unicast to a participant right after it joins.
type RoleMessage struct {
	Type   string `json:"type"`
	IsHost bool   `json:"isHost"`
	HostID string `json:"hostId"`
}

// UsersMessage carries the full roster, broadcast on every join/leave.
type UsersMessage struct {
	Type  string `json:"type"`
	Users []User `json:"users"`
}

// SyncStateMessage is the full snapshot unicast to a new joiner:
// every assigned tile plus the stats derived from exactly that mapping.
type SyncStateMessage struct {
	Type       string                `json:"type"`
	TileBiomes map[int]game.BiomeRef `json:"tileBiomes"`
	Stats      game.PlanetStats      `json:"stats"`
}

// SetBiomeBroadcast relays an accepted tile mutation to every
// participant except the sender, which already applied it locally.
type SetBiomeBroadcast struct {
	Type      string           `json:"type"`
	TileIndex int              `json:"tileIndex"`
	Biome     game.BiomeRef    `json:"biome"`
	Stats     game.PlanetStats `json:"stats"`
}

// ResetPlanetBroadcast confirms a planet reset to every participant,
// sender included: resets have no client-side optimistic echo.
type ResetPlanetBroadcast struct {
	Type  string           `json:"type"`
	Stats game.PlanetStats `json:"stats"`
}
