/*
Package api
File: handlers.go
Description:
    Contains the HTTP handlers for the read-only REST surface.
    Mutations stay WebSocket-only; these endpoints exist so tooling and
    lobby screens can inspect the catalog and the live rooms without
    opening a socket.
*/

package api

import (
	"encoding/json"
	"net/http"

	"github.com/gaiaworks/gaia-server/internal/game"
)

// InfoHandlers serves the REST endpoints.
type InfoHandlers struct {
	registry *Registry
	catalog  *game.Catalog
}

// NewInfoHandlers creates the REST surface over a registry and catalog.
func NewInfoHandlers(registry *Registry, catalog *game.Catalog) *InfoHandlers {
	return &InfoHandlers{registry: registry, catalog: catalog}
}

// HandleGetBiomes returns the static biome catalog, contributions
// included, in declaration order.
func (h *InfoHandlers) HandleGetBiomes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.catalog.List())
}

// HandleGetRooms returns a summary of every live room: name,
// participant count, and how many tiles carry a biome.
func (h *InfoHandlers) HandleGetRooms(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.registry.Snapshot())
}
