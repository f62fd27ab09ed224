/*
Package main
File: main.go
Description: Server entry point. Loads the planet configuration, builds the
biome catalog and the room registry, and serves the WebSocket and REST
endpoints.
*/

package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gaiaworks/gaia-server/internal/api"
	"github.com/gaiaworks/gaia-server/internal/game"
)

func main() {
	// 1. Load the static configuration from YAML.
	// A missing file boots the server on built-in defaults.
	cfg, err := game.LoadConfig(configPath())
	if err != nil {
		log.Fatalf("Config Fail: %v", err)
	}

	// 2. Build the biome catalog. Immutable after this point, so every
	// room can share it without synchronization.
	catalog := game.NewCatalog(cfg.Biomes)
	log.Printf("Catalog loaded: %d biomes, %d tiles per planet", catalog.Len(), cfg.TotalTiles)

	// 3. The room registry and the transport layer on top of it.
	registry := api.NewRegistry(cfg, catalog)
	server := api.NewServer(registry)
	info := api.NewInfoHandlers(registry, catalog)

	// 4. Setup Router and Handlers
	mux := http.NewServeMux()

	// Information Endpoints (read-only; mutations are WebSocket-only)
	mux.HandleFunc("/api/biomes", info.HandleGetBiomes)
	mux.HandleFunc("/api/rooms", info.HandleGetRooms)

	// Real-Time WebSocket Endpoint, one room per path suffix
	mux.HandleFunc("/parties/", server.HandleWS)

	// 5. Start the Server
	addr := listenAddr(cfg)
	log.Printf("GAIA Server live on %s", addr)

	if err := http.ListenAndServe(addr, corsMiddleware(mux)); err != nil {
		log.Fatal(err)
	}
}

// configPath resolves the YAML location, overridable for deployments.
func configPath() string {
	if p := os.Getenv("GAIA_CONFIG"); p != "" {
		return p
	}
	return "gaia.yaml"
}

// listenAddr lets a PORT variable override the configured endpoint,
// which is how most container platforms inject the port.
func listenAddr(cfg game.Config) string {
	if port := os.Getenv("PORT"); port != "" {
		return cfg.Server.Host + ":" + port
	}
	return cfg.Server.Addr()
}

// corsMiddleware ensures browser clients can talk to the server across domains.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
