/*
Package game
File: planet.go
Description:
    The authoritative planet state owned by one room: a sparse mapping
    from tile index to assigned biome. The room's event loop is the only
    writer, so Planet itself carries no lock.
*/

package game

// Planet holds the tile assignments for one session.
type Planet struct {
	totalTiles int
	tiles      map[int]Biome
}

// NewPlanet creates an empty planet with the shared tile count.
func NewPlanet(totalTiles int) *Planet {
	return &Planet{
		totalTiles: totalTiles,
		tiles:      make(map[int]Biome),
	}
}

// TotalTiles reports the fixed tile count of the planet.
func (p *Planet) TotalTiles() int {
	return p.totalTiles
}

// ValidIndex reports whether a tile index falls inside [0, totalTiles).
func (p *Planet) ValidIndex(tileIndex int) bool {
	return tileIndex >= 0 && tileIndex < p.totalTiles
}

// SetBiome assigns (or overwrites) the biome of one tile.
// The caller is responsible for validating the index first.
func (p *Planet) SetBiome(tileIndex int, b Biome) {
	p.tiles[tileIndex] = b
}

// Reset clears every tile assignment.
func (p *Planet) Reset() {
	p.tiles = make(map[int]Biome)
}

// AssignedCount reports how many tiles currently carry a biome.
func (p *Planet) AssignedCount() int {
	return len(p.tiles)
}

// Snapshot copies the assignments into their transport form for a
// SYNC_STATE message. The copy keeps the live map private.
func (p *Planet) Snapshot() map[int]BiomeRef {
	out := make(map[int]BiomeRef, len(p.tiles))
	for idx, b := range p.tiles {
		out[idx] = b.Ref()
	}
	return out
}

// Stats recomputes the derived snapshot for the current assignments.
func (p *Planet) Stats(tuning StatsTuning) PlanetStats {
	return ComputeStats(p.tiles, p.totalTiles, tuning)
}
