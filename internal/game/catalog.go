/*
Package game
File: catalog.go
Description:
    The static biome catalog. Built once at process start (from the
    built-in table or a YAML override) and never mutated afterwards,
    so it can be shared across every room without synchronization.
*/

package game

import (
	"github.com/agnivade/levenshtein"
)

// DefaultBiomes returns the built-in biome table.
// Value legend: ++ = +10 | + = +5 | 0 = 0 | - = -5 | -- = -10
func DefaultBiomes() []Biome {
	return []Biome{
		{Name: "Forêt", Color: "#2d5016", Temperature: -5, Humidity: 10, CO2: -10, Light: -5, Water: 5, Food: 10, Energy: 0, Oxygen: 10},
		{Name: "Océan", Color: "#1e3a8a", Temperature: 0, Humidity: 15, CO2: -5, Light: -5, Water: 15, Food: 5, Energy: 5, Oxygen: 5},
		{Name: "Prairie", Color: "#84cc16", Temperature: 0, Humidity: 5, CO2: -5, Light: 5, Water: 5, Food: 10, Energy: 0, Oxygen: 5},
		{Name: "Désert", Color: "#d4a574", Temperature: 15, Humidity: -15, CO2: 0, Light: 10, Water: -5, Food: -5, Energy: 10, Oxygen: -5},
	}
}

// Catalog indexes biomes by name and preserves their declaration order.
type Catalog struct {
	order  []string
	byName map[string]Biome
}

// NewCatalog builds a catalog from a biome list. A duplicate name keeps
// the last definition, matching YAML override semantics.
func NewCatalog(biomes []Biome) *Catalog {
	c := &Catalog{byName: make(map[string]Biome, len(biomes))}
	for _, b := range biomes {
		if _, seen := c.byName[b.Name]; !seen {
			c.order = append(c.order, b.Name)
		}
		c.byName[b.Name] = b
	}
	return c
}

// Get looks a biome up by its unique name.
func (c *Catalog) Get(name string) (Biome, bool) {
	b, ok := c.byName[name]
	return b, ok
}

// List returns all biomes in declaration order.
func (c *Catalog) List() []Biome {
	out := make([]Biome, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Closest returns the catalog name nearest to the given one by edit
// distance. Used only to make rejection log lines useful; a rejected
// request is still dropped regardless of how close the name was.
func (c *Catalog) Closest(name string) (string, bool) {
	best := ""
	bestDist := -1
	for _, candidate := range c.order {
		dist := levenshtein.ComputeDistance(name, candidate)
		if bestDist == -1 || dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best, best != ""
}
