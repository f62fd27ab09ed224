/*
Package game
File: models.go
Description:
    Defines all data structures (Structs) used by the planet simulation.
    This file serves as the "schema" for the application, mapping directly to
    YAML configuration files and JSON wire messages.

    No logic is performed here; this file is strictly for type definitions.
*/

package game

// Biome is one entry of the static biome catalog.
// The eight signed contributions are split into two groups:
// environment axes (diluted over the whole planet) and
// resource axes (summed across assigned tiles).
type Biome struct {
	Name  string `yaml:"name" json:"name"`   // Unique catalog key (e.g. "Forêt")
	Color string `yaml:"color" json:"color"` // Display color (hex string)

	// Environment contributions
	Temperature float64 `yaml:"temperature" json:"temperature"`
	Humidity    float64 `yaml:"humidity" json:"humidite"`
	CO2         float64 `yaml:"co2" json:"CO2"`
	Light       float64 `yaml:"light" json:"lumiere"`

	// Resource contributions
	Water  float64 `yaml:"water" json:"eau"`
	Food   float64 `yaml:"food" json:"nourriture"`
	Energy float64 `yaml:"energy" json:"energie"`
	Oxygen float64 `yaml:"oxygen" json:"oxygene"`
}

// BiomeRef is the slim transport form of a biome: just enough for a
// client to identify and paint a tile. The contribution values never
// travel with tile updates; clients look them up in their own catalog.
type BiomeRef struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Ref returns the transport form of a catalog biome.
func (b Biome) Ref() BiomeRef {
	return BiomeRef{Name: b.Name, Color: b.Color}
}

// EnvironmentLevels holds the current value of each environment axis.
// These are real-valued: baseline plus the mean contribution of every
// assigned tile over the full tile count.
type EnvironmentLevels struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidite"`
	CO2         float64 `json:"CO2"`
	Light       float64 `json:"lumiere"`
}

// ResourceTotals holds the summed (not averaged) resource production of
// all assigned tiles, floored at zero per axis.
type ResourceTotals struct {
	Water  float64 `json:"eau"`
	Food   float64 `json:"nourriture"`
	Energy float64 `json:"energie"`
	Oxygen float64 `json:"oxygene"`
}

// EnvironmentScore rates each environment axis 0-100 plus a global mean.
type EnvironmentScore struct {
	Temperature int `json:"temperature"`
	Humidity    int `json:"humidite"`
	CO2         int `json:"CO2"`
	Light       int `json:"lumiere"`
	Global      int `json:"global"`
}

// ResourceScore rates each resource axis 0-100 plus a global mean.
type ResourceScore struct {
	Water  int `json:"eau"`
	Food   int `json:"nourriture"`
	Energy int `json:"energie"`
	Oxygen int `json:"oxygene"`
	Global int `json:"global"`
}

// PlanetStats is the full derived snapshot sent to clients. It is never
// stored; it is recomputed from the tile assignments on every mutation.
type PlanetStats struct {
	Environment         EnvironmentLevels `json:"environment"`
	Resources           ResourceTotals    `json:"resources"`
	EnvironmentScore    EnvironmentScore  `json:"environmentScore"`
	ResourceScore       ResourceScore     `json:"resourceScore"`
	IsEnvironmentViable bool              `json:"isEnvironmentViable"`
	IsResourceViable    bool              `json:"isResourceViable"`
	IsViable            bool              `json:"isViable"`
}
