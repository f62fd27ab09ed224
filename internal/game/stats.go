/*
Package game
File: stats.go
Description:
    The stats aggregator: turns a sparse tile->biome mapping into the
    derived environment/resource snapshot clients display.

    ComputeStats is deliberately a pure function. It is called
    redundantly after every mutation and directly from tests, so it must
    be deterministic and side-effect free.
*/

package game

import "math"

// Range is an inclusive ideal interval for one environment axis.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// StatsTuning holds the constants the aggregation formulas depend on:
// the tileless baseline of each environment axis, the ideal ranges the
// environment score is measured against, and the minimum production
// each resource axis must reach for a full score.
type StatsTuning struct {
	Baseline struct {
		Temperature float64 `yaml:"temperature" json:"temperature"`
		Humidity    float64 `yaml:"humidity" json:"humidite"`
		CO2         float64 `yaml:"co2" json:"CO2"`
		Light       float64 `yaml:"light" json:"lumiere"`
	} `yaml:"baseline" json:"baseline"`

	IdealRanges struct {
		Temperature Range `yaml:"temperature" json:"temperature"`
		Humidity    Range `yaml:"humidity" json:"humidite"`
		CO2         Range `yaml:"co2" json:"CO2"`
		Light       Range `yaml:"light" json:"lumiere"`
	} `yaml:"ideal_ranges" json:"ideal_ranges"`

	ResourceMinimums struct {
		Water  float64 `yaml:"water" json:"eau"`
		Food   float64 `yaml:"food" json:"nourriture"`
		Energy float64 `yaml:"energy" json:"energie"`
		Oxygen float64 `yaml:"oxygen" json:"oxygene"`
	} `yaml:"resource_minimums" json:"resource_minimums"`
}

// DefaultStatsTuning returns the original tuning constants.
func DefaultStatsTuning() StatsTuning {
	var t StatsTuning

	t.Baseline.Temperature = 20
	t.Baseline.Humidity = 20
	t.Baseline.CO2 = 2
	t.Baseline.Light = 50

	t.IdealRanges.Temperature = Range{Min: 15, Max: 25}
	t.IdealRanges.Humidity = Range{Min: 40, Max: 70}
	t.IdealRanges.CO2 = Range{Min: 20, Max: 45}
	t.IdealRanges.Light = Range{Min: 40, Max: 70}

	t.ResourceMinimums.Water = 30
	t.ResourceMinimums.Food = 30
	t.ResourceMinimums.Energy = 20
	t.ResourceMinimums.Oxygen = 40

	return t
}

// ComputeStats derives the full snapshot for a tile mapping.
//
// Environment levels: baseline + (sum of contributions / totalTiles).
// The divisor is the TOTAL tile count, not the assigned count, so
// unassigned tiles dilute the levels toward the baseline.
//
// Resource totals: plain sum over assigned tiles, floored at zero.
//
// Scores: an environment axis earns 100 inside its ideal range and
// loses 5 points per unit of distance outside it (floored at 0). A
// resource axis earns 100 at or above its minimum, proportionally
// below it. Globals are the rounded mean of the four axis scores.
func ComputeStats(tiles map[int]Biome, totalTiles int, tuning StatsTuning) PlanetStats {
	var envSum EnvironmentLevels
	var resSum ResourceTotals

	for _, b := range tiles {
		envSum.Temperature += b.Temperature
		envSum.Humidity += b.Humidity
		envSum.CO2 += b.CO2
		envSum.Light += b.Light

		resSum.Water += b.Water
		resSum.Food += b.Food
		resSum.Energy += b.Energy
		resSum.Oxygen += b.Oxygen
	}

	// Guard against a zero tile count so an unconfigured planet cannot
	// divide by zero.
	divisor := float64(totalTiles)
	if divisor <= 0 {
		divisor = 1
	}

	env := EnvironmentLevels{
		Temperature: tuning.Baseline.Temperature + envSum.Temperature/divisor,
		Humidity:    tuning.Baseline.Humidity + envSum.Humidity/divisor,
		CO2:         tuning.Baseline.CO2 + envSum.CO2/divisor,
		Light:       tuning.Baseline.Light + envSum.Light/divisor,
	}

	res := ResourceTotals{
		Water:  math.Max(0, resSum.Water),
		Food:   math.Max(0, resSum.Food),
		Energy: math.Max(0, resSum.Energy),
		Oxygen: math.Max(0, resSum.Oxygen),
	}

	// Axis scores are kept as floats until the global mean is taken, so
	// the global is not distorted by per-axis rounding.
	tempScore := rangeScore(env.Temperature, tuning.IdealRanges.Temperature)
	humidityScore := rangeScore(env.Humidity, tuning.IdealRanges.Humidity)
	co2Score := rangeScore(env.CO2, tuning.IdealRanges.CO2)
	lightScore := rangeScore(env.Light, tuning.IdealRanges.Light)

	envScore := EnvironmentScore{
		Temperature: round(tempScore),
		Humidity:    round(humidityScore),
		CO2:         round(co2Score),
		Light:       round(lightScore),
		Global:      round((tempScore + humidityScore + co2Score + lightScore) / 4),
	}

	waterScore := minimumScore(res.Water, tuning.ResourceMinimums.Water)
	foodScore := minimumScore(res.Food, tuning.ResourceMinimums.Food)
	energyScore := minimumScore(res.Energy, tuning.ResourceMinimums.Energy)
	oxygenScore := minimumScore(res.Oxygen, tuning.ResourceMinimums.Oxygen)

	resScore := ResourceScore{
		Water:  waterScore,
		Food:   foodScore,
		Energy: energyScore,
		Oxygen: oxygenScore,
		Global: round(float64(waterScore+foodScore+energyScore+oxygenScore) / 4),
	}

	envViable := envScore.Global >= 75
	resViable := resScore.Global >= 100

	return PlanetStats{
		Environment:         env,
		Resources:           res,
		EnvironmentScore:    envScore,
		ResourceScore:       resScore,
		IsEnvironmentViable: envViable,
		IsResourceViable:    resViable,
		IsViable:            envViable && resViable,
	}
}

// rangeScore rates a level against its ideal range: 100 inside,
// decaying by 5 points per unit of distance outside, floored at 0.
func rangeScore(value float64, r Range) float64 {
	if value >= r.Min && value <= r.Max {
		return 100
	}
	distance := r.Min - value
	if value > r.Max {
		distance = value - r.Max
	}
	return math.Max(0, 100-distance*5)
}

// minimumScore rates a resource total against its minimum: 100 at or
// above it, proportional below it (e.g. 15/30 = 50).
func minimumScore(value, minimum float64) int {
	if minimum <= 0 || value >= minimum {
		return 100
	}
	return round(value / minimum * 100)
}

func round(v float64) int {
	return int(math.Round(v))
}
