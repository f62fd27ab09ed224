package game

import (
	"math"
	"testing"
)

func defaultCatalogBiome(t *testing.T, name string) Biome {
	t.Helper()
	for _, b := range DefaultBiomes() {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("biome %q missing from default table", name)
	return Biome{}
}

func TestComputeStatsEmptyPlanet(t *testing.T) {
	tuning := DefaultStatsTuning()
	stats := ComputeStats(nil, 42, tuning)

	if stats.Environment.Temperature != tuning.Baseline.Temperature {
		t.Fatalf("temperature = %v, want baseline %v", stats.Environment.Temperature, tuning.Baseline.Temperature)
	}
	if stats.Environment.Humidity != tuning.Baseline.Humidity {
		t.Fatalf("humidity = %v, want baseline %v", stats.Environment.Humidity, tuning.Baseline.Humidity)
	}
	if stats.Environment.CO2 != tuning.Baseline.CO2 {
		t.Fatalf("co2 = %v, want baseline %v", stats.Environment.CO2, tuning.Baseline.CO2)
	}
	if stats.Environment.Light != tuning.Baseline.Light {
		t.Fatalf("light = %v, want baseline %v", stats.Environment.Light, tuning.Baseline.Light)
	}

	if stats.Resources != (ResourceTotals{}) {
		t.Fatalf("resources = %+v, want all zero", stats.Resources)
	}

	// Baseline defaults: temperature (20) and light (50) are ideal,
	// humidity (20 vs 40-70) scores 0, CO2 (2 vs 20-45) scores 10.
	wantEnv := EnvironmentScore{Temperature: 100, Humidity: 0, CO2: 10, Light: 100, Global: 53}
	if stats.EnvironmentScore != wantEnv {
		t.Fatalf("environment score = %+v, want %+v", stats.EnvironmentScore, wantEnv)
	}

	wantRes := ResourceScore{Water: 0, Food: 0, Energy: 0, Oxygen: 0, Global: 0}
	if stats.ResourceScore != wantRes {
		t.Fatalf("resource score = %+v, want %+v", stats.ResourceScore, wantRes)
	}

	if stats.IsEnvironmentViable || stats.IsResourceViable || stats.IsViable {
		t.Fatalf("empty planet reported viable: %+v", stats)
	}
}

func TestComputeStatsSingleForest(t *testing.T) {
	tuning := DefaultStatsTuning()
	foret := defaultCatalogBiome(t, "Forêt")

	stats := ComputeStats(map[int]Biome{0: foret}, 42, tuning)

	// Environment levels dilute over ALL 42 tiles, not just the one
	// assigned tile.
	if want := tuning.Baseline.Temperature + (-5.0 / 42); stats.Environment.Temperature != want {
		t.Fatalf("temperature = %v, want %v", stats.Environment.Temperature, want)
	}
	if want := tuning.Baseline.Humidity + (10.0 / 42); stats.Environment.Humidity != want {
		t.Fatalf("humidity = %v, want %v", stats.Environment.Humidity, want)
	}

	// Resources are summed, not averaged.
	wantRes := ResourceTotals{Water: 5, Food: 10, Energy: 0, Oxygen: 10}
	if stats.Resources != wantRes {
		t.Fatalf("resources = %+v, want %+v", stats.Resources, wantRes)
	}

	// 5/30 of the water minimum rounds to 17.
	if stats.ResourceScore.Water != 17 {
		t.Fatalf("water score = %d, want 17", stats.ResourceScore.Water)
	}
	if stats.ResourceScore.Food != int(math.Round(10.0/30*100)) {
		t.Fatalf("food score = %d, want %d", stats.ResourceScore.Food, int(math.Round(10.0/30*100)))
	}
}

func TestRangeScoreDecay(t *testing.T) {
	r := Range{Min: 15, Max: 25}

	cases := []struct {
		value float64
		want  float64
	}{
		{15, 100},  // lower edge is inside
		{25, 100},  // upper edge is inside
		{26, 95},   // one unit past the edge
		{35, 50},   // ten units past
		{45, 0},    // exactly at the floor
		{100, 0},   // far past, still floored
		{14.5, 97.5},
	}
	for _, tc := range cases {
		if got := rangeScore(tc.value, r); got != tc.want {
			t.Fatalf("rangeScore(%v) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestMinimumScore(t *testing.T) {
	cases := []struct {
		value, minimum float64
		want           int
	}{
		{30, 30, 100},
		{45, 30, 100},
		{15, 30, 50},
		{0, 30, 0},
		{5, 0, 100}, // a zero minimum is always satisfied
	}
	for _, tc := range cases {
		if got := minimumScore(tc.value, tc.minimum); got != tc.want {
			t.Fatalf("minimumScore(%v, %v) = %d, want %d", tc.value, tc.minimum, got, tc.want)
		}
	}
}

func TestComputeStatsResourceFloor(t *testing.T) {
	desert := defaultCatalogBiome(t, "Désert")

	// Three deserts produce -15 water; the total must floor at zero.
	tiles := map[int]Biome{0: desert, 1: desert, 2: desert}
	stats := ComputeStats(tiles, 42, DefaultStatsTuning())

	if stats.Resources.Water != 0 {
		t.Fatalf("water = %v, want floored 0", stats.Resources.Water)
	}
	if stats.Resources.Food != 0 {
		t.Fatalf("food = %v, want floored 0", stats.Resources.Food)
	}
	if stats.Resources.Energy != 30 {
		t.Fatalf("energy = %v, want 30", stats.Resources.Energy)
	}
}

func TestComputeStatsViablePlanet(t *testing.T) {
	// A tuning where the bare baseline is already ideal and no resource
	// minimum exists: the empty planet must report fully viable.
	var tuning StatsTuning
	tuning.Baseline.Temperature = 20
	tuning.Baseline.Humidity = 50
	tuning.Baseline.CO2 = 30
	tuning.Baseline.Light = 50
	tuning.IdealRanges.Temperature = Range{Min: 15, Max: 25}
	tuning.IdealRanges.Humidity = Range{Min: 40, Max: 70}
	tuning.IdealRanges.CO2 = Range{Min: 20, Max: 45}
	tuning.IdealRanges.Light = Range{Min: 40, Max: 70}

	stats := ComputeStats(nil, 42, tuning)

	if !stats.IsEnvironmentViable {
		t.Fatalf("environment not viable: %+v", stats.EnvironmentScore)
	}
	if !stats.IsResourceViable {
		t.Fatalf("resources not viable: %+v", stats.ResourceScore)
	}
	if !stats.IsViable {
		t.Fatal("planet not viable")
	}
}

func TestComputeStatsDeterministic(t *testing.T) {
	foret := defaultCatalogBiome(t, "Forêt")
	ocean := defaultCatalogBiome(t, "Océan")
	tiles := map[int]Biome{0: foret, 7: ocean, 41: foret}
	tuning := DefaultStatsTuning()

	first := ComputeStats(tiles, 42, tuning)
	for i := 0; i < 10; i++ {
		if got := ComputeStats(tiles, 42, tuning); got != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestComputeStatsZeroTotalTiles(t *testing.T) {
	foret := defaultCatalogBiome(t, "Forêt")

	// Degenerate configuration must not divide by zero.
	stats := ComputeStats(map[int]Biome{0: foret}, 0, DefaultStatsTuning())
	if math.IsNaN(stats.Environment.Temperature) || math.IsInf(stats.Environment.Temperature, 0) {
		t.Fatalf("temperature = %v", stats.Environment.Temperature)
	}
}
