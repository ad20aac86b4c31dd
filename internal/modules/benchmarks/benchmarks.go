// Package benchmarks serves the regional EUI benchmark table used for
// scoring. Static data derived from RECS 2020 consumption tables, loaded
// once and never mutated.
package benchmarks

import "strings"

// targetEUI is the benchmark Energy Use Intensity (kBTU/sqft/year) by
// census region.
var targetEUI = map[string]float64{
	"National":  35.0,
	"Northeast": 42.0,
	"Midwest":   38.0,
	"South":     30.0,
	"West":      25.0,
}

// NetZeroEUI is the aspirational net-zero-ready target.
const NetZeroEUI = 15.0

// TargetEUI returns the benchmark EUI for a census division string. The
// region is taken from the leading word of the division; anything
// unrecognized gets the national benchmark.
func TargetEUI(division string) float64 {
	region := "National"
	if fields := strings.Fields(division); len(fields) > 0 {
		if _, ok := targetEUI[fields[0]]; ok {
			region = fields[0]
		}
	}
	return targetEUI[region]
}

// All returns a copy of the full benchmark table.
func All() map[string]float64 {
	out := make(map[string]float64, len(targetEUI))
	for k, v := range targetEUI {
		out[k] = v
	}
	return out
}
