package score

import "github.com/graphcausal/cgm/dataset"

// familyCounts tabulates, for variable x with parent set parents
// (assumed sorted ascending), the contingency table needed by every
// discrete decomposable score: per parent-configuration sample count
// N[config], and per (state, config) joint count N[state][config].
// Parent configurations are encoded as mixed-radix indices over the
// parents' cardinalities, matching citest.ChiSquared's encodeZ.
type familyCounts struct {
	cardX       int
	numConfigs  int
	jointCounts [][]float64 // [state][config]
	configCount []float64   // [config]
}

func tabulateFamily(d *dataset.Discrete, x int, parents []int) familyCounts {
	card := d.Cardinality()
	cardX := card[x]
	numConfigs := 1
	for _, p := range parents {
		numConfigs *= card[p]
	}
	joint := make([][]float64, cardX)
	for i := range joint {
		joint[i] = make([]float64, numConfigs)
	}
	configCount := make([]float64, numConfigs)

	for _, row := range d.Values() {
		cfg := 0
		for _, p := range parents {
			cfg = cfg*card[p] + int(row[p])
		}
		xi := int(row[x])
		joint[xi][cfg]++
		configCount[cfg]++
	}
	return familyCounts{cardX: cardX, numConfigs: numConfigs, jointCounts: joint, configCount: configCount}
}
