package main

import (
	"fmt"
	"os"

	"github.com/graphcausal/cgm/dataset"
	"github.com/graphcausal/cgm/graph"
	dotio "github.com/graphcausal/cgm/io/dot"
	"github.com/graphcausal/cgm/score"
)

const defaultBDeuESS = 1.0

// newDecomposableScore binds name ("bic", "bdeu" or "aic") to data.
func newDecomposableScore(name string, data *dataset.Discrete) (score.DecomposableScoringCriterion, error) {
	switch name {
	case "bic":
		return score.NewBIC(data)
	case "bdeu":
		return score.NewBDeu(data, defaultBDeuESS)
	case "aic":
		return score.NewAIC(data)
	default:
		return nil, fmt.Errorf("cgmctl: unknown score %q (want bic, bdeu or aic)", name)
	}
}

func loadDiscrete(path string) (*dataset.Discrete, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cgmctl: opening %s: %w", path, err)
	}
	defer f.Close()

	header, rows, err := dataset.ReadCSV(f)
	if err != nil {
		return nil, err
	}
	return dataset.FromRows(header, rows)
}

func printEdges(g *graph.Graph) {
	n := g.Order()
	for i := 0; i < n; i++ {
		for _, j := range g.Children(i) {
			fmt.Printf("%s -> %s\n", g.LabelAt(i), g.LabelAt(j))
		}
		for _, j := range g.Neighbours(i) {
			if i < j {
				fmt.Printf("%s -- %s\n", g.LabelAt(i), g.LabelAt(j))
			}
		}
	}
}

func writeDOTFile(path string, g *graph.Graph) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cgmctl: creating %s: %w", path, err)
	}
	defer f.Close()
	return dotio.Write(f, g, "discovered")
}
