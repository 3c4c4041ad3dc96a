package score

import (
	"sort"
	"strings"

	"github.com/graphcausal/cgm/graph"
)

// HashGraph returns a deterministic string key for g: its sorted
// label set followed by its sorted edge list, each edge tagged with
// its kind so an undirected a-b and a directed a->b hash differently.
// Used as the key shape for GraphCache (spec.md §4.3 "hashed by label
// set + adjacency matrix").
func HashGraph(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString(strings.Join(g.Labels(), ","))
	b.WriteByte('|')

	edges := g.EdgeList()
	tagged := make([]string, len(edges))
	for i, e := range edges {
		sep := ">"
		from, _ := g.IndexOf(e.From)
		to, _ := g.IndexOf(e.To)
		for _, nb := range g.Neighbours(from) {
			if nb == to {
				sep = "-"
			}
		}
		tagged[i] = e.From + sep + e.To
	}
	sort.Strings(tagged)
	b.WriteString(strings.Join(tagged, ","))
	return b.String()
}
