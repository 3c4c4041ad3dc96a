package score

import (
	"math"

	"github.com/graphcausal/cgm/dataset"
)

// defaultESS is BDeu's default equivalent sample size when the
// constructor is not given one.
const defaultESS = 1.0

// BDeu is the Bayesian Dirichlet equivalent uniform decomposable
// score: s(x|parents) = Σ_j [lgamma(α/q) − lgamma(α/q + N_j)]
// + Σ_j Σ_i [lgamma(α/(q·r) + N_ij) − lgamma(α/(q·r))], where α is the
// equivalent sample size, q the parent-configuration count, and r the
// cardinality of x.
type BDeu struct {
	data *dataset.Discrete
	ess  float64
	opts DiscreteOptions
}

var _ DecomposableScoringCriterion = (*BDeu)(nil)

// NewBDeu binds a BDeu score to data with the given equivalent sample
// size (defaultESS if ess <= 0).
func NewBDeu(data *dataset.Discrete, ess float64, opts ...Option) (*BDeu, error) {
	if data.NumSamples() == 0 {
		return nil, ErrEmptyDataset
	}
	if ess <= 0 {
		ess = defaultESS
	}
	return &BDeu{data: data, ess: ess, opts: applyOptions(opts)}, nil
}

// Labels returns the bound dataset's variable labels.
func (s *BDeu) Labels() []string { return s.data.Labels() }

// MaxInDegreeHint returns the configured advisory hint, if any.
func (s *BDeu) MaxInDegreeHint() (int, bool) { return s.opts.hint() }

// Call returns the local BDeu family score of x given parents.
func (s *BDeu) Call(x int, parents []int) (float64, error) {
	n := s.data.NumVariables()
	if x < 0 || x >= n {
		return 0, ErrVariableOutOfRange
	}
	for _, p := range parents {
		if p < 0 || p >= n {
			return 0, ErrVariableOutOfRange
		}
	}
	fc := tabulateFamily(s.data, x, parents)
	q := float64(fc.numConfigs)
	r := float64(fc.cardX)
	alphaConfig := s.ess / q
	alphaCell := s.ess / (q * r)

	var total float64
	for j := 0; j < fc.numConfigs; j++ {
		total += lgamma(alphaConfig) - lgamma(alphaConfig+fc.configCount[j])
		for i := 0; i < fc.cardX; i++ {
			total += lgamma(alphaCell+fc.jointCounts[i][j]) - lgamma(alphaCell)
		}
	}
	return total, nil
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
