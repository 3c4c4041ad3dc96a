package score

import (
	"math"

	"github.com/graphcausal/cgm/dataset"
)

// BIC is the Bayesian Information Criterion decomposable score over
// discrete data: s(x|parents) = loglik − (numParams · log N) / 2,
// where numParams = (|x|−1) · Π|parents|.
type BIC struct {
	data *dataset.Discrete
	opts DiscreteOptions
}

var _ DecomposableScoringCriterion = (*BIC)(nil)

// NewBIC binds a BIC score to data.
func NewBIC(data *dataset.Discrete, opts ...Option) (*BIC, error) {
	if data.NumSamples() == 0 {
		return nil, ErrEmptyDataset
	}
	return &BIC{data: data, opts: applyOptions(opts)}, nil
}

// Labels returns the bound dataset's variable labels.
func (s *BIC) Labels() []string { return s.data.Labels() }

// MaxInDegreeHint returns the configured advisory hint, if any.
func (s *BIC) MaxInDegreeHint() (int, bool) { return s.opts.hint() }

// Call returns the local BIC family score of x given parents.
func (s *BIC) Call(x int, parents []int) (float64, error) {
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
	loglik := familyLogLikelihood(fc)
	numParams := float64(fc.cardX-1) * float64(fc.numConfigs)
	nSamples := float64(s.data.NumSamples())
	return loglik - numParams*math.Log(nSamples)/2, nil
}

// familyLogLikelihood computes Σ N[i][j]·log(N[i][j]/configCount[j]),
// skipping cells with no support (NaN-to-zero policy, spec.md §7).
func familyLogLikelihood(fc familyCounts) float64 {
	var loglik float64
	for j := 0; j < fc.numConfigs; j++ {
		total := fc.configCount[j]
		if total == 0 {
			continue
		}
		for i := 0; i < fc.cardX; i++ {
			n := fc.jointCounts[i][j]
			if n == 0 {
				continue
			}
			loglik += n * math.Log(n/total)
		}
	}
	return loglik
}
