package score

import "github.com/graphcausal/cgm/dataset"

// AIC is the Akaike Information Criterion decomposable score:
// s(x|parents) = loglik − numParams, the same family log-likelihood
// as BIC with a flat per-parameter penalty instead of log(N)/2.
type AIC struct {
	data *dataset.Discrete
	opts DiscreteOptions
}

var _ DecomposableScoringCriterion = (*AIC)(nil)

// NewAIC binds an AIC score to data.
func NewAIC(data *dataset.Discrete, opts ...Option) (*AIC, error) {
	if data.NumSamples() == 0 {
		return nil, ErrEmptyDataset
	}
	return &AIC{data: data, opts: applyOptions(opts)}, nil
}

// Labels returns the bound dataset's variable labels.
func (s *AIC) Labels() []string { return s.data.Labels() }

// MaxInDegreeHint returns the configured advisory hint, if any.
func (s *AIC) MaxInDegreeHint() (int, bool) { return s.opts.hint() }

// Call returns the local AIC family score of x given parents.
func (s *AIC) Call(x int, parents []int) (float64, error) {
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
	return loglik - numParams, nil
}
