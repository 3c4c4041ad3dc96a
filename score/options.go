package score

// DiscreteOptions configures the discrete decomposable scores (BIC,
// BDeu, AIC) via functional options, following the ecosystem's
// Option func(*Options) / WithX(...) Option / DefaultOptions()
// pattern (github.com/katalvlaran/lvlath/prim_kruskal.MSTOptions).
type DiscreteOptions struct {
	// MaxInDegree is the advisory MaxInDegreeHint; -1 means "no hint".
	MaxInDegree int
}

// Option configures a DiscreteOptions.
type Option func(*DiscreteOptions)

// WithMaxInDegreeHint sets the advisory maximum in-degree hint.
func WithMaxInDegreeHint(d int) Option {
	return func(o *DiscreteOptions) { o.MaxInDegree = d }
}

// DefaultDiscreteOptions returns DiscreteOptions with no hint set.
func DefaultDiscreteOptions() DiscreteOptions {
	return DiscreteOptions{MaxInDegree: -1}
}

func applyOptions(opts []Option) DiscreteOptions {
	o := DefaultDiscreteOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o DiscreteOptions) hint() (int, bool) {
	if o.MaxInDegree < 0 {
		return 0, false
	}
	return o.MaxInDegree, true
}
