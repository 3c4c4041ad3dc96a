// Package citest implements the conditional-independence-test
// capability interface consumed by the PC-Stable engine, with a
// Chi-Squared test over discrete data grounded on
// original_source/.../stats/chi_squared.rs (exact degrees-of-freedom
// and NaN-to-zero conventions) and gonum.org/v1/gonum/mathext for the
// regularised incomplete gamma function.
package citest

import (
	"errors"
	"fmt"

	"github.com/graphcausal/cgm/dataset"
)

// Sentinel errors.
var (
	// ErrInvalidSignificance is returned when alpha is outside [0, 1).
	ErrInvalidSignificance = errors.New("citest: significance level must satisfy 0 <= alpha < 1")

	// ErrLabelMismatch is returned when a variable index is out of range.
	ErrLabelMismatch = errors.New("citest: variable index out of range")
)

// ConditionalIndependenceTest is the capability interface the
// PC-Stable engine consumes (spec.md §4.2).
type ConditionalIndependenceTest interface {
	// Labels returns the bound dataset's variable labels.
	Labels() []string

	// WithSignificanceLevel returns a copy of the test bound to a new
	// significance level alpha (0 <= alpha < 1).
	WithSignificanceLevel(alpha float64) (ConditionalIndependenceTest, error)

	// Call reports whether x and y are accepted as conditionally
	// independent given Z at the test's significance level.
	Call(x, y int, z []int) (bool, error)

	// Eval returns the degrees of freedom, test statistic, and
	// p-value for x ⫫ y | Z.
	Eval(x, y int, z []int) (dof int, statistic float64, pvalue float64, err error)
}
