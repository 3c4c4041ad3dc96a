package citest

import (
	"fmt"

	"github.com/graphcausal/cgm/dataset"
	"gonum.org/v1/gonum/mathext"
)

// ChiSquared is a Chi-Squared conditional-independence test over a
// discrete dataset (spec.md §4.2): joint counts O[i,j,k], expected
// counts E[i,j,k] = O[i,·,k]·O[·,j,k] / O[·,·,k] (NaN ⇒ 0), statistic
// Σ(O−E)²/E, degrees of freedom (|x|−1)(|y|−1)·Π|z_k|, p-value
// 1 − P(dof/2, stat/2) computed as the regularised upper incomplete
// gamma via mathext.GammaIncRegComp.
type ChiSquared struct {
	data  *dataset.Discrete
	alpha float64
}

var _ ConditionalIndependenceTest = (*ChiSquared)(nil)

// NewChiSquared binds a Chi-Squared test to data at significance alpha.
func NewChiSquared(data *dataset.Discrete, alpha float64) (*ChiSquared, error) {
	if alpha < 0 || alpha >= 1 {
		return nil, ErrInvalidSignificance
	}
	return &ChiSquared{data: data, alpha: alpha}, nil
}

// Labels returns the bound dataset's variable labels.
func (c *ChiSquared) Labels() []string { return c.data.Labels() }

// WithSignificanceLevel returns a copy of c bound to a new alpha.
func (c *ChiSquared) WithSignificanceLevel(alpha float64) (ConditionalIndependenceTest, error) {
	if alpha < 0 || alpha >= 1 {
		return nil, ErrInvalidSignificance
	}
	return &ChiSquared{data: c.data, alpha: alpha}, nil
}

// Call reports whether x and y are accepted as independent given Z:
// true iff alpha is positive and the p-value exceeds it, so that
// alpha = 0 accepts no independence.
func (c *ChiSquared) Call(x, y int, z []int) (bool, error) {
	_, _, pvalue, err := c.Eval(x, y, z)
	if err != nil {
		return false, err
	}
	return c.alpha > 0 && pvalue > c.alpha, nil
}

// Eval computes the degrees of freedom, statistic, and p-value for
// x ⫫ y | Z over the bound dataset.
func (c *ChiSquared) Eval(x, y int, z []int) (int, float64, float64, error) {
	n := c.data.NumVariables()
	if x < 0 || x >= n || y < 0 || y >= n {
		return 0, 0, 0, ErrLabelMismatch
	}
	for _, zi := range z {
		if zi < 0 || zi >= n {
			return 0, 0, 0, fmt.Errorf("citest: %w: %d", ErrLabelMismatch, zi)
		}
	}

	card := c.data.Cardinality()
	cardX, cardY := card[x], card[y]
	cardZ := 1
	for _, zi := range z {
		cardZ *= card[zi]
	}

	values := c.data.Values()
	// Joint counts O[xState][yState][zIndex], flattened as
	// O[i*cardY*cardZ + j*cardZ + k].
	joint := make([]float64, cardX*cardY*cardZ)
	marginX := make([]float64, cardX*cardZ)
	marginY := make([]float64, cardY*cardZ)
	marginZ := make([]float64, cardZ)

	for _, row := range values {
		zk := encodeZ(row, z, card)
		xi, yi := int(row[x]), int(row[y])
		joint[xi*cardY*cardZ+yi*cardZ+zk]++
		marginX[xi*cardZ+zk]++
		marginY[yi*cardZ+zk]++
		marginZ[zk]++
	}

	var stat float64
	for i := 0; i < cardX; i++ {
		for j := 0; j < cardY; j++ {
			for k := 0; k < cardZ; k++ {
				o := joint[i*cardY*cardZ+j*cardZ+k]
				denom := marginZ[k]
				var e float64
				if denom != 0 {
					e = marginX[i*cardZ+k] * marginY[j*cardZ+k] / denom
				}
				if e == 0 || isNaN(e) {
					continue // NaN-to-zero: contributes nothing to the sum
				}
				d := o - e
				stat += d * d / e
			}
		}
	}

	dof := (cardX - 1) * (cardY - 1) * cardZ
	if dof <= 0 {
		return dof, stat, 1, nil
	}

	pvalue := mathext.GammaIncRegComp(float64(dof)/2, stat/2)
	if isNaN(pvalue) {
		pvalue = 0
	}
	return dof, stat, pvalue, nil
}

func encodeZ(row []uint8, z []int, card []int) int {
	k := 0
	for _, zi := range z {
		k = k*card[zi] + int(row[zi])
	}
	return k
}

func isNaN(f float64) bool { return f != f }
