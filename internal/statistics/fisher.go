package statistics

import "math"

// FisherExact computes the two-sided p-value of Fisher's exact test on the
// 2×2 table
//
//	[ a  b ]
//	[ c  d ]
//
// by summing the hypergeometric probability of every table with the same
// margins that is at most as likely as the observed one. Exact for any cell
// counts; distuv has no Fisher support, so the PMF is evaluated through
// log-factorials to stay stable for large margins.
func FisherExact(a, b, c, d int) float64 {
	if a < 0 || b < 0 || c < 0 || d < 0 {
		return 1.0
	}

	row1 := a + b
	col1 := a + c
	n := a + b + c + d
	if n == 0 {
		return 1.0
	}

	observed := hypergeomLogProb(a, row1, col1, n)

	// Enumerate every achievable top-left cell value.
	lo := max(0, col1-(n-row1))
	hi := min(row1, col1)

	// Small slack absorbs float error when comparing equal-probability tables.
	const eps = 1e-7
	p := 0.0
	for x := lo; x <= hi; x++ {
		lp := hypergeomLogProb(x, row1, col1, n)
		if lp <= observed+eps {
			p += math.Exp(lp)
		}
	}

	if p > 1.0 {
		p = 1.0
	}
	return p
}

// hypergeomLogProb is the log PMF of drawing x successes in a sample of
// size row1 from a population of n containing col1 successes.
func hypergeomLogProb(x, row1, col1, n int) float64 {
	return logChoose(col1, x) + logChoose(n-col1, row1-x) - logChoose(n, row1)
}

func logChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return lfact(n) - lfact(k) - lfact(n-k)
}

func lfact(n int) float64 {
	v, _ := math.Lgamma(float64(n) + 1)
	return v
}
