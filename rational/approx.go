// SPDX-License-Identifier: MIT

package rational

import "math"

// DefaultMaxDenominator bounds the denominator chosen by DefaultApproximator.
const DefaultMaxDenominator int64 = 1_000_000

// maxFloatMagnitude is the largest |x| accepted by ContinuedFraction (2^62).
// Keeping one bit of headroom lets convergent updates stay inside int64.
const maxFloatMagnitude = float64(1 << 62)

// maxTerms caps the continued-fraction expansion of a float64.
const maxTerms = 64

// Approximator turns a float64 into a numerator/denominator pair.
// Implementations must reproduce exact integers faithfully and return
// ErrNotFinite for NaN or ±Inf.
type Approximator func(x float64) (num, den int64, err error)

// DefaultApproximator is ContinuedFraction(DefaultMaxDenominator).
var DefaultApproximator = ContinuedFraction(DefaultMaxDenominator)

// ContinuedFraction returns an Approximator yielding the best rational
// approximation of x whose denominator does not exceed maxDen.
//
// Implementation:
//   - Stage 1: reject NaN/Inf and magnitudes ≥ 2^62; integers short-circuit.
//   - Stage 2: expand |x| into continued-fraction terms, tracking convergents
//     h/k until the expansion is exact or the next k would exceed maxDen.
//   - Stage 3: when bounded by maxDen, compare the last convergent against the
//     largest admissible semiconvergent and keep the closer one.
//
// Complexity:
//   - Time O(maxTerms), Space O(1).
//
// Panics when maxDen <= 0 (programmer error).
func ContinuedFraction(maxDen int64) Approximator {
	if maxDen <= 0 {
		panic(ErrBadMaxDenominator)
	}

	return func(x float64) (int64, int64, error) {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, 0, ErrNotFinite
		}
		ax := math.Abs(x)
		if ax >= maxFloatMagnitude {
			return 0, 0, ErrOutOfRange
		}
		sign := int64(1)
		if x < 0 {
			sign = -1
		}
		if ax == math.Trunc(ax) {
			return sign * int64(ax), 1, nil
		}

		// h_{-2}/k_{-2} = 0/1, h_{-1}/k_{-1} = 1/0
		var (
			h0, k0 int64 = 0, 1
			h1, k1 int64 = 1, 0
		)
		r := ax
		for i := 0; i < maxTerms; i++ {
			a := math.Floor(r)
			if a >= maxFloatMagnitude {
				break
			}
			ai := int64(a)
			k2 := k0 + ai*k1
			if k2 > maxDen {
				// semiconvergent (h0 + t*h1)/(k0 + t*k1) with the largest t that fits
				t := (maxDen - k0) / k1
				hs, ks := h0+t*h1, k0+t*k1
				if t > 0 && math.Abs(float64(hs)/float64(ks)-ax) < math.Abs(float64(h1)/float64(k1)-ax) {
					h1, k1 = hs, ks
				}
				break
			}
			h0, k0, h1, k1 = h1, k1, h0+ai*h1, k2

			frac := r - a
			if frac == 0 || float64(h1)/float64(k1) == ax {
				break
			}
			r = 1 / frac
		}

		return sign * h1, k1, nil
	}
}
