// Copyright 2026 go-vek Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stats

import (
	"math"

	"github.com/fpkit/go-vek/vek"
	"github.com/fpkit/go-vek/vek/contrib/algo"
	"github.com/fpkit/go-vek/vek/contrib/reduce"
)

// LinearRegression holds the ordinary least squares fit y = Slope*x +
// Intercept along with its coefficient of determination and the standard
// error of the residuals.
type LinearRegression[T vek.Floats] struct {
	Slope     T
	Intercept T
	R2        T
	StdErr    T
}

// Covariance returns the population covariance of the paired samples x and y,
// computed from one dot product and two sums. Mismatched lengths truncate to
// the shorter slice; empty input yields NaN.
func Covariance[T vek.Floats](x, y []T) T {
	n := min(len(x), len(y))
	if n == 0 {
		return T(math.NaN())
	}
	x, y = x[:n], y[:n]
	fn := T(n)
	return reduce.Dot(x, y)/fn - (reduce.Sum(x)/fn)*(reduce.Sum(y)/fn)
}

// Correlation returns the Pearson correlation coefficient of x and y.
// Mismatched lengths truncate to the shorter slice. The result is NaN when
// either sample is empty, has fewer than two elements, or has zero variance.
func Correlation[T vek.Floats](x, y []T) T {
	n := min(len(x), len(y))
	if n < 2 {
		return T(math.NaN())
	}
	x, y = x[:n], y[:n]
	_, vx := reduce.MeanVariance(x)
	_, vy := reduce.MeanVariance(y)
	if vx == 0 || vy == 0 {
		return T(math.NaN())
	}
	return Covariance(x, y) / T(math.Sqrt(float64(vx)*float64(vy)))
}

// LinearRegress fits an ordinary least squares line to the pairs (x[i],
// y[i]). Mismatched lengths truncate to the shorter slice.
//
// Fewer than two pairs, or an x sample with zero variance, yield NaN in all
// fields. Exactly two distinct pairs produce a perfect fit with R2 = 1 and
// StdErr = 0.
func LinearRegress[T vek.Floats](x, y []T) LinearRegression[T] {
	nan := T(math.NaN())
	fit := LinearRegression[T]{Slope: nan, Intercept: nan, R2: nan, StdErr: nan}
	n := min(len(x), len(y))
	if n < 2 {
		return fit
	}
	x, y = x[:n], y[:n]

	mx, vx := reduce.MeanVariance(x)
	if vx == 0 {
		return fit
	}
	my := reduce.Sum(y) / T(n)
	fit.Slope = Covariance(x, y) / vx
	fit.Intercept = my - fit.Slope*mx

	// Residual and total sums of squares for the goodness-of-fit fields.
	tmp := make([]T, n)
	algo.Scale(tmp, x, fit.Slope)
	algo.Offset(tmp, tmp, fit.Intercept)
	algo.ZipSub(tmp, y, tmp)
	ssRes := float64(reduce.SumSquares(tmp))
	algo.Offset(tmp, y, -my)
	ssTot := float64(reduce.SumSquares(tmp))
	switch {
	case n == 2:
		// Two points determine the line exactly; rounding in ssRes must
		// not leak into the fit quality.
		fit.R2 = 1
		fit.StdErr = 0
	case ssTot == 0:
		fit.R2 = nan
		fit.StdErr = T(math.Sqrt(ssRes / float64(n-2)))
	default:
		fit.R2 = T(1 - ssRes/ssTot)
		fit.StdErr = T(math.Sqrt(ssRes / float64(n-2)))
	}
	return fit
}
