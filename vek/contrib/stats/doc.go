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

// Package stats assembles descriptive statistics, quantiles, regression,
// outlier detection, and windowed reductions from the kernels in
// vek/contrib/reduce, vek/contrib/algo, and vek/contrib/sort.
//
// The package contains no summation loops of its own: every arithmetic
// traversal goes through a lower kernel, so the lane bookkeeping lives in
// exactly one place. Only index-emitting passes (outlier marking) walk the
// data directly.
//
// Degenerate inputs degrade silently per function documentation: too few
// samples yield NaN fields or zero output counts, never errors or panics.
// Functions that need sorted data (Percentile, Quartiles, OutliersIQR) sort
// an internal copy; the caller's slice is never reordered.
package stats
