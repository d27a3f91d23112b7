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

// Package reduce provides SIMD-accelerated reductions and fused folds over
// flat numeric slices.
//
// Reductions (Sum, Min, Max, Product) collapse a slice to one scalar. Fused
// folds (SumSquares, Dot, SAD, Moments) accumulate several related quantities
// in a single pass over memory, trading more live registers per iteration for
// fewer traversals.
//
// All functions are pure: inputs are never written, and results match the
// naive sequential definition exactly for integers and within floating-point
// reassociation tolerance for floats.
package reduce
