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

package algo

import "github.com/fpkit/go-vek/vek"

// Predicate tests individual values or whole vectors. The compaction and
// predicate kernels accept any implementation; the concrete types below cover
// the common threshold comparisons.
type Predicate[T vek.Lanes] interface {
	// Test returns true if the scalar value satisfies the predicate.
	// Used by scalar tail code.
	Test(value T) bool

	// Apply returns a mask of lanes satisfying the predicate.
	// Used by the vector loop.
	Apply(v vek.Vec[T]) vek.Mask[T]
}

// Preparable is an optional interface for predicates that can pre-compute
// their comparison vectors. Call Prepare once before a loop to avoid
// rebuilding the threshold vector per iteration.
type Preparable[T vek.Lanes] interface {
	Predicate[T]
	Prepare() Predicate[T]
}

// PredicateFunc adapts a plain scalar function into a Predicate. The vector
// path evaluates lane by lane, so prefer the concrete comparison types where
// they fit.
type PredicateFunc[T vek.Lanes] func(T) bool

func (f PredicateFunc[T]) Test(value T) bool { return f(value) }

func (f PredicateFunc[T]) Apply(v vek.Vec[T]) vek.Mask[T] {
	data := v.Data()
	bits := make([]bool, len(data))
	for i, x := range data {
		bits[i] = f(x)
	}
	return vek.MaskFromBits[T](bits)
}

// GreaterThan matches values where v > Threshold.
type GreaterThan[T vek.Lanes] struct {
	Threshold T
}

func (p GreaterThan[T]) Test(value T) bool { return value > p.Threshold }

func (p GreaterThan[T]) Apply(v vek.Vec[T]) vek.Mask[T] {
	return vek.Greater(v, vek.Set(p.Threshold))
}

func (p GreaterThan[T]) Prepare() Predicate[T] {
	return preparedCompare[T]{test: p.Test, vec: vek.Set(p.Threshold), apply: vek.Greater[T]}
}

// LessThan matches values where v < Threshold.
type LessThan[T vek.Lanes] struct {
	Threshold T
}

func (p LessThan[T]) Test(value T) bool { return value < p.Threshold }

func (p LessThan[T]) Apply(v vek.Vec[T]) vek.Mask[T] {
	return vek.Less(v, vek.Set(p.Threshold))
}

func (p LessThan[T]) Prepare() Predicate[T] {
	return preparedCompare[T]{test: p.Test, vec: vek.Set(p.Threshold), apply: vek.Less[T]}
}

// GreaterEqual matches values where v >= Threshold.
type GreaterEqual[T vek.Lanes] struct {
	Threshold T
}

func (p GreaterEqual[T]) Test(value T) bool { return value >= p.Threshold }

func (p GreaterEqual[T]) Apply(v vek.Vec[T]) vek.Mask[T] {
	return vek.GreaterEqual(v, vek.Set(p.Threshold))
}

// LessEqual matches values where v <= Threshold.
type LessEqual[T vek.Lanes] struct {
	Threshold T
}

func (p LessEqual[T]) Test(value T) bool { return value <= p.Threshold }

func (p LessEqual[T]) Apply(v vek.Vec[T]) vek.Mask[T] {
	return vek.LessEqual(v, vek.Set(p.Threshold))
}

// EqualTo matches values equal to Value.
type EqualTo[T vek.Lanes] struct {
	Value T
}

func (p EqualTo[T]) Test(value T) bool { return value == p.Value }

func (p EqualTo[T]) Apply(v vek.Vec[T]) vek.Mask[T] {
	return vek.Equal(v, vek.Set(p.Value))
}

// NotEqualTo matches values not equal to Value.
type NotEqualTo[T vek.Lanes] struct {
	Value T
}

func (p NotEqualTo[T]) Test(value T) bool { return value != p.Value }

func (p NotEqualTo[T]) Apply(v vek.Vec[T]) vek.Mask[T] {
	return vek.NotEqual(v, vek.Set(p.Value))
}

// Between matches values in the closed interval [Lo, Hi].
type Between[T vek.Lanes] struct {
	Lo, Hi T
}

func (p Between[T]) Test(value T) bool { return value >= p.Lo && value <= p.Hi }

func (p Between[T]) Apply(v vek.Vec[T]) vek.Mask[T] {
	return vek.MaskAnd(
		vek.GreaterEqual(v, vek.Set(p.Lo)),
		vek.LessEqual(v, vek.Set(p.Hi)),
	)
}

// preparedCompare caches a threshold vector and comparison for loop bodies.
type preparedCompare[T vek.Lanes] struct {
	test  func(T) bool
	vec   vek.Vec[T]
	apply func(a, b vek.Vec[T]) vek.Mask[T]
}

func (p preparedCompare[T]) Test(value T) bool { return p.test(value) }

func (p preparedCompare[T]) Apply(v vek.Vec[T]) vek.Mask[T] {
	return p.apply(v, p.vec)
}
