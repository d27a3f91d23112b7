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

// Package algo provides SIMD-accelerated element-wise maps, prefix scans,
// predicate evaluation, and search over flat numeric slices.
//
// Map kernels write into caller-provided destination slices sized like the
// input; they never allocate. Predicate kernels (All, Any) exit early on the
// first vector whose mask decides the answer.
package algo
