// Copyright 2025 go-highway Authors
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


// Package functional lifts the scalar operators of package prelude onto
// sequences of floats.
//
// Each combinator is built in two steps: it is first given an operator (and,
// for Reduce, a starting value) and returns a function that is later applied
// to one or two sequences. The returned functions keep no state between
// calls, never modify their inputs and can be shared between goroutines.
//
// # Combinators
//
//   - Map: applies a Unary operator to each element
//   - ZipWith: combines two sequences pairwise, truncating to the shorter
//   - Reduce: folds a sequence left to right from a starting value
//
// Each has a fallible form (TryMap, TryZipWith, TryReduce) for operators
// such as prelude.Inv that return an error, and a lazy form (MapSeq,
// ZipWithSeq, ReduceSeq) over iter.Seq.
//
// # Example Usage
//
//	sum := functional.Reduce(prelude.Add[float64], 0)
//	neg := functional.Map(prelude.Neg[float64])
//	sum(neg([]float64{1, 2, 3})) // -6
package functional
