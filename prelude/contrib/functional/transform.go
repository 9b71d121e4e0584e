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


package functional

import (
	"strconv"

	"github.com/ajroetker/go-prelude/prelude"
)

// Map returns a function that applies fn to every element of its input and
// returns the results in a new slice of the same length.
//
// Example:
//
//	sq := functional.Map(func(x float64) float64 { return x * x })
//	sq([]float64{1, 2, 3}) // [1 4 9]
func Map[T prelude.Floats](fn prelude.Unary[T]) func(ls []T) []T {
	if fn == nil {
		panic("functional: Map: nil operator")
	}
	return func(ls []T) []T {
		out := make([]T, len(ls))
		for i, x := range ls {
			out[i] = fn(x)
		}
		return out
	}
}

// ZipWith returns a function that combines two slices element by element.
// The result has min(len(a), len(b)) elements; the tail of the longer input
// is ignored.
//
// Example:
//
//	add := functional.ZipWith(prelude.Add[float64])
//	add([]float64{1, 2, 3}, []float64{4, 5}) // [5 7]
func ZipWith[T prelude.Floats](fn prelude.Binary[T]) func(a, b []T) []T {
	if fn == nil {
		panic("functional: ZipWith: nil operator")
	}
	return func(a, b []T) []T {
		n := min(len(a), len(b))
		out := make([]T, n)
		for i := 0; i < n; i++ {
			out[i] = fn(a[i], b[i])
		}
		return out
	}
}

// Reduce returns a function that folds its input from the left:
// fn(...fn(fn(start, ls[0]), ls[1])..., ls[n-1]). The accumulator is always
// the first operand. An empty input yields start.
//
// Example:
//
//	prod := functional.Reduce(prelude.Mul[float64], 1)
//	prod([]float64{1, 2, 3, 4}) // 24
func Reduce[T prelude.Floats](fn prelude.Binary[T], start T) func(ls []T) T {
	if fn == nil {
		panic("functional: Reduce: nil operator")
	}
	return func(ls []T) T {
		acc := start
		for _, x := range ls {
			acc = fn(acc, x)
		}
		return acc
	}
}

// Compose returns the right-to-left composition of fns, so
// Compose(f, g)(x) == f(g(x)). With no arguments it returns prelude.ID.
func Compose[T prelude.Floats](fns ...prelude.Unary[T]) prelude.Unary[T] {
	for i, fn := range fns {
		if fn == nil {
			panic("functional: Compose: nil operator at index " + strconv.Itoa(i))
		}
	}
	switch len(fns) {
	case 0:
		return prelude.ID[T]
	case 1:
		return fns[0]
	}
	fns = append([]prelude.Unary[T](nil), fns...)
	return func(x T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			x = fns[i](x)
		}
		return x
	}
}
