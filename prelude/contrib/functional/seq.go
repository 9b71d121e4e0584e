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
	"iter"

	"github.com/ajroetker/go-prelude/prelude"
)

// Lazy combinators over iter.Seq. Nothing is evaluated until the returned
// sequence is ranged over.

// MapSeq returns a function that lazily applies fn to each element of seq.
// The result can be ranged over again whenever seq can.
func MapSeq[T prelude.Floats](fn prelude.Unary[T]) func(seq iter.Seq[T]) iter.Seq[T] {
	if fn == nil {
		panic("functional: MapSeq: nil operator")
	}
	return func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for x := range seq {
				if !yield(fn(x)) {
					return
				}
			}
		}
	}
}

// ZipWithSeq returns a function that lazily combines a and b pairwise,
// stopping when either is exhausted. b is pulled one element per element of
// a, so a single-pass input makes the result single-pass too.
func ZipWithSeq[T prelude.Floats](fn prelude.Binary[T]) func(a, b iter.Seq[T]) iter.Seq[T] {
	if fn == nil {
		panic("functional: ZipWithSeq: nil operator")
	}
	return func(a, b iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			next, stop := iter.Pull(b)
			defer stop()
			for x := range a {
				y, ok := next()
				if !ok {
					return
				}
				if !yield(fn(x, y)) {
					return
				}
			}
		}
	}
}

// ReduceSeq returns a function that folds seq from the left, starting at
// start. It consumes seq.
func ReduceSeq[T prelude.Floats](fn prelude.Binary[T], start T) func(seq iter.Seq[T]) T {
	if fn == nil {
		panic("functional: ReduceSeq: nil operator")
	}
	return func(seq iter.Seq[T]) T {
		acc := start
		for x := range seq {
			acc = fn(acc, x)
		}
		return acc
	}
}
