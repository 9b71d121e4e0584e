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

import "github.com/ajroetker/go-prelude/prelude"

// Fallible combinators. They stop at the first error and return it exactly
// as the operator produced it, together with a nil slice (or the zero value
// for TryReduce).

// TryMap is Map for operators that can fail, such as prelude.Inv.
func TryMap[T prelude.Floats](fn prelude.TryUnary[T]) func(ls []T) ([]T, error) {
	if fn == nil {
		panic("functional: TryMap: nil operator")
	}
	return func(ls []T) ([]T, error) {
		out := make([]T, len(ls))
		for i, x := range ls {
			v, err := fn(x)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
}

// TryZipWith is ZipWith for operators that can fail, such as
// prelude.LogBack. Elements past min(len(a), len(b)) are never evaluated.
func TryZipWith[T prelude.Floats](fn prelude.TryBinary[T]) func(a, b []T) ([]T, error) {
	if fn == nil {
		panic("functional: TryZipWith: nil operator")
	}
	return func(a, b []T) ([]T, error) {
		n := min(len(a), len(b))
		out := make([]T, n)
		for i := 0; i < n; i++ {
			v, err := fn(a[i], b[i])
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
}

// TryReduce is Reduce for operators that can fail.
func TryReduce[T prelude.Floats](fn prelude.TryBinary[T], start T) func(ls []T) (T, error) {
	if fn == nil {
		panic("functional: TryReduce: nil operator")
	}
	return func(ls []T) (T, error) {
		acc := start
		for _, x := range ls {
			v, err := fn(acc, x)
			if err != nil {
				var zero T
				return zero, err
			}
			acc = v
		}
		return acc, nil
	}
}
