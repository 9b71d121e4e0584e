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


// Package lists provides list operations built by specializing the
// combinators in prelude/contrib/functional with scalar operators from
// prelude. They carry no logic of their own.
package lists

import (
	"github.com/ajroetker/go-prelude/prelude"
	"github.com/ajroetker/go-prelude/prelude/contrib/functional"
)

// NegList negates every element of ls.
func NegList[T prelude.Floats](ls []T) []T {
	return functional.Map[T](prelude.Neg[T])(ls)
}

// AddLists adds a and b element by element, truncating to the shorter.
func AddLists[T prelude.Floats](a, b []T) []T {
	return functional.ZipWith[T](prelude.Add[T])(a, b)
}

// Sum returns the sum of ls, or 0 if it is empty.
func Sum[T prelude.Floats](ls []T) T {
	return functional.Reduce[T](prelude.Add[T], 0)(ls)
}

// Prod returns the product of ls, or 1 if it is empty.
func Prod[T prelude.Floats](ls []T) T {
	return functional.Reduce[T](prelude.Mul[T], 1)(ls)
}

// Concrete bindings for callers that want plain function values.
var (
	NegList32  = functional.Map(prelude.Neg[float32])
	NegList64  = functional.Map(prelude.Neg[float64])
	AddLists32 = functional.ZipWith(prelude.Add[float32])
	AddLists64 = functional.ZipWith(prelude.Add[float64])
	Sum32      = functional.Reduce(prelude.Add[float32], 0)
	Sum64      = functional.Reduce(prelude.Add[float64], 0)
	Prod32     = functional.Reduce(prelude.Mul[float32], 1)
	Prod64     = functional.Reduce(prelude.Mul[float64], 1)
)
