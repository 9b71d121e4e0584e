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


package prelude

// Floats is the set of element types the operators accept.
type Floats interface {
	~float32 | ~float64
}

// Function types for operators. Combinators take these so any operator in
// this package, or a caller-supplied closure of the same shape, can be
// lifted onto sequences.
type (
	// Unary maps one value to one value.
	Unary[T Floats] func(x T) T

	// Binary combines two values into one.
	Binary[T Floats] func(x, y T) T

	// Backward returns the local gradient at primal input x scaled by the
	// upstream gradient d.
	Backward[T Floats] func(x, d T) T

	// TryUnary is a Unary that can fail.
	TryUnary[T Floats] func(x T) (T, error)

	// TryBinary is a Binary that can fail. Fallible backward operators
	// (LogBack, InvBack) have this shape.
	TryBinary[T Floats] func(x, y T) (T, error)
)

// Truth encodes b as 1 or 0.
func Truth[T Floats](b bool) T {
	if b {
		return 1
	}
	return 0
}

// IsTrue reports whether v encodes true, i.e. is non-zero.
func IsTrue[T Floats](v T) bool {
	return v != 0
}
