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

import "math"

// Transcendentals are evaluated in float64 and narrowed to T.

// Mul returns x * y.
func Mul[T Floats](x, y T) T { return x * y }

// ID returns x.
func ID[T Floats](x T) T { return x }

// Add returns x + y.
func Add[T Floats](x, y T) T { return x + y }

// Neg returns -x.
func Neg[T Floats](x T) T { return -x }

// LT returns 1 if x < y, else 0.
func LT[T Floats](x, y T) T { return Truth[T](x < y) }

// EQ returns 1 if x == y, else 0. The comparison is exact.
func EQ[T Floats](x, y T) T { return Truth[T](x == y) }

// Max returns x if x > y, else y. Ties, and any comparison involving NaN,
// return y.
func Max[T Floats](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// IsClose returns 1 if |x - y| < IsCloseTolerance, else 0. The tolerance is
// absolute, not relative to the magnitude of the operands.
func IsClose[T Floats](x, y T) T {
	diff := x - y
	if diff < 0 {
		diff = -diff
	}
	return Truth[T](diff < IsCloseTolerance)
}

// Sigmoid computes the logistic function 1/(1+e^-x).
//
// For negative x it evaluates e^x/(1+e^x) instead so e^-x never overflows.
// Sigmoid(0) is exactly 0.5 and the result lies in (0, 1) until it rounds
// to an endpoint for large |x|.
func Sigmoid[T Floats](x T) T {
	if x >= 0 {
		return T(1.0 / (1.0 + math.Exp(-float64(x))))
	}
	e := math.Exp(float64(x))
	return T(e / (1.0 + e))
}

// ReLU returns Max(x, 0).
func ReLU[T Floats](x T) T { return Max(x, 0) }

// Log computes ln(x + LogEpsilon). Inputs with x + LogEpsilon <= 0 follow
// math.Log: -Inf at zero, NaN below.
func Log[T Floats](x T) T { return T(math.Log(float64(x) + LogEpsilon)) }

// Exp computes e^x.
func Exp[T Floats](x T) T { return T(math.Exp(float64(x))) }

// Inv computes 1/x. It returns a *DivisionError when x is zero.
func Inv[T Floats](x T) (T, error) {
	if x == 0 {
		return 0, divisionByZero("inv", x)
	}
	return 1 / x, nil
}
