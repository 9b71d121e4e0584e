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

// Backward operators. Each takes the primal input x of the matching forward
// operator and the upstream gradient d, and returns f'(x) * d.

// LogBack returns d/x, the derivative of Log times d. LogEpsilon is ignored.
// It returns a *DivisionError when x is zero.
func LogBack[T Floats](x, d T) (T, error) {
	if x == 0 {
		return 0, divisionByZero("log_back", x)
	}
	return d / x, nil
}

// InvBack returns -d/x², the derivative of Inv times d. It returns a
// *DivisionError when x is zero.
func InvBack[T Floats](x, d T) (T, error) {
	if x == 0 {
		return 0, divisionByZero("inv_back", x)
	}
	return -(d / (x * x)), nil
}

// ReLUBack returns d where ReLU is active and 0 elsewhere. x == 0 counts as
// inactive.
func ReLUBack[T Floats](x, d T) T {
	if ReLU(x) == 0 {
		return 0
	}
	return d
}

// SigmoidBack returns σ(x)(1-σ(x)) * d.
func SigmoidBack[T Floats](x, d T) T {
	s := Sigmoid(x)
	return s * (1 - s) * d
}

// ExpBack returns e^x * d.
func ExpBack[T Floats](x, d T) T { return Exp(x) * d }
