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


// Package prelude provides the scalar operators used to build elementwise
// numeric kernels and their local gradients.
//
// Every operator is a pure function of one or two floats. Forward operators
// return a single value; backward operators take the primal input x and an
// upstream gradient d and return the chain-ruled local gradient, so a
// reverse-mode engine can differentiate an operator without knowing how it
// is computed.
//
// # Operators
//
// Arithmetic:
//   - Mul, Add, Neg, ID, Inv
//
// Comparison (results encoded as 1 or 0 in the operand type):
//   - LT, EQ, IsClose, Max
//
// Activations and transcendentals:
//   - Sigmoid, ReLU, Log, Exp
//
// Backward:
//   - LogBack, InvBack, ReLUBack, SigmoidBack, ExpBack
//
// Inv, LogBack and InvBack return a *DivisionError when x is zero. All other
// operators are total.
//
// The operators are generic over Floats so they can be handed directly to
// the combinators in prelude/contrib/functional:
//
//	neg := functional.Map(prelude.Neg[float64])
//	neg([]float64{1, -2, 3}) // [-1 2 -3]
package prelude
