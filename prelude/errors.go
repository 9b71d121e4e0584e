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

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is matched by every *DivisionError via errors.Is.
var ErrDivisionByZero = errors.New("division by zero")

// DivisionError is returned by Inv, LogBack and InvBack when their primal
// input is zero.
type DivisionError struct {
	// Op is the name of the operator that failed, e.g. "inv".
	Op string

	// X is the offending primal input (+0 or -0).
	X float64
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("prelude: %s: %v", e.Op, ErrDivisionByZero)
}

// Is reports whether target is ErrDivisionByZero.
func (e *DivisionError) Is(target error) bool {
	return target == ErrDivisionByZero
}

func divisionByZero[T Floats](op string, x T) error {
	return &DivisionError{Op: op, X: float64(x)}
}
