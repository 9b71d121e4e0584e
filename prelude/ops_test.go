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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samples returns a deterministic spread of finite values in [-lim, lim].
func samples(n int, lim float64) []float64 {
	r := rand.New(rand.NewPCG(1, 2))
	out := make([]float64, n)
	for i := range out {
		out[i] = (r.Float64()*2 - 1) * lim
	}
	return append(out, 0, 1, -1, lim, -lim)
}

func TestMulAddCommutative(t *testing.T) {
	xs := samples(200, 1e6)
	for i, x := range xs {
		y := xs[len(xs)-1-i]
		assert.Equal(t, Mul(x, y), Mul(y, x), "Mul(%v, %v)", x, y)
		assert.Equal(t, Add(x, y), Add(y, x), "Add(%v, %v)", x, y)
	}
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, 6.0, Mul(2.0, 3.0))
	assert.Equal(t, 5.0, Add(2.0, 3.0))
	assert.Equal(t, float32(-1.5), Neg(float32(1.5)))
	assert.Equal(t, 7.25, ID(7.25))
}

func TestNegInvolution(t *testing.T) {
	for _, x := range samples(200, 1e9) {
		assert.Equal(t, x, Neg(Neg(x)))
	}
}

func TestInvInvolution(t *testing.T) {
	for _, x := range samples(200, 1e3) {
		if x == 0 {
			continue
		}
		y, err := Inv(x)
		require.NoError(t, err)
		z, err := Inv(y)
		require.NoError(t, err)
		assert.InEpsilon(t, x, z, 1e-12)
	}
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		name string
		fn   Binary[float64]
		x, y float64
		want float64
	}{
		{"lt/true", LT[float64], 1, 2, 1},
		{"lt/false", LT[float64], 2, 1, 0},
		{"lt/equal", LT[float64], 2, 2, 0},
		{"eq/true", EQ[float64], 3.5, 3.5, 1},
		{"eq/false", EQ[float64], 3.5, 3.5000001, 0},
		{"eq/nan", EQ[float64], math.NaN(), math.NaN(), 0},
		{"max/x", Max[float64], 4, 3, 4},
		{"max/y", Max[float64], 3, 4, 4},
		{"isclose/inside", IsClose[float64], 1.0, 1.005, 1},
		{"isclose/outside", IsClose[float64], 1.0, 1.02, 0},
		{"isclose/negative", IsClose[float64], -1.0, -1.009, 1},
		{"isclose/absolute", IsClose[float64], 1e6, 1e6 + 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.x, tt.y))
		})
	}
}

func TestMaxTieReturnsY(t *testing.T) {
	negZero := math.Copysign(0, -1)
	assert.True(t, math.Signbit(Max(0.0, negZero)))
	assert.False(t, math.Signbit(Max(negZero, 0.0)))
}

func TestIsCloseFloat32(t *testing.T) {
	assert.Equal(t, float32(1), IsClose(float32(1.0), float32(1.005)))
	assert.Equal(t, float32(0), IsClose(float32(1.0), float32(1.02)))
}

func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid(0.0))
	assert.Equal(t, float32(0.5), Sigmoid(float32(0)))

	for _, x := range samples(500, 20) {
		s := Sigmoid(x)
		assert.Greater(t, s, 0.0, "Sigmoid(%v)", x)
		assert.Less(t, s, 1.0, "Sigmoid(%v)", x)
		assert.InDelta(t, 1/(1+math.Exp(-x)), s, 1e-15, "Sigmoid(%v)", x)
		assert.InDelta(t, 1-s, Sigmoid(-x), 1e-15, "Sigmoid(-%v)", x)
	}
}

func TestSigmoidExtremes(t *testing.T) {
	lo := Sigmoid(-1000.0)
	hi := Sigmoid(1000.0)
	assert.False(t, math.IsNaN(lo))
	assert.False(t, math.IsNaN(hi))
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
	assert.True(t, math.IsNaN(Sigmoid(math.NaN())))
}

func TestReLU(t *testing.T) {
	for _, x := range samples(200, 100) {
		r := ReLU(x)
		assert.GreaterOrEqual(t, r, 0.0)
		if x > 0 {
			assert.Equal(t, x, r)
		} else {
			assert.Equal(t, 0.0, r)
		}
	}
}

func TestLogExp(t *testing.T) {
	assert.InDelta(t, math.Log(1e-6), Log(0.0), 1e-12)
	assert.InDelta(t, 1e-6, Log(1.0), 1e-12)
	assert.InDelta(t, 1.0, Log(math.E), 1e-6)
	assert.True(t, math.IsNaN(Log(-1.0)))

	assert.Equal(t, 1.0, Exp(0.0))
	assert.InDelta(t, math.E, Exp(1.0), 1e-15)
	assert.InDelta(t, float32(math.E), Exp(float32(1)), 1e-6)

	for _, x := range samples(100, 10) {
		assert.InDelta(t, x, Log(Exp(x)-LogEpsilon), 1e-6, "Log(Exp(%v))", x)
	}
}

func TestInv(t *testing.T) {
	v, err := Inv(4.0)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)

	v32, err := Inv(float32(-2))
	require.NoError(t, err)
	assert.Equal(t, float32(-0.5), v32)
}

func TestDivisionByZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	tests := []struct {
		name string
		op   string
		call func() (float64, error)
	}{
		{"inv", "inv", func() (float64, error) { return Inv(0.0) }},
		{"inv/negzero", "inv", func() (float64, error) { return Inv(negZero) }},
		{"log_back", "log_back", func() (float64, error) { return LogBack(0.0, 1.0) }},
		{"inv_back", "inv_back", func() (float64, error) { return InvBack(0.0, 3.0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDivisionByZero)

			var de *DivisionError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.op, de.Op)
			assert.Equal(t, 0.0, de.X)
			assert.Equal(t, "prelude: "+tt.op+": division by zero", err.Error())
		})
	}
}

func TestLogBack(t *testing.T) {
	v, err := LogBack(2.0, 3.0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
}

func TestInvBack(t *testing.T) {
	v, err := InvBack(2.0, 3.0)
	require.NoError(t, err)
	assert.Equal(t, -0.75, v)

	// Central difference of Inv should agree with InvBack(x, 1).
	const h = 1e-6
	for _, x := range []float64{-3, -0.5, 0.25, 2, 10} {
		hi, _ := Inv(x + h)
		lo, _ := Inv(x - h)
		g, err := InvBack(x, 1.0)
		require.NoError(t, err)
		assert.InEpsilon(t, (hi-lo)/(2*h), g, 1e-5, "InvBack(%v)", x)
	}
}

func TestReLUBack(t *testing.T) {
	for _, x := range samples(200, 50) {
		d := x*0.5 + 1
		if x > 0 {
			assert.Equal(t, d, ReLUBack(x, d))
		} else {
			assert.Equal(t, 0.0, ReLUBack(x, d))
		}
	}
	assert.Equal(t, 0.0, ReLUBack(0.0, 7.0))
}

func TestSmoothBackward(t *testing.T) {
	const h = 1e-6
	for _, x := range []float64{-4, -1, -0.1, 0, 0.3, 2, 5} {
		d := 1.5
		wantSig := (Sigmoid(x+h) - Sigmoid(x-h)) / (2 * h) * d
		assert.InDelta(t, wantSig, SigmoidBack(x, d), 1e-8, "SigmoidBack(%v)", x)

		wantExp := (Exp(x+h) - Exp(x-h)) / (2 * h) * d
		assert.InDelta(t, wantExp, ExpBack(x, d), 1e-6*math.Max(1, Exp(x)), "ExpBack(%v)", x)
	}
	assert.Equal(t, 0.25, SigmoidBack(0.0, 1.0))
}

func TestTruth(t *testing.T) {
	assert.Equal(t, 1.0, Truth[float64](true))
	assert.Equal(t, float32(0), Truth[float32](false))
	assert.True(t, IsTrue(LT(1.0, 2.0)))
	assert.False(t, IsTrue(EQ(1.0, 2.0)))
}

func BenchmarkSigmoid(b *testing.B) {
	xs := samples(1024, 20)
	b.ResetTimer()
	var acc float64
	for i := 0; i < b.N; i++ {
		for _, x := range xs {
			acc += Sigmoid(x)
		}
	}
	_ = acc
}
