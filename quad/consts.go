// Copyright 2025 go-quad Authors
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

package quad

import (
	"math/big"
	"math/bits"
	"sync"
)

// guardBits is the extra precision carried by the transcendental primitives
// beyond the binary128 significand before the single final rounding.
const guardBits = 64

// extPrec is the working precision of the transcendental primitives.
const extPrec = prec + guardBits

// piCache holds pi at the widest precision requested so far. Trigonometric
// argument reduction of arguments near MaxValue needs about 16.7k bits.
var piCache struct {
	sync.Mutex
	v *big.Float
}

// pi returns pi rounded to at least p bits. The result must not be modified.
func pi(p uint) *big.Float {
	piCache.Lock()
	defer piCache.Unlock()
	if piCache.v == nil || piCache.v.Prec() < p {
		// Grow geometrically so a sweep of increasing magnitudes does not
		// recompute pi for every new exponent.
		want := max(p, 2*extPrec)
		if piCache.v != nil {
			want = max(want, 2*piCache.v.Prec())
		}
		piCache.v = gaussLegendrePi(want)
	}
	return piCache.v
}

// gaussLegendrePi computes pi to p bits with the Gauss-Legendre (AGM)
// iteration, which doubles the number of correct digits per step, so
// bits.Len(w)+1 steps are enough.
func gaussLegendrePi(p uint) *big.Float {
	w := p + 64
	newF := func() *big.Float { return new(big.Float).SetPrec(w) }

	a := newF().SetInt64(1)
	b := newF().Sqrt(newF().SetFloat64(0.5))
	t := newF().SetFloat64(0.25)
	scale := newF().SetInt64(1)

	an, d := newF(), newF()
	for range bits.Len(w) + 1 {
		an.Add(a, b)
		an.SetMantExp(an, -1)
		b.Mul(a, b)
		b.Sqrt(b)
		d.Sub(a, an)
		d.Mul(d, d)
		d.Mul(d, scale)
		t.Sub(t, d)
		a.Set(an)
		scale.SetMantExp(scale, 1)
	}

	r := newF().Add(a, b)
	r.Mul(r, r)
	t.SetMantExp(t, 2)
	r.Quo(r, t)
	return new(big.Float).SetPrec(p).Set(r)
}

var ln2Once = sync.OnceValue(func() *big.Float {
	// ln 2 = 2 atanh(1/3)
	const p = 1024
	third := new(big.Float).SetPrec(p).Quo(big.NewFloat(1), big.NewFloat(3))
	r := atanh(third, p)
	return r.SetMantExp(r, 1)
})

// ln2 returns ln 2 to 1024 bits. The result must not be modified.
func ln2() *big.Float {
	return ln2Once()
}
