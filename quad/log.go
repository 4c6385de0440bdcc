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
	"math"
	"math/big"
)

// Log returns the natural logarithm of x.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(±0) = -Inf (FlagDivByZero)
//	Log(x < 0) = NaN (FlagInvalid)
//	Log(1) = +0
//	Log(NaN) = NaN
func (c *Context) Log(x Float128) Float128 {
	switch {
	case x.IsNaN():
		return x.Quiet()
	case x.IsZero():
		c.flags |= FlagDivByZero
		return NegInf
	case x.Signbit():
		return c.invalid()
	case x.IsInf(1):
		return x
	case x == One:
		return Zero
	}
	return c.finishApprox(logBig(x.Big(), extPrec))
}

// logBig returns ln v for finite v > 0, accurate to about p bits.
//
// Algorithm: v = m * 2^e with m in [sqrt(1/2), sqrt(2)), then
// ln v = e*ln2 + 2*atanh((m-1)/(m+1)).
func logBig(v *big.Float, p uint) *big.Float {
	w := p + 32
	m := new(big.Float).SetPrec(w)
	e := v.MantExp(m)
	if f, _ := m.Float64(); f < math.Sqrt2/2 {
		m.SetMantExp(m, 1)
		e--
	}

	num := new(big.Float).SetPrec(w).Sub(m, bigOne)
	den := new(big.Float).SetPrec(w).Add(m, bigOne)
	s := num.Quo(num, den)
	r := atanh(s, w)
	r.SetMantExp(r, 1)
	if e != 0 {
		t := new(big.Float).SetPrec(w).SetInt64(int64(e))
		t.Mul(t, ln2())
		r.Add(r, t)
	}
	return r
}

// atanh sums the series s + s^3/3 + s^5/5 + ... to p bits. It converges
// quickly only for small |s|; callers keep |s| <= 0.18.
func atanh(s *big.Float, p uint) *big.Float {
	sum := new(big.Float).SetPrec(p).Set(s)
	if s.Sign() == 0 {
		return sum
	}
	s2 := new(big.Float).SetPrec(p).Mul(s, s)
	pow := new(big.Float).SetPrec(p).Set(s)
	term := new(big.Float).SetPrec(p)
	k := new(big.Float).SetPrec(p)
	for n := int64(3); ; n += 2 {
		pow.Mul(pow, s2)
		term.Quo(pow, k.SetInt64(n))
		if term.Sign() == 0 || term.MantExp(nil) < sum.MantExp(nil)-int(p)-2 {
			break
		}
		sum.Add(sum, term)
	}
	return sum
}
