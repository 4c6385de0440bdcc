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
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// RoundingMode selects how results that are not exactly representable are
// rounded. The zero value is ToNearestEven.
type RoundingMode uint8

const (
	// ToNearestEven rounds to the nearest value, ties to even (IEEE default).
	ToNearestEven RoundingMode = iota

	// TowardZero truncates.
	TowardZero

	// Upward rounds toward +Inf.
	Upward

	// Downward rounds toward -Inf.
	Downward
)

// String returns a human-readable name for the rounding mode.
func (m RoundingMode) String() string {
	switch m {
	case ToNearestEven:
		return "nearest"
	case TowardZero:
		return "zero"
	case Upward:
		return "up"
	case Downward:
		return "down"
	default:
		return "unknown"
	}
}

// ParseRoundingMode converts a name produced by RoundingMode.String back into
// a RoundingMode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for m := ToNearestEven; m <= Downward; m++ {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return ToNearestEven, fmt.Errorf("quad: unknown rounding mode %q", s)
}

func (m RoundingMode) big() big.RoundingMode {
	switch m {
	case TowardZero:
		return big.ToZero
	case Upward:
		return big.ToPositiveInf
	case Downward:
		return big.ToNegativeInf
	default:
		return big.ToNearestEven
	}
}

// Flags is a set of sticky IEEE 754 exception flags.
type Flags uint8

const (
	FlagInvalid Flags = 1 << iota
	FlagDivByZero
	FlagOverflow
	FlagUnderflow
	FlagInexact
)

var flagNames = [...]string{"invalid", "divbyzero", "overflow", "underflow", "inexact"}

// String returns the names of the raised flags joined by "|", or "none".
func (f Flags) String() string {
	var names []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Errors recorded by Context.SetErr. They play the role of EDOM and ERANGE.
var (
	// ErrDomain reports an argument outside the domain of a function.
	ErrDomain = errors.New("quad: argument out of domain")

	// ErrRange reports a result whose magnitude cannot be represented.
	ErrRange = errors.New("quad: result out of range")
)

// Context is the floating-point environment for Float128 arithmetic: the
// active rounding mode, the sticky exception flags, and the last error
// recorded by a function.
//
// The zero value is ready to use and rounds to nearest. A Context must not be
// shared between goroutines; give each its own.
type Context struct {
	mode  RoundingMode
	flags Flags
	err   error
}

// NewContext returns a Context that rounds with mode.
func NewContext(mode RoundingMode) *Context {
	return &Context{mode: mode}
}

// Rounding returns the active rounding mode.
func (c *Context) Rounding() RoundingMode {
	return c.mode
}

// SetRounding makes mode the active rounding mode and returns the previous
// one, so that a scoped change reads
//
//	defer c.SetRounding(c.SetRounding(quad.ToNearestEven))
func (c *Context) SetRounding(mode RoundingMode) RoundingMode {
	prev := c.mode
	c.mode = mode
	return prev
}

// Flags returns the exception flags raised since the last ClearFlags.
func (c *Context) Flags() Flags {
	return c.flags
}

// Raise sets the given exception flags.
func (c *Context) Raise(f Flags) {
	c.flags |= f
}

// ClearFlags clears all exception flags.
func (c *Context) ClearFlags() {
	c.flags = 0
}

// Err returns the last error recorded with SetErr, or nil.
func (c *Context) Err() error {
	return c.err
}

// SetErr records err, replacing any previous error.
func (c *Context) SetErr(err error) {
	c.err = err
}

// Reset clears flags and the recorded error. The rounding mode is kept.
func (c *Context) Reset() {
	c.flags = 0
	c.err = nil
}

// CheckUnderflow raises FlagUnderflow if x is subnormal.
func (c *Context) CheckUnderflow(x Float128) {
	if x.IsSubnormal() {
		c.flags |= FlagUnderflow
	}
}
