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

import "testing"

var sink Float128

func BenchmarkArith(b *testing.B) {
	x := MustParse("1.2345678901234567890123456789012345")
	y := MustParse("9.8765432109876543210987654321098765")

	b.Run("Add", func(b *testing.B) {
		b.ReportAllocs()
		var c Context
		for i := 0; i < b.N; i++ {
			sink = c.Add(x, y)
		}
	})

	b.Run("Mul", func(b *testing.B) {
		b.ReportAllocs()
		var c Context
		for i := 0; i < b.N; i++ {
			sink = c.Mul(x, y)
		}
	})

	b.Run("Quo", func(b *testing.B) {
		b.ReportAllocs()
		var c Context
		for i := 0; i < b.N; i++ {
			sink = c.Quo(x, y)
		}
	})

	b.Run("Sqrt", func(b *testing.B) {
		b.ReportAllocs()
		var c Context
		for i := 0; i < b.N; i++ {
			sink = c.Sqrt(y)
		}
	})
}

func BenchmarkTranscendental(b *testing.B) {
	inputs := []struct {
		name string
		x    Float128
	}{
		{"Small", MustParse("0.75")},
		{"Medium", MustParse("1234.5")},
		{"Huge", MustParse("1e4000")},
	}

	for _, in := range inputs {
		b.Run("Log/"+in.name, func(b *testing.B) {
			b.ReportAllocs()
			var c Context
			for i := 0; i < b.N; i++ {
				sink = c.Log(in.x)
			}
		})
		b.Run("SinCos/"+in.name, func(b *testing.B) {
			b.ReportAllocs()
			var c Context
			for i := 0; i < b.N; i++ {
				sink, _ = c.SinCos(in.x)
			}
		})
	}
}
