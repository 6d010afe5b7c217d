// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package poly

import "github.com/katzenpost/saber/zq"

// karatsuba multiplies two length n slices, n a power of two, returning
// the full 2n coefficient product. Recursion depth is log2(N) = 8.
func karatsuba(a, b []zq.Zq) []zq.Zq {
	n := len(a)
	if n == 1 {
		return []zq.Zq{a[0].Mul(b[0]), 0}
	}

	half := n / 2
	a0, a1 := a[:half], a[half:]
	b0, b1 := b[:half], b[half:]

	ax := make([]zq.Zq, half)
	bx := make([]zq.Zq, half)
	for i := 0; i < half; i++ {
		ax[i] = a0[i].Add(a1[i])
		bx[i] = b0[i].Add(b1[i])
	}

	p0 := karatsuba(a0, b0)
	p1 := karatsuba(a1, b1)
	px := karatsuba(ax, bx)

	for i := 0; i < n; i++ {
		px[i] = px[i].Sub(p0[i].Add(p1[i]))
	}

	r := make([]zq.Zq, 2*n)
	for i := 0; i < n; i++ {
		r[i] = r[i].Add(p0[i])
		r[n+i] = r[n+i].Add(p1[i])
		r[half+i] = r[half+i].Add(px[i])
	}
	return r
}

// Karamul multiplies a and b and folds the 2N coefficient product back
// into N coefficients using X^N = -1 in the quotient ring.
func Karamul(a, b Poly) Poly {
	ab := karatsuba(a[:], b[:])

	var r Poly
	for i := 0; i < N; i++ {
		r[i] = ab[i].Sub(ab[N+i])
	}
	return r
}
