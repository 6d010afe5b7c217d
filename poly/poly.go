// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package poly implements the quotient ring Rq = Zq[X]/(X^N + 1) for
// the power of two moduli used by Saber, together with its bit packed
// wire encoding and the secret samplers.
package poly

import "github.com/katzenpost/saber/zq"

// N is the number of coefficients of every ring element.
const N = 256

// Poly is a degree N-1 polynomial over the Zq carrier ring.
type Poly [N]zq.Zq

// Add returns p + q, coefficient wise.
func (p Poly) Add(q Poly) Poly {
	var r Poly
	for i := 0; i < N; i++ {
		r[i] = p[i].Add(q[i])
	}
	return r
}

// Sub returns p - q, coefficient wise.
func (p Poly) Sub(q Poly) Poly {
	var r Poly
	for i := 0; i < N; i++ {
		r[i] = p[i].Sub(q[i])
	}
	return r
}

// Mul returns p * q mod (X^N + 1).
func (p Poly) Mul(q Poly) Poly {
	return Karamul(p, q)
}

// Shl shifts every coefficient left by off bits.
func (p Poly) Shl(off uint) Poly {
	var r Poly
	for i := 0; i < N; i++ {
		r[i] = p[i].Shl(off)
	}
	return r
}

// Shr shifts every coefficient right by off bits.
func (p Poly) Shr(off uint) Poly {
	var r Poly
	for i := 0; i < N; i++ {
		r[i] = p[i].Shr(off)
	}
	return r
}

// Reduce masks every coefficient down to its low bits, moving the
// polynomial into the ring with modulus 2^bits.
func (p Poly) Reduce(bits uint) Poly {
	var r Poly
	for i := 0; i < N; i++ {
		r[i] = p[i].Reduce(bits)
	}
	return r
}

// Constant returns the polynomial all of whose coefficients are c.
func Constant(c zq.Zq) Poly {
	var r Poly
	for i := 0; i < N; i++ {
		r[i] = c
	}
	return r
}
