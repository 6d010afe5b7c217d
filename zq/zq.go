// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package zq implements arithmetic over Z_q for the power of two moduli
// used by Saber, q = 2^k with k <= 13.
package zq

// Zq is a ring element stored in a 16 bit carrier. All arithmetic is
// performed modulo 2^16; reduction to the true modulus 2^k happens by
// bit mask, at serialization or modulus change time. This is exact
// because every Saber modulus satisfies k <= 13.
type Zq uint16

// Add returns z + x mod 2^16.
func (z Zq) Add(x Zq) Zq { return z + x }

// Sub returns z - x mod 2^16.
func (z Zq) Sub(x Zq) Zq { return z - x }

// Neg returns -z mod 2^16.
func (z Zq) Neg() Zq { return -z }

// Mul returns the low 16 bits of z * x, which is sufficient because the
// final reduction is always a bit mask.
func (z Zq) Mul(x Zq) Zq { return z * x }

// Shl shifts z left by off bits.
func (z Zq) Shl(off uint) Zq { return z << off }

// Shr shifts z right by off bits.
func (z Zq) Shr(off uint) Zq { return z >> off }

// Reduce returns z mod 2^bits.
func (z Zq) Reduce(bits uint) Zq { return z & (1<<bits - 1) }
