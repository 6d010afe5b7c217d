// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package utils provides the constant time byte primitives used by the
// KEM's implicit rejection path, and small file helpers for the key
// management tools.
package utils

import (
	"crypto/subtle"

	"github.com/go-faster/xor"
)

// CtEqBytes compares a and b in constant time, returning 0xffffffff
// when they are equal and 0 otherwise. Every byte is examined
// regardless of where the first mismatch occurs. The lengths must
// match; length is never a secret.
func CtEqBytes(a, b []byte) uint32 {
	if len(a) != len(b) {
		panic("saber/utils: length mismatch in CtEqBytes")
	}

	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	m := uint32(subtle.ConstantTimeByteEq(v, 0))
	return -m
}

// CtSelBytes writes x to dst when flag is 0xffffffff and y when flag is
// 0, without branching on flag. Any other flag value is undefined. All
// three slices must have the same length.
func CtSelBytes(flag uint32, dst, x, y []byte) {
	if len(dst) != len(x) || len(x) != len(y) {
		panic("saber/utils: length mismatch in CtSelBytes")
	}

	// dst = y ^ (mask & (x ^ y))
	m := byte(flag)
	tmp := make([]byte, len(dst))
	xor.Bytes(tmp, x, y)
	for i := range tmp {
		tmp[i] &= m
	}
	xor.Bytes(dst, tmp, y)
}

// CtIsZero returns true when every byte of a is zero, in constant time.
func CtIsZero(a []byte) bool {
	var v byte
	for i := range a {
		v |= a[i]
	}
	return subtle.ConstantTimeByteEq(v, 0) == 1
}
