// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package poly

import (
	"fmt"

	"github.com/katzenpost/saber/zq"
)

// The wire format packs coefficient i into bit range [i*eps, (i+1)*eps)
// of the byte stream, least significant bit first, so that eight
// coefficients always occupy exactly eps bytes.

// EncodedLen returns the byte length of a polynomial packed at eps bits
// per coefficient.
func EncodedLen(eps uint) int {
	return N * int(eps) / 8
}

func supportedWidth(eps uint) bool {
	switch eps {
	case 1, 3, 4, 5, 6, 10, 12, 13:
		return true
	}
	return false
}

// Encode packs p at eps bits per coefficient. Coefficients are reduced
// mod 2^eps as they are written. It panics on an unsupported width;
// widths are fixed by the validated parameter set, never by wire input.
func (p Poly) Encode(eps uint) []byte {
	if !supportedWidth(eps) {
		panic(fmt.Sprintf("saber/poly: unsupported bit width %d", eps))
	}

	dst := make([]byte, EncodedLen(eps))

	var acc uint64
	var nbits uint
	off := 0
	for i := 0; i < N; i++ {
		acc |= uint64(p[i].Reduce(eps)) << nbits
		nbits += eps
		for nbits >= 8 {
			dst[off] = byte(acc)
			off++
			acc >>= 8
			nbits -= 8
		}
	}
	return dst
}

// Decode unpacks a polynomial from b at eps bits per coefficient. It
// panics on an unsupported width or a wrong buffer length; callers
// validate wire lengths before decoding.
func Decode(eps uint, b []byte) Poly {
	if !supportedWidth(eps) {
		panic(fmt.Sprintf("saber/poly: unsupported bit width %d", eps))
	}
	if len(b) != EncodedLen(eps) {
		panic(fmt.Sprintf("saber/poly: encoded length %d, want %d", len(b), EncodedLen(eps)))
	}

	mask := zq.Zq(1)<<eps - 1

	var p Poly
	var acc uint64
	var nbits uint
	off := 0
	for i := 0; i < N; i++ {
		for nbits < eps {
			acc |= uint64(b[off]) << nbits
			off++
			nbits += 8
		}
		p[i] = zq.Zq(acc) & mask
		acc >>= eps
		nbits -= eps
	}
	return p
}
