// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package poly

import (
	"fmt"

	"github.com/katzenpost/saber/zq"
)

// The samplers consume SHAKE-128 output blocks of mu*N/8 bytes. The
// centered binomial ones are word parallel: each machine word carries several mu bit fields whose
// bit planes are summed with masked additions, then the two halves of
// every field are subtracted. Coefficients land in [-mu/2, mu/2]; the
// uint16 wraparound encodes negatives so that later ring additions are
// exact.

func leUint64(b []byte) uint64 {
	var w uint64
	for i, v := range b {
		w |= uint64(v) << (8 * i)
	}
	return w
}

func leUint32(b []byte) uint32 {
	var w uint32
	for i, v := range b {
		w |= uint32(v) << (8 * i)
	}
	return w
}

// CBD samples a polynomial from the centered binomial distribution with
// parameter mu, consuming exactly mu*N/8 bytes. mu must be 6, 8 or 10.
func CBD(mu uint, buf []byte) Poly {
	if len(buf) != int(mu)*N/8 {
		panic(fmt.Sprintf("saber/poly: cbd buffer length %d, want %d", len(buf), int(mu)*N/8))
	}

	switch mu {
	case 10:
		return cbd10(buf)
	case 8:
		return cbd8(buf)
	case 6:
		return cbd6(buf)
	}
	panic(fmt.Sprintf("saber/poly: unsupported cbd parameter %d", mu))
}

func cbd10(buf []byte) Poly {
	const mask = 0x842108421 // every 5th bit of a 40 bit word
	const mask5 = 1<<5 - 1

	var p Poly
	coff := 0
	for boff := 0; boff < len(buf); boff += 5 {
		word := leUint64(buf[boff : boff+5])
		hw := (word & mask) + ((word >> 1) & mask) + ((word >> 2) & mask) +
			((word >> 3) & mask) + ((word >> 4) & mask)

		for i := 0; i < 4; i++ {
			lo := zq.Zq(hw >> (10 * i) & mask5)
			hi := zq.Zq(hw >> (10*i + 5) & mask5)
			p[coff+i] = lo.Sub(hi)
		}
		coff += 4
	}
	return p
}

func cbd8(buf []byte) Poly {
	const mask = 0x11111111 // every 4th bit of a 32 bit word
	const mask4 = 1<<4 - 1

	var p Poly
	coff := 0
	for boff := 0; boff < len(buf); boff += 4 {
		word := leUint32(buf[boff : boff+4])
		hw := (word & mask) + ((word >> 1) & mask) + ((word >> 2) & mask) +
			((word >> 3) & mask)

		for i := 0; i < 4; i++ {
			lo := zq.Zq(hw >> (8 * i) & mask4)
			hi := zq.Zq(hw >> (8*i + 4) & mask4)
			p[coff+i] = lo.Sub(hi)
		}
		coff += 4
	}
	return p
}

func cbd6(buf []byte) Poly {
	const mask = 0x249249 // every 3rd bit of a 24 bit word
	const mask3 = 1<<3 - 1

	var p Poly
	coff := 0
	for boff := 0; boff < len(buf); boff += 3 {
		word := leUint32(buf[boff : boff+3])
		hw := (word & mask) + ((word >> 1) & mask) + ((word >> 2) & mask)

		for i := 0; i < 4; i++ {
			lo := zq.Zq(hw >> (6 * i) & mask3)
			hi := zq.Zq(hw >> (6*i + 3) & mask3)
			p[coff+i] = lo.Sub(hi)
		}
		coff += 4
	}
	return p
}

// UniformSample samples a polynomial for the uniform "u" profiles,
// consuming exactly 2*N/8 bytes. Each coefficient is the difference of
// the two bits of its field, the degenerate mu = 2 case of CBD.
func UniformSample(buf []byte) Poly {
	if len(buf) != 2*N/8 {
		panic(fmt.Sprintf("saber/poly: uniform buffer length %d, want %d", len(buf), 2*N/8))
	}

	var p Poly
	coff := 0
	for _, b := range buf {
		for i := 0; i < 4; i++ {
			lo := zq.Zq(b >> (2 * i) & 1)
			hi := zq.Zq(b >> (2*i + 1) & 1)
			p[coff+i] = lo.Sub(hi)
		}
		coff += 4
	}
	return p
}
