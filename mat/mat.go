// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package mat implements matrices and vectors of ring elements, and
// the SHAKE-128 seeded expansion of the public matrix A and the secret
// vector s.
package mat

import (
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/katzenpost/saber/poly"
)

// Matrix is a row major matrix of polynomials. Column vectors are
// matrices with Cols == 1.
type Matrix struct {
	Rows, Cols int
	Elems      []poly.Poly
}

// New returns a zero matrix of the given shape.
func New(rows, cols int) Matrix {
	return Matrix{Rows: rows, Cols: cols, Elems: make([]poly.Poly, rows*cols)}
}

// At returns a pointer to the element at the given row and column.
func (m *Matrix) At(r, c int) *poly.Poly {
	return &m.Elems[r*m.Cols+c]
}

// Add returns m + v, element wise. The shapes must match.
func (m Matrix) Add(v Matrix) Matrix {
	if m.Rows != v.Rows || m.Cols != v.Cols {
		panic("saber/mat: shape mismatch in Add")
	}
	r := New(m.Rows, m.Cols)
	for i := range m.Elems {
		r.Elems[i] = m.Elems[i].Add(v.Elems[i])
	}
	return r
}

// Shl shifts every coefficient of every element left by off bits.
func (m Matrix) Shl(off uint) Matrix {
	r := New(m.Rows, m.Cols)
	for i := range m.Elems {
		r.Elems[i] = m.Elems[i].Shl(off)
	}
	return r
}

// Shr shifts every coefficient of every element right by off bits.
func (m Matrix) Shr(off uint) Matrix {
	r := New(m.Rows, m.Cols)
	for i := range m.Elems {
		r.Elems[i] = m.Elems[i].Shr(off)
	}
	return r
}

// Reduce masks every coefficient down to bits, moving all elements into
// the ring with modulus 2^bits.
func (m Matrix) Reduce(bits uint) Matrix {
	r := New(m.Rows, m.Cols)
	for i := range m.Elems {
		r.Elems[i] = m.Elems[i].Reduce(bits)
	}
	return r
}

// Transpose returns the transpose of a square matrix.
func (m Matrix) Transpose() Matrix {
	if m.Rows != m.Cols {
		panic("saber/mat: transpose of non square matrix")
	}
	r := New(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			*r.At(j, i) = *m.At(i, j)
		}
	}
	return r
}

// MulVec multiplies a square matrix by a column vector.
func (m Matrix) MulVec(v Matrix) Matrix {
	if m.Rows != m.Cols || v.Cols != 1 || v.Rows != m.Cols {
		panic("saber/mat: shape mismatch in MulVec")
	}
	r := New(m.Rows, 1)
	for i := 0; i < m.Rows; i++ {
		var acc poly.Poly
		for j := 0; j < m.Cols; j++ {
			acc = acc.Add(m.At(i, j).Mul(*v.At(j, 0)))
		}
		r.Elems[i] = acc
	}
	return r
}

// InnerProd returns the inner product of two column vectors.
func (m Matrix) InnerProd(v Matrix) poly.Poly {
	if m.Cols != 1 || v.Cols != 1 || m.Rows != v.Rows {
		panic("saber/mat: shape mismatch in InnerProd")
	}
	var acc poly.Poly
	for i := 0; i < m.Rows; i++ {
		acc = acc.Add(m.Elems[i].Mul(v.Elems[i]))
	}
	return acc
}

// Encode packs a column vector as the row major concatenation of its
// per polynomial packings at eps bits per coefficient.
func (m Matrix) Encode(eps uint) []byte {
	if m.Cols != 1 {
		panic("saber/mat: encode of non column matrix")
	}
	blen := poly.EncodedLen(eps)
	dst := make([]byte, 0, m.Rows*blen)
	for i := 0; i < m.Rows; i++ {
		dst = append(dst, m.Elems[i].Encode(eps)...)
	}
	return dst
}

// DecodeVec unpacks a column vector of the given height from b at eps
// bits per coefficient.
func DecodeVec(rows int, eps uint, b []byte) Matrix {
	blen := poly.EncodedLen(eps)
	if len(b) != rows*blen {
		panic(fmt.Sprintf("saber/mat: encoded length %d, want %d", len(b), rows*blen))
	}
	v := New(rows, 1)
	for i := 0; i < rows; i++ {
		v.Elems[i] = poly.Decode(eps, b[i*blen:(i+1)*blen])
	}
	return v
}

// GenMatrix expands seed into the public matrix A over Rq by squeezing
// l*l*eps*N/8 bytes out of SHAKE-128 and decoding each block.
func GenMatrix(l int, eps uint, seed []byte) Matrix {
	blen := poly.EncodedLen(eps)
	buf := make([]byte, l*l*blen)

	xof := sha3.NewShake128()
	xof.Write(seed)
	xof.Read(buf)

	m := New(l, l)
	for i := range m.Elems {
		m.Elems[i] = poly.Decode(eps, buf[i*blen:(i+1)*blen])
	}
	return m
}

// GenSecret expands seed into the secret vector s by squeezing
// l*mu*N/8 bytes out of SHAKE-128 and sampling each block, with the
// centered binomial sampler or the uniform one of the "u" profiles.
func GenSecret(l int, mu uint, uniform bool, seed []byte) Matrix {
	blen := int(mu) * poly.N / 8
	buf := make([]byte, l*blen)

	xof := sha3.NewShake128()
	xof.Write(seed)
	xof.Read(buf)

	v := New(l, 1)
	for i := 0; i < l; i++ {
		block := buf[i*blen : (i+1)*blen]
		if uniform {
			v.Elems[i] = poly.UniformSample(block)
		} else {
			v.Elems[i] = poly.CBD(mu, block)
		}
	}
	return v
}
