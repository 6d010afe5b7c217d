// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package mat

import (
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katzenpost/saber/poly"
	"github.com/katzenpost/saber/zq"
)

func randomVec(rng *mrand.Rand, rows int, eps uint) Matrix {
	v := New(rows, 1)
	for i := range v.Elems {
		for j := 0; j < poly.N; j++ {
			v.Elems[i][j] = zq.Zq(rng.Intn(1 << eps))
		}
	}
	return v
}

func TestVectorCodecRoundTrip(t *testing.T) {
	rng := mrand.New(mrand.NewSource(21))

	for _, rows := range []int{2, 3, 4} {
		for _, eps := range []uint{1, 3, 4, 5, 6, 10, 12, 13} {
			v := randomVec(rng, rows, eps)
			b := v.Encode(eps)
			require.Len(t, b, rows*poly.EncodedLen(eps))
			require.Equal(t, v, DecodeVec(rows, eps, b), "rows %d width %d", rows, eps)
		}
	}
}

func TestTransposeInvolution(t *testing.T) {
	rng := mrand.New(mrand.NewSource(22))

	for _, l := range []int{2, 3, 4} {
		m := New(l, l)
		for i := range m.Elems {
			for j := 0; j < poly.N; j++ {
				m.Elems[i][j] = zq.Zq(rng.Intn(1 << 13))
			}
		}
		require.Equal(t, m, m.Transpose().Transpose())
	}
}

func TestMulVecAgainstManual(t *testing.T) {
	rng := mrand.New(mrand.NewSource(23))

	l := 3
	m := New(l, l)
	for i := range m.Elems {
		for j := 0; j < poly.N; j++ {
			m.Elems[i][j] = zq.Zq(rng.Intn(1 << 13))
		}
	}
	v := randomVec(rng, l, 13)

	got := m.MulVec(v)
	require.Equal(t, l, got.Rows)
	require.Equal(t, 1, got.Cols)

	for i := 0; i < l; i++ {
		var want poly.Poly
		for j := 0; j < l; j++ {
			want = want.Add(m.At(i, j).Mul(*v.At(j, 0)))
		}
		require.Equal(t, want, got.Elems[i])
	}
}

func TestInnerProdSymmetric(t *testing.T) {
	rng := mrand.New(mrand.NewSource(24))

	a := randomVec(rng, 4, 10)
	b := randomVec(rng, 4, 10)
	require.Equal(t, a.InnerProd(b), b.InnerProd(a))
}

func TestGenMatrixDeterministic(t *testing.T) {
	seed := make([]byte, 32)
	seed[0] = 0xa5

	a := GenMatrix(3, 13, seed)
	b := GenMatrix(3, 13, seed)
	require.Equal(t, a, b)

	seed[0] = 0x5a
	c := GenMatrix(3, 13, seed)
	require.NotEqual(t, a, c)

	// Every coefficient must already be reduced mod q.
	for _, e := range a.Elems {
		for i := 0; i < poly.N; i++ {
			require.Equal(t, e[i], e[i].Reduce(13))
		}
	}
}

func TestGenSecretDeterministic(t *testing.T) {
	seed := make([]byte, 32)
	seed[31] = 0x77

	a := GenSecret(3, 8, false, seed)
	b := GenSecret(3, 8, false, seed)
	require.Equal(t, a, b)

	u := GenSecret(3, 2, true, seed)
	require.Equal(t, u, GenSecret(3, 2, true, seed))
	require.NotEqual(t, a, u)
}

func TestElementWiseOps(t *testing.T) {
	rng := mrand.New(mrand.NewSource(25))

	a := randomVec(rng, 3, 13)
	b := randomVec(rng, 3, 13)

	sum := a.Add(b)
	for i := range sum.Elems {
		require.Equal(t, a.Elems[i].Add(b.Elems[i]), sum.Elems[i])
	}

	rounded := a.Shr(3).Reduce(10)
	for i := range rounded.Elems {
		require.Equal(t, a.Elems[i].Shr(3).Reduce(10), rounded.Elems[i])
	}

	lifted := a.Shl(2)
	for i := range lifted.Elems {
		require.Equal(t, a.Elems[i].Shl(2), lifted.Elems[i])
	}
}

func TestShapeMismatchPanics(t *testing.T) {
	m := New(3, 3)
	v := New(2, 1)
	require.Panics(t, func() { m.MulVec(v) })
	require.Panics(t, func() { New(2, 2).Encode(10) })
	require.Panics(t, func() { v.InnerProd(New(3, 1)) })
	require.Panics(t, func() { New(2, 3).Transpose() })
}
