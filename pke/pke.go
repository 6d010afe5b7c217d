// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package pke implements the Saber public key encryption scheme, the
// learning-with-rounding core that the KEM's CCA transform wraps. It is
// deterministic in its seeds and encrypts fixed 32 byte messages.
package pke

import (
	"errors"

	"golang.org/x/crypto/sha3"

	"github.com/katzenpost/saber/mat"
	"github.com/katzenpost/saber/params"
	"github.com/katzenpost/saber/poly"
	"github.com/katzenpost/saber/zq"
)

// MessageSize is the byte length of a plain text message.
const MessageSize = 32

var (
	// ErrSeedSize is returned when a seed is not 32 bytes.
	ErrSeedSize = errors.New("saber/pke: wrong seed size")

	// ErrMessageSize is returned when a message is not 32 bytes.
	ErrMessageSize = errors.New("saber/pke: wrong message size")

	// ErrPublicKeySize is returned when a public key has the wrong length.
	ErrPublicKeySize = errors.New("saber/pke: wrong public key size")

	// ErrPrivateKeySize is returned when a private key has the wrong length.
	ErrPrivateKeySize = errors.New("saber/pke: wrong private key size")

	// ErrCiphertextSize is returned when a cipher text has the wrong length.
	ErrCiphertextSize = errors.New("saber/pke: wrong cipher text size")
)

// h1Poly is the rounding constant polynomial: every coefficient is
// 2^(eq-ep-1).
func h1Poly(ps *params.ParameterSet) poly.Poly {
	return poly.Constant(zq.Zq(1) << (ps.EpsQ - ps.EpsP - 1))
}

// hVec is the L high column vector of h1.
func hVec(ps *params.ParameterSet) mat.Matrix {
	h := mat.New(ps.L, 1)
	h1 := h1Poly(ps)
	for i := 0; i < ps.L; i++ {
		h.Elems[i] = h1
	}
	return h
}

// h2Poly is the decryption rounding constant polynomial: every
// coefficient is 2^(ep-2) - 2^(ep-et-1) + 2^(eq-ep-1).
func h2Poly(ps *params.ParameterSet) poly.Poly {
	v := uint16(1)<<(ps.EpsP-2) - uint16(1)<<(ps.EpsP-ps.EpsT-1) + uint16(1)<<(ps.EpsQ-ps.EpsP-1)
	return poly.Constant(zq.Zq(v))
}

// KeyGen deterministically derives a key pair from the two seeds. The
// public key is pack(b_p) || seedA', the private key is pack(s).
func KeyGen(ps *params.ParameterSet, seedA, seedS []byte) (pk, sk []byte, err error) {
	if err := ps.Validate(); err != nil {
		return nil, nil, err
	}
	if len(seedA) != params.SeedSize || len(seedS) != params.SeedSize {
		return nil, nil, ErrSeedSize
	}

	// The matrix seed goes through SHAKE-128 once so that the public
	// key never exposes caller supplied randomness directly.
	hashedSeedA := make([]byte, params.SeedSize)
	xof := sha3.NewShake128()
	xof.Write(seedA)
	xof.Read(hashedSeedA)

	a := mat.GenMatrix(ps.L, ps.EpsQ, hashedSeedA)
	s := mat.GenSecret(ps.L, ps.Mu, ps.UniformSampling, seedS)

	b := a.Transpose().MulVec(s).Add(hVec(ps))
	bp := b.Shr(ps.EpsQ - ps.EpsP).Reduce(ps.EpsP)

	sk = s.Encode(ps.EpsQ)
	pk = append(bp.Encode(ps.EpsP), hashedSeedA...)
	return pk, sk, nil
}

// Encrypt encrypts a 32 byte message under pk, deterministically in
// seedS. The cipher text is pack_p(b'_p) || pack_t(c_m).
func Encrypt(ps *params.ParameterSet, msg, seedS, pk []byte) (ct []byte, err error) {
	if err := ps.Validate(); err != nil {
		return nil, err
	}
	if len(msg) != MessageSize {
		return nil, ErrMessageSize
	}
	if len(seedS) != params.SeedSize {
		return nil, ErrSeedSize
	}
	if len(pk) != ps.PKEPublicKeySize() {
		return nil, ErrPublicKeySize
	}

	vlen := ps.L * int(ps.EpsP) * poly.N / 8
	bBytes, seedA := pk[:vlen], pk[vlen:]

	a := mat.GenMatrix(ps.L, ps.EpsQ, seedA)
	sPrm := mat.GenSecret(ps.L, ps.Mu, ps.UniformSampling, seedS)

	bPrm := a.MulVec(sPrm).Add(hVec(ps))
	bPrmP := bPrm.Shr(ps.EpsQ - ps.EpsP).Reduce(ps.EpsP)

	b := mat.DecodeVec(ps.L, ps.EpsP, bBytes)
	vPrm := b.InnerProd(sPrm.Reduce(ps.EpsP))

	m := poly.Decode(1, msg)
	mp := m.Shl(ps.EpsP - 1).Reduce(ps.EpsP)

	h1p := h1Poly(ps).Reduce(ps.EpsP)
	cm := vPrm.Sub(mp).Add(h1p).Shr(ps.EpsP - ps.EpsT).Reduce(ps.EpsT)

	return append(bPrmP.Encode(ps.EpsP), cm.Encode(ps.EpsT)...), nil
}

// Decrypt recovers the 32 byte message from a cipher text. It is total:
// any input of the right length decrypts to some message.
func Decrypt(ps *params.ParameterSet, ct, sk []byte) (msg []byte, err error) {
	if err := ps.Validate(); err != nil {
		return nil, err
	}
	if len(ct) != ps.CiphertextSize() {
		return nil, ErrCiphertextSize
	}
	if len(sk) != ps.PKEPrivateKeySize() {
		return nil, ErrPrivateKeySize
	}

	s := mat.DecodeVec(ps.L, ps.EpsQ, sk)

	vlen := ps.L * int(ps.EpsP) * poly.N / 8
	bBytes, cmBytes := ct[:vlen], ct[vlen:]

	cm := poly.Decode(ps.EpsT, cmBytes).Shl(ps.EpsP - ps.EpsT)
	bPrm := mat.DecodeVec(ps.L, ps.EpsP, bBytes)

	v := bPrm.InnerProd(s.Reduce(ps.EpsP))

	h2p := h2Poly(ps).Reduce(ps.EpsP)
	mp := v.Sub(cm.Reduce(ps.EpsP)).Add(h2p).Shr(ps.EpsP - 1).Reduce(1)

	return mp.Encode(1), nil
}
