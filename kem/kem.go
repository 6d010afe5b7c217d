// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package kem implements the Fujisaki-Okamoto style CCA transform that
// turns the Saber public key encryption scheme into an IND-CCA2 secure
// KEM. All three operations are deterministic functions of their
// inputs; callers supply seeds, typically from a system entropy source.
//
// Decapsulation performs implicit rejection: an inauthentic cipher text
// is never reported, the returned session key is instead a pseudo
// random function of the rejection secret z and the cipher text.
package kem

import (
	"golang.org/x/crypto/sha3"

	"github.com/katzenpost/saber/params"
	"github.com/katzenpost/saber/pke"
	"github.com/katzenpost/saber/utils"
)

// KeyGen deterministically derives a KEM key pair from seedA, seedS and
// the rejection secret z. The private key layout is
// sk_pke || pk || H(pk) || z.
func KeyGen(ps *params.ParameterSet, seedA, seedS, z []byte) (pk, sk []byte, err error) {
	if len(z) != params.SeedSize {
		return nil, nil, pke.ErrSeedSize
	}

	pk, skPKE, err := pke.KeyGen(ps, seedA, seedS)
	if err != nil {
		return nil, nil, err
	}

	hpk := sha3.Sum256(pk)

	sk = make([]byte, 0, ps.PrivateKeySize())
	sk = append(sk, skPKE...)
	sk = append(sk, pk...)
	sk = append(sk, hpk[:]...)
	sk = append(sk, z...)
	return pk, sk, nil
}

// Encapsulate derives a cipher text and a 32 byte session key from the
// 32 byte seed m and the public key.
func Encapsulate(ps *params.ParameterSet, m, pk []byte) (ct, ss []byte, err error) {
	if err := ps.Validate(); err != nil {
		return nil, nil, err
	}
	if len(m) != params.SeedSize {
		return nil, nil, pke.ErrSeedSize
	}
	if len(pk) != ps.PublicKeySize() {
		return nil, nil, pke.ErrPublicKeySize
	}

	hm := sha3.Sum256(m)
	hpk := sha3.Sum256(pk)

	g := sha3.New512()
	g.Write(hm[:])
	g.Write(hpk[:])
	kr := g.Sum(nil)
	k, r := kr[:params.SharedKeySize], kr[params.SharedKeySize:]

	ct, err = pke.Encrypt(ps, hm[:], r, pk)
	if err != nil {
		return nil, nil, err
	}

	rPrm := sha3.Sum256(ct)

	h := sha3.New256()
	h.Write(k)
	h.Write(rPrm[:])
	return ct, h.Sum(nil), nil
}

// Decapsulate recovers the session key encapsulated in ct. It never
// branches on the authenticity of ct: the re-encryption comparison and
// the key selection both run in constant time, and an invalid cipher
// text yields the implicit rejection key derived from z.
func Decapsulate(ps *params.ParameterSet, ct, sk []byte) (ss []byte, err error) {
	if err := ps.Validate(); err != nil {
		return nil, err
	}
	if len(ct) != ps.CiphertextSize() {
		return nil, pke.ErrCiphertextSize
	}
	if len(sk) != ps.PrivateKeySize() {
		return nil, pke.ErrPrivateKeySize
	}

	skLen := ps.PKEPrivateKeySize()
	pkLen := ps.PKEPublicKeySize()

	skPKE := sk[:skLen]
	pk := sk[skLen : skLen+pkLen]
	hpk := sk[skLen+pkLen : skLen+pkLen+params.SharedKeySize]
	z := sk[skLen+pkLen+params.SharedKeySize:]

	m, err := pke.Decrypt(ps, ct, skPKE)
	if err != nil {
		return nil, err
	}

	g := sha3.New512()
	g.Write(m)
	g.Write(hpk)
	kr := g.Sum(nil)
	k, r := kr[:params.SharedKeySize], kr[params.SharedKeySize:]

	ctPrm, err := pke.Encrypt(ps, m, r, pk)
	if err != nil {
		return nil, err
	}

	flag := utils.CtEqBytes(ct, ctPrm)
	temp := make([]byte, params.SharedKeySize)
	utils.CtSelBytes(flag, temp, k, z)

	rPrm := sha3.Sum256(ct)

	h := sha3.New256()
	h.Write(temp)
	h.Write(rPrm[:])
	return h.Sum(nil), nil
}
