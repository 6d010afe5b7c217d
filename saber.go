// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package saber provides hpqc KEM wrappers around the Saber key
// encapsulation mechanism, one scheme per parameter set:
// LightSaber, Saber, FireSaber and their uniform secret "u" variants.
package saber

import (
	"crypto/hmac"

	"github.com/katzenpost/hpqc/kem"
	"github.com/katzenpost/hpqc/kem/pem"
	"github.com/katzenpost/hpqc/rand"

	saberkem "github.com/katzenpost/saber/kem"
	"github.com/katzenpost/saber/params"
)

// tell the type checker that we obey these interfaces
var _ kem.Scheme = (*scheme)(nil)
var _ kem.PublicKey = (*PublicKey)(nil)
var _ kem.PrivateKey = (*PrivateKey)(nil)

var (
	lightSaber  kem.Scheme = &scheme{ps: params.LightSaber}
	saber       kem.Scheme = &scheme{ps: params.Saber}
	fireSaber   kem.Scheme = &scheme{ps: params.FireSaber}
	uLightSaber kem.Scheme = &scheme{ps: params.ULightSaber}
	uSaber      kem.Scheme = &scheme{ps: params.USaber}
	uFireSaber  kem.Scheme = &scheme{ps: params.UFireSaber}
)

// LightSaber returns the LightSaber KEM scheme.
func LightSaber() kem.Scheme { return lightSaber }

// Saber returns the Saber KEM scheme.
func Saber() kem.Scheme { return saber }

// FireSaber returns the FireSaber KEM scheme.
func FireSaber() kem.Scheme { return fireSaber }

// ULightSaber returns the uLightSaber KEM scheme.
func ULightSaber() kem.Scheme { return uLightSaber }

// USaber returns the uSaber KEM scheme.
func USaber() kem.Scheme { return uSaber }

// UFireSaber returns the uFireSaber KEM scheme.
func UFireSaber() kem.Scheme { return uFireSaber }

type PublicKey struct {
	scheme *scheme
	data   []byte
}

func (p *PublicKey) Scheme() kem.Scheme {
	return p.scheme
}

func (p *PublicKey) MarshalText() (text []byte, err error) {
	return pem.ToPublicPEMBytes(p), nil
}

func (p *PublicKey) MarshalBinary() ([]byte, error) {
	return p.data, nil
}

func (p *PublicKey) Equal(pubkey kem.PublicKey) bool {
	if pubkey.(*PublicKey).scheme != p.scheme {
		return false
	}
	return hmac.Equal(pubkey.(*PublicKey).data, p.data)
}

type PrivateKey struct {
	scheme *scheme
	data   []byte
}

func (p *PrivateKey) Scheme() kem.Scheme {
	return p.scheme
}

func (p *PrivateKey) MarshalBinary() ([]byte, error) {
	return p.data, nil
}

func (p *PrivateKey) Equal(privkey kem.PrivateKey) bool {
	if privkey.(*PrivateKey).scheme != p.scheme {
		return false
	}
	return hmac.Equal(privkey.(*PrivateKey).data, p.data)
}

// Public returns the public key embedded in the private key blob.
func (p *PrivateKey) Public() kem.PublicKey {
	ps := p.scheme.ps
	off := ps.PKEPrivateKeySize()
	return &PublicKey{
		scheme: p.scheme,
		data:   p.data[off : off+ps.PKEPublicKeySize()],
	}
}

type scheme struct {
	ps *params.ParameterSet
}

func (s *scheme) Name() string {
	return s.ps.Name
}

func (s *scheme) GenerateKeyPair() (kem.PublicKey, kem.PrivateKey, error) {
	seed := make([]byte, s.SeedSize())
	if _, err := rand.Reader.Read(seed); err != nil {
		return nil, nil, err
	}
	pubkey, privkey := s.DeriveKeyPair(seed)
	return pubkey, privkey, nil
}

func (s *scheme) Encapsulate(pk kem.PublicKey) (ct, ss []byte, err error) {
	pub, ok := pk.(*PublicKey)
	if !ok || pub.scheme != s {
		return nil, nil, kem.ErrTypeMismatch
	}

	m := make([]byte, params.SeedSize)
	if _, err := rand.Reader.Read(m); err != nil {
		return nil, nil, err
	}
	return saberkem.Encapsulate(s.ps, m, pub.data)
}

func (s *scheme) Decapsulate(sk kem.PrivateKey, ct []byte) ([]byte, error) {
	priv, ok := sk.(*PrivateKey)
	if !ok || priv.scheme != s {
		return nil, kem.ErrTypeMismatch
	}
	if len(ct) != s.CiphertextSize() {
		return nil, kem.ErrCiphertextSize
	}
	return saberkem.Decapsulate(s.ps, ct, priv.data)
}

func (s *scheme) UnmarshalBinaryPublicKey(b []byte) (kem.PublicKey, error) {
	if len(b) != s.PublicKeySize() {
		return nil, kem.ErrPubKeySize
	}
	data := make([]byte, len(b))
	copy(data, b)
	return &PublicKey{scheme: s, data: data}, nil
}

func (s *scheme) UnmarshalBinaryPrivateKey(b []byte) (kem.PrivateKey, error) {
	if len(b) != s.PrivateKeySize() {
		return nil, kem.ErrPrivKeySize
	}
	data := make([]byte, len(b))
	copy(data, b)
	return &PrivateKey{scheme: s, data: data}, nil
}

func (s *scheme) UnmarshalTextPublicKey(text []byte) (kem.PublicKey, error) {
	return pem.FromPublicPEMBytes(text, s)
}

func (s *scheme) UnmarshalTextPrivateKey(text []byte) (kem.PrivateKey, error) {
	return pem.FromPrivatePEMBytes(text, s)
}

func (s *scheme) CiphertextSize() int {
	return s.ps.CiphertextSize()
}

func (s *scheme) SharedKeySize() int {
	return params.SharedKeySize
}

func (s *scheme) PrivateKeySize() int {
	return s.ps.PrivateKeySize()
}

func (s *scheme) PublicKeySize() int {
	return s.ps.PublicKeySize()
}

// DeriveKeyPair deterministically derives a key pair from seed, which
// is the concatenation seedA || seedS || z of the three 32 byte seeds.
// It panics if the seed length is not SeedSize.
func (s *scheme) DeriveKeyPair(seed []byte) (kem.PublicKey, kem.PrivateKey) {
	if len(seed) != s.SeedSize() {
		panic(kem.ErrSeedSize)
	}

	seedA := seed[:params.SeedSize]
	seedS := seed[params.SeedSize : 2*params.SeedSize]
	z := seed[2*params.SeedSize:]

	pk, sk, err := saberkem.KeyGen(s.ps, seedA, seedS, z)
	if err != nil {
		panic(err)
	}
	return &PublicKey{scheme: s, data: pk}, &PrivateKey{scheme: s, data: sk}
}

func (s *scheme) SeedSize() int {
	return 3 * params.SeedSize
}
