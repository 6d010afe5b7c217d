// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package params enumerates the Saber parameter sets.
package params

import "errors"

const (
	// N is the polynomial degree shared by every parameter set.
	N = 256

	// SeedSize is the byte length of seedA, seedS, z and m.
	SeedSize = 32

	// SharedKeySize is the byte length of the derived session key.
	SharedKeySize = 32
)

// ErrParameterSet is returned when a parameter tuple is not one of the
// six named profiles.
var ErrParameterSet = errors.New("saber: invalid parameter set")

// ParameterSet is an immutable Saber parameter tuple. Only the six
// exported instances below are valid; Validate rejects anything else.
type ParameterSet struct {
	Name string

	// L is the module rank, the dimension of the matrix A.
	L int

	// EpsQ, EpsP, EpsT are the logarithms of the moduli q, p, t.
	EpsQ uint
	EpsP uint
	EpsT uint

	// Mu parameterizes the secret distribution.
	Mu uint

	// UniformSampling selects the uniform secret sampler of the
	// "u" variants instead of the centered binomial one.
	UniformSampling bool
}

var (
	LightSaber  = &ParameterSet{Name: "LightSaber", L: 2, EpsQ: 13, EpsP: 10, EpsT: 3, Mu: 10}
	Saber       = &ParameterSet{Name: "Saber", L: 3, EpsQ: 13, EpsP: 10, EpsT: 4, Mu: 8}
	FireSaber   = &ParameterSet{Name: "FireSaber", L: 4, EpsQ: 13, EpsP: 10, EpsT: 6, Mu: 6}
	ULightSaber = &ParameterSet{Name: "uLightSaber", L: 2, EpsQ: 12, EpsP: 10, EpsT: 3, Mu: 2, UniformSampling: true}
	USaber      = &ParameterSet{Name: "uSaber", L: 3, EpsQ: 12, EpsP: 10, EpsT: 4, Mu: 2, UniformSampling: true}
	UFireSaber  = &ParameterSet{Name: "uFireSaber", L: 4, EpsQ: 12, EpsP: 10, EpsT: 6, Mu: 2, UniformSampling: true}
)

// All returns the six parameter sets.
func All() []*ParameterSet {
	return []*ParameterSet{LightSaber, Saber, FireSaber, ULightSaber, USaber, UFireSaber}
}

// Validate returns ErrParameterSet unless ps matches one of the six
// named profiles field for field.
func (ps *ParameterSet) Validate() error {
	for _, known := range All() {
		if *ps == *known {
			return nil
		}
	}
	return ErrParameterSet
}

// PKEPublicKeySize is the byte length of a PKE public key:
// the packed vector b_p followed by the 32 byte matrix seed.
func (ps *ParameterSet) PKEPublicKeySize() int {
	return ps.L*int(ps.EpsP)*N/8 + SeedSize
}

// PKEPrivateKeySize is the byte length of a packed secret vector s.
func (ps *ParameterSet) PKEPrivateKeySize() int {
	return ps.L * int(ps.EpsQ) * N / 8
}

// CiphertextSize is the byte length of a cipher text: the packed
// vector b'_p followed by the packed polynomial c_m.
func (ps *ParameterSet) CiphertextSize() int {
	return ps.L*int(ps.EpsP)*N/8 + int(ps.EpsT)*N/8
}

// PublicKeySize is the byte length of a KEM public key, identical to
// the PKE public key.
func (ps *ParameterSet) PublicKeySize() int {
	return ps.PKEPublicKeySize()
}

// PrivateKeySize is the byte length of a KEM private key:
// sk_pke || pk || H(pk) || z.
func (ps *ParameterSet) PrivateKeySize() int {
	return ps.PKEPrivateKeySize() + ps.PKEPublicKeySize() + SharedKeySize + SeedSize
}
