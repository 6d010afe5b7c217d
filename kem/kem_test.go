// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package kem

import (
	"testing"

	"github.com/katzenpost/hpqc/rand"
	"github.com/stretchr/testify/require"

	"github.com/katzenpost/saber/params"
)

func testSeeds(t *testing.T, key string, n int) [][]byte {
	rng, err := rand.NewDeterministicRandReader([]byte(key))
	require.NoError(t, err)

	seeds := make([][]byte, n)
	for i := range seeds {
		seeds[i] = make([]byte, params.SeedSize)
		_, err := rng.Read(seeds[i])
		require.NoError(t, err)
	}
	return seeds
}

func TestRoundTrip(t *testing.T) {
	for _, ps := range params.All() {
		t.Run(ps.Name, func(t *testing.T) {
			seeds := testSeeds(t, "saber kem round trip test keyyyy", 4)

			pk, sk, err := KeyGen(ps, seeds[0], seeds[1], seeds[2])
			require.NoError(t, err)
			require.Len(t, pk, ps.PublicKeySize())
			require.Len(t, sk, ps.PrivateKeySize())

			ct, ss, err := Encapsulate(ps, seeds[3], pk)
			require.NoError(t, err)
			require.Len(t, ct, ps.CiphertextSize())
			require.Len(t, ss, params.SharedKeySize)

			ss2, err := Decapsulate(ps, ct, sk)
			require.NoError(t, err)
			require.Equal(t, ss, ss2)
		})
	}
}

func TestKeyGenDeterministic(t *testing.T) {
	seeds := testSeeds(t, "saber kem determinism test keyyy", 3)

	for _, ps := range params.All() {
		pk1, sk1, err := KeyGen(ps, seeds[0], seeds[1], seeds[2])
		require.NoError(t, err)
		pk2, sk2, err := KeyGen(ps, seeds[0], seeds[1], seeds[2])
		require.NoError(t, err)

		require.Equal(t, pk1, pk2)
		require.Equal(t, sk1, sk2)
	}
}

func TestTamperedCiphertextRejected(t *testing.T) {
	seeds := testSeeds(t, "saber kem tampered ct test keyyy", 4)
	ps := params.Saber

	pk, sk, err := KeyGen(ps, seeds[0], seeds[1], seeds[2])
	require.NoError(t, err)
	ct, ss, err := Encapsulate(ps, seeds[3], pk)
	require.NoError(t, err)

	for _, pos := range []int{0, 1, len(ct) / 2, len(ct) - 1} {
		tampered := make([]byte, len(ct))
		copy(tampered, ct)
		tampered[pos] ^= 0x01

		ssPrm, err := Decapsulate(ps, tampered, sk)
		require.NoError(t, err)
		require.Len(t, ssPrm, params.SharedKeySize)
		require.NotEqual(t, ss, ssPrm, "flip at %d", pos)

		// Implicit rejection is deterministic in (z, ct).
		ssPrm2, err := Decapsulate(ps, tampered, sk)
		require.NoError(t, err)
		require.Equal(t, ssPrm, ssPrm2)
	}
}

// Decapsulation is total: any byte string of the right length yields a
// 32 byte session key.
func TestDecapsulateTotal(t *testing.T) {
	seeds := testSeeds(t, "saber kem totality test keyyyyyy", 3)

	rng, err := rand.NewDeterministicRandReader([]byte("saber kem garbage ct test keyyyy"))
	require.NoError(t, err)

	for _, ps := range params.All() {
		_, sk, err := KeyGen(ps, seeds[0], seeds[1], seeds[2])
		require.NoError(t, err)

		for trial := 0; trial < 4; trial++ {
			garbage := make([]byte, ps.CiphertextSize())
			_, err := rng.Read(garbage)
			require.NoError(t, err)

			ss, err := Decapsulate(ps, garbage, sk)
			require.NoError(t, err)
			require.Len(t, ss, params.SharedKeySize)
		}
	}
}

// Replacing the trailing z field of the private key changes the session
// key returned for an invalid cipher text, and leaves the session key
// for a valid cipher text unchanged.
func TestRejectionKeyDependsOnZ(t *testing.T) {
	seeds := testSeeds(t, "saber kem z dependence test keyy", 5)
	ps := params.Saber

	pk, sk, err := KeyGen(ps, seeds[0], seeds[1], seeds[2])
	require.NoError(t, err)
	ct, ss, err := Encapsulate(ps, seeds[3], pk)
	require.NoError(t, err)

	skPrm := make([]byte, len(sk))
	copy(skPrm, sk)
	copy(skPrm[len(skPrm)-params.SeedSize:], seeds[4])

	tampered := make([]byte, len(ct))
	copy(tampered, ct)
	tampered[0] ^= 0x80

	rej1, err := Decapsulate(ps, tampered, sk)
	require.NoError(t, err)
	rej2, err := Decapsulate(ps, tampered, skPrm)
	require.NoError(t, err)
	require.NotEqual(t, rej1, rej2)

	ok1, err := Decapsulate(ps, ct, sk)
	require.NoError(t, err)
	ok2, err := Decapsulate(ps, ct, skPrm)
	require.NoError(t, err)
	require.Equal(t, ss, ok1)
	require.Equal(t, ss, ok2)
}

func TestArgumentValidation(t *testing.T) {
	seeds := testSeeds(t, "saber kem validation test keyyyy", 4)
	ps := params.LightSaber

	pk, sk, err := KeyGen(ps, seeds[0], seeds[1], seeds[2])
	require.NoError(t, err)

	_, _, err = KeyGen(ps, seeds[0], seeds[1], seeds[2][:16])
	require.Error(t, err)

	_, _, err = Encapsulate(ps, seeds[3][:16], pk)
	require.Error(t, err)
	_, _, err = Encapsulate(ps, seeds[3], pk[:len(pk)-1])
	require.Error(t, err)

	_, err = Decapsulate(ps, make([]byte, ps.CiphertextSize()-1), sk)
	require.Error(t, err)
	_, err = Decapsulate(ps, make([]byte, ps.CiphertextSize()), sk[:len(sk)-1])
	require.Error(t, err)
}
