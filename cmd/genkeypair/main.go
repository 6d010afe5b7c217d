// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"flag"
	"fmt"

	kempem "github.com/katzenpost/hpqc/kem/pem"

	"github.com/katzenpost/saber/schemes"
	"github.com/katzenpost/saber/utils"
)

const (
	writingKeypairFormat = "Writing keypair to %s and %s\n"
	errBothKeysExist     = "both keys already exist"
	errOneKeyExists      = "one of the keys already exists"
)

func checkKeyFilesExist(privout, pubout string) {
	fmt.Printf(writingKeypairFormat, pubout, privout)

	switch {
	case utils.BothExists(privout, pubout):
		panic(errBothKeysExist)
	case utils.BothNotExists(privout, pubout):
		return
	default:
		panic(errOneKeyExists)
	}
}

func generateKeypair(schemeName, outName string) {
	pubout := fmt.Sprintf("%s.kem_public.pem", outName)
	privout := fmt.Sprintf("%s.kem_private.pem", outName)

	checkKeyFilesExist(privout, pubout)

	scheme := schemes.ByName(schemeName)
	pubkey, privkey, err := scheme.GenerateKeyPair()
	if err != nil {
		panic(err)
	}

	if err := kempem.PublicKeyToFile(pubout, pubkey); err != nil {
		panic(err)
	}
	if err := kempem.PrivateKeyToFile(privout, privkey); err != nil {
		panic(err)
	}
}

func main() {
	schemeName := flag.String("scheme", "Saber", "name of the parameter set")
	outName := flag.String("out", "saber", "output file name prefix")
	flag.Parse()

	if *schemeName == "" {
		panic("scheme cannot be empty")
	}
	if *outName == "" {
		panic("out cannot be empty")
	}

	generateKeypair(*schemeName, *outName)
}
