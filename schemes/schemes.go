// SPDX-FileCopyrightText: © 2025 David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package schemes is a name based registry of the Saber KEM schemes.
package schemes

import (
	"fmt"
	"strings"

	"github.com/katzenpost/hpqc/kem"

	"github.com/katzenpost/saber"
)

var allSchemes = [...]kem.Scheme{
	saber.LightSaber(),
	saber.Saber(),
	saber.FireSaber(),
	saber.ULightSaber(),
	saber.USaber(),
	saber.UFireSaber(),
}

var allSchemeNames map[string]kem.Scheme

func init() {
	allSchemeNames = make(map[string]kem.Scheme)
	for _, scheme := range allSchemes {
		allSchemeNames[strings.ToLower(scheme.Name())] = scheme
	}
}

// ByName returns the KEM scheme by string name.
func ByName(name string) kem.Scheme {
	ret := allSchemeNames[strings.ToLower(name)]
	if ret == nil {
		panic(fmt.Sprintf("no such name as %s\n", name))
	}
	return ret
}

// All returns all KEM schemes supported.
func All() []kem.Scheme {
	a := allSchemes
	return a[:]
}
