// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2021 The nmcd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"gitlab.com/nmcore/nmcd/types/chaincfg"
)

// ActiveNetParams is a pointer to the parameters specific to the currently
// active nmc network.  It is assigned exactly once, by LoadConfig, before any
// other goroutine reads it.
var ActiveNetParams = &chaincfg.MainNetParams

// netName returns the name used when referring to an nmc network.  At the
// time of writing, nmcd currently places blocks for testnet version 3 in the
// data and log directory "testnet", which does not match the Name field of
// the chaincfg parameters.  This function can be used to override this
// directory name as "testnet" when the passed active network matches
// wire.TestNet3.
func netName(chainParams *chaincfg.Params) string {
	switch chainParams.Net {
	case chaincfg.TestNet3Params.Net:
		return "testnet"
	default:
		return chainParams.Name
	}
}
