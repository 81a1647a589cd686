/*
 * Copyright (c) 2021 The nmcd developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

const (
	// SatoshiPerCoin is the number of satoshi in one coin (1 NMC).
	SatoshiPerCoin int64 = 1e8

	// MaxSatoshi is the maximum transaction amount allowed in satoshi.
	MaxSatoshi = 21e6 * SatoshiPerCoin

	// baseSubsidy is the starting block subsidy in satoshi.  It is halved
	// every SubsidyHalvingInterval blocks.
	baseSubsidy = 50 * SatoshiPerCoin
)
