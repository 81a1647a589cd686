/*
 * Copyright (c) 2014-2016 The btcsuite developers
 * Copyright (c) 2021 The nmcd developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import "gitlab.com/nmcore/nmcd/types/wire"

// MainNetParams defines the network parameters for the main nmc network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         wire.MainNet,
	DefaultPort: "8334",
	DNSSeeds: []DNSSeed{
		{"nmc.seed.quisquis.de", true},
		{"dnsseed.nmc.dotbit.zone", true},
		{"dnsseed.nmc.testls.space", false},
	},

	// Chain parameters
	GenesisHash:            genesisHash,
	SubsidyHalvingInterval: 210000,
	BIP16Height:            475000,
	BIP34Height:            250000,
	BIP34Hash:              *newHashFromStr("514ff32335590c4f4211196032397612d7d954e136c3f1b506bed346a95eb84b"),
	BIP65Height:            335000,
	BIP66Height:            250000,

	// Consensus rule change deployments.
	//
	// The miner confirmation window is defined as:
	//   target proof of work timespan / target proof of work spacing
	RuleChangeActivationThreshold: 1916, // 95% of MinerConfirmationWindow
	MinerConfirmationWindow:       2016,
	Deployments: [DefinedDeployments]ConsensusDeployment{
		DeploymentTestDummy: {
			BitNumber:  28,
			StartTime:  1199145601, // January 1, 2008 UTC
			ExpireTime: 1230767999, // December 31, 2008 UTC
		},
	},

	// Proof of work parameters
	PowLimit:                    mainPowLimit,
	PowAllowMinDifficultyBlocks: false,
	MinDifficultySince:          0,
	PowNoRetargeting:            false,
	PowTargetSpacing:            60 * 10,           // 10 minutes
	PowTargetTimespan:           60 * 60 * 24 * 14, // 14 days

	// The best chain should have at least this much work.
	MinimumChainWork: *newHashFromStr("00000000000000000000000000000000000000000000007688b8f6a9f09ef240"),

	// By default assume that the signatures in ancestors of this block are
	// valid.
	DefaultAssumeValid: *newHashFromStr("3647612312d45a8e4f5539c600f715bd9f0e335cd55f4b4c9ef309c1c17b66d8"),

	// Auxpow (merge mining) parameters.  Merge mining with the parent chain
	// began at height 19200, which is also the cut-off for legacy block
	// versions.  The chain ID check stays lax because blocks with a foreign
	// ID slipped in before it was enforced.
	AuxpowChainID:      1,
	AuxpowStartHeight:  19200,
	StrictChainID:      false,
	LegacyBlocksBefore: 19200,

	// Name handling rules.
	Rules: MainNetRules,

	// Checkpoints ordered from oldest to newest.
	Checkpoints: []Checkpoint{
		{2016, newHashFromStr("0000000000660bad0d9fbde55ba7ee14ddf766ed5f527e3fbca7ac576e13d2ff")},
		{19200, newHashFromStr("d8a7c3e01e1e95bcee015e6fcc7583a2ca60b79e5a3aa0a171eddd344ada903d")},
		{24000, newHashFromStr("425ab0983cf04f43f346a4ca53049d0dc2db952c0a68eb0b55c3bb64108d5371")},
		{97778, newHashFromStr("7553b1e43da01cfcda4335de1caf623e941d43894bd81c2af27b6582f9d83c6f")},
		{165000, newHashFromStr("823d7a54ebab04d14c4ba3508f6b5f25977406f4d389539eac0174d52c6b4b62")},
		{281000, newHashFromStr("cd36a6ff398087382b21694c3a0a72730d6b606db186a9d80bce85304b4e8fb4")},
	},

	// Mempool parameters
	RelayNonStdTxs: false,

	// Address encoding magics
	PubKeyHashAddrID: 0x34, // starts with M or N
	ScriptHashAddrID: 0x0d, // starts with 6
	PrivateKeyID:     0xb4, // starts with 7 (uncompressed) or T (compressed)

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType: 7,
}
