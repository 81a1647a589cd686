/*
 * Copyright (c) 2014-2016 The btcsuite developers
 * Copyright (c) 2021 The nmcd developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import "gitlab.com/nmcore/nmcd/types/wire"

// TestNet3Params defines the network parameters for the test nmc network
// (version 3).  Not to be confused with the regression test network, this
// network is sometimes simply called "testnet".
var TestNet3Params = Params{
	Name:        "testnet3",
	Net:         wire.TestNet3,
	DefaultPort: "18334",
	DNSSeeds: []DNSSeed{
		{"dnsseed.test.nmc.dotbit.zone", true},
		{"nmc-test.seed.quisquis.de", false},
	},

	// Chain parameters
	GenesisHash:            testNet3GenesisHash,
	SubsidyHalvingInterval: 210000,
	BIP16Height:            0, // Always active on testnet
	BIP34Height:            130000,
	BIP34Hash:              *newHashFromStr("0000008063e1a00b1ca22a9543023b2e2551fdb1c7f76f5bde85f313e0661c23"),
	BIP65Height:            130000,
	BIP66Height:            130000,

	// Consensus rule change deployments.
	//
	// The miner confirmation window is defined as:
	//   target proof of work timespan / target proof of work spacing
	RuleChangeActivationThreshold: 1512, // 75% of MinerConfirmationWindow
	MinerConfirmationWindow:       2016,
	Deployments: [DefinedDeployments]ConsensusDeployment{
		DeploymentTestDummy: {
			BitNumber:  28,
			StartTime:  1199145601, // January 1, 2008 UTC
			ExpireTime: 1230767999, // December 31, 2008 UTC
		},
	},

	// Proof of work parameters.  Minimum difficulty blocks only became
	// acceptable on testnet after the March 2014 reset; older historical
	// blocks still validate under the original rule.
	PowLimit:                    testNet3PowLimit,
	PowAllowMinDifficultyBlocks: true,
	MinDifficultySince:          1394838000, // 15 Mar 2014
	PowNoRetargeting:            false,
	PowTargetSpacing:            60 * 10,           // 10 minutes
	PowTargetTimespan:           60 * 60 * 24 * 14, // 14 days

	// The best chain should have at least this much work.
	MinimumChainWork: *newHashFromStr("0000000000000000000000000000000000000000000000000025d312067a5bbf"),

	// By default assume that the signatures in ancestors of this block are
	// valid.
	DefaultAssumeValid: *newHashFromStr("e21398dd45d5b055e78898c3cdc13eb210b93ace0e6e4b4cbb9a3480e80498b1"),

	// Auxpow (merge mining) parameters.  The test network has accepted
	// merge-mined blocks from genesis and never retired legacy block
	// versions.
	AuxpowChainID:      1,
	AuxpowStartHeight:  0,
	StrictChainID:      false,
	LegacyBlocksBefore: -1,

	// Name handling rules.
	Rules: TestNetRules,

	// Checkpoints ordered from oldest to newest.
	Checkpoints: nil,

	// Mempool parameters
	RelayNonStdTxs: true,

	// Address encoding magics
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
	PrivateKeyID:     0xef, // starts with 9 (uncompressed) or c (compressed)

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType: 1,
}
