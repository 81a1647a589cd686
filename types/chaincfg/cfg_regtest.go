/*
 * Copyright (c) 2014-2016 The btcsuite developers
 * Copyright (c) 2021 The nmcd developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"gitlab.com/nmcore/nmcd/types/chainhash"
	"gitlab.com/nmcore/nmcd/types/wire"
)

// RegressionNetParams defines the network parameters for the regression test
// network.  Not to be confused with the test network (version 3), this
// network is sometimes simply called "testnet".
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         wire.RegTestNet,
	DefaultPort: "18445",
	DNSSeeds:    []DNSSeed{},

	// Chain parameters
	GenesisHash:            regTestGenesisHash,
	SubsidyHalvingInterval: 150,
	BIP16Height:            0,         // Always active on regtest
	BIP34Height:            100000000, // Not active - Permit ver 1 blocks
	BIP34Hash:              chainhash.Hash{},
	BIP65Height:            1351, // Used by regression tests
	BIP66Height:            1251, // Used by regression tests

	// Consensus rule change deployments.
	//
	// The miner confirmation window is defined as:
	//   target proof of work timespan / target proof of work spacing
	RuleChangeActivationThreshold: 108, // 75% of MinerConfirmationWindow
	MinerConfirmationWindow:       144,
	Deployments: [DefinedDeployments]ConsensusDeployment{
		DeploymentTestDummy: {
			BitNumber:  28,
			StartTime:  0,         // Always available for vote
			ExpireTime: NoTimeout, // Never expires
		},
	},

	// Proof of work parameters
	PowLimit:                    regressionPowLimit,
	PowAllowMinDifficultyBlocks: true,
	MinDifficultySince:          0,
	PowNoRetargeting:            true,
	PowTargetSpacing:            60 * 10,           // 10 minutes
	PowTargetTimespan:           60 * 60 * 24 * 14, // 14 days

	// The best chain should have at least this much work.
	MinimumChainWork: chainhash.Hash{},

	// By default assume that the signatures in ancestors of this block are
	// valid.
	DefaultAssumeValid: chainhash.Hash{},

	// Auxpow (merge mining) parameters.  Regression chains are merge
	// mineable from the start, demand the local chain ID, and never accept
	// legacy block versions.
	AuxpowChainID:      1,
	AuxpowStartHeight:  0,
	StrictChainID:      true,
	LegacyBlocksBefore: 0,

	// Name handling rules.  Names expire after 30 blocks so the full
	// register-renew-expire cycle is observable on a local chain.
	Rules: RegTestRules,

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
