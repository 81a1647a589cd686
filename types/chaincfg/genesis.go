/*
 * Copyright (c) 2014-2016 The btcsuite developers
 * Copyright (c) 2021 The nmcd developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

// The hashes below are hard-coded and parsed during package initialization.
// A malformed literal panics there, which is the intended behaviour: a node
// must never come up with a half-valid network definition.
var (
	// genesisHash is the hash of the first block in the block chain for the
	// main network (genesis block).
	genesisHash = newHashFromStr("000000000062b72c5e2ceb45fbc8587e807c155b0da735e6483dfba2f23e2f3b")

	// testNet3GenesisHash is the hash of the first block in the block chain
	// for the test network (version 3).
	testNet3GenesisHash = newHashFromStr("00000007199508e34a9ff81e6ec0c477a4cccff2a4767a8eee39c11db367b008")

	// regTestGenesisHash is the hash of the first block in the block chain
	// for the regression test network.
	regTestGenesisHash = newHashFromStr("0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206")
)
