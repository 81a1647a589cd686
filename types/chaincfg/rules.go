/*
 * Copyright (c) 2021 The nmcd developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

// ConsensusRules exposes the per-network consensus behaviour that cannot be
// expressed as a plain constant.  Every method is a pure, total function of a
// block height: no I/O, no mutation and no error path, so the rule table may
// be shared by any number of validator goroutines without synchronization.
type ConsensusRules interface {
	// NameExpirationDepth returns the number of blocks after which a name
	// registered at the given height expires unless renewed.
	NameExpirationDepth(height int32) int32

	// MinNameCoinAmount returns the minimum amount of satoshi that must be
	// locked in a name output at the given height.
	MinNameCoinAmount(height int32) int64
}

// Each network provides its own complete rule set so that the full behaviour
// of a variant is visible at its definition.  The exhaustiveness of the set
// is enforced at compile time by the interface satisfaction below.
var (
	// MainNetRules is the rule table for the main network.
	MainNetRules ConsensusRules = mainNetRules{}

	// TestNetRules is the rule table for the test network.  It keeps the
	// main network expiration schedule but has enforced the anti-spam name
	// floor since genesis.
	TestNetRules ConsensusRules = testNetRules{}

	// RegTestRules is the rule table for the regression test network.
	// Names expire after a handful of blocks so expiration is observable
	// on short local chains.
	RegTestRules ConsensusRules = regTestRules{}
)

type mainNetRules struct{}
type testNetRules struct{}
type regTestRules struct{}

// mainNetExpirationDepth is the expiration schedule shared by the main and
// test networks: a 12000 block plateau, a linear ramp between heights 24000
// and 48000, then a 36000 block plateau.
//
// Name expiration walks the chain forward and never revisits heights it has
// already finalized, so the oldest still-valid height h-depth(h) must be
// non-decreasing in h.  Below 24000 it is h-12000, inside the ramp it is the
// constant 12000, above 48000 it is h-36000; the pieces meet without a
// backward jump at either boundary.
func mainNetExpirationDepth(height int32) int32 {
	if height < 24000 {
		return 12000
	}
	if height < 48000 {
		return height - 12000
	}

	return 36000
}

func (mainNetRules) NameExpirationDepth(height int32) int32 {
	return mainNetExpirationDepth(height)
}

// MinNameCoinAmount on the main network was zero until the anti-spam floor
// activated at height 212500.
func (mainNetRules) MinNameCoinAmount(height int32) int64 {
	if height < 212500 {
		return 0
	}

	return SatoshiPerCoin / 100
}

func (testNetRules) NameExpirationDepth(height int32) int32 {
	return mainNetExpirationDepth(height)
}

func (testNetRules) MinNameCoinAmount(height int32) int64 {
	return SatoshiPerCoin / 100
}

func (regTestRules) NameExpirationDepth(height int32) int32 {
	return 30
}

func (regTestRules) MinNameCoinAmount(height int32) int64 {
	return SatoshiPerCoin / 100
}
