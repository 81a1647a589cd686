/*
 * Copyright (c) 2016 The btcsuite developers
 * Copyright (c) 2021 The nmcd developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestDifficultyAdjustmentInterval ensures the retarget interval is derived
// from the target timespan and spacing rather than stored on its own.
func TestDifficultyAdjustmentInterval(t *testing.T) {
	for _, params := range []*Params{&MainNetParams, &TestNet3Params, &RegressionNetParams} {
		want := params.PowTargetTimespan / params.PowTargetSpacing
		if got := params.DifficultyAdjustmentInterval(); got != want {
			t.Errorf("%s: DifficultyAdjustmentInterval = %d, want %d",
				params.Name, got, want)
		}
	}

	custom := Params{PowTargetSpacing: 60, PowTargetTimespan: 60 * 60}
	if got := custom.DifficultyAdjustmentInterval(); got != 60 {
		t.Errorf("DifficultyAdjustmentInterval = %d, want 60", got)
	}
}

// TestAllowMinDifficultyBlocks ensures the relaxation is unreachable on
// networks without the flag and honours the strict cutoff on the rest.
func TestAllowMinDifficultyBlocks(t *testing.T) {
	cutoff := TestNet3Params.MinDifficultySince

	tests := []struct {
		name      string
		params    *Params
		blockTime int64
		want      bool
	}{
		{"mainnet zero time", &MainNetParams, 0, false},
		{"mainnet recent time", &MainNetParams, 1600000000, false},
		{"mainnet max time", &MainNetParams, 1<<63 - 1, false},

		{"testnet before cutoff", &TestNet3Params, cutoff - 1, false},
		{"testnet at cutoff", &TestNet3Params, cutoff, false},
		{"testnet after cutoff", &TestNet3Params, cutoff + 1, true},

		{"regtest at cutoff", &RegressionNetParams, 0, false},
		{"regtest after cutoff", &RegressionNetParams, 1, true},
	}

	for _, test := range tests {
		if got := test.params.AllowMinDifficultyBlocks(test.blockTime); got != test.want {
			t.Errorf("%s: AllowMinDifficultyBlocks(%d) = %v, want %v",
				test.name, test.blockTime, got, test.want)
		}
	}
}

// TestAllowLegacyBlocks exercises the auxpow cut-over, including the negative
// sentinel meaning legacy headers never retire.
func TestAllowLegacyBlocks(t *testing.T) {
	unbounded := Params{LegacyBlocksBefore: -1}
	bounded := Params{LegacyBlocksBefore: 5000}

	tests := []struct {
		name   string
		params *Params
		height int32
		want   bool
	}{
		{"unbounded genesis", &unbounded, 0, true},
		{"unbounded far future", &unbounded, 10000000, true},

		{"bounded below", &bounded, 4999, true},
		{"bounded at boundary", &bounded, 5000, false},
		{"bounded above", &bounded, 5001, false},

		{"mainnet last legacy", &MainNetParams, MainNetParams.LegacyBlocksBefore - 1, true},
		{"mainnet first auxpow-only", &MainNetParams, MainNetParams.LegacyBlocksBefore, false},

		{"testnet genesis", &TestNet3Params, 0, true},
		{"testnet far future", &TestNet3Params, 10000000, true},

		{"regtest genesis", &RegressionNetParams, 0, false},
	}

	for _, test := range tests {
		if got := test.params.AllowLegacyBlocks(test.height); got != test.want {
			t.Errorf("%s: AllowLegacyBlocks(%d) = %v, want %v",
				test.name, test.height, got, test.want)
		}
	}
}

// TestDeploymentSentinels ensures the version-bits sentinels are stored and
// returned verbatim; interpreting them is the signaling state machine's job.
func TestDeploymentSentinels(t *testing.T) {
	params := Params{
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber:  28,
				StartTime:  AlwaysActiveStartTime,
				ExpireTime: NoTimeout,
			},
		},
	}

	got := params.Deployments[DeploymentTestDummy]
	if got.StartTime != AlwaysActiveStartTime || got.ExpireTime != NoTimeout {
		t.Fatalf("deployment sentinels were mangled: %s", spew.Sdump(got))
	}
	if got.BitNumber != 28 {
		t.Fatalf("deployment bit was mangled: %s", spew.Sdump(got))
	}
}

// TestDeploymentBitsUnique verifies that no built-in network assigns the same
// version bit to two deployment slots.
func TestDeploymentBitsUnique(t *testing.T) {
	for _, params := range []*Params{&MainNetParams, &TestNet3Params, &RegressionNetParams} {
		seen := map[uint8]int{}
		for pos, deployment := range params.Deployments {
			if prev, ok := seen[deployment.BitNumber]; ok {
				t.Errorf("%s: deployments %d and %d share version bit %d",
					params.Name, prev, pos, deployment.BitNumber)
			}
			seen[deployment.BitNumber] = pos
		}
	}
}

// TestBlockSubsidy checks the halving schedule on both the main and
// regression networks.
func TestBlockSubsidy(t *testing.T) {
	tests := []struct {
		name   string
		params *Params
		height int32
		want   int64
	}{
		{"mainnet genesis", &MainNetParams, 0, 50 * SatoshiPerCoin},
		{"mainnet before first halving", &MainNetParams, 209999, 50 * SatoshiPerCoin},
		{"mainnet first halving", &MainNetParams, 210000, 25 * SatoshiPerCoin},
		{"mainnet second halving", &MainNetParams, 420000, 50 * SatoshiPerCoin / 4},
		{"mainnet shifted out", &MainNetParams, 210000 * 64, 0},

		{"regtest first halving", &RegressionNetParams, 150, 25 * SatoshiPerCoin},
	}

	for _, test := range tests {
		if got := test.params.BlockSubsidy(test.height); got != test.want {
			t.Errorf("%s: BlockSubsidy(%d) = %d, want %d",
				test.name, test.height, got, test.want)
		}
	}
}
