/*
 * Copyright (c) 2014-2016 The btcsuite developers
 * Copyright (c) 2021 The nmcd developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/nmcore/nmcd/types/chaincfg"
	"gitlab.com/nmcore/nmcd/types/chainhash"
	"gitlab.com/nmcore/nmcd/types/wire"
)

// validMockParams returns parameters for a user-registered network that pass
// validation.  Callers bend individual fields to provoke specific failures.
func validMockParams(net uint32) chaincfg.Params {
	genesis, _ := chainhash.NewHashFromStr(
		"0e9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206")

	return chaincfg.Params{
		Name:                          "mocknet",
		Net:                           wire.NmcNet(net),
		GenesisHash:                   genesis,
		SubsidyHalvingInterval:        150,
		RuleChangeActivationThreshold: 108,
		MinerConfirmationWindow:       144,
		Deployments: [chaincfg.DefinedDeployments]chaincfg.ConsensusDeployment{
			chaincfg.DeploymentTestDummy: {
				BitNumber:  28,
				StartTime:  0,
				ExpireTime: chaincfg.NoTimeout,
			},
		},
		PowLimit:           new(big.Int).SetInt64(1),
		PowTargetSpacing:   60 * 10,
		PowTargetTimespan:  60 * 60 * 24 * 14,
		LegacyBlocksBefore: -1,
		Rules:              chaincfg.RegTestRules,
		PubKeyHashAddrID:   0x9f,
		ScriptHashAddrID:   0xf9,
		HDPrivateKeyID:     [4]byte{0x01, 0x02, 0x03, 0x04},
		HDPublicKeyID:      [4]byte{0x05, 0x06, 0x07, 0x08},
	}
}

func TestRegisterDuplicate(t *testing.T) {
	// The default networks are registered during package init, so
	// registering them again must fail.
	for _, params := range []*chaincfg.Params{
		&chaincfg.MainNetParams,
		&chaincfg.TestNet3Params,
		&chaincfg.RegressionNetParams,
	} {
		err := chaincfg.Register(params)
		assert.Equal(t, chaincfg.ErrDuplicateNet, err, params.Name)
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		mangle  func(*chaincfg.Params)
		errText string
	}{
		{
			name:    "missing genesis hash",
			mangle:  func(p *chaincfg.Params) { p.GenesisHash = nil },
			errText: "genesis hash",
		},
		{
			name:    "missing rule table",
			mangle:  func(p *chaincfg.Params) { p.Rules = nil },
			errText: "rule table",
		},
		{
			name:    "missing pow limit",
			mangle:  func(p *chaincfg.Params) { p.PowLimit = nil },
			errText: "proof of work limit",
		},
		{
			name:    "zero pow spacing",
			mangle:  func(p *chaincfg.Params) { p.PowTargetSpacing = 0 },
			errText: "target spacing",
		},
		{
			name:    "negative pow timespan",
			mangle:  func(p *chaincfg.Params) { p.PowTargetTimespan = -1 },
			errText: "target timespan",
		},
		{
			name:    "zero halving interval",
			mangle:  func(p *chaincfg.Params) { p.SubsidyHalvingInterval = 0 },
			errText: "halving interval",
		},
		{
			name:    "zero confirmation window",
			mangle:  func(p *chaincfg.Params) { p.MinerConfirmationWindow = 0 },
			errText: "confirmation window",
		},
		{
			name: "threshold above window",
			mangle: func(p *chaincfg.Params) {
				p.RuleChangeActivationThreshold = p.MinerConfirmationWindow + 1
			},
			errText: "exceeds the confirmation window",
		},
		{
			name: "deployment bit out of range",
			mangle: func(p *chaincfg.Params) {
				p.Deployments[chaincfg.DeploymentTestDummy].BitNumber = 29
			},
			errText: "highest usable bit",
		},
	}

	// Distinct unused magic per case so a failed validation is never
	// shadowed by a duplicate-network error.
	nextNet := uint32(0xe0000000)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params := validMockParams(nextNet)
			nextNet++
			test.mangle(&params)

			err := chaincfg.Register(&params)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.errText)
		})
	}
}

func TestRegisterLookups(t *testing.T) {
	params := validMockParams(0xefffffff)

	// Unknown until registered.
	assert.False(t, chaincfg.IsPubKeyHashAddrID(params.PubKeyHashAddrID))
	assert.False(t, chaincfg.IsScriptHashAddrID(params.ScriptHashAddrID))
	_, err := chaincfg.HDPrivateKeyToPublicKeyID(params.HDPrivateKeyID[:])
	assert.Equal(t, chaincfg.ErrUnknownHDKeyID, err)

	require.NoError(t, chaincfg.Register(&params))

	assert.True(t, chaincfg.IsPubKeyHashAddrID(params.PubKeyHashAddrID))
	assert.True(t, chaincfg.IsScriptHashAddrID(params.ScriptHashAddrID))

	pub, err := chaincfg.HDPrivateKeyToPublicKeyID(params.HDPrivateKeyID[:])
	require.NoError(t, err)
	assert.Equal(t, params.HDPublicKeyID[:], pub)

	// Default network magics.
	assert.True(t, chaincfg.IsPubKeyHashAddrID(chaincfg.MainNetParams.PubKeyHashAddrID))
	assert.True(t, chaincfg.IsScriptHashAddrID(chaincfg.TestNet3Params.ScriptHashAddrID))
	assert.False(t, chaincfg.IsPubKeyHashAddrID(0xff))

	// Malformed HD key ids.
	_, err = chaincfg.HDPrivateKeyToPublicKeyID([]byte{0x00})
	assert.Equal(t, chaincfg.ErrUnknownHDKeyID, err)
	_, err = chaincfg.HDPrivateKeyToPublicKeyID(nil)
	assert.Equal(t, chaincfg.ErrUnknownHDKeyID, err)
}
