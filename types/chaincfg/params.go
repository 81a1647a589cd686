/*
 * Copyright (c) 2014-2016 The btcsuite developers
 * Copyright (c) 2021 The nmcd developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"gitlab.com/nmcore/nmcd/types/chainhash"
	"gitlab.com/nmcore/nmcd/types/wire"
)

// These variables are the chain proof-of-work limit parameters for each
// default network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have for
	// the main network.  It is the value 2^224 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)

	// testNet3PowLimit is the highest proof of work value a block can have
	// for the test network (version 3).  It is the value 2^224 - 1.
	testNet3PowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)

	// regressionPowLimit is the highest proof of work value a block can
	// have for the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

const (
	// NoTimeout is the ExpireTime value for deployments that never expire.
	NoTimeout = int64(math.MaxInt64)

	// AlwaysActiveStartTime is a special StartTime value marking a
	// deployment as active without going through the version bits state
	// machine.  It is useful on test networks, which would otherwise need
	// to mine through at least three signaling windows before the rule
	// under test applies.
	AlwaysActiveStartTime = int64(-1)

	// lastAllowedDeploymentBit is the highest version bit a deployment may
	// signal on.  Bits 29-31 carry the version-bits prefix.
	lastAllowedDeploymentBit = 28
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial
// download and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags.
	HasFiltering bool
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// the particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts, or AlwaysActiveStartTime.
	StartTime int64

	// ExpireTime is the median block time after which the attempted
	// deployment expires, or NoTimeout.
	ExpireTime int64
}

// Constants that define the deployment offset in the deployments field of
// the parameters for each deployment.  This is useful to be able to get the
// details of a specific deployment by name.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy = iota

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// Params defines an nmc network by its parameters.  These parameters may be
// used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
//
// A Params value is defined once, registered during startup, and treated as
// immutable from then on.  All methods are pure views over the record, so the
// same instance may be read from any number of validator goroutines without
// locking.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.NmcNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// SubsidyHalvingInterval is the interval of blocks between halvings of
	// the base block subsidy.
	SubsidyHalvingInterval int32

	// BIP16Height is the block height at which BIP0016 (pay to script
	// hash) becomes enforced.
	BIP16Height int32

	// BIP34Height is the block height at which BIP0034 (block version 2
	// with the height in the coinbase) becomes enforced.  BIP34Hash pins
	// the block at that height so a deep reorganization cannot rewrite the
	// activation.
	BIP34Height int32
	BIP34Hash   chainhash.Hash

	// BIP65Height is the block height at which BIP0065
	// (OP_CHECKLOCKTIMEVERIFY) becomes enforced.
	BIP65Height int32

	// BIP66Height is the block height at which BIP0066 (strict DER
	// signatures) becomes enforced.
	BIP66Height int32

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change.  It should typically
	// be 95% for the main network and 75% for test networks.
	//
	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window, nPowTargetTimespan / nPowTargetSpacing.
	//
	// Deployments define the specific consensus rule changes to be voted
	// on.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   [DefinedDeployments]ConsensusDeployment

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowAllowMinDifficultyBlocks defines whether the network should allow
	// minimum difficulty blocks once MinDifficultySince has passed.  Only
	// ever set on test networks.
	PowAllowMinDifficultyBlocks bool

	// MinDifficultySince is the earliest block time (Unix seconds) after
	// which the minimum difficulty relaxation applies.
	MinDifficultySince int64

	// PowNoRetargeting defines whether the network suppresses difficulty
	// retargeting.  Only ever set on the regression test network.
	PowNoRetargeting bool

	// PowTargetSpacing is the desired amount of time in seconds between
	// blocks, PowTargetTimespan the desired amount of time in seconds that
	// should elapse before the block difficulty requirement is examined to
	// determine how it should be changed in order to maintain the desired
	// block generation rate.
	PowTargetSpacing  int64
	PowTargetTimespan int64

	// MinimumChainWork is the least amount of accumulated work a chain
	// presented by a peer may have before it is considered for validation.
	MinimumChainWork chainhash.Hash

	// DefaultAssumeValid is the block whose ancestors are assumed to have
	// valid scripts.
	DefaultAssumeValid chainhash.Hash

	// AuxpowChainID is the chain identifier this network commits to in
	// merge-mined (auxpow) block headers.
	AuxpowChainID int32

	// AuxpowStartHeight is the first block height at which auxpow block
	// versions are accepted.
	AuxpowStartHeight int32

	// StrictChainID defines whether auxpow headers from other chain IDs
	// are rejected outright.
	StrictChainID bool

	// LegacyBlocksBefore is the height before which block headers without
	// an auxpow version remain valid.  A negative value means legacy
	// headers are always allowed.
	LegacyBlocksBefore int32

	// Rules is the rule table for the network.  It is chosen when the
	// Params value is defined and must never be replaced afterwards.
	Rules ConsensusRules

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// Mempool parameters
	RelayNonStdTxs bool

	// Address encoding magics
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType uint32
}

// DifficultyAdjustmentInterval returns the number of blocks between
// difficulty retargets.  The interval is always derived from the target
// timespan and spacing so the two can never disagree with it.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return p.PowTargetTimespan / p.PowTargetSpacing
}

// AllowMinDifficultyBlocks returns whether a block carrying the given time
// stamp (Unix seconds) may use the minimum allowed difficulty.  Networks
// without the relaxation flag never allow it, regardless of the time stamp.
func (p *Params) AllowMinDifficultyBlocks(blockTime int64) bool {
	if !p.PowAllowMinDifficultyBlocks {
		return false
	}
	return blockTime > p.MinDifficultySince
}

// AllowLegacyBlocks returns whether a block at the given height may still
// use a legacy (non-auxpow) version.
func (p *Params) AllowLegacyBlocks(height int32) bool {
	if p.LegacyBlocksBefore < 0 {
		return true
	}
	return height < p.LegacyBlocksBefore
}

// BlockSubsidy returns the base miner reward in satoshi for a block at the
// given height, accounting for the halving schedule.
func (p *Params) BlockSubsidy(height int32) int64 {
	halvings := uint(height / p.SubsidyHalvingInterval)
	// Force the subsidy to zero once the right shift is undefined.
	if halvings >= 64 {
		return 0
	}

	return baseSubsidy >> halvings
}

// validate checks a Params value for the configuration mistakes that would
// otherwise surface as a chain split deep inside validation.  It is invoked
// by Register, so a broken network definition is rejected before anything can
// read from it.
func (p *Params) validate() error {
	if p.GenesisHash == nil {
		return fmt.Errorf("chaincfg: %s: missing genesis hash", p.Name)
	}
	if p.Rules == nil {
		return fmt.Errorf("chaincfg: %s: missing consensus rule table", p.Name)
	}
	if p.PowLimit == nil {
		return fmt.Errorf("chaincfg: %s: missing proof of work limit", p.Name)
	}
	if p.PowTargetSpacing <= 0 {
		return fmt.Errorf("chaincfg: %s: proof of work target spacing "+
			"must be positive, got %d", p.Name, p.PowTargetSpacing)
	}
	if p.PowTargetTimespan <= 0 {
		return fmt.Errorf("chaincfg: %s: proof of work target timespan "+
			"must be positive, got %d", p.Name, p.PowTargetTimespan)
	}
	if p.SubsidyHalvingInterval <= 0 {
		return fmt.Errorf("chaincfg: %s: subsidy halving interval must "+
			"be positive, got %d", p.Name, p.SubsidyHalvingInterval)
	}
	if p.MinerConfirmationWindow == 0 {
		return fmt.Errorf("chaincfg: %s: miner confirmation window must "+
			"not be zero", p.Name)
	}
	if p.RuleChangeActivationThreshold > p.MinerConfirmationWindow {
		return fmt.Errorf("chaincfg: %s: rule change activation threshold "+
			"%d exceeds the confirmation window %d", p.Name,
			p.RuleChangeActivationThreshold, p.MinerConfirmationWindow)
	}

	var usedBits [lastAllowedDeploymentBit + 1]bool
	for pos, deployment := range p.Deployments {
		if deployment.BitNumber > lastAllowedDeploymentBit {
			return fmt.Errorf("chaincfg: %s: deployment %d uses version "+
				"bit %d, highest usable bit is %d", p.Name, pos,
				deployment.BitNumber, lastAllowedDeploymentBit)
		}
		if usedBits[deployment.BitNumber] {
			return fmt.Errorf("chaincfg: %s: deployment %d reuses version "+
				"bit %d", p.Name, pos, deployment.BitNumber)
		}
		usedBits[deployment.BitNumber] = true
	}

	return nil
}

var (
	// ErrDuplicateNet describes an error where the parameters for an nmc
	// network could not be set due to the network already being a standard
	// network or previously-registered via this package.
	ErrDuplicateNet = errors.New("duplicate nmc network")

	// ErrUnknownHDKeyID describes an error where the provided hierarchical
	// deterministic version bytes, or hdkeyid, is not registered to an
	// nmc network.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")
)

var (
	registeredNets    = map[wire.NmcNet]struct{}{}
	pubKeyHashAddrIDs = map[byte]struct{}{}
	scriptHashAddrIDs = map[byte]struct{}{}
	hdPrivToPubKeyIDs = map[[4]byte][]byte{}
)

// Register registers the network parameters for an nmc network.  This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks), or with a descriptive error naming the offending field when the
// parameters fail validation.
//
// Network parameters should be registered into this package by a main package
// as early as possible.  Then, library packages may lookup networks or
// network parameters based on inputs and work regardless of the network being
// standard or not.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	if err := params.validate(); err != nil {
		return err
	}

	registeredNets[params.Net] = struct{}{}
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
	hdPrivToPubKeyIDs[params.HDPrivateKeyID] = params.HDPublicKeyID[:]

	return nil
}

// mustRegister performs the same function as Register except it panics if
// there is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix
// a pay-to-pubkey-hash address on any default or registered network.  This is
// used when decoding an address string into a specific address type.
func IsPubKeyHashAddrID(id byte) bool {
	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix
// a pay-to-script-hash address on any default or registered network.
func IsScriptHashAddrID(id byte) bool {
	_, ok := scriptHashAddrIDs[id]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the
// provided id is not registered, the ErrUnknownHDKeyID error will be
// returned.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}

	return pubBytes, nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in
// that it panics on an error since it will only (and must only) be called
// with hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNet3Params)
	mustRegister(&RegressionNetParams)
}
