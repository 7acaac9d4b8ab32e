package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	DefaultUniqueClassID       = "stakeable"
	DefaultFungibleDenomPrefix = "item"
	DefaultRewardDenom         = "ureward"
	DefaultMaxBatchSize        = uint32(100)
)

// Params configures which registry assets can be staked and how rewards
// accrue.
type Params struct {
	// UniqueClassID is the x/nft class whose tokens can be staked.
	UniqueClassID string `json:"unique_class_id"`
	// FungibleDenomPrefix maps type id N to the bank denom "<prefix>/N".
	FungibleDenomPrefix string `json:"fungible_denom_prefix"`
	RewardDenom         string `json:"reward_denom"`
	// RewardRate is paid per staked unit per second held.
	RewardRate   math.LegacyDec `json:"reward_rate"`
	MaxBatchSize uint32         `json:"max_batch_size"`
}

// DefaultParams returns default params.
func DefaultParams() Params {
	return Params{
		UniqueClassID:       DefaultUniqueClassID,
		FungibleDenomPrefix: DefaultFungibleDenomPrefix,
		RewardDenom:         DefaultRewardDenom,
		RewardRate:          math.LegacyOneDec(),
		MaxBatchSize:        DefaultMaxBatchSize,
	}
}

// FungibleDenom returns the bank denom that carries units of typeID.
func (p Params) FungibleDenom(typeID uint64) string {
	return fmt.Sprintf("%s/%d", p.FungibleDenomPrefix, typeID)
}

// Validate validates module params.
func (p Params) Validate() error {
	if err := ValidateClassID(p.UniqueClassID); err != nil {
		return errorsmod.Wrapf(ErrInvalidParams, "unique_class_id: %s", err)
	}
	prefix := strings.TrimSpace(p.FungibleDenomPrefix)
	if prefix == "" || prefix != p.FungibleDenomPrefix {
		return errorsmod.Wrap(ErrInvalidParams, "fungible_denom_prefix must be non-empty without surrounding spaces")
	}
	if err := sdk.ValidateDenom(p.FungibleDenom(0)); err != nil {
		return errorsmod.Wrapf(ErrInvalidParams, "fungible_denom_prefix: %s", err)
	}
	if err := sdk.ValidateDenom(p.RewardDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidParams, "reward_denom: %s", err)
	}
	if strings.HasPrefix(p.RewardDenom, p.FungibleDenomPrefix+"/") {
		return errorsmod.Wrap(ErrInvalidParams, "reward_denom must not collide with staked item denoms")
	}
	if p.RewardRate.IsNil() || p.RewardRate.IsNegative() {
		return errorsmod.Wrap(ErrInvalidParams, "reward_rate must be non-negative")
	}
	if p.MaxBatchSize == 0 {
		return errorsmod.Wrap(ErrInvalidParams, "max_batch_size must be positive")
	}
	return nil
}
