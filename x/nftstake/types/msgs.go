package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgInitStaking opens the ledger for staking.
type MsgInitStaking struct {
	Authority string `json:"authority"`
}

type MsgInitStakingResponse struct{}

// MsgSetClaimable toggles reward issuance on unstake.
type MsgSetClaimable struct {
	Authority string `json:"authority"`
	Claimable bool   `json:"claimable"`
}

type MsgSetClaimableResponse struct{}

type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

type MsgStakeUnique struct {
	Owner   string `json:"owner"`
	AssetID string `json:"asset_id"`
}

type MsgStakeUniqueResponse struct{}

type MsgUnstakeUnique struct {
	Owner   string `json:"owner"`
	AssetID string `json:"asset_id"`
}

type MsgUnstakeUniqueResponse struct {
	Reward sdk.Coin `json:"reward"`
}

type MsgBatchStakeUnique struct {
	Owner    string   `json:"owner"`
	AssetIDs []string `json:"asset_ids"`
}

type MsgBatchStakeUniqueResponse struct{}

type MsgBatchUnstakeUnique struct {
	Owner    string   `json:"owner"`
	AssetIDs []string `json:"asset_ids"`
}

type MsgBatchUnstakeUniqueResponse struct {
	Reward sdk.Coin `json:"reward"`
}

type MsgStakeFungible struct {
	Owner  string   `json:"owner"`
	TypeID uint64   `json:"type_id"`
	Amount math.Int `json:"amount"`
}

type MsgStakeFungibleResponse struct {
	Index uint64 `json:"index"`
}

type MsgUnstakeFungible struct {
	Owner  string `json:"owner"`
	TypeID uint64 `json:"type_id"`
	Index  uint64 `json:"index"`
}

type MsgUnstakeFungibleResponse struct {
	Reward sdk.Coin `json:"reward"`
}

type MsgBatchStakeFungible struct {
	Owner   string     `json:"owner"`
	TypeIDs []uint64   `json:"type_ids"`
	Amounts []math.Int `json:"amounts"`
}

type MsgBatchStakeFungibleResponse struct {
	Indices []uint64 `json:"indices"`
}

type MsgBatchUnstakeFungible struct {
	Owner   string   `json:"owner"`
	TypeIDs []uint64 `json:"type_ids"`
	Indices []uint64 `json:"indices"`
}

type MsgBatchUnstakeFungibleResponse struct {
	Reward sdk.Coin `json:"reward"`
}

func requireSigner(field, addr string) error {
	if strings.TrimSpace(addr) == "" {
		return errorsmod.Wrapf(ErrInvalidRequest, "%s required", field)
	}
	return nil
}

func (m MsgInitStaking) ValidateBasic() error { return requireSigner("authority", m.Authority) }

func (m MsgSetClaimable) ValidateBasic() error { return requireSigner("authority", m.Authority) }

func (m MsgUpdateParams) ValidateBasic() error {
	if err := requireSigner("authority", m.Authority); err != nil {
		return err
	}
	return m.Params.Validate()
}

func (m MsgStakeUnique) ValidateBasic() error {
	if err := requireSigner("owner", m.Owner); err != nil {
		return err
	}
	if m.AssetID == "" {
		return errorsmod.Wrap(ErrInvalidRequest, "asset_id required")
	}
	if err := ValidateAssetID(m.AssetID); err != nil {
		return errorsmod.Wrap(ErrInvalidRequest, err.Error())
	}
	return nil
}

func (m MsgUnstakeUnique) ValidateBasic() error {
	return MsgStakeUnique(m).ValidateBasic()
}

func (m MsgBatchStakeUnique) ValidateBasic() error {
	if err := requireSigner("owner", m.Owner); err != nil {
		return err
	}
	if len(m.AssetIDs) == 0 {
		return errorsmod.Wrap(ErrInvalidRequest, "asset_ids required")
	}
	for _, id := range m.AssetIDs {
		if id == "" {
			return errorsmod.Wrap(ErrInvalidRequest, "asset_ids must not contain empty ids")
		}
		if err := ValidateAssetID(id); err != nil {
			return errorsmod.Wrap(ErrInvalidRequest, err.Error())
		}
	}
	return nil
}

func (m MsgBatchUnstakeUnique) ValidateBasic() error {
	return MsgBatchStakeUnique(m).ValidateBasic()
}

func (m MsgStakeFungible) ValidateBasic() error {
	if err := requireSigner("owner", m.Owner); err != nil {
		return err
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return ErrInvalidQuantity
	}
	return nil
}

func (m MsgUnstakeFungible) ValidateBasic() error { return requireSigner("owner", m.Owner) }

func (m MsgBatchStakeFungible) ValidateBasic() error {
	if err := requireSigner("owner", m.Owner); err != nil {
		return err
	}
	if len(m.TypeIDs) != len(m.Amounts) {
		return ErrArityMismatch
	}
	if len(m.TypeIDs) == 0 {
		return errorsmod.Wrap(ErrInvalidRequest, "type_ids required")
	}
	for _, amt := range m.Amounts {
		if amt.IsNil() || !amt.IsPositive() {
			return ErrInvalidQuantity
		}
	}
	return nil
}

func (m MsgBatchUnstakeFungible) ValidateBasic() error {
	if err := requireSigner("owner", m.Owner); err != nil {
		return err
	}
	if len(m.TypeIDs) != len(m.Indices) {
		return ErrArityMismatch
	}
	if len(m.TypeIDs) == 0 {
		return errorsmod.Wrap(ErrInvalidRequest, "type_ids required")
	}
	return nil
}
