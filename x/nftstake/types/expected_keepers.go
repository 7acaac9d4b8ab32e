package types

import (
	"context"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// UniqueAssetRegistry tracks one-of-a-kind assets and their single owner.
type UniqueAssetRegistry interface {
	// OwnerOf returns ErrNonexistentAsset when the asset was never minted.
	OwnerOf(ctx context.Context, classID, assetID string) (sdk.AccAddress, error)
	TransferCustody(ctx context.Context, classID, assetID string, from, to sdk.AccAddress) error
}

// FungibleAssetRegistry tracks interchangeable units, one denom per asset type.
type FungibleAssetRegistry interface {
	BalanceOf(ctx context.Context, owner sdk.AccAddress, denom string) math.Int
	TransferCustody(ctx context.Context, from, to sdk.AccAddress, denom string, quantity math.Int) error
}

// RewardIssuer mints the reward token. Only the principal granted for the
// denom may mint.
type RewardIssuer interface {
	Mint(ctx context.Context, minter, recipient sdk.AccAddress, amount sdk.Coin) error
}
