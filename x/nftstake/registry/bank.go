package registry

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"nftstake/x/nftstake/types"
)

// BankKeeper is the subset of the x/bank keeper the registry uses.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}

// BankRegistry serves fungible assets as bank denoms, one denom per type.
type BankRegistry struct {
	bk BankKeeper
}

var _ types.FungibleAssetRegistry = BankRegistry{}

func NewBankRegistry(bk BankKeeper) BankRegistry {
	return BankRegistry{bk: bk}
}

func (r BankRegistry) BalanceOf(ctx context.Context, owner sdk.AccAddress, denom string) math.Int {
	return r.bk.GetBalance(ctx, owner, denom).Amount
}

func (r BankRegistry) TransferCustody(ctx context.Context, from, to sdk.AccAddress, denom string, quantity math.Int) error {
	if r.BalanceOf(ctx, from, denom).LT(quantity) {
		return types.ErrInsufficientBalance
	}
	return r.bk.SendCoins(ctx, from, to, sdk.NewCoins(sdk.NewCoin(denom, quantity)))
}
