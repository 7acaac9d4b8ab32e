// Package testutil provides store-backed x/nft and x/bank keepers for ledger
// tests. Their state lives in the test multistore, so it is branched and
// discarded together with the ledger's own state.
package testutil

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	nftkeeper "cosmossdk.io/x/nft/keeper"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// BankStoreKey names the store that backs BankKeeper.
const BankStoreKey = "testbank"

var ErrTransferRefused = errors.New("transfer refused")

// NFTKeeper is the x/nft keeper with per-asset transfer failures.
type NFTKeeper struct {
	nftkeeper.Keeper

	failTransfer map[string]bool
}

func NewNFTKeeper(storeService store.KVStoreService, ac address.Codec) *NFTKeeper {
	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	return &NFTKeeper{
		Keeper:       nftkeeper.NewKeeper(storeService, cdc, accountKeeper{ac: ac}, noSpendableCoins{}),
		failTransfer: make(map[string]bool),
	}
}

// FailTransfer makes every later transfer of assetID fail.
func (k *NFTKeeper) FailTransfer(assetID string) {
	k.failTransfer[assetID] = true
}

func (k *NFTKeeper) Transfer(ctx context.Context, classID, nftID string, receiver sdk.AccAddress) error {
	if k.failTransfer[nftID] {
		return ErrTransferRefused
	}
	return k.Keeper.Transfer(ctx, classID, nftID, receiver)
}

type accountKeeper struct {
	ac address.Codec
}

func (accountKeeper) GetModuleAddress(name string) sdk.AccAddress {
	return authtypes.NewModuleAddress(name)
}

func (accountKeeper) GetAccount(context.Context, sdk.AccAddress) sdk.AccountI { return nil }
func (a accountKeeper) AddressCodec() address.Codec                           { return a.ac }

type noSpendableCoins struct{}

func (noSpendableCoins) SpendableCoins(context.Context, sdk.AccAddress) sdk.Coins { return nil }

// BankKeeper keeps balances in a collections map keyed by (holder, denom).
// Module balances are held at the module account address.
type BankKeeper struct {
	balances   collections.Map[collections.Pair[sdk.AccAddress, string], math.Int]
	failDenoms map[string]bool
}

func NewBankKeeper(storeService store.KVStoreService) *BankKeeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := &BankKeeper{
		balances: collections.NewMap(sb, collections.NewPrefix(0), "balances",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey), sdk.IntValue),
		failDenoms: make(map[string]bool),
	}
	if _, err := sb.Build(); err != nil {
		panic(err)
	}
	return k
}

// FailDenom makes every later send of denom fail.
func (k *BankKeeper) FailDenom(denom string) {
	k.failDenoms[denom] = true
}

// Balance returns the amount of denom held by addr.
func (k *BankKeeper) Balance(ctx context.Context, addr sdk.AccAddress, denom string) math.Int {
	amt, err := k.balances.Get(ctx, collections.Join(addr, denom))
	if err != nil {
		return math.ZeroInt()
	}
	return amt
}

// SetBalance overwrites the balances of addr for the given denoms.
func (k *BankKeeper) SetBalance(ctx context.Context, addr sdk.AccAddress, coins ...sdk.Coin) error {
	for _, c := range coins {
		if err := k.balances.Set(ctx, collections.Join(addr, c.Denom), c.Amount); err != nil {
			return err
		}
	}
	return nil
}

func (k *BankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, k.Balance(ctx, addr, denom))
}

func (k *BankKeeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	for _, c := range amt {
		if k.failDenoms[c.Denom] {
			return ErrTransferRefused
		}
		have := k.Balance(ctx, fromAddr, c.Denom)
		if have.LT(c.Amount) {
			return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "%s is smaller than %s", sdk.NewCoin(c.Denom, have), c)
		}
		if err := k.SetBalance(ctx, fromAddr, sdk.NewCoin(c.Denom, have.Sub(c.Amount))); err != nil {
			return err
		}
		if err := k.SetBalance(ctx, toAddr, sdk.NewCoin(c.Denom, k.Balance(ctx, toAddr, c.Denom).Add(c.Amount))); err != nil {
			return err
		}
	}
	return nil
}

func (k *BankKeeper) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	moduleAddr := authtypes.NewModuleAddress(moduleName)
	for _, c := range amt {
		if err := k.SetBalance(ctx, moduleAddr, sdk.NewCoin(c.Denom, k.Balance(ctx, moduleAddr, c.Denom).Add(c.Amount))); err != nil {
			return err
		}
	}
	return nil
}

func (k *BankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return k.SendCoins(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}
