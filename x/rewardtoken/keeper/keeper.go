package keeper

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"nftstake/x/rewardtoken/types"
)

// Keeper mints reward denoms on behalf of the single principal granted for
// each denom.
type Keeper struct {
	storeService store.KVStoreService
	addressCodec address.Codec
	authority    []byte

	bankKeeper types.BankKeeper

	Minters      collections.Map[string, string]
	MinterDenoms collections.KeySet[collections.Pair[string, string]]
}

func NewKeeper(
	storeService store.KVStoreService,
	addressCodec address.Codec,
	authority []byte,
	bankKeeper types.BankKeeper,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		authority:    authority,
		bankKeeper:   bankKeeper,
		Minters:      collections.NewMap(sb, types.MintersKeyPrefix, "minters", collections.StringKey, collections.StringValue),
		MinterDenoms: collections.NewKeySet(
			sb,
			types.MinterDenomsKeyPrefix,
			"minter_denoms",
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
		),
	}
	if _, err := sb.Build(); err != nil {
		panic(err)
	}
	return k
}

func (k Keeper) GetAuthority() []byte { return k.authority }

func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetMinter returns the principal granted for denom.
func (k Keeper) GetMinter(ctx context.Context, denom string) (string, error) {
	minter, err := k.Minters.Get(ctx, denom)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", types.ErrUnknownDenom
		}
		return "", err
	}
	return minter, nil
}

// GrantMinter makes minter the only principal allowed to mint denom,
// replacing any previous grant.
func (k Keeper) GrantMinter(ctx context.Context, authority, denom, minter string) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return errorsmod.Wrap(types.ErrInvalidDenom, err.Error())
	}
	minterBz, err := k.addressCodec.StringToBytes(minter)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidRequest, "invalid minter address %q", minter)
	}
	minterStr, err := k.addressCodec.BytesToString(minterBz)
	if err != nil {
		return err
	}
	return k.setMinter(ctx, denom, minterStr)
}

// RevokeMinter removes the grant for denom. Nobody can mint it afterwards.
func (k Keeper) RevokeMinter(ctx context.Context, authority, denom string) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	prev, err := k.GetMinter(ctx, denom)
	if err != nil {
		return err
	}
	if err := k.MinterDenoms.Remove(ctx, collections.Join(prev, denom)); err != nil {
		return err
	}
	if err := k.Minters.Remove(ctx, denom); err != nil {
		return err
	}
	k.Logger(ctx).Info("minter revoked", "denom", denom, "minter", prev)
	return nil
}

func (k Keeper) setMinter(ctx context.Context, denom, minter string) error {
	prev, err := k.Minters.Get(ctx, denom)
	switch {
	case err == nil:
		if err := k.MinterDenoms.Remove(ctx, collections.Join(prev, denom)); err != nil {
			return err
		}
	case !errors.Is(err, collections.ErrNotFound):
		return err
	}
	if err := k.Minters.Set(ctx, denom, minter); err != nil {
		return err
	}
	if err := k.MinterDenoms.Set(ctx, collections.Join(minter, denom)); err != nil {
		return err
	}
	k.Logger(ctx).Info("minter granted", "denom", denom, "minter", minter)
	return nil
}

// Mint creates amount and sends it to recipient. Only the granted minter of
// the denom may call it.
func (k Keeper) Mint(ctx context.Context, minter, recipient sdk.AccAddress, amount sdk.Coin) error {
	if !amount.IsValid() || !amount.IsPositive() {
		return types.ErrInvalidAmount
	}
	granted, err := k.Minters.Get(ctx, amount.Denom)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return errorsmod.Wrap(types.ErrMinterNotGranted, amount.Denom)
		}
		return err
	}
	grantedBz, err := k.addressCodec.StringToBytes(granted)
	if err != nil {
		return err
	}
	if !bytes.Equal(grantedBz, minter) {
		return errorsmod.Wrap(types.ErrMinterNotGranted, amount.Denom)
	}

	coins := sdk.NewCoins(amount)
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return err
	}
	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins)
}

func (k Keeper) requireAuthority(authority string) error {
	addr, err := k.addressCodec.StringToBytes(authority)
	if err != nil || !bytes.Equal(addr, k.authority) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "invalid authority %q", authority)
	}
	return nil
}
