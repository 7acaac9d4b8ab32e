package keeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"nftstake/x/nftstake/types"
)

// Keeper owns every stake record and is the only component that moves assets
// in or out of custody.
type Keeper struct {
	storeService store.KVStoreService
	addressCodec address.Codec

	// authority is the address that can open staking, toggle rewards and
	// update params.
	authority []byte

	uniqueRegistry   types.UniqueAssetRegistry
	fungibleRegistry types.FungibleAssetRegistry
	rewardIssuer     types.RewardIssuer
	rewardFn         types.RewardFunc

	Schema collections.Schema

	Params            collections.Item[types.Params]
	Gate              collections.Item[types.AccessGate]
	UniqueStakes      collections.Map[string, types.UniqueStakeRecord]
	OwnerUniqueStakes collections.KeySet[collections.Pair[string, string]]
	FungibleEntries   collections.Map[collections.Triple[string, uint64, uint64], types.FungibleStakeEntry]
	FungibleCursor    collections.Map[collections.Pair[string, uint64], uint64]
}

// jsonValueCodec stores non-protobuf state as JSON.
type jsonValueCodec[T any] struct {
	name string
}

func (jsonValueCodec[T]) Encode(value T) ([]byte, error) { return json.Marshal(value) }
func (jsonValueCodec[T]) Decode(bz []byte) (T, error) {
	var v T
	return v, json.Unmarshal(bz, &v)
}
func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) { return c.Encode(value) }
func (c jsonValueCodec[T]) DecodeJSON(bz []byte) (T, error)    { return c.Decode(bz) }
func (jsonValueCodec[T]) Stringify(value T) string             { return fmt.Sprintf("%+v", value) }
func (c jsonValueCodec[T]) ValueType() string                  { return "nftstake/" + c.name }

var (
	_ collcodec.ValueCodec[types.Params]             = jsonValueCodec[types.Params]{}
	_ collcodec.ValueCodec[types.AccessGate]         = jsonValueCodec[types.AccessGate]{}
	_ collcodec.ValueCodec[types.UniqueStakeRecord]  = jsonValueCodec[types.UniqueStakeRecord]{}
	_ collcodec.ValueCodec[types.FungibleStakeEntry] = jsonValueCodec[types.FungibleStakeEntry]{}
)

func NewKeeper(
	storeService store.KVStoreService,
	addressCodec address.Codec,
	authority []byte,
	uniqueRegistry types.UniqueAssetRegistry,
	fungibleRegistry types.FungibleAssetRegistry,
	rewardIssuer types.RewardIssuer,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService:     storeService,
		addressCodec:     addressCodec,
		authority:        authority,
		uniqueRegistry:   uniqueRegistry,
		fungibleRegistry: fungibleRegistry,
		rewardIssuer:     rewardIssuer,
		rewardFn:         types.LinearReward,

		Params:            collections.NewItem(sb, types.ParamsKey, "params", jsonValueCodec[types.Params]{name: "Params"}),
		Gate:              collections.NewItem(sb, types.GateKey, "gate", jsonValueCodec[types.AccessGate]{name: "AccessGate"}),
		UniqueStakes:      collections.NewMap(sb, types.UniqueStakeKeyPrefix, "unique_stakes", types.UniqueStakeKeyCodec, jsonValueCodec[types.UniqueStakeRecord]{name: "UniqueStakeRecord"}),
		OwnerUniqueStakes: collections.NewKeySet(sb, types.OwnerUniqueKeyPrefix, "owner_unique_stakes", types.OwnerUniqueKeyCodec),
		FungibleEntries:   collections.NewMap(sb, types.FungibleEntryKeyPrefix, "fungible_entries", types.FungibleEntryKeyCodec, jsonValueCodec[types.FungibleStakeEntry]{name: "FungibleStakeEntry"}),
		FungibleCursor:    collections.NewMap(sb, types.FungibleCursorKeyPrefix, "fungible_cursor", types.FungibleCursorKeyCodec, collections.Uint64Value),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// WithRewardFunc returns a copy of the keeper that sizes rewards with fn.
func (k Keeper) WithRewardFunc(fn types.RewardFunc) Keeper {
	if fn == nil {
		fn = types.LinearReward
	}
	k.rewardFn = fn
	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte { return k.authority }

// ModuleAddress is the principal that holds staked assets and mints rewards.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetParams returns current params or defaults when unset.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	p, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return p, nil
}

func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, p)
}

// atomically runs fn on a cached branch of the store and commits it only when
// fn succeeds. Events are emitted on the parent context after the commit.
func (k Keeper) atomically(ctx context.Context, fn func(ctx sdk.Context) (sdk.Events, error)) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()
	events, err := fn(cacheCtx)
	if err != nil {
		return err
	}
	write()
	sdkCtx.EventManager().EmitEvents(events)
	return nil
}

func (k Keeper) ownerString(owner sdk.AccAddress) (string, error) {
	return k.addressCodec.BytesToString(owner)
}
