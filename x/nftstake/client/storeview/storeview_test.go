package storeview_test

import (
	"strings"
	"testing"

	"cosmossdk.io/collections"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"nftstake/x/nftstake/client/storeview"
	"nftstake/x/nftstake/keeper"
	"nftstake/x/nftstake/types"
)

// storeQuerier answers store queries from the committed state of a test
// multistore, the way a node serves /store/<name>/... paths.
type storeQuerier struct {
	cms storetypes.CommitMultiStore
}

func (q storeQuerier) QueryStore(key []byte, storeName string) ([]byte, int64, error) {
	return q.query("/"+storeName+"/key", key)
}

func (q storeQuerier) QueryWithData(path string, data []byte) ([]byte, int64, error) {
	return q.query(strings.TrimPrefix(path, "/store"), data)
}

func (q storeQuerier) query(path string, data []byte) ([]byte, int64, error) {
	res, err := q.cms.(storetypes.Queryable).Query(&storetypes.RequestQuery{Path: path, Data: data})
	if err != nil {
		return nil, 0, err
	}
	return res.Value, res.Height, nil
}

func setup(t *testing.T) (sdk.Context, storetypes.CommitMultiStore, keeper.Keeper, storeview.View) {
	t.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, cms.LoadLatestVersion())
	ctx := sdk.NewContext(cms, cmtproto.Header{Height: 1}, false, log.NewNopLogger())
	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		authtypes.NewModuleAddress(types.GovModuleName),
		nil, nil, nil,
	)
	return ctx, cms, k, storeview.New(storeQuerier{cms: cms})
}

func TestViewDefaults(t *testing.T) {
	_, cms, _, v := setup(t)
	cms.Commit()

	p, err := v.Params()
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams().UniqueClassID, p.UniqueClassID)

	g, err := v.Gate()
	require.NoError(t, err)
	require.False(t, g.Initialized)
	require.False(t, g.Claimable)
}

func TestViewReadsLedgerState(t *testing.T) {
	ctx, cms, k, v := setup(t)
	owner := sdk.AccAddress([]byte("owner_address_000001")).String()
	other := sdk.AccAddress([]byte("other_address_000001")).String()

	params := types.DefaultParams()
	params.MaxBatchSize = 7
	require.NoError(t, k.Params.Set(ctx, params))
	require.NoError(t, k.Gate.Set(ctx, types.AccessGate{Initialized: true}))
	require.NoError(t, k.UniqueStakes.Set(ctx, "1", types.UniqueStakeRecord{Owner: owner, AssetID: "1", StakedAt: 100}))

	arena := collections.Join(owner, uint64(2))
	require.NoError(t, k.FungibleCursor.Set(ctx, arena, 3))
	require.NoError(t, k.FungibleEntries.Set(ctx, collections.Join3(owner, uint64(2), uint64(0)),
		types.FungibleStakeEntry{Index: 0, Amount: math.NewInt(4), StakedAt: 100}))
	require.NoError(t, k.FungibleEntries.Set(ctx, collections.Join3(owner, uint64(2), uint64(2)),
		types.FungibleStakeEntry{Index: 2, Amount: math.NewInt(1), StakedAt: 120}))
	// neighbouring arenas must not leak into the (owner, 2) range
	require.NoError(t, k.FungibleEntries.Set(ctx, collections.Join3(owner, uint64(3), uint64(0)),
		types.FungibleStakeEntry{Index: 0, Amount: math.NewInt(9), StakedAt: 100}))
	require.NoError(t, k.FungibleEntries.Set(ctx, collections.Join3(other, uint64(2), uint64(1)),
		types.FungibleStakeEntry{Index: 1, Amount: math.NewInt(9), StakedAt: 100}))
	cms.Commit()

	p, err := v.Params()
	require.NoError(t, err)
	require.Equal(t, uint32(7), p.MaxBatchSize)

	g, err := v.Gate()
	require.NoError(t, err)
	require.True(t, g.Initialized)

	info, err := v.Staked(owner, "1")
	require.NoError(t, err)
	require.Equal(t, uint64(1), info.Amount)
	require.Equal(t, int64(100), info.StakedAt)

	info, err = v.Staked(other, "1")
	require.NoError(t, err)
	require.Zero(t, info.Amount)

	info, err = v.Staked(owner, "9")
	require.NoError(t, err)
	require.Zero(t, info.Amount)

	entries, err := v.StakedFungible(owner, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, uint64(0), entries[0].Index)
	require.Equal(t, uint64(2), entries[1].Index)
	require.True(t, entries[1].Amount.Equal(math.NewInt(1)))

	entries, err = v.StakedFungible(owner, 5)
	require.NoError(t, err)
	require.Empty(t, entries)

	_, err = v.Staked("not-an-address", "1")
	require.Error(t, err)
}

func TestDecodePairs(t *testing.T) {
	pair := func(key, value string) []byte {
		var bz []byte
		bz = protowire.AppendTag(bz, 1, protowire.BytesType)
		bz = protowire.AppendBytes(bz, []byte(key))
		bz = protowire.AppendTag(bz, 2, protowire.BytesType)
		bz = protowire.AppendBytes(bz, []byte(value))
		return bz
	}
	var list []byte
	for _, kv := range [][2]string{{"a", "1"}, {"b", "2"}} {
		list = protowire.AppendTag(list, 1, protowire.BytesType)
		list = protowire.AppendBytes(list, pair(kv[0], kv[1]))
	}

	pairs, err := storeview.DecodePairs(list)
	require.NoError(t, err)
	require.Equal(t, []storeview.KVPair{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
	}, pairs)

	pairs, err = storeview.DecodePairs(nil)
	require.NoError(t, err)
	require.Empty(t, pairs)

	_, err = storeview.DecodePairs([]byte{0x0a, 0x05, 0x01})
	require.Error(t, err)
}
