package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"nftstake/x/nftstake/types"
)

func entryIndices(entries []types.FungibleStakeEntry) []uint64 {
	out := make([]uint64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Index)
	}
	return out
}

func TestStakeFungible(t *testing.T) {
	f := initFixture(t)
	f.open(t, false)
	denom := types.DefaultParams().FungibleDenom(0)

	idx, err := f.keeper.StakeFungible(f.ctx, f.alice, 0, math.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, uint64(0), idx)

	idx, err = f.keeper.StakeFungible(f.ctx, f.alice, 0, math.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, uint64(1), idx)

	require.True(t, f.balance(f.alice, denom).IsZero())
	require.Equal(t, math.NewInt(5), f.balance(f.keeper.ModuleAddress(), denom))

	_, err = f.keeper.StakeFungible(f.ctx, f.alice, 0, math.NewInt(1))
	require.Error(t, err)
	require.Equal(t, "Account have less token", err.Error())

	_, err = f.keeper.StakeFungible(f.ctx, f.alice, 1, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidQuantity)

	_, err = f.keeper.StakeFungible(f.ctx, f.bob, 1, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	entries, err := f.keeper.GetStakedFungible(f.ctx, f.alice, 0)
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1}, entryIndices(entries))
	require.True(t, entries[0].Amount.Equal(math.NewInt(2)))
	require.True(t, entries[1].Amount.Equal(math.NewInt(3)))

	entries, err = f.keeper.GetStakedFungible(f.ctx, f.bob, 0)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestUnstakeFungible(t *testing.T) {
	f := initFixture(t)
	f.open(t, true)
	denom := types.DefaultParams().FungibleDenom(1)

	for _, qty := range []int64{1, 2, 2} {
		_, err := f.keeper.StakeFungible(f.ctx, f.alice, 1, math.NewInt(qty))
		require.NoError(t, err)
	}
	f.advance(4 * time.Second)

	_, err := f.keeper.UnstakeFungible(f.ctx, f.bob, 1, 0)
	require.Error(t, err)
	require.Equal(t, "Nft Staking System: user has no nfts of this type staked", err.Error())

	reward, err := f.keeper.UnstakeFungible(f.ctx, f.alice, 1, 1)
	require.NoError(t, err)
	require.Equal(t, sdk.NewInt64Coin(types.DefaultRewardDenom, 8), reward)
	require.Equal(t, math.NewInt(2), f.balance(f.alice, denom))

	// index 1 is withdrawn and never addresses another entry
	_, err = f.keeper.UnstakeFungible(f.ctx, f.alice, 1, 1)
	require.ErrorIs(t, err, types.ErrNoStakeEntry)

	entries, err := f.keeper.GetStakedFungible(f.ctx, f.alice, 1)
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 2}, entryIndices(entries))

	idx, err := f.keeper.StakeFungible(f.ctx, f.alice, 1, math.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, uint64(3), idx)
}

func TestUnstakeFungibleCompactsEmptyArena(t *testing.T) {
	f := initFixture(t)
	f.open(t, false)

	_, err := f.keeper.StakeFungible(f.ctx, f.alice, 2, math.NewInt(1))
	require.NoError(t, err)
	_, err = f.keeper.StakeFungible(f.ctx, f.alice, 2, math.NewInt(1))
	require.NoError(t, err)

	_, err = f.keeper.BatchUnstakeFungible(f.ctx, f.alice, []uint64{2, 2}, []uint64{1, 0})
	require.NoError(t, err)

	entries, err := f.keeper.GetStakedFungible(f.ctx, f.alice, 2)
	require.NoError(t, err)
	require.Empty(t, entries)

	idx, err := f.keeper.StakeFungible(f.ctx, f.alice, 2, math.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, uint64(0), idx)
}

func TestBatchStakeFungible(t *testing.T) {
	f := initFixture(t)
	f.open(t, false)

	_, err := f.keeper.BatchStakeFungible(f.ctx, f.alice, []uint64{0, 1}, []math.Int{math.NewInt(1)})
	require.ErrorIs(t, err, types.ErrArityMismatch)
	require.Equal(t, "batch arrays differ in length", err.Error())

	// balance checks are cumulative per type
	_, err = f.keeper.BatchStakeFungible(f.ctx, f.alice, []uint64{0, 1, 0}, []math.Int{math.NewInt(3), math.NewInt(1), math.NewInt(3)})
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
	require.Equal(t, math.NewInt(5), f.balance(f.alice, types.DefaultParams().FungibleDenom(1)))
	all, err := f.keeper.GetAllStakedFungible(f.ctx, f.alice)
	require.NoError(t, err)
	require.Empty(t, all)

	indices, err := f.keeper.BatchStakeFungible(f.ctx, f.alice, []uint64{0, 1, 0}, []math.Int{math.NewInt(2), math.NewInt(1), math.NewInt(3)})
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 0, 1}, indices)

	all, err = f.keeper.GetAllStakedFungible(f.ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, uint64(0), all[0].TypeID)
	require.True(t, all[0].TotalAmount().Equal(math.NewInt(5)))
	require.Equal(t, uint64(1), all[1].TypeID)
	require.True(t, all[1].TotalAmount().Equal(math.NewInt(1)))
}

func TestBatchStakeFungibleRollsBackEarlierTransfers(t *testing.T) {
	f := initFixture(t)
	f.open(t, false)
	p := types.DefaultParams()
	f.bankKeeper.FailDenom(p.FungibleDenom(1))

	_, err := f.keeper.BatchStakeFungible(f.ctx, f.alice, []uint64{0, 1}, []math.Int{math.NewInt(2), math.NewInt(1)})
	require.ErrorIs(t, err, types.ErrCustodyTransferFailure)

	// type 0 moved into custody before type 1 failed; the whole batch is undone.
	require.Equal(t, math.NewInt(5), f.balance(f.alice, p.FungibleDenom(0)))
	require.True(t, f.balance(f.keeper.ModuleAddress(), p.FungibleDenom(0)).IsZero())
	all, err := f.keeper.GetAllStakedFungible(f.ctx, f.alice)
	require.NoError(t, err)
	require.Empty(t, all)
	has, err := f.keeper.FungibleCursor.Has(f.ctx, collections.Join(f.str(t, f.alice), uint64(0)))
	require.NoError(t, err)
	require.False(t, has)
}

func TestBatchUnstakeFungibleRollsBackEarlierTransfers(t *testing.T) {
	f := initFixture(t)
	f.open(t, true)
	p := types.DefaultParams()
	_, err := f.keeper.BatchStakeFungible(f.ctx, f.alice, []uint64{0, 1}, []math.Int{math.NewInt(2), math.NewInt(1)})
	require.NoError(t, err)
	f.advance(time.Minute)
	f.bankKeeper.FailDenom(p.FungibleDenom(1))

	_, err = f.keeper.BatchUnstakeFungible(f.ctx, f.alice, []uint64{0, 1}, []uint64{0, 0})
	require.ErrorIs(t, err, types.ErrCustodyTransferFailure)

	require.Equal(t, math.NewInt(3), f.balance(f.alice, p.FungibleDenom(0)))
	require.Equal(t, math.NewInt(2), f.balance(f.keeper.ModuleAddress(), p.FungibleDenom(0)))
	entries, err := f.keeper.GetStakedFungible(f.ctx, f.alice, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, f.balance(f.alice, types.DefaultRewardDenom).IsZero())
}

func TestBatchUnstakeFungible(t *testing.T) {
	f := initFixture(t)
	f.open(t, true)

	_, err := f.keeper.BatchStakeFungible(f.ctx, f.alice, []uint64{0, 1, 2}, []math.Int{math.NewInt(1), math.NewInt(2), math.NewInt(3)})
	require.NoError(t, err)
	f.advance(2 * time.Second)

	_, err = f.keeper.BatchUnstakeFungible(f.ctx, f.alice, []uint64{0, 1}, []uint64{0})
	require.ErrorIs(t, err, types.ErrArityMismatch)

	_, err = f.keeper.BatchUnstakeFungible(f.ctx, f.alice, []uint64{0, 0}, []uint64{0, 0})
	require.ErrorIs(t, err, types.ErrNoStakeEntry)

	_, err = f.keeper.BatchUnstakeFungible(f.ctx, f.alice, []uint64{0, 1}, []uint64{0, 5})
	require.ErrorIs(t, err, types.ErrNoStakeEntry)
	entries, err := f.keeper.GetStakedFungible(f.ctx, f.alice, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	reward, err := f.keeper.BatchUnstakeFungible(f.ctx, f.alice, []uint64{0, 1, 2}, []uint64{0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, sdk.NewInt64Coin(types.DefaultRewardDenom, 12), reward)
	require.Equal(t, math.NewInt(12), f.balance(f.alice, types.DefaultRewardDenom))

	p := types.DefaultParams()
	for typeID := uint64(0); typeID < 3; typeID++ {
		require.Equal(t, math.NewInt(5), f.balance(f.alice, p.FungibleDenom(typeID)))
	}
}

// TestStakeRoundTrips follows a deposit and withdrawal sequence over both
// asset kinds with rewards turned on half way.
func TestStakeRoundTrips(t *testing.T) {
	f := initFixture(t)
	f.open(t, false)

	require.NoError(t, f.keeper.BatchStakeUnique(f.ctx, f.alice, []string{"token-1", "token-2", "token-3"}))
	_, err := f.keeper.BatchStakeFungible(f.ctx, f.alice, []uint64{0, 1, 2}, []math.Int{math.NewInt(1), math.NewInt(1), math.NewInt(1)})
	require.NoError(t, err)

	_, err = f.keeper.UnstakeUnique(f.ctx, f.alice, "token-1")
	require.NoError(t, err)
	_, err = f.keeper.UnstakeFungible(f.ctx, f.alice, 0, 0)
	require.NoError(t, err)

	require.NoError(t, f.keeper.SetClaimable(f.ctx, f.authority, true))
	require.NoError(t, f.keeper.StakeUnique(f.ctx, f.alice, "token-1"))
	indices, err := f.keeper.BatchStakeFungible(f.ctx, f.alice, []uint64{0, 1, 2}, []math.Int{math.NewInt(1), math.NewInt(1), math.NewInt(1)})
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1, 1}, indices)

	f.advance(time.Second)
	_, err = f.keeper.BatchUnstakeUnique(f.ctx, f.alice, []string{"token-1", "token-2", "token-3"})
	require.NoError(t, err)
	_, err = f.keeper.BatchUnstakeFungible(f.ctx, f.alice, []uint64{0, 1, 2}, []uint64{0, 0, 0})
	require.NoError(t, err)

	for _, id := range []string{"token-1", "token-2", "token-3"} {
		require.Equal(t, f.alice, f.nftOwner(id))
	}
	for typeID := uint64(0); typeID < 3; typeID++ {
		entries, err := f.keeper.GetStakedFungible(f.ctx, f.alice, typeID)
		require.NoError(t, err)
		if typeID == 0 {
			require.Empty(t, entries)
			continue
		}
		require.Equal(t, []uint64{1}, entryIndices(entries))
	}
	// three assets and three units held one second each
	require.Equal(t, math.NewInt(6), f.balance(f.alice, types.DefaultRewardDenom))
}
