package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"nftstake/x/nftstake/types"
	rewardtokentypes "nftstake/x/rewardtoken/types"
)

func TestStakeUnique(t *testing.T) {
	f := initFixture(t)
	f.open(t, false)

	require.NoError(t, f.keeper.StakeUnique(f.ctx, f.alice, "token-1"))
	require.Equal(t, f.keeper.ModuleAddress(), f.nftOwner("token-1"))

	info, err := f.keeper.GetStaked(f.ctx, f.alice, "token-1")
	require.NoError(t, err)
	require.Equal(t, uint64(1), info.Amount)
	require.Equal(t, genesisTime.Unix(), info.StakedAt)

	info, err = f.keeper.GetStaked(f.ctx, f.bob, "token-1")
	require.NoError(t, err)
	require.Zero(t, info.Amount)

	testCases := []struct {
		name   string
		owner  sdk.AccAddress
		asset  string
		expMsg string
	}{
		{"nonexistent asset", f.alice, "token-99", "ERC721: owner query for nonexistent token"},
		{"owned by someone else", f.bob, "token-2", "Account doesnt own token"},
		{"already staked", f.alice, "token-1", "Account doesnt own token"},
		{"already staked by other", f.bob, "token-1", "Account doesnt own token"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := f.keeper.StakeUnique(f.ctx, tc.owner, tc.asset)
			require.Error(t, err)
			require.Equal(t, tc.expMsg, err.Error())
		})
	}
}

func TestStakeUniqueEmitsEvent(t *testing.T) {
	f := initFixture(t)
	f.open(t, false)
	f.ctx = f.ctx.WithEventManager(sdk.NewEventManager())

	require.NoError(t, f.keeper.StakeUnique(f.ctx, f.alice, "token-2"))

	var found bool
	for _, ev := range f.ctx.EventManager().Events() {
		if ev.Type != types.EventStakeUnique {
			continue
		}
		found = true
		attr, ok := ev.GetAttribute(types.AttrAssetID)
		require.True(t, ok)
		require.Equal(t, "token-2", attr.Value)
	}
	require.True(t, found)
}

func TestUnstakeUnique(t *testing.T) {
	f := initFixture(t)
	f.open(t, false)
	require.NoError(t, f.keeper.StakeUnique(f.ctx, f.alice, "token-1"))

	_, err := f.keeper.UnstakeUnique(f.ctx, f.bob, "token-1")
	require.Error(t, err)
	require.Equal(t, "Nft Staking System: user must be the owner of the staked nft", err.Error())

	_, err = f.keeper.UnstakeUnique(f.ctx, f.alice, "token-2")
	require.ErrorIs(t, err, types.ErrNotStaker)

	f.advance(30 * time.Second)
	reward, err := f.keeper.UnstakeUnique(f.ctx, f.alice, "token-1")
	require.NoError(t, err)
	require.True(t, reward.IsZero())
	require.Equal(t, f.alice, f.nftOwner("token-1"))
	require.True(t, f.balance(f.alice, types.DefaultRewardDenom).IsZero())

	info, err := f.keeper.GetStaked(f.ctx, f.alice, "token-1")
	require.NoError(t, err)
	require.Zero(t, info.Amount)

	_, err = f.keeper.UnstakeUnique(f.ctx, f.alice, "token-1")
	require.ErrorIs(t, err, types.ErrNotStaker)

	// restaking after a full round trip works
	require.NoError(t, f.keeper.StakeUnique(f.ctx, f.alice, "token-1"))
}

func TestUnstakeUniquePaysReward(t *testing.T) {
	f := initFixture(t)
	f.open(t, true)
	require.NoError(t, f.keeper.StakeUnique(f.ctx, f.alice, "token-1"))

	f.advance(10 * time.Second)
	reward, err := f.keeper.UnstakeUnique(f.ctx, f.alice, "token-1")
	require.NoError(t, err)
	require.Equal(t, sdk.NewInt64Coin(types.DefaultRewardDenom, 10), reward)
	require.Equal(t, math.NewInt(10), f.balance(f.alice, types.DefaultRewardDenom))
}

func TestUnstakeUniqueSameBlockPaysNothing(t *testing.T) {
	f := initFixture(t)
	f.open(t, true)
	require.NoError(t, f.keeper.StakeUnique(f.ctx, f.alice, "token-1"))

	reward, err := f.keeper.UnstakeUnique(f.ctx, f.alice, "token-1")
	require.NoError(t, err)
	require.True(t, reward.IsZero())
	require.Equal(t, f.alice, f.nftOwner("token-1"))
}

func TestBatchStakeUnique(t *testing.T) {
	f := initFixture(t)
	f.open(t, false)

	err := f.keeper.BatchStakeUnique(f.ctx, f.alice, []string{"token-1", "token-1"})
	require.ErrorIs(t, err, types.ErrAlreadyStaked)
	require.Equal(t, f.alice, f.nftOwner("token-1"))

	err = f.keeper.BatchStakeUnique(f.ctx, f.alice, []string{"token-1", "token-99"})
	require.ErrorIs(t, err, types.ErrNonexistentAsset)
	info, err := f.keeper.GetStaked(f.ctx, f.alice, "token-1")
	require.NoError(t, err)
	require.Zero(t, info.Amount)

	require.NoError(t, f.keeper.BatchStakeUnique(f.ctx, f.alice, []string{"token-1", "token-2", "token-3"}))
	for _, id := range []string{"token-1", "token-2", "token-3"} {
		info, err := f.keeper.GetStaked(f.ctx, f.alice, id)
		require.NoError(t, err)
		require.Equal(t, uint64(1), info.Amount, id)
		require.Equal(t, f.keeper.ModuleAddress(), f.nftOwner(id))
	}

	recs, err := f.keeper.GetAllStakedUnique(f.ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, recs, 3)
}

func TestBatchUnstakeUnique(t *testing.T) {
	f := initFixture(t)
	f.open(t, true)
	require.NoError(t, f.keeper.BatchStakeUnique(f.ctx, f.alice, []string{"token-1", "token-2", "token-3"}))
	f.advance(5 * time.Second)

	_, err := f.keeper.BatchUnstakeUnique(f.ctx, f.alice, []string{"token-3", "token-3"})
	require.ErrorIs(t, err, types.ErrNotStaker)
	info, err := f.keeper.GetStaked(f.ctx, f.alice, "token-3")
	require.NoError(t, err)
	require.Equal(t, uint64(1), info.Amount)

	_, err = f.keeper.BatchUnstakeUnique(f.ctx, f.bob, []string{"token-1"})
	require.ErrorIs(t, err, types.ErrNotStaker)

	reward, err := f.keeper.BatchUnstakeUnique(f.ctx, f.alice, []string{"token-1", "token-2"})
	require.NoError(t, err)
	require.Equal(t, sdk.NewInt64Coin(types.DefaultRewardDenom, 10), reward)
	require.Equal(t, f.alice, f.nftOwner("token-1"))
	require.Equal(t, f.alice, f.nftOwner("token-2"))
	require.Equal(t, f.keeper.ModuleAddress(), f.nftOwner("token-3"))

	recs, err := f.keeper.GetAllStakedUnique(f.ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "token-3", recs[0].AssetID)
}

func TestBatchStakeUniqueRollsBackOnTransferFailure(t *testing.T) {
	f := initFixture(t)
	f.open(t, false)
	f.nftKeeper.FailTransfer("token-1")

	err := f.keeper.BatchStakeUnique(f.ctx, f.alice, []string{"token-1", "token-2"})
	require.ErrorIs(t, err, types.ErrCustodyTransferFailure)

	for _, id := range []string{"token-1", "token-2"} {
		info, err := f.keeper.GetStaked(f.ctx, f.alice, id)
		require.NoError(t, err)
		require.Zero(t, info.Amount)
		require.Equal(t, f.alice, f.nftOwner(id))
	}
	recs, err := f.keeper.GetAllStakedUnique(f.ctx, f.alice)
	require.NoError(t, err)
	require.Empty(t, recs)
}

func TestBatchStakeUniqueRollsBackEarlierTransfers(t *testing.T) {
	f := initFixture(t)
	f.open(t, false)
	f.nftKeeper.FailTransfer("token-2")

	err := f.keeper.BatchStakeUnique(f.ctx, f.alice, []string{"token-1", "token-2", "token-3"})
	require.ErrorIs(t, err, types.ErrCustodyTransferFailure)

	// token-1 moved into custody before token-2 failed; the whole batch is undone.
	for _, id := range []string{"token-1", "token-2", "token-3"} {
		require.Equal(t, f.alice, f.nftOwner(id), id)
		has, err := f.keeper.UniqueStakes.Has(f.ctx, id)
		require.NoError(t, err)
		require.False(t, has, id)
	}
}

func TestBatchUnstakeUniqueRollsBackEarlierTransfers(t *testing.T) {
	f := initFixture(t)
	f.open(t, true)
	require.NoError(t, f.keeper.BatchStakeUnique(f.ctx, f.alice, []string{"token-1", "token-2"}))
	f.advance(time.Minute)
	f.nftKeeper.FailTransfer("token-2")

	_, err := f.keeper.BatchUnstakeUnique(f.ctx, f.alice, []string{"token-1", "token-2"})
	require.ErrorIs(t, err, types.ErrCustodyTransferFailure)

	for _, id := range []string{"token-1", "token-2"} {
		require.Equal(t, f.keeper.ModuleAddress(), f.nftOwner(id), id)
		info, err := f.keeper.GetStaked(f.ctx, f.alice, id)
		require.NoError(t, err)
		require.Equal(t, uint64(1), info.Amount, id)
	}
	require.True(t, f.balance(f.alice, types.DefaultRewardDenom).IsZero())
}

func TestUnstakeUniqueFailsWhenRewardCannotBeMinted(t *testing.T) {
	f := initFixture(t)
	f.open(t, true)
	require.NoError(t, f.keeper.StakeUnique(f.ctx, f.alice, "token-1"))
	require.NoError(t, f.rewardKeeper.RevokeMinter(f.ctx, f.authority, types.DefaultRewardDenom))

	f.advance(time.Minute)
	_, err := f.keeper.UnstakeUnique(f.ctx, f.alice, "token-1")
	require.ErrorIs(t, err, rewardtokentypes.ErrMinterNotGranted)

	info, err := f.keeper.GetStaked(f.ctx, f.alice, "token-1")
	require.NoError(t, err)
	require.Equal(t, uint64(1), info.Amount)
}
