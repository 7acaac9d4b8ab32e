package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"nftstake/x/nftstake/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	f := initFixture(t)
	f.open(t, true)

	require.NoError(t, f.keeper.BatchStakeUnique(f.ctx, f.alice, []string{"token-1", "token-2"}))
	_, err := f.keeper.BatchStakeFungible(f.ctx, f.alice, []uint64{0, 0, 0}, []math.Int{math.NewInt(1), math.NewInt(1), math.NewInt(1)})
	require.NoError(t, err)
	_, err = f.keeper.UnstakeFungible(f.ctx, f.alice, 0, 2)
	require.NoError(t, err)

	exported, err := f.keeper.ExportGenesis(f.ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Equal(t, types.AccessGate{Initialized: true, Claimable: true}, exported.Gate)
	require.Len(t, exported.UniqueStakes, 2)
	require.Len(t, exported.FungibleEntries, 2)

	g := initFixture(t)
	require.NoError(t, g.keeper.InitGenesis(g.ctx, exported))

	again, err := g.keeper.ExportGenesis(g.ctx)
	require.NoError(t, err)
	require.Equal(t, exported, again)

	info, err := g.keeper.GetStaked(g.ctx, g.alice, "token-2")
	require.NoError(t, err)
	require.Equal(t, uint64(1), info.Amount)

	recs, err := g.keeper.GetAllStakedUnique(g.ctx, g.alice)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// the cursor resumes after the highest imported index
	idx, err := g.keeper.StakeFungible(g.ctx, g.alice, 0, math.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, uint64(2), idx)
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	f := initFixture(t)
	gs := *types.DefaultGenesis()
	gs.FungibleEntries = []types.FungibleEntryRecord{
		{Owner: f.str(t, f.alice), TypeID: 0, Index: 0, Amount: math.ZeroInt()},
	}
	require.ErrorIs(t, f.keeper.InitGenesis(f.ctx, gs), types.ErrInvalidGenesis)
}
