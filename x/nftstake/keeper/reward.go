package keeper

import (
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"nftstake/x/nftstake/types"
)

// rewardTally sums the rewards earned by one unstake call so they can be
// minted with a single issuer call.
type rewardTally struct {
	enabled bool
	rate    math.LegacyDec
	now     time.Time
	fn      types.RewardFunc
	total   math.Int
}

func (k Keeper) newRewardTally(ctx sdk.Context, gate types.AccessGate, params types.Params) rewardTally {
	return rewardTally{
		enabled: gate.Claimable,
		rate:    params.RewardRate,
		now:     ctx.BlockTime(),
		fn:      k.rewardFn,
		total:   math.ZeroInt(),
	}
}

func (t *rewardTally) add(quantity math.Int, stakedAt int64) {
	if !t.enabled {
		return
	}
	held := t.now.Sub(time.Unix(stakedAt, 0))
	if amt := t.fn(t.rate, quantity, held); amt.IsPositive() {
		t.total = t.total.Add(amt)
	}
}

// issueReward mints the tallied reward to owner. It returns the zero coin when
// nothing was earned.
func (k Keeper) issueReward(ctx sdk.Context, owner sdk.AccAddress, ownerStr, denom string, t rewardTally) (sdk.Coin, sdk.Events, error) {
	if !t.total.IsPositive() {
		return sdk.NewCoin(denom, math.ZeroInt()), nil, nil
	}
	reward := sdk.NewCoin(denom, t.total)
	if err := k.rewardIssuer.Mint(ctx, k.ModuleAddress(), owner, reward); err != nil {
		return sdk.Coin{}, nil, err
	}
	k.Logger(ctx).Info("reward minted", "owner", ownerStr, "reward", reward.String())
	return reward, sdk.Events{
		sdk.NewEvent(
			types.EventRewardMinted,
			sdk.NewAttribute(types.AttrOwner, ownerStr),
			sdk.NewAttribute(types.AttrReward, reward.String()),
		),
	}, nil
}

var oneUnit = math.OneInt()
