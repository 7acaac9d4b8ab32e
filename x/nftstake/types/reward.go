package types

import (
	"time"

	"cosmossdk.io/math"
)

// RewardFunc sizes the reward for returning quantity units held for the given
// duration. Implementations must return zero for a non-positive duration and
// must not decrease as the duration grows.
type RewardFunc func(rate math.LegacyDec, quantity math.Int, held time.Duration) math.Int

// LinearReward pays rate per unit per whole second held, rounded down.
func LinearReward(rate math.LegacyDec, quantity math.Int, held time.Duration) math.Int {
	seconds := int64(held / time.Second)
	if seconds <= 0 || rate.IsNil() || !rate.IsPositive() || quantity.IsNil() || !quantity.IsPositive() {
		return math.ZeroInt()
	}
	return rate.MulInt(quantity).MulInt64(seconds).TruncateInt()
}
