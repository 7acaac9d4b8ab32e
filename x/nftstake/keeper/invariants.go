package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"nftstake/x/nftstake/types"
)

func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "custody-unique", UniqueCustodyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "custody-fungible", FungibleCustodyInvariant(k))
}

// UniqueCustodyInvariant checks that the registry reports the module account
// as holder of every asset with a live record, and that the owner index
// matches the records.
func UniqueCustodyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "custody-unique", err.Error()), true
		}
		custodian := k.ModuleAddress()

		var (
			msg    string
			broken int
		)
		err = k.UniqueStakes.Walk(ctx, nil, func(assetID string, rec types.UniqueStakeRecord) (bool, error) {
			holder, err := k.uniqueRegistry.OwnerOf(ctx, params.UniqueClassID, assetID)
			switch {
			case err != nil:
				broken++
				msg += fmt.Sprintf("\tasset %s: %s\n", assetID, err)
			case !holder.Equals(custodian):
				broken++
				msg += fmt.Sprintf("\tasset %s held by %s, not the custodian\n", assetID, holder)
			}
			indexed, err := k.OwnerUniqueStakes.Has(ctx, collections.Join(rec.Owner, assetID))
			if err != nil {
				return true, err
			}
			if !indexed {
				broken++
				msg += fmt.Sprintf("\tasset %s missing from the index of %s\n", assetID, rec.Owner)
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "custody-unique", err.Error()), true
		}

		return sdk.FormatInvariant(types.ModuleName, "custody-unique",
			fmt.Sprintf("%d assets out of custody\n%s", broken, msg)), broken != 0
	}
}

// FungibleCustodyInvariant checks that the module account holds at least the
// sum of live entries for every staked denom.
func FungibleCustodyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "custody-fungible", err.Error()), true
		}

		staked := make(map[uint64]math.Int)
		var order []uint64
		err = k.FungibleEntries.Walk(ctx, nil, func(key collections.Triple[string, uint64, uint64], e types.FungibleStakeEntry) (bool, error) {
			sum, ok := staked[key.K2()]
			if !ok {
				sum = math.ZeroInt()
				order = append(order, key.K2())
			}
			staked[key.K2()] = sum.Add(e.Amount)
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "custody-fungible", err.Error()), true
		}

		custodian := k.ModuleAddress()
		var (
			msg    string
			broken int
		)
		for _, typeID := range order {
			denom := params.FungibleDenom(typeID)
			held := k.fungibleRegistry.BalanceOf(ctx, custodian, denom)
			if held.LT(staked[typeID]) {
				broken++
				msg += fmt.Sprintf("\t%s: custodian holds %s, ledger expects %s\n", denom, held, staked[typeID])
			}
		}

		return sdk.FormatInvariant(types.ModuleName, "custody-fungible",
			fmt.Sprintf("%d denoms under-collateralized\n%s", broken, msg)), broken != 0
	}
}
