package keeper

import (
	"context"

	"nftstake/x/rewardtoken/types"
)

func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}

	for _, g := range gs.Minters {
		if _, err := k.addressCodec.StringToBytes(g.Minter); err != nil {
			return err
		}
		if err := k.setMinter(ctx, g.Denom, g.Minter); err != nil {
			return err
		}
	}

	return nil
}

func (k Keeper) ExportGenesis(ctx context.Context) (types.GenesisState, error) {
	gen := *types.DefaultGenesis()

	err := k.Minters.Walk(ctx, nil, func(denom string, minter string) (bool, error) {
		gen.Minters = append(gen.Minters, types.MinterGrant{Denom: denom, Minter: minter})
		return false, nil
	})
	if err != nil {
		return types.GenesisState{}, err
	}

	return gen, nil
}
