package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MinterGrant records the single principal allowed to mint a denom.
type MinterGrant struct {
	Denom  string `json:"denom"`
	Minter string `json:"minter"`
}

type GenesisState struct {
	Minters []MinterGrant `json:"minters"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Minters: []MinterGrant{},
	}
}

func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Minters))
	for _, g := range gs.Minters {
		if err := sdk.ValidateDenom(g.Denom); err != nil {
			return fmt.Errorf("minters: %w", err)
		}
		if g.Minter == "" {
			return fmt.Errorf("minters: minter required for %q", g.Denom)
		}
		if _, ok := seen[g.Denom]; ok {
			return fmt.Errorf("minters: duplicate denom %q", g.Denom)
		}
		seen[g.Denom] = struct{}{}
	}
	return nil
}
