package types

import "cosmossdk.io/collections"

const (
	ModuleName = "rewardtoken"
	StoreKey   = ModuleName

	RouterKey = ModuleName

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	GovModuleName = "gov"
)

var (
	MintersKeyPrefix      = collections.NewPrefix("m_rewardtoken")
	MinterDenomsKeyPrefix = collections.NewPrefix("md_rewardtoken")
)
