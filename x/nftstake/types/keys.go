package types

import "cosmossdk.io/collections"

const (
	ModuleName = "nftstake"
	StoreKey   = ModuleName
	RouterKey  = ModuleName

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	GovModuleName = "gov"
)

var (
	ParamsKey               = collections.NewPrefix("p_nftstake")
	GateKey                 = collections.NewPrefix("g_nftstake")
	UniqueStakeKeyPrefix    = collections.NewPrefix("us_nftstake")
	OwnerUniqueKeyPrefix    = collections.NewPrefix("ou_nftstake")
	FungibleEntryKeyPrefix  = collections.NewPrefix("fe_nftstake")
	FungibleCursorKeyPrefix = collections.NewPrefix("fc_nftstake")
)

// Key codecs shared by the keeper and by clients that read raw store values.
var (
	UniqueStakeKeyCodec    = collections.StringKey
	OwnerUniqueKeyCodec    = collections.PairKeyCodec(collections.StringKey, collections.StringKey)
	FungibleEntryKeyCodec  = collections.TripleKeyCodec(collections.StringKey, collections.Uint64Key, collections.Uint64Key)
	FungibleCursorKeyCodec = collections.PairKeyCodec(collections.StringKey, collections.Uint64Key)
)
