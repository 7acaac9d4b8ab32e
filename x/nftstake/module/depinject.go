package module

import (
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/appmodule"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"nftstake/x/nftstake/keeper"
	"nftstake/x/nftstake/registry"
	"nftstake/x/nftstake/types"
	rewardtokenkeeper "nftstake/x/rewardtoken/keeper"
)

var _ depinject.OnePerModuleType = AppModule{}

// IsOnePerModuleType implements the depinject.OnePerModuleType interface.
func (AppModule) IsOnePerModuleType() {}

type ModuleInputs struct {
	depinject.In

	StoreService      store.KVStoreService
	AddressCodec      address.Codec
	NFTKeeper         registry.NFTKeeper
	BankKeeper        registry.BankKeeper
	RewardTokenKeeper rewardtokenkeeper.Keeper
}

type ModuleOutputs struct {
	depinject.Out

	NFTStakeKeeper keeper.Keeper
	Module         appmodule.AppModule
}

// ProvideModule wires the ledger to x/nft for unique assets, x/bank for
// fungible assets and x/rewardtoken for rewards. The gov module account is
// the authority.
func ProvideModule(in ModuleInputs) ModuleOutputs {
	authority := authtypes.NewModuleAddress(types.GovModuleName)
	k := keeper.NewKeeper(
		in.StoreService,
		in.AddressCodec,
		authority,
		registry.NewNFTRegistry(in.NFTKeeper),
		registry.NewBankRegistry(in.BankKeeper),
		in.RewardTokenKeeper,
	)
	return ModuleOutputs{NFTStakeKeeper: k, Module: NewAppModule(k)}
}
