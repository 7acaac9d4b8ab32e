package module

import (
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/appmodule"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"nftstake/x/rewardtoken/keeper"
	"nftstake/x/rewardtoken/types"
)

var _ depinject.OnePerModuleType = AppModule{}

// IsOnePerModuleType implements the depinject.OnePerModuleType interface.
func (AppModule) IsOnePerModuleType() {}

type ModuleInputs struct {
	depinject.In

	StoreService store.KVStoreService
	AddressCodec address.Codec
	BankKeeper   types.BankKeeper
}

type ModuleOutputs struct {
	depinject.Out

	RewardTokenKeeper keeper.Keeper
	Module            appmodule.AppModule
}

// ProvideModule builds the keeper with the gov module account as authority.
func ProvideModule(in ModuleInputs) ModuleOutputs {
	authority := authtypes.NewModuleAddress(types.GovModuleName)
	k := keeper.NewKeeper(in.StoreService, in.AddressCodec, authority, in.BankKeeper)
	return ModuleOutputs{RewardTokenKeeper: k, Module: NewAppModule(k)}
}
