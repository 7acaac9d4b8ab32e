package module

import (
	"encoding/json"

	"cosmossdk.io/core/appmodule"
	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"
	"github.com/spf13/cobra"

	nftstakecli "nftstake/x/nftstake/client/cli"
	"nftstake/x/nftstake/keeper"
	"nftstake/x/nftstake/types"
)

// AppModuleBasic defines the basic application module used by the nftstake module.
type AppModuleBasic struct{}

func (AppModuleBasic) Name() string { return types.ModuleName }

func (AppModuleBasic) RegisterLegacyAminoCodec(_ *codec.LegacyAmino) {}

func (AppModuleBasic) RegisterInterfaces(_ codectypes.InterfaceRegistry) {}

// RegisterGRPCGatewayRoutes is a no-op; read access is served by the REST
// routes in client/rest.
func (AppModuleBasic) RegisterGRPCGatewayRoutes(_ client.Context, _ *runtime.ServeMux) {}

func (AppModuleBasic) DefaultGenesis(_ codec.JSONCodec) json.RawMessage {
	bz, _ := json.Marshal(types.DefaultGenesis())
	return bz
}

func (AppModuleBasic) ValidateGenesis(_ codec.JSONCodec, _ client.TxEncodingConfig, bz json.RawMessage) error {
	if len(bz) == 0 {
		return nil
	}
	var gs types.GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return err
	}
	return gs.Validate()
}

func (AppModuleBasic) GetTxCmd() *cobra.Command { return nil }

func (AppModuleBasic) GetQueryCmd() *cobra.Command {
	return nftstakecli.GetQueryCmd()
}

// AppModule implements an application module for the nftstake module.
type AppModule struct {
	AppModuleBasic
	keeper keeper.Keeper
}

// IsAppModule marks compatibility with appmodule wiring helpers.
func (AppModule) IsAppModule() {}

var (
	_ appmodule.AppModule     = AppModule{}
	_ module.AppModule        = AppModule{}
	_ module.HasABCIGenesis   = AppModule{}
	_ module.HasInvariants    = AppModule{}
	_ module.HasGenesisBasics = AppModuleBasic{}
)

func NewAppModule(k keeper.Keeper) AppModule {
	return AppModule{keeper: k}
}

// MsgServer exposes the module's message handlers to in-process callers.
func (am AppModule) MsgServer() types.MsgServer { return keeper.NewMsgServerImpl(am.keeper) }

// QueryServer exposes the module's query handlers to in-process callers.
func (am AppModule) QueryServer() types.QueryServer { return keeper.NewQueryServerImpl(am.keeper) }

func (am AppModule) InitGenesis(ctx sdk.Context, _ codec.JSONCodec, data json.RawMessage) []abci.ValidatorUpdate {
	gs := *types.DefaultGenesis()
	if len(data) != 0 {
		if err := json.Unmarshal(data, &gs); err != nil {
			panic(err)
		}
	}
	if err := am.keeper.InitGenesis(ctx, gs); err != nil {
		panic(err)
	}
	return nil
}

func (am AppModule) ExportGenesis(ctx sdk.Context, _ codec.JSONCodec) json.RawMessage {
	gs, err := am.keeper.ExportGenesis(ctx)
	if err != nil {
		panic(err)
	}
	bz, _ := json.Marshal(gs)
	return bz
}

func (AppModule) ConsensusVersion() uint64 { return 1 }

// RegisterInvariants registers the custody invariants.
func (am AppModule) RegisterInvariants(ir sdk.InvariantRegistry) {
	keeper.RegisterInvariants(ir, am.keeper)
}
