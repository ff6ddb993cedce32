package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePair{}, "swap/MsgCreatePair", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "swap/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "swap/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgSwapExactIn{}, "swap/MsgSwapExactIn", nil)
	cdc.RegisterConcrete(&MsgSwapExactOut{}, "swap/MsgSwapExactOut", nil)
	cdc.RegisterConcrete(&MsgMakeLiquidity{}, "swap/MsgMakeLiquidity", nil)
	cdc.RegisterConcrete(&MsgMakeLiquidityDual{}, "swap/MsgMakeLiquidityDual", nil)
	cdc.RegisterConcrete(&MsgCleanUp{}, "swap/MsgCleanUp", nil)
	cdc.RegisterConcrete(&MsgSetFeeTo{}, "swap/MsgSetFeeTo", nil)
	cdc.RegisterConcrete(&MsgSetFeeToSetter{}, "swap/MsgSetFeeToSetter", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePair{},
		&MsgAddLiquidity{},
		&MsgRemoveLiquidity{},
		&MsgSwapExactIn{},
		&MsgSwapExactOut{},
		&MsgMakeLiquidity{},
		&MsgMakeLiquidityDual{},
		&MsgCleanUp{},
		&MsgSetFeeTo{},
		&MsgSetFeeToSetter{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
