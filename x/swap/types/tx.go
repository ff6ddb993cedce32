package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreatePair(context.Context, *MsgCreatePair) (*MsgCreatePairResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	SwapExactIn(context.Context, *MsgSwapExactIn) (*MsgSwapExactInResponse, error)
	SwapExactOut(context.Context, *MsgSwapExactOut) (*MsgSwapExactOutResponse, error)
	MakeLiquidity(context.Context, *MsgMakeLiquidity) (*MsgMakeLiquidityResponse, error)
	MakeLiquidityDual(context.Context, *MsgMakeLiquidityDual) (*MsgMakeLiquidityResponse, error)
	CleanUp(context.Context, *MsgCleanUp) (*MsgCleanUpResponse, error)
	SetFeeTo(context.Context, *MsgSetFeeTo) (*MsgSetFeeToResponse, error)
	SetFeeToSetter(context.Context, *MsgSetFeeToSetter) (*MsgSetFeeToResponse, error)
}

// Response types

// MsgCreatePairResponse defines the response for CreatePair
type MsgCreatePairResponse struct {
	Pair      string `json:"pair"`
	PairCount uint64 `json:"pair_count"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
	Shares  math.Int `json:"shares"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgSwapExactInResponse defines the response for SwapExactIn
type MsgSwapExactInResponse struct {
	Amounts []math.Int `json:"amounts"`
}

// MsgSwapExactOutResponse defines the response for SwapExactOut
type MsgSwapExactOutResponse struct {
	Amounts []math.Int `json:"amounts"`
}

// MsgMakeLiquidityResponse defines the response for both maker entry points
type MsgMakeLiquidityResponse struct {
	SwapIn    math.Int `json:"swap_in"`
	SwapOut   math.Int `json:"swap_out"`
	DepositIn math.Int `json:"deposit_in"`
	Shares    math.Int `json:"shares"`
}

// MsgCleanUpResponse defines the response for CleanUp
type MsgCleanUpResponse struct {
	Swept math.Int `json:"swept"`
}

// MsgSetFeeToResponse defines the response for the fee admin messages
type MsgSetFeeToResponse struct{}
