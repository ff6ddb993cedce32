package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swaps-chain/swaps/x/swap/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the swap MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePair handles explicit pair registration
func (ms msgServer) CreatePair(goCtx context.Context, msg *types.MsgCreatePair) (*types.MsgCreatePairResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePair: validate: %w", err)
	}

	pair, err := ms.Keeper.CreatePair(goCtx, msg.AssetA, msg.AssetB)
	if err != nil {
		return nil, fmt.Errorf("CreatePair: %w", err)
	}

	return &types.MsgCreatePairResponse{
		Pair:      pair.Address,
		PairCount: ms.Keeper.GetPairCount(goCtx),
	}, nil
}

// AddLiquidity handles a two-sided liquidity deposit. If one side is the
// chain's native denom the deposit is routed through the wrapping variant.
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid provider address: %w", err)
	}
	to, err := ms.resolveRecipient(msg.To, provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	params := ms.Keeper.GetParams(goCtx)

	var amountA, amountB, shares math.Int
	switch params.NativeDenom {
	case msg.AssetA:
		amountB, amountA, shares, err = ms.Keeper.AddLiquidityNative(
			goCtx, provider, msg.AssetB,
			msg.DesiredB, msg.DesiredA, msg.MinB, msg.MinA,
			to, msg.Deadline,
		)
	case msg.AssetB:
		amountA, amountB, shares, err = ms.Keeper.AddLiquidityNative(
			goCtx, provider, msg.AssetA,
			msg.DesiredA, msg.DesiredB, msg.MinA, msg.MinB,
			to, msg.Deadline,
		)
	default:
		amountA, amountB, shares, err = ms.Keeper.AddLiquidity(
			goCtx, provider, msg.AssetA, msg.AssetB,
			msg.DesiredA, msg.DesiredB, msg.MinA, msg.MinB,
			to, msg.Deadline,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
		Shares:  shares,
	}, nil
}

// RemoveLiquidity handles a liquidity withdrawal, unwrapping to native funds
// when one side names the native denom
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid provider address: %w", err)
	}
	to, err := ms.resolveRecipient(msg.To, provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	params := ms.Keeper.GetParams(goCtx)

	var amountA, amountB math.Int
	switch params.NativeDenom {
	case msg.AssetA:
		amountB, amountA, err = ms.Keeper.RemoveLiquidityNative(
			goCtx, provider, msg.AssetB,
			msg.Shares, msg.MinB, msg.MinA,
			to, msg.Deadline,
		)
	case msg.AssetB:
		amountA, amountB, err = ms.Keeper.RemoveLiquidityNative(
			goCtx, provider, msg.AssetA,
			msg.Shares, msg.MinA, msg.MinB,
			to, msg.Deadline,
		)
	default:
		amountA, amountB, err = ms.Keeper.RemoveLiquidity(
			goCtx, provider, msg.AssetA, msg.AssetB,
			msg.Shares, msg.MinA, msg.MinB,
			to, msg.Deadline,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}

// SwapExactIn handles an exact-input swap along a path. A native denom at
// either path endpoint routes through the wrapping variants.
func (ms msgServer) SwapExactIn(goCtx context.Context, msg *types.MsgSwapExactIn) (*types.MsgSwapExactInResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapExactIn: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("SwapExactIn: invalid trader address: %w", err)
	}
	to, err := ms.resolveRecipient(msg.To, trader)
	if err != nil {
		return nil, fmt.Errorf("SwapExactIn: %w", err)
	}

	path, nativeIn, nativeOut, err := ms.rewriteNativePath(goCtx, msg.Path)
	if err != nil {
		return nil, fmt.Errorf("SwapExactIn: %w", err)
	}

	var amounts []math.Int
	switch {
	case nativeIn:
		amounts, err = ms.Keeper.SwapExactNativeIn(goCtx, trader, msg.AmountIn, msg.MinAmountOut, path, to, msg.Deadline)
	case nativeOut:
		amounts, err = ms.Keeper.SwapExactInForNative(goCtx, trader, msg.AmountIn, msg.MinAmountOut, path, to, msg.Deadline)
	default:
		amounts, err = ms.Keeper.SwapExactIn(goCtx, trader, msg.AmountIn, msg.MinAmountOut, path, to, msg.Deadline)
	}
	if err != nil {
		return nil, fmt.Errorf("SwapExactIn: %w", err)
	}

	return &types.MsgSwapExactInResponse{Amounts: amounts}, nil
}

// SwapExactOut handles an exact-output swap along a path
func (ms msgServer) SwapExactOut(goCtx context.Context, msg *types.MsgSwapExactOut) (*types.MsgSwapExactOutResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapExactOut: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("SwapExactOut: invalid trader address: %w", err)
	}
	to, err := ms.resolveRecipient(msg.To, trader)
	if err != nil {
		return nil, fmt.Errorf("SwapExactOut: %w", err)
	}

	path, nativeIn, nativeOut, err := ms.rewriteNativePath(goCtx, msg.Path)
	if err != nil {
		return nil, fmt.Errorf("SwapExactOut: %w", err)
	}

	var amounts []math.Int
	switch {
	case nativeIn:
		amounts, err = ms.Keeper.SwapNativeExactOut(goCtx, trader, msg.AmountOut, msg.MaxAmountIn, path, to, msg.Deadline)
	case nativeOut:
		amounts, err = ms.Keeper.SwapExactOutForNative(goCtx, trader, msg.AmountOut, msg.MaxAmountIn, path, to, msg.Deadline)
	default:
		amounts, err = ms.Keeper.SwapExactOut(goCtx, trader, msg.AmountOut, msg.MaxAmountIn, path, to, msg.Deadline)
	}
	if err != nil {
		return nil, fmt.Errorf("SwapExactOut: %w", err)
	}

	return &types.MsgSwapExactOutResponse{Amounts: amounts}, nil
}

// MakeLiquidity handles a single-sided native deposit into a wrapped/asset pair
func (ms msgServer) MakeLiquidity(goCtx context.Context, msg *types.MsgMakeLiquidity) (*types.MsgMakeLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("MakeLiquidity: validate: %w", err)
	}

	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, fmt.Errorf("MakeLiquidity: invalid depositor address: %w", err)
	}

	result, err := ms.Keeper.MakeLiquidity(
		goCtx, depositor, msg.PairedAsset,
		msg.AmountIn, msg.ExpectedPairedOut, msg.MinLiquidityIn, msg.MinLiquidityOut,
		msg.Deadline,
	)
	if err != nil {
		return nil, fmt.Errorf("MakeLiquidity: %w", err)
	}

	return &types.MsgMakeLiquidityResponse{
		SwapIn:    result.SwapIn,
		SwapOut:   result.SwapOut,
		DepositIn: result.DepositIn,
		Shares:    result.Shares,
	}, nil
}

// MakeLiquidityDual handles a single-sided deposit of an arbitrary pair asset
func (ms msgServer) MakeLiquidityDual(goCtx context.Context, msg *types.MsgMakeLiquidityDual) (*types.MsgMakeLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("MakeLiquidityDual: validate: %w", err)
	}

	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, fmt.Errorf("MakeLiquidityDual: invalid depositor address: %w", err)
	}

	result, err := ms.Keeper.MakeLiquidityDual(
		goCtx, depositor, msg.AssetIn, msg.AssetOut,
		msg.AmountIn, msg.ExpectedOut, msg.MinLiquidityIn, msg.MinLiquidityOut,
		msg.Deadline,
	)
	if err != nil {
		return nil, fmt.Errorf("MakeLiquidityDual: %w", err)
	}

	return &types.MsgMakeLiquidityResponse{
		SwapIn:    result.SwapIn,
		SwapOut:   result.SwapOut,
		DepositIn: result.DepositIn,
		Shares:    result.Shares,
	}, nil
}

// CleanUp sweeps maker dust in one asset to the caller
func (ms msgServer) CleanUp(goCtx context.Context, msg *types.MsgCleanUp) (*types.MsgCleanUpResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CleanUp: validate: %w", err)
	}

	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, fmt.Errorf("CleanUp: invalid caller address: %w", err)
	}

	swept, err := ms.Keeper.CleanUp(goCtx, caller, msg.Asset)
	if err != nil {
		return nil, fmt.Errorf("CleanUp: %w", err)
	}

	return &types.MsgCleanUpResponse{Swept: swept}, nil
}

// SetFeeTo updates the protocol fee recipient
func (ms msgServer) SetFeeTo(goCtx context.Context, msg *types.MsgSetFeeTo) (*types.MsgSetFeeToResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetFeeTo: validate: %w", err)
	}

	setter, err := sdk.AccAddressFromBech32(msg.Setter)
	if err != nil {
		return nil, fmt.Errorf("SetFeeTo: invalid setter address: %w", err)
	}

	if err := ms.Keeper.SetFeeTo(goCtx, setter, msg.NewFeeTo); err != nil {
		return nil, fmt.Errorf("SetFeeTo: %w", err)
	}
	return &types.MsgSetFeeToResponse{}, nil
}

// SetFeeToSetter transfers the fee setter role
func (ms msgServer) SetFeeToSetter(goCtx context.Context, msg *types.MsgSetFeeToSetter) (*types.MsgSetFeeToResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetFeeToSetter: validate: %w", err)
	}

	setter, err := sdk.AccAddressFromBech32(msg.Setter)
	if err != nil {
		return nil, fmt.Errorf("SetFeeToSetter: invalid setter address: %w", err)
	}

	if err := ms.Keeper.SetFeeToSetter(goCtx, setter, msg.NewSetter); err != nil {
		return nil, fmt.Errorf("SetFeeToSetter: %w", err)
	}
	return &types.MsgSetFeeToResponse{}, nil
}

// resolveRecipient parses an optional recipient, defaulting to the signer
func (ms msgServer) resolveRecipient(to string, signer sdk.AccAddress) (sdk.AccAddress, error) {
	if to == "" {
		return signer, nil
	}
	recipient, err := sdk.AccAddressFromBech32(to)
	if err != nil {
		return nil, types.ErrInvalidRecipient.Wrapf("recipient %q: %s", to, err)
	}
	return recipient, nil
}

// rewriteNativePath swaps a native-denom path endpoint for the wrapped denom.
// The native denom may only appear at an endpoint, and at most one.
func (ms msgServer) rewriteNativePath(goCtx context.Context, path []string) ([]string, bool, bool, error) {
	params := ms.Keeper.GetParams(goCtx)

	for i := 1; i < len(path)-1; i++ {
		if path[i] == params.NativeDenom {
			return nil, false, false, types.ErrInvalidPath.Wrap("native denom only allowed at path endpoints")
		}
	}

	nativeIn := len(path) > 0 && path[0] == params.NativeDenom
	nativeOut := len(path) > 0 && path[len(path)-1] == params.NativeDenom
	if nativeIn && nativeOut {
		return nil, false, false, types.ErrInvalidPath.Wrap("both path endpoints name the native denom")
	}
	if !nativeIn && !nativeOut {
		return path, false, false, nil
	}

	rewritten := append([]string(nil), path...)
	if nativeIn {
		rewritten[0] = params.WrappedDenom
	}
	if nativeOut {
		rewritten[len(rewritten)-1] = params.WrappedDenom
	}
	return rewritten, nativeIn, nativeOut, nil
}
