package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swaps-chain/swaps/x/swap/types"
)

// makeLiquidity converts amountIn of assetIn, already sitting in the maker
// account, into shares of the assetIn/assetOut pair credited to depositor.
// It swaps the portion of the input that the invariant says will leave the
// remainder matching the post-swap reserve ratio, then deposits both sides.
// Rounding dust stays in the maker account for a later CleanUp.
func (k Keeper) makeLiquidity(
	ctx context.Context,
	depositor sdk.AccAddress,
	assetIn, assetOut string,
	amountIn, expectedOut, minIn, minOut math.Int,
	deadline int64,
) (types.MakeResult, error) {
	pair, found := k.GetPairByAssets(ctx, assetIn, assetOut)
	if !found {
		return types.MakeResult{}, types.ErrPairNotFound.Wrapf("no pair for %s/%s", assetIn, assetOut)
	}

	reserveIn, _, _ := pair.ReservesFor(assetIn)
	swapIn, err := types.OptimalSwapIn(amountIn, reserveIn)
	if err != nil {
		return types.MakeResult{}, err
	}

	maker := types.MakerAddress()
	path := []string{assetIn, assetOut}
	amounts, err := k.SwapExactIn(ctx, maker, swapIn, math.ZeroInt(), path, maker, deadline)
	if err != nil {
		return types.MakeResult{}, err
	}
	swapOut := amounts[len(amounts)-1]

	if swapOut.LT(expectedOut) {
		k.Logger(ctx).Debug("maker swap under expectation",
			"asset_in", assetIn,
			"asset_out", assetOut,
			"expected", expectedOut,
			"actual", swapOut,
		)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwapResults,
			sdk.NewAttribute(types.AttributeKeyAssetIn, assetIn),
			sdk.NewAttribute(types.AttributeKeyAssetOut, assetOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, swapIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, swapOut.String()),
		),
	)

	remainder := amountIn.Sub(swapIn)
	depositIn, _, shares, err := k.AddLiquidity(
		ctx, maker,
		assetIn, assetOut,
		remainder, swapOut, minIn, minOut,
		depositor, deadline,
	)
	if err != nil {
		return types.MakeResult{}, err
	}

	if k.metrics != nil {
		k.metrics.MakerDeposits.WithLabelValues(assetIn, assetOut).Inc()
	}

	return types.MakeResult{
		SwapIn:    swapIn,
		SwapOut:   swapOut,
		DepositIn: depositIn,
		Shares:    shares,
	}, nil
}

// MakeLiquidity turns a native-asset deposit into shares of the pair between
// the wrapped denom and pairedAsset. The native funds are wrapped before the
// swap-and-deposit sequence. expectedOut is informational; minIn and minOut
// bound the deposit legs.
func (k Keeper) MakeLiquidity(
	ctx context.Context,
	depositor sdk.AccAddress,
	pairedAsset string,
	amountIn, expectedOut, minIn, minOut math.Int,
	deadline int64,
) (types.MakeResult, error) {
	if err := k.assertDeadline(ctx, deadline); err != nil {
		return types.MakeResult{}, err
	}
	if !amountIn.IsPositive() {
		return types.MakeResult{}, types.ErrInsufficientInputAmount.Wrap("deposit must be positive")
	}

	params := k.GetParams(ctx)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	if err := k.Deposit(cacheCtx, depositor, amountIn); err != nil {
		return types.MakeResult{}, err
	}
	wrapped := sdk.NewCoins(sdk.NewCoin(params.WrappedDenom, amountIn))
	if err := k.bankKeeper.SendCoins(cacheCtx, depositor, types.MakerAddress(), wrapped); err != nil {
		return types.MakeResult{}, err
	}

	result, err := k.makeLiquidity(cacheCtx, depositor, params.WrappedDenom, pairedAsset, amountIn, expectedOut, minIn, minOut, deadline)
	if err != nil {
		return types.MakeResult{}, err
	}

	writeCache()
	return result, nil
}

// MakeLiquidityDual is the two-asset variant: it pulls amountIn of assetIn
// from the depositor and converts it into shares of the assetIn/assetOut
// pair. A failed pull surfaces as ErrCallFailed so callers can distinguish
// missing funds from pricing failures.
func (k Keeper) MakeLiquidityDual(
	ctx context.Context,
	depositor sdk.AccAddress,
	assetIn, assetOut string,
	amountIn, expectedOut, minIn, minOut math.Int,
	deadline int64,
) (types.MakeResult, error) {
	if err := k.assertDeadline(ctx, deadline); err != nil {
		return types.MakeResult{}, err
	}
	if !amountIn.IsPositive() {
		return types.MakeResult{}, types.ErrInsufficientInputAmount.Wrap("deposit must be positive")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	funds := sdk.NewCoins(sdk.NewCoin(assetIn, amountIn))
	if err := k.bankKeeper.SendCoins(cacheCtx, depositor, types.MakerAddress(), funds); err != nil {
		return types.MakeResult{}, types.ErrCallFailed.Wrapf("pulling %s from %s: %s", funds, depositor, err)
	}

	result, err := k.makeLiquidity(cacheCtx, depositor, assetIn, assetOut, amountIn, expectedOut, minIn, minOut, deadline)
	if err != nil {
		return types.MakeResult{}, err
	}

	writeCache()
	return result, nil
}

// CleanUp sweeps the maker account's full balance in asset to caller. The
// maker's balance in that asset is exactly zero afterwards.
func (k Keeper) CleanUp(ctx context.Context, caller sdk.AccAddress, asset string) (math.Int, error) {
	if err := sdk.ValidateDenom(asset); err != nil {
		return math.Int{}, types.ErrEmptyAsset.Wrapf("invalid asset denom %s", asset)
	}

	maker := types.MakerAddress()
	balance := k.bankKeeper.GetBalance(ctx, maker, asset).Amount
	if balance.IsZero() {
		return math.ZeroInt(), nil
	}

	if err := k.bankKeeper.SendCoins(ctx, maker, caller, sdk.NewCoins(sdk.NewCoin(asset, balance))); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCleanUp,
			sdk.NewAttribute(types.AttributeKeyAsset, asset),
			sdk.NewAttribute(types.AttributeKeyAmount, balance.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, caller.String()),
		),
	)

	if k.metrics != nil && balance.IsInt64() {
		k.metrics.DustSwept.WithLabelValues(asset).Add(float64(balance.Int64()))
	}

	return balance, nil
}
