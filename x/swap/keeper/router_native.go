package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swaps-chain/swaps/x/swap/types"
)

// Native-asset router variants. Each wraps or unwraps the native denom at
// the matching path endpoint and otherwise delegates to the plain variant.
// Paths are expressed in the wrapped denom; the endpoint touching native
// funds must be the wrapped denom or the call fails with ErrInvalidPath.

func (k Keeper) requireWrappedEndpoint(ctx context.Context, path []string, last bool) (types.Params, error) {
	params := k.GetParams(ctx)
	if len(path) < 2 {
		return params, types.ErrInvalidPath.Wrap("path needs at least two assets")
	}
	endpoint := path[0]
	if last {
		endpoint = path[len(path)-1]
	}
	if endpoint != params.WrappedDenom {
		return params, types.ErrInvalidPath.Wrapf("path endpoint %s must be the wrapped denom %s", endpoint, params.WrappedDenom)
	}
	return params, nil
}

// AddLiquidityNative deposits asset alongside native funds. The native
// amount is wrapped first; whatever the reserve ratio leaves unused is
// unwrapped and refunded to the provider.
func (k Keeper) AddLiquidityNative(
	ctx context.Context,
	provider sdk.AccAddress,
	asset string,
	desiredAsset, amountNative, minAsset, minNative math.Int,
	to sdk.AccAddress,
	deadline int64,
) (math.Int, math.Int, math.Int, error) {
	if err := k.assertDeadline(ctx, deadline); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	params := k.GetParams(ctx)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	if err := k.Deposit(cacheCtx, provider, amountNative); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	amountAsset, amountWrapped, shares, err := k.AddLiquidity(
		cacheCtx, provider,
		asset, params.WrappedDenom,
		desiredAsset, amountNative, minAsset, minNative,
		to, deadline,
	)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	if leftover := amountNative.Sub(amountWrapped); leftover.IsPositive() {
		if err := k.Withdraw(cacheCtx, provider, leftover); err != nil {
			return math.Int{}, math.Int{}, math.Int{}, err
		}
	}

	writeCache()
	return amountAsset, amountWrapped, shares, nil
}

// RemoveLiquidityNative redeems shares of the asset/wrapped pair, paying the
// asset side to to and unwrapping the wrapped side into native funds.
func (k Keeper) RemoveLiquidityNative(
	ctx context.Context,
	provider sdk.AccAddress,
	asset string,
	shares, minAsset, minNative math.Int,
	to sdk.AccAddress,
	deadline int64,
) (math.Int, math.Int, error) {
	params := k.GetParams(ctx)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	// Burn into the module account so the wrapped leg can be unwrapped
	// before anything reaches the recipient.
	amountAsset, amountWrapped, err := k.RemoveLiquidity(
		cacheCtx, provider,
		asset, params.WrappedDenom,
		shares, minAsset, minNative,
		types.ModuleAddress(), deadline,
	)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if err := k.bankKeeper.SendCoins(cacheCtx, types.ModuleAddress(), to, sdk.NewCoins(sdk.NewCoin(asset, amountAsset))); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.Withdraw(cacheCtx, types.ModuleAddress(), amountWrapped); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.bankKeeper.SendCoins(cacheCtx, types.ModuleAddress(), to, sdk.NewCoins(sdk.NewCoin(params.NativeDenom, amountWrapped))); err != nil {
		return math.Int{}, math.Int{}, err
	}

	writeCache()
	return amountAsset, amountWrapped, nil
}

// SwapExactNativeIn swaps an exact amount of native funds along a path that
// starts at the wrapped denom
func (k Keeper) SwapExactNativeIn(
	ctx context.Context,
	trader sdk.AccAddress,
	amountIn, minAmountOut math.Int,
	path []string,
	to sdk.AccAddress,
	deadline int64,
) ([]math.Int, error) {
	if _, err := k.requireWrappedEndpoint(ctx, path, false); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	if err := k.Deposit(cacheCtx, trader, amountIn); err != nil {
		return nil, err
	}
	amounts, err := k.SwapExactIn(cacheCtx, trader, amountIn, minAmountOut, path, to, deadline)
	if err != nil {
		return nil, err
	}

	writeCache()
	return amounts, nil
}

// SwapExactInForNative swaps an exact input along a path ending at the
// wrapped denom and pays the output out as native funds
func (k Keeper) SwapExactInForNative(
	ctx context.Context,
	trader sdk.AccAddress,
	amountIn, minAmountOut math.Int,
	path []string,
	to sdk.AccAddress,
	deadline int64,
) ([]math.Int, error) {
	params, err := k.requireWrappedEndpoint(ctx, path, true)
	if err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	amounts, err := k.SwapExactIn(cacheCtx, trader, amountIn, minAmountOut, path, types.ModuleAddress(), deadline)
	if err != nil {
		return nil, err
	}

	out := amounts[len(amounts)-1]
	if err := k.Withdraw(cacheCtx, types.ModuleAddress(), out); err != nil {
		return nil, err
	}
	if err := k.bankKeeper.SendCoins(cacheCtx, types.ModuleAddress(), to, sdk.NewCoins(sdk.NewCoin(params.NativeDenom, out))); err != nil {
		return nil, err
	}

	writeCache()
	return amounts, nil
}

// SwapNativeExactOut buys an exact output with native funds, wrapping only
// as much of maxAmountIn as the route requires and refunding the rest
func (k Keeper) SwapNativeExactOut(
	ctx context.Context,
	trader sdk.AccAddress,
	amountOut, maxAmountIn math.Int,
	path []string,
	to sdk.AccAddress,
	deadline int64,
) ([]math.Int, error) {
	if _, err := k.requireWrappedEndpoint(ctx, path, false); err != nil {
		return nil, err
	}

	amounts, err := k.GetAmountsIn(ctx, amountOut, path)
	if err != nil {
		return nil, err
	}
	if amounts[0].GT(maxAmountIn) {
		return nil, types.ErrExcessiveInputAmount.Wrapf("route needs %s, maximum %s", amounts[0], maxAmountIn)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	if err := k.Deposit(cacheCtx, trader, amounts[0]); err != nil {
		return nil, err
	}
	if _, err := k.SwapExactOut(cacheCtx, trader, amountOut, amounts[0], path, to, deadline); err != nil {
		return nil, err
	}

	writeCache()
	return amounts, nil
}

// SwapExactOutForNative buys an exact amount of native funds, paying at most
// maxAmountIn along a path ending at the wrapped denom
func (k Keeper) SwapExactOutForNative(
	ctx context.Context,
	trader sdk.AccAddress,
	amountOut, maxAmountIn math.Int,
	path []string,
	to sdk.AccAddress,
	deadline int64,
) ([]math.Int, error) {
	params, err := k.requireWrappedEndpoint(ctx, path, true)
	if err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	amounts, err := k.SwapExactOut(cacheCtx, trader, amountOut, maxAmountIn, path, types.ModuleAddress(), deadline)
	if err != nil {
		return nil, err
	}

	if err := k.Withdraw(cacheCtx, types.ModuleAddress(), amountOut); err != nil {
		return nil, err
	}
	if err := k.bankKeeper.SendCoins(cacheCtx, types.ModuleAddress(), to, sdk.NewCoins(sdk.NewCoin(params.NativeDenom, amountOut))); err != nil {
		return nil, err
	}

	writeCache()
	return amounts, nil
}
