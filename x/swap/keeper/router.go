package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swaps-chain/swaps/x/swap/types"
)

// assertDeadline fails with ErrExpired once block time passes the unix deadline
func (k Keeper) assertDeadline(ctx context.Context, deadline int64) error {
	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	if now > deadline {
		return types.ErrExpired.Wrapf("deadline %d passed at block time %d", deadline, now)
	}
	return nil
}

// checkPath validates a swap path against module parameters
func (k Keeper) checkPath(ctx context.Context, path []string) error {
	if len(path) < 2 {
		return types.ErrInvalidPath.Wrap("path needs at least two assets")
	}
	params := k.GetParams(ctx)
	if uint32(len(path)) > params.MaxPathLength {
		return types.ErrInvalidPath.Wrapf("path length %d exceeds maximum %d", len(path), params.MaxPathLength)
	}
	return nil
}

// GetAmountsOut walks the path forward, chaining GetAmountOut through each
// pair's current reserves. amounts[0] is amountIn, amounts[len-1] the output.
func (k Keeper) GetAmountsOut(ctx context.Context, amountIn math.Int, path []string) ([]math.Int, error) {
	if err := k.checkPath(ctx, path); err != nil {
		return nil, err
	}

	amounts := make([]math.Int, len(path))
	amounts[0] = amountIn
	for i := 0; i < len(path)-1; i++ {
		pair, found := k.GetPairByAssets(ctx, path[i], path[i+1])
		if !found {
			return nil, types.ErrPairNotFound.Wrapf("no pair for %s/%s", path[i], path[i+1])
		}
		reserveIn, reserveOut, _ := pair.ReservesFor(path[i])
		out, err := types.GetAmountOut(amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, err
		}
		amounts[i+1] = out
	}
	return amounts, nil
}

// GetAmountsIn walks the path backward, chaining GetAmountIn through each
// pair's current reserves. amounts[len-1] is amountOut, amounts[0] the input.
func (k Keeper) GetAmountsIn(ctx context.Context, amountOut math.Int, path []string) ([]math.Int, error) {
	if err := k.checkPath(ctx, path); err != nil {
		return nil, err
	}

	amounts := make([]math.Int, len(path))
	amounts[len(path)-1] = amountOut
	for i := len(path) - 1; i > 0; i-- {
		pair, found := k.GetPairByAssets(ctx, path[i-1], path[i])
		if !found {
			return nil, types.ErrPairNotFound.Wrapf("no pair for %s/%s", path[i-1], path[i])
		}
		reserveIn, reserveOut, _ := pair.ReservesFor(path[i-1])
		in, err := types.GetAmountIn(amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, err
		}
		amounts[i-1] = in
	}
	return amounts, nil
}

// addLiquidityAmounts resolves desired deposit amounts against the current
// reserve ratio: the full desired amount on one side, the matching quote on
// the other, never exceeding either desired amount.
func (k Keeper) addLiquidityAmounts(ctx context.Context, assetA, assetB string, desiredA, desiredB, minA, minB math.Int) (math.Int, math.Int, error) {
	pair, found := k.GetPairByAssets(ctx, assetA, assetB)
	if !found {
		var err error
		if pair, err = k.CreatePair(ctx, assetA, assetB); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	reserveA, reserveB, _ := pair.ReservesFor(assetA)
	if reserveA.IsZero() && reserveB.IsZero() {
		return desiredA, desiredB, nil
	}

	optimalB, err := types.Quote(desiredA, reserveA, reserveB)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if optimalB.LTE(desiredB) {
		if optimalB.LT(minB) {
			return math.Int{}, math.Int{}, types.ErrInsufficientAmount.Wrapf("%s deposit %s below minimum %s", assetB, optimalB, minB)
		}
		return desiredA, optimalB, nil
	}

	optimalA, err := types.Quote(desiredB, reserveB, reserveA)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if optimalA.GT(desiredA) {
		return math.Int{}, math.Int{}, types.ErrInsufficientAmount.Wrapf("%s quote %s exceeds desired %s", assetA, optimalA, desiredA)
	}
	if optimalA.LT(minA) {
		return math.Int{}, math.Int{}, types.ErrInsufficientAmount.Wrapf("%s deposit %s below minimum %s", assetA, optimalA, minA)
	}
	return optimalA, desiredB, nil
}

// AddLiquidity deposits up to the desired amounts of both assets at the
// current reserve ratio and mints shares to to. Creates the pair on first
// use. The whole operation is atomic.
func (k Keeper) AddLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	assetA, assetB string,
	desiredA, desiredB, minA, minB math.Int,
	to sdk.AccAddress,
	deadline int64,
) (math.Int, math.Int, math.Int, error) {
	if err := k.assertDeadline(ctx, deadline); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	amountA, amountB, err := k.addLiquidityAmounts(cacheCtx, assetA, assetB, desiredA, desiredB, minA, minB)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	pairAddr := sdk.AccAddress(types.PairAddress(assetA, assetB))
	deposit := sdk.NewCoins(
		sdk.NewCoin(assetA, amountA),
		sdk.NewCoin(assetB, amountB),
	)
	if err := k.bankKeeper.SendCoins(cacheCtx, provider, pairAddr, deposit); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	shares, err := k.Mint(cacheCtx, pairAddr, to)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	writeCache()
	return amountA, amountB, shares, nil
}

// RemoveLiquidity redeems shares for both underlying assets, enforcing
// caller-specified minimum outputs
func (k Keeper) RemoveLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	assetA, assetB string,
	shares, minA, minB math.Int,
	to sdk.AccAddress,
	deadline int64,
) (math.Int, math.Int, error) {
	if err := k.assertDeadline(ctx, deadline); err != nil {
		return math.Int{}, math.Int{}, err
	}

	pair, found := k.GetPairByAssets(ctx, assetA, assetB)
	if !found {
		return math.Int{}, math.Int{}, types.ErrPairNotFound.Wrapf("no pair for %s/%s", assetA, assetB)
	}
	pairAddr := pair.AccAddress()

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	if err := k.SendShares(cacheCtx, pairAddr, provider, pairAddr, shares); err != nil {
		return math.Int{}, math.Int{}, err
	}

	outA, outB, err := k.Burn(cacheCtx, pairAddr, to)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	// Burn reports amounts in canonical pair order; reorient to the caller's.
	amountA, amountB := outA, outB
	if assetA != pair.AssetA {
		amountA, amountB = outB, outA
	}
	if amountA.LT(minA) {
		return math.Int{}, math.Int{}, types.ErrInsufficientOutputAmount.Wrapf("%s payout %s below minimum %s", assetA, amountA, minA)
	}
	if amountB.LT(minB) {
		return math.Int{}, math.Int{}, types.ErrInsufficientOutputAmount.Wrapf("%s payout %s below minimum %s", assetB, amountB, minB)
	}

	writeCache()
	return amountA, amountB, nil
}

// executePath performs the chained swaps for an already-funded route. The
// input for hop i must already sit in pair i's account; intermediate outputs
// are paid directly into the next pair.
func (k Keeper) executePath(ctx context.Context, amounts []math.Int, path []string, to sdk.AccAddress) error {
	for i := 0; i < len(path)-1; i++ {
		pair, found := k.GetPairByAssets(ctx, path[i], path[i+1])
		if !found {
			return types.ErrPairNotFound.Wrapf("no pair for %s/%s", path[i], path[i+1])
		}

		amountAOut, amountBOut := math.ZeroInt(), math.ZeroInt()
		if path[i+1] == pair.AssetA {
			amountAOut = amounts[i+1]
		} else {
			amountBOut = amounts[i+1]
		}

		recipient := to
		if i < len(path)-2 {
			recipient = sdk.AccAddress(types.PairAddress(path[i+1], path[i+2]))
		}

		if err := k.Swap(ctx, pair.AccAddress(), amountAOut, amountBOut, recipient); err != nil {
			return err
		}
	}
	return nil
}

// SwapExactIn swaps an exact input along path for as much output as the
// route yields, failing if the result lands under minAmountOut. Returns the
// per-hop amounts, input first.
func (k Keeper) SwapExactIn(
	ctx context.Context,
	trader sdk.AccAddress,
	amountIn, minAmountOut math.Int,
	path []string,
	to sdk.AccAddress,
	deadline int64,
) ([]math.Int, error) {
	if err := k.assertDeadline(ctx, deadline); err != nil {
		return nil, err
	}

	amounts, err := k.GetAmountsOut(ctx, amountIn, path)
	if err != nil {
		return nil, err
	}
	if amounts[len(amounts)-1].LT(minAmountOut) {
		return nil, types.ErrInsufficientOutputAmount.Wrapf("route yields %s, minimum %s", amounts[len(amounts)-1], minAmountOut)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	firstPair := sdk.AccAddress(types.PairAddress(path[0], path[1]))
	if err := k.bankKeeper.SendCoins(cacheCtx, trader, firstPair, sdk.NewCoins(sdk.NewCoin(path[0], amountIn))); err != nil {
		return nil, err
	}
	if err := k.executePath(cacheCtx, amounts, path, to); err != nil {
		return nil, err
	}

	writeCache()

	if k.metrics != nil && amountIn.IsInt64() {
		k.metrics.SwapVolume.WithLabelValues(path[0]).Add(float64(amountIn.Int64()))
	}

	return amounts, nil
}

// SwapExactOut swaps as little input as the route requires for an exact
// output, failing if the necessary input exceeds maxAmountIn
func (k Keeper) SwapExactOut(
	ctx context.Context,
	trader sdk.AccAddress,
	amountOut, maxAmountIn math.Int,
	path []string,
	to sdk.AccAddress,
	deadline int64,
) ([]math.Int, error) {
	if err := k.assertDeadline(ctx, deadline); err != nil {
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

	firstPair := sdk.AccAddress(types.PairAddress(path[0], path[1]))
	if err := k.bankKeeper.SendCoins(cacheCtx, trader, firstPair, sdk.NewCoins(sdk.NewCoin(path[0], amounts[0]))); err != nil {
		return nil, err
	}
	if err := k.executePath(cacheCtx, amounts, path, to); err != nil {
		return nil, err
	}

	writeCache()
	return amounts, nil
}

// SwapExactInMeasured is the variant for assets whose delivered amount can
// differ from the sent amount. Each hop measures its actual input from the
// pair's balance, and only the recipient's final balance gain is checked
// against minAmountOut.
func (k Keeper) SwapExactInMeasured(
	ctx context.Context,
	trader sdk.AccAddress,
	amountIn, minAmountOut math.Int,
	path []string,
	to sdk.AccAddress,
	deadline int64,
) (math.Int, error) {
	if err := k.assertDeadline(ctx, deadline); err != nil {
		return math.Int{}, err
	}
	if err := k.checkPath(ctx, path); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	outAsset := path[len(path)-1]
	balanceBefore := k.bankKeeper.GetBalance(cacheCtx, to, outAsset).Amount

	firstPair := sdk.AccAddress(types.PairAddress(path[0], path[1]))
	if err := k.bankKeeper.SendCoins(cacheCtx, trader, firstPair, sdk.NewCoins(sdk.NewCoin(path[0], amountIn))); err != nil {
		return math.Int{}, err
	}

	for i := 0; i < len(path)-1; i++ {
		pair, found := k.GetPairByAssets(cacheCtx, path[i], path[i+1])
		if !found {
			return math.Int{}, types.ErrPairNotFound.Wrapf("no pair for %s/%s", path[i], path[i+1])
		}

		reserveIn, reserveOut, _ := pair.ReservesFor(path[i])
		balance := k.bankKeeper.GetBalance(cacheCtx, pair.AccAddress(), path[i]).Amount
		hopIn := balance.Sub(reserveIn)
		hopOut, err := types.GetAmountOut(hopIn, reserveIn, reserveOut)
		if err != nil {
			return math.Int{}, err
		}

		amountAOut, amountBOut := math.ZeroInt(), math.ZeroInt()
		if path[i+1] == pair.AssetA {
			amountAOut = hopOut
		} else {
			amountBOut = hopOut
		}

		recipient := to
		if i < len(path)-2 {
			recipient = sdk.AccAddress(types.PairAddress(path[i+1], path[i+2]))
		}
		if err := k.Swap(cacheCtx, pair.AccAddress(), amountAOut, amountBOut, recipient); err != nil {
			return math.Int{}, err
		}
	}

	received := k.bankKeeper.GetBalance(cacheCtx, to, outAsset).Amount.Sub(balanceBefore)
	if received.LT(minAmountOut) {
		return math.Int{}, types.ErrInsufficientOutputAmount.Wrapf("measured output %s below minimum %s", received, minAmountOut)
	}

	writeCache()
	return received, nil
}

// GetSpotPrice returns the instantaneous price of assetIn quoted in the
// opposite pair asset, before fees
func (k Keeper) GetSpotPrice(ctx context.Context, assetA, assetB, assetIn string) (math.LegacyDec, error) {
	pair, found := k.GetPairByAssets(ctx, assetA, assetB)
	if !found {
		return math.LegacyDec{}, types.ErrPairNotFound.Wrapf("no pair for %s/%s", assetA, assetB)
	}

	reserveIn, reserveOut, ok := pair.ReservesFor(assetIn)
	if !ok {
		return math.LegacyDec{}, types.ErrInvalidPath.Wrapf("asset %s not in pair %s/%s", assetIn, pair.AssetA, pair.AssetB)
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.LegacyDec{}, types.ErrInsufficientLiquidity.Wrap("pair has no reserves")
	}
	return math.LegacyNewDecFromInt(reserveOut).QuoInt(reserveIn), nil
}
