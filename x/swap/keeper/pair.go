package keeper

import (
	"context"
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swaps-chain/swaps/x/swap/types"
)

// pairBalances returns the pair account's actual bank balances in both assets
func (k Keeper) pairBalances(ctx context.Context, pair types.Pair) (math.Int, math.Int) {
	pairAddr := pair.AccAddress()
	balA := k.bankKeeper.GetBalance(ctx, pairAddr, pair.AssetA).Amount
	balB := k.bankKeeper.GetBalance(ctx, pairAddr, pair.AssetB).Amount
	return balA, balB
}

// settle folds the pair's actual balances into its recorded reserves. On the
// first call in a block it also advances the cumulative price accumulators
// using the pre-settlement reserves, weighted by elapsed seconds.
func (k Keeper) settle(ctx context.Context, pair *types.Pair, balanceA, balanceB math.Int) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	elapsed := now - pair.LastSettledAt
	if elapsed > 0 && pair.ReserveA.IsPositive() && pair.ReserveB.IsPositive() {
		dt := math.LegacyNewDec(elapsed)
		priceA := math.LegacyNewDecFromInt(pair.ReserveB).QuoInt(pair.ReserveA)
		priceB := math.LegacyNewDecFromInt(pair.ReserveA).QuoInt(pair.ReserveB)
		pair.PriceACumulative = pair.PriceACumulative.Add(priceA.Mul(dt))
		pair.PriceBCumulative = pair.PriceBCumulative.Add(priceB.Mul(dt))
	}
	if elapsed > 0 {
		pair.LastSettledAt = now
	}

	pair.ReserveA = balanceA
	pair.ReserveB = balanceB
}

// mintProtocolFee mints shares to the protocol fee recipient equal to 1/6 of
// the growth in sqrt(k) since the last liquidity event, diluting liquidity
// providers by one sixth of accrued swap fees. Returns whether the fee is
// currently enabled so callers know to refresh KLast.
func (k Keeper) mintProtocolFee(ctx context.Context, pair *types.Pair) (bool, error) {
	cfg := k.GetFeeConfig(ctx)
	if !cfg.FeeEnabled() {
		if !pair.KLast.IsZero() {
			pair.KLast = math.ZeroInt()
		}
		return false, nil
	}

	if pair.KLast.IsZero() {
		return true, nil
	}

	rootK := types.IntSqrt(pair.ReserveA.Mul(pair.ReserveB))
	rootKLast := types.IntSqrt(pair.KLast)
	if rootK.LTE(rootKLast) {
		return true, nil
	}

	numerator := pair.TotalShares.Mul(rootK.Sub(rootKLast))
	denominator := rootK.MulRaw(5).Add(rootKLast)
	feeShares := numerator.Quo(denominator)
	if !feeShares.IsPositive() {
		return true, nil
	}

	feeTo, err := sdk.AccAddressFromBech32(cfg.FeeTo)
	if err != nil {
		return true, types.ErrInvalidAddress.Wrapf("fee recipient %q: %s", cfg.FeeTo, err)
	}
	k.mintShares(ctx, pair, feeTo, feeShares)
	return true, nil
}

// Mint turns assets already transferred to the pair account into liquidity
// shares for to. The deposit is measured as the difference between actual
// balances and recorded reserves. The very first deposit permanently locks
// MinimumLiquidity shares so the pool can never be fully drained.
func (k Keeper) Mint(ctx context.Context, pairAddr, to sdk.AccAddress) (math.Int, error) {
	pair, found := k.GetPair(ctx, pairAddr)
	if !found {
		return math.Int{}, types.ErrPairNotFound.Wrapf("no pair at %s", pairAddr)
	}

	balanceA, balanceB := k.pairBalances(ctx, pair)
	amountA := balanceA.Sub(pair.ReserveA)
	amountB := balanceB.Sub(pair.ReserveB)

	feeOn, err := k.mintProtocolFee(ctx, &pair)
	if err != nil {
		return math.Int{}, err
	}

	var shares math.Int
	if pair.TotalShares.IsZero() {
		if !amountA.IsPositive() || !amountB.IsPositive() {
			return math.Int{}, types.ErrInsufficientLiquidityMinted.Wrap("initial deposit requires both assets")
		}
		shares = types.IntSqrt(amountA.Mul(amountB)).SubRaw(types.MinimumLiquidity)
		if !shares.IsPositive() {
			return math.Int{}, types.ErrInsufficientLiquidityMinted.Wrap("initial deposit below minimum liquidity")
		}
		// Permanently locked: no key controls the zero address.
		k.mintShares(ctx, &pair, types.ShareLockAddress(), math.NewInt(types.MinimumLiquidity))
	} else {
		if !amountA.IsPositive() && !amountB.IsPositive() {
			return math.Int{}, types.ErrInsufficientLiquidityMinted.Wrap("no deposit detected")
		}
		sharesA := amountA.Mul(pair.TotalShares).Quo(pair.ReserveA)
		sharesB := amountB.Mul(pair.TotalShares).Quo(pair.ReserveB)
		shares = math.MinInt(sharesA, sharesB)
		if !shares.IsPositive() {
			return math.Int{}, types.ErrInsufficientLiquidityMinted.Wrap("deposit too small for current reserves")
		}
	}

	k.mintShares(ctx, &pair, to, shares)
	k.settle(ctx, &pair, balanceA, balanceB)
	if feeOn {
		pair.KLast = pair.ReserveA.Mul(pair.ReserveB)
	}
	k.SetPair(ctx, pair)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityAdded,
			sdk.NewAttribute(types.AttributeKeyPair, pair.Address),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.LiquidityAdded.WithLabelValues(pair.AssetA, pair.AssetB).Inc()
	}

	return shares, nil
}

// Burn redeems the shares held by the pair account itself for a pro-rata
// slice of both reserves, paid to to. Callers transfer shares to the pair
// first, mirroring the deposit flow of Mint.
func (k Keeper) Burn(ctx context.Context, pairAddr, to sdk.AccAddress) (math.Int, math.Int, error) {
	pair, found := k.GetPair(ctx, pairAddr)
	if !found {
		return math.Int{}, math.Int{}, types.ErrPairNotFound.Wrapf("no pair at %s", pairAddr)
	}

	feeOn, err := k.mintProtocolFee(ctx, &pair)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	balanceA, balanceB := k.pairBalances(ctx, pair)
	shares := k.GetShares(ctx, pairAddr, pairAddr)

	if !shares.IsPositive() || pair.TotalShares.IsZero() {
		return math.Int{}, math.Int{}, types.ErrInsufficientLiquidityBurned.Wrap("no shares deposited for burning")
	}

	amountA := shares.Mul(balanceA).Quo(pair.TotalShares)
	amountB := shares.Mul(balanceB).Quo(pair.TotalShares)
	if !amountA.IsPositive() || !amountB.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInsufficientLiquidityBurned.Wrap("shares redeem to zero on at least one side")
	}

	if err := k.burnShares(ctx, &pair, pairAddr, shares); err != nil {
		return math.Int{}, math.Int{}, err
	}

	payout := sdk.NewCoins(
		sdk.NewCoin(pair.AssetA, amountA),
		sdk.NewCoin(pair.AssetB, amountB),
	)
	if err := k.bankKeeper.SendCoins(ctx, pairAddr, to, payout); err != nil {
		return math.Int{}, math.Int{}, err
	}

	balanceA, balanceB = k.pairBalances(ctx, pair)
	k.settle(ctx, &pair, balanceA, balanceB)
	if feeOn {
		pair.KLast = pair.ReserveA.Mul(pair.ReserveB)
	}
	k.SetPair(ctx, pair)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeyPair, pair.Address),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.LiquidityRemoved.WithLabelValues(pair.AssetA, pair.AssetB).Inc()
	}

	return amountA, amountB, nil
}

// Swap pays the requested outputs optimistically and then verifies the
// constant-product invariant against actual balances, charging the 0.3% fee
// on whatever input the caller delivered beforehand. Inputs are measured,
// never pulled: the caller must have transferred them in advance.
func (k Keeper) Swap(ctx context.Context, pairAddr sdk.AccAddress, amountAOut, amountBOut math.Int, to sdk.AccAddress) error {
	if !amountAOut.IsPositive() && !amountBOut.IsPositive() {
		return types.ErrInsufficientOutputAmount.Wrap("swap requires at least one positive output")
	}

	pair, found := k.GetPair(ctx, pairAddr)
	if !found {
		return types.ErrPairNotFound.Wrapf("no pair at %s", pairAddr)
	}
	if amountAOut.GTE(pair.ReserveA) || amountBOut.GTE(pair.ReserveB) {
		return types.ErrInsufficientLiquidity.Wrap("output exceeds reserves")
	}
	if to.Equals(pairAddr) {
		return types.ErrInvalidRecipient.Wrap("pair cannot pay itself")
	}

	var payout sdk.Coins
	if amountAOut.IsPositive() {
		payout = payout.Add(sdk.NewCoin(pair.AssetA, amountAOut))
	}
	if amountBOut.IsPositive() {
		payout = payout.Add(sdk.NewCoin(pair.AssetB, amountBOut))
	}
	if err := k.bankKeeper.SendCoins(ctx, pairAddr, to, payout); err != nil {
		return err
	}

	balanceA, balanceB := k.pairBalances(ctx, pair)

	amountAIn := math.ZeroInt()
	if balanceA.GT(pair.ReserveA.Sub(amountAOut)) {
		amountAIn = balanceA.Sub(pair.ReserveA.Sub(amountAOut))
	}
	amountBIn := math.ZeroInt()
	if balanceB.GT(pair.ReserveB.Sub(amountBOut)) {
		amountBIn = balanceB.Sub(pair.ReserveB.Sub(amountBOut))
	}
	if !amountAIn.IsPositive() && !amountBIn.IsPositive() {
		return types.ErrInsufficientInputAmount.Wrap("no input delivered to the pair")
	}

	// k check on fee-adjusted balances: (bal*1000 - in*3) per side, product
	// compared against reserves*1000^2. Integer-exact, no rounding.
	adjustedA := new(big.Int).Mul(balanceA.BigInt(), big.NewInt(types.FeeDenominator))
	adjustedA.Sub(adjustedA, new(big.Int).Mul(amountAIn.BigInt(), big.NewInt(types.FeePerMille)))
	adjustedB := new(big.Int).Mul(balanceB.BigInt(), big.NewInt(types.FeeDenominator))
	adjustedB.Sub(adjustedB, new(big.Int).Mul(amountBIn.BigInt(), big.NewInt(types.FeePerMille)))

	left := new(big.Int).Mul(adjustedA, adjustedB)
	right := new(big.Int).Mul(pair.ReserveA.BigInt(), pair.ReserveB.BigInt())
	right.Mul(right, big.NewInt(types.FeeDenominator*types.FeeDenominator))
	if left.Cmp(right) < 0 {
		return types.ErrInvariantViolation.Wrap("constant product decreased net of fees")
	}

	k.settle(ctx, &pair, balanceA, balanceB)
	k.SetPair(ctx, pair)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPair, pair.Address),
			sdk.NewAttribute(types.AttributeKeyAmountAIn, amountAIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountBIn, amountBIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountAOut, amountAOut.String()),
			sdk.NewAttribute(types.AttributeKeyAmountBOut, amountBOut.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.SwapsTotal.WithLabelValues(pair.AssetA, pair.AssetB).Inc()
	}

	return nil
}

// Skim transfers any balance above the recorded reserves to to, restoring
// balance == reserve without touching the reserves themselves.
func (k Keeper) Skim(ctx context.Context, pairAddr, to sdk.AccAddress) error {
	pair, found := k.GetPair(ctx, pairAddr)
	if !found {
		return types.ErrPairNotFound.Wrapf("no pair at %s", pairAddr)
	}

	balanceA, balanceB := k.pairBalances(ctx, pair)
	excessA := balanceA.Sub(pair.ReserveA)
	excessB := balanceB.Sub(pair.ReserveB)

	var excess sdk.Coins
	if excessA.IsPositive() {
		excess = excess.Add(sdk.NewCoin(pair.AssetA, excessA))
	}
	if excessB.IsPositive() {
		excess = excess.Add(sdk.NewCoin(pair.AssetB, excessB))
	}
	if excess.IsZero() {
		return nil
	}

	if err := k.bankKeeper.SendCoins(ctx, pairAddr, to, excess); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSkim,
			sdk.NewAttribute(types.AttributeKeyPair, pair.Address),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
		),
	)
	return nil
}

// Sync force-updates the recorded reserves to the actual balances
func (k Keeper) Sync(ctx context.Context, pairAddr sdk.AccAddress) error {
	pair, found := k.GetPair(ctx, pairAddr)
	if !found {
		return types.ErrPairNotFound.Wrapf("no pair at %s", pairAddr)
	}

	balanceA, balanceB := k.pairBalances(ctx, pair)
	k.settle(ctx, &pair, balanceA, balanceB)
	k.SetPair(ctx, pair)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSync,
			sdk.NewAttribute(types.AttributeKeyPair, pair.Address),
			sdk.NewAttribute(types.AttributeKeyAmountA, balanceA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, balanceB.String()),
		),
	)
	return nil
}
