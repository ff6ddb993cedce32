package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// Swap fee: 0.3%, applied on the input side as 997/1000. The invariant check
// in Pair.Swap uses the same constants scaled by FeeDenominator.
const (
	FeeNumerator   = 997
	FeeDenominator = 1000
	FeePerMille    = FeeDenominator - FeeNumerator
)

// Quote returns the amount of asset B matching amountA at the current
// reserve ratio: amountA * reserveB / reserveA, floor division.
func Quote(amountA, reserveA, reserveB math.Int) (math.Int, error) {
	if amountA.IsNil() || !amountA.IsPositive() {
		return math.ZeroInt(), ErrInsufficientAmount.Wrap("quote amount must be positive")
	}
	if !reserveA.IsPositive() || !reserveB.IsPositive() {
		return math.ZeroInt(), ErrInsufficientLiquidity.Wrap("quote requires positive reserves")
	}
	out := new(big.Int).Mul(amountA.BigInt(), reserveB.BigInt())
	out.Quo(out, reserveA.BigInt())
	return math.NewIntFromBigInt(out), nil
}

// GetAmountOut returns the maximum output for an exact input:
//
//	amountOut = amountIn*997*reserveOut / (reserveIn*1000 + amountIn*997)
func GetAmountOut(amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), ErrInsufficientInputAmount.Wrap("input amount must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.ZeroInt(), ErrInsufficientLiquidity.Wrap("reserves must be positive")
	}
	amountInWithFee := new(big.Int).Mul(amountIn.BigInt(), big.NewInt(FeeNumerator))
	numerator := new(big.Int).Mul(amountInWithFee, reserveOut.BigInt())
	denominator := new(big.Int).Mul(reserveIn.BigInt(), big.NewInt(FeeDenominator))
	denominator.Add(denominator, amountInWithFee)
	return math.NewIntFromBigInt(numerator.Quo(numerator, denominator)), nil
}

// GetAmountIn returns the minimum input for an exact output, the algebraic
// inverse of GetAmountOut rounded up by one unit:
//
//	amountIn = reserveIn*amountOut*1000 / ((reserveOut-amountOut)*997) + 1
func GetAmountIn(amountOut, reserveIn, reserveOut math.Int) (math.Int, error) {
	if amountOut.IsNil() || !amountOut.IsPositive() {
		return math.ZeroInt(), ErrInsufficientOutputAmount.Wrap("output amount must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.ZeroInt(), ErrInsufficientLiquidity.Wrap("reserves must be positive")
	}
	if amountOut.GTE(reserveOut) {
		return math.ZeroInt(), ErrInsufficientLiquidity.Wrapf("output %s exceeds reserve %s", amountOut, reserveOut)
	}
	numerator := new(big.Int).Mul(reserveIn.BigInt(), amountOut.BigInt())
	numerator.Mul(numerator, big.NewInt(FeeDenominator))
	denominator := new(big.Int).Sub(reserveOut.BigInt(), amountOut.BigInt())
	denominator.Mul(denominator, big.NewInt(FeeNumerator))
	numerator.Quo(numerator, denominator)
	numerator.Add(numerator, big.NewInt(1))
	return math.NewIntFromBigInt(numerator), nil
}

// OptimalSwapIn sizes the swap leg of a single-sided deposit. It solves, on
// the constant-product curve with the 997/1000 fee, for the input portion s
// of amountIn such that the unswapped remainder amountIn-s matches the
// pair's post-swap reserve ratio against the swap output. Closed form:
//
//	s = (sqrt(r*(amountIn*3988000 + r*3988009)) - r*1997) / 1994
//
// where r is the input-side reserve. A fixed 50% split would leave dust
// growing with trade size; this keeps the leftover within rounding.
func OptimalSwapIn(amountIn, reserveIn math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), ErrInsufficientInputAmount.Wrap("input amount must be positive")
	}
	if !reserveIn.IsPositive() {
		return math.ZeroInt(), ErrInsufficientLiquidity.Wrap("input reserve must be positive")
	}
	r := reserveIn.BigInt()
	radicand := new(big.Int).Mul(amountIn.BigInt(), big.NewInt(3988000))
	radicand.Add(radicand, new(big.Int).Mul(r, big.NewInt(3988009)))
	radicand.Mul(radicand, r)
	root := new(big.Int).Sqrt(radicand)
	root.Sub(root, new(big.Int).Mul(r, big.NewInt(1997)))
	root.Quo(root, big.NewInt(1994))
	if root.Sign() <= 0 {
		return math.ZeroInt(), ErrInsufficientInputAmount.Wrap("input too small to split")
	}
	swapIn := math.NewIntFromBigInt(root)
	if swapIn.GT(amountIn) {
		swapIn = amountIn
	}
	return swapIn, nil
}

// IntSqrt is the floor square root of a non-negative integer.
func IntSqrt(v math.Int) math.Int {
	return math.NewIntFromBigInt(new(big.Int).Sqrt(v.BigInt()))
}
