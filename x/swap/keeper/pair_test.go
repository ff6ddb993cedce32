package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/swaps-chain/swaps/testutil/keeper"
	"github.com/swaps-chain/swaps/x/swap/keeper"
	"github.com/swaps-chain/swaps/x/swap/types"
)

// seedPair creates an uatom/uusdc pool, deposits the given amounts directly
// into the pair account and mints the first liquidity to a fresh provider.
func seedPair(t *testing.T, k *keeper.Keeper, bank *keepertest.BankMock, ctx sdk.Context, amountA, amountB int64) (types.Pair, sdk.AccAddress) {
	t.Helper()

	pair, err := k.CreatePair(ctx, "uatom", "uusdc")
	require.NoError(t, err)

	lp := types.TestAddr()
	bank.FundAccount(ctx, pair.AccAddress(), sdk.NewCoins(
		sdk.NewInt64Coin("uatom", amountA),
		sdk.NewInt64Coin("uusdc", amountB),
	))
	_, err = k.Mint(ctx, pair.AccAddress(), lp)
	require.NoError(t, err)

	pair, found := k.GetPair(ctx, pair.AccAddress())
	require.True(t, found)
	return pair, lp
}

func TestMintFirstDepositLocksMinimumLiquidity(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)

	pair, err := k.CreatePair(ctx, "uatom", "uusdc")
	require.NoError(t, err)

	lp := types.TestAddr()
	bank.FundAccount(ctx, pair.AccAddress(), sdk.NewCoins(
		sdk.NewInt64Coin("uatom", 5_000_000),
		sdk.NewInt64Coin("uusdc", 5_000_000),
	))

	shares, err := k.Mint(ctx, pair.AccAddress(), lp)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4_999_000), shares)

	// sqrt(5e6 * 5e6) = 5e6, of which MinimumLiquidity is locked forever.
	pair, _ = k.GetPair(ctx, pair.AccAddress())
	require.Equal(t, math.NewInt(5_000_000), pair.TotalShares)
	require.Equal(t, math.NewInt(4_999_000), k.GetShares(ctx, pair.AccAddress(), lp))
	require.Equal(t, math.NewInt(types.MinimumLiquidity), k.GetShares(ctx, pair.AccAddress(), types.ShareLockAddress()))

	require.Equal(t, math.NewInt(5_000_000), pair.ReserveA)
	require.Equal(t, math.NewInt(5_000_000), pair.ReserveB)
}

func TestMintRejectsTinyFirstDeposit(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)

	pair, err := k.CreatePair(ctx, "uatom", "uusdc")
	require.NoError(t, err)

	// sqrt(1000*1000) = 1000 = MinimumLiquidity, so nothing is left to mint.
	bank.FundAccount(ctx, pair.AccAddress(), sdk.NewCoins(
		sdk.NewInt64Coin("uatom", 1000),
		sdk.NewInt64Coin("uusdc", 1000),
	))
	_, err = k.Mint(ctx, pair.AccAddress(), types.TestAddr())
	require.ErrorIs(t, err, types.ErrInsufficientLiquidityMinted)
}

func TestMintProRataFollowUp(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	pair, _ := seedPair(t, k, bank, ctx, 5_000_000, 5_000_000)

	second := types.TestAddr()
	bank.FundAccount(ctx, pair.AccAddress(), sdk.NewCoins(
		sdk.NewInt64Coin("uatom", 1_000_000),
		sdk.NewInt64Coin("uusdc", 1_000_000),
	))
	shares, err := k.Mint(ctx, pair.AccAddress(), second)
	require.NoError(t, err)

	// 20% of the pool: 1e6 * 5e6 / 5e6 shares.
	require.Equal(t, math.NewInt(1_000_000), shares)
	require.Equal(t, shares, k.GetShares(ctx, pair.AccAddress(), second))

	pair, _ = k.GetPair(ctx, pair.AccAddress())
	require.Equal(t, math.NewInt(6_000_000), pair.TotalShares)
}

func TestMintLopsidedDepositMintsTheWorseSide(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	pair, _ := seedPair(t, k, bank, ctx, 5_000_000, 5_000_000)

	second := types.TestAddr()
	bank.FundAccount(ctx, pair.AccAddress(), sdk.NewCoins(
		sdk.NewInt64Coin("uatom", 1_000_000),
		sdk.NewInt64Coin("uusdc", 400_000),
	))
	shares, err := k.Mint(ctx, pair.AccAddress(), second)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(400_000), shares)
}

func TestBurnRedeemsProRata(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	pair, lp := seedPair(t, k, bank, ctx, 5_000_000, 5_000_000)

	shares := k.GetShares(ctx, pair.AccAddress(), lp)
	require.NoError(t, k.SendShares(ctx, pair.AccAddress(), lp, pair.AccAddress(), shares))

	amountA, amountB, err := k.Burn(ctx, pair.AccAddress(), lp)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4_999_000), amountA)
	require.Equal(t, math.NewInt(4_999_000), amountB)

	require.Equal(t, math.NewInt(4_999_000), bank.GetBalance(ctx, lp, "uatom").Amount)
	require.Equal(t, math.NewInt(4_999_000), bank.GetBalance(ctx, lp, "uusdc").Amount)

	// Only the locked minimum remains.
	pair, _ = k.GetPair(ctx, pair.AccAddress())
	require.Equal(t, math.NewInt(types.MinimumLiquidity), pair.TotalShares)
	require.Equal(t, math.NewInt(types.MinimumLiquidity), pair.ReserveA)
	require.Equal(t, math.NewInt(types.MinimumLiquidity), pair.ReserveB)
}

func TestBurnWithoutDepositedShares(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	pair, lp := seedPair(t, k, bank, ctx, 5_000_000, 5_000_000)

	_, _, err := k.Burn(ctx, pair.AccAddress(), lp)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidityBurned)
}

func TestSwapPaysQuotedOutput(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	pair, _ := seedPair(t, k, bank, ctx, 5_000_000, 5_000_000)

	trader := types.TestAddr()
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1_000_000)))
	require.NoError(t, bank.SendCoins(ctx, trader, pair.AccAddress(),
		sdk.NewCoins(sdk.NewInt64Coin("uatom", 1_000_000))))

	out, err := types.GetAmountOut(math.NewInt(1_000_000), pair.ReserveA, pair.ReserveB)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(831_248), out)

	require.NoError(t, k.Swap(ctx, pair.AccAddress(), math.ZeroInt(), out, trader))
	require.Equal(t, out, bank.GetBalance(ctx, trader, "uusdc").Amount)

	pair, _ = k.GetPair(ctx, pair.AccAddress())
	require.Equal(t, math.NewInt(6_000_000), pair.ReserveA)
	require.Equal(t, math.NewInt(4_168_752), pair.ReserveB)
}

func TestSwapRejectsExcessOutput(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	pair, _ := seedPair(t, k, bank, ctx, 5_000_000, 5_000_000)

	trader := types.TestAddr()
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1_000_000)))
	require.NoError(t, bank.SendCoins(ctx, trader, pair.AccAddress(),
		sdk.NewCoins(sdk.NewInt64Coin("uatom", 1_000_000))))

	// One unit more than the fee-adjusted quote breaks the invariant.
	err := k.Swap(ctx, pair.AccAddress(), math.ZeroInt(), math.NewInt(831_249), trader)
	require.ErrorIs(t, err, types.ErrInvariantViolation)
}

func TestSwapRequiresInput(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	pair, _ := seedPair(t, k, bank, ctx, 5_000_000, 5_000_000)

	err := k.Swap(ctx, pair.AccAddress(), math.ZeroInt(), math.NewInt(1000), types.TestAddr())
	require.ErrorIs(t, err, types.ErrInsufficientInputAmount)
}

func TestSwapValidation(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	pair, _ := seedPair(t, k, bank, ctx, 5_000_000, 5_000_000)

	err := k.Swap(ctx, pair.AccAddress(), math.ZeroInt(), math.ZeroInt(), types.TestAddr())
	require.ErrorIs(t, err, types.ErrInsufficientOutputAmount)

	err = k.Swap(ctx, pair.AccAddress(), math.NewInt(5_000_000), math.ZeroInt(), types.TestAddr())
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	err = k.Swap(ctx, pair.AccAddress(), math.ZeroInt(), math.NewInt(1000), pair.AccAddress())
	require.ErrorIs(t, err, types.ErrInvalidRecipient)
}

func TestSkimSweepsOnlyExcess(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	pair, _ := seedPair(t, k, bank, ctx, 5_000_000, 5_000_000)

	bank.FundAccount(ctx, pair.AccAddress(), sdk.NewCoins(sdk.NewInt64Coin("uatom", 500)))

	sweep := types.TestAddr()
	require.NoError(t, k.Skim(ctx, pair.AccAddress(), sweep))
	require.Equal(t, math.NewInt(500), bank.GetBalance(ctx, sweep, "uatom").Amount)
	require.True(t, bank.GetBalance(ctx, sweep, "uusdc").Amount.IsZero())

	// Reserves are untouched and balances match them again.
	pair, _ = k.GetPair(ctx, pair.AccAddress())
	require.Equal(t, math.NewInt(5_000_000), pair.ReserveA)
	require.Equal(t, pair.ReserveA, bank.GetBalance(ctx, pair.AccAddress(), "uatom").Amount)
}

func TestSyncAdoptsBalances(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	pair, _ := seedPair(t, k, bank, ctx, 5_000_000, 5_000_000)

	bank.FundAccount(ctx, pair.AccAddress(), sdk.NewCoins(sdk.NewInt64Coin("uusdc", 777)))
	require.NoError(t, k.Sync(ctx, pair.AccAddress()))

	pair, _ = k.GetPair(ctx, pair.AccAddress())
	require.Equal(t, math.NewInt(5_000_000), pair.ReserveA)
	require.Equal(t, math.NewInt(5_000_777), pair.ReserveB)
}

func TestPriceAccumulatorsAdvanceOncePerBlock(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	pair, _ := seedPair(t, k, bank, ctx, 5_000_000, 5_000_000)

	require.True(t, pair.PriceACumulative.IsZero())

	// Ten seconds at price 1 on both sides.
	later := ctx.WithBlockTime(keepertest.GenesisTime.Add(10 * time.Second))
	require.NoError(t, k.Sync(later, pair.AccAddress()))

	pair, _ = k.GetPair(ctx, pair.AccAddress())
	require.Equal(t, math.LegacyNewDec(10), pair.PriceACumulative)
	require.Equal(t, math.LegacyNewDec(10), pair.PriceBCumulative)
	require.Equal(t, keepertest.GenesisTime.Add(10*time.Second).Unix(), pair.LastSettledAt)

	// A second settlement in the same block adds nothing.
	require.NoError(t, k.Sync(later, pair.AccAddress()))
	pair, _ = k.GetPair(ctx, pair.AccAddress())
	require.Equal(t, math.LegacyNewDec(10), pair.PriceACumulative)
}

func TestProtocolFeeMintsOneSixthOfGrowth(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)

	setter := types.TestAddr()
	feeTo := types.TestAddr()
	k.SetFeeConfig(ctx, types.FeeConfig{FeeTo: feeTo.String(), FeeToSetter: setter.String()})

	pair, _ := seedPair(t, k, bank, ctx, 5_000_000, 5_000_000)
	pair, _ = k.GetPair(ctx, pair.AccAddress())
	require.Equal(t, math.NewInt(5_000_000).Mul(math.NewInt(5_000_000)), pair.KLast)

	// Grow k through a swap, then trigger fee collection with a mint.
	trader := types.TestAddr()
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1_000_000)))
	require.NoError(t, bank.SendCoins(ctx, trader, pair.AccAddress(),
		sdk.NewCoins(sdk.NewInt64Coin("uatom", 1_000_000))))
	require.NoError(t, k.Swap(ctx, pair.AccAddress(), math.ZeroInt(), math.NewInt(831_248), trader))

	second := types.TestAddr()
	bank.FundAccount(ctx, pair.AccAddress(), sdk.NewCoins(
		sdk.NewInt64Coin("uatom", 600_000),
		sdk.NewInt64Coin("uusdc", 416_876),
	))
	shares, err := k.Mint(ctx, pair.AccAddress(), second)
	require.NoError(t, err)
	require.True(t, shares.IsPositive())

	// T*(rootK - rootKLast) / (5*rootK + rootKLast) on reserves 6e6/4168752.
	require.Equal(t, math.NewInt(208), k.GetShares(ctx, pair.AccAddress(), feeTo))

	pair, _ = k.GetPair(ctx, pair.AccAddress())
	require.Equal(t, pair.ReserveA.Mul(pair.ReserveB), pair.KLast)
}

func TestProtocolFeeOffZeroesKLast(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)

	setter := types.TestAddr()
	feeTo := types.TestAddr()
	k.SetFeeConfig(ctx, types.FeeConfig{FeeTo: feeTo.String(), FeeToSetter: setter.String()})

	pair, _ := seedPair(t, k, bank, ctx, 5_000_000, 5_000_000)
	pair, _ = k.GetPair(ctx, pair.AccAddress())
	require.False(t, pair.KLast.IsZero())

	require.NoError(t, k.SetFeeTo(ctx, setter, ""))

	bank.FundAccount(ctx, pair.AccAddress(), sdk.NewCoins(
		sdk.NewInt64Coin("uatom", 1_000_000),
		sdk.NewInt64Coin("uusdc", 1_000_000),
	))
	_, err := k.Mint(ctx, pair.AccAddress(), types.TestAddr())
	require.NoError(t, err)

	pair, _ = k.GetPair(ctx, pair.AccAddress())
	require.True(t, pair.KLast.IsZero())
	require.True(t, k.GetShares(ctx, pair.AccAddress(), feeTo).IsZero())
}
