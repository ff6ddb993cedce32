package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/swaps-chain/swaps/testutil/keeper"
	"github.com/swaps-chain/swaps/x/swap/keeper"
	"github.com/swaps-chain/swaps/x/swap/types"
)

func TestDepositWithdrawRoundTrip(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)

	holder := types.TestAddr()
	bank.FundAccount(ctx, holder, sdk.NewCoins(sdk.NewInt64Coin("uswap", 1_000_000)))

	require.NoError(t, k.Deposit(ctx, holder, math.NewInt(1_000_000)))
	require.True(t, bank.GetBalance(ctx, holder, "uswap").Amount.IsZero())
	require.Equal(t, math.NewInt(1_000_000), bank.GetBalance(ctx, holder, "uwswap").Amount)
	require.Equal(t, math.NewInt(1_000_000), bank.GetBalance(ctx, types.WrapAddress(), "uswap").Amount)

	require.NoError(t, k.Withdraw(ctx, holder, math.NewInt(400_000)))
	require.Equal(t, math.NewInt(400_000), bank.GetBalance(ctx, holder, "uswap").Amount)
	require.Equal(t, math.NewInt(600_000), bank.GetBalance(ctx, holder, "uwswap").Amount)
	require.Equal(t, math.NewInt(600_000), bank.GetBalance(ctx, types.WrapAddress(), "uswap").Amount)
}

func TestDepositValidation(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)

	holder := types.TestAddr()
	err := k.Deposit(ctx, holder, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	// No native funds to escrow.
	err = k.Deposit(ctx, holder, math.NewInt(1000))
	require.Error(t, err)

	bank.FundAccount(ctx, holder, sdk.NewCoins(sdk.NewInt64Coin("uswap", 500)))
	err = k.Withdraw(ctx, holder, math.NewInt(500))
	require.Error(t, err)
}

// seedNativePool builds an asset/wrapped pool out of native funds so the wrap
// escrow backs the wrapped reserve.
func seedNativePool(t *testing.T, k *keeper.Keeper, bank *keepertest.BankMock, ctx sdk.Context, asset string, amountAsset, amountNative int64) sdk.AccAddress {
	t.Helper()

	provider := types.TestAddr()
	bank.FundAccount(ctx, provider, sdk.NewCoins(
		sdk.NewInt64Coin(asset, amountAsset),
		sdk.NewInt64Coin("uswap", amountNative),
	))
	_, _, _, err := k.AddLiquidityNative(ctx, provider, asset,
		math.NewInt(amountAsset), math.NewInt(amountNative), math.ZeroInt(), math.ZeroInt(),
		provider, deadline(ctx))
	require.NoError(t, err)
	return provider
}

func TestAddLiquidityNativeRefundsLeftover(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	seedNativePool(t, k, bank, ctx, "uatom", 5_000_000, 5_000_000)

	provider := types.TestAddr()
	bank.FundAccount(ctx, provider, sdk.NewCoins(
		sdk.NewInt64Coin("uatom", 1_000_000),
		sdk.NewInt64Coin("uswap", 2_000_000),
	))

	amountAsset, amountWrapped, shares, err := k.AddLiquidityNative(ctx, provider, "uatom",
		math.NewInt(1_000_000), math.NewInt(2_000_000), math.ZeroInt(), math.ZeroInt(),
		provider, deadline(ctx))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), amountAsset)
	require.Equal(t, math.NewInt(1_000_000), amountWrapped)
	require.Equal(t, math.NewInt(1_000_000), shares)

	// The unused native half came back unwrapped.
	require.Equal(t, math.NewInt(1_000_000), bank.GetBalance(ctx, provider, "uswap").Amount)
	require.True(t, bank.GetBalance(ctx, provider, "uwswap").Amount.IsZero())
	require.True(t, bank.GetBalance(ctx, provider, "uatom").Amount.IsZero())
}

func TestRemoveLiquidityNativePaysNativeFunds(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	provider := seedNativePool(t, k, bank, ctx, "uatom", 5_000_000, 5_000_000)

	pair, found := k.GetPairByAssets(ctx, "uatom", "uwswap")
	require.True(t, found)
	shares := k.GetShares(ctx, pair.AccAddress(), provider)
	require.Equal(t, math.NewInt(4_999_000), shares)

	amountAsset, amountNative, err := k.RemoveLiquidityNative(ctx, provider, "uatom",
		shares, math.ZeroInt(), math.ZeroInt(), provider, deadline(ctx))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4_999_000), amountAsset)
	require.Equal(t, math.NewInt(4_999_000), amountNative)

	require.Equal(t, amountAsset, bank.GetBalance(ctx, provider, "uatom").Amount)
	require.Equal(t, amountNative, bank.GetBalance(ctx, provider, "uswap").Amount)
	require.True(t, bank.GetBalance(ctx, provider, "uwswap").Amount.IsZero())
}

func TestSwapExactNativeIn(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	seedNativePool(t, k, bank, ctx, "uatom", 5_000_000, 5_000_000)

	trader := types.TestAddr()
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewInt64Coin("uswap", 1_000_000)))

	amounts, err := k.SwapExactNativeIn(ctx, trader, math.NewInt(1_000_000), math.ZeroInt(),
		[]string{"uwswap", "uatom"}, trader, deadline(ctx))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(831_248), amounts[len(amounts)-1])

	require.Equal(t, math.NewInt(831_248), bank.GetBalance(ctx, trader, "uatom").Amount)
	require.True(t, bank.GetBalance(ctx, trader, "uswap").Amount.IsZero())
	require.True(t, bank.GetBalance(ctx, trader, "uwswap").Amount.IsZero())
}

func TestSwapExactInForNative(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	seedNativePool(t, k, bank, ctx, "uatom", 5_000_000, 5_000_000)

	trader := types.TestAddr()
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1_000_000)))

	amounts, err := k.SwapExactInForNative(ctx, trader, math.NewInt(1_000_000), math.ZeroInt(),
		[]string{"uatom", "uwswap"}, trader, deadline(ctx))
	require.NoError(t, err)

	out := amounts[len(amounts)-1]
	require.Equal(t, math.NewInt(831_248), out)
	require.Equal(t, out, bank.GetBalance(ctx, trader, "uswap").Amount)
	require.True(t, bank.GetBalance(ctx, trader, "uwswap").Amount.IsZero())
}

func TestSwapNativeExactOutWrapsOnlyWhatItNeeds(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	seedNativePool(t, k, bank, ctx, "uatom", 5_000_000, 5_000_000)

	trader := types.TestAddr()
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewInt64Coin("uswap", 1_000_000)))

	amounts, err := k.SwapNativeExactOut(ctx, trader, math.NewInt(500_000), math.NewInt(1_000_000),
		[]string{"uwswap", "uatom"}, trader, deadline(ctx))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(557_228), amounts[0])

	require.Equal(t, math.NewInt(500_000), bank.GetBalance(ctx, trader, "uatom").Amount)
	// The rest of the budget was never wrapped.
	require.Equal(t, math.NewInt(1_000_000-557_228), bank.GetBalance(ctx, trader, "uswap").Amount)
	require.True(t, bank.GetBalance(ctx, trader, "uwswap").Amount.IsZero())
}

func TestSwapExactOutForNative(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	seedNativePool(t, k, bank, ctx, "uatom", 5_000_000, 5_000_000)

	trader := types.TestAddr()
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewInt64Coin("uatom", 600_000)))

	amounts, err := k.SwapExactOutForNative(ctx, trader, math.NewInt(500_000), math.NewInt(600_000),
		[]string{"uatom", "uwswap"}, trader, deadline(ctx))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(557_228), amounts[0])

	require.Equal(t, math.NewInt(500_000), bank.GetBalance(ctx, trader, "uswap").Amount)
	require.Equal(t, math.NewInt(600_000-557_228), bank.GetBalance(ctx, trader, "uatom").Amount)
}

func TestNativeVariantsRequireWrappedEndpoint(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	seedPool(t, k, bank, ctx, "uatom", "uusdc", 5_000_000, 5_000_000)

	trader := types.TestAddr()

	_, err := k.SwapExactNativeIn(ctx, trader, math.NewInt(1000), math.ZeroInt(),
		[]string{"uatom", "uusdc"}, trader, deadline(ctx))
	require.ErrorIs(t, err, types.ErrInvalidPath)

	_, err = k.SwapExactInForNative(ctx, trader, math.NewInt(1000), math.ZeroInt(),
		[]string{"uatom", "uusdc"}, trader, deadline(ctx))
	require.ErrorIs(t, err, types.ErrInvalidPath)

	_, err = k.SwapNativeExactOut(ctx, trader, math.NewInt(1000), math.NewInt(2000),
		[]string{"uatom", "uwswap"}, trader, deadline(ctx))
	require.ErrorIs(t, err, types.ErrInvalidPath)

	_, err = k.SwapExactOutForNative(ctx, trader, math.NewInt(1000), math.NewInt(2000),
		[]string{"uwswap", "uatom"}, trader, deadline(ctx))
	require.ErrorIs(t, err, types.ErrInvalidPath)
}
