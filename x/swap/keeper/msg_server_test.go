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

func TestMsgServerCreatePair(t *testing.T) {
	k, _, ctx := keepertest.SwapKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	creator := types.TestAddr()
	resp, err := ms.CreatePair(ctx, types.NewMsgCreatePair(creator.String(), "uatom", "uusdc"))
	require.NoError(t, err)
	require.Equal(t, types.PairAddress("uatom", "uusdc").String(), resp.Pair)
	require.EqualValues(t, 1, resp.PairCount)

	_, err = ms.CreatePair(ctx, types.NewMsgCreatePair(creator.String(), "uusdc", "uatom"))
	require.ErrorIs(t, err, types.ErrPairExists)
}

func TestMsgServerAddLiquidityDefaultsRecipient(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	provider := types.TestAddr()
	bank.FundAccount(ctx, provider, sdk.NewCoins(
		sdk.NewInt64Coin("uatom", 5_000_000),
		sdk.NewInt64Coin("uusdc", 5_000_000),
	))

	resp, err := ms.AddLiquidity(ctx, &types.MsgAddLiquidity{
		Provider: provider.String(),
		AssetA:   "uatom",
		AssetB:   "uusdc",
		DesiredA: math.NewInt(5_000_000),
		DesiredB: math.NewInt(5_000_000),
		MinA:     math.ZeroInt(),
		MinB:     math.ZeroInt(),
		Deadline: deadline(ctx),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4_999_000), resp.Shares)

	// Empty To credits the signer.
	pair, _ := k.GetPairByAssets(ctx, "uatom", "uusdc")
	require.Equal(t, resp.Shares, k.GetShares(ctx, pair.AccAddress(), provider))
}

func TestMsgServerAddLiquidityRoutesNativeDenom(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	provider := types.TestAddr()
	bank.FundAccount(ctx, provider, sdk.NewCoins(
		sdk.NewInt64Coin("uswap", 5_000_000),
		sdk.NewInt64Coin("uatom", 5_000_000),
	))

	resp, err := ms.AddLiquidity(ctx, &types.MsgAddLiquidity{
		Provider: provider.String(),
		AssetA:   "uswap",
		AssetB:   "uatom",
		DesiredA: math.NewInt(5_000_000),
		DesiredB: math.NewInt(5_000_000),
		MinA:     math.ZeroInt(),
		MinB:     math.ZeroInt(),
		Deadline: deadline(ctx),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(5_000_000), resp.AmountA)
	require.Equal(t, math.NewInt(5_000_000), resp.AmountB)

	// The native side landed in the wrapped pool.
	pair, found := k.GetPairByAssets(ctx, "uatom", "uwswap")
	require.True(t, found)
	require.Equal(t, math.NewInt(4_999_000), k.GetShares(ctx, pair.AccAddress(), provider))

	resp2, err := ms.RemoveLiquidity(ctx, &types.MsgRemoveLiquidity{
		Provider: provider.String(),
		AssetA:   "uswap",
		AssetB:   "uatom",
		Shares:   math.NewInt(4_999_000),
		MinA:     math.ZeroInt(),
		MinB:     math.ZeroInt(),
		Deadline: deadline(ctx),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4_999_000), resp2.AmountA)
	require.Equal(t, resp2.AmountA, bank.GetBalance(ctx, provider, "uswap").Amount)
}

func TestMsgServerSwapRewritesNativeEndpoints(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	seedNativePool(t, k, bank, ctx, "uatom", 5_000_000, 5_000_000)

	trader := types.TestAddr()
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewInt64Coin("uswap", 1_000_000)))

	resp, err := ms.SwapExactIn(ctx, &types.MsgSwapExactIn{
		Trader:       trader.String(),
		AmountIn:     math.NewInt(1_000_000),
		MinAmountOut: math.ZeroInt(),
		Path:         []string{"uswap", "uatom"},
		Deadline:     deadline(ctx),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(831_248), resp.Amounts[len(resp.Amounts)-1])
	require.Equal(t, math.NewInt(831_248), bank.GetBalance(ctx, trader, "uatom").Amount)

	// Swap part of it back into native funds.
	resp2, err := ms.SwapExactOut(ctx, &types.MsgSwapExactOut{
		Trader:      trader.String(),
		AmountOut:   math.NewInt(100_000),
		MaxAmountIn: math.NewInt(200_000),
		Path:        []string{"uatom", "uswap"},
		Deadline:    deadline(ctx),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000), bank.GetBalance(ctx, trader, "uswap").Amount)
	require.True(t, resp2.Amounts[0].LTE(math.NewInt(200_000)))
}

func TestMsgServerSwapRejectsInteriorNativeDenom(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	seedNativePool(t, k, bank, ctx, "uatom", 5_000_000, 5_000_000)

	trader := types.TestAddr()

	_, err := ms.SwapExactIn(ctx, &types.MsgSwapExactIn{
		Trader:       trader.String(),
		AmountIn:     math.NewInt(1000),
		MinAmountOut: math.ZeroInt(),
		Path:         []string{"uatom", "uswap", "uusdc"},
		Deadline:     deadline(ctx),
	})
	require.ErrorIs(t, err, types.ErrInvalidPath)

	_, err = ms.SwapExactIn(ctx, &types.MsgSwapExactIn{
		Trader:       trader.String(),
		AmountIn:     math.NewInt(1000),
		MinAmountOut: math.ZeroInt(),
		Path:         []string{"uswap", "uatom", "uswap"},
		Deadline:     deadline(ctx),
	})
	require.ErrorIs(t, err, types.ErrInvalidPath)
}

func TestMsgServerMakeLiquidityDual(t *testing.T) {
	k, bank, ctx := keepertest.SwapKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	seedPool(t, k, bank, ctx, "uatom", "uusdc", 50_000_000, 50_000_000)

	depositor := types.TestAddr()
	bank.FundAccount(ctx, depositor, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1_000_000)))

	resp, err := ms.MakeLiquidityDual(ctx, types.NewMsgMakeLiquidityDual(
		depositor.String(), "uatom", "uusdc",
		math.NewInt(1_000_000), math.ZeroInt(), math.ZeroInt(), math.ZeroInt(),
		deadline(ctx),
	))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(498_272), resp.SwapIn)
	require.Equal(t, math.NewInt(496_775), resp.Shares)

	sweep, err := ms.CleanUp(ctx, types.NewMsgCleanUp(depositor.String(), "uatom"))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2), sweep.Swept)
}

func TestMsgServerFeeAdmin(t *testing.T) {
	k, _, ctx := keepertest.SwapKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	setter := types.TestAddr()
	feeTo := types.TestAddr()
	k.SetFeeConfig(ctx, types.FeeConfig{FeeToSetter: setter.String()})

	_, err := ms.SetFeeTo(ctx, types.NewMsgSetFeeTo(types.TestAddr().String(), feeTo.String()))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = ms.SetFeeTo(ctx, types.NewMsgSetFeeTo(setter.String(), feeTo.String()))
	require.NoError(t, err)
	require.Equal(t, feeTo.String(), k.GetFeeConfig(ctx).FeeTo)

	successor := types.TestAddr()
	_, err = ms.SetFeeToSetter(ctx, types.NewMsgSetFeeToSetter(setter.String(), successor.String()))
	require.NoError(t, err)
	require.Equal(t, successor.String(), k.GetFeeConfig(ctx).FeeToSetter)
}
