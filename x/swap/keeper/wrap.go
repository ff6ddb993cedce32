package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swaps-chain/swaps/x/swap/types"
)

// Deposit wraps amount of the native asset held by holder into the wrapped
// denom, 1:1. The native coins are escrowed under the wrap submodule account
// and freshly minted wrapped coins are credited to holder.
func (k Keeper) Deposit(ctx context.Context, holder sdk.AccAddress, amount math.Int) error {
	if !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("deposit must be positive")
	}

	params := k.GetParams(ctx)
	native := sdk.NewCoins(sdk.NewCoin(params.NativeDenom, amount))
	wrapped := sdk.NewCoins(sdk.NewCoin(params.WrappedDenom, amount))

	if err := k.bankKeeper.SendCoins(ctx, holder, types.WrapAddress(), native); err != nil {
		return err
	}
	if err := k.bankKeeper.MintCoins(ctx, types.WrapName, wrapped); err != nil {
		return err
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.WrapName, holder, wrapped); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeySender, holder.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Withdraw unwraps amount of the wrapped denom held by holder back into the
// native asset, burning the wrapped coins and releasing escrow 1:1.
func (k Keeper) Withdraw(ctx context.Context, holder sdk.AccAddress, amount math.Int) error {
	if !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("withdrawal must be positive")
	}

	params := k.GetParams(ctx)
	native := sdk.NewCoins(sdk.NewCoin(params.NativeDenom, amount))
	wrapped := sdk.NewCoins(sdk.NewCoin(params.WrappedDenom, amount))

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, holder, types.WrapName, wrapped); err != nil {
		return err
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.WrapName, wrapped); err != nil {
		return err
	}
	if err := k.bankKeeper.SendCoins(ctx, types.WrapAddress(), holder, native); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawal,
			sdk.NewAttribute(types.AttributeKeySender, holder.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}
