package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swaps-chain/swaps/x/swap/types"
)

// Keeper of the swap store
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        *codec.LegacyAmino
	bankKeeper types.BankKeeper
	metrics    *SwapMetrics
}

// NewKeeper creates a new swap Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
) *Keeper {
	return &Keeper{
		storeKey:   key,
		cdc:        cdc,
		bankKeeper: bankKeeper,
		metrics:    NewSwapMetrics(),
	}
}

// getStore returns the KVStore for the swap module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// BankKeeper exposes the bank keeper for query handlers and tests
func (k Keeper) BankKeeper() types.BankKeeper {
	return k.bankKeeper
}
