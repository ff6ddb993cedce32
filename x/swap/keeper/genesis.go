package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swaps-chain/swaps/x/swap/types"
)

// InitGenesis initializes the swap module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Sprintf("invalid swap genesis state: %v", err))
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	k.SetFeeConfig(ctx, genState.FeeConfig)

	store := k.getStore(ctx)
	for _, pair := range genState.Pairs {
		k.SetPair(ctx, pair)
		store.Set(PairByAssetsKey(pair.AssetA, pair.AssetB), pair.AccAddress().Bytes())
	}
	k.SetPairCount(ctx, uint64(len(genState.Pairs)))

	for _, record := range genState.Shares {
		pairAddr, err := sdk.AccAddressFromBech32(record.Pair)
		if err != nil {
			panic(fmt.Sprintf("invalid pair address in share record: %v", err))
		}
		holder, err := sdk.AccAddressFromBech32(record.Holder)
		if err != nil {
			panic(fmt.Sprintf("invalid holder address in share record: %v", err))
		}
		k.setShares(ctx, pairAddr, holder, record.Shares)
	}
}

// ExportGenesis returns the swap module state as a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:    k.GetParams(ctx),
		FeeConfig: k.GetFeeConfig(ctx),
		Pairs:     k.GetAllPairs(ctx),
		Shares:    k.GetAllShareRecords(ctx),
	}
}
