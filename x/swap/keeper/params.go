package keeper

import (
	"context"

	"github.com/swaps-chain/swaps/x/swap/types"
)

// GetParams returns the current module parameters
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	k.cdc.MustUnmarshalJSON(bz, &params)
	return params
}

// SetParams stores the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	bz := k.cdc.MustMarshalJSON(&params)
	store.Set(ParamsKey, bz)
	return nil
}
