package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swaps-chain/swaps/x/swap/types"
)

// GetShares returns the liquidity share balance of holder in the given pair
func (k Keeper) GetShares(ctx context.Context, pairAddr, holder sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(ShareKey(pairAddr, holder))
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(err)
	}
	return amount
}

func (k Keeper) setShares(ctx context.Context, pairAddr, holder sdk.AccAddress, amount math.Int) {
	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(ShareKey(pairAddr, holder))
		return
	}

	bz, err := amount.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(ShareKey(pairAddr, holder), bz)
}

// mintShares credits newly minted shares to holder and grows the pair supply.
// The caller is responsible for persisting the pair afterwards.
func (k Keeper) mintShares(ctx context.Context, pair *types.Pair, holder sdk.AccAddress, amount math.Int) {
	pairAddr := pair.AccAddress()
	balance := k.GetShares(ctx, pairAddr, holder)
	k.setShares(ctx, pairAddr, holder, balance.Add(amount))
	pair.TotalShares = pair.TotalShares.Add(amount)
}

// burnShares removes shares from holder and shrinks the pair supply
func (k Keeper) burnShares(ctx context.Context, pair *types.Pair, holder sdk.AccAddress, amount math.Int) error {
	pairAddr := pair.AccAddress()
	balance := k.GetShares(ctx, pairAddr, holder)
	if balance.LT(amount) {
		return types.ErrInsufficientShares.Wrapf("holder %s has %s shares, needs %s", holder, balance, amount)
	}

	k.setShares(ctx, pairAddr, holder, balance.Sub(amount))
	pair.TotalShares = pair.TotalShares.Sub(amount)
	return nil
}

// SendShares moves shares between holders within a pair without changing supply
func (k Keeper) SendShares(ctx context.Context, pairAddr, from, to sdk.AccAddress, amount math.Int) error {
	if !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("share transfer must be positive")
	}

	balance := k.GetShares(ctx, pairAddr, from)
	if balance.LT(amount) {
		return types.ErrInsufficientShares.Wrapf("holder %s has %s shares, needs %s", from, balance, amount)
	}

	k.setShares(ctx, pairAddr, from, balance.Sub(amount))
	k.setShares(ctx, pairAddr, to, k.GetShares(ctx, pairAddr, to).Add(amount))
	return nil
}

// IterateShares calls cb for every share balance in the given pair
func (k Keeper) IterateShares(ctx context.Context, pairAddr sdk.AccAddress, cb func(holder sdk.AccAddress, amount math.Int) bool) {
	store := k.getStore(ctx)
	prefix := SharesByPairPrefix(pairAddr)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		holder := sdk.AccAddress(iterator.Key()[len(prefix):])

		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if cb(holder, amount) {
			break
		}
	}
}

// GetAllShareRecords returns every share balance across all pairs for genesis export
func (k Keeper) GetAllShareRecords(ctx context.Context) []types.ShareRecord {
	var records []types.ShareRecord
	k.IteratePairs(ctx, func(pair types.Pair) bool {
		pairAddr := pair.AccAddress()
		k.IterateShares(ctx, pairAddr, func(holder sdk.AccAddress, amount math.Int) bool {
			records = append(records, types.ShareRecord{
				Pair:   pair.Address,
				Holder: holder.String(),
				Shares: amount,
			})
			return false
		})
		return false
	})
	return records
}
