package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swaps-chain/swaps/x/swap/types"
)

// GetPair returns the pair stored under the given pair account address
func (k Keeper) GetPair(ctx context.Context, pairAddr sdk.AccAddress) (types.Pair, bool) {
	store := k.getStore(ctx)
	bz := store.Get(PairKey(pairAddr))
	if bz == nil {
		return types.Pair{}, false
	}

	var pair types.Pair
	k.cdc.MustUnmarshalJSON(bz, &pair)
	return pair, true
}

// SetPair stores a pair under its account address
func (k Keeper) SetPair(ctx context.Context, pair types.Pair) {
	store := k.getStore(ctx)
	bz := k.cdc.MustMarshalJSON(&pair)
	store.Set(PairKey(pair.AccAddress()), bz)
}

// GetPairByAssets returns the pair registered for the given asset pair,
// regardless of argument ordering
func (k Keeper) GetPairByAssets(ctx context.Context, assetA, assetB string) (types.Pair, bool) {
	store := k.getStore(ctx)
	addrBz := store.Get(PairByAssetsKey(assetA, assetB))
	if addrBz == nil {
		return types.Pair{}, false
	}
	return k.GetPair(ctx, sdk.AccAddress(addrBz))
}

// GetPairCount returns the number of pairs created so far
func (k Keeper) GetPairCount(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(PairCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetPairCount sets the pair counter
func (k Keeper) SetPairCount(ctx context.Context, count uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	store.Set(PairCountKey, bz)
}

// IteratePairs calls cb for every registered pair, stopping early when cb returns true
func (k Keeper) IteratePairs(ctx context.Context, cb func(pair types.Pair) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PairKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pair types.Pair
		k.cdc.MustUnmarshalJSON(iterator.Value(), &pair)
		if cb(pair) {
			break
		}
	}
}

// GetAllPairs returns every registered pair
func (k Keeper) GetAllPairs(ctx context.Context) []types.Pair {
	var pairs []types.Pair
	k.IteratePairs(ctx, func(pair types.Pair) bool {
		pairs = append(pairs, pair)
		return false
	})
	return pairs
}

// CreatePair registers a new pair for the given assets. The pair account
// address is derived deterministically from the sorted asset denoms, so
// callers can compute it without consulting the registry. Returns
// ErrPairExists if the pair was already created.
func (k Keeper) CreatePair(ctx context.Context, assetA, assetB string) (types.Pair, error) {
	if assetA == assetB {
		return types.Pair{}, types.ErrIdenticalAssets.Wrapf("asset %s paired with itself", assetA)
	}
	if assetA == "" || assetB == "" {
		return types.Pair{}, types.ErrEmptyAsset
	}
	if err := sdk.ValidateDenom(assetA); err != nil {
		return types.Pair{}, types.ErrEmptyAsset.Wrapf("invalid asset denom %s", assetA)
	}
	if err := sdk.ValidateDenom(assetB); err != nil {
		return types.Pair{}, types.ErrEmptyAsset.Wrapf("invalid asset denom %s", assetB)
	}

	if _, found := k.GetPairByAssets(ctx, assetA, assetB); found {
		return types.Pair{}, types.ErrPairExists.Wrapf("pair %s/%s already registered", assetA, assetB)
	}

	pair := types.NewPair(assetA, assetB)
	pair.LastSettledAt = sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	k.SetPair(ctx, pair)

	store := k.getStore(ctx)
	store.Set(PairByAssetsKey(assetA, assetB), pair.AccAddress().Bytes())

	count := k.GetPairCount(ctx) + 1
	k.SetPairCount(ctx, count)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePairCreated,
			sdk.NewAttribute(types.AttributeKeyAssetA, pair.AssetA),
			sdk.NewAttribute(types.AttributeKeyAssetB, pair.AssetB),
			sdk.NewAttribute(types.AttributeKeyPair, pair.Address),
			sdk.NewAttribute(types.AttributeKeyPairCount, fmt.Sprintf("%d", count)),
		),
	)

	if k.metrics != nil {
		k.metrics.PairsTotal.Set(float64(count))
		k.metrics.PairCreations.Inc()
	}

	k.Logger(ctx).Info("pair created",
		"asset_a", pair.AssetA,
		"asset_b", pair.AssetB,
		"pair", pair.Address,
		"count", count,
	)

	return pair, nil
}

// GetFeeConfig returns the protocol fee configuration
func (k Keeper) GetFeeConfig(ctx context.Context) types.FeeConfig {
	store := k.getStore(ctx)
	bz := store.Get(FeeConfigKey)
	if bz == nil {
		return types.FeeConfig{}
	}

	var cfg types.FeeConfig
	k.cdc.MustUnmarshalJSON(bz, &cfg)
	return cfg
}

// SetFeeConfig stores the protocol fee configuration
func (k Keeper) SetFeeConfig(ctx context.Context, cfg types.FeeConfig) {
	store := k.getStore(ctx)
	bz := k.cdc.MustMarshalJSON(&cfg)
	store.Set(FeeConfigKey, bz)
}

// SetFeeTo updates the protocol fee recipient. Only the current fee setter
// may call this. An empty recipient disables protocol fee collection.
func (k Keeper) SetFeeTo(ctx context.Context, setter sdk.AccAddress, newFeeTo string) error {
	cfg := k.GetFeeConfig(ctx)
	if cfg.FeeToSetter == "" || setter.String() != cfg.FeeToSetter {
		return types.ErrUnauthorized.Wrap("only the fee setter may update the fee recipient")
	}

	if newFeeTo != "" {
		if _, err := sdk.AccAddressFromBech32(newFeeTo); err != nil {
			return types.ErrInvalidAddress.Wrapf("fee recipient %s: %s", newFeeTo, err)
		}
	}

	cfg.FeeTo = newFeeTo
	k.SetFeeConfig(ctx, cfg)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeToUpdated,
			sdk.NewAttribute(types.AttributeKeySender, setter.String()),
			sdk.NewAttribute(types.AttributeKeyFeeTo, newFeeTo),
		),
	)
	return nil
}

// SetFeeToSetter transfers the fee setter role to a new address
func (k Keeper) SetFeeToSetter(ctx context.Context, setter sdk.AccAddress, newSetter string) error {
	cfg := k.GetFeeConfig(ctx)
	if cfg.FeeToSetter == "" || setter.String() != cfg.FeeToSetter {
		return types.ErrUnauthorized.Wrap("only the fee setter may transfer the role")
	}

	if _, err := sdk.AccAddressFromBech32(newSetter); err != nil {
		return types.ErrInvalidAddress.Wrapf("fee setter %s: %s", newSetter, err)
	}

	cfg.FeeToSetter = newSetter
	k.SetFeeConfig(ctx, cfg)
	return nil
}
