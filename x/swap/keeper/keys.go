package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swaps-chain/swaps/x/swap/types"
)

var (
	// PairKeyPrefix is the prefix for pair store keys, keyed by pair address
	PairKeyPrefix = []byte{0x01}

	// PairByAssetsKeyPrefix is the prefix for indexing pairs by asset pair
	PairByAssetsKeyPrefix = []byte{0x02}

	// PairCountKey is the key for the total pair counter
	PairCountKey = []byte{0x03}

	// ShareKeyPrefix is the prefix for liquidity share balances
	ShareKeyPrefix = []byte{0x04}

	// FeeConfigKey is the key for the protocol fee configuration
	FeeConfigKey = []byte{0x05}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x06}
)

// PairKey returns the store key for a pair by its account address
func PairKey(pairAddr sdk.AccAddress) []byte {
	return append(PairKeyPrefix, pairAddr.Bytes()...)
}

// PairByAssetsKey returns the store key for indexing a pair by its assets.
// Assets are ordered lexicographically so both orderings map to the same
// key, and separated by a NUL byte so denoms containing slashes cannot
// collide into another pair's slot.
func PairByAssetsKey(assetA, assetB string) []byte {
	a, b := types.SortAssets(assetA, assetB)
	key := append(PairByAssetsKeyPrefix, []byte(a)...)
	key = append(key, 0x00)
	key = append(key, []byte(b)...)
	return key
}

// ShareKey returns the store key for a holder's share balance in a pair.
// Pair addresses are always 32 bytes so the holder suffix is unambiguous.
func ShareKey(pairAddr, holder sdk.AccAddress) []byte {
	key := append(ShareKeyPrefix, pairAddr.Bytes()...)
	key = append(key, holder.Bytes()...)
	return key
}

// SharesByPairPrefix returns the prefix for all share balances in a pair
func SharesByPairPrefix(pairAddr sdk.AccAddress) []byte {
	return append(ShareKeyPrefix, pairAddr.Bytes()...)
}
