package types_test

import (
	"testing"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/swaps-chain/swaps/x/swap/types"
)

func TestSortAssets(t *testing.T) {
	a, b := types.SortAssets("uusdc", "uatom")
	require.Equal(t, "uatom", a)
	require.Equal(t, "uusdc", b)

	a, b = types.SortAssets("uatom", "uusdc")
	require.Equal(t, "uatom", a)
	require.Equal(t, "uusdc", b)
}

func TestPairAddressDeterministic(t *testing.T) {
	addr1 := types.PairAddress("uatom", "uusdc")
	addr2 := types.PairAddress("uusdc", "uatom")

	// Argument order must not matter, byte for byte.
	require.Equal(t, addr1, addr2)
	require.Equal(t, addr1, types.PairAddress("uatom", "uusdc"))

	// Different pairs get different addresses.
	other := types.PairAddress("uatom", "uwswap")
	require.NotEqual(t, addr1, other)

	// Slash-bearing denoms (ibc/..., factory/...) must not let two distinct
	// pairs collapse into one derivation salt.
	require.NotEqual(t,
		types.PairAddress("abc/def", "xyz"),
		types.PairAddress("abc", "def/xyz"))

	// Derived addresses are valid 32-byte account addresses distinct from
	// the module accounts.
	require.Len(t, []byte(addr1), 32)
	require.NotEqual(t, sdk.AccAddress(addr1), types.ModuleAddress())
	require.NotEqual(t, sdk.AccAddress(addr1), types.MakerAddress())
}

func TestNewPairAddressMatchesDerivation(t *testing.T) {
	pair := types.NewPair("uusdc", "uatom")
	require.Equal(t, "uatom", pair.AssetA)
	require.Equal(t, "uusdc", pair.AssetB)
	require.Equal(t, sdk.AccAddress(types.PairAddress("uatom", "uusdc")).String(), pair.Address)
	require.Equal(t, sdk.AccAddress(types.PairAddress("uatom", "uusdc")), pair.AccAddress())
}

func TestShareLockAddress(t *testing.T) {
	lock := types.ShareLockAddress()
	require.Len(t, []byte(lock), 20)
	for _, b := range lock {
		require.Zero(t, b)
	}
}

func TestPairReservesFor(t *testing.T) {
	pair := types.NewPair("uatom", "uusdc")
	pair.ReserveA = math.NewInt(100)
	pair.ReserveB = math.NewInt(200)

	rIn, rOut, ok := pair.ReservesFor("uatom")
	require.True(t, ok)
	require.Equal(t, math.NewInt(100), rIn)
	require.Equal(t, math.NewInt(200), rOut)

	rIn, rOut, ok = pair.ReservesFor("uusdc")
	require.True(t, ok)
	require.Equal(t, math.NewInt(200), rIn)
	require.Equal(t, math.NewInt(100), rOut)

	_, _, ok = pair.ReservesFor("untracked")
	require.False(t, ok)

	other, ok := pair.Other("uatom")
	require.True(t, ok)
	require.Equal(t, "uusdc", other)
}
