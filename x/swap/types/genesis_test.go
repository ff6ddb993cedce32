package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/swaps-chain/swaps/x/swap/types"
)

func validGenesisPair(assetA, assetB string, reserve, shares int64) types.Pair {
	pair := types.NewPair(assetA, assetB)
	pair.ReserveA = math.NewInt(reserve)
	pair.ReserveB = math.NewInt(reserve)
	pair.TotalShares = math.NewInt(shares)
	return pair
}

func TestDefaultGenesisIsValid(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
}

func TestGenesisValidate(t *testing.T) {
	holder := types.TestAddr().String()

	pair := validGenesisPair("uatom", "uusdc", 1_000_000, 1_000_000)

	tests := []struct {
		name    string
		mutate  func(gs *types.GenesisState)
		wantErr string
	}{
		{
			name: "valid state with shares",
			mutate: func(gs *types.GenesisState) {
				gs.Pairs = []types.Pair{pair}
				gs.Shares = []types.ShareRecord{{Pair: pair.Address, Holder: holder, Shares: math.NewInt(1_000_000)}}
			},
		},
		{
			name: "pair address not derived from assets",
			mutate: func(gs *types.GenesisState) {
				bad := pair
				bad.Address = sdk.AccAddress(types.PairAddress("uatom", "uwswap")).String()
				gs.Pairs = []types.Pair{bad}
			},
			wantErr: "does not match derived",
		},
		{
			name: "duplicate pair",
			mutate: func(gs *types.GenesisState) {
				gs.Pairs = []types.Pair{pair, pair}
			},
			wantErr: "duplicate pair",
		},
		{
			name: "share record for unknown pair",
			mutate: func(gs *types.GenesisState) {
				gs.Shares = []types.ShareRecord{{Pair: pair.Address, Holder: holder, Shares: math.NewInt(1)}}
			},
			wantErr: "unknown pair",
		},
		{
			name: "share records do not sum to supply",
			mutate: func(gs *types.GenesisState) {
				gs.Pairs = []types.Pair{pair}
				gs.Shares = []types.ShareRecord{{Pair: pair.Address, Holder: holder, Shares: math.NewInt(999_999)}}
			},
			wantErr: "sum to",
		},
		{
			name: "assets out of canonical order",
			mutate: func(gs *types.GenesisState) {
				bad := pair
				bad.AssetA, bad.AssetB = bad.AssetB, bad.AssetA
				gs.Pairs = []types.Pair{bad}
			},
			wantErr: "canonical order",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := types.DefaultGenesis()
			tc.mutate(gs)

			err := gs.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}
