package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/swaps-chain/swaps/x/swap/types"
)

// RegisterInvariants registers all swap invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
}

// AllInvariants runs all invariants of the swap module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ReserveBackingInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ShareSupplyInvariant(k)(ctx)
	}
}

// ReserveBackingInvariant checks that every pair account actually holds at
// least its recorded reserves. Balances may exceed reserves transiently
// (donations awaiting Skim or Sync) but never fall short.
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for _, pair := range k.GetAllPairs(ctx) {
			balanceA, balanceB := k.pairBalances(ctx, pair)
			if balanceA.LT(pair.ReserveA) {
				count++
				msg += fmt.Sprintf("pair %s: balance for %s (%s) < reserve (%s)\n",
					pair.Address, pair.AssetA, balanceA, pair.ReserveA)
			}
			if balanceB.LT(pair.ReserveB) {
				count++
				msg += fmt.Sprintf("pair %s: balance for %s (%s) < reserve (%s)\n",
					pair.Address, pair.AssetB, balanceB, pair.ReserveB)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "reserve-backing",
			fmt.Sprintf("found %d under-backed pair reserves\n%s", count, msg),
		), broken
	}
}

// ShareSupplyInvariant checks that each pair's recorded share supply equals
// the sum of all holder balances
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for _, pair := range k.GetAllPairs(ctx) {
			sum := math.ZeroInt()
			k.IterateShares(ctx, pair.AccAddress(), func(_ sdk.AccAddress, amount math.Int) bool {
				sum = sum.Add(amount)
				return false
			})
			if !sum.Equal(pair.TotalShares) {
				count++
				msg += fmt.Sprintf("pair %s: holder shares sum to %s, supply records %s\n",
					pair.Address, sum, pair.TotalShares)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "share-supply",
			fmt.Sprintf("found %d pairs with mismatched share supply\n%s", count, msg),
		), broken
	}
}
