package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState is the swap module's exported state.
type GenesisState struct {
	Params    Params        `json:"params"`
	FeeConfig FeeConfig     `json:"fee_config"`
	Pairs     []Pair        `json:"pairs"`
	Shares    []ShareRecord `json:"shares"`
}

// DefaultGenesis returns the default genesis state for the swap module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:    DefaultParams(),
		FeeConfig: FeeConfig{},
		Pairs:     []Pair{},
		Shares:    []ShareRecord{},
	}
}

// Validate ensures the genesis state is well-formed: valid params and fee
// config, unique canonically ordered pairs with addresses matching the
// derivation formula, and share records that sum to each pair's supply.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("params: %w", err)
	}
	if err := gs.FeeConfig.Validate(); err != nil {
		return fmt.Errorf("fee config: %w", err)
	}

	seen := make(map[string]bool, len(gs.Pairs))
	supply := make(map[string]math.Int, len(gs.Pairs))
	for _, pair := range gs.Pairs {
		if err := pair.Validate(); err != nil {
			return fmt.Errorf("pair %s/%s: %w", pair.AssetA, pair.AssetB, err)
		}
		derived := sdk.AccAddress(PairAddress(pair.AssetA, pair.AssetB)).String()
		if pair.Address != derived {
			return fmt.Errorf("pair %s/%s address %s does not match derived %s",
				pair.AssetA, pair.AssetB, pair.Address, derived)
		}
		if seen[pair.Address] {
			return fmt.Errorf("duplicate pair for %s/%s", pair.AssetA, pair.AssetB)
		}
		seen[pair.Address] = true
		supply[pair.Address] = pair.TotalShares
	}

	summed := make(map[string]math.Int, len(gs.Pairs))
	for _, rec := range gs.Shares {
		if !seen[rec.Pair] {
			return fmt.Errorf("share record references unknown pair %s", rec.Pair)
		}
		if _, err := sdk.AccAddressFromBech32(rec.Holder); err != nil {
			return fmt.Errorf("share record holder %q: %w", rec.Holder, err)
		}
		if rec.Shares.IsNil() || !rec.Shares.IsPositive() {
			return fmt.Errorf("share record for %s must be positive", rec.Holder)
		}
		cur, ok := summed[rec.Pair]
		if !ok {
			cur = math.ZeroInt()
		}
		summed[rec.Pair] = cur.Add(rec.Shares)
	}
	for addr, total := range supply {
		got, ok := summed[addr]
		if !ok {
			got = math.ZeroInt()
		}
		if !got.Equal(total) {
			return fmt.Errorf("pair %s share records sum to %s, total supply is %s", addr, got, total)
		}
	}
	return nil
}
