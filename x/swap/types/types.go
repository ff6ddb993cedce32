package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pair is a constant-product pool for one unordered asset pair. AssetA is
// always the lexicographically smaller denom; the ordering is fixed at
// creation and never changes.
type Pair struct {
	Address          string         `json:"address"`
	AssetA           string         `json:"asset_a"`
	AssetB           string         `json:"asset_b"`
	ReserveA         math.Int       `json:"reserve_a"`
	ReserveB         math.Int       `json:"reserve_b"`
	TotalShares      math.Int       `json:"total_shares"`
	KLast            math.Int       `json:"k_last"`
	PriceACumulative math.LegacyDec `json:"price_a_cumulative"`
	PriceBCumulative math.LegacyDec `json:"price_b_cumulative"`
	LastSettledAt    int64          `json:"last_settled_at"`
}

// NewPair returns an empty pair for the given assets with its deterministic
// address already derived.
func NewPair(assetA, assetB string) Pair {
	assetA, assetB = SortAssets(assetA, assetB)
	return Pair{
		Address:          sdk.AccAddress(PairAddress(assetA, assetB)).String(),
		AssetA:           assetA,
		AssetB:           assetB,
		ReserveA:         math.ZeroInt(),
		ReserveB:         math.ZeroInt(),
		TotalShares:      math.ZeroInt(),
		KLast:            math.ZeroInt(),
		PriceACumulative: math.LegacyZeroDec(),
		PriceBCumulative: math.LegacyZeroDec(),
	}
}

// AccAddress returns the pair's account address.
func (p Pair) AccAddress() sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(p.Address)
	if err != nil {
		panic(fmt.Sprintf("pair %s/%s carries invalid address %q: %v", p.AssetA, p.AssetB, p.Address, err))
	}
	return addr
}

// ReservesFor returns (reserveIn, reserveOut) oriented so that assetIn is the
// input side. The second return reports whether assetIn belongs to the pair.
func (p Pair) ReservesFor(assetIn string) (math.Int, math.Int, bool) {
	switch assetIn {
	case p.AssetA:
		return p.ReserveA, p.ReserveB, true
	case p.AssetB:
		return p.ReserveB, p.ReserveA, true
	default:
		return math.Int{}, math.Int{}, false
	}
}

// Other returns the pair asset opposite to the given one.
func (p Pair) Other(asset string) (string, bool) {
	switch asset {
	case p.AssetA:
		return p.AssetB, true
	case p.AssetB:
		return p.AssetA, true
	default:
		return "", false
	}
}

// Validate checks structural well-formedness of a pair record.
func (p Pair) Validate() error {
	if p.AssetA == "" || p.AssetB == "" {
		return ErrEmptyAsset.Wrap("pair asset denoms cannot be empty")
	}
	if p.AssetA == p.AssetB {
		return ErrIdenticalAssets.Wrapf("pair holds %s twice", p.AssetA)
	}
	if p.AssetA > p.AssetB {
		return ErrInvalidPairState.Wrapf("assets out of canonical order: %s > %s", p.AssetA, p.AssetB)
	}
	if err := sdk.ValidateDenom(p.AssetA); err != nil {
		return ErrEmptyAsset.Wrapf("invalid denom %s: %v", p.AssetA, err)
	}
	if err := sdk.ValidateDenom(p.AssetB); err != nil {
		return ErrEmptyAsset.Wrapf("invalid denom %s: %v", p.AssetB, err)
	}
	if _, err := sdk.AccAddressFromBech32(p.Address); err != nil {
		return ErrInvalidAddress.Wrapf("pair address %q: %v", p.Address, err)
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPairState.Wrap("nil reserve or share amount")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() || p.TotalShares.IsNegative() {
		return ErrInvalidPairState.Wrap("negative reserve or share amount")
	}
	return nil
}

// FeeConfig holds the protocol-fee recipient and the identity allowed to
// reassign it. Only FeeToSetter may change either field.
type FeeConfig struct {
	FeeTo       string `json:"fee_to"`
	FeeToSetter string `json:"fee_to_setter"`
}

// FeeEnabled reports whether the protocol fee is switched on.
func (fc FeeConfig) FeeEnabled() bool {
	return fc.FeeTo != ""
}

// Validate checks that configured addresses parse.
func (fc FeeConfig) Validate() error {
	if fc.FeeTo != "" {
		if _, err := sdk.AccAddressFromBech32(fc.FeeTo); err != nil {
			return ErrInvalidAddress.Wrapf("fee_to %q: %v", fc.FeeTo, err)
		}
	}
	if fc.FeeToSetter != "" {
		if _, err := sdk.AccAddressFromBech32(fc.FeeToSetter); err != nil {
			return ErrInvalidAddress.Wrapf("fee_to_setter %q: %v", fc.FeeToSetter, err)
		}
	}
	return nil
}

// MakeResult reports what a liquidity-maker deposit did: the sizes of the
// swap leg, the input-side deposit, and the shares minted.
type MakeResult struct {
	SwapIn    math.Int `json:"swap_in"`
	SwapOut   math.Int `json:"swap_out"`
	DepositIn math.Int `json:"deposit_in"`
	Shares    math.Int `json:"shares"`
}

// ShareRecord is one holder's liquidity-share balance in one pair, used by
// genesis import/export.
type ShareRecord struct {
	Pair   string   `json:"pair"`
	Holder string   `json:"holder"`
	Shares math.Int `json:"shares"`
}
