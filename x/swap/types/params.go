package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params are the swap module parameters.
type Params struct {
	// NativeDenom is the chain's native staking denom accepted by the
	// native router/maker entry points.
	NativeDenom string `json:"native_denom"`
	// WrappedDenom is the fungible representation of the native denom that
	// pairs actually hold. Deposit/Withdraw convert between the two 1:1.
	WrappedDenom string `json:"wrapped_denom"`
	// MaxPathLength bounds router swap paths.
	MaxPathLength uint32 `json:"max_path_length"`
}

// DefaultParams returns default parameters for the swap module.
func DefaultParams() Params {
	return Params{
		NativeDenom:   "uswap",
		WrappedDenom:  "uwswap",
		MaxPathLength: 5,
	}
}

// Validate ensures parameter sanity.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return fmt.Errorf("native denom: %w", err)
	}
	if err := sdk.ValidateDenom(p.WrappedDenom); err != nil {
		return fmt.Errorf("wrapped denom: %w", err)
	}
	if p.NativeDenom == p.WrappedDenom {
		return fmt.Errorf("native and wrapped denoms must differ")
	}
	if p.MaxPathLength < 2 {
		return fmt.Errorf("max path length must be at least 2, got %d", p.MaxPathLength)
	}
	return nil
}
