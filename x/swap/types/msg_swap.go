package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSwapExactIn{}
	_ sdk.Msg = &MsgSwapExactOut{}
)

func validatePath(path []string) error {
	if len(path) < 2 {
		return sdkerrors.Wrapf(ErrInvalidPath, "path must have at least 2 assets, got %d", len(path))
	}
	for i, denom := range path {
		if err := sdk.ValidateDenom(denom); err != nil {
			return sdkerrors.Wrapf(ErrInvalidPath, "path element %d: %s", i, err)
		}
		if i > 0 && path[i-1] == denom {
			return sdkerrors.Wrapf(ErrInvalidPath, "consecutive identical assets at element %d", i)
		}
	}
	return nil
}

// MsgSwapExactIn swaps an exact input amount along a path for as much of the
// final asset as possible, bounded below by MinAmountOut.
type MsgSwapExactIn struct {
	Trader       string   `json:"trader"`
	Path         []string `json:"path"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
	To           string   `json:"to"`
	Deadline     int64    `json:"deadline"`
}

// NewMsgSwapExactIn creates a new MsgSwapExactIn instance
func NewMsgSwapExactIn(trader string, path []string, amountIn, minAmountOut math.Int, to string, deadline int64) *MsgSwapExactIn {
	return &MsgSwapExactIn{
		Trader:       trader,
		Path:         path,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
		To:           to,
		Deadline:     deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapExactIn) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapExactIn) Type() string {
	return "swap_exact_in"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapExactIn) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapExactIn) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapExactIn) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}
	if msg.To != "" {
		if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
		}
	}
	if err := validatePath(msg.Path); err != nil {
		return err
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount in must be positive")
	}
	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount out cannot be negative")
	}
	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline must be positive")
	}
	return nil
}

func (msg *MsgSwapExactIn) Reset()         { *msg = MsgSwapExactIn{} }
func (msg *MsgSwapExactIn) String() string { return string(msg.GetSignBytes()) }
func (*MsgSwapExactIn) ProtoMessage()      {}

// MsgSwapExactOut swaps as little input as needed along a path for an exact
// output amount, bounded above by MaxAmountIn.
type MsgSwapExactOut struct {
	Trader      string   `json:"trader"`
	Path        []string `json:"path"`
	AmountOut   math.Int `json:"amount_out"`
	MaxAmountIn math.Int `json:"max_amount_in"`
	To          string   `json:"to"`
	Deadline    int64    `json:"deadline"`
}

// NewMsgSwapExactOut creates a new MsgSwapExactOut instance
func NewMsgSwapExactOut(trader string, path []string, amountOut, maxAmountIn math.Int, to string, deadline int64) *MsgSwapExactOut {
	return &MsgSwapExactOut{
		Trader:      trader,
		Path:        path,
		AmountOut:   amountOut,
		MaxAmountIn: maxAmountIn,
		To:          to,
		Deadline:    deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapExactOut) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapExactOut) Type() string {
	return "swap_exact_out"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapExactOut) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapExactOut) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapExactOut) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}
	if msg.To != "" {
		if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
		}
	}
	if err := validatePath(msg.Path); err != nil {
		return err
	}
	if msg.AmountOut.IsNil() || !msg.AmountOut.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount out must be positive")
	}
	if msg.MaxAmountIn.IsNil() || !msg.MaxAmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "max amount in must be positive")
	}
	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline must be positive")
	}
	return nil
}

func (msg *MsgSwapExactOut) Reset()         { *msg = MsgSwapExactOut{} }
func (msg *MsgSwapExactOut) String() string { return string(msg.GetSignBytes()) }
func (*MsgSwapExactOut) ProtoMessage()      {}
