package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgMakeLiquidity{}
	_ sdk.Msg = &MsgMakeLiquidityDual{}
	_ sdk.Msg = &MsgCleanUp{}
)

// MsgMakeLiquidity deposits a single native amount: the maker wraps it,
// swaps the optimal portion for PairedAsset, and adds both legs as
// liquidity. ExpectedPairedOut is a soft target recorded for observers; the
// hard floors are the two minimums.
type MsgMakeLiquidity struct {
	Depositor         string   `json:"depositor"`
	PairedAsset       string   `json:"paired_asset"`
	AmountIn          math.Int `json:"amount_in"`
	ExpectedPairedOut math.Int `json:"expected_paired_out"`
	MinLiquidityIn    math.Int `json:"min_liquidity_in"`
	MinLiquidityOut   math.Int `json:"min_liquidity_out"`
	Deadline          int64    `json:"deadline"`
}

// NewMsgMakeLiquidity creates a new MsgMakeLiquidity instance
func NewMsgMakeLiquidity(depositor, pairedAsset string, amountIn, expectedPairedOut, minLiquidityIn, minLiquidityOut math.Int, deadline int64) *MsgMakeLiquidity {
	return &MsgMakeLiquidity{
		Depositor:         depositor,
		PairedAsset:       pairedAsset,
		AmountIn:          amountIn,
		ExpectedPairedOut: expectedPairedOut,
		MinLiquidityIn:    minLiquidityIn,
		MinLiquidityOut:   minLiquidityOut,
		Deadline:          deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgMakeLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgMakeLiquidity) Type() string {
	return "make_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgMakeLiquidity) GetSigners() []sdk.AccAddress {
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{depositor}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgMakeLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgMakeLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid depositor address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.PairedAsset); err != nil {
		return sdkerrors.Wrapf(ErrEmptyAsset, "paired asset: %s", err)
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount in must be positive")
	}
	if msg.ExpectedPairedOut.IsNil() || msg.ExpectedPairedOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "expected paired out cannot be negative")
	}
	if msg.MinLiquidityIn.IsNil() || msg.MinLiquidityIn.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min liquidity in cannot be negative")
	}
	if msg.MinLiquidityOut.IsNil() || msg.MinLiquidityOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min liquidity out cannot be negative")
	}
	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline must be positive")
	}
	return nil
}

func (msg *MsgMakeLiquidity) Reset()         { *msg = MsgMakeLiquidity{} }
func (msg *MsgMakeLiquidity) String() string { return string(msg.GetSignBytes()) }
func (*MsgMakeLiquidity) ProtoMessage()      {}

// MsgMakeLiquidityDual is the two-token variant: AssetIn is pulled from the
// depositor, partially swapped for AssetOut, and both legs deposited.
type MsgMakeLiquidityDual struct {
	Depositor       string   `json:"depositor"`
	AssetIn         string   `json:"asset_in"`
	AssetOut        string   `json:"asset_out"`
	AmountIn        math.Int `json:"amount_in"`
	ExpectedOut     math.Int `json:"expected_out"`
	MinLiquidityIn  math.Int `json:"min_liquidity_in"`
	MinLiquidityOut math.Int `json:"min_liquidity_out"`
	Deadline        int64    `json:"deadline"`
}

// NewMsgMakeLiquidityDual creates a new MsgMakeLiquidityDual instance
func NewMsgMakeLiquidityDual(depositor, assetIn, assetOut string, amountIn, expectedOut, minLiquidityIn, minLiquidityOut math.Int, deadline int64) *MsgMakeLiquidityDual {
	return &MsgMakeLiquidityDual{
		Depositor:       depositor,
		AssetIn:         assetIn,
		AssetOut:        assetOut,
		AmountIn:        amountIn,
		ExpectedOut:     expectedOut,
		MinLiquidityIn:  minLiquidityIn,
		MinLiquidityOut: minLiquidityOut,
		Deadline:        deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgMakeLiquidityDual) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgMakeLiquidityDual) Type() string {
	return "make_liquidity_dual"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgMakeLiquidityDual) GetSigners() []sdk.AccAddress {
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{depositor}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgMakeLiquidityDual) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgMakeLiquidityDual) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid depositor address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.AssetIn); err != nil {
		return sdkerrors.Wrapf(ErrEmptyAsset, "asset in: %s", err)
	}
	if err := sdk.ValidateDenom(msg.AssetOut); err != nil {
		return sdkerrors.Wrapf(ErrEmptyAsset, "asset out: %s", err)
	}
	if msg.AssetIn == msg.AssetOut {
		return sdkerrors.Wrap(ErrIdenticalAssets, "asset denominations must be different")
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount in must be positive")
	}
	if msg.ExpectedOut.IsNil() || msg.ExpectedOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "expected out cannot be negative")
	}
	if msg.MinLiquidityIn.IsNil() || msg.MinLiquidityIn.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min liquidity in cannot be negative")
	}
	if msg.MinLiquidityOut.IsNil() || msg.MinLiquidityOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min liquidity out cannot be negative")
	}
	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline must be positive")
	}
	return nil
}

func (msg *MsgMakeLiquidityDual) Reset()         { *msg = MsgMakeLiquidityDual{} }
func (msg *MsgMakeLiquidityDual) String() string { return string(msg.GetSignBytes()) }
func (*MsgMakeLiquidityDual) ProtoMessage()      {}

// MsgCleanUp sweeps residual maker dust of one asset to the caller.
type MsgCleanUp struct {
	Caller string `json:"caller"`
	Asset  string `json:"asset"`
}

// NewMsgCleanUp creates a new MsgCleanUp instance
func NewMsgCleanUp(caller, asset string) *MsgCleanUp {
	return &MsgCleanUp{Caller: caller, Asset: asset}
}

// Route implements the sdk.Msg interface
func (msg MsgCleanUp) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCleanUp) Type() string {
	return "clean_up"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCleanUp) GetSigners() []sdk.AccAddress {
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{caller}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCleanUp) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCleanUp) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid caller address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Asset); err != nil {
		return sdkerrors.Wrapf(ErrEmptyAsset, "asset: %s", err)
	}
	return nil
}

func (msg *MsgCleanUp) Reset()         { *msg = MsgCleanUp{} }
func (msg *MsgCleanUp) String() string { return string(msg.GetSignBytes()) }
func (*MsgCleanUp) ProtoMessage()      {}
