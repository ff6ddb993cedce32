package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgAddLiquidity{}
	_ sdk.Msg = &MsgRemoveLiquidity{}
)

// MsgAddLiquidity deposits both assets of a pair, creating the pair first if
// it does not exist yet controls slippage through the min amounts.
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	AssetA   string   `json:"asset_a"`
	AssetB   string   `json:"asset_b"`
	DesiredA math.Int `json:"desired_a"`
	DesiredB math.Int `json:"desired_b"`
	MinA     math.Int `json:"min_a"`
	MinB     math.Int `json:"min_b"`
	To       string   `json:"to"`
	Deadline int64    `json:"deadline"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider, assetA, assetB string, desiredA, desiredB, minA, minB math.Int, to string, deadline int64) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider: provider,
		AssetA:   assetA,
		AssetB:   assetB,
		DesiredA: desiredA,
		DesiredB: desiredB,
		MinA:     minA,
		MinB:     minB,
		To:       to,
		Deadline: deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string {
	return "add_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.To != "" {
		if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
		}
	}
	if msg.AssetA == "" || msg.AssetB == "" {
		return sdkerrors.Wrap(ErrEmptyAsset, "asset denominations cannot be empty")
	}
	if msg.AssetA == msg.AssetB {
		return sdkerrors.Wrap(ErrIdenticalAssets, "asset denominations must be different")
	}
	if msg.DesiredA.IsNil() || !msg.DesiredA.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "desired amount A must be positive")
	}
	if msg.DesiredB.IsNil() || !msg.DesiredB.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "desired amount B must be positive")
	}
	if msg.MinA.IsNil() || msg.MinA.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount A cannot be negative")
	}
	if msg.MinB.IsNil() || msg.MinB.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount B cannot be negative")
	}
	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline must be positive")
	}
	return nil
}

func (msg *MsgAddLiquidity) Reset()         { *msg = MsgAddLiquidity{} }
func (msg *MsgAddLiquidity) String() string { return string(msg.GetSignBytes()) }
func (*MsgAddLiquidity) ProtoMessage()      {}

// MsgRemoveLiquidity burns liquidity shares for the underlying assets,
// enforcing caller minimums on both payouts.
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	AssetA   string   `json:"asset_a"`
	AssetB   string   `json:"asset_b"`
	Shares   math.Int `json:"shares"`
	MinA     math.Int `json:"min_a"`
	MinB     math.Int `json:"min_b"`
	To       string   `json:"to"`
	Deadline int64    `json:"deadline"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider, assetA, assetB string, shares, minA, minB math.Int, to string, deadline int64) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider: provider,
		AssetA:   assetA,
		AssetB:   assetB,
		Shares:   shares,
		MinA:     minA,
		MinB:     minB,
		To:       to,
		Deadline: deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string {
	return "remove_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.To != "" {
		if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
		}
	}
	if msg.AssetA == "" || msg.AssetB == "" {
		return sdkerrors.Wrap(ErrEmptyAsset, "asset denominations cannot be empty")
	}
	if msg.AssetA == msg.AssetB {
		return sdkerrors.Wrap(ErrIdenticalAssets, "asset denominations must be different")
	}
	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "shares must be positive")
	}
	if msg.MinA.IsNil() || msg.MinA.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount A cannot be negative")
	}
	if msg.MinB.IsNil() || msg.MinB.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount B cannot be negative")
	}
	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline must be positive")
	}
	return nil
}

func (msg *MsgRemoveLiquidity) Reset()         { *msg = MsgRemoveLiquidity{} }
func (msg *MsgRemoveLiquidity) String() string { return string(msg.GetSignBytes()) }
func (*MsgRemoveLiquidity) ProtoMessage()      {}
