package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSetFeeTo{}
	_ sdk.Msg = &MsgSetFeeToSetter{}
)

// MsgSetFeeTo reassigns the protocol-fee recipient. Only the current
// fee-to-setter may sign it. An empty NewFeeTo switches the fee off.
type MsgSetFeeTo struct {
	Setter   string `json:"setter"`
	NewFeeTo string `json:"new_fee_to"`
}

// NewMsgSetFeeTo creates a new MsgSetFeeTo instance
func NewMsgSetFeeTo(setter, newFeeTo string) *MsgSetFeeTo {
	return &MsgSetFeeTo{Setter: setter, NewFeeTo: newFeeTo}
}

// Route implements the sdk.Msg interface
func (msg MsgSetFeeTo) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSetFeeTo) Type() string {
	return "set_fee_to"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSetFeeTo) GetSigners() []sdk.AccAddress {
	setter, err := sdk.AccAddressFromBech32(msg.Setter)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{setter}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetFeeTo) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetFeeTo) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Setter); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid setter address: %s", err)
	}
	if msg.NewFeeTo != "" {
		if _, err := sdk.AccAddressFromBech32(msg.NewFeeTo); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid fee recipient address: %s", err)
		}
	}
	return nil
}

func (msg *MsgSetFeeTo) Reset()         { *msg = MsgSetFeeTo{} }
func (msg *MsgSetFeeTo) String() string { return string(msg.GetSignBytes()) }
func (*MsgSetFeeTo) ProtoMessage()      {}

// MsgSetFeeToSetter hands the setter role to a new identity.
type MsgSetFeeToSetter struct {
	Setter    string `json:"setter"`
	NewSetter string `json:"new_setter"`
}

// NewMsgSetFeeToSetter creates a new MsgSetFeeToSetter instance
func NewMsgSetFeeToSetter(setter, newSetter string) *MsgSetFeeToSetter {
	return &MsgSetFeeToSetter{Setter: setter, NewSetter: newSetter}
}

// Route implements the sdk.Msg interface
func (msg MsgSetFeeToSetter) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSetFeeToSetter) Type() string {
	return "set_fee_to_setter"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSetFeeToSetter) GetSigners() []sdk.AccAddress {
	setter, err := sdk.AccAddressFromBech32(msg.Setter)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{setter}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetFeeToSetter) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetFeeToSetter) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Setter); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid setter address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewSetter); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid new setter address: %s", err)
	}
	return nil
}

func (msg *MsgSetFeeToSetter) Reset()         { *msg = MsgSetFeeToSetter{} }
func (msg *MsgSetFeeToSetter) String() string { return string(msg.GetSignBytes()) }
func (*MsgSetFeeToSetter) ProtoMessage()      {}
