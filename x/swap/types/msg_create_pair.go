package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePair{}

// MsgCreatePair defines a message to register a new pair for two assets.
type MsgCreatePair struct {
	Creator string `json:"creator"`
	AssetA  string `json:"asset_a"`
	AssetB  string `json:"asset_b"`
}

// NewMsgCreatePair creates a new MsgCreatePair instance
func NewMsgCreatePair(creator, assetA, assetB string) *MsgCreatePair {
	return &MsgCreatePair{
		Creator: creator,
		AssetA:  assetA,
		AssetB:  assetB,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePair) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCreatePair) Type() string {
	return "create_pair"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePair) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePair) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePair) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if msg.AssetA == "" || msg.AssetB == "" {
		return sdkerrors.Wrap(ErrEmptyAsset, "asset denominations cannot be empty")
	}
	if msg.AssetA == msg.AssetB {
		return sdkerrors.Wrap(ErrIdenticalAssets, "asset denominations must be different")
	}
	if err := sdk.ValidateDenom(msg.AssetA); err != nil {
		return sdkerrors.Wrapf(ErrEmptyAsset, "invalid denom for asset A: %s", err)
	}
	if err := sdk.ValidateDenom(msg.AssetB); err != nil {
		return sdkerrors.Wrapf(ErrEmptyAsset, "invalid denom for asset B: %s", err)
	}
	return nil
}

func (msg *MsgCreatePair) Reset()         { *msg = MsgCreatePair{} }
func (msg *MsgCreatePair) String() string { return string(msg.GetSignBytes()) }
func (*MsgCreatePair) ProtoMessage()      {}
