package types

import (
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TestAddr generates a valid account address for testing
func TestAddr() sdk.AccAddress {
	privKey := secp256k1.GenPrivKey()
	return sdk.AccAddress(privKey.PubKey().Address())
}
