package types

import (
	"crypto/sha256"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// PairCodeFingerprint versions the pair derivation scheme. It plays the role
// of the creation-code hash in the address formula: every pair address is a
// function of the module identity, the canonical asset pair, and this
// constant. Changing it invalidates every previously derived pair address,
// so a change is a consensus-breaking migration.
const PairCodeFingerprint = "swaps/pair/v1"

// PairCodeHash returns the hash folded into pair address derivation.
func PairCodeHash() []byte {
	h := sha256.Sum256([]byte(PairCodeFingerprint))
	return h[:]
}

// SortAssets returns the two denoms in canonical (lexicographic) order.
func SortAssets(assetA, assetB string) (string, string) {
	if assetA > assetB {
		return assetB, assetA
	}
	return assetA, assetB
}

// PairAddress derives the account address of the pair for the given assets.
// The derivation is a pure function so the router can compute a pair's
// address without a registry lookup; it must agree byte for byte with the
// address the factory registers at creation.
//
// The denoms are separated by a NUL byte, which cannot appear in a valid
// denom, so distinct asset pairs never share a salt even when the denoms
// themselves contain separators (ibc/..., factory/...).
func PairAddress(assetA, assetB string) sdk.AccAddress {
	assetA, assetB = SortAssets(assetA, assetB)
	salt := sha256.New()
	salt.Write([]byte(assetA))
	salt.Write([]byte{0x00})
	salt.Write([]byte(assetB))
	salt.Write([]byte{0x00})
	salt.Write(PairCodeHash())
	return address.Derive(ModuleAddress(), salt.Sum(nil))
}

// ModuleAddress is the swap module account, the factory identity in pair
// derivation.
func ModuleAddress() sdk.AccAddress {
	return address.Module(ModuleName)
}

// MakerAddress is the liquidity-maker account holding transient dust.
func MakerAddress() sdk.AccAddress {
	return address.Module(MakerName)
}

// WrapAddress is the escrow account backing the wrapped-native denom.
func WrapAddress() sdk.AccAddress {
	return address.Module(WrapName)
}

// ShareLockAddress is the null holder the permanently locked
// MinimumLiquidity shares are assigned to on first mint.
func ShareLockAddress() sdk.AccAddress {
	return make(sdk.AccAddress, 20)
}
