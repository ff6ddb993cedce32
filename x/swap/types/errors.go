package types

import (
	"cosmossdk.io/errors"
)

// Swap module sentinel errors
var (
	ErrIdenticalAssets             = errors.Register(ModuleName, 1, "identical assets")
	ErrEmptyAsset                  = errors.Register(ModuleName, 2, "asset denom cannot be empty")
	ErrPairExists                  = errors.Register(ModuleName, 3, "pair already exists")
	ErrPairNotFound                = errors.Register(ModuleName, 4, "pair not found")
	ErrInsufficientLiquidityMinted = errors.Register(ModuleName, 5, "insufficient liquidity minted")
	ErrInsufficientLiquidityBurned = errors.Register(ModuleName, 6, "insufficient liquidity burned")
	ErrInsufficientOutputAmount    = errors.Register(ModuleName, 7, "insufficient output amount")
	ErrInsufficientInputAmount     = errors.Register(ModuleName, 8, "insufficient input amount")
	ErrExcessiveInputAmount        = errors.Register(ModuleName, 9, "excessive input amount")
	ErrInsufficientLiquidity       = errors.Register(ModuleName, 10, "insufficient liquidity in pair")
	ErrInsufficientAmount          = errors.Register(ModuleName, 11, "amount below caller minimum")
	ErrInvalidPath                 = errors.Register(ModuleName, 12, "invalid swap path")
	ErrExpired                     = errors.Register(ModuleName, 13, "deadline expired")
	ErrInvalidRecipient            = errors.Register(ModuleName, 14, "invalid recipient")
	ErrInvariantViolation          = errors.Register(ModuleName, 15, "constant product invariant violated")
	ErrUnauthorized                = errors.Register(ModuleName, 16, "unauthorized")
	ErrCallFailed                  = errors.Register(ModuleName, 17, "asset transfer call failed")
	ErrInsufficientShares          = errors.Register(ModuleName, 18, "insufficient liquidity shares")
	ErrInvalidAmount               = errors.Register(ModuleName, 19, "invalid amount")
	ErrInvalidAddress              = errors.Register(ModuleName, 20, "invalid address")
	ErrInvalidPairState            = errors.Register(ModuleName, 21, "invalid pair state")
)
