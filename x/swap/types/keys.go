package types

const (
	// ModuleName defines the module name
	ModuleName = "swap"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_swap"

	// MakerName is the module account that holds liquidity-maker dust
	// between a make-liquidity call and a clean-up sweep.
	MakerName = "swapmaker"

	// WrapName is the module account escrowing native units backing the
	// wrapped-native denom.
	WrapName = "swapwrap"
)

// MinimumLiquidity is the share amount permanently locked on the first mint
// of every pair. Locking it pins the share price away from zero so the first
// depositor cannot manipulate the ratio against later depositors.
const MinimumLiquidity int64 = 1000
