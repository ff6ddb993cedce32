package cli

// Flag constants for swap CLI commands
const (
	// Liquidity flags
	FlagMinA      = "min-a"
	FlagMinB      = "min-b"
	FlagRecipient = "recipient"

	// Swap flags
	FlagMinAmountOut = "min-amount-out"
	FlagDeadline     = "deadline"

	// Maker flags
	FlagExpectedOut     = "expected-out"
	FlagMinLiquidityIn  = "min-liquidity-in"
	FlagMinLiquidityOut = "min-liquidity-out"
)

// defaultDeadlineWindow is the default validity window in seconds applied to
// deadline-guarded transactions built by the CLI.
const defaultDeadlineWindow int64 = 600
