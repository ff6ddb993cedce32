package cli

import (
	"fmt"
	"strings"
	"time"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/swaps-chain/swaps/x/swap/types"
)

// GetTxCmd returns the transaction commands for the swap module
func GetTxCmd() *cobra.Command {
	swapTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Swap transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	swapTxCmd.AddCommand(
		CmdCreatePair(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwapExactIn(),
		CmdSwapExactOut(),
		CmdMakeLiquidity(),
		CmdMakeLiquidityDual(),
		CmdCleanUp(),
		CmdSetFeeTo(),
		CmdSetFeeToSetter(),
	)

	return swapTxCmd
}

func parseAmount(name, raw string) (math.Int, error) {
	amount, ok := math.NewIntFromString(raw)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, raw)
	}
	if !amount.IsPositive() {
		return math.Int{}, fmt.Errorf("%s must be positive", name)
	}
	return amount, nil
}

func parseMinAmount(name, raw string) (math.Int, error) {
	amount, ok := math.NewIntFromString(raw)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, raw)
	}
	if amount.IsNegative() {
		return math.Int{}, fmt.Errorf("%s cannot be negative", name)
	}
	return amount, nil
}

func deadlineFromFlags(cmd *cobra.Command) (int64, error) {
	window, err := cmd.Flags().GetInt64(FlagDeadline)
	if err != nil {
		return 0, err
	}
	if window <= 0 {
		return 0, fmt.Errorf("deadline window must be positive")
	}
	return time.Now().Unix() + window, nil
}

// CmdCreatePair returns a CLI command handler for registering a pair
func CmdCreatePair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pair [asset-a] [asset-b]",
		Short: "Register a new pair for two assets",
		Long: `Register a constant-product pair for two assets. The pair account
address is derived deterministically from the sorted asset denoms.

Example:
  $ swapsd tx swap create-pair uwswap uatom --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgCreatePair{
				Creator: clientCtx.GetFromAddress().String(),
				AssetA:  args[0],
				AssetB:  args[1],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for depositing liquidity
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [asset-a] [desired-a] [asset-b] [desired-b]",
		Short: "Deposit both assets into a pair and receive shares",
		Long: `Deposit up to the desired amounts of both assets at the current
reserve ratio. Creates the pair if it does not exist yet. Use --min-a and
--min-b to bound slippage on each side.

Example:
  $ swapsd tx swap add-liquidity uwswap 1000000 uatom 2000000 --min-a 990000 --min-b 1980000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			desiredA, err := parseAmount("desired-a", args[1])
			if err != nil {
				return err
			}
			desiredB, err := parseAmount("desired-b", args[3])
			if err != nil {
				return err
			}

			minARaw, _ := cmd.Flags().GetString(FlagMinA)
			minA, err := parseMinAmount("min-a", minARaw)
			if err != nil {
				return err
			}
			minBRaw, _ := cmd.Flags().GetString(FlagMinB)
			minB, err := parseMinAmount("min-b", minBRaw)
			if err != nil {
				return err
			}

			recipient, _ := cmd.Flags().GetString(FlagRecipient)
			deadline, err := deadlineFromFlags(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgAddLiquidity{
				Provider: clientCtx.GetFromAddress().String(),
				AssetA:   args[0],
				AssetB:   args[2],
				DesiredA: desiredA,
				DesiredB: desiredB,
				MinA:     minA,
				MinB:     minB,
				To:       recipient,
				Deadline: deadline,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMinA, "0", "Minimum accepted deposit of asset-a")
	cmd.Flags().String(FlagMinB, "0", "Minimum accepted deposit of asset-b")
	cmd.Flags().String(FlagRecipient, "", "Recipient of the minted shares (defaults to sender)")
	cmd.Flags().Int64(FlagDeadline, defaultDeadlineWindow, "Seconds until the transaction expires")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for withdrawing liquidity
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [asset-a] [asset-b] [shares]",
		Short: "Redeem shares of a pair for both underlying assets",
		Long: `Redeem liquidity shares for a pro-rata slice of both reserves.
Use --min-a and --min-b to bound slippage on each side.

Example:
  $ swapsd tx swap remove-liquidity uwswap uatom 500000 --min-a 400000 --min-b 800000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			shares, err := parseAmount("shares", args[2])
			if err != nil {
				return err
			}

			minARaw, _ := cmd.Flags().GetString(FlagMinA)
			minA, err := parseMinAmount("min-a", minARaw)
			if err != nil {
				return err
			}
			minBRaw, _ := cmd.Flags().GetString(FlagMinB)
			minB, err := parseMinAmount("min-b", minBRaw)
			if err != nil {
				return err
			}

			recipient, _ := cmd.Flags().GetString(FlagRecipient)
			deadline, err := deadlineFromFlags(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgRemoveLiquidity{
				Provider: clientCtx.GetFromAddress().String(),
				AssetA:   args[0],
				AssetB:   args[1],
				Shares:   shares,
				MinA:     minA,
				MinB:     minB,
				To:       recipient,
				Deadline: deadline,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMinA, "0", "Minimum accepted payout of asset-a")
	cmd.Flags().String(FlagMinB, "0", "Minimum accepted payout of asset-b")
	cmd.Flags().String(FlagRecipient, "", "Recipient of the withdrawn assets (defaults to sender)")
	cmd.Flags().Int64(FlagDeadline, defaultDeadlineWindow, "Seconds until the transaction expires")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapExactIn returns a CLI command handler for exact-input swaps
func CmdSwapExactIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-exact-in [amount-in] [path]",
		Short: "Swap an exact input along a comma-separated asset path",
		Long: `Swap an exact amount of the first path asset for as much of the
last path asset as the route yields. Fails if the output lands under
--min-amount-out.

Example:
  $ swapsd tx swap swap-exact-in 1000000 uwswap,uatom --min-amount-out 1900000 --from mykey
  $ swapsd tx swap swap-exact-in 1000000 uwswap,uatom,uusdc --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, err := parseAmount("amount-in", args[0])
			if err != nil {
				return err
			}

			minOutRaw, _ := cmd.Flags().GetString(FlagMinAmountOut)
			minOut, err := parseMinAmount("min-amount-out", minOutRaw)
			if err != nil {
				return err
			}

			recipient, _ := cmd.Flags().GetString(FlagRecipient)
			deadline, err := deadlineFromFlags(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgSwapExactIn{
				Trader:       clientCtx.GetFromAddress().String(),
				Path:         strings.Split(args[1], ","),
				AmountIn:     amountIn,
				MinAmountOut: minOut,
				To:           recipient,
				Deadline:     deadline,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMinAmountOut, "0", "Minimum accepted output amount")
	cmd.Flags().String(FlagRecipient, "", "Recipient of the output (defaults to sender)")
	cmd.Flags().Int64(FlagDeadline, defaultDeadlineWindow, "Seconds until the transaction expires")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapExactOut returns a CLI command handler for exact-output swaps
func CmdSwapExactOut() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-exact-out [amount-out] [max-amount-in] [path]",
		Short: "Buy an exact output along a comma-separated asset path",
		Long: `Swap as little of the first path asset as the route requires for
an exact amount of the last path asset. Fails if more than max-amount-in
would be needed.

Example:
  $ swapsd tx swap swap-exact-out 2000000 1100000 uwswap,uatom --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountOut, err := parseAmount("amount-out", args[0])
			if err != nil {
				return err
			}
			maxIn, err := parseAmount("max-amount-in", args[1])
			if err != nil {
				return err
			}

			recipient, _ := cmd.Flags().GetString(FlagRecipient)
			deadline, err := deadlineFromFlags(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgSwapExactOut{
				Trader:      clientCtx.GetFromAddress().String(),
				Path:        strings.Split(args[2], ","),
				AmountOut:   amountOut,
				MaxAmountIn: maxIn,
				To:          recipient,
				Deadline:    deadline,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagRecipient, "", "Recipient of the output (defaults to sender)")
	cmd.Flags().Int64(FlagDeadline, defaultDeadlineWindow, "Seconds until the transaction expires")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdMakeLiquidity returns a CLI command handler for single-sided native deposits
func CmdMakeLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make-liquidity [paired-asset] [amount-in]",
		Short: "Convert a native deposit into shares of the wrapped/asset pair",
		Long: `Wrap a native deposit, swap the optimal portion for the paired
asset, and deposit both sides as liquidity in one transaction. Rounding dust
accumulates in the maker account and can be swept with clean-up.

Example:
  $ swapsd tx swap make-liquidity uatom 1000000 --expected-out 1900000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, err := parseAmount("amount-in", args[1])
			if err != nil {
				return err
			}

			expectedRaw, _ := cmd.Flags().GetString(FlagExpectedOut)
			expectedOut, err := parseMinAmount("expected-out", expectedRaw)
			if err != nil {
				return err
			}
			minInRaw, _ := cmd.Flags().GetString(FlagMinLiquidityIn)
			minIn, err := parseMinAmount("min-liquidity-in", minInRaw)
			if err != nil {
				return err
			}
			minOutRaw, _ := cmd.Flags().GetString(FlagMinLiquidityOut)
			minOut, err := parseMinAmount("min-liquidity-out", minOutRaw)
			if err != nil {
				return err
			}

			deadline, err := deadlineFromFlags(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgMakeLiquidity{
				Depositor:         clientCtx.GetFromAddress().String(),
				PairedAsset:       args[0],
				AmountIn:          amountIn,
				ExpectedPairedOut: expectedOut,
				MinLiquidityIn:    minIn,
				MinLiquidityOut:   minOut,
				Deadline:          deadline,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagExpectedOut, "0", "Expected output of the swap leg (informational)")
	cmd.Flags().String(FlagMinLiquidityIn, "0", "Minimum input-side deposit")
	cmd.Flags().String(FlagMinLiquidityOut, "0", "Minimum paired-side deposit")
	cmd.Flags().Int64(FlagDeadline, defaultDeadlineWindow, "Seconds until the transaction expires")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdMakeLiquidityDual returns a CLI command handler for single-sided asset deposits
func CmdMakeLiquidityDual() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make-liquidity-dual [asset-in] [asset-out] [amount-in]",
		Short: "Convert a single-asset deposit into shares of an arbitrary pair",
		Long: `Pull a deposit of asset-in, swap the optimal portion for
asset-out, and deposit both sides as liquidity in one transaction.

Example:
  $ swapsd tx swap make-liquidity-dual uatom uusdc 1000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, err := parseAmount("amount-in", args[2])
			if err != nil {
				return err
			}

			expectedRaw, _ := cmd.Flags().GetString(FlagExpectedOut)
			expectedOut, err := parseMinAmount("expected-out", expectedRaw)
			if err != nil {
				return err
			}
			minInRaw, _ := cmd.Flags().GetString(FlagMinLiquidityIn)
			minIn, err := parseMinAmount("min-liquidity-in", minInRaw)
			if err != nil {
				return err
			}
			minOutRaw, _ := cmd.Flags().GetString(FlagMinLiquidityOut)
			minOut, err := parseMinAmount("min-liquidity-out", minOutRaw)
			if err != nil {
				return err
			}

			deadline, err := deadlineFromFlags(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgMakeLiquidityDual{
				Depositor:       clientCtx.GetFromAddress().String(),
				AssetIn:         args[0],
				AssetOut:        args[1],
				AmountIn:        amountIn,
				ExpectedOut:     expectedOut,
				MinLiquidityIn:  minIn,
				MinLiquidityOut: minOut,
				Deadline:        deadline,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagExpectedOut, "0", "Expected output of the swap leg (informational)")
	cmd.Flags().String(FlagMinLiquidityIn, "0", "Minimum input-side deposit")
	cmd.Flags().String(FlagMinLiquidityOut, "0", "Minimum paired-side deposit")
	cmd.Flags().Int64(FlagDeadline, defaultDeadlineWindow, "Seconds until the transaction expires")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCleanUp returns a CLI command handler for sweeping maker dust
func CmdCleanUp() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean-up [asset]",
		Short: "Sweep the maker account's balance in one asset to the sender",
		Long: `Sweep whatever dust the liquidity maker accumulated in the given
asset to the sender. The maker balance in that asset is exactly zero
afterwards.

Example:
  $ swapsd tx swap clean-up uatom --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgCleanUp{
				Caller: clientCtx.GetFromAddress().String(),
				Asset:  args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetFeeTo returns a CLI command handler for updating the fee recipient
func CmdSetFeeTo() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-fee-to [address]",
		Short: "Update the protocol fee recipient (fee setter only)",
		Long: `Update the protocol fee recipient. Pass an empty string to
disable protocol fee collection. Only the current fee setter may call this.

Example:
  $ swapsd tx swap set-fee-to swaps1... --from feesetter
  $ swapsd tx swap set-fee-to "" --from feesetter`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgSetFeeTo{
				Setter:   clientCtx.GetFromAddress().String(),
				NewFeeTo: args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetFeeToSetter returns a CLI command handler for transferring the fee setter role
func CmdSetFeeToSetter() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-fee-to-setter [address]",
		Short: "Transfer the fee setter role (fee setter only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgSetFeeToSetter{
				Setter:    clientCtx.GetFromAddress().String(),
				NewSetter: args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
