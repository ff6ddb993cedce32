package cli

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"

	"github.com/swaps-chain/swaps/x/swap/types"
)

// GetQueryCmd returns the cli query commands for the swap module. All
// commands here are pure derivations over the pricing formulas and the pair
// address scheme, so they run without a node connection.
func GetQueryCmd() *cobra.Command {
	swapQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the swap module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	swapQueryCmd.AddCommand(
		GetCmdPairAddress(),
		GetCmdAmountOut(),
		GetCmdAmountIn(),
		GetCmdOptimalSwapIn(),
	)

	return swapQueryCmd
}

// GetCmdPairAddress returns the command deriving a pair's account address
func GetCmdPairAddress() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair-address [asset-a] [asset-b]",
		Short: "Derive the deterministic account address of a pair",
		Long: `Derive the account address the pair for two assets lives at.
The derivation is a pure function of the sorted asset denoms, so the result
is valid whether or not the pair has been created yet.

Example:
  $ swapsd query swap pair-address uwswap uatom`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == args[1] {
				return fmt.Errorf("assets must be different")
			}
			addr := sdk.AccAddress(types.PairAddress(args[0], args[1]))
			cmd.Println(addr.String())
			return nil
		},
	}

	return cmd
}

// GetCmdAmountOut returns the command computing an exact-input quote
func GetCmdAmountOut() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amount-out [amount-in] [reserve-in] [reserve-out]",
		Short: "Compute the output of an exact-input swap at given reserves",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amountIn, err := parseAmount("amount-in", args[0])
			if err != nil {
				return err
			}
			reserveIn, err := parseAmount("reserve-in", args[1])
			if err != nil {
				return err
			}
			reserveOut, err := parseAmount("reserve-out", args[2])
			if err != nil {
				return err
			}

			out, err := types.GetAmountOut(amountIn, reserveIn, reserveOut)
			if err != nil {
				return err
			}
			cmd.Println(out.String())
			return nil
		},
	}

	return cmd
}

// GetCmdAmountIn returns the command computing an exact-output quote
func GetCmdAmountIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amount-in [amount-out] [reserve-in] [reserve-out]",
		Short: "Compute the input needed for an exact-output swap at given reserves",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amountOut, err := parseAmount("amount-out", args[0])
			if err != nil {
				return err
			}
			reserveIn, err := parseAmount("reserve-in", args[1])
			if err != nil {
				return err
			}
			reserveOut, err := parseAmount("reserve-out", args[2])
			if err != nil {
				return err
			}

			in, err := types.GetAmountIn(amountOut, reserveIn, reserveOut)
			if err != nil {
				return err
			}
			cmd.Println(in.String())
			return nil
		},
	}

	return cmd
}

// GetCmdOptimalSwapIn returns the command sizing a single-sided deposit's swap leg
func GetCmdOptimalSwapIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimal-swap-in [amount-in] [reserve-in]",
		Short: "Compute the swap portion of a single-sided liquidity deposit",
		Long: `Compute how much of a single-sided deposit should be swapped so
that the remainder matches the post-swap reserve ratio, leaving no dust
beyond rounding.

Example:
  $ swapsd query swap optimal-swap-in 1000000 50000000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amountIn, err := parseAmount("amount-in", args[0])
			if err != nil {
				return err
			}
			reserveIn, err := parseAmount("reserve-in", args[1])
			if err != nil {
				return err
			}

			swapIn, err := types.OptimalSwapIn(amountIn, reserveIn)
			if err != nil {
				return err
			}
			cmd.Println(swapIn.String())
			return nil
		},
	}

	return cmd
}
