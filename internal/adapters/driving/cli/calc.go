package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/primer/internal/core/domain"
	"github.com/custodia-labs/primer/internal/core/services"
	"github.com/custodia-labs/primer/internal/logger"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run arithmetic operations",
	Long: `Run a single arithmetic operation and print the result.

Integer operations wrap on overflow. Division accepts fractional
operands and fails when the divisor is zero. Pass negative numbers
after "--", for example: primer calc add -- -3 4`,
}

var calcAddCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Add two integers",
	Args:  cobra.ExactArgs(2),
	RunE:  runBinary(func(a, b int) int { return calculatorService.Add(a, b) }),
}

var calcSubCmd = &cobra.Command{
	Use:   "sub <a> <b>",
	Short: "Subtract b from a",
	Args:  cobra.ExactArgs(2),
	RunE:  runBinary(func(a, b int) int { return calculatorService.Subtract(a, b) }),
}

var calcMulCmd = &cobra.Command{
	Use:   "mul <a> <b>",
	Short: "Multiply two integers",
	Args:  cobra.ExactArgs(2),
	RunE:  runBinary(func(a, b int) int { return calculatorService.Multiply(a, b) }),
}

var calcDivCmd = &cobra.Command{
	Use:   "div <a> <b>",
	Short: "Divide a by b",
	Args:  cobra.ExactArgs(2),
	RunE:  runCalcDiv,
}

var calcSumCmd = &cobra.Command{
	Use:   "sum <n>...",
	Short: "Sum integers",
	RunE:  runCalcSum,
}

var calcMaxCmd = &cobra.Command{
	Use:   "max <n>...",
	Short: "Print the largest integer",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCalcMax,
}

var calcEvalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate \"<a> <op> <b>\"",
	Long: `Evaluate an expression of the form "<a> <op> <b>".

Operators: + - * x /`,
	Example: `  primer calc eval "10 / 4"`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runCalcEval,
}

func init() {
	calcCmd.AddCommand(calcAddCmd)
	calcCmd.AddCommand(calcSubCmd)
	calcCmd.AddCommand(calcMulCmd)
	calcCmd.AddCommand(calcDivCmd)
	calcCmd.AddCommand(calcSumCmd)
	calcCmd.AddCommand(calcMaxCmd)
	calcCmd.AddCommand(calcEvalCmd)
	rootCmd.AddCommand(calcCmd)
}

var errCalculatorNotConfigured = errors.New("calculator service not configured")

func runBinary(op func(a, b int) int) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if calculatorService == nil {
			return errCalculatorNotConfigured
		}
		a, err := services.ParseInt(args[0])
		if err != nil {
			return err
		}
		b, err := services.ParseInt(args[1])
		if err != nil {
			return err
		}
		logger.Debug("%s %d %d", cmd.Name(), a, b)
		cmd.Println(op(a, b))
		return nil
	}
}

func runCalcDiv(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errCalculatorNotConfigured
	}
	a, err := services.ParseFloat(args[0])
	if err != nil {
		return err
	}
	b, err := services.ParseFloat(args[1])
	if err != nil {
		return err
	}

	quotient, err := calculatorService.Divide(a, b)
	if err != nil {
		return err
	}
	cmd.Println(domain.FormatNumber(quotient, precision()))
	return nil
}

func runCalcSum(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errCalculatorNotConfigured
	}
	nums, err := services.ParseInts(args)
	if err != nil {
		return err
	}
	cmd.Println(calculatorService.Sum(nums))
	return nil
}

func runCalcMax(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errCalculatorNotConfigured
	}
	nums, err := services.ParseInts(args)
	if err != nil {
		return err
	}
	largest, err := calculatorService.Max(nums)
	if err != nil {
		return err
	}
	cmd.Println(largest)
	return nil
}

func runCalcEval(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errCalculatorNotConfigured
	}
	expr := joinArgs(args)
	result, err := calculatorService.Evaluate(expr)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	cmd.Println(domain.FormatNumber(result, precision()))
	return nil
}

// precision returns the configured number precision.
func precision() int {
	return loadSettings().Output.Precision
}
