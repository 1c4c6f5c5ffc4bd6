package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Run text utilities",
	Long: `Run a text utility on the given words.

Arguments are joined with a single space before processing.`,
}

var textReverseCmd = &cobra.Command{
	Use:   "reverse <text>...",
	Short: "Reverse text by character",
	RunE:  runText(func(cmd *cobra.Command, s string) { cmd.Println(textService.Reverse(s)) }),
}

var textPalindromeCmd = &cobra.Command{
	Use:   "palindrome <text>...",
	Short: "Report whether text is a palindrome",
	Long: `Report whether text reads the same backwards.

Only letters and digits are compared, ignoring case.`,
	RunE: runText(func(cmd *cobra.Command, s string) { cmd.Println(textService.IsPalindrome(s)) }),
}

var textWordsCmd = &cobra.Command{
	Use:   "words <text>...",
	Short: "Count whitespace-separated words",
	RunE:  runText(func(cmd *cobra.Command, s string) { cmd.Println(textService.WordCount(s)) }),
}

var textAnalyseCmd = &cobra.Command{
	Use:     "analyse <text>...",
	Aliases: []string{"analyze"},
	Short:   "Print every text statistic",
	RunE:    runText(printAnalysis),
}

func init() {
	textCmd.AddCommand(textReverseCmd)
	textCmd.AddCommand(textPalindromeCmd)
	textCmd.AddCommand(textWordsCmd)
	textCmd.AddCommand(textAnalyseCmd)
	rootCmd.AddCommand(textCmd)
}

func runText(fn func(*cobra.Command, string)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if textService == nil {
			return errors.New("text service not configured")
		}
		fn(cmd, joinArgs(args))
		return nil
	}
}

func printAnalysis(cmd *cobra.Command, s string) {
	stats := textService.Analyse(s)
	cmd.Printf("Original: %s\n", stats.Original)
	cmd.Printf("Uppercase: %s\n", stats.Upper)
	cmd.Printf("Length: %d\n", stats.Length)
	cmd.Printf("Reversed: %s\n", stats.Reversed)
	cmd.Printf("Palindrome: %t\n", stats.Palindrome)
	cmd.Printf("Words: %d\n", stats.Words)
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
