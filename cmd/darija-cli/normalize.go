package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"

	darija "github.com/jamesainslie/go-darija"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [text...]",
	Short: "Apply the chat-alphabet substitution table",
	Long: `Rewrites chat-alphabet tokens (sh, d7, 3, 7, 9, ...) into Arabic
script. No model files are needed. With no arguments, reads lines from
standard input.`,
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		cmd.Println(darija.Normalize(strings.Join(args, " ")))
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		cmd.Println(darija.Normalize(scanner.Text()))
	}
	return scanner.Err()
}
