package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	darija "github.com/jamesainslie/go-darija"
)

var tokensJSON bool

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List the supported chat-alphabet tokens",
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "output tokens as JSON")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	entries := darija.Default().Entries()

	if tokensJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling tokens: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, e := range entries {
		cmd.Printf("%-4s -> %s\n", e.Token, e.Replacement)
	}
	return nil
}
