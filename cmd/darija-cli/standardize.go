package main

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	darija "github.com/jamesainslie/go-darija"
)

var (
	modelPath string
	vocabPath string
)

var standardizeCmd = &cobra.Command{
	Use:   "standardize [text...]",
	Short: "Normalize text and run it through the standardization model",
	Long: `Normalizes chat-alphabet text and passes it through the seq2seq
ONNX model to produce standardized Arabic. Model and vocabulary paths come
from flags or from the config file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStandardize,
}

func init() {
	standardizeCmd.Flags().StringVar(&modelPath, "model", "", "path to ONNX model file")
	standardizeCmd.Flags().StringVar(&vocabPath, "vocab", "", "path to JSON vocabulary file")
	rootCmd.AddCommand(standardizeCmd)
}

func runStandardize(cmd *cobra.Command, args []string) error {
	model := modelPath
	if model == "" {
		model = cfg.Model
	}
	vocab := vocabPath
	if vocab == "" {
		vocab = cfg.Vocab
	}
	if model == "" || vocab == "" {
		return errors.New("model and vocab are required (flags or config file)")
	}

	var opts []darija.Option
	if cfg.PoolSize > 0 {
		opts = append(opts, darija.WithPoolSize(cfg.PoolSize))
	}

	p, err := darija.New(model, vocab, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }() // Cleanup error ignored in CLI

	out, err := p.Standardize(context.Background(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	cmd.Println(out)
	return nil
}
