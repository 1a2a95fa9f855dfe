//go:build ignore

// Process raw Arabizi line files into the bench corpus format: a commented
// header followed by tab-separated raw/expected pairs, where the expected
// column is produced by the current substitution table.
// Usage: go run ./scripts/process-corpus.go -in raw/ -out testdata/corpus/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	darija "github.com/jamesainslie/go-darija"
)

func main() {
	var (
		inDir   = flag.String("in", "raw", "directory of raw .txt line files")
		outDir  = flag.String("out", "testdata/corpus", "output directory for .tsv files")
		source  = flag.String("source", "manual", "Source header value")
		dialect = flag.String("dialect", "Moroccan Darija", "Dialect header value")
	)
	flag.Parse()

	paths, err := filepath.Glob(filepath.Join(*inDir, "*.txt"))
	if err != nil || len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "no input files in %s\n", *inDir)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "creating %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	for _, path := range paths {
		if err := process(path, *outDir, *source, *dialect); err != nil {
			fmt.Fprintf(os.Stderr, "processing %s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

func process(path, outDir, source, dialect string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	name := strings.TrimSuffix(filepath.Base(path), ".txt")
	out, err := os.Create(filepath.Join(outDir, name+".tsv"))
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# Source: %s\n", source)
	fmt.Fprintf(w, "# Dialect: %s\n", dialect)
	fmt.Fprintf(w, "# Title: %s\n\n", name)

	lines := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", raw, darija.Normalize(raw))
		lines++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("%s: %d pairs\n", name, lines)
	return w.Flush()
}
