// diff runs one of the benchmarked implementations on an original and a cleaned text and reports
// which strategy worddiff would pick for the same pair.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/tools/txtar"
	"znkr.io/worddiff"
	"znkr.io/worddiff/internal/benchmarks"
)

type config struct {
	lib    string
	txtar  string
	quiet  bool
	inputs []string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "worddiff", "implementation to run, one of the benchmarked libraries")
	flag.StringVar(&cfg.txtar, "txtar", "", "read original and cleaned sections from a txtar archive")
	flag.BoolVar(&cfg.quiet, "q", false, "only print the report, not the diff")
	flag.Parse()
	cfg.inputs = flag.Args()

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, stdout, stderr io.Writer) error {
	lib, ok := lookup(cfg.lib)
	if !ok {
		return fmt.Errorf("unknown implementation %q", cfg.lib)
	}
	original, cleaned, err := readInputs(cfg)
	if err != nil {
		return err
	}

	out := lib.Diff(original, cleaned)
	if !cfg.quiet {
		if _, err := stdout.Write(out); err != nil {
			return err
		}
	}
	segs := worddiff.Diff(original, cleaned)
	fmt.Fprintf(stderr, "%s: %d edits\n", lib.Name, benchmarks.CountEdits(out))
	fmt.Fprintf(stderr, "worddiff: %v, %v\n", worddiff.SelectStrategy(original, cleaned), worddiff.Summarize(segs))
	return nil
}

func lookup(name string) (benchmarks.Impl, bool) {
	for _, impl := range benchmarks.Impls {
		if impl.Name == name {
			return impl, true
		}
	}
	return benchmarks.Impl{}, false
}

// readInputs returns the original and cleaned texts, either from the txtar archive or from the two
// files named on the command line.
func readInputs(cfg config) (original, cleaned string, err error) {
	if cfg.txtar == "" {
		if len(cfg.inputs) != 2 {
			return "", "", errors.New("usage: diff <original> <cleaned>")
		}
		x, err := os.ReadFile(cfg.inputs[0])
		if err != nil {
			return "", "", err
		}
		y, err := os.ReadFile(cfg.inputs[1])
		if err != nil {
			return "", "", err
		}
		return string(x), string(y), nil
	}

	if len(cfg.inputs) != 0 {
		return "", "", errors.New("usage: diff -txtar <file>")
	}
	ar, err := txtar.ParseFile(cfg.txtar)
	if err != nil {
		return "", "", fmt.Errorf("parsing %s: %w", cfg.txtar, err)
	}
	var found int
	for _, f := range ar.Files {
		switch f.Name {
		case "original":
			original = string(f.Data)
			found++
		case "cleaned":
			cleaned = string(f.Data)
			found++
		}
	}
	if found != 2 {
		return "", "", fmt.Errorf("%s: want original and cleaned sections", cfg.txtar)
	}
	return original, cleaned, nil
}
