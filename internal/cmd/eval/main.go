// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// eval validates the diffing algorithm on a corpus of text files.
//
// Every file is treated as the cleaned version of a text. The original is synthesized by adding
// the kind of damage text extraction causes: invisible characters, doubled spaces, hyphenated
// words and typos. Both are compared with every strategy and the result is checked to reconstruct
// both texts.
package main

import (
	"bufio"
	"context"
	"crypto/sha256"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"znkr.io/worddiff"
	"znkr.io/worddiff/internal/cmd/internal/settings"
	"znkr.io/worddiff/internal/normalize"
	"znkr.io/worddiff/internal/tokens"
)

type config struct {
	dir      string
	config   string
	parallel int
	seed     uint64
	stats    string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.dir, "dir", "", "directory with text files to use for evaluation")
	flag.StringVar(&cfg.config, "config", "", "TOML file with comparison settings for the default variant")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.Uint64Var(&cfg.seed, "seed", 0, "seed for the synthesized damage")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	if err := run(context.Background(), &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type result struct {
	file           string
	variant        string
	N, M           int // tokens in original and cleaned
	changes        int
	duration       time.Duration
	validationErrs int
}

var errValidation = errors.New("validation failed")

func run(ctx context.Context, cfg *config) error {
	if cfg.dir == "" {
		return errors.New("missing -dir")
	}
	s, err := settings.Load(cfg.config)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	variants := map[string][]worddiff.Option{
		"default":     s.Options(),
		"line":        {worddiff.WordDiffThreshold(1)},
		"line-blocks": {worddiff.WordDiffThreshold(1), worddiff.InteriorCellLimit(1)},
	}

	var files []string
	err = filepath.WalkDir(cfg.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && (strings.HasSuffix(path, ".txt") || strings.HasSuffix(path, ".md")) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", cfg.dir, err)
	}

	var mu sync.Mutex
	var results []result
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.parallel))
	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}
			if !utf8.Valid(data) {
				return nil
			}
			rs := evaluate(file, string(data), cfg.seed, variants)
			mu.Lock()
			results = append(results, rs...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slices.SortFunc(results, func(a, b result) int {
		if c := strings.Compare(a.file, b.file); c != 0 {
			return c
		}
		return strings.Compare(a.variant, b.variant)
	})
	if cfg.stats != "" {
		if err := writeStats(cfg.stats, results); err != nil {
			return err
		}
	}

	failed := 0
	for _, r := range results {
		if r.validationErrs > 0 {
			failed++
		}
	}
	fmt.Printf("%d files, %d evaluations, %d failed\n", len(files), len(results), failed)
	if failed > 0 {
		return errValidation
	}
	return nil
}

// evaluate compares a damaged version of cleaned with cleaned using all variants.
func evaluate(file, cleaned string, seed uint64, variants map[string][]worddiff.Option) []result {
	key := sha256.Sum256(fmt.Appendf(nil, "%d:%s", seed, file))
	original := damage(rand.New(rand.NewChaCha8(key)), cleaned)
	N, M := tokens.Count(original), tokens.Count(cleaned)

	var results []result
	for variant, opts := range variants {
		start := time.Now()
		segs := worddiff.Diff(original, cleaned, opts...)
		r := result{
			file:     file,
			variant:  variant,
			N:        N,
			M:        M,
			changes:  worddiff.CountChanges(segs),
			duration: time.Since(start),
		}
		for _, err := range validate(original, cleaned, segs) {
			fmt.Printf("%s (%s): %v\n", file, variant, err)
			r.validationErrs++
		}
		results = append(results, r)
	}
	return results
}

// damage returns s with artifacts added to random words.
func damage(rng *rand.Rand, s string) string {
	toks := tokens.Split(s)
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/8)
	for _, tok := range toks {
		switch {
		case tok == " " && rng.IntN(20) == 0:
			sb.WriteString("  ")
		case isSpace(tok) || utf8.RuneCountInString(tok) < 6 || rng.IntN(5) != 0:
			sb.WriteString(tok)
		default:
			// Split on a rune boundary in the middle of the word.
			mid := len(tok) / 2
			for mid < len(tok) && !utf8.RuneStart(tok[mid]) {
				mid++
			}
			switch rng.IntN(4) {
			case 0:
				sb.WriteString(tok[:mid] + "\u00ad" + tok[mid:])
			case 1:
				sb.WriteString(tok[:mid] + "\u200b" + tok[mid:])
			case 2:
				sb.WriteString(tok[:mid] + "-\n" + tok[mid:])
			default:
				sb.WriteString(tok[mid:] + tok[:mid])
			}
		}
	}
	return sb.String()
}

func isSpace(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return tokens.IsSpace(r)
}

// validate checks that segs is a well formed diff between original and cleaned.
func validate(original, cleaned string, segs []worddiff.Segment) []error {
	var errs []error
	if got := worddiff.Cleaned(segs); got != cleaned {
		errs = append(errs, fmt.Errorf("cleaned text isn't reconstructed, got %d bytes, want %d", len(got), len(cleaned)))
	}
	noDiff := len(segs) == 1 && segs[0].Kind == worddiff.Unchanged && original != cleaned
	if !noDiff {
		if got, want := normalize.String(worddiff.Original(segs)), normalize.String(original); got != want {
			errs = append(errs, fmt.Errorf("original text isn't reconstructed, got %d bytes, want %d", len(got), len(want)))
		}
	}
	for i, s := range segs {
		if s.Text == "" {
			errs = append(errs, fmt.Errorf("segment %d is empty", i))
		}
		if i > 0 && s.Kind != worddiff.Unchanged && s.Kind == segs[i-1].Kind {
			errs = append(errs, fmt.Errorf("segments %d and %d are both %v", i-1, i, s.Kind))
		}
	}
	return errs
}

func writeStats(path string, results []result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating stats file: %w", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	w.WriteString("file,variant,N,M,changes,duration_ns,validation_errors\n")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%s,%d,%d,%d,%d,%d\n", r.file, r.variant, r.N, r.M, r.changes, r.duration.Nanoseconds(), r.validationErrs)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return f.Close()
}
