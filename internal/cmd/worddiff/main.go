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

// worddiff prints an inline word diff of two text files.
//
//	worddiff [flags] original cleaned
//
// Removed text is struck through, added text is highlighted. Comparison options can be set in a
// TOML file passed with -config, see package settings for the keys.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"znkr.io/worddiff"
	"znkr.io/worddiff/internal/cmd/internal/settings"
)

type config struct {
	config  string
	color   bool
	summary bool
	verbose bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.config, "config", "", "TOML file with comparison settings")
	flag.BoolVar(&cfg.color, "color", false, "force colored output even if stdout isn't a terminal")
	flag.BoolVar(&cfg.summary, "summary", false, "print a summary of the changes after the diff")
	flag.BoolVar(&cfg.verbose, "v", false, "log diagnostic messages to stderr")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: worddiff [flags] original cleaned\n")
		os.Exit(2)
	}

	if err := run(&cfg, flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config, originalFile, cleanedFile string) error {
	s, err := settings.Load(cfg.config)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	original, err := os.ReadFile(originalFile)
	if err != nil {
		return fmt.Errorf("reading original: %w", err)
	}
	cleaned, err := os.ReadFile(cleanedFile)
	if err != nil {
		return fmt.Errorf("reading cleaned: %w", err)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	opts := append(s.Options(), worddiff.Logger(logger))

	strategy := worddiff.SelectStrategy(string(original), string(cleaned), s.Options()...)
	if strategy == worddiff.NoDiff {
		logger.Warn("inputs are too large to compare, showing the cleaned text only")
	}
	segs := <-worddiff.DiffAsync(string(original), string(cleaned), opts...)

	r := lipgloss.NewRenderer(os.Stdout)
	if cfg.color {
		r.SetColorProfile(termenv.TrueColor)
	}
	st := newStyles(r)
	if err := render(os.Stdout, segs, st); err != nil {
		return fmt.Errorf("writing diff: %w", err)
	}
	if cfg.summary {
		if _, err := fmt.Fprintln(os.Stdout, st.summary(worddiff.Summarize(segs), strategy)); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	return nil
}
