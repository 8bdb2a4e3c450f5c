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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// worddiff.Option.
package config

import (
	"log/slog"
	"runtime"
)

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Inputs with at most this many tokens (on the larger side) get a full word level diff.
	WordDiffThreshold int

	// Inputs with at most this many tokens (on the larger side) get a line based diff. Anything
	// larger isn't diffed at all.
	LineDiffThreshold int

	// Word level diffs whose table has fewer cells than this are computed without yielding.
	SyncCellLimit int

	// The line based diff only runs a word level diff on the changed interior if its table has
	// fewer cells than this.
	InteriorCellLimit int

	// Number of table cells computed between two calls to Yield.
	ChunkSize int

	// Yield is called at every suspension point.
	Yield func()

	// Logger receives diagnostic messages.
	Logger *slog.Logger
}

// Default is the default configuration.
var Default = Config{
	WordDiffThreshold: 3_000,
	LineDiffThreshold: 10_000,
	SyncCellLimit:     100_000,
	InteriorCellLimit: 1_000_000,
	ChunkSize:         5_000,
	Yield:             runtime.Gosched,
	Logger:            nil, // resolved to slog.Default() in FromOptions
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by an entry point.
type Flag int

const (
	WordDiffThreshold Flag = 1 << iota
	LineDiffThreshold
	SyncCellLimit
	InteriorCellLimit
	ChunkSize
	Yield
	Logger

	// Thresholds are all flags that control tier selection.
	Thresholds = WordDiffThreshold | LineDiffThreshold | SyncCellLimit | InteriorCellLimit

	// All flags.
	All = Thresholds | ChunkSize | Yield | Logger
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.WordDiffThreshold <= 0 || cfg.SyncCellLimit <= 0 || cfg.InteriorCellLimit <= 0 {
		panic("worddiff: thresholds and cell limits must be positive")
	}
	if cfg.WordDiffThreshold > cfg.LineDiffThreshold {
		panic("worddiff.WordDiffThreshold must not exceed worddiff.LineDiffThreshold")
	}
	if cfg.Yield == nil {
		cfg.Yield = func() {}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case WordDiffThreshold:
		return "worddiff.WordDiffThreshold"
	case LineDiffThreshold:
		return "worddiff.LineDiffThreshold"
	case SyncCellLimit:
		return "worddiff.SyncCellLimit"
	case InteriorCellLimit:
		return "worddiff.InteriorCellLimit"
	case ChunkSize:
		return "worddiff.ChunkSize"
	case Yield:
		return "worddiff.YieldFunc"
	case Logger:
		return "worddiff.Logger"
	default:
		panic("never reached")
	}
}
