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

// Package settings reads comparison options for the developer tools from a TOML file.
package settings

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"znkr.io/worddiff"
)

// Settings mirrors the options of package worddiff. Zero values keep the default.
type Settings struct {
	WordDiffThreshold int `toml:"word_diff_threshold"`
	LineDiffThreshold int `toml:"line_diff_threshold"`
	SyncCellLimit     int `toml:"sync_cell_limit"`
	InteriorCellLimit int `toml:"interior_cell_limit"`
	ChunkSize         int `toml:"chunk_size"`
}

// Load reads settings from the TOML file at path. An empty path returns the zero settings.
func Load(path string) (Settings, error) {
	var s Settings
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("decoding %s: unknown keys %v", path, undecoded)
	}
	return s, nil
}

// Options returns the options for all non-zero settings.
func (s Settings) Options() []worddiff.Option {
	var opts []worddiff.Option
	if s.WordDiffThreshold != 0 {
		opts = append(opts, worddiff.WordDiffThreshold(s.WordDiffThreshold))
	}
	if s.LineDiffThreshold != 0 {
		opts = append(opts, worddiff.LineDiffThreshold(s.LineDiffThreshold))
	}
	if s.SyncCellLimit != 0 {
		opts = append(opts, worddiff.SyncCellLimit(s.SyncCellLimit))
	}
	if s.InteriorCellLimit != 0 {
		opts = append(opts, worddiff.InteriorCellLimit(s.InteriorCellLimit))
	}
	if s.ChunkSize != 0 {
		opts = append(opts, worddiff.ChunkSize(s.ChunkSize))
	}
	return opts
}
