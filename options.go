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

package worddiff

import (
	"log/slog"

	"znkr.io/worddiff/internal/config"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// WordDiffThreshold sets the largest input, counted in tokens of the larger text, that is compared
// word by word. The default is 3000.
func WordDiffThreshold(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.WordDiffThreshold = n
		return config.WordDiffThreshold
	}
}

// LineDiffThreshold sets the largest input, counted in tokens of the larger text, that is compared
// at all. Inputs between [WordDiffThreshold] and this threshold are compared line by line first.
// The default is 10000.
func LineDiffThreshold(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.LineDiffThreshold = n
		return config.LineDiffThreshold
	}
}

// SyncCellLimit sets the number of table cells below which a word level diff is computed without
// yielding. The default is 100000.
func SyncCellLimit(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.SyncCellLimit = n
		return config.SyncCellLimit
	}
}

// InteriorCellLimit sets the number of table cells below which the lines that differ between the
// texts are compared word by word in a line based diff. Larger differences are reported as one
// removal and one addition. The default is 1000000.
func InteriorCellLimit(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.InteriorCellLimit = n
		return config.InteriorCellLimit
	}
}

// ChunkSize sets the number of table cells computed between two yields. The default is 5000.
func ChunkSize(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ChunkSize = n
		return config.ChunkSize
	}
}

// YieldFunc sets the function that's called at every suspension point of a large diff. The
// default is [runtime.Gosched].
func YieldFunc(yield func()) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Yield = yield
		return config.Yield
	}
}

// Logger sets the logger for diagnostic messages. All messages are logged at debug level. The
// default is [slog.Default].
func Logger(logger *slog.Logger) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Logger = logger
		return config.Logger
	}
}
