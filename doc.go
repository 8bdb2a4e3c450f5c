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

// Package worddiff computes word level differences between an original text and a cleaned up
// version of it, for example the output of a text extraction and the same text after manual or
// automated cleanup.
//
// Texts are split into tokens, maximal runs of whitespace and non-whitespace characters. Tokens
// are compared after removing invisible characters (soft hyphens, zero-width spaces, byte order
// marks and control characters), so a cleanup that only removes those doesn't show up as a change.
// The result is a sequence of [Segment] values that reproduces the cleaned text when the removed
// segments are dropped.
//
// The comparison uses a longest common subsequence table and is quadratic in the number of tokens.
// [Diff] and [DiffAsync] bound the cost by picking one of three strategies based on input size:
// a word level diff of the complete texts, a line based diff that only compares the changed lines
// word by word, or no diff at all. [SelectStrategy] reports which strategy will be used. [DiffSync]
// always runs the word level diff and must only be used for small inputs.
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
package worddiff
