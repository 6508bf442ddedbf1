// Copyright 2025 Poiesic Systems
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


// Package rake implements Rapid Automatic Keyword Extraction, an
// unsupervised, corpus-free heuristic for pulling keyword phrases out of a
// block of text.
//
// Extraction is a three-stage pipeline:
//   - the text is split into candidate phrases at stop words and punctuation
//   - each distinct word is scored by its co-occurrence degree over frequency
//   - each candidate phrase is scored as the sum of its word scores, then
//     deduplicated, ranked, and truncated
//
// An Extractor holds only immutable configuration (the stop list and an
// optional reference corpus), so a single instance may be shared by
// concurrent callers.
package rake
