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


package corpus

import "strings"

// Entry describes one word of a reference frequency corpus.
type Entry struct {
	Rank int     // 1 = most frequent word in the corpus
	Freq float64 // raw occurrence count in the corpus
}

// Corpus maps normalized words to their reference frequency entries.
// Implementations must be safe for concurrent reads after construction.
type Corpus interface {
	// Lookup returns the entry for word and whether the word is present.
	// Matching is case-insensitive.
	Lookup(word string) (Entry, bool)
}

// Map is an in-memory Corpus backed by a plain map.
type Map map[string]Entry

var _ Corpus = Map(nil)

// Lookup implements Corpus.
func (m Map) Lookup(word string) (Entry, bool) {
	entry, ok := m[strings.ToLower(word)]
	return entry, ok
}
