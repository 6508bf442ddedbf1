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


package stoplist

import (
	"bufio"
	"io"
	"strings"
)

// StopList is an immutable, case-normalized set of phrase-boundary words.
// A StopList is safe for concurrent use once constructed.
type StopList struct {
	words map[string]bool
}

// New creates a StopList from the given words.
// Words are lowercased; empty strings are ignored.
func New(words ...string) (*StopList, error) {
	set := make(map[string]bool, len(words))
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		set[word] = true
	}

	if len(set) == 0 {
		return nil, ErrEmptyStopList
	}

	return &StopList{words: set}, nil
}

// Parse reads a stop list from r, one word per line.
// Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) (*StopList, error) {
	set := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(set) == 0 {
		return nil, ErrEmptyStopList
	}

	return &StopList{words: set}, nil
}

// Default returns a StopList built from the embedded English stop words.
func Default() *StopList {
	set := make(map[string]bool, len(englishWords))
	for _, word := range englishWords {
		set[word] = true
	}
	return &StopList{words: set}
}

// Contains reports whether word is a stop word. Matching is case-insensitive.
func (s *StopList) Contains(word string) bool {
	return s.words[strings.ToLower(word)]
}

// Len returns the number of words in the list.
func (s *StopList) Len() int {
	return len(s.words)
}
