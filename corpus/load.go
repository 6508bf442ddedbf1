package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// jsonEntry mirrors the on-disk JSON shape: {"word": {"rank": 1, "freq": 22038615}}.
type jsonEntry struct {
	Rank int     `json:"rank"`
	Freq float64 `json:"freq"`
}

// LoadJSON reads a corpus from r in the word -> {rank, freq} JSON format.
func LoadJSON(r io.Reader) (Map, error) {
	var raw map[string]jsonEntry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrEmptyCorpus
	}

	m := make(Map, len(raw))
	for word, entry := range raw {
		m[strings.ToLower(word)] = Entry{Rank: entry.Rank, Freq: entry.Freq}
	}
	return m, nil
}

// LoadDelimited reads a corpus from r, one "word<sep>frequency" row per line.
// Blank lines are skipped. Ranks are assigned by descending frequency after
// all rows are read.
func LoadDelimited(r io.Reader, sep string) (Map, error) {
	m := make(Map)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, sep, 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected word%sfrequency", ErrMalformedRow, lineNo, sep)
		}

		word := strings.ToLower(strings.TrimSpace(parts[0]))
		freq, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, lineNo, err)
		}
		if word == "" {
			return nil, fmt.Errorf("%w: line %d: empty word", ErrMalformedRow, lineNo)
		}

		m[word] = Entry{Freq: freq}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(m) == 0 {
		return nil, ErrEmptyCorpus
	}

	// Assign ranks by descending frequency
	words := make([]string, 0, len(m))
	for word := range m {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if m[words[i]].Freq != m[words[j]].Freq {
			return m[words[i]].Freq > m[words[j]].Freq
		}
		return words[i] < words[j]
	})
	for i, word := range words {
		entry := m[word]
		entry.Rank = i + 1
		m[word] = entry
	}

	return m, nil
}
