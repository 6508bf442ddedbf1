package rake

import "sort"

// RankedPhrase is one extracted phrase with its computed score.
type RankedPhrase struct {
	Text  string  // surface form of the first occurrence in the source text
	Score float64 // sum of the phrase's word scores
}

// rank deduplicates candidates, scores each distinct phrase, and returns
// every distinct phrase sorted by score descending. Ties keep
// first-occurrence order. Truncation to the requested length happens in the
// public entry points.
func (e *Extractor) rank(cands []candidate, scores map[string]float64) []RankedPhrase {
	seen := make(map[string]bool, len(cands))
	ranked := make([]RankedPhrase, 0, len(cands))

	for _, cand := range cands {
		if seen[cand.key] {
			// Duplicate occurrences never inflate the phrase score; the
			// first surface form wins.
			continue
		}
		seen[cand.key] = true

		if e.maxPhraseWords > 0 && len(cand.tokens) > e.maxPhraseWords {
			continue
		}

		var score float64
		for _, word := range cand.words {
			score += scores[word]
		}

		ranked = append(ranked, RankedPhrase{Text: cand.surface, Score: score})
	}

	// Stable sort preserves source order for equal scores
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}
