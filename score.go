package rake

// wordScores builds the word score table for a candidate list.
//
// The first pass tallies, per distinct word, its total frequency and its
// co-occurrence degree (phrase length minus one, summed over every phrase
// containing the word). The second pass computes
//
//	score(word) = (degree(word) + frequency(word)) / frequency(word)
//
// so that words appearing in longer phrases score higher than words of the
// same frequency appearing alone. Every word present in any candidate gets
// exactly one entry; frequency is at least 1 by construction.
//
// When a reference corpus is configured, the raw score is multiplied by the
// corpus weight of the word. Words absent from the corpus are left
// unweighted.
func (e *Extractor) wordScores(cands []candidate) map[string]float64 {
	frequency := make(map[string]int)
	degree := make(map[string]int)

	for _, cand := range cands {
		coocc := len(cand.words) - 1
		for _, word := range cand.words {
			frequency[word]++
			degree[word] += coocc
		}
	}

	scores := make(map[string]float64, len(frequency))
	for word, freq := range frequency {
		score := float64(degree[word]+freq) / float64(freq)

		if e.corpus != nil {
			if entry, ok := e.corpus.Lookup(word); ok {
				score *= e.weigh(entry)
			}
		}

		scores[word] = score
	}

	return scores
}
