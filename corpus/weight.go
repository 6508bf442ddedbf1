package corpus

import "math"

// WeightFunc converts a corpus entry into a multiplicative word-score
// weight. Implementations must be monotonic: a rarer corpus word never
// receives a lower weight than a more common one.
type WeightFunc func(Entry) float64

// InverseLogWeight is the default WeightFunc. It dampens words that are
// common in the reference corpus:
//
//	weight = 1 / (1 + ln(1 + freq))
//
// The weight decreases strictly as corpus frequency grows, so rarer words
// always keep more of their raw score. Words absent from the corpus are
// not weighted at all (treated as maximally rare).
func InverseLogWeight(entry Entry) float64 {
	if entry.Freq <= 0 {
		return 1
	}
	return 1 / (1 + math.Log(1+entry.Freq))
}
