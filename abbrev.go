package rake

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// abbreviationDamping scales down abbreviation-expansion scores so they
// compete fairly with regular multi-word candidates.
const abbreviationDamping = 3.3

// maxAbbreviationLen is the longest parenthesized token treated as an
// abbreviation.
const maxAbbreviationLen = 6

var parenPattern = regexp.MustCompile(`\(([^)]*)\)`)

var abbrevWordPattern = regexp.MustCompile(`[\w-]+`)

// Abbreviations finds parenthesized abbreviations whose letters line up
// with the initials of the words immediately preceding them, e.g.
// "rapid automatic keyword extraction (RAKE)". Returns a map from
// abbreviation to its expanded phrase; the first expansion seen wins.
func (e *Extractor) Abbreviations(text string) map[string]string {
	text = strings.ReplaceAll(text, "\n", " ")
	abbrevs := make(map[string]string)

	for _, sentence := range splitAbbrevSentences(text) {
		sentence = strings.TrimSpace(sentence)

		match := parenPattern.FindStringSubmatch(sentence)
		if match == nil {
			continue
		}
		abbr := match[1]

		// Abbreviations are short, spaceless, and fully uppercase
		if strings.Contains(abbr, " ") || !isUpperToken(abbr) ||
			len(abbr) > maxAbbreviationLen {
			continue
		}

		words := abbrevWordPattern.FindAllString(sentence, -1)
		index := -1
		for i, word := range words {
			if word == abbr {
				index = i
				break
			}
		}
		if index < 1 {
			continue
		}

		fields := strings.Fields(sentence)
		if index > len(fields) {
			continue
		}

		// Hyphens and slashes inside the preceding words stand for letters
		// of the abbreviation, so they shorten the word window.
		prefix := strings.Join(fields[:index-1], " ")
		length := len(abbr) - strings.Count(prefix, "-") - strings.Count(prefix, "/")

		if length > index {
			continue
		}
		if i := strings.Index(abbr, "-"); i >= 0 {
			length = i
		}
		if index-length < 0 {
			continue
		}

		expansionWords := fields[index-length : index]
		expansion := strings.TrimSpace(dropArticles(strings.Join(expansionWords, " ")))

		if length > len(splitSpaceHyphen(expansion))+1 {
			continue
		}
		if len(abbr) > len(expansionWords)+strings.Count(strings.Join(expansionWords, " "), "-") {
			continue
		}

		if _, exists := abbrevs[abbr]; !exists {
			abbrevs[abbr] = expansion
		}
	}

	return abbrevs
}

// PhrasesWithAbbreviations extracts at most length ranked phrases,
// merging in abbreviation expansions found in the text. Expansions score
// as the damped sum of their word scores and never displace a regular
// candidate with the same normalized text.
func (e *Extractor) PhrasesWithAbbreviations(text string, length int) ([]RankedPhrase, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}

	cands := e.candidates(text)
	scores := e.wordScores(cands)
	ranked := e.rank(cands, scores)

	candidateKeys := make(map[string]bool, len(cands))
	for _, cand := range cands {
		candidateKeys[cand.key] = true
	}

	for phrase, score := range e.abbreviationScores(e.Abbreviations(text)) {
		key := strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
		if candidateKeys[key] {
			continue
		}
		ranked = append(ranked, RankedPhrase{Text: phrase, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > length {
		ranked = ranked[:length]
	}
	return ranked, nil
}

// abbreviationScores scores each expansion phrase over a score table built
// from the expansions alone, damped by phrase length.
func (e *Extractor) abbreviationScores(abbrevs map[string]string) map[string]float64 {
	if len(abbrevs) == 0 {
		return nil
	}

	cands := make([]candidate, 0, len(abbrevs))
	byPhrase := make(map[string][]string, len(abbrevs))
	for _, phrase := range abbrevs {
		words := e.phraseWords(phrase)
		byPhrase[phrase] = words
		cands = append(cands, candidate{words: words})
	}

	scores := e.wordScores(cands)

	phraseScores := make(map[string]float64, len(abbrevs))
	for phrase, words := range byPhrase {
		wordCount := len(strings.Fields(phrase))
		if wordCount == 0 {
			continue
		}

		var total float64
		for _, word := range words {
			total += scores[word]
		}
		phraseScores[phrase] = total / (abbreviationDamping * float64(wordCount))
	}

	return phraseScores
}

// phraseWords returns the scored words of a single phrase, applying the
// same length and numeral filters as the tokenizer.
func (e *Extractor) phraseWords(phrase string) []string {
	run := e.candidates(phrase)
	var words []string
	for _, cand := range run {
		words = append(words, cand.words...)
	}
	return words
}

// splitAbbrevSentences breaks text at '.' or '?' followed by whitespace,
// keeping dotted abbreviations like "U.S." and titles like "Dr." intact.
func splitAbbrevSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	isWord := func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
	}

	for i := 0; i < len(runes)-1; i++ {
		if (runes[i] != '.' && runes[i] != '?') || !unicode.IsSpace(runes[i+1]) {
			continue
		}
		// "U.S. " style: word, dot, word before the final dot
		if i >= 3 && isWord(runes[i-3]) && runes[i-2] == '.' && isWord(runes[i-1]) {
			continue
		}
		// "Dr. " style: capital then lowercase before the dot
		if i >= 2 && unicode.IsUpper(runes[i-2]) && unicode.IsLower(runes[i-1]) {
			continue
		}
		sentences = append(sentences, string(runes[start:i+1]))
		start = i + 1
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}

	return sentences
}

// isUpperToken reports whether s contains at least one letter and no
// lowercase letters.
func isUpperToken(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// dropArticles removes standalone "the" words from a phrase.
func dropArticles(phrase string) string {
	fields := strings.Fields(phrase)
	kept := fields[:0]
	for _, field := range fields {
		if strings.EqualFold(field, "the") {
			continue
		}
		kept = append(kept, field)
	}
	return strings.Join(kept, " ")
}

func splitSpaceHyphen(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})
}
