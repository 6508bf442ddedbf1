package rake

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// phraseDelimiters are the punctuation runes that unconditionally end a
// candidate phrase (sentence enders plus minor punctuation).
const phraseDelimiters = ".!?,;:\t\\\"()'’–\n\r"

// token is a single word occurrence with its byte span in the source text.
type token struct {
	norm  string // lowercased form used for comparison and scoring
	start int
	end   int
}

// candidate is a maximal run of non-stopword tokens.
type candidate struct {
	tokens  []token  // every token in the phrase, in order
	words   []string // normalized tokens that count as scored words
	surface string   // original-casing text span
	key     string   // normalized token sequence, used for deduplication
}

// isWordRune reports whether r can be part of a word token. Hyphens, plus
// signs, slashes, and underscores stay inside words so that terms like
// "in-process" or "tcp/ip" survive as single tokens.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == '_' || r == '+' || r == '-' || r == '/'
}

// isNumeric reports whether a normalized token is a pure numeral.
// A trailing percent sign does not stop a token from being numeric.
func isNumeric(word string) bool {
	word = strings.ReplaceAll(word, "%", "")
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// hasLetterOrDigit reports whether the token contains at least one letter
// or digit. Tokens of bare connector runes (a spaced hyphen, "+") act as
// phrase boundaries rather than words.
func hasLetterOrDigit(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// candidates splits text into an ordered list of candidate phrases.
// Phrases break at stop words and at phrase-delimiting punctuation;
// any other non-word rune only separates tokens within a phrase.
// Duplicate phrases are kept so co-occurrence counts reflect every
// occurrence; deduplication happens at the ranking stage.
func (e *Extractor) candidates(text string) []candidate {
	var cands []candidate
	var run []token

	flush := func() {
		if len(run) == 0 {
			return
		}
		cand := newCandidate(text, run, e.minWordLength)
		run = nil
		if len(cand.words) == 0 {
			// Nothing scoreable (numerals and too-short tokens only)
			return
		}
		cands = append(cands, cand)
	}

	tokenStart := -1
	endToken := func(end int) {
		if tokenStart < 0 {
			return
		}
		tok := token{
			norm:  strings.ToLower(text[tokenStart:end]),
			start: tokenStart,
			end:   end,
		}
		tokenStart = -1

		if !hasLetterOrDigit(tok.norm) || e.stops.Contains(tok.norm) {
			flush()
			return
		}
		run = append(run, tok)
	}

	for i, r := range text {
		if isWordRune(r) {
			if tokenStart < 0 {
				tokenStart = i
			}
			continue
		}

		endToken(i)
		if strings.ContainsRune(phraseDelimiters, r) {
			flush()
		}
	}
	endToken(len(text))
	flush()

	return cands
}

// newCandidate builds a candidate from a token run. Tokens shorter than
// minWordLength and pure numerals stay in the phrase text but do not count
// as scored words.
func newCandidate(text string, run []token, minWordLength int) candidate {
	words := make([]string, 0, len(run))
	norms := make([]string, len(run))
	for i, tok := range run {
		norms[i] = tok.norm
		if utf8.RuneCountInString(tok.norm) >= minWordLength && !isNumeric(tok.norm) {
			words = append(words, tok.norm)
		}
	}

	return candidate{
		tokens:  run,
		words:   words,
		surface: text[run[0].start:run[len(run)-1].end],
		key:     strings.Join(norms, " "),
	}
}
