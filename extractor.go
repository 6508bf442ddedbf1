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


package rake

import (
	"log/slog"

	"github.com/poiesic/rake/corpus"
	"github.com/poiesic/rake/stoplist"
)

// Extractor extracts ranked keyword phrases from text. All configuration is
// fixed at construction, so one Extractor may be shared by concurrent
// callers.
type Extractor struct {
	stops          *stoplist.StopList
	corpus         corpus.Corpus
	weigh          corpus.WeightFunc
	minWordLength  int
	maxPhraseWords int
	logger         *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor) error

// WithCorpus sets a reference word-frequency corpus used to bias word
// scores toward rarer words. Default is no corpus (uniform prior weight).
func WithCorpus(c corpus.Corpus) Option {
	return func(e *Extractor) error {
		e.corpus = c
		return nil
	}
}

// WithWeightFunc sets the corpus weighting function.
// Default is corpus.InverseLogWeight. The function must be monotonic:
// rarer corpus words never receive a lower weight.
func WithWeightFunc(f corpus.WeightFunc) Option {
	return func(e *Extractor) error {
		if f == nil {
			f = corpus.InverseLogWeight
		}
		e.weigh = f
		return nil
	}
}

// WithMinWordLength sets the minimum number of characters a token needs to
// count as a scored word. Default is 1.
func WithMinWordLength(n int) Option {
	return func(e *Extractor) error {
		if n < 1 {
			return ErrInvalidMinWordLength
		}
		e.minWordLength = n
		return nil
	}
}

// WithMaxPhraseWords caps the number of tokens a ranked phrase may contain;
// longer candidates are skipped at the ranking stage. 0 means no cap.
// Default is 0.
func WithMaxPhraseWords(n int) Option {
	return func(e *Extractor) error {
		if n < 0 {
			return ErrInvalidMaxPhraseWords
		}
		e.maxPhraseWords = n
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// New creates an Extractor using the given stop list.
func New(stops *stoplist.StopList, opts ...Option) (*Extractor, error) {
	if stops == nil {
		return nil, ErrStopListRequired
	}
	if stops.Len() == 0 {
		return nil, stoplist.ErrEmptyStopList
	}

	e := &Extractor{
		stops:         stops,
		weigh:         corpus.InverseLogWeight,
		minWordLength: 1,
		logger:        slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Phrases extracts ranked phrases from text using the default length
// policy: 5 plus one tenth of the distinct candidate count.
func (e *Extractor) Phrases(text string) ([]RankedPhrase, error) {
	return e.extract(text, 0, nil)
}

// TopPhrases extracts at most length ranked phrases from text. If fewer
// distinct candidates exist, all of them are returned.
func (e *Extractor) TopPhrases(text string, length int) ([]RankedPhrase, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	return e.extract(text, length, nil)
}

// TopPhrasesWithMonitor is TopPhrases with stage-observation hooks.
// The monitor receives callbacks after each pipeline stage.
func (e *Extractor) TopPhrasesWithMonitor(text string, length int, monitor ExtractionMonitor) ([]RankedPhrase, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	return e.extract(text, length, monitor)
}

// extract runs the full pipeline. length == 0 selects the default length
// policy. All state is local to the call.
func (e *Extractor) extract(text string, length int, monitor ExtractionMonitor) ([]RankedPhrase, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(text)

	cands := e.candidates(text)
	surfaces := make([]string, len(cands))
	for i, cand := range cands {
		surfaces[i] = cand.surface
	}
	monitor.AfterCandidateExtraction(surfaces)

	if len(cands) == 0 {
		// Only stop words and punctuation; not an error
		monitor.Finish(nil)
		return []RankedPhrase{}, nil
	}

	scores := e.wordScores(cands)
	monitor.AfterWordScoring(scores)

	ranked := e.rank(cands, scores)

	if length == 0 {
		length = 5 + len(ranked)/10
	}
	if len(ranked) > length {
		ranked = ranked[:length]
	}

	e.logger.Debug("extracted phrases",
		"candidates", len(cands), "distinctWords", len(scores), "returned", len(ranked))

	monitor.Finish(ranked)
	return ranked, nil
}
