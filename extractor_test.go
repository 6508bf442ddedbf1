package rake

import (
	"sync"
	"testing"

	"github.com/poiesic/rake/stoplist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	stops := mustStopList(t, "the", "of")

	t.Run("valid configuration", func(t *testing.T) {
		e, err := New(stops)
		require.NoError(t, err)
		assert.NotNil(t, e)
	})

	t.Run("nil stop list", func(t *testing.T) {
		_, err := New(nil)
		assert.Equal(t, ErrStopListRequired, err)
	})

	t.Run("invalid min word length", func(t *testing.T) {
		_, err := New(stops, WithMinWordLength(0))
		assert.Equal(t, ErrInvalidMinWordLength, err)
	})

	t.Run("invalid max phrase words", func(t *testing.T) {
		_, err := New(stops, WithMaxPhraseWords(-1))
		assert.Equal(t, ErrInvalidMaxPhraseWords, err)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		e, err := New(stops, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, e)
	})
}

func TestTopPhrases_RanksByScore(t *testing.T) {
	stops := mustStopList(t, "of", "the", "over")
	e := mustExtractor(t, stops)

	phrases, err := e.TopPhrases("Compatibility of systems of linear constraints over the set of natural numbers", 10)
	require.NoError(t, err)
	require.Len(t, phrases, 5)

	// Two-word phrases score 4, single words score 1; ties keep source order
	assert.Equal(t, "linear constraints", phrases[0].Text)
	assert.InDelta(t, 4.0, phrases[0].Score, 1e-9)
	assert.Equal(t, "natural numbers", phrases[1].Text)
	assert.InDelta(t, 4.0, phrases[1].Score, 1e-9)

	assert.Equal(t, "Compatibility", phrases[2].Text)
	assert.Equal(t, "systems", phrases[3].Text)
	assert.Equal(t, "set", phrases[4].Text)
}

func TestTopPhrases_InvalidLength(t *testing.T) {
	e := mustExtractor(t, mustStopList(t, "the"))

	for _, length := range []int{0, -1, -100} {
		_, err := e.TopPhrases("some text", length)
		assert.Equal(t, ErrInvalidLength, err, "length=%d", length)
	}
}

func TestTopPhrases_LengthCapsOutput(t *testing.T) {
	stops := mustStopList(t, "of", "the", "over")
	e := mustExtractor(t, stops)
	text := "Compatibility of systems of linear constraints over the set of natural numbers"

	for length := 1; length <= 8; length++ {
		phrases, err := e.TopPhrases(text, length)
		require.NoError(t, err)
		want := length
		if want > 5 {
			want = 5
		}
		assert.Len(t, phrases, want, "length=%d", length)
	}
}

func TestTopPhrases_LengthOne(t *testing.T) {
	stops := mustStopList(t, "of", "the", "over")
	e := mustExtractor(t, stops)

	phrases, err := e.TopPhrases("Compatibility of systems of linear constraints", 1)
	require.NoError(t, err)
	require.Len(t, phrases, 1)
	assert.Equal(t, "linear constraints", phrases[0].Text)

	// Empty candidate list still returns an empty result without error
	phrases, err = e.TopPhrases("of the over", 1)
	require.NoError(t, err)
	assert.Empty(t, phrases)
}

func TestTopPhrases_EmptyAndStopWordOnlyInput(t *testing.T) {
	e := mustExtractor(t, mustStopList(t, "the", "of", "and"))

	for _, text := range []string{"", "   ", "the of and", "..., !!"} {
		phrases, err := e.TopPhrases(text, 3)
		require.NoError(t, err, "text=%q", text)
		assert.Empty(t, phrases, "text=%q", text)
	}
}

func TestTopPhrases_DeduplicatesRepeatedPhrases(t *testing.T) {
	stops := mustStopList(t, "the", "a")
	e := mustExtractor(t, stops)

	three, err := e.TopPhrases("quick brown fox. quick brown fox. quick brown fox.", 10)
	require.NoError(t, err)
	require.Len(t, three, 1)
	assert.Equal(t, "quick brown fox", three[0].Text)

	// The deduplicated score equals a single occurrence's phrase score
	one, err := e.TopPhrases("quick brown fox.", 10)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.InDelta(t, one[0].Score, three[0].Score, 1e-9)
}

func TestTopPhrases_TieBreakKeepsSourceOrder(t *testing.T) {
	stops := mustStopList(t, "the")
	e := mustExtractor(t, stops)

	phrases, err := e.TopPhrases("zebras. apples. mangoes.", 3)
	require.NoError(t, err)
	require.Len(t, phrases, 3)

	assert.Equal(t, "zebras", phrases[0].Text)
	assert.Equal(t, "apples", phrases[1].Text)
	assert.Equal(t, "mangoes", phrases[2].Text)
}

func TestTopPhrases_Deterministic(t *testing.T) {
	stops := stoplist.Default()
	e := mustExtractor(t, stops)

	text := "Rapid automatic keyword extraction scores candidate phrases by word " +
		"co-occurrence. Candidate phrases split at stop words and punctuation."

	first, err := e.TopPhrases(text, 10)
	require.NoError(t, err)
	second, err := e.TopPhrases(text, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTopPhrases_ConcurrentCallers(t *testing.T) {
	e := mustExtractor(t, stoplist.Default())
	text := "concurrent keyword extraction over a shared extractor instance"

	want, err := e.TopPhrases(text, 5)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.TopPhrases(text, 5)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestPhrases_DefaultLengthPolicy(t *testing.T) {
	stops := mustStopList(t, "of", "the", "over")
	e := mustExtractor(t, stops)

	// 5 distinct candidates -> default length 5 + 5/10 = 5
	phrases, err := e.Phrases("Compatibility of systems of linear constraints over the set of natural numbers")
	require.NoError(t, err)
	assert.Len(t, phrases, 5)
}

func TestTopPhrases_MaxPhraseWords(t *testing.T) {
	stops := mustStopList(t, "the")
	e := mustExtractor(t, stops, WithMaxPhraseWords(2))

	phrases, err := e.TopPhrases("very long candidate phrase here. short one.", 10)
	require.NoError(t, err)
	require.Len(t, phrases, 1)
	assert.Equal(t, "short one", phrases[0].Text)
}

func TestTopPhrasesWithMonitor(t *testing.T) {
	stops := mustStopList(t, "of", "the", "over")
	e := mustExtractor(t, stops)

	monitor := &recordingMonitor{}
	phrases, err := e.TopPhrasesWithMonitor("Compatibility of systems of linear constraints", 10, monitor)
	require.NoError(t, err)

	assert.True(t, monitor.started)
	assert.Equal(t, []string{"Compatibility", "systems", "linear constraints"}, monitor.candidates)
	assert.Len(t, monitor.scores, 4)
	assert.Equal(t, phrases, monitor.results)
}

type recordingMonitor struct {
	started    bool
	candidates []string
	scores     map[string]float64
	results    []RankedPhrase
}

func (m *recordingMonitor) Start(_ string)                        { m.started = true }
func (m *recordingMonitor) AfterCandidateExtraction(p []string)   { m.candidates = p }
func (m *recordingMonitor) AfterWordScoring(s map[string]float64) { m.scores = s }
func (m *recordingMonitor) Finish(r []RankedPhrase)               { m.results = r }
