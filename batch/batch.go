package batch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/rake"
)

// Result holds the extraction output for one document.
type Result struct {
	ID      DocumentID
	Phrases []rake.RankedPhrase
}

// Processor runs keyword extraction over many documents concurrently.
// Extraction itself is pure, so documents are fanned out to a worker pool
// without any coordination beyond result collection.
type Processor struct {
	extractor *rake.Extractor
	pool      *ants.Pool
	logger    *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Processor) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewProcessor creates a batch processor around an extractor.
func NewProcessor(extractor *rake.Extractor, opts ...Option) (*Processor, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		extractor: extractor,
		pool:      pool,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(p); err != nil {
			p.Release()
			return nil, err
		}
	}

	return p, nil
}

// Process extracts at most length phrases from each document. Results keep
// the input order. Documents with identical content share one extraction;
// the duplicate entries reuse the first result.
func (p *Processor) Process(ctx context.Context, length int, docs ...string) ([]Result, error) {
	if length <= 0 {
		return nil, rake.ErrInvalidLength
	}

	results := make([]Result, len(docs))
	firstIndex := make(map[DocumentID]int, len(docs))
	duplicates := make(map[int]int) // duplicate index -> first index

	var wg sync.WaitGroup
	for i, doc := range docs {
		id := IDFromContent(doc)
		results[i].ID = id

		if first, seen := firstIndex[id]; seen {
			duplicates[i] = first
			continue
		}
		firstIndex[id] = i

		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		index, text := i, doc
		if err := p.pool.Submit(func() {
			defer wg.Done()
			phrases, err := p.extractor.TopPhrases(text, length)
			if err != nil {
				// Unreachable once length is validated; log just in case
				p.logger.Error("error extracting phrases", "document", index, "err", err)
				return
			}
			results[index].Phrases = phrases
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	for i, first := range duplicates {
		results[i].Phrases = results[first].Phrases
	}

	return results, nil
}

// Release releases the worker pool.
// The processor should not be used after calling Release.
func (p *Processor) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
