package batch

import "errors"

var (
	// ErrExtractorRequired is returned when an extractor is not provided.
	ErrExtractorRequired = errors.New("extractor required")
)
