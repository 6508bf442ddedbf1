package rake

// ExtractionMonitor provides hooks to observe the extraction pipeline.
// Implement this interface to track intermediate results during extraction.
type ExtractionMonitor interface {
	Start(text string)
	AfterCandidateExtraction(phrases []string)
	AfterWordScoring(scores map[string]float64)
	Finish(results []RankedPhrase)
}

// noopMonitor is a no-op implementation of ExtractionMonitor
type noopMonitor struct{}

var _ ExtractionMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                         {}
func (n *noopMonitor) AfterCandidateExtraction(_ []string)    {}
func (n *noopMonitor) AfterWordScoring(_ map[string]float64)  {}
func (n *noopMonitor) Finish(_ []RankedPhrase)                {}
