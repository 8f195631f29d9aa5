package analysis

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/printer-maintenance/internal/models"
)

// ResultStore persists successful remote results for later re-display. The
// persisted copy is never authoritative over a fresh computation.
type ResultStore interface {
	SaveAnalysis(ctx context.Context, result models.AnalysisResult) error
}

// Gateway runs an Analyzer and guarantees the caller always gets a usable
// result: remote failures of any kind degrade to the local fallback, tagged
// so the two can be told apart.
type Gateway struct {
	analyzer Analyzer
	store    ResultStore
}

// NewGateway wraps an Analyzer. The store may be nil, in which case results
// are not persisted.
func NewGateway(analyzer Analyzer, store ResultStore) *Gateway {
	return &Gateway{analyzer: analyzer, store: store}
}

// Analyze never returns an error for remote failures: transport problems,
// timeouts, bad status codes and unparsable bodies all produce the fallback
// result. The remote aggregation snapshot is taken before the call and not
// tracked for staleness afterward.
func (g *Gateway) Analyze(ctx context.Context, input models.AnalysisInput, partStats []models.PartStatistic) *models.AnalysisResult {
	if g.analyzer != nil {
		result, err := g.analyzer.Analyze(ctx, input)
		if err == nil && result != nil {
			result.Source = models.SourceRemote
			result.GeneratedAt = time.Now().UTC()
			if g.store != nil {
				if saveErr := g.store.SaveAnalysis(ctx, *result); saveErr != nil {
					log.WithError(saveErr).Warn("Failed to persist analysis result")
				}
			}
			return result
		}
		log.WithError(err).Warn("Remote analysis failed, using local fallback")
	}
	return LocalFallback(partStats)
}

// StubAnalyzer returns a fixed result or error and records the last input it
// was handed; used in tests.
type StubAnalyzer struct {
	Result    *models.AnalysisResult
	Err       error
	LastInput models.AnalysisInput
}

func (s *StubAnalyzer) Analyze(ctx context.Context, input models.AnalysisInput) (*models.AnalysisResult, error) {
	s.LastInput = input
	return s.Result, s.Err
}
