package cascade

import (
	"time"

	"github.com/google/uuid"

	"github.com/calder-analytics/cascade/pkg/logging"
)

// TopologyProvider supplies the node roster for a region. Implementations may
// return a fallback roster for unknown regions; that is documented behavior,
// not an error.
type TopologyProvider interface {
	GetTopology(region string) []NetworkNode
}

// OriginResolver supplies a default origin node id when a request omits one.
type OriginResolver interface {
	DefaultOrigin(scenarioType, region string) string
}

// AnalysisRequest describes one cascade analysis. OriginNode is optional; when
// empty the analyzer consults its OriginResolver. Severity defaults to
// moderate when unknown or empty.
type AnalysisRequest struct {
	ScenarioType string
	OriginNode   string
	Region       string
	Severity     string
}

// AnalysisResult wraps a CascadeResult with request echo and bookkeeping.
type AnalysisResult struct {
	AnalysisID        string   `json:"analysisId"`
	ScenarioType      string   `json:"scenarioType"`
	Region            string   `json:"region"`
	OriginNode        string   `json:"originNode"`
	Severity          Severity `json:"severity"`
	AnalysisTimestamp string   `json:"analysisTimestamp"`
	CascadeResult
}

// Analyzer resolves a topology and origin for each request and runs the
// propagation engine over them. It holds no mutable state and is safe for
// concurrent use.
type Analyzer struct {
	provider TopologyProvider
	resolver OriginResolver
	logger   logging.Logger
}

// NewAnalyzer creates an analyzer over the given collaborators. A nil logger
// falls back to the process default.
func NewAnalyzer(provider TopologyProvider, resolver OriginResolver, logger logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &Analyzer{
		provider: provider,
		resolver: resolver,
		logger:   logger,
	}
}

// Analyze resolves the request's topology and origin, runs the cascade, and
// scores it. The only failure mode is an origin id that does not exist in the
// resolved topology.
func (a *Analyzer) Analyze(req AnalysisRequest) (*AnalysisResult, error) {
	timer := logging.StartTimer(a.logger, "cascade analysis complete",
		logging.String("scenario", req.ScenarioType),
		logging.String("region", req.Region),
	)

	topology := a.provider.GetTopology(req.Region)
	severity := ParseSeverity(req.Severity)

	originID := req.OriginNode
	if originID == "" {
		originID = a.resolver.DefaultOrigin(req.ScenarioType, req.Region)
	}

	result, err := Propagate(topology, originID, severity)
	if err != nil {
		timer.EndError(err)
		return nil, err
	}

	timer.End()
	return &AnalysisResult{
		AnalysisID:        uuid.NewString(),
		ScenarioType:      req.ScenarioType,
		Region:            req.Region,
		OriginNode:        originID,
		Severity:          severity,
		AnalysisTimestamp: time.Now().UTC().Format(time.RFC3339),
		CascadeResult:     *result,
	}, nil
}
