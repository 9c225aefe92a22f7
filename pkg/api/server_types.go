package api

import (
	"github.com/calder-analytics/cascade/pkg/cascade"
)

// BatchAnalyzeRequest is a list of analyses to fan out concurrently.
type BatchAnalyzeRequest struct {
	Analyses []AnalyzeRequestBody `json:"analyses"`
}

// AnalyzeRequestBody is the wire shape of one analysis request.
type AnalyzeRequestBody struct {
	ScenarioType string `json:"scenarioType"`
	OriginNode   string `json:"originNode,omitempty"`
	Region       string `json:"region"`
	Severity     string `json:"severity,omitempty"`
}

// BatchItemResponse carries one batch entry's outcome. Error is set instead of
// Result when that analysis failed; a bad entry never fails the whole batch.
type BatchItemResponse struct {
	Result *cascade.AnalysisResult `json:"result,omitempty"`
	Error  string                  `json:"error,omitempty"`
}

// BatchAnalyzeResponse is the response to a batch analysis request.
type BatchAnalyzeResponse struct {
	Items []BatchItemResponse `json:"items"`
	Count int                 `json:"count"`
}

// TopologyResponse is the resolved roster for a region.
type TopologyResponse struct {
	Region string                `json:"region"`
	Nodes  []cascade.NetworkNode `json:"nodes"`
	Count  int                   `json:"count"`
}

// RegionsResponse lists the regions the topology provider knows about.
type RegionsResponse struct {
	Regions []string `json:"regions"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
