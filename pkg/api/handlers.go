package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/calder-analytics/cascade/pkg/cascade"
	"github.com/calder-analytics/cascade/pkg/logging"
	"github.com/calder-analytics/cascade/pkg/validation"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var body AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req := validation.AnalyzeRequest{
		ScenarioType: body.ScenarioType,
		OriginNode:   body.OriginNode,
		Region:       body.Region,
		Severity:     body.Severity,
	}
	if err := validation.ValidateAnalyzeRequest(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, status := s.runAnalysis(cascade.AnalysisRequest{
		ScenarioType: body.ScenarioType,
		OriginNode:   body.OriginNode,
		Region:       body.Region,
		Severity:     body.Severity,
	}, w)
	if result == nil {
		return // error already written
	}

	s.respondJSON(w, status, result)
}

// runAnalysis executes one analysis and records metrics. On failure it writes
// the error response and returns nil.
func (s *Server) runAnalysis(req cascade.AnalysisRequest, w http.ResponseWriter) (*cascade.AnalysisResult, int) {
	start := time.Now()
	severity := string(cascade.ParseSeverity(req.Severity))

	result, err := s.analyzer.Analyze(req)
	if err != nil {
		var notFound *cascade.OriginNotFoundError
		if errors.As(err, &notFound) {
			s.metricsRegistry.RecordOriginNotFound(req.Region, severity)
			s.respondError(w, http.StatusBadRequest, err.Error())
			return nil, 0
		}
		s.logger.Error("cascade analysis failed",
			logging.Region(req.Region),
			logging.Scenario(req.ScenarioType),
			logging.Error(err),
		)
		s.respondError(w, http.StatusInternalServerError, "Analysis failed")
		return nil, 0
	}

	s.metricsRegistry.RecordAnalysis(req.Region, severity, "ok",
		time.Since(start), len(result.AffectedNodes), result.NetworkImpactScore)
	return result, http.StatusOK
}

func (s *Server) handleBatchAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var body BatchAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidateBatchSize(len(body.Analyses)); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	requests := make([]cascade.AnalysisRequest, 0, len(body.Analyses))
	for i, entry := range body.Analyses {
		req := validation.AnalyzeRequest{
			ScenarioType: entry.ScenarioType,
			OriginNode:   entry.OriginNode,
			Region:       entry.Region,
			Severity:     entry.Severity,
		}
		if err := validation.ValidateAnalyzeRequest(&req); err != nil {
			s.respondError(w, http.StatusBadRequest, fmt.Sprintf("analysis %d: %v", i, err))
			return
		}
		requests = append(requests, cascade.AnalysisRequest{
			ScenarioType: entry.ScenarioType,
			OriginNode:   entry.OriginNode,
			Region:       entry.Region,
			Severity:     entry.Severity,
		})
	}

	s.metricsRegistry.RecordBatch(len(requests))

	items, err := s.runner.Run(requests)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "Batch execution failed")
		return
	}

	response := BatchAnalyzeResponse{
		Items: make([]BatchItemResponse, len(items)),
		Count: len(items),
	}
	for i, item := range items {
		if item.Err != nil {
			response.Items[i].Error = item.Err.Error()
			var notFound *cascade.OriginNotFoundError
			if errors.As(item.Err, &notFound) {
				s.metricsRegistry.RecordOriginNotFound(item.Request.Region, string(cascade.ParseSeverity(item.Request.Severity)))
			}
			continue
		}
		response.Items[i].Result = item.Result
		s.metricsRegistry.RecordAnalysis(item.Request.Region,
			string(item.Result.Severity), "ok",
			item.Elapsed, len(item.Result.AffectedNodes), item.Result.NetworkImpactScore)
	}

	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleTopology(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	region := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/v1/topology/"), "/")
	if region == "" {
		s.respondError(w, http.StatusBadRequest, "Region is required")
		return
	}

	nodes := s.provider.GetTopology(region)
	s.respondJSON(w, http.StatusOK, TopologyResponse{
		Region: region,
		Nodes:  nodes,
		Count:  len(nodes),
	})
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.respondJSON(w, http.StatusOK, RegionsResponse{Regions: s.provider.Regions()})
}
