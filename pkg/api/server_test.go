package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calder-analytics/cascade/pkg/cascade"
)

// TestServerWorkflow walks the full API surface the way a client would:
// discover regions, inspect a topology, run an analysis, check health.
func TestServerWorkflow(t *testing.T) {
	ts := httptest.NewServer(newTestServer().Handler())
	defer ts.Close()

	// Discover regions
	resp, err := http.Get(ts.URL + "/api/v1/regions")
	require.NoError(t, err)
	var regions RegionsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&regions))
	resp.Body.Close()
	require.Contains(t, regions.Regions, "asia")

	// Inspect the asia roster
	resp, err = http.Get(ts.URL + "/api/v1/topology/asia")
	require.NoError(t, err)
	var topo TopologyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&topo))
	resp.Body.Close()
	require.NotEmpty(t, topo.Nodes)

	// Analyze a disruption at the first supplier
	payload, err := json.Marshal(AnalyzeRequestBody{
		ScenarioType: "supplier_bankruptcy",
		OriginNode:   topo.Nodes[0].ID,
		Region:       "asia",
		Severity:     "catastrophic",
	})
	require.NoError(t, err)

	resp, err = http.Post(ts.URL+"/api/v1/cascade/analyze", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result cascade.AnalysisResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	resp.Body.Close()

	assert.NotEmpty(t, result.AnalysisID)
	assert.Equal(t, cascade.SeverityCatastrophic, result.Severity)
	assert.NotEmpty(t, result.AffectedNodes)
	assert.Equal(t, topo.Nodes[0].ID, result.AffectedNodes[0].ID)

	// Every step endpoint must be an affected node
	affected := make(map[string]bool, len(result.AffectedNodes))
	for _, node := range result.AffectedNodes {
		affected[node.ID] = true
	}
	for _, step := range result.PropagationPath {
		assert.True(t, affected[step.FromNode], "step source %s missing from affected nodes", step.FromNode)
		assert.True(t, affected[step.ToNode], "step target %s missing from affected nodes", step.ToNode)
	}
}

func TestServerHealthEndpoints(t *testing.T) {
	ts := httptest.NewServer(newTestServer().Handler())
	defer ts.Close()

	for _, path := range []string{"/health", "/ready", "/live"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err, path)
		assert.Contains(t, string(body), "healthy", path)
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	ts := httptest.NewServer(newTestServer().Handler())
	defer ts.Close()

	// Generate some traffic first
	payload := `{"scenarioType":"port_closure","region":"asia","severity":"severe"}`
	resp, err := http.Post(ts.URL+"/api/v1/cascade/analyze", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "cascade_analyses_total")
	assert.Contains(t, string(body), "cascade_http_requests_total")
}

func TestServerCORS(t *testing.T) {
	srv := newTestServer()
	srv.SetCORSOrigins([]string{"https://dashboard.example.com"})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/v1/regions", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://dashboard.example.com")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "https://dashboard.example.com", resp.Header.Get("Access-Control-Allow-Origin"))

	// Unlisted origins get no CORS headers
	req, err = http.NewRequest(http.MethodOptions, ts.URL+"/api/v1/regions", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://evil.example.com")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

// TestServerCORSReload verifies that origins picked up from the environment
// after startup reach the running middleware, the way the SIGHUP reload
// hook applies them.
func TestServerCORSReload(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	fetchAllowOrigin := func(origin string) string {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/regions", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", origin)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.Header.Get("Access-Control-Allow-Origin")
	}

	assert.Empty(t, fetchAllowOrigin("https://ops.example.com"))

	t.Setenv("CORS_ALLOWED_ORIGINS", "https://ops.example.com")
	cfg := srv.config
	cfg.InitCORSFromEnv()
	srv.SetCORSOrigins(cfg.CORS.AllowedOrigins)

	assert.Equal(t, "https://ops.example.com", fetchAllowOrigin("https://ops.example.com"))
}
