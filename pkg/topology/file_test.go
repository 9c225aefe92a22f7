package topology

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTopologyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "topology.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write topology file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeTopologyFile(t, `
regions:
  testland:
    - id: sup-t-1
      name: Test Supplier
      type: supplier
      region: testland
      riskLevel: medium
      impactScore: 85
    - id: mfg-t-1
      name: Test Manufacturer
      type: manufacturer
      region: testland
      riskLevel: high
      impactScore: 92
fallbackRegion: testland
`)

	provider, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	roster := provider.GetTopology("testland")
	if len(roster) != 2 {
		t.Fatalf("got %d nodes, expected 2", len(roster))
	}
	if roster[0].ID != "sup-t-1" || roster[0].ImpactScore != 85 {
		t.Errorf("first node = %+v, expected sup-t-1 with impact 85", roster[0])
	}

	if fallback := provider.GetTopology("unknown"); len(fallback) != 2 {
		t.Errorf("fallback roster has %d nodes, expected 2", len(fallback))
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name:    "no regions",
			content: "regions: {}\n",
			errPart: "defines no regions",
		},
		{
			name: "missing node id",
			content: `
regions:
  r:
    - name: Nameless
      type: supplier
      region: r
      riskLevel: low
      impactScore: 10
`,
			errPart: "node id is required",
		},
		{
			name: "unknown type",
			content: `
regions:
  r:
    - id: n-1
      type: wholesaler
      region: r
      riskLevel: low
      impactScore: 10
`,
			errPart: "unknown type",
		},
		{
			name: "unknown risk level",
			content: `
regions:
  r:
    - id: n-1
      type: supplier
      region: r
      riskLevel: fatal
      impactScore: 10
`,
			errPart: "unknown risk level",
		},
		{
			name: "impact out of range",
			content: `
regions:
  r:
    - id: n-1
      type: supplier
      region: r
      riskLevel: low
      impactScore: 140
`,
			errPart: "outside [0, 100]",
		},
		{
			name: "region mismatch",
			content: `
regions:
  r:
    - id: n-1
      type: supplier
      region: elsewhere
      riskLevel: low
      impactScore: 10
`,
			errPart: "does not match roster region",
		},
		{
			name: "undefined fallback region",
			content: `
regions:
  r:
    - id: n-1
      type: supplier
      region: r
      riskLevel: low
      impactScore: 10
fallbackRegion: ghost
`,
			errPart: "not a defined region",
		},
		{
			name: "duplicate node id",
			content: `
regions:
  r:
    - id: n-1
      type: supplier
      region: r
      riskLevel: low
      impactScore: 10
    - id: n-1
      type: manufacturer
      region: r
      riskLevel: low
      impactScore: 10
`,
			errPart: `duplicate node id "n-1"`,
		},
		{
			name:    "malformed yaml",
			content: "regions: [not a map",
			errPart: "parse topology file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTopologyFile(t, tt.content)
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.errPart)
			}
		})
	}
}

func TestLoadFileMissingPath(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
