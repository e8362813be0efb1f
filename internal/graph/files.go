package graph

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ExportResult reports where an export landed.
type ExportResult struct {
	Scope    string `json:"scope"`
	JSONPath string `json:"json_path"`
	DOTPath  string `json:"dot_path"`
	Nodes    int    `json:"nodes"`
	Edges    int    `json:"edges"`
}

// WriteFiles serializes the graph into dir as <scope>.json and
// <scope>.dot, creating dir if needed. The global scope is written as
// "graph". Files are replaced atomically, so a failed export leaves any
// previous files intact.
func (g *Graph) WriteFiles(dir, projectID string) (*ExportResult, error) {
	scope := ScopeName(projectID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	payload, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding graph: %w", err)
	}
	jsonPath := filepath.Join(dir, scope+".json")
	if err := replaceFile(jsonPath, append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("writing %s: %w", jsonPath, err)
	}

	dotPath := filepath.Join(dir, scope+".dot")
	if err := replaceFile(dotPath, []byte(g.DOT())); err != nil {
		return nil, fmt.Errorf("writing %s: %w", dotPath, err)
	}

	return &ExportResult{
		Scope:    scope,
		JSONPath: jsonPath,
		DOTPath:  dotPath,
		Nodes:    len(g.Nodes),
		Edges:    len(g.Links),
	}, nil
}

// ScopeName maps a project id to its export basename; the empty id is
// the global scope.
func ScopeName(projectID string) string {
	if projectID == "" {
		return "graph"
	}
	return projectID
}

// replaceFile writes data to a sibling temp file and renames it over
// path, so readers never see a partial file.
func replaceFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
