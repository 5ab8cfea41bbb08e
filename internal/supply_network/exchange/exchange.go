// Package exchange reads and writes network documents and result sheets.
package exchange

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

// ErrMalformed is returned for any document that cannot be imported.
var ErrMalformed = errors.New("malformed network document")

// document is the file shape. Missing arrays import as empty.
type document struct {
	Nodes   []domain.Node   `json:"nodes"`
	Edges   []domain.Edge   `json:"edges"`
	Demands []domain.Demand `json:"demands"`
}

// ExportJSON renders g as an indented {nodes, edges, demands} document.
func ExportJSON(g domain.Graph) ([]byte, error) {
	doc := document{Nodes: g.Nodes, Edges: g.Edges, Demands: g.Demands}
	if doc.Nodes == nil {
		doc.Nodes = []domain.Node{}
	}
	if doc.Edges == nil {
		doc.Edges = []domain.Edge{}
	}
	if doc.Demands == nil {
		doc.Demands = []domain.Demand{}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ImportJSON parses a document. Any failure wraps ErrMalformed and returns
// no graph, so callers never apply a partial import.
func ImportJSON(data []byte) (domain.Graph, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return domain.Graph{}, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	if trimmed[0] != '{' {
		return domain.Graph{}, fmt.Errorf("%w: document must be an object", ErrMalformed)
	}
	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return domain.Graph{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dec.More() {
		return domain.Graph{}, fmt.Errorf("%w: trailing data after document", ErrMalformed)
	}
	g := domain.Graph{Nodes: doc.Nodes, Edges: doc.Edges, Demands: doc.Demands}
	if err := checkShape(g); err != nil {
		return domain.Graph{}, err
	}
	if g.Nodes == nil {
		g.Nodes = []domain.Node{}
	}
	if g.Edges == nil {
		g.Edges = []domain.Edge{}
	}
	if g.Demands == nil {
		g.Demands = []domain.Demand{}
	}
	return g, nil
}

// ImportYAML accepts the same document written as YAML. Keys are the JSON
// field names.
func ImportYAML(data []byte) (domain.Graph, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return domain.Graph{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if tree == nil {
		return domain.Graph{}, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	raw, err := json.Marshal(tree)
	if err != nil {
		return domain.Graph{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ImportJSON(raw)
}

// Import picks the decoder from a file name, defaulting to JSON.
func Import(name string, data []byte) (domain.Graph, error) {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return ImportYAML(data)
	}
	return ImportJSON(data)
}

// checkShape rejects records the editor could never have produced: missing
// or duplicate ids and unknown roles. Graph rules are left to validation.
func checkShape(g domain.Graph) error {
	seen := make(map[string]struct{}, len(g.Nodes)+len(g.Edges)+len(g.Demands))
	claim := func(kind, id string) error {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: %s without id", ErrMalformed, kind)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrMalformed, id)
		}
		seen[id] = struct{}{}
		return nil
	}
	for _, n := range g.Nodes {
		if err := claim("node", n.ID); err != nil {
			return err
		}
		if !n.Role.Valid() {
			return fmt.Errorf("%w: node %q has unknown role %q", ErrMalformed, n.ID, n.Role)
		}
	}
	for _, e := range g.Edges {
		if err := claim("link", e.ID); err != nil {
			return err
		}
	}
	for _, d := range g.Demands {
		if err := claim("demand", d.ID); err != nil {
			return err
		}
	}
	return nil
}
