package yamlgraph

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/dsl"
	"github.com/aretw0/stepwise/pkg/graph"
	"github.com/aretw0/stepwise/pkg/registry"
	"github.com/aretw0/stepwise/pkg/strategy"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and compiles the graph stored at path.
func LoadFile(path string, reg *registry.Registry) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph: %w", err)
	}
	return Parse(data, reg)
}

// Load reads a document from r and compiles it.
func Load(r io.Reader, reg *registry.Registry) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph: %w", err)
	}
	return Parse(data, reg)
}

// Parse decodes data and compiles it. reg resolves "do" actions and may be
// nil when the graph declares none.
func Parse(data []byte, reg *registry.Registry) (*graph.Graph, error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Compile(doc, reg)
}

// Decode parses data without compiling it. Unknown fields are rejected.
func Decode(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse graph: empty document")
		}
		return nil, fmt.Errorf("failed to parse graph: %w", err)
	}
	return &doc, nil
}

// Compile turns a document into a validated graph through the dsl builder.
func Compile(doc *Document, reg *registry.Registry) (*graph.Graph, error) {
	b := dsl.New().Entry(doc.Entry)

	seen := make(map[string]bool, len(doc.Nodes))
	for _, spec := range doc.Nodes {
		if seen[spec.ID] {
			return nil, &domain.GraphError{NodeID: spec.ID, Reason: "duplicate node id"}
		}
		seen[spec.ID] = true
		if err := compileNode(b, spec, reg); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

func compileNode(b *dsl.Builder, spec NodeSpec, reg *registry.Registry) error {
	kinds := 0
	for _, set := range []bool{spec.Do != "", spec.Ask != "", spec.Decide != nil} {
		if set {
			kinds++
		}
	}
	if kinds > 1 {
		return &domain.GraphError{NodeID: spec.ID, Reason: "only one of do, ask or decide may be set"}
	}

	nb := b.Add(spec.ID)
	switch {
	case spec.Decide != nil:
		if spec.Next != "" {
			return &domain.GraphError{NodeID: spec.ID, Ref: spec.Next, Reason: "decision node cannot use next"}
		}
		s, err := buildStrategy(spec.Decide.Strategy, spec.Decide.Candidates)
		if err != nil {
			return &domain.GraphError{NodeID: spec.ID, Reason: err.Error()}
		}
		nb.Decide(s, spec.Decide.Candidates...)
		return nil

	case spec.Ask != "":
		nb.Ask(spec.Ask)
		if spec.Validate != nil {
			v, err := buildValidator(*spec.Validate)
			if err != nil {
				return &domain.GraphError{NodeID: spec.ID, Reason: err.Error()}
			}
			nb.Validate(v)
		}

	case spec.Do != "":
		if reg == nil {
			return &domain.GraphError{NodeID: spec.ID, Ref: spec.Do, Reason: "no action registry to resolve"}
		}
		action, err := reg.Bind(spec.Do, spec.With)
		if err != nil {
			return &domain.GraphError{NodeID: spec.ID, Reason: err.Error()}
		}
		nb.Do(action)
	}
	nb.Go(spec.Next)
	return nil
}

func buildStrategy(raw any, candidates []string) (domain.DecisionStrategy, error) {
	var spec StrategySpec
	switch v := raw.(type) {
	case nil:
		return nil, fmt.Errorf("missing strategy")
	case string:
		spec.Type = v
	default:
		if err := mapstructure.Decode(v, &spec); err != nil {
			return nil, fmt.Errorf("invalid strategy: %w", err)
		}
	}

	switch spec.Type {
	case "fixed":
		if spec.Node == "" {
			return nil, fmt.Errorf("fixed strategy requires node")
		}
		if !slices.Contains(candidates, spec.Node) {
			return nil, fmt.Errorf("fixed strategy node %q is not a candidate", spec.Node)
		}
		return strategy.NewFixed(spec.Node), nil
	case "index":
		return strategy.NewIndex(spec.Index), nil
	case "round_robin":
		return strategy.NewRoundRobin(), nil
	case "random":
		if spec.Seed != nil {
			return strategy.NewSeededRandom(*spec.Seed), nil
		}
		return strategy.NewRandom(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", spec.Type)
	}
}

func buildValidator(spec ValidateSpec) (func(any) error, error) {
	var re *regexp.Regexp
	if spec.Pattern != "" {
		var err error
		if re, err = regexp.Compile(spec.Pattern); err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
	}
	options := slices.Clone(spec.Options)

	return func(input any) error {
		s := fmt.Sprint(input)
		if re != nil && !re.MatchString(s) {
			return fmt.Errorf("input must match %s", spec.Pattern)
		}
		if len(options) > 0 && !slices.Contains(options, s) {
			return fmt.Errorf("input must be one of %v", options)
		}
		return nil
	}, nil
}
