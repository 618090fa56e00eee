package yamlgraph

// Document is the on-disk representation of a graph.
type Document struct {
	Entry string     `yaml:"entry"`
	Nodes []NodeSpec `yaml:"nodes"`
}

// NodeSpec describes one node. Exactly one of Do, Ask or Decide selects the
// node kind; a node with none of them is a simple node without action.
type NodeSpec struct {
	ID   string         `yaml:"id"`
	Next string         `yaml:"next,omitempty"`
	Do   string         `yaml:"do,omitempty"`
	With map[string]any `yaml:"with,omitempty"`

	Ask      string        `yaml:"ask,omitempty"`
	Validate *ValidateSpec `yaml:"validate,omitempty"`

	Decide *DecideSpec `yaml:"decide,omitempty"`
}

// ValidateSpec restricts what an input node accepts.
type ValidateSpec struct {
	Pattern string   `yaml:"pattern,omitempty"`
	Options []string `yaml:"options,omitempty"`
}

// DecideSpec configures a decision node.
// Strategy is either a type name or a map decoded into StrategySpec.
type DecideSpec struct {
	Candidates []string `yaml:"candidates"`
	Strategy   any      `yaml:"strategy"`
}

// StrategySpec is the decoded form of a decision strategy.
type StrategySpec struct {
	Type  string  `mapstructure:"type"`
	Node  string  `mapstructure:"node"`
	Index int     `mapstructure:"index"`
	Seed  *uint64 `mapstructure:"seed"`
}
