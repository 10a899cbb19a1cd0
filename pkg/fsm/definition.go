package fsm

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML form of a machine:
//
//	initial: idle
//	transitions:
//	  - name: start
//	    from: idle
//	    to: running
//	  - name: reset
//	    from: "*"
//	    to: idle
type Definition struct {
	Initial     State                  `yaml:"initial"`
	Transitions []TransitionDefinition `yaml:"transitions"`
}

type TransitionDefinition struct {
	Name string    `yaml:"name"`
	From StateList `yaml:"from"`
	To   State     `yaml:"to"`
}

// StateList decodes either a single state or a sequence of states.
type StateList []State

func (l *StateList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s State
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = StateList{s}
		return nil
	case yaml.SequenceNode:
		var states []State
		if err := value.Decode(&states); err != nil {
			return err
		}
		*l = states
		return nil
	default:
		return fmt.Errorf("line %d: from must be a state or a list of states", value.Line)
	}
}

// ParseDefinition decodes and validates a YAML definition.
func ParseDefinition(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, errors.Join(ErrInvalidDefinition, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadDefinition reads and parses the definition at path.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := ParseDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Validate checks the structural rules a YAML document cannot express.
// Duplicate names are reported by Build, the same way Set reports them.
func (d *Definition) Validate() error {
	if d.Initial == "" {
		return fmt.Errorf("%w: no initial state defined", ErrInvalidDefinition)
	}
	for i, t := range d.Transitions {
		if t.Name == "" {
			return fmt.Errorf("%w: transition[%d] has no name", ErrInvalidDefinition, i)
		}
		if t.To == "" {
			return fmt.Errorf("%w: transition %q has no destination", ErrInvalidDefinition, t.Name)
		}
	}
	return nil
}

// Build creates a machine positioned at the initial state with every
// transition registered in document order. Extra options are applied first.
func (d *Definition) Build(opts ...Option) (*Machine, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	defs := make([]TransitionDef, len(d.Transitions))
	for i, t := range d.Transitions {
		defs[i] = TransitionDef{Name: t.Name, Sources: []State(t.From), Dest: t.To}
	}

	m, err := New(d.Initial, append(slices.Clone(opts), WithTransitions(defs))...)
	if err != nil {
		return nil, fmt.Errorf("build machine: %w", err)
	}
	return m, nil
}
