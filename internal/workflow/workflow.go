// Package workflow parses workflow definitions and binds raw parameter
// values against them.
//
// A definition declares named path parameters in YAML:
//
//	name: assembly
//	params:
//	  - name: reads
//	    kind: sequence
//	    predicate: min-length
//	    arg: 100
//	  - name: out
//	    kind: file
//	    existence: absent
//
// Predicates are referenced by name and resolved through a Registry at bind
// time. Binding validates each raw value with the param package and returns
// the resolved absolute paths; the first rejected parameter aborts the bind.
package workflow

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parameter kinds.
const (
	KindFile     = "file"     // plain path parameter
	KindSequence = "sequence" // content-gated sequence file parameter
)

// Existence values for file parameters.
const (
	ExistencePresent = "present"
	ExistenceAbsent  = "absent"
)

var (
	// ErrInvalidDefinition is returned for structurally invalid definitions.
	ErrInvalidDefinition = errors.New("invalid workflow definition")
	// ErrUnknownParam is returned when a bound value names no declared parameter.
	ErrUnknownParam = errors.New("unknown parameter")
	// ErrMissingValue is returned when a declared parameter has no bound value.
	ErrMissingValue = errors.New("missing parameter value")
	// ErrUnknownPredicate is returned when a declared predicate name is not registered.
	ErrUnknownPredicate = errors.New("unknown predicate")
)

// Param declares a single path parameter of a workflow.
type Param struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"` // file | sequence (default file)

	// Existence applies to file parameters only: present | absent
	// (default present). Sequence files must always be present.
	Existence string `yaml:"existence,omitempty"`

	// Predicate names a registered predicate; sequence parameters only
	// (default "has-sequences"). Arg is its optional integer argument.
	Predicate string `yaml:"predicate,omitempty"`
	Arg       int    `yaml:"arg,omitempty"`
}

// Definition is a parsed workflow definition.
type Definition struct {
	Name   string  `yaml:"name"`
	Params []Param `yaml:"params"`
}

// Parse decodes and validates a YAML workflow definition. Defaults are
// filled in: kind "file", existence "present", predicate "has-sequences".
// Predicate names are checked against the registry at bind time, not here.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	if len(def.Params) == 0 {
		return nil, fmt.Errorf("%w: no params declared", ErrInvalidDefinition)
	}

	seen := make(map[string]bool, len(def.Params))
	for i := range def.Params {
		p := &def.Params[i]
		if p.Name == "" {
			return nil, fmt.Errorf("%w: param %d has no name", ErrInvalidDefinition, i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: duplicate param %q", ErrInvalidDefinition, p.Name)
		}
		seen[p.Name] = true

		if p.Kind == "" {
			p.Kind = KindFile
		}
		switch p.Kind {
		case KindFile:
			if p.Existence == "" {
				p.Existence = ExistencePresent
			}
			if p.Existence != ExistencePresent && p.Existence != ExistenceAbsent {
				return nil, fmt.Errorf("%w: param %q: existence must be %q or %q",
					ErrInvalidDefinition, p.Name, ExistencePresent, ExistenceAbsent)
			}
			if p.Predicate != "" {
				return nil, fmt.Errorf("%w: param %q: predicate is only valid for kind %q",
					ErrInvalidDefinition, p.Name, KindSequence)
			}
		case KindSequence:
			if p.Existence != "" && p.Existence != ExistencePresent {
				return nil, fmt.Errorf("%w: param %q: sequence files must be present",
					ErrInvalidDefinition, p.Name)
			}
			if p.Predicate == "" {
				p.Predicate = "has-sequences"
			}
		default:
			return nil, fmt.Errorf("%w: param %q: unknown kind %q",
				ErrInvalidDefinition, p.Name, p.Kind)
		}
	}

	return &def, nil
}
