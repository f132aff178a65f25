// bind.go validates raw parameter values against a parsed definition.

package workflow

import (
	"fmt"

	"github.com/jpl-au/seqcheck/internal/param"
)

// Binding is one successfully validated parameter.
type Binding struct {
	Name     string `json:"name"`
	Raw      string `json:"raw"`
	Resolved string `json:"resolved"`
}

// BindOptions customises a Bind call. Zero value means: default predicate
// registry, FASTA format, built-in extractor.
type BindOptions struct {
	Registry  *Registry
	Format    string
	Extractor param.StatsFunc
}

// Bind validates every declared parameter of def against the raw values,
// in declaration order, and returns the resolved bindings.
//
// Every declared parameter must have a value and every value must name a
// declared parameter. The first rejected parameter aborts the bind with an
// error naming it; bindings are all-or-nothing.
func Bind(def *Definition, values map[string]string, opts BindOptions) ([]Binding, error) {
	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	declared := make(map[string]bool, len(def.Params))
	for _, p := range def.Params {
		declared[p.Name] = true
	}
	for name := range values {
		if !declared[name] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownParam, name)
		}
	}

	bindings := make([]Binding, 0, len(def.Params))
	for _, p := range def.Params {
		raw, ok := values[p.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingValue, p.Name)
		}

		resolved, err := validateOne(p, raw, reg, opts)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		bindings = append(bindings, Binding{Name: p.Name, Raw: raw, Resolved: resolved})
	}

	return bindings, nil
}

func validateOne(p Param, raw string, reg *Registry, opts BindOptions) (string, error) {
	switch p.Kind {
	case KindSequence:
		b, ok := reg.Get(p.Predicate)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownPredicate, p.Predicate)
		}
		sf := param.NewSequenceFile(b(p.Arg))
		if opts.Format != "" {
			sf.WithFormat(opts.Format)
		}
		if opts.Extractor != nil {
			sf.WithExtractor(opts.Extractor)
		}
		return sf.Validate(raw)
	default:
		req := param.MustExist
		if p.Existence == ExistenceAbsent {
			req = param.MustNotExist
		}
		return param.NewFile(req).Validate(raw)
	}
}
