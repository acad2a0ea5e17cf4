// Package engine is the facade the rest of the system is built around:
// a variable table, an append-only rule list, and a compile/predict/query
// lifecycle over the core algebra (cube, statevector) and conversion
// pipeline (ruleparser, ruleconverter). It is the system's only mutable
// aggregate; everything it holds is built from immutable values.
package engine

import (
	"regexp"
	"sort"

	"github.com/dmitry-lesnik/vector-logic/compiler"
	"github.com/dmitry-lesnik/vector-logic/config"
	ruleerrors "github.com/dmitry-lesnik/vector-logic/internal/errors"
	"github.com/dmitry-lesnik/vector-logic/ruleconverter"
	"github.com/dmitry-lesnik/vector-logic/statevector"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Engine holds a fixed set of Boolean variables, a growing list of rules
// (as state vectors) and, once compiled, a single "valid set" state
// vector characterizing every rule added so far.
type Engine struct {
	name        string
	variables   []string
	variableIdx map[string]int
	opts        config.Options
	converter   *ruleconverter.Converter
	selector    compiler.ClusterSelector

	uncompiledRules []string
	stateVectors    []statevector.StateVector
	compiledRules   []string

	validSet          statevector.StateVector
	hasValidSet       bool
	isCompiled        bool
	intermediateSizes []int
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	name    string
	rules   []string
	compile config.Options
}

// WithName sets the engine's display name, used by Print.
func WithName(name string) Option {
	return func(c *engineConfig) { c.name = name }
}

// WithRules pre-adds the given rule strings, in order, during New.
func WithRules(rules ...string) Option {
	return func(c *engineConfig) { c.rules = append(c.rules, rules...) }
}

// WithCompilerOptions overrides the scheduler/simplifier options.
// MaxClusterSize sets the scheduler's cluster size for Compile and
// Predict. MaxSimplifyIterations applies only when Predict multiplies
// evidence into an existing valid set; the scheduler itself always
// simplifies to a fixed point.
func WithCompilerOptions(opts ...config.Option) Option {
	return func(c *engineConfig) { c.compile = config.Apply(opts...) }
}

// New builds an Engine over the given variable names: validated,
// deduplicated, sorted, and assigned 1-based indices in that sorted
// order. Any initial rules are parsed and converted immediately.
func New(variables []string, opts ...Option) (*Engine, error) {
	cfg := engineConfig{compile: config.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	unique := make(map[string]struct{}, len(variables))
	for _, v := range variables {
		if !identifierPattern.MatchString(v) {
			return nil, ruleerrors.New("New", "variable name '%s' is not conformal", v)
		}
		unique[v] = struct{}{}
	}
	sorted := make([]string, 0, len(unique))
	for v := range unique {
		sorted = append(sorted, v)
	}
	sort.Strings(sorted)

	variableIdx := make(map[string]int, len(sorted))
	for i, v := range sorted {
		variableIdx[v] = i + 1
	}

	converter, err := ruleconverter.New(func(name string) (int, bool) {
		idx, ok := variableIdx[name]
		return idx, ok
	})
	if err != nil {
		return nil, err
	}

	e := &Engine{
		name:        cfg.name,
		variables:   sorted,
		variableIdx: variableIdx,
		opts:        cfg.compile,
		converter:   converter,
		selector:    compiler.DefaultClusterSelector(cfg.compile.MaxClusterSize),
	}

	for _, rule := range cfg.rules {
		if err := e.AddRule(rule); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Name returns the engine's display name, which may be empty.
func (e *Engine) Name() string { return e.name }

// Variables returns the sorted, deduplicated variable list.
func (e *Engine) Variables() []string {
	return append([]string(nil), e.variables...)
}

// UncompiledRules returns the rule (and evidence/custom-vector) labels
// added since the last Compile.
func (e *Engine) UncompiledRules() []string {
	return append([]string(nil), e.uncompiledRules...)
}

// CompiledRules returns every rule label folded into the current valid
// set across all Compile calls so far.
func (e *Engine) CompiledRules() []string {
	return append([]string(nil), e.compiledRules...)
}

// StateVectors returns the uncompiled state vectors awaiting the next Compile.
func (e *Engine) StateVectors() []statevector.StateVector {
	return append([]statevector.StateVector(nil), e.stateVectors...)
}

// IsCompiled reports whether the engine has a valid set that reflects
// every rule added so far (false immediately after any mutating call).
func (e *Engine) IsCompiled() bool { return e.isCompiled }

// ValidSet returns the engine's current valid set and whether Compile
// has ever been called; querying before the first Compile is a usage
// error the caller must check for, not a panic.
func (e *Engine) ValidSet() (statevector.StateVector, bool) {
	return e.validSet, e.hasValidSet
}

// IntermediateSizes returns the cube-count trace recorded by the most
// recent Compile call.
func (e *Engine) IntermediateSizes() []int {
	return append([]int(nil), e.intermediateSizes...)
}

// IsContradiction reports whether the engine has a valid set and it is
// a contradiction.
func (e *Engine) IsContradiction() bool {
	return e.hasValidSet && e.validSet.IsContradiction()
}

func (e *Engine) variableIndex(name string) (int, bool) {
	idx, ok := e.variableIdx[name]
	return idx, ok
}
