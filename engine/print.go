package engine

import (
	"fmt"
	"io"
	"strings"
)

// Print renders a human-readable trace of the engine: its name,
// variable list, and every rule added so far (compiled rules first,
// then any still awaiting Compile). When debugInfo is set, it also
// prints the valid set and the intermediate cube-count sizes recorded
// by the most recent Compile.
func (e *Engine) Print(w io.Writer, debugInfo bool) {
	fmt.Fprintf(w, "====== Engine: %s ======\n", e.name)
	fmt.Fprintf(w, "Variables: [%s]\n", strings.Join(e.variables, ", "))

	n := 1
	for _, rule := range e.compiledRules {
		fmt.Fprintf(w, "%d. Rule:  %s\n", n, rule)
		n++
	}
	for _, rule := range e.uncompiledRules {
		fmt.Fprintf(w, "%d. Rule:  %s\n", n, rule)
		n++
	}

	if !debugInfo {
		return
	}

	if e.hasValidSet {
		fmt.Fprintln(w, "Valid set:")
		fmt.Fprintln(w, e.validSet.ToString(0, 4))
	} else {
		fmt.Fprintln(w, "Valid set: <not compiled>")
	}
	if len(e.intermediateSizes) > 0 {
		fmt.Fprintf(w, "Intermediate sizes: %v\n", e.intermediateSizes)
	}
}
