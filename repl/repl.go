// Package repl SPDX-License-Identifier: Apache-2.0
//
// repl is an interactive line-oriented shell over an engine.Engine:
// bare lines are added as rules, ":"-prefixed lines are commands
// (compile, predict, print, quit).
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitry-lesnik/vector-logic/engine"
	ruleerrors "github.com/dmitry-lesnik/vector-logic/internal/errors"
)

// PROMPT is printed before reading each line.
const PROMPT = ">> "

// Start runs the REPL loop over in, writing output and diagnostics to
// out, until in is exhausted or a :quit/:exit command is read.
func Start(in io.Reader, out io.Writer, e *engine.Engine) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if !runCommand(out, e, line[1:]) {
				return
			}
			continue
		}

		if err := e.AddRule(line); err != nil {
			reportError(out, err)
		}
	}
}

func runCommand(out io.Writer, e *engine.Engine, command string) bool {
	fields := strings.SplitN(strings.TrimSpace(command), " ", 2)
	name := fields[0]
	var rest string
	if len(fields) > 1 {
		rest = strings.TrimSpace(fields[1])
	}

	switch name {
	case "quit", "exit":
		return false
	case "compile":
		if err := e.Compile(); err != nil {
			reportError(out, err)
			return true
		}
		fmt.Fprintln(out, "compiled.")
	case "print":
		e.Print(out, true)
	case "predict":
		evidence, err := parseEvidence(rest)
		if err != nil {
			reportError(out, err)
			return true
		}
		result, err := e.Predict(evidence)
		if err != nil {
			reportError(out, err)
			return true
		}
		if result.IsContradiction() {
			fmt.Fprintln(out, "contradiction: evidence is inconsistent with current rules.")
			return true
		}
		result.Print(out, 0, 0)
	default:
		fmt.Fprintf(out, "unknown command: %s\n", name)
	}
	return true
}

// parseEvidence parses a comma-separated "name=true,other=false" list
// into the map shape Engine.Predict/AddEvidence expect.
func parseEvidence(spec string) (map[string]bool, error) {
	evidence := make(map[string]bool)
	if spec == "" {
		return evidence, nil
	}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, ruleerrors.New("predict", "malformed evidence term %q, expected name=true|false", part)
		}
		name := strings.TrimSpace(kv[0])
		value, err := strconv.ParseBool(strings.TrimSpace(kv[1]))
		if err != nil {
			return nil, ruleerrors.New("predict", "malformed evidence value for %q: %v", name, err)
		}
		evidence[name] = value
	}
	return evidence, nil
}

func reportError(out io.Writer, err error) {
	if se, ok := err.(*ruleerrors.SyntaxError); ok {
		fmt.Fprintln(out, ruleerrors.FormatSyntaxError(se))
		return
	}
	fmt.Fprintf(out, "error: %s\n", err)
}
