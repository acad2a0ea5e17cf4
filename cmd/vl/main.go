// SPDX-License-Identifier: Apache-2.0

// Command vl loads a rule file, builds and compiles an engine.Engine
// over it, and drops into an interactive repl for further rules,
// predictions, and prints.
//
// Rule file format: one directive per line. A "variables: a, b, c"
// line declares the variable table; "rule: <expr>" lines add rules;
// blank lines and "#"-prefixed lines are ignored.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dmitry-lesnik/vector-logic/engine"
	"github.com/dmitry-lesnik/vector-logic/internal/clilog"
	ruleerrors "github.com/dmitry-lesnik/vector-logic/internal/errors"
	"github.com/dmitry-lesnik/vector-logic/repl"
)

func main() {
	log := clilog.Stderr()

	if len(os.Args) < 2 {
		fmt.Println("Usage: vl <rules-file>")
		os.Exit(1)
	}

	path := os.Args[1]
	file, err := os.Open(path)
	if err != nil {
		log.Error("failed to read file: %s", err)
		os.Exit(1)
	}
	defer file.Close()

	variables, rules, err := parseRuleFile(file)
	if err != nil {
		log.Error("%s", err)
		os.Exit(1)
	}

	e, err := engine.New(variables, engine.WithName(path), engine.WithRules(rules...))
	if err != nil {
		reportEngineError(log, err)
		os.Exit(1)
	}

	if err := e.Compile(); err != nil {
		reportEngineError(log, err)
		os.Exit(1)
	}

	e.Print(os.Stdout, true)
	log.Success("Loaded and compiled %s", path)

	repl.Start(os.Stdin, os.Stdout, e)
}

func parseRuleFile(r *os.File) (variables, rules []string, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "variables:"):
			for _, name := range strings.Split(strings.TrimPrefix(line, "variables:"), ",") {
				name = strings.TrimSpace(name)
				if name != "" {
					variables = append(variables, name)
				}
			}
		case strings.HasPrefix(line, "rule:"):
			rules = append(rules, strings.TrimSpace(strings.TrimPrefix(line, "rule:")))
		default:
			return nil, nil, fmt.Errorf("unrecognized line: %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return variables, rules, nil
}

func reportEngineError(log *clilog.Logger, err error) {
	if se, ok := err.(*ruleerrors.SyntaxError); ok {
		log.Error("%s", ruleerrors.FormatSyntaxError(se))
		return
	}
	log.Error("%s", err)
}
