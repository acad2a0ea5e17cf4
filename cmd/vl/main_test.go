package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleFileSplitsVariablesAndRules(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "rules-*.txt")
	require.NoError(t, err)
	_, err = f.WriteString("# comment\nvariables: x1, x2, x3\n\nrule: x1 => x2\nrule: x2 => x3\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = os.Open(f.Name())
	require.NoError(t, err)
	defer f.Close()

	variables, rules, err := parseRuleFile(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "x2", "x3"}, variables)
	assert.Equal(t, []string{"x1 => x2", "x2 => x3"}, rules)
}

func TestParseRuleFileRejectsUnrecognizedLine(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "rules-*.txt")
	require.NoError(t, err)
	_, err = f.WriteString("bogus line\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = os.Open(f.Name())
	require.NoError(t, err)
	defer f.Close()

	_, _, err = parseRuleFile(f)
	assert.Error(t, err)
}
