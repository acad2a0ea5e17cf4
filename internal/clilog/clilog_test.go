package clilog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessIncludesMessage(t *testing.T) {
	var buf strings.Builder
	New(&buf).Success("done with %s", "it")
	assert.Contains(t, buf.String(), "done with it")
}

func TestErrorIncludesMessage(t *testing.T) {
	var buf strings.Builder
	New(&buf).Error("bad %s", "input")
	assert.Contains(t, buf.String(), "bad input")
}

func TestInfoPrintsPlainLine(t *testing.T) {
	var buf strings.Builder
	New(&buf).Info("plain %d", 42)
	assert.Equal(t, "plain 42\n", buf.String())
}
