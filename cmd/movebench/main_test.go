package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCommand()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["run"])
	assert.True(t, names["compare"])
	assert.True(t, names["report"])
	assert.True(t, names["translate"])
}

func TestRootCommand_Help(t *testing.T) {
	out, err := runCommand(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "movebench")
	assert.Contains(t, out, "run")
}

func TestRunCommand_MissingConfig(t *testing.T) {
	_, err := runCommand(t, "run", "does-not-exist.yaml")
	assert.Error(t, err)
}
