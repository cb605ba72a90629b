package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDataset = `{
  "SAN_FRANCISCO": {"cells": [
    {"token": "80858094", "vertices": [[37.70, -122.50], [37.70, -122.49], [37.71, -122.49]], "metrics": {"police_reported": 3}}
  ]},
  "PHOENIX": {"cells": [
    {"token": "872b0c", "vertices": [[33.40, -112.10], [33.40, -112.00], [33.50, -112.00]], "metrics": {"police_reported": 1500}}
  ]}
}`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cells.json")
	require.NoError(t, os.WriteFile(path, []byte(testDataset), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--env-file", ""))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"render", "list", "geojson"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRenderCommand_Flags(t *testing.T) {
	flag := renderCmd.Flags().Lookup("location")
	require.NotNil(t, flag)
	assert.Equal(t, "SAN_FRANCISCO", flag.DefValue)

	flag = renderCmd.Flags().Lookup("metric")
	require.NotNil(t, flag)
	assert.Equal(t, "police_reported", flag.DefValue)
}

func TestRenderCommand_WritesPage(t *testing.T) {
	path := writeDataset(t)
	output := filepath.Join(t.TempDir(), "map.html")

	out, err := execute(t, "render", "--dataset", path, "--location", "PHOENIX", "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Map saved to")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Waymo: Phoenix - Police reported")
	assert.Contains(t, string(data), `<span id="legend-max">1.5k</span>`)
}

func TestRenderCommand_InvalidMetric(t *testing.T) {
	path := writeDataset(t)
	_, err := execute(t, "render", "--dataset", path, "--metric", "speed", "--location", "SAN_FRANCISCO")
	require.Error(t, err)
}

func TestListCommand(t *testing.T) {
	path := writeDataset(t)

	out, err := execute(t, "list", "--dataset", path, "--metric", "police_reported")
	require.NoError(t, err)
	assert.Contains(t, out, "Police reported")
	assert.Regexp(t, `San Francisco\s+1\s+3`, out)
	assert.Regexp(t, `Phoenix\s+1\s+1.5k`, out)
}
