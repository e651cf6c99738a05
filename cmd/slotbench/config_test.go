package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadScenarioDefaults(t *testing.T) {
	sc, err := loadScenario("")
	require.NoError(t, err)
	assert.Equal(t, defaultScenario(), sc)
}

func TestLoadScenarioTOML(t *testing.T) {
	path := writeScenario(t, "bench.toml", `
slots = [5, 50]
iterations = 20
executor = "pool"
`)
	sc, err := loadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 50}, sc.Slots)
	assert.Equal(t, 20, sc.Iterations)
	assert.Equal(t, "pool", sc.Executor)
	assert.Equal(t, 4, sc.Workers)
}

func TestLoadScenarioYAML(t *testing.T) {
	path := writeScenario(t, "bench.yml", `
slots: [1, 2, 3]
executor: goroutine
workers: 8
`)
	sc, err := loadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, sc.Slots)
	assert.Equal(t, 1_000, sc.Iterations)
	assert.Equal(t, "goroutine", sc.Executor)
	assert.Equal(t, 8, sc.Workers)
}

func TestLoadScenarioRejectsBadInput(t *testing.T) {
	_, err := loadScenario(writeScenario(t, "bench.json", `{}`))
	assert.Error(t, err)

	_, err = loadScenario(writeScenario(t, "bench.toml", `slots = [0]`))
	assert.Error(t, err)

	_, err = loadScenario(writeScenario(t, "bench.yaml", `iterations: -1`))
	assert.Error(t, err)

	_, err = loadScenario(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestScenarioExecutor(t *testing.T) {
	for _, name := range []string{"inline", "goroutine", "pool"} {
		sc := defaultScenario()
		sc.Executor = name
		exec, stop, err := sc.executor()
		require.NoError(t, err, name)
		require.NotNil(t, exec)
		stop()
	}

	sc := defaultScenario()
	sc.Executor = "fibers"
	_, _, err := sc.executor()
	assert.Error(t, err)
}
