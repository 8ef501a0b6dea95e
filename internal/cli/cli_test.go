package cli_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evolve/internal/cli"
	"github.com/katalvlaran/evolve/problems"
	"github.com/katalvlaran/evolve/xoshiro"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func csvRow(t *testing.T, out string) []string {
	t.Helper()
	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	return rows[1]
}

func TestProblemsCommand(t *testing.T) {
	out, _, err := execute(t, "problems")
	require.NoError(t, err)
	for _, name := range problems.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "dim=any")
	assert.Equal(t, len(problems.Names()), strings.Count(out, "\n"))
}

func TestRun_CSV(t *testing.T) {
	out, _, err := execute(t, "run", "--runs", "2", "--iterations", "5", "--format", "csv", "--log-level", "error")
	require.NoError(t, err)
	row := csvRow(t, out)
	assert.Equal(t, []string{"ga", problems.NameTubularColumn, "2"}, row[:3])
}

func TestRun_YAML(t *testing.T) {
	out, _, err := execute(t, "run",
		"--algo", "de", "--problem", "rastrigin", "--dim", "3",
		"--runs", "3", "--iterations", "10", "--workers", "2",
		"--format", "yaml", "--log-level", "error")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "de", doc["algorithm"])
	assert.Equal(t, "rastrigin", doc["problem"])
	assert.Equal(t, 3, doc["runs"])
	assert.Len(t, doc["values"], 3)
	assert.Len(t, doc["best"], 3)
}

func TestRun_Text(t *testing.T) {
	out, logs, err := execute(t, "run", "--problem", "sphere", "--runs", "3", "--iterations", "5", "--seed", "2a")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ga on sphere: 3 runs, 3 feasible\n"), out)
	assert.Contains(t, out, "median")
	assert.Contains(t, logs, "starting benchmark")
	assert.Contains(t, logs, "benchmark finished")
}

func TestRun_SameSeedSameOutput(t *testing.T) {
	args := []string{"run", "--problem", "himmelblau", "--runs", "4", "--iterations", "20", "--format", "csv", "--log-level", "error"}
	a, _, err := execute(t, append(args, "--workers", "1")...)
	require.NoError(t, err)
	b, _, err := execute(t, append(args, "--workers", "4")...)
	require.NoError(t, err)

	ra, rb := csvRow(t, a), csvRow(t, b)
	assert.Equal(t, ra[:len(ra)-1], rb[:len(rb)-1], "all but elapsed time")
}

func TestRun_EnvironmentAndConfigFile(t *testing.T) {
	t.Setenv("EVOLVE_RUNS", "3")
	out, _, err := execute(t, "run", "--iterations", "5", "--format", "csv", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "3", csvRow(t, out)[2])

	// An explicit flag beats the environment.
	out, _, err = execute(t, "run", "--runs", "2", "--iterations", "5", "--format", "csv", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "2", csvRow(t, out)[2])

	path := filepath.Join(t.TempDir(), "study.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algo: de\nproblem: himmelblau\niterations: 5\nformat: csv\n"), 0o600))
	out, _, err = execute(t, "run", "--config", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, []string{"de", problems.NameHimmelblau, "3"}, csvRow(t, out)[:3])
}

func TestRun_Errors(t *testing.T) {
	base := []string{"run", "--runs", "1", "--iterations", "1", "--log-level", "error"}

	_, _, err := execute(t, append(base, "--algo", "pso")...)
	assert.ErrorContains(t, err, "unknown algorithm")

	_, _, err = execute(t, append(base, "--format", "xml")...)
	assert.ErrorContains(t, err, "unknown output format")

	_, _, err = execute(t, append(base, "--problem", "rosenbrock")...)
	assert.ErrorIs(t, err, problems.ErrUnknownProblem)

	_, _, err = execute(t, append(base, "--seed", "zz")...)
	assert.ErrorContains(t, err, "seed")

	_, _, err = execute(t, append(base, "--seed", "0,0,0,0")...)
	assert.ErrorIs(t, err, xoshiro.ErrZeroState)

	_, _, err = execute(t, append(base, "--tournament", "50")...)
	assert.Error(t, err)

	_, _, err = execute(t, "run", "--log-level", "loud")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}
