package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/mihai-snyk/genetic/apis/config/v1alpha1"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "evolution.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEvolveCountdown(t *testing.T) {
	config := writeConfig(t, `
apiVersion: genetic.mihai-snyk.io/v1alpha1
kind: Evolution
metadata:
  name: countdown
  generation: 3
spec:
  problem: Countdown
  direction: Minimize
  maxIterations: 1000
  seed: 1
  cacheFitness: true
  selector:
    type: Tournament
    tournamentSize: 3
`)
	plot := filepath.Join(t.TempDir(), "plot.html")

	stdout, stderr, err := execute(t, "--config", config, "--plot", plot)
	require.NoError(t, err)

	obj, err := v1alpha1.Decode([]byte(stdout))
	require.NoError(t, err)
	status := obj.Status
	assert.Equal(t, v1alpha1.EvolutionPhaseMaxIterationsReached, status.Phase)
	assert.Equal(t, uint64(1000), status.Generations)
	assert.Equal(t, "0", status.BestFitness)
	assert.Equal(t, "{I:0}", status.Best)
	assert.NotEmpty(t, status.RunID)
	assert.Positive(t, status.CacheHits)
	require.Len(t, status.Conditions, 1)
	assert.Equal(t, metav1.ConditionTrue, status.Conditions[0].Status)
	assert.Equal(t, int64(3), status.Conditions[0].ObservedGeneration)

	assert.Contains(t, stderr, "Countdown: MaxIterationsReached after 1,000 generations")
	html, err := os.ReadFile(plot)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Countdown")
}

func TestEvolveWritesOutputFile(t *testing.T) {
	config := writeConfig(t, `
apiVersion: genetic.mihai-snyk.io/v1alpha1
kind: Evolution
spec:
  problem: Parabola
  populationSize: 60
  direction: Maximize
  convergenceThreshold: 0.001
  convergencePatience: 5
  selector:
    type: Truncation
`)
	output := filepath.Join(t.TempDir(), "status.yaml")

	stdout, _, err := execute(t, "-c", config, "-o", output)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	obj, err := v1alpha1.Load(output)
	require.NoError(t, err)
	assert.Equal(t, v1alpha1.EvolutionPhaseConverged, obj.Status.Phase)
	assert.Equal(t, 10, obj.Spec.Selector.Count)
}

func TestEvolveReportsSelectionFailure(t *testing.T) {
	// Roulette weights collapse once every individual has the same value.
	config := writeConfig(t, `
apiVersion: genetic.mihai-snyk.io/v1alpha1
kind: Evolution
spec:
  problem: Countdown
  populationSize: 20
  direction: Minimize
  maxIterations: 1000
  seed: 3
  selector:
    type: Roulette
`)
	stdout, _, err := execute(t, "--config", config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roulette selection failed")

	obj, decodeErr := v1alpha1.Decode([]byte(stdout))
	require.NoError(t, decodeErr)
	assert.Equal(t, v1alpha1.EvolutionPhaseFailed, obj.Status.Phase)
	require.Len(t, obj.Status.Conditions, 1)
	assert.Equal(t, metav1.ConditionFalse, obj.Status.Conditions[0].Status)
}

func TestEvolveSameSeedSameResult(t *testing.T) {
	config := writeConfig(t, `
apiVersion: genetic.mihai-snyk.io/v1alpha1
kind: Evolution
spec:
  problem: Sphere
  populationSize: 50
  direction: Minimize
  maxIterations: 40
  seed: 42
  selector:
    type: Tournament
    tournamentSize: 3
`)
	var results []v1alpha1.EvolutionStatus
	for range 2 {
		stdout, _, err := execute(t, "--config", config)
		require.NoError(t, err)
		obj, err := v1alpha1.Decode([]byte(stdout))
		require.NoError(t, err)
		results = append(results, obj.Status)
	}
	assert.NotEmpty(t, results[0].BestFitness)
	assert.Equal(t, results[0].BestFitness, results[1].BestFitness)
	assert.Equal(t, results[0].Best, results[1].Best)
	assert.NotEqual(t, results[0].RunID, results[1].RunID)
}

func TestEvolveRejectsInvalidSelector(t *testing.T) {
	config := writeConfig(t, `
apiVersion: genetic.mihai-snyk.io/v1alpha1
kind: Evolution
spec:
  problem: OneMax
  populationSize: 4
  direction: Maximize
  selector:
    type: Tournament
    tournamentSize: 5
`)
	stdout, _, err := execute(t, "--config", config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selector.size")
	assert.Empty(t, stdout)
}

func TestEvolveRequiresConfig(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)
}
