package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodonSampleEndToEnd(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.csv")
	assert.NoError(t, os.WriteFile(inputPath, []byte("s,AAA\n"), 0o644))

	probPath := filepath.Join(dir, "probs.csv")
	assert.NoError(t, os.WriteFile(probPath, []byte("A,GCA,1.0,0\n"), 0o644))

	sequencesOut := filepath.Join(dir, "sequences.csv")
	ratiosOut := filepath.Join(dir, "ratios.csv")

	app := application()
	args := []string{
		"codonsample",
		"-i", inputPath,
		"-s", sequencesOut,
		"-r", ratiosOut,
		"-p", probPath,
		"-t", "3",
		"-n", "3",
		"-g", "0.333",
	}
	err := app.Run(args)
	assert.NoError(t, err)

	sequencesContent, err := os.ReadFile(sequencesOut)
	assert.NoError(t, err)
	assert.Contains(t, string(sequencesContent), "GCAGCAGCA")

	ratiosContent, err := os.ReadFile(ratiosOut)
	assert.NoError(t, err)
	assert.NotEmpty(t, ratiosContent)
}

func TestCodonSampleRejectsOversizedLineLength(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.csv")
	assert.NoError(t, os.WriteFile(inputPath, []byte("s,AAA\n"), 0o644))

	app := application()
	args := []string{
		"codonsample",
		"-i", inputPath,
		"-s", filepath.Join(dir, "seq.csv"),
		"-r", filepath.Join(dir, "rat.csv"),
		"-l", "70000",
	}
	err := app.Run(args)
	assert.Error(t, err)
}
