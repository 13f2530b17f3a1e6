package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetCoverEndToEnd(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.fasta")
	err := os.WriteFile(inputPath, []byte(">a\nACDEFGHIK\n>b\nACDEFGHIK\n"), 0o644)
	assert.NoError(t, err)

	outBase := filepath.Join(dir, "design")

	app := application()
	args := []string{
		"setcover",
		"-x", "4", "-y", "7", "-c", "1.0",
		"-q", inputPath,
		"-o", outBase,
		"-i", "1",
	}
	err = app.Run(args)
	assert.NoError(t, err)

	contents, err := os.ReadFile(outBase + "_R_1")
	assert.NoError(t, err)
	assert.Contains(t, string(contents), ">")
}

func TestSetCoverRejectsMutuallyExclusiveNeighborhoodFlags(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.fasta")
	err := os.WriteFile(inputPath, []byte(">a\nACDEFGHIK\n"), 0o644)
	assert.NoError(t, err)

	app := application()
	args := []string{
		"setcover",
		"-x", "4", "-y", "7",
		"-q", inputPath,
		"-o", filepath.Join(dir, "design"),
		"-p", "-b", "blosum62",
	}
	err = app.Run(args)
	assert.Error(t, err)
}

func TestSetCoverRejectsYAtOrAbove256(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.fasta")
	err := os.WriteFile(inputPath, []byte(">a\nACDEFGHIK\n"), 0o644)
	assert.NoError(t, err)

	app := application()
	args := []string{
		"setcover",
		"-x", "4", "-y", "256",
		"-q", inputPath,
		"-o", filepath.Join(dir, "design"),
	}
	err = app.Run(args)
	assert.Error(t, err)
}
