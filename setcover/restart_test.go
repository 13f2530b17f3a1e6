package setcover

import (
	"path/filepath"
	"testing"

	"github.com/LadnerLab/Library-Design/prng"
	"github.com/LadnerLab/Library-Design/seqio"
	"github.com/stretchr/testify/assert"
)

func TestRunWithRestartsPersistsBestDesign(t *testing.T) {
	sequences := []seqio.Sequence{
		{Name: "a", Residues: "ACDEFGHIK"},
		{Name: "b", Residues: "ACDEFGHIK"},
	}
	engine, err := NewEngine(sequences, nil, Config{X: 4, Y: 9, MinCoverage: 1.0, Threads: 2})
	assert.NoError(t, err)

	outputPath := filepath.Join(t.TempDir(), "design_R_1")
	best, err := RunWithRestarts(engine, 3, prng.New(), outputPath)
	assert.NoError(t, err)
	assert.Len(t, best.Picks, 1)

	persisted, err := seqio.ReadFastaFile(outputPath)
	assert.NoError(t, err)
	assert.Len(t, persisted, 1)
}

func TestRunWithRestartsRejectsZeroIterations(t *testing.T) {
	engine, err := NewEngine([]seqio.Sequence{{Name: "a", Residues: "ACDEFGHIK"}}, nil,
		Config{X: 4, Y: 7, MinCoverage: 1.0, Threads: 1})
	assert.NoError(t, err)

	_, err = RunWithRestarts(engine, 0, prng.New(), filepath.Join(t.TempDir(), "out"))
	assert.Error(t, err)
}
