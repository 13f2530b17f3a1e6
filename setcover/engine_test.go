package setcover

import (
	"testing"

	"github.com/LadnerLab/Library-Design/prng"
	"github.com/LadnerLab/Library-Design/seqio"
	"github.com/stretchr/testify/assert"
)

func TestValidateRejectsYAtOrAbove256(t *testing.T) {
	cfg := Config{X: 4, Y: 256, MinCoverage: 1.0}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsYNotGreaterThanX(t *testing.T) {
	cfg := Config{X: 5, Y: 5, MinCoverage: 1.0}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsOutOfRangeCoverage(t *testing.T) {
	cfg := Config{X: 4, Y: 7, MinCoverage: 1.5}
	assert.Error(t, cfg.Validate())
}

func TestOnePickCoversIdenticalSequences(t *testing.T) {
	// Ymer window equals the full sequence length, so the single ymer each
	// sequence offers necessarily contains every xmer window of that
	// sequence: one pick must reach full coverage.
	sequences := []seqio.Sequence{
		{Name: "a", Residues: "ACDEFGHIK"},
		{Name: "b", Residues: "ACDEFGHIK"},
	}
	engine, err := NewEngine(sequences, nil, Config{X: 4, Y: 9, MinCoverage: 1.0, Threads: 2})
	assert.NoError(t, err)

	design := engine.Run(prng.New())
	assert.Len(t, design.Picks, 1)
	assert.Equal(t, design.TotalXmers, design.CoveredXmers)
}

func TestPreDesignedFastaZeroesResidualCoverage(t *testing.T) {
	sequences := []seqio.Sequence{{Name: "a", Residues: "ACDEFGHIK"}}
	preDesigned := []seqio.Sequence{{Name: "pre", Residues: "ACDEFGHIK"}}

	engine, err := NewEngine(sequences, preDesigned, Config{X: 4, Y: 7, MinCoverage: 1.0, Threads: 1})
	assert.NoError(t, err)

	design := engine.Run(prng.New())
	assert.Empty(t, design.Picks)
}

func TestShortSequencesYieldEmptyDesign(t *testing.T) {
	sequences := []seqio.Sequence{{Name: "a", Residues: "ACD"}}
	engine, err := NewEngine(sequences, nil, Config{X: 2, Y: 5, MinCoverage: 1.0, Threads: 1})
	assert.NoError(t, err)

	design := engine.Run(prng.New())
	assert.Empty(t, design.Picks)
}

func TestEachYmerChosenAtMostOnce(t *testing.T) {
	sequences := []seqio.Sequence{
		{Name: "a", Residues: "ACDEFGHIKLMNPQRSTVWY"},
	}
	engine, err := NewEngine(sequences, nil, Config{X: 3, Y: 5, MinCoverage: 1.0, Threads: 4})
	assert.NoError(t, err)

	design := engine.Run(prng.New())
	seen := make(map[string]bool)
	for _, pick := range design.Picks {
		assert.False(t, seen[pick.Peptide+pick.Tags[0]])
		seen[pick.Peptide+pick.Tags[0]] = true
	}
}

func TestCoveredXmersNeverExceedsTotal(t *testing.T) {
	sequences := []seqio.Sequence{
		{Name: "a", Residues: "ACDEFGHIKLMNPQRSTVWY"},
		{Name: "b", Residues: "MNPQRSTVWYACDEFGHIKL"},
	}
	engine, err := NewEngine(sequences, nil, Config{X: 3, Y: 6, MinCoverage: 1.0, Threads: 3})
	assert.NoError(t, err)

	design := engine.Run(prng.New())
	assert.LessOrEqual(t, design.CoveredXmers, design.TotalXmers)
}

func TestBestPicksSmallestDesign(t *testing.T) {
	small := Design{Picks: []Pick{{Peptide: "AAAAA"}}}
	large := Design{Picks: []Pick{{Peptide: "AAAAA"}, {Peptide: "BBBBB"}}}
	best := Best([]Design{large, small})
	assert.Equal(t, 1, len(best.Picks))
}
