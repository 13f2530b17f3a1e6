package main

import (
	"fmt"

	"github.com/LadnerLab/Library-Design/kmer"
	"github.com/LadnerLab/Library-Design/kmer/substitution"
	"github.com/LadnerLab/Library-Design/prng"
	"github.com/LadnerLab/Library-Design/seqio"
	"github.com/LadnerLab/Library-Design/setcover"
	"github.com/urfave/cli/v2"
)

// commandSetCover validates the set-cover CLI's flags, builds the
// xmer/ymer universe, and runs the greedy loop across the requested
// restarts, persisting the best design found.
func commandSetCover(c *cli.Context) error {
	x := c.Int("x")
	y := c.Int("y")
	iterations := c.Int("i")
	redundancy := c.Int("r")
	coverage := c.Float64("c")
	inputPath := c.String("q")
	preDesignedPath := c.String("e")
	outBase := c.String("o")
	threads := c.Int("t")
	usePermutation := c.Bool("p")
	matrixName := c.String("b")
	cutoff := c.Int("n")

	sequences, err := seqio.ReadFastaFile(inputPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("setcover: unable to read input FASTA %q: %v", inputPath, err), 1)
	}

	var preDesigned []seqio.Sequence
	if preDesignedPath != "" {
		preDesigned, err = seqio.ReadFastaFile(preDesignedPath)
		if err != nil {
			return cli.Exit(fmt.Sprintf("setcover: unable to read pre-designed FASTA %q: %v", preDesignedPath, err), 1)
		}
	}

	neighborhood, err := resolveNeighborhood(usePermutation, matrixName, cutoff)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	cfg := setcover.Config{X: x, Y: y, MinCoverage: coverage, Neighborhood: neighborhood, Threads: threads}
	engine, err := setcover.NewEngine(sequences, preDesigned, cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	outputPath := fmt.Sprintf("%s_R_%d", outBase, redundancy)
	if _, err := setcover.RunWithRestarts(engine, iterations, prng.New(), outputPath); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

// resolveNeighborhood picks the indexer's neighborhood-expansion mode
// from the CLI's mutually-exclusive -p (functional group) and -b/-n
// (substitution matrix) flags. Neither flag set means no expansion.
func resolveNeighborhood(usePermutation bool, matrixName string, cutoff int) (kmer.Neighborhood, error) {
	if usePermutation && matrixName != "" {
		return nil, fmt.Errorf("setcover: -p and -b are mutually exclusive neighborhood modes")
	}
	if usePermutation {
		return kmer.FunctionalGroupNeighborhood, nil
	}
	if matrixName != "" {
		matrix, err := substitution.LoadNamed(matrixName)
		if err != nil {
			return nil, fmt.Errorf("setcover: unable to load substitution matrix %q: %w", matrixName, err)
		}
		return kmer.SubstitutionMatrixNeighborhood(matrix, cutoff), nil
	}
	return nil, nil
}
