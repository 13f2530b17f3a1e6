package main

import (
	"fmt"
	"os"

	"github.com/LadnerLab/Library-Design/codon"
	"github.com/LadnerLab/Library-Design/iowriter"
	"github.com/LadnerLab/Library-Design/prng"
	"github.com/LadnerLab/Library-Design/sampler"
	"github.com/LadnerLab/Library-Design/seqio"
	"github.com/urfave/cli/v2"
)

const maxLineLength = 65536

// commandCodonSample validates the codon-sampler CLI's flags, runs the
// Monte-Carlo trials for every input sequence, and writes the subsampled
// encodings and their ratio rows.
func commandCodonSample(c *cli.Context) error {
	inputPath := c.String("i")
	sequencesOutPath := c.String("s")
	ratiosOutPath := c.String("r")
	codonTablePath := c.String("p")
	topK := c.Int("n")
	targetGC := c.Float64("g")
	trials := c.Int("t")
	threads := c.Int("c")
	maxLen := c.Int("l")

	if maxLen >= maxLineLength {
		return cli.Exit(fmt.Sprintf("codonsample: -l must be < %d, got %d", maxLineLength, maxLen), 1)
	}

	sequences, err := seqio.ReadResidueCSVFile(inputPath, maxLen)
	if err != nil {
		return cli.Exit(fmt.Sprintf("codonsample: unable to read residues CSV %q: %v", inputPath, err), 1)
	}

	var table *codon.Table
	if codonTablePath != "" {
		table, err = codon.LoadFile(codonTablePath)
	} else {
		table, err = codon.LoadStandard()
	}
	if err != nil {
		return cli.Exit(fmt.Sprintf("codonsample: unable to load codon table: %v", err), 1)
	}

	results, err := sampler.Run(sequences, table, trials, topK, threads, targetGC, prng.New())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := writeOutputs(sequences, results, sequencesOutPath, ratiosOutPath); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

func writeOutputs(sequences []seqio.Sequence, results map[string][]sampler.Encoding, sequencesOutPath, ratiosOutPath string) error {
	sequencesOut, err := os.Create(sequencesOutPath)
	if err != nil {
		return fmt.Errorf("codonsample: unable to create %q: %w", sequencesOutPath, err)
	}
	defer sequencesOut.Close()

	ratiosOut, err := os.Create(ratiosOutPath)
	if err != nil {
		return fmt.Errorf("codonsample: unable to create %q: %w", ratiosOutPath, err)
	}
	defer ratiosOut.Close()

	var rows []iowriter.RatioRow
	for _, seq := range sequences {
		encodings := results[seq.Name]
		for idx, e := range encodings {
			fmt.Fprintf(sequencesOut, "%s,%s,%s,%.4g,%.4g\n",
				e.Name(idx, len(encodings)), e.Residues, e.Nucleotides, e.GCRatio, e.GCDistAbs)
			rows = append(rows, ratioRow(e))
		}
	}

	return iowriter.WriteRatiosCSV(ratiosOut, rows)
}

func ratioRow(e sampler.Encoding) iowriter.RatioRow {
	total := len(e.Nucleotides)
	residueCount := len(e.Residues)

	nucleotides := map[byte]float64{
		'A': fraction(e.BaseCounts[0], total),
		'C': fraction(e.BaseCounts[1], total),
		'G': fraction(e.BaseCounts[2], total),
		'T': fraction(e.BaseCounts[3], total),
	}

	aminoAcids := make(map[byte]float64, len(e.AminoAcids))
	for residue, count := range e.AminoAcids {
		aminoAcids[residue] = fraction(count, residueCount)
	}

	var codons [64]float64
	for i, count := range e.CodonCounts {
		codons[i] = fraction(count, residueCount)
	}

	return iowriter.RatioRow{Nucleotides: nucleotides, AminoAcids: aminoAcids, Codons: codons}
}

func fraction(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}
