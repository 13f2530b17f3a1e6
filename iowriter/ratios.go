package iowriter

import (
	"encoding/csv"
	"io"
	"strconv"
)

// aminoAcidOrder is the fixed column order for the 20 amino-acid
// fraction columns of a ratios row.
var aminoAcidOrder = []byte("ACDEFGHIKLMNPQRSTVWY")

// nucleotideOrder is the fixed column order for the 4 nucleotide
// fraction columns.
var nucleotideOrder = []byte("ACGT")

// RatioRow is one 88-column ratios record: 4 nucleotide fractions, 20
// amino-acid fractions, 64 per-codon fractions (indexed 0..63).
type RatioRow struct {
	Nucleotides map[byte]float64
	AminoAcids  map[byte]float64
	Codons      [64]float64
}

// WriteRatiosCSV writes rows as fixed 88-column CSV lines, each value
// formatted to 4 significant digits.
func WriteRatiosCSV(w io.Writer, rows []RatioRow) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	for _, row := range rows {
		record := make([]string, 0, 88)
		for _, base := range nucleotideOrder {
			record = append(record, formatG4(row.Nucleotides[base]))
		}
		for _, aa := range aminoAcidOrder {
			record = append(record, formatG4(row.AminoAcids[aa]))
		}
		for _, frac := range row.Codons {
			record = append(record, formatG4(frac))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatG4(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
