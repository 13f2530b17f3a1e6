// Package sampler implements Monte-Carlo codon back-translation: for
// each input protein sequence, repeatedly draw a random but
// weight-respecting codon for every residue, then keep the trials whose
// GC content lands closest to a target ratio.
package sampler

import "fmt"

// baseA..baseT mirror the order of codon.Codon.Nucleotides: A, C, G, T.
const (
	baseA = 0
	baseC = 1
	baseG = 2
	baseT = 3
)

// Encoding is one Monte-Carlo trial's back-translation of a single
// protein sequence.
type Encoding struct {
	SourceName  string
	Rank        int
	Residues    string
	Nucleotides string

	BaseCounts  [4]int
	CodonCounts [64]int
	AminoAcids  map[byte]int

	GCRatio   float64
	GCDistAbs float64
}

// Name returns the zero-padded record name "{source}_{index}" for this
// encoding's position within the ranked subsample actually written out,
// not its original Monte-Carlo trial index. index is 0-based; total is
// the number of encodings kept for this source, used to size the
// zero-padding.
func (e Encoding) Name(index, total int) string {
	width := len(fmt.Sprintf("%d", total-1))
	if width < 1 {
		width = 1
	}
	return fmt.Sprintf("%s_%0*d", e.SourceName, width, index)
}
