package seqio

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// ambiguityCodes are the residue letters that make a sampler record
// unusable: no single codon probability distribution is defined for them.
// X is included alongside the B/J/O/U/Z ambiguity codes because it marks
// an unresolved residue rather than a codon table gap.
var ambiguityCodes = map[byte]bool{
	'B': true, 'J': true, 'O': true, 'U': true, 'X': true, 'Z': true,
}

// ReadResidueCSV reads "name,residues" records, one per line, for the
// codon sampler. Records containing an ambiguity code are skipped with a
// notice; lines with a non-A-Z residue character are reported with their
// line number and skipped; lines whose residues exceed maxLineLength are
// reported and skipped. A line longer than maxLineLength+4096 bytes stops
// the read, and the scanner's error is returned.
func ReadResidueCSV(r io.Reader, maxLineLength int) ([]Sequence, error) {
	var sequences []Sequence
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength+4096)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}

		idx := strings.IndexByte(line, ',')
		if idx < 0 {
			log.Printf("seqio: line %d: expected \"name,residues\", skipping", lineNo)
			continue
		}
		name := line[:idx]
		residues := strings.ToUpper(strings.TrimSpace(line[idx+1:]))

		if len(residues) > maxLineLength {
			log.Printf("seqio: line %d: residues length %d exceeds maximum %d, skipping", lineNo, len(residues), maxLineLength)
			continue
		}

		if skip, reason := invalidResidues(residues); skip {
			log.Printf("seqio: line %d (%s): %s, skipping", lineNo, name, reason)
			continue
		}

		sequences = append(sequences, Sequence{Name: name, Residues: residues})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seqio: reading residue csv: %w", err)
	}
	return sequences, nil
}

// ReadResidueCSVFile opens path and parses it with ReadResidueCSV.
func ReadResidueCSVFile(path string, maxLineLength int) ([]Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadResidueCSV(f, maxLineLength)
}

func invalidResidues(residues string) (bool, string) {
	for i := 0; i < len(residues); i++ {
		c := residues[i]
		if ambiguityCodes[c] {
			return true, fmt.Sprintf("ambiguous residue code %q", c)
		}
		if c < 'A' || c > 'Z' {
			return true, fmt.Sprintf("invalid residue character %q at position %d", c, i)
		}
	}
	return false, ""
}
