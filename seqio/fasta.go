/*
Package seqio reads the two sequence formats the core engines consume: a
FASTA-like format for the set-cover designer, and a one-record-per-line
name,residues CSV for the codon sampler.

The FASTA reader returns errors from the underlying reader rather than
swallowing them. It does not validate the records themselves: residue
characters are passed through unchecked, and residue lines that appear
before the first '>' header are dropped.
*/
package seqio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sequence is a single named residue string. Residues are immutable once
// constructed by a reader.
type Sequence struct {
	Name     string
	Residues string
}

// ReadFasta reads every record from r. Lines starting with ';' are
// comments and are skipped; blank lines are skipped. The set-cover input
// admits any uppercase A-Z plus '-'.
func ReadFasta(r io.Reader) ([]Sequence, error) {
	var sequences []Sequence
	var lines []string
	var name string
	haveRecord := false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case len(line) == 0:
			continue
		case line[0] == ';':
			continue
		case line[0] == '>':
			if haveRecord {
				sequences = append(sequences, Sequence{Name: name, Residues: strings.Join(lines, "")})
			}
			name = line[1:]
			lines = nil
			haveRecord = true
		default:
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seqio: reading fasta: %w", err)
	}
	if haveRecord {
		sequences = append(sequences, Sequence{Name: name, Residues: strings.Join(lines, "")})
	}
	return sequences, nil
}

// ReadFastaFile opens path and parses it as FASTA.
func ReadFastaFile(path string) ([]Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadFasta(f)
}

// BuildFasta serializes sequences back to FASTA text: ">name\nresidues\n"
// per record, no line wrapping.
func BuildFasta(sequences []Sequence) []byte {
	var b strings.Builder
	for _, s := range sequences {
		b.WriteByte('>')
		b.WriteString(s.Name)
		b.WriteByte('\n')
		b.WriteString(s.Residues)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// WriteFasta writes sequences to path in FASTA format.
func WriteFasta(sequences []Sequence, path string) error {
	return os.WriteFile(path, BuildFasta(sequences), 0644)
}
