/*
Package codon parses per-amino-acid codon probability tables and hands out
the stable, normalized codon list for a given amino-acid letter.

The table is fed by a simple four-column CSV (amino_acid, codon, weight,
codon_index). Unparseable rows are logged and skipped rather than
aborting the whole load.
*/
package codon

import (
	"embed"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

//go:embed data/standard_table.csv
var embeddedStandardTable embed.FS

// Codon holds a single triplet, its normalized weight, its declared index,
// and its precomputed nucleotide composition.
type Codon struct {
	Triplet     string
	Weight      float64
	Index       int
	Nucleotides [4]int // order: A, C, G, T
}

// Table maps an amino-acid letter to its ordered list of Codons.
type Table struct {
	rows map[byte][]Codon
}

var errEmptyTable = errors.New("codon: empty table")

// New returns an empty Table, ready for Load.
func New() *Table {
	return &Table{rows: make(map[byte][]Codon)}
}

// Lookup returns the ordered codon list for a letter. Unknown letters
// return a nil slice.
func (t *Table) Lookup(letter byte) []Codon {
	return t.rows[letter]
}

// Letters returns every amino-acid letter with a non-empty codon list, in
// ascending order, useful for iterating the full alphabet deterministically.
func (t *Table) Letters() []byte {
	letters := make([]byte, 0, len(t.rows))
	for l := range t.rows {
		letters = append(letters, l)
	}
	for i := 1; i < len(letters); i++ {
		for j := i; j > 0 && letters[j-1] > letters[j]; j-- {
			letters[j-1], letters[j] = letters[j], letters[j-1]
		}
	}
	return letters
}

// LoadStandard loads the embedded fallback codon table (equal-weighted
// NCBI table 1), used by default and by tests that don't want to depend on
// an external file.
func LoadStandard() (*Table, error) {
	f, err := embeddedStandardTable.Open("data/standard_table.csv")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// LoadFile reads and parses a codon-probability CSV from disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load parses a codon-probability CSV of the form `amino_acid,CODON,weight,codon_index`
// from r. Malformed rows are logged and skipped; EOF ends parsing. After
// parsing, each amino acid's codon weights are normalized to sum to 1.0
// and each codon's A/C/G/T composition is precomputed.
func Load(r io.Reader) (*Table, error) {
	t := New()
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	lineNo := 0
	for {
		record, err := cr.Read()
		lineNo++
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("codon: skipping malformed line %d: %v", lineNo, err)
			continue
		}
		c, letter, ok := parseRow(record, lineNo)
		if !ok {
			continue
		}
		t.rows[letter] = append(t.rows[letter], c)
	}

	if len(t.rows) == 0 {
		return nil, errEmptyTable
	}

	t.normalize()
	return t, nil
}

func parseRow(record []string, lineNo int) (Codon, byte, bool) {
	if len(record) < 4 {
		log.Printf("codon: skipping line %d: expected 4 fields, got %d", lineNo, len(record))
		return Codon{}, 0, false
	}

	aa := strings.ToUpper(strings.TrimSpace(record[0]))
	triplet := strings.ToUpper(strings.TrimSpace(record[1]))
	if len(aa) != 1 || aa[0] < 'A' || aa[0] > 'Z' {
		log.Printf("codon: skipping line %d: invalid amino acid %q", lineNo, record[0])
		return Codon{}, 0, false
	}
	if len(triplet) != 3 {
		log.Printf("codon: skipping line %d: codon %q is not a triplet", lineNo, record[1])
		return Codon{}, 0, false
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		log.Printf("codon: skipping line %d: bad weight %q", lineNo, record[2])
		return Codon{}, 0, false
	}
	index, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil || index < 0 || index > 63 {
		log.Printf("codon: skipping line %d: codon_index %q out of range [0,63]", lineNo, record[3])
		return Codon{}, 0, false
	}

	return Codon{
		Triplet:     triplet,
		Weight:      weight,
		Index:       index,
		Nucleotides: nucleotideCounts(triplet),
	}, aa[0], true
}

func nucleotideCounts(triplet string) [4]int {
	var counts [4]int // A, C, G, T
	for i := 0; i < len(triplet); i++ {
		switch triplet[i] {
		case 'A':
			counts[0]++
		case 'C':
			counts[1]++
		case 'G':
			counts[2]++
		case 'T':
			counts[3]++
		}
	}
	return counts
}

// normalize divides each codon's weight by the sum of weights for its
// amino acid, so that each non-empty row sums to 1.0. A row whose weights
// sum to zero or less is logged and left unnormalized rather than
// discarded; a later Lookup against that letter still returns codons, just
// not ones that sum to 1.0.
func (t *Table) normalize() {
	for letter, codons := range t.rows {
		var sum float64
		for _, c := range codons {
			sum += c.Weight
		}
		if sum <= 0 {
			log.Printf("codon: amino acid %c has non-positive total weight, leaving unnormalized", letter)
			continue
		}
		for i := range codons {
			codons[i].Weight /= sum
		}
		t.rows[letter] = codons
	}
}
