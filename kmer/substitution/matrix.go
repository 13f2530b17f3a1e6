/*
Package substitution provides a substitution-matrix scorer for the
neighborhood-expansion mode of the xmer/ymer indexer.

A matrix is an alphabet plus a dense score grid, with a Score lookup
keyed by the two symbols involved. Here the alphabet is always the
amino-acid letters that appear in the matrix's
header row, and scores are read from an NCBI-format BLOSUM text file: a
header row of single-letter codes, followed by one row per amino acid
(leading letter, then one integer score per alphabet column).
*/
package substitution

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

//go:embed data/blosum62.txt data/blosum90.txt
var embeddedMatrices embed.FS

// Matrix is a square substitution-score table over a fixed alphabet.
type Matrix struct {
	alphabet []byte
	index    map[byte]int
	scores   [][]int
}

// Score returns the substitution score between amino acids a and b. An
// error is returned if either letter is outside the matrix's alphabet.
func (m *Matrix) Score(a, b byte) (int, error) {
	ia, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("substitution: %q not in matrix alphabet", a)
	}
	ib, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("substitution: %q not in matrix alphabet", b)
	}
	return m.scores[ia][ib], nil
}

// Alphabet returns the matrix's amino-acid alphabet, in header order.
func (m *Matrix) Alphabet() []byte {
	return m.alphabet
}

// Load parses an NCBI-format substitution matrix: a header row of
// whitespace-separated single-letter codes, then one row per amino acid
// (leading letter followed by one integer per header column).
func Load(r io.Reader) (*Matrix, error) {
	scanner := bufio.NewScanner(r)

	var alphabet []byte
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range strings.Fields(line) {
			if len(field) != 1 {
				return nil, fmt.Errorf("substitution: malformed header column %q", field)
			}
			alphabet = append(alphabet, field[0])
		}
		break
	}
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("substitution: missing header row")
	}

	index := make(map[byte]int, len(alphabet))
	for i, letter := range alphabet {
		index[letter] = i
	}

	scores := make([][]int, len(alphabet))
	rowsSeen := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != len(alphabet)+1 {
			return nil, fmt.Errorf("substitution: row %q has %d fields, want %d", fields[0], len(fields)-1, len(alphabet))
		}
		rowLetter := fields[0]
		if len(rowLetter) != 1 {
			return nil, fmt.Errorf("substitution: malformed row label %q", rowLetter)
		}
		rowIndex, ok := index[rowLetter[0]]
		if !ok {
			return nil, fmt.Errorf("substitution: row label %q not in header alphabet", rowLetter)
		}
		row := make([]int, len(alphabet))
		for i, field := range fields[1:] {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("substitution: bad score %q: %w", field, err)
			}
			row[i] = v
		}
		scores[rowIndex] = row
		rowsSeen++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if rowsSeen != len(alphabet) {
		return nil, fmt.Errorf("substitution: expected %d rows, got %d", len(alphabet), rowsSeen)
	}

	return &Matrix{alphabet: alphabet, index: index, scores: scores}, nil
}

// LoadFile reads and parses a substitution matrix from disk.
func LoadFile(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// LoadNamed resolves a built-in matrix name ("blosum62", "blosum90") or
// falls back to treating name as a file path.
func LoadNamed(name string) (*Matrix, error) {
	switch strings.ToLower(name) {
	case "blosum62":
		return loadEmbedded("data/blosum62.txt")
	case "blosum90":
		return loadEmbedded("data/blosum90.txt")
	default:
		return LoadFile(name)
	}
}

func loadEmbedded(path string) (*Matrix, error) {
	f, err := embeddedMatrices.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
