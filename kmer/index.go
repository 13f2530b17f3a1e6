/*
Package kmer builds the xmer/ymer tables the set-cover engine works over:
every contiguous window of a fixed length in each input sequence, tagged
with where it came from, optionally expanded with single-residue
neighbor variants under a functional-group rule or a substitution matrix.
*/
package kmer

import (
	"fmt"
	"strings"

	"github.com/LadnerLab/Library-Design/kmer/substitution"
	"github.com/LadnerLab/Library-Design/seqio"
	"github.com/LadnerLab/Library-Design/strtable"
)

// LocationTag returns the canonical "{name}_{start}_{end}" tag for an
// occurrence of a window in a sequence.
func LocationTag(name string, start, end int) string {
	return fmt.Sprintf("%s_%d_%d", name, start, end)
}

// Neighborhood produces the single-residue-substitution variants of a
// window substring. An empty or nil return means no expansion.
type Neighborhood func(window string) []string

// NoNeighborhood performs no expansion.
func NoNeighborhood(string) []string { return nil }

// FunctionalGroupNeighborhood expands window by substituting, at each
// position, every other member of that residue's functional group, in
// the group's fixed cyclic order.
func FunctionalGroupNeighborhood(window string) []string {
	var variants []string
	bytes := []byte(window)
	for i, residue := range bytes {
		for _, neighbor := range FunctionalGroupNeighbors(residue) {
			variant := make([]byte, len(bytes))
			copy(variant, bytes)
			variant[i] = neighbor
			variants = append(variants, string(variant))
		}
	}
	return variants
}

// SubstitutionMatrixNeighborhood expands window by substituting, at each
// position, every alphabet letter whose substitution score against the
// current residue meets or exceeds cutoff.
func SubstitutionMatrixNeighborhood(matrix *substitution.Matrix, cutoff int) Neighborhood {
	return func(window string) []string {
		var variants []string
		bytes := []byte(window)
		alphabet := matrix.Alphabet()
		for i, residue := range bytes {
			for _, candidate := range alphabet {
				if candidate == residue {
					continue
				}
				score, err := matrix.Score(residue, candidate)
				if err != nil || score < cutoff {
					continue
				}
				variant := make([]byte, len(bytes))
				copy(variant, bytes)
				variant[i] = candidate
				variants = append(variants, string(variant))
			}
		}
		return variants
	}
}

// Windows returns every contiguous window of length w in residues.
func Windows(residues string, w int) []string {
	n := len(residues) - w + 1
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = residues[i : i+w]
	}
	return out
}

// IndexXmers builds the xmer table over sequences: every window of length
// w, plus (if neighborhood is non-nil) every single-residue neighbor
// variant of each window, each keyed to the tag of the window it was
// drawn from. Windows or variants containing 'X' are excluded, since they
// would otherwise pollute coverage with an ambiguous placeholder.
func IndexXmers(sequences []seqio.Sequence, w int, neighborhood Neighborhood) *strtable.Table {
	table := strtable.New(len(sequences) * 8)
	for _, seq := range sequences {
		n := len(seq.Residues) - w + 1
		for start := 0; start < n; start++ {
			window := seq.Residues[start : start+w]
			if strings.IndexByte(window, 'X') >= 0 {
				continue
			}
			tag := LocationTag(seq.Name, start, start+w)
			appendTag(table, window, tag)

			if neighborhood != nil {
				for _, variant := range neighborhood(window) {
					if strings.IndexByte(variant, 'X') >= 0 {
						continue
					}
					appendTag(table, variant, tag)
				}
			}
		}
	}
	return table
}

// IndexYmers builds the ymer table over sequences: every window of length
// w, keyed to the list of tags where that exact window occurs. No
// neighborhood expansion applies to the ymer table — ymers are the
// candidate peptides to be picked, not the coverage universe.
func IndexYmers(sequences []seqio.Sequence, w int) *strtable.Table {
	table := strtable.New(len(sequences) * 8)
	for _, seq := range sequences {
		n := len(seq.Residues) - w + 1
		for start := 0; start < n; start++ {
			window := seq.Residues[start : start+w]
			if strings.IndexByte(window, 'X') >= 0 {
				continue
			}
			tag := LocationTag(seq.Name, start, start+w)
			appendTag(table, window, tag)
		}
	}
	return table
}

func appendTag(table *strtable.Table, key, tag string) {
	if existing, ok := table.Find(key); ok {
		tags := existing.([]string)
		table.Delete(key)
		table.Add(key, append(tags, tag))
		return
	}
	table.Add(key, []string{tag})
}
