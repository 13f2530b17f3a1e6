package iowriter

import (
	"os"

	"github.com/LadnerLab/Library-Design/seqio"
)

// WriteFastaIfChanged writes sequences to path as FASTA unless the file
// already holds byte-identical content, comparing by content hash rather
// than timestamp so repeated restart writes are idempotent.
func WriteFastaIfChanged(sequences []seqio.Sequence, path string) (wrote bool, err error) {
	candidate := seqio.BuildFasta(sequences)

	if existing, readErr := os.ReadFile(path); readErr == nil {
		if ContentHash(existing) == ContentHash(candidate) {
			return false, nil
		}
	}

	if err := os.WriteFile(path, candidate, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
