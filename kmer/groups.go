package kmer

// functionalGroups partitions amino acids by chemical side-chain
// similarity, in a fixed cyclic order. Each group's first listed member
// is its representative, but every member can stand in for any other
// during neighborhood expansion.
var functionalGroups = [][]byte{
	{'H', 'K', 'R'},
	{'D', 'E'},
	{'C', 'S', 'T', 'N', 'Q'},
	{'F', 'Y', 'W'},
	{'A', 'V', 'M', 'L', 'I'},
}

var groupOf = func() map[byte][]byte {
	m := make(map[byte][]byte)
	for _, group := range functionalGroups {
		for _, residue := range group {
			m[residue] = group
		}
	}
	return m
}()

// FunctionalGroupNeighbors returns the other members of residue's
// functional group, in the group's fixed cyclic order, excluding residue
// itself. Residues outside any defined group have no neighbors.
func FunctionalGroupNeighbors(residue byte) []byte {
	group, ok := groupOf[residue]
	if !ok {
		return nil
	}
	out := make([]byte, 0, len(group)-1)
	for _, member := range group {
		if member != residue {
			out = append(out, member)
		}
	}
	return out
}
