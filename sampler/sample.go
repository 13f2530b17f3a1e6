package sampler

import (
	"fmt"
	"sort"
	"sync"

	"github.com/LadnerLab/Library-Design/codon"
	"github.com/LadnerLab/Library-Design/prng"
	"github.com/LadnerLab/Library-Design/seqio"
)

// Run performs trials Monte-Carlo back-translations of each sequence,
// splitting the trials of each sequence across workers goroutines, each
// with its own PRNG stream. It returns, per sequence, the top-k
// encodings ranked by ascending distance from targetGC.
func Run(sequences []seqio.Sequence, table *codon.Table, trials, topK, workers int, targetGC float64, master *prng.Source) (map[string][]Encoding, error) {
	if workers < 1 {
		workers = 1
	}

	results := make(map[string][]Encoding, len(sequences))
	for _, seq := range sequences {
		encodings, err := sampleSequence(seq, table, trials, workers, targetGC, master)
		if err != nil {
			return nil, err
		}
		results[seq.Name] = topByGCDistance(encodings, topK)
	}
	return results, nil
}

func sampleSequence(seq seqio.Sequence, table *codon.Table, trials, workers int, targetGC float64, master *prng.Source) ([]Encoding, error) {
	encodings := make([]Encoding, trials)
	streams := master.Stream(workers)

	chunk := (trials + workers - 1) / workers
	var wg sync.WaitGroup
	var firstErr error
	var mu sync.Mutex

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if lo >= trials {
			break
		}
		if hi > trials {
			hi = trials
		}

		wg.Add(1)
		go func(lo, hi int, rng *prng.Source) {
			defer wg.Done()
			for rank := lo; rank < hi; rank++ {
				encoding, err := runTrial(seq, table, rank, targetGC, rng)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				encodings[rank] = encoding
			}
		}(lo, hi, streams[w])
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return encodings, nil
}

func runTrial(seq seqio.Sequence, table *codon.Table, rank int, targetGC float64, rng *prng.Source) (Encoding, error) {
	residues := seq.Residues
	nucleotides := make([]byte, 0, len(residues)*3)

	var baseCounts [4]int
	var codonCounts [64]int
	aminoAcids := make(map[byte]int, len(residues))

	for i := 0; i < len(residues); i++ {
		residue := residues[i]
		codons := table.Lookup(residue)
		if len(codons) == 0 {
			panic(fmt.Sprintf("sampler: no codons available for residue %q", residue))
		}

		chosen := selectCodon(codons, rng.Uniform())
		nucleotides = append(nucleotides, chosen.Triplet...)
		for base := 0; base < 4; base++ {
			baseCounts[base] += chosen.Nucleotides[base]
		}
		codonCounts[chosen.Index]++
		aminoAcids[residue]++
	}

	total := baseCounts[baseA] + baseCounts[baseC] + baseCounts[baseG] + baseCounts[baseT]
	gcRatio := 0.0
	if total > 0 {
		gcRatio = float64(baseCounts[baseG]+baseCounts[baseC]) / float64(total)
	}

	return Encoding{
		SourceName:  seq.Name,
		Rank:        rank,
		Residues:    residues,
		Nucleotides: string(nucleotides),
		BaseCounts:  baseCounts,
		CodonCounts: codonCounts,
		AminoAcids:  aminoAcids,
		GCRatio:     gcRatio,
		GCDistAbs:   abs(gcRatio - targetGC),
	}, nil
}

// selectCodon walks codons' cumulative weight and returns the first
// codon whose running total meets or exceeds u — inverse-CDF sampling.
// Ties at the boundary resolve to the earlier codon because the
// comparison is ">=" and codons are scanned in table order.
func selectCodon(codons []codon.Codon, u float64) codon.Codon {
	cumulative := 0.0
	for _, c := range codons {
		cumulative += c.Weight
		if cumulative >= u {
			return c
		}
	}
	return codons[len(codons)-1]
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// topByGCDistance stable-sorts encodings by ascending GCDistAbs (ties
// keep trial-rank order) and returns at most k of them.
func topByGCDistance(encodings []Encoding, k int) []Encoding {
	sort.SliceStable(encodings, func(i, j int) bool {
		return encodings[i].GCDistAbs < encodings[j].GCDistAbs
	})
	if k > len(encodings) {
		k = len(encodings)
	}
	if k < 0 {
		k = 0
	}
	return encodings[:k]
}
