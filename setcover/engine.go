/*
Package setcover implements the greedy weighted set-cover engine: given a
pool of candidate ymer peptides, repeatedly pick the ymer that still
covers the most un-covered xmer locations until the input is covered (or
nothing more can be gained), with randomized tie-breaking so repeated
restarts explore different designs.
*/
package setcover

import (
	"fmt"
	"sort"
	"sync"

	"github.com/LadnerLab/Library-Design/kmer"
	"github.com/LadnerLab/Library-Design/prng"
	"github.com/LadnerLab/Library-Design/seqio"
	"github.com/LadnerLab/Library-Design/strtable"
)

// Config holds the tunable parameters of one set-cover run.
type Config struct {
	X            int // xmer window
	Y            int // ymer window
	MinCoverage  float64
	Neighborhood kmer.Neighborhood
	Threads      int
}

// Validate checks the resource and parameter limits a run must satisfy.
func (c Config) Validate() error {
	if c.Y >= 256 {
		return fmt.Errorf("setcover: ymer window %d must be < 256", c.Y)
	}
	if c.Y <= c.X {
		return fmt.Errorf("setcover: ymer window %d must exceed xmer window %d", c.Y, c.X)
	}
	if c.MinCoverage < 0 || c.MinCoverage > 1 {
		return fmt.Errorf("setcover: min coverage fraction %v must be within [0,1]", c.MinCoverage)
	}
	return nil
}

// Pick is one chosen ymer in a design, recording the peptide itself and
// the location tags it was observed at (for naming output records).
type Pick struct {
	Peptide string
	Tags    []string
}

// Design is one completed run of the greedy loop.
type Design struct {
	Picks        []Pick
	CoveredXmers int
	TotalXmers   int
}

type candidate struct {
	peptide  string
	tags     []string
	coverage map[string]struct{}
}

// Engine holds the xmer/ymer universe for a run, built once and reused
// across restarts.
type Engine struct {
	cfg        Config
	xmerTable  *strtable.Table
	ymerTable  *strtable.Table
	totalXmers int
	covered    map[string]struct{}
}

// NewEngine indexes sequences into the xmer/ymer universe and, if
// preDesigned is non-empty, retires the xmer locations it already
// covers before any iteration begins.
func NewEngine(sequences []seqio.Sequence, preDesigned []seqio.Sequence, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	xmerTable := kmer.IndexXmers(sequences, cfg.X, cfg.Neighborhood)
	ymerTable := kmer.IndexYmers(sequences, cfg.Y)

	covered := make(map[string]struct{})
	if len(preDesigned) > 0 {
		preTable := kmer.IndexXmers(preDesigned, cfg.X, cfg.Neighborhood)
		for _, entry := range preTable.Items() {
			if tags, ok := xmerTable.Find(entry.Key); ok {
				for _, tag := range tags.([]string) {
					covered[tag] = struct{}{}
				}
			}
		}
	}

	return &Engine{
		cfg:        cfg,
		xmerTable:  xmerTable,
		ymerTable:  ymerTable,
		totalXmers: distinctTagCount(xmerTable),
		covered:    covered,
	}, nil
}

func distinctTagCount(table *strtable.Table) int {
	seen := make(map[string]struct{})
	for _, entry := range table.Items() {
		for _, tag := range entry.Value.([]string) {
			seen[tag] = struct{}{}
		}
	}
	return len(seen)
}

// coverageOf slides the xmer window across peptide and returns the set
// of location tags, drawn from the already-expanded xmer table, that are
// not yet covered. No neighborhood re-expansion happens here: expansion
// was baked into the xmer table at index time.
func (e *Engine) coverageOf(peptide string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, window := range kmer.Windows(peptide, e.cfg.X) {
		tags, ok := e.xmerTable.Find(window)
		if !ok {
			continue
		}
		for _, tag := range tags.([]string) {
			if _, done := e.covered[tag]; !done {
				out[tag] = struct{}{}
			}
		}
	}
	return out
}

// Run executes one independent restart of the greedy loop, using rng for
// tie-breaking among equally good candidates. It does not mutate Engine
// state: each restart starts from its own copy of the baseline
// pre-designed coverage computed at construction time.
func (e *Engine) Run(rng *prng.Source) Design {
	covered := make(map[string]struct{}, len(e.covered))
	for tag := range e.covered {
		covered[tag] = struct{}{}
	}

	candidates := make([]*candidate, 0, e.ymerTable.Len())
	for _, entry := range e.ymerTable.Items() {
		peptide := entry.Key
		candidates = append(candidates, &candidate{
			peptide:  peptide,
			tags:     entry.Value.([]string),
			coverage: e.coverageOfExcluding(peptide, covered),
		})
	}

	coveredCount := len(covered)
	var picks []Pick

	for len(candidates) > 0 {
		if e.totalXmers > 0 && float64(coveredCount)/float64(e.totalXmers) >= e.cfg.MinCoverage {
			break
		}

		bestScore := -1
		for _, c := range candidates {
			if len(c.coverage) > bestScore {
				bestScore = len(c.coverage)
			}
		}
		if bestScore <= 0 {
			break
		}

		tiedIdx := make([]int, 0)
		for i, c := range candidates {
			if len(c.coverage) == bestScore {
				tiedIdx = append(tiedIdx, i)
			}
		}
		chosenIdx := tiedIdx[rng.IntN(len(tiedIdx))]
		chosen := candidates[chosenIdx]

		picks = append(picks, Pick{Peptide: chosen.peptide, Tags: chosen.tags})
		for tag := range chosen.coverage {
			if _, already := covered[tag]; !already {
				covered[tag] = struct{}{}
				coveredCount++
			}
		}

		candidates = removeAt(candidates, chosenIdx)
		subtractCoverage(candidates, chosen.coverage, e.cfg.Threads)
	}

	return Design{
		Picks:        picks,
		CoveredXmers: coveredCount,
		TotalXmers:   e.totalXmers,
	}
}

func (e *Engine) coverageOfExcluding(peptide string, covered map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for _, window := range kmer.Windows(peptide, e.cfg.X) {
		tags, ok := e.xmerTable.Find(window)
		if !ok {
			continue
		}
		for _, tag := range tags.([]string) {
			if _, done := covered[tag]; !done {
				out[tag] = struct{}{}
			}
		}
	}
	return out
}

func removeAt(candidates []*candidate, idx int) []*candidate {
	candidates[idx] = candidates[len(candidates)-1]
	return candidates[:len(candidates)-1]
}

// subtractCoverage removes chosenCoverage's tags from every remaining
// candidate's coverage set, split across threads chunks. Each worker
// only ever mutates the candidates in its own chunk, so no locking is
// needed.
func subtractCoverage(candidates []*candidate, chosenCoverage map[string]struct{}, threads int) {
	if threads < 1 {
		threads = 1
	}
	n := len(candidates)
	if n == 0 {
		return
	}
	if threads > n {
		threads = n
	}

	chunk := (n + threads - 1) / threads
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for _, c := range candidates[lo:hi] {
				for tag := range chosenCoverage {
					delete(c.coverage, tag)
				}
			}
		}(start, end)
	}
	wg.Wait()
}

// Best picks the smallest design (fewest picks) among a set of restart
// results, matching ties in pick order for determinism.
func Best(designs []Design) Design {
	best := designs[0]
	for _, d := range designs[1:] {
		if len(d.Picks) < len(best.Picks) {
			best = d
		}
	}
	return best
}

// SortPicksByPeptide gives the design a deterministic, comparison-stable
// presentation order for output, independent of the pick order produced
// during the greedy loop.
func SortPicksByPeptide(picks []Pick) {
	sort.Slice(picks, func(i, j int) bool { return picks[i].Peptide < picks[j].Peptide })
}
