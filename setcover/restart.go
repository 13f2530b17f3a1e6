package setcover

import (
	"fmt"

	"github.com/LadnerLab/Library-Design/iowriter"
	"github.com/LadnerLab/Library-Design/prng"
	"github.com/LadnerLab/Library-Design/seqio"
)

// RunWithRestarts runs the greedy loop iterations times, each from an
// independently-seeded PRNG stream, and persists a design to outputPath
// only when it both improves on every design seen so far in this run and
// improves on whatever design is already on disk at outputPath.
func RunWithRestarts(engine *Engine, iterations int, master *prng.Source, outputPath string) (Design, error) {
	if iterations < 1 {
		return Design{}, fmt.Errorf("setcover: iteration count must be at least 1, got %d", iterations)
	}

	streams := master.Stream(iterations)

	onDiskSize, err := existingDesignSize(outputPath)
	if err != nil {
		return Design{}, err
	}

	var best Design
	haveBest := false

	for _, stream := range streams {
		design := engine.Run(stream)

		if haveBest && len(design.Picks) >= len(best.Picks) {
			continue
		}
		haveBest = true
		best = design

		if onDiskSize >= 0 && len(design.Picks) >= onDiskSize {
			continue
		}

		if err := persist(design, outputPath); err != nil {
			return Design{}, err
		}
		onDiskSize = len(design.Picks)
	}

	return best, nil
}

func existingDesignSize(path string) (int, error) {
	sequences, err := seqio.ReadFastaFile(path)
	if err != nil {
		return -1, nil
	}
	return len(sequences), nil
}

func persist(design Design, path string) error {
	sequences := make([]seqio.Sequence, len(design.Picks))
	for i, pick := range design.Picks {
		name := pick.Peptide
		if len(pick.Tags) > 0 {
			name = pick.Tags[0]
		}
		sequences[i] = seqio.Sequence{Name: name, Residues: pick.Peptide}
	}
	_, err := iowriter.WriteFastaIfChanged(sequences, path)
	return err
}
