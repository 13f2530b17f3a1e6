package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// main is the entry point for the codon-sampler command line utility.
func main() {
	run(os.Args)
}

// run builds the app and executes it against args.
func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

// application defines the codonsample command's flags and wires its
// single action to commandCodonSample.
func application() *cli.App {
	return &cli.App{
		Name:  "codonsample",
		Usage: "Back-translate protein sequences into nucleotide sequences by Monte-Carlo codon sampling.",

		Flags: []cli.Flag{
			&cli.StringFlag{Name: "i", Usage: "input residues CSV (name,residues per line)", Required: true},
			&cli.StringFlag{Name: "s", Usage: "encoded-sequences output path", Required: true},
			&cli.StringFlag{Name: "r", Usage: "ratios output path", Required: true},
			&cli.StringFlag{Name: "p", Usage: "codon-probability CSV path"},
			&cli.IntFlag{Name: "n", Usage: "top-K subsample per sequence", Value: 1},
			&cli.Float64Flag{Name: "g", Usage: "target GC ratio", Value: 0.5},
			&cli.IntFlag{Name: "t", Usage: "trials per sequence", Value: 1},
			&cli.IntFlag{Name: "c", Usage: "worker threads", Value: 1},
			&cli.IntFlag{Name: "l", Usage: "maximum input line length (< 65536)", Value: 4096},
		},

		Action: func(c *cli.Context) error {
			return commandCodonSample(c)
		},
	}
}
