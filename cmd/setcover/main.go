package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// main is the entry point for the set-cover command line utility. It is
// kept separate from run and application to make both independently
// testable.
func main() {
	run(os.Args)
}

// run builds the app and executes it against args, logging any error the
// app surfaces on its way out.
func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

// application defines the setcover command's flags and wires its single
// action to commandSetCover.
func application() *cli.App {
	return &cli.App{
		Name:  "setcover",
		Usage: "Design a minimal peptide set covering protein sequences by greedy weighted set cover.",

		Flags: []cli.Flag{
			&cli.IntFlag{Name: "x", Usage: "xmer window size", Required: true},
			&cli.IntFlag{Name: "y", Usage: "ymer window size (< 256)", Required: true},
			&cli.IntFlag{Name: "r", Usage: "redundancy tag for the output filename", Value: 1},
			&cli.IntFlag{Name: "i", Usage: "restart iteration count", Value: 1},
			&cli.Float64Flag{Name: "c", Usage: "minimum xmer coverage fraction (0..1)", Value: 1.0},
			&cli.StringFlag{Name: "q", Usage: "input FASTA of sequences to cover", Required: true},
			&cli.StringFlag{Name: "e", Usage: "pre-designed peptide FASTA"},
			&cli.StringFlag{Name: "o", Usage: "output base name", Value: "design"},
			&cli.IntFlag{Name: "t", Usage: "worker threads for the coverage-subtraction step", Value: 1},
			&cli.BoolFlag{Name: "p", Usage: "enable functional-group neighborhood expansion"},
			&cli.StringFlag{Name: "b", Usage: "substitution matrix: blosum62, blosum90, or a file path"},
			&cli.IntFlag{Name: "n", Usage: "substitution-matrix score cutoff", Value: 0},
		},

		Action: func(c *cli.Context) error {
			return commandSetCover(c)
		},
	}
}
