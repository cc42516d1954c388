// Command test_curves prints LESS or GREATER depending on whether
// d_F(P, Q) <= delta, per one of several selectable decision algorithms.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chaot4/frechet-distance/curveio"
	"github.com/chaot4/frechet-distance/frechet"
)

type config struct {
	curve1, curve2 string
	delta          float64
	algorithm      string
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("test_curves", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	curve1 := fs.String("curve1", "", "path to the first curve file (required)")
	curve2 := fs.String("curve2", "", "path to the second curve file (required)")
	delta := fs.Float64("delta", 0, "distance threshold (required, > 0)")
	algorithm := fs.String("algo", "light", "one of: "+strings.Join(frechet.AlgorithmNames, ", "))

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *curve1 == "" || *curve2 == "" {
		return nil, errors.New("test_curves: --curve1 and --curve2 are required")
	}
	if *delta <= 0 {
		return nil, errors.New("test_curves: --delta must be > 0")
	}

	return &config{curve1: *curve1, curve2: *curve2, delta: *delta, algorithm: *algorithm}, nil
}

func run(cfg *config) error {
	P, err := curveio.ReadCurveFile(cfg.curve1)
	if err != nil {
		return err
	}
	Q, err := curveio.ReadCurveFile(cfg.curve2)
	if err != nil {
		return err
	}

	less, err := frechet.RunSelectedAlgorithm(cfg.algorithm, P, Q, cfg.delta)
	if err != nil {
		return err
	}

	if less {
		fmt.Println("LESS")
	} else {
		fmt.Println("GREATER")
	}

	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
