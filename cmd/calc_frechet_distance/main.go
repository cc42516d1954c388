// Command calc_frechet_distance prints d_F(P, Q) for two curve files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/chaot4/frechet-distance/curveio"
	"github.com/chaot4/frechet-distance/frechet"
)

type config struct {
	curve1, curve2 string
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("calc_frechet_distance", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	curve1 := fs.String("curve1", "", "path to the first curve file (required)")
	curve2 := fs.String("curve2", "", "path to the second curve file (required)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *curve1 == "" || *curve2 == "" {
		return nil, errors.New("calc_frechet_distance: --curve1 and --curve2 are required")
	}

	return &config{curve1: *curve1, curve2: *curve2}, nil
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

	dist, err := frechet.Distance(P, Q, frechet.DefaultOptions())
	if err != nil {
		return err
	}

	fmt.Printf("%.17g\n", dist)

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
