// Command frechet runs range queries against a dataset of curves (spec
// §4.7, §6): each query line either asks which dataset curves are
// within delta of a query curve, or directly decides whether two named
// curve files are within delta of each other.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/curveio"
	"github.com/chaot4/frechet-distance/frechet"
	"github.com/chaot4/frechet-distance/query"
)

type config struct {
	datasetDir string
	index      string
	queries    string
	out        string
	workers    int
	certs      bool
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("frechet", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	datasetDir := fs.String("dataset-dir", "", "directory containing the dataset's curve files (required)")
	index := fs.String("index", "", "dataset index file, relative filenames one per line (required)")
	queries := fs.String("queries", "", "query file (required)")
	out := fs.String("out", "-", "results output path, or - for stdout")
	workers := fs.Int("workers", 0, "worker goroutines per query (0 = serial)")
	certs := fs.Bool("certificates", false, "check and tally certificates for every match")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *datasetDir == "" || *index == "" || *queries == "" {
		return nil, errors.New("frechet: --dataset-dir, --index and --queries are required")
	}

	return &config{
		datasetDir: *datasetDir,
		index:      *index,
		queries:    *queries,
		out:        *out,
		workers:    *workers,
		certs:      *certs,
	}, nil
}

func loadDataset(datasetDir, indexPath string) (*query.Database, []string, error) {
	names, err := curveio.ReadIndexFile(indexPath)
	if err != nil {
		return nil, nil, err
	}

	curves := make([]*curve.Curve, len(names))
	for i, name := range names {
		c, err := curveio.ReadCurveFile(filepath.Join(datasetDir, name))
		if err != nil {
			return nil, nil, fmt.Errorf("frechet: loading %s: %w", name, err)
		}
		curves[i] = c
	}

	return query.NewDatabase(curves), names, nil
}

func run(cfg *config) error {
	db, names, err := loadDataset(cfg.datasetDir, cfg.index)
	if err != nil {
		return err
	}

	queries, err := curveio.ReadQueryFile(cfg.queries)
	if err != nil {
		return err
	}

	opts := query.DefaultOptions()
	opts.WithCertificates = cfg.certs

	lines := make([]curveio.ResultLine, len(queries))
	for i, q := range queries {
		line, err := runOneQuery(db, names, q, opts, cfg.workers)
		if err != nil {
			return fmt.Errorf("frechet: query %d: %w", i, err)
		}
		line.QueryIndex = i
		lines[i] = line
	}

	return writeResults(cfg.out, lines)
}

func runOneQuery(db *query.Database, names []string, q curveio.Query, opts query.Options, workers int) (curveio.ResultLine, error) {
	if q.Curve2 != "" {
		return directQuery(q, opts)
	}

	qc, err := curveio.ReadCurveFile(q.Curve1)
	if err != nil {
		return curveio.ResultLine{}, err
	}

	var results []query.Result
	if workers > 0 {
		results, err = db.ParallelRangeQuery(qc, q.Delta, opts, workers, nil)
	} else {
		results, err = db.RangeQuery(qc, q.Delta, opts, nil)
	}
	if err != nil {
		return curveio.ResultLine{}, err
	}

	matches := make([]string, len(results))
	for i, r := range results {
		matches[i] = names[r.ID]
	}

	return curveio.ResultLine{Matches: matches}, nil
}

func directQuery(q curveio.Query, opts query.Options) (curveio.ResultLine, error) {
	P, err := curveio.ReadCurveFile(q.Curve1)
	if err != nil {
		return curveio.ResultLine{}, err
	}
	Q, err := curveio.ReadCurveFile(q.Curve2)
	if err != nil {
		return curveio.ResultLine{}, err
	}

	d := frechet.NewDecider(opts.Frechet)
	less, err := d.LessThan(P, Q, q.Delta, nil)
	if err != nil {
		return curveio.ResultLine{}, err
	}
	if !less {
		return curveio.ResultLine{}, nil
	}

	return curveio.ResultLine{Matches: []string{q.Curve2}}, nil
}

func writeResults(out string, lines []curveio.ResultLine) error {
	if out == "-" {
		return curveio.WriteResults(os.Stdout, lines)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("frechet: create %s: %w", out, err)
	}
	defer f.Close()

	return curveio.WriteResults(f, lines)
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
