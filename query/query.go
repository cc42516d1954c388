// Package query implements the database layer of spec §4.7: an
// immutable curve set pruned by a KD-tree, each surviving candidate
// resolved through the filter pipeline and, on fallthrough, the full
// decider.
package query

import (
	"sync"

	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/frechet"
	"github.com/chaot4/frechet-distance/kdtree"
	"github.com/chaot4/frechet-distance/metrics"
)

// Options configures a range query.
type Options struct {
	Frechet          frechet.Options
	WithCertificates bool
}

// DefaultOptions returns production defaults: the default frechet
// Decider configuration, certificates off.
func DefaultOptions() Options {
	return Options{Frechet: frechet.DefaultOptions()}
}

// Result is one matching database curve.
type Result struct {
	ID          int
	LessThan    bool
	Certificate *frechet.Certificate
	CertErr     error
}

// Database is an immutable set of curves with a prebuilt KD-tree over
// their signatures, freely shared by reference across queries and
// worker goroutines (spec §5).
type Database struct {
	curves []*curve.Curve
	tree   *kdtree.Tree
}

// NewDatabase builds a Database over curves. The curve slice is kept by
// reference; callers must not mutate it afterward.
func NewDatabase(curves []*curve.Curve) *Database {
	sigs := make([]kdtree.Signature, len(curves))
	for i, c := range curves {
		sigs[i] = kdtree.Signature(c.Signature())
	}

	return &Database{curves: curves, tree: kdtree.Build(sigs)}
}

// Len reports how many curves are in the database.
func (db *Database) Len() int { return len(db.curves) }

// Curve returns the curve stored at id.
func (db *Database) Curve(id int) *curve.Curve { return db.curves[id] }

// RangeQuery implements spec §4.7 step 1-3 single-threaded: KD-tree
// prune, filter pipeline / decider per candidate, optional certificate
// check. Results are returned in KD-tree candidate order.
func (db *Database) RangeQuery(q *curve.Curve, delta float64, opts Options, m *metrics.Metrics) ([]Result, error) {
	if q == nil || q.Len() == 0 {
		return nil, frechet.ErrDimensionMismatch
	}

	candidates := db.tree.RangeSearch(kdtree.Signature(q.Signature()), delta)
	d := frechet.NewDecider(opts.Frechet)

	var results []Result
	for _, id := range candidates {
		res, err := db.evaluate(d, q, id, delta, opts, m)
		if err != nil {
			return nil, err
		}
		if res.LessThan {
			results = append(results, res)
		}
	}

	return results, nil
}

func (db *Database) evaluate(d *frechet.Decider, q *curve.Curve, id int, delta float64, opts Options, m *metrics.Metrics) (Result, error) {
	ans, err := d.LessThan(q, db.curves[id], delta, m)
	if err != nil {
		return Result{}, err
	}
	if !ans {
		return Result{ID: id}, nil
	}

	res := Result{ID: id, LessThan: true}
	if opts.WithCertificates {
		cert, certErr := d.Certificate(q, db.curves[id], delta, m)
		res.Certificate = cert
		res.CertErr = certErr
	}

	return res, nil
}

// ParallelRangeQuery shards the KD-tree candidate set for one query
// across workers goroutines, each with its own Decider and Metrics
// (spec §5's "private per-thread state"), merging Metrics at the end.
// Results preserve KD-tree candidate order regardless of which worker
// resolved each one, since each worker writes to its own pre-allocated
// slot (spec §5's ordering guarantee).
func (db *Database) ParallelRangeQuery(q *curve.Curve, delta float64, opts Options, workers int, m *metrics.Metrics) ([]Result, error) {
	if q == nil || q.Len() == 0 {
		return nil, frechet.ErrDimensionMismatch
	}

	candidates := db.tree.RangeSearch(kdtree.Signature(q.Signature()), delta)
	if len(candidates) == 0 {
		return nil, nil
	}

	chunks := partition(len(candidates), workers)

	type slot struct {
		res Result
		set bool
	}
	slots := make([]slot, len(candidates))
	workerMetrics := make([]metrics.Metrics, len(chunks))

	var wg sync.WaitGroup
	var firstErr error
	var errOnce sync.Once

	for w, c := range chunks {
		lo, hi := c[0], c[1]
		if lo >= hi {
			continue
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()

			d := frechet.NewDecider(opts.Frechet)
			wm := &workerMetrics[w]

			for i := lo; i < hi; i++ {
				res, err := db.evaluate(d, q, candidates[i], delta, opts, wm)
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					return
				}
				slots[i] = slot{res: res, set: true}
			}
		}(w, lo, hi)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	if m != nil {
		for i := range workerMetrics {
			m.Merge(workerMetrics[i])
		}
	}

	var results []Result
	for _, s := range slots {
		if s.set && s.res.LessThan {
			results = append(results, s.res)
		}
	}

	return results, nil
}

// partition splits n items into at most workers contiguous, near-equal
// chunks, clamped to [1, n] workers.
func partition(n, workers int) [][2]int {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	chunks := make([][2]int, workers)
	base, rem := n/workers, n%workers
	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < rem {
			size++
		}
		chunks[i] = [2]int{start, start + size}
		start += size
	}

	return chunks
}
