package metrics

import "time"

// Metrics accumulates counters and timings for one decider invocation,
// one range query, or a whole query batch. The zero value is ready to
// use. Metrics is not safe for concurrent use by multiple goroutines;
// the parallel query layer gives each worker its own Metrics and Merges
// them at the end (spec §5's "private per-thread state" policy).
type Metrics struct {
	// FilterDecisions counts how many LessThan calls were resolved by
	// the filter pipeline without consulting the full decider, broken
	// down by which filter resolved them.
	FilterDecisions [NumFilterKinds]int64

	// DeciderInvocations counts how many calls fell through to the full
	// free-space decomposition.
	DeciderInvocations int64

	// BoxesVisited counts recursive box-decomposition steps across all
	// decider invocations tallied into this Metrics.
	BoxesVisited int64

	// PSTReports counts points reported out of the priority search tree
	// while mining NO-certificates.
	PSTReports int64

	// CertificatesChecked / CertificatesFailed count independent
	// certificate verifications and how many were rejected (advisory
	// only; spec §7).
	CertificatesChecked int64
	CertificatesFailed  int64

	// Elapsed is the wall-clock time spent in the operation this
	// Metrics was attached to.
	Elapsed time.Duration
}

// FilterKind identifies which sound filter resolved a LessThan call.
type FilterKind int

// The filter kinds tallied in Metrics.FilterDecisions, in pipeline order.
const (
	FilterBichromaticExtent FilterKind = iota
	FilterAdaptiveGreedy
	FilterNegative
	FilterAdaptiveSimultaneousGreedy
	NumFilterKinds
)

// RecordFilterDecision tallies a decisive filter outcome.
func (m *Metrics) RecordFilterDecision(kind FilterKind) {
	m.FilterDecisions[kind]++
}

// RecordDeciderInvocation tallies a fallthrough to the full decider.
func (m *Metrics) RecordDeciderInvocation() {
	m.DeciderInvocations++
}

// Merge folds other's counters into m, for combining per-worker Metrics
// at the end of a parallel query batch.
func (m *Metrics) Merge(other Metrics) {
	for i := range m.FilterDecisions {
		m.FilterDecisions[i] += other.FilterDecisions[i]
	}
	m.DeciderInvocations += other.DeciderInvocations
	m.BoxesVisited += other.BoxesVisited
	m.PSTReports += other.PSTReports
	m.CertificatesChecked += other.CertificatesChecked
	m.CertificatesFailed += other.CertificatesFailed
	m.Elapsed += other.Elapsed
}
