// Package metrics recasts the original implementation's process-wide
// timing counter bank (spec §9, "Global mutable state") as an explicit
// value threaded through the query driver: a Metrics struct accumulated
// per call and merged at batch end, rather than a package-level global.
package metrics
