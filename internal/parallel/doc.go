// Package parallel sorts many documents concurrently.
//
// WorkerPool runs one job per file with bounded concurrency. Each job is a
// complete, independent sort request over one file snapshot, so jobs never
// share mutable state. Results come back in submission order regardless of
// completion order.
package parallel
