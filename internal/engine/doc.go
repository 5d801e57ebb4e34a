// Package engine implements the concurrent operation-execution core: a bounded
// worker pool that accepts operation requests keyed by repository and kind,
// executes them against the git backend, streams throttled progress, and
// delivers exactly one terminal result or failure per request. Duplicate
// in-flight mutating operations on the same (repository, kind) key are rejected
// at submission; read-only kinds run with unbounded concurrency.
package engine
