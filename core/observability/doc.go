// Package observability exposes Prometheus metrics for Graph API traffic and
// reach estimation.
//
// Metrics are registered with the default registry on import. InstrumentedClient
// decorates a graph.Client so every call is counted and timed; the targeting service
// records reach and keyword outcomes through RecordReach and RecordKeyword.
package observability
