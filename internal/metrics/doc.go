// Package metrics holds the Prometheus collectors for the RPC façade:
// per-operation request counts and latency, pairing events, and handshake
// outcomes.
package metrics
