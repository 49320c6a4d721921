// Package session holds live, in-memory-only authenticated channels
// between the host and a pinned peer, and runs the handshake and
// data-phase operations over them.
//
// Nothing here is persisted: a session never outlives the process, and
// restart is expected to drop every open channel (spec.md §4.4).
package session
