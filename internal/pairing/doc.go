// Package pairing derives and verifies the human-readable pairing code,
// and owns the single pinned peer's lifecycle (absent -> PENDING ->
// CONFIRMED).
package pairing
