// Package domain defines core data models and interfaces shared across the
// pairing and session core. It contains plain types (wire/state) and
// contracts (interfaces) only — no business logic.
package domain
