// Package rpc is the stateless request dispatcher mapping named
// operations (spec.md §6) onto the pairing and session components.
//
// Every dispatched call is validated for required parameters before it
// reaches business logic, logged at debug level via zerolog with a
// google/uuid correlation id, and recorded in the Prometheus collectors
// from internal/metrics. Nothing here is itself transport: the native
// messaging framing and process lifecycle are the surrounding app's job
// (spec.md §1, out of scope).
package rpc
