// Command extsim plays the browser-extension side of the pairing and
// session protocol against a pearpassd binary, for manual end-to-end
// testing without a real browser or native-messaging host.
//
// Each subcommand spawns its own "pearpassd serve" subprocess and talks
// to it over the newline-delimited JSON protocol that "pearpassd serve"
// speaks on stdin/stdout, a stand-in for the real native-messaging
// framing. Because pearpassd keeps
// sessions in memory only, a session opened by "extsim pair" is only
// reachable by a "close" run against the same still-running pearpassd
// process; across separate extsim invocations only vault-backed state
// (identity, pairing) survives.
//
// extsim persists its own simulated extension identity (an Ed25519
// keypair) to --state so repeated runs keep using the same key rather
// than re-pairing on every invocation.
package main
