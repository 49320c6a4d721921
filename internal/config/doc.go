// Package config loads the host daemon's YAML configuration: vault
// location, the native-messaging enable flag, and the metrics listen
// address.
package config
