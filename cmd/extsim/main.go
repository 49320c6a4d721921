package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	pearpassdPath string
	statePath     string
	passphrase    string
	configPath    string
)

// spawnArgs returns the "serve" arguments, forwarding whatever vault
// passphrase and config path the operator gave extsim so the spawned
// pearpassd process unlocks the same vault across separate extsim runs.
func spawnArgs() []string {
	args := []string{"serve"}
	if configPath != "" {
		args = append(args, "--config", configPath)
	}
	if passphrase != "" {
		args = append(args, "--passphrase", passphrase)
	}
	return args
}

func main() {
	root := &cobra.Command{
		Use:   "extsim",
		Short: "Simulates the browser extension side of the pairing and session protocol",
	}
	root.PersistentFlags().StringVar(&pearpassdPath, "pearpassd", "pearpassd", "path to the pearpassd binary")
	root.PersistentFlags().StringVar(&statePath, "state", "extsim-state.json", "path to this simulator's persisted identity")
	root.PersistentFlags().StringVar(&passphrase, "passphrase", "", "vault passphrase to forward to the spawned pearpassd")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config path to forward to the spawned pearpassd")

	root.AddCommand(pairCmd(), statusCmd(), resetCmd(), closeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
