package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pairingCodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pairing-code",
		Short: "Print the current pairing code for the user to type into the extension",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := pairSvc.PairingCode()
			if err != nil {
				return err
			}
			fmt.Println(code)
			return nil
		},
	}
}
