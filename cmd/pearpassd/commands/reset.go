package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pearpass-host/internal/rpc"
)

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Rotate the identity and clear all pairing and session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := facade.Handle(rpc.Request{Op: "resetPairing"})
			if resp.Error != nil {
				return fmt.Errorf("%s: %s", resp.Error.Code, resp.Error.Message)
			}
			fmt.Printf("reset ok: %+v\n", resp.Result)
			return nil
		},
	}
}
