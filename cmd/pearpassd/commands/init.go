package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pearpass-host/internal/crypto"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate (or load) the host identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := idSvc.GetOrCreate()
			if err != nil {
				return err
			}
			fmt.Printf("edPub:       %s\n", crypto.B64(pub.EdPub[:]))
			fmt.Printf("xPub:        %s\n", crypto.B64(pub.XPub[:]))
			fmt.Printf("fingerprint: %s\n", idSvc.GetFingerprint(pub.EdPub))
			return nil
		},
	}
}
