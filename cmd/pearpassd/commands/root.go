package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pearpass-host/internal/config"
	"pearpass-host/internal/identity"
	"pearpass-host/internal/metrics"
	"pearpass-host/internal/pairing"
	"pearpass-host/internal/rpc"
	"pearpass-host/internal/session"
	"pearpass-host/internal/vaultkv"
)

var (
	configPath string
	passphrase string

	cfg     config.Config
	vault   *vaultkv.Store
	idSvc   *identity.Service
	pairSvc *pairing.Service
	cache   *pairing.MemoryUnprotectedCache
	store   *session.Store
	sessSvc *session.Manager
	facade  *rpc.Facade
	log     zerolog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:   "pearpassd",
		Short: "Pairing and session host daemon for the browser extension",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.VaultDir, 0o700); err != nil {
				return err
			}

			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				level = zerolog.InfoLevel
			}
			zerolog.SetGlobalLevel(level)
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Str("service", "pearpassd").Logger()

			vault = vaultkv.New(cfg.VaultDir)
			if passphrase != "" {
				vault.Unlock(passphrase)
			}

			idSvc = identity.New(vault)
			cache = pairing.NewMemoryUnprotectedCache()
			pairSvc = pairing.New(vault, idSvc, cache)
			store = session.NewStore()
			sessSvc = session.NewManager(store, pairSvc, idSvc)

			m := metrics.New()
			facade = rpc.New(idSvc, pairSvc, sessSvc, store, cache, cfg.NativeMessagingEnabled, log, m)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "vault master passphrase")

	root.AddCommand(initCmd(), pairingCodeCmd(), serveCmd(), resetCmd())
	return root.Execute()
}
