package commands

import (
	"bufio"
	"encoding/json"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"pearpass-host/internal/rpc"
)

var metricsAddr string

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the façade over stdin/stdout, exposing Prometheus metrics on --metrics-addr",
		RunE: func(cmd *cobra.Command, args []string) error {
			if metricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", facade.MetricsHandler())
				go func() {
					log.Error().Err(http.ListenAndServe(metricsAddr, mux)).Msg("metrics listener stopped")
				}()
				log.Info().Str("addr", metricsAddr).Msg("metrics listening")
			}
			return serveLoop(os.Stdin, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on, e.g. :9090 (disabled if empty)")
	return cmd
}

// serveLoop reads one JSON-encoded rpc.Request per line and writes one
// JSON-encoded rpc.Response per line. This is a stand-in for the real
// native-messaging transport, which per spec.md is out of scope here;
// cmd/extsim speaks the same newline-delimited protocol from the other end.
func serveLoop(in *os.File, out *os.File) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	enc := json.NewEncoder(out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req rpc.Request
		if err := json.Unmarshal(line, &req); err != nil {
			enc.Encode(rpc.Response{Error: &rpc.WireError{Code: "MissingField", Message: "malformed request: " + err.Error()}})
			continue
		}
		resp := facade.Handle(req)
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}
