package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"pearpass-host/internal/crypto"
	"pearpass-host/internal/domain"
	"pearpass-host/internal/handshake"
)

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func pairCmd() *cobra.Command {
	var pairingToken string
	cmd := &cobra.Command{
		Use:   "pair",
		Short: "Run getAppIdentity + beginHandshake + finishHandshake against a running pearpassd, end to end",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pairingToken == "" {
				return fmt.Errorf("--pairing-token is required")
			}

			extSk, extPub, err := loadOrCreateExtState(statePath)
			if err != nil {
				return err
			}

			p, err := spawn(pearpassdPath, spawnArgs()...)
			if err != nil {
				return fmt.Errorf("spawning %s: %w", pearpassdPath, err)
			}
			defer p.close()

			idResult, err := p.call("getAppIdentity", map[string]any{
				"pairingToken": pairingToken,
				"peerEdPubB64": crypto.B64(extPub[:]),
			})
			if err != nil {
				return fmt.Errorf("getAppIdentity: %w", err)
			}
			hostEdPubRaw, err := crypto.UnB64(str(idResult, "edPub"))
			if err != nil || len(hostEdPubRaw) != 32 {
				return fmt.Errorf("getAppIdentity: malformed host edPub")
			}
			hostEdPub := domain.MustEd25519Public(hostEdPubRaw)
			fmt.Printf("host identity:  edPub=%s fingerprint=%s\n", str(idResult, "edPub"), str(idResult, "fingerprint"))

			extEphSk, extEphPub, err := crypto.GenerateX25519()
			if err != nil {
				return err
			}

			beginResult, err := p.call("beginHandshake", map[string]any{
				"extEphPubB64": crypto.B64(extEphPub[:]),
			})
			if err != nil {
				return fmt.Errorf("beginHandshake: %w", err)
			}
			sessionID := str(beginResult, "sessionId")
			hostEphPubRaw, err := crypto.UnB64(str(beginResult, "hostEphPubB64"))
			if err != nil || len(hostEphPubRaw) != 32 {
				return fmt.Errorf("beginHandshake: malformed host ephemeral key")
			}
			hostEphPub := domain.MustX25519Public(hostEphPubRaw)
			signature, err := crypto.UnB64(str(beginResult, "signatureB64"))
			if err != nil {
				return fmt.Errorf("beginHandshake: malformed signature")
			}

			transcript := handshake.Transcript(hostEphPub, extEphPub, extPub)
			if !crypto.VerifyEd25519(hostEdPub, transcript, signature) {
				return fmt.Errorf("host's transcript signature failed to verify")
			}
			fmt.Println("host transcript signature verified")

			sessionKey, err := crypto.DH(extEphSk, hostEphPub)
			crypto.Wipe(extEphSk[:])
			if err != nil {
				return fmt.Errorf("computing session key: %w", err)
			}

			preimage := handshake.ClientFinishPreimage(sessionID, transcript)
			clientSig := crypto.SignEd25519(extSk, preimage)

			if _, err := p.call("finishHandshake", map[string]any{
				"sessionId":    sessionID,
				"clientSigB64": crypto.B64(clientSig),
			}); err != nil {
				return fmt.Errorf("finishHandshake: %w", err)
			}
			fmt.Printf("session %s established\n", sessionID)

			nonce, ciphertext, err := crypto.SecretboxSeal(sessionKey, []byte("hello"))
			if err != nil {
				return fmt.Errorf("round-trip seal: %w", err)
			}
			plaintext, err := crypto.SecretboxOpen(sessionKey, nonce, ciphertext)
			if err != nil || !bytes.Equal(plaintext, []byte("hello")) {
				return fmt.Errorf("round-trip open: mismatch (err=%v)", err)
			}
			fmt.Println("round-trip seal/open over the derived session key: ok")

			st, err := loadExtState(statePath)
			if err != nil {
				return err
			}
			st.LastSessionID = sessionID
			return saveExtState(statePath, st)
		},
	}
	cmd.Flags().StringVar(&pairingToken, "pairing-token", "", "pairing code the user typed in, e.g. 482915-7B3C")
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether this simulated extension is confirmed-paired with the host",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, extPub, err := loadOrCreateExtState(statePath)
			if err != nil {
				return err
			}
			p, err := spawn(pearpassdPath, spawnArgs()...)
			if err != nil {
				return err
			}
			defer p.close()

			result, err := p.call("checkPairingStatus", map[string]any{
				"peerEdPubB64": crypto.B64(extPub[:]),
			})
			if err != nil {
				return err
			}
			fmt.Printf("paired: %v\n", result["paired"])
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Call resetPairing on the host",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := spawn(pearpassdPath, spawnArgs()...)
			if err != nil {
				return err
			}
			defer p.close()

			result, err := p.call("resetPairing", nil)
			if err != nil {
				return err
			}
			fmt.Printf("reset ok, cleared %v sessions, new host identity: %v\n", result["clearedSessions"], result["newIdentity"])
			return nil
		},
	}
}

func closeCmd() *cobra.Command {
	var sessionID string
	cmd := &cobra.Command{
		Use:   "close",
		Short: "Call closeSession, defaulting to the last session this simulator opened",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sessionID == "" {
				st, err := loadExtState(statePath)
				if err != nil {
					return err
				}
				sessionID = st.LastSessionID
			}
			if sessionID == "" {
				return fmt.Errorf("no session id given and none recorded in --state")
			}

			p, err := spawn(pearpassdPath, spawnArgs()...)
			if err != nil {
				return err
			}
			defer p.close()

			if _, err := p.call("closeSession", map[string]any{"sessionId": sessionID}); err != nil {
				return err
			}
			fmt.Println("closed", sessionID)
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionID, "session", "", "session id to close (defaults to the last one recorded)")
	return cmd
}
