package main

import (
	"encoding/json"
	"errors"
	"os"

	"pearpass-host/internal/crypto"
	"pearpass-host/internal/domain"
)

// extState is the simulated extension's persisted long-term identity. A
// real extension keeps this in its own storage; extsim keeps it in a small
// JSON file so repeated invocations of the CLI reuse the same identity
// instead of re-pairing every time.
type extState struct {
	EdPubB64      string `json:"edPubB64"`
	EdSkB64       string `json:"edSkB64"`
	LastSessionID string `json:"lastSessionId,omitempty"`
}

func loadExtState(path string) (extState, error) {
	var st extState
	err := readJSON(path, &st)
	return st, err
}

func saveExtState(path string, st extState) error {
	return writeJSON(path, st, 0o600)
}

func loadOrCreateExtState(path string) (domain.Ed25519Private, domain.Ed25519Public, error) {
	st, err := loadExtState(path)
	if err != nil {
		return domain.Ed25519Private{}, domain.Ed25519Public{}, err
	}
	if st.EdPubB64 != "" && st.EdSkB64 != "" {
		pubRaw, err1 := crypto.UnB64(st.EdPubB64)
		skRaw, err2 := crypto.UnB64(st.EdSkB64)
		if err1 == nil && err2 == nil && len(pubRaw) == 32 && len(skRaw) == 64 {
			var pub domain.Ed25519Public
			var sk domain.Ed25519Private
			copy(pub[:], pubRaw)
			copy(sk[:], skRaw)
			return sk, pub, nil
		}
	}

	sk, pub, err := crypto.GenerateEd25519()
	if err != nil {
		return sk, pub, err
	}
	st.EdPubB64, st.EdSkB64 = crypto.B64(pub[:]), crypto.B64(sk[:])
	if err := saveExtState(path, st); err != nil {
		return sk, pub, err
	}
	return sk, pub, nil
}

func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
