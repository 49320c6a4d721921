package pairing

import "encoding/json"

// peerData is the JSON shape stored under the "peer.data" KV key.
type peerData struct {
	PublicKey    string `json:"publicKey"`
	PairingState string `json:"pairingState"`
}

func encodePeer(peerEdPubB64, state string) (string, error) {
	b, err := json.Marshal(peerData{PublicKey: peerEdPubB64, PairingState: state})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodePeer(raw string) (peerData, bool) {
	if raw == "" {
		return peerData{}, false
	}
	var pd peerData
	if err := json.Unmarshal([]byte(raw), &pd); err != nil {
		return peerData{}, false
	}
	if pd.PublicKey == "" {
		return peerData{}, false
	}
	return pd, true
}
