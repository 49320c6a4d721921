package rpc

import (
	"pearpass-host/internal/crypto"
	"pearpass-host/internal/domain"
)

// getAppIdentity verifies the user-typed pairing token, pins the peer as
// PENDING, and returns the host's public identity.
func (f *Facade) getAppIdentity(params map[string]any) (any, *domain.ProtocolError) {
	token := paramString(params, "pairingToken")
	if token == "" {
		return nil, &domain.ProtocolError{Kind: domain.ErrPairingTokenRequired}
	}
	peerB64 := paramString(params, "peerEdPubB64")
	if peerB64 == "" {
		return nil, &domain.ProtocolError{Kind: domain.ErrPeerPublicKeyRequired}
	}
	peerRaw, err := crypto.UnB64(peerB64)
	if err != nil || len(peerRaw) != 32 {
		return nil, &domain.ProtocolError{Kind: domain.ErrInvalidPeerPublicKey}
	}

	if !f.Pairing.VerifyPairingCode(token) {
		return nil, &domain.ProtocolError{Kind: domain.ErrInvalidPairingToken}
	}

	peerEdPub := domain.MustEd25519Public(peerRaw)
	if pinErr := f.Pairing.PinPeer(peerEdPub); pinErr != nil {
		if pe, ok := pinErr.(*domain.ProtocolError); ok {
			return nil, pe
		}
		return nil, &domain.ProtocolError{Kind: domain.ErrIdentityKeysUnavailable, Detail: pinErr.Error()}
	}

	pub, err := f.Identity.GetOrCreate()
	if err != nil {
		return nil, &domain.ProtocolError{Kind: domain.ErrIdentityKeysUnavailable, Detail: err.Error()}
	}
	fingerprint := f.Identity.GetFingerprint(pub.EdPub)

	return map[string]any{
		"edPub":       crypto.B64(pub.EdPub[:]),
		"xPub":        crypto.B64(pub.XPub[:]),
		"fingerprint": fingerprint,
	}, nil
}

func (f *Facade) beginHandshake(params map[string]any) (any, *domain.ProtocolError) {
	extEphPubB64 := paramString(params, "extEphPubB64")
	hostEphPubB64, signatureB64, sessionID, err := f.Sessions.BeginHandshake(extEphPubB64)
	if err != nil {
		return nil, err
	}
	if f.metrics != nil {
		f.metrics.HandshakeResults.WithLabelValues("begin", "ok").Inc()
		f.metrics.SessionsActive.Inc()
	}
	return map[string]any{
		"hostEphPubB64": hostEphPubB64,
		"signatureB64":  signatureB64,
		"sessionId":     sessionID,
	}, nil
}

func (f *Facade) finishHandshake(params map[string]any) (any, *domain.ProtocolError) {
	sessionID := paramString(params, "sessionId")
	clientSigB64 := paramString(params, "clientSigB64")
	if err := f.Sessions.FinishHandshake(sessionID, clientSigB64); err != nil {
		if f.metrics != nil {
			f.metrics.HandshakeResults.WithLabelValues("finish", string(err.Kind)).Inc()
			if err.Kind == domain.ErrPeerSignatureInvalid {
				// The session manager closed the session.
				f.metrics.SessionsActive.Dec()
			}
		}
		return nil, err
	}
	if f.metrics != nil {
		f.metrics.HandshakeResults.WithLabelValues("finish", "ok").Inc()
	}
	return map[string]any{"ok": true}, nil
}

func (f *Facade) closeSession(params map[string]any) (any, *domain.ProtocolError) {
	sessionID := paramString(params, "sessionId")
	if sessionID == "" {
		return nil, &domain.ProtocolError{Kind: domain.ErrMissingSessionId}
	}
	_, existed := f.Store.Get(sessionID)
	f.Store.Close(sessionID)
	if f.metrics != nil && existed {
		f.metrics.SessionsActive.Dec()
	}
	return map[string]any{"ok": true}, nil
}

func (f *Facade) checkPairingStatus(params map[string]any) (any, *domain.ProtocolError) {
	peerB64 := paramString(params, "peerEdPubB64")
	if peerB64 == "" {
		return nil, &domain.ProtocolError{Kind: domain.ErrPeerPublicKeyRequired}
	}
	peerRaw, err := crypto.UnB64(peerB64)
	if err != nil || len(peerRaw) != 32 {
		return nil, &domain.ProtocolError{Kind: domain.ErrInvalidPeerPublicKey}
	}
	peerEdPub := domain.MustEd25519Public(peerRaw)

	cached, ok := f.Cache.Get()
	paired := ok && crypto.CTEqual(cached[:], peerEdPub[:])
	return map[string]any{"paired": paired}, nil
}

func (f *Facade) resetPairing(params map[string]any) (any, *domain.ProtocolError) {
	clearedSessions := f.Store.ClearAll()
	if err := f.Pairing.ClearPairing(); err != nil {
		return nil, &domain.ProtocolError{Kind: domain.ErrIdentityKeysUnavailable, Detail: err.Error()}
	}
	if err := f.Identity.Reset(); err != nil {
		return nil, &domain.ProtocolError{Kind: domain.ErrIdentityKeysUnavailable, Detail: err.Error()}
	}
	newIdentity, err := f.Identity.GetOrCreate()
	if err != nil {
		return nil, &domain.ProtocolError{Kind: domain.ErrIdentityKeysUnavailable, Detail: err.Error()}
	}
	if f.metrics != nil {
		f.metrics.PairingEvents.WithLabelValues("reset").Inc()
		f.metrics.SessionsActive.Set(0)
	}
	return map[string]any{
		"ok":              true,
		"clearedSessions": clearedSessions,
		"newIdentity": map[string]any{
			"edPub": crypto.B64(newIdentity.EdPub[:]),
			"xPub":  crypto.B64(newIdentity.XPub[:]),
		},
	}, nil
}
