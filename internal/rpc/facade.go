package rpc

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"pearpass-host/internal/domain"
	"pearpass-host/internal/metrics"
	"pearpass-host/internal/session"
)

// Facade dispatches named RPC operations onto the pairing and session
// components, gated by whether native messaging is currently enabled.
type Facade struct {
	Identity domain.IdentityStore
	Pairing  domain.PairingManager
	Sessions domain.SessionManager
	Store    *session.Store
	Cache    domain.UnprotectedCache

	NativeMessagingEnabled bool

	log     zerolog.Logger
	metrics *metrics.Metrics
}

// New returns a Facade. log and m may be zero values (zerolog.Logger{} /
// nil metrics.Metrics are both handled: a nil *metrics.Metrics disables
// metric recording).
func New(identity domain.IdentityStore, pairing domain.PairingManager, sessions domain.SessionManager, store *session.Store, cache domain.UnprotectedCache, nativeMessagingEnabled bool, log zerolog.Logger, m *metrics.Metrics) *Facade {
	return &Facade{
		Identity:               identity,
		Pairing:                pairing,
		Sessions:               sessions,
		Store:                  store,
		Cache:                  cache,
		NativeMessagingEnabled: nativeMessagingEnabled,
		log:                    log,
		metrics:                m,
	}
}

// Handle dispatches req and always returns a Response, never an error:
// failures are carried in Response.Error per spec.md §7.
func (f *Facade) Handle(req Request) Response {
	reqID := req.RequestID
	if reqID == "" {
		reqID = uuid.NewString()
	}

	start := time.Now()
	result, protoErr := f.dispatch(req.Op, req.Params)
	elapsed := time.Since(start)

	outcome := "ok"
	if protoErr != nil {
		outcome = string(protoErr.Kind)
	}

	logEvent := f.log.Debug().
		Str("op", req.Op).
		Str("requestId", reqID).
		Str("outcome", outcome).
		Dur("elapsed", elapsed)
	logEvent.Msg("rpc call")

	if f.metrics != nil {
		f.metrics.RequestsTotal.WithLabelValues(req.Op, outcome).Inc()
		f.metrics.RequestDuration.WithLabelValues(req.Op).Observe(elapsed.Seconds())
	}

	resp := Response{RequestID: reqID}
	if protoErr != nil {
		resp.Error = &WireError{Code: string(protoErr.Kind), Message: protoErr.Error()}
		return resp
	}
	resp.Result = result
	return resp
}

// MetricsHandler exposes the façade's Prometheus collectors over HTTP, or
// http.NotFoundHandler if metrics were never wired in.
func (f *Facade) MetricsHandler() http.Handler {
	if f.metrics == nil {
		return http.NotFoundHandler()
	}
	return f.metrics.Handler()
}

// dispatch validates gating, then routes to the named operation.
func (f *Facade) dispatch(op string, params map[string]any) (any, *domain.ProtocolError) {
	if !f.NativeMessagingEnabled {
		return nil, &domain.ProtocolError{Kind: domain.ErrNativeMessagingDisabled}
	}

	switch op {
	case "getAppIdentity":
		return f.getAppIdentity(params)
	case "beginHandshake":
		return f.beginHandshake(params)
	case "finishHandshake":
		return f.finishHandshake(params)
	case "closeSession":
		return f.closeSession(params)
	case "checkPairingStatus":
		return f.checkPairingStatus(params)
	case "resetPairing":
		return f.resetPairing(params)
	default:
		return nil, &domain.ProtocolError{Kind: domain.ErrMissingField, Detail: "unknown op: " + op}
	}
}
