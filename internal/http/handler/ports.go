package handler

import (
	"context"
	"net/http"

	"textpay/internal/core"
	"textpay/internal/ratelimit"

	jwtgo "github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name MessageDispatcher . MessageDispatcher
type MessageDispatcher interface {
	Dispatch(ctx context.Context, msg core.InboundMessage) (core.Ack, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name AdminService . AdminService
type AdminService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
}

//counterfeiter:generate -o fake -fake-name LimiterAdmin . LimiterAdmin
type LimiterAdmin interface {
	GlobalStats(ctx context.Context) (ratelimit.Stats, error)
	ResetAllCounters(ctx context.Context) (ratelimit.ResetSummary, error)
}

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwtgo.MapClaims, error)
}
