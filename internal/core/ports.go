package core

import (
	"context"
	"math/big"

	"textpay/internal/escrow"
	"textpay/internal/ratelimit"
	"textpay/internal/repository"
	"textpay/pkg/currency"
	tokenIssuer "textpay/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RateLimiter . RateLimiter
type RateLimiter interface {
	CheckAndIncrement(ctx context.Context, phone string) (ratelimit.Verdict, error)
}

//counterfeiter:generate -o fake -fake-name WalletDirectory . WalletDirectory
type WalletDirectory interface {
	ResolveOrCreate(ctx context.Context, phone string) (repository.Wallet, error)
	Lookup(ctx context.Context, phone string) (repository.Wallet, error)
	GetBalance(ctx context.Context, phone string) (map[string]string, error)
}

//counterfeiter:generate -o fake -fake-name ClaimService . ClaimService
type ClaimService interface {
	LockForUnknownRecipient(ctx context.Context, sender repository.Wallet, recipientPhone string, amount *big.Int, asset currency.Asset, ref uuid.UUID) (repository.PendingClaim, error)
	Claim(ctx context.Context, recipientPhone string) (escrow.ClaimResult, error)
}

//counterfeiter:generate -o fake -fake-name ChainService . ChainService
type ChainService interface {
	Transfer(ctx context.Context, from repository.Wallet, toAddress string, amount *big.Int, asset currency.Asset, ref uuid.UUID) (string, error)
}

//counterfeiter:generate -o fake -fake-name RecordStore . RecordStore
type RecordStore interface {
	CreateTransactionIfAbsent(ctx context.Context, record repository.TransactionRecord) (bool, error)
	GetTransaction(ctx context.Context, id string) (repository.TransactionRecord, error)
	UpdateTransaction(ctx context.Context, id string, updates map[string]any) error
	MarkTransaction(ctx context.Context, id, fromStatus, toStatus string, extra map[string]any) (bool, error)
	MarkAcknowledged(ctx context.Context, id, responseText string) (bool, error)
}

//counterfeiter:generate -o fake -fake-name OperatorStore . OperatorStore
type OperatorStore interface {
	GetOperator(ctx context.Context, username string) (repository.Operator, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}
