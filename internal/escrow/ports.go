package escrow

import (
	"context"
	"math/big"
	"time"

	"textpay/internal/repository"
	"textpay/pkg/currency"

	"github.com/google/uuid"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ClaimStore . ClaimStore
type ClaimStore interface {
	CreateClaim(ctx context.Context, claim repository.PendingClaim) error
	LockedClaimsByRecipient(ctx context.Context, phone string) ([]repository.PendingClaim, error)
	LockedClaimsExpiredBefore(ctx context.Context, cutoff time.Time) ([]repository.PendingClaim, error)
	TransitionClaim(ctx context.Context, claimID, fromStatus, toStatus string, extra map[string]any) (bool, error)
}

//counterfeiter:generate -o fake -fake-name EscrowChain . EscrowChain
type EscrowChain interface {
	Lock(ctx context.Context, from repository.Wallet, amount *big.Int, asset currency.Asset, ref uuid.UUID, expiresAt time.Time) (txHash string, escrowRef string, err error)
	Release(ctx context.Context, escrowRef, toAddress string) (string, error)
	Refund(ctx context.Context, escrowRef string) (string, error)
}

//counterfeiter:generate -o fake -fake-name WalletResolver . WalletResolver
type WalletResolver interface {
	ResolveOrCreate(ctx context.Context, phone string) (repository.Wallet, error)
}
