package escrow

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"textpay/internal/repository"
	"textpay/pkg/currency"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultClaimWindow = 30 * 24 * time.Hour

// ClaimResult summarizes a batch release triggered by a recipient's first
// qualifying contact.
type ClaimResult struct {
	WalletAddress string
	Released      int
	Amounts       map[string]string // asset -> human-readable total
}

// Manager holds funds for recipients who have no wallet yet and releases
// them on first contact. It owns the PendingClaim collection exclusively.
type Manager struct {
	logs        *zap.SugaredLogger
	claims      ClaimStore
	chain       EscrowChain
	directory   WalletResolver
	claimWindow time.Duration
	now         func() time.Time
}

func NewManager(logger *zap.SugaredLogger, claims ClaimStore, chain EscrowChain, directory WalletResolver, claimWindow time.Duration) *Manager {
	if claimWindow <= 0 {
		claimWindow = DefaultClaimWindow
	}
	return &Manager{
		logs:        logger,
		claims:      claims,
		chain:       chain,
		directory:   directory,
		claimWindow: claimWindow,
		now:         time.Now,
	}
}

// LockForUnknownRecipient locks the sender's funds into the escrow contract
// and records a claim the recipient can redeem by simply showing up. The
// record id of the triggering message doubles as the lock ref.
func (m *Manager) LockForUnknownRecipient(ctx context.Context, sender repository.Wallet, recipientPhone string, amount *big.Int, asset currency.Asset, ref uuid.UUID) (repository.PendingClaim, error) {
	expiresAt := m.now().UTC().Add(m.claimWindow)

	txHash, escrowRef, err := m.chain.Lock(ctx, sender, amount, asset, ref, expiresAt)
	if err != nil {
		return repository.PendingClaim{}, fmt.Errorf("lock funds on chain: %w", err)
	}

	claim := repository.PendingClaim{
		ClaimID:        uuid.NewString(),
		RecipientPhone: recipientPhone,
		SenderPhone:    sender.PhoneNumber,
		Amount:         amount.String(),
		Asset:          asset.Symbol,
		EscrowRef:      escrowRef,
		LockTxHash:     txHash,
		Status:         repository.ClaimStatusLocked,
		ExpiresAt:      expiresAt,
	}

	if err := m.claims.CreateClaim(ctx, claim); err != nil {
		return repository.PendingClaim{}, fmt.Errorf("persist claim: %w", err)
	}

	m.logs.Infow("escrow claim locked",
		"claim_id", claim.ClaimID,
		"recipient", recipientPhone,
		"lock_tx", txHash,
		"expires_at", expiresAt)

	return claim, nil
}

// Claim releases every locked claim addressed to recipientPhone in one
// batch, creating the wallet first. Idempotent: claims another caller (or an
// earlier call) already moved out of locked are skipped, so a repeated claim
// is a no-op rather than an error.
func (m *Manager) Claim(ctx context.Context, recipientPhone string) (ClaimResult, error) {
	locked, err := m.claims.LockedClaimsByRecipient(ctx, recipientPhone)
	if err != nil {
		return ClaimResult{}, fmt.Errorf("list locked claims: %w", err)
	}
	if len(locked) == 0 {
		return ClaimResult{}, nil
	}

	wallet, err := m.directory.ResolveOrCreate(ctx, recipientPhone)
	if err != nil {
		return ClaimResult{}, fmt.Errorf("resolve recipient wallet: %w", err)
	}

	result := ClaimResult{
		WalletAddress: wallet.Address,
		Amounts:       make(map[string]string),
	}
	totals := make(map[string]*big.Int)

	for _, claim := range locked {
		// the guarded transition is the claim-vs-expiry tie-break: first
		// committed write wins, the loser sees won == false
		won, err := m.claims.TransitionClaim(ctx, claim.ClaimID, repository.ClaimStatusLocked, repository.ClaimStatusClaimed, nil)
		if err != nil {
			return result, fmt.Errorf("transition claim %s: %w", claim.ClaimID, err)
		}
		if !won {
			continue
		}

		releaseTx, err := m.chain.Release(ctx, claim.EscrowRef, wallet.Address)
		if err != nil {
			// the claim stays claimed; the release is re-driven by ops from
			// the missing release_tx_hash, never re-raced on-chain
			m.logs.Errorw("escrow release failed after claim transition",
				"claim_id", claim.ClaimID,
				"error", err)
			continue
		}

		if _, err := m.claims.TransitionClaim(ctx, claim.ClaimID, repository.ClaimStatusClaimed, repository.ClaimStatusClaimed, map[string]any{
			"release_tx_hash": releaseTx,
		}); err != nil {
			m.logs.Errorw("failed to record release tx", "claim_id", claim.ClaimID, "error", err)
		}

		result.Released++

		amount, ok := new(big.Int).SetString(claim.Amount, 10)
		if !ok {
			continue
		}
		if total, exists := totals[claim.Asset]; exists {
			total.Add(total, amount)
		} else {
			totals[claim.Asset] = amount
		}
	}

	for symbol, total := range totals {
		asset, err := currency.Lookup(symbol)
		if err != nil {
			result.Amounts[symbol] = total.String()
			continue
		}
		result.Amounts[symbol] = currency.FormatAmount(total, asset)
	}

	if result.Released > 0 {
		m.logs.Infow("escrow claims released",
			"recipient", recipientPhone,
			"released", result.Released,
			"wallet", wallet.Address)
	}

	return result, nil
}

// ExpireSweep moves overdue locked claims to expired and refunds the
// senders. Failures are logged and retried on the next sweep cycle; they are
// never user-visible.
func (m *Manager) ExpireSweep(ctx context.Context, now time.Time) (int, error) {
	overdue, err := m.claims.LockedClaimsExpiredBefore(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list overdue claims: %w", err)
	}

	expired := 0
	for _, claim := range overdue {
		won, err := m.claims.TransitionClaim(ctx, claim.ClaimID, repository.ClaimStatusLocked, repository.ClaimStatusExpired, nil)
		if err != nil {
			m.logs.Errorw("failed to expire claim", "claim_id", claim.ClaimID, "error", err)
			continue
		}
		if !won {
			// a concurrent Claim committed first
			continue
		}

		refundTx, err := m.chain.Refund(ctx, claim.EscrowRef)
		if err != nil {
			m.logs.Errorw("escrow refund failed", "claim_id", claim.ClaimID, "error", err)
			continue
		}

		if _, err := m.claims.TransitionClaim(ctx, claim.ClaimID, repository.ClaimStatusExpired, repository.ClaimStatusRefunded, map[string]any{
			"refund_tx_hash": refundTx,
		}); err != nil {
			m.logs.Errorw("failed to record refund tx", "claim_id", claim.ClaimID, "error", err)
		}

		expired++
	}

	return expired, nil
}

// RunSweeper drives ExpireSweep on an interval until the context ends.
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			expired, err := m.ExpireSweep(ctx, m.now().UTC())
			if err != nil {
				m.logs.Errorw("expire sweep failed", "error", err)
				continue
			}
			if expired > 0 {
				m.logs.Infow("expired claims swept", "count", expired)
			}
		}
	}
}
