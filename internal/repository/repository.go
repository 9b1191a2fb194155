package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"textpay/internal/db"

	"github.com/google/uuid"
)

var ErrWalletNotFound error = errors.New("wallet not found")
var ErrOperatorNotFound error = errors.New("operator not found")
var ErrTransactionNotFound error = errors.New("transaction record not found")

// Store is the persistence layer for wallets, transaction records, pending
// claims and operators. Rate counters live in Redis, not here.
type Store struct {
	db Storage
}

func NewStore(db Storage) *Store {
	return &Store{
		db: db,
	}
}

// MigrateAndSeed creates the tables and seeds the admin operator account.
// The seed is idempotent: an existing operator row is left untouched.
func (r *Store) MigrateAndSeed(ctx context.Context, adminPasswordHash string) error {
	err := r.db.MigrateTable(&Wallet{}, &TransactionRecord{}, &PendingClaim{}, &Operator{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	_, err = r.db.InsertIfAbsent(ctx, &Operator{
		ID:           uuid.NewString(),
		Username:     "admin",
		PasswordHash: adminPasswordHash,
	})
	if err != nil {
		return fmt.Errorf("seed operator: %w", err)
	}

	return nil
}

func (r *Store) InsertWalletIfAbsent(ctx context.Context, wallet Wallet) (bool, error) {
	wallet.CreatedAt = time.Now().UTC()
	inserted, err := r.db.InsertIfAbsent(ctx, &wallet)
	if err != nil {
		return false, fmt.Errorf("insert wallet: %w", err)
	}

	return inserted, nil
}

func (r *Store) GetWalletByPhone(ctx context.Context, phone string) (Wallet, error) {
	var wallet Wallet

	err := r.db.GetOneBy(ctx, "phone_number", phone, &wallet)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Wallet{}, ErrWalletNotFound
		}
		return Wallet{}, fmt.Errorf("get wallet by phone: %w", err)
	}

	return wallet, nil
}

func (r *Store) CreateTransactionIfAbsent(ctx context.Context, record TransactionRecord) (bool, error) {
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	inserted, err := r.db.InsertIfAbsent(ctx, &record)
	if err != nil {
		return false, fmt.Errorf("insert transaction record: %w", err)
	}

	return inserted, nil
}

func (r *Store) GetTransaction(ctx context.Context, id string) (TransactionRecord, error) {
	var record TransactionRecord

	err := r.db.GetOneBy(ctx, "id", id, &record)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return TransactionRecord{}, ErrTransactionNotFound
		}
		return TransactionRecord{}, fmt.Errorf("get transaction record: %w", err)
	}

	return record, nil
}

func (r *Store) UpdateTransaction(ctx context.Context, id string, updates map[string]any) error {
	updates["updated_at"] = time.Now().UTC()

	_, err := r.db.UpdateWhere(ctx, &TransactionRecord{}, updates, "id = ?", id)
	if err != nil {
		return fmt.Errorf("update transaction record: %w", err)
	}

	return nil
}

// MarkTransaction transitions a record between statuses with a guard on the
// current status. Returns false when another writer won the transition.
func (r *Store) MarkTransaction(ctx context.Context, id, fromStatus, toStatus string, extra map[string]any) (bool, error) {
	updates := map[string]any{
		"status":     toStatus,
		"updated_at": time.Now().UTC(),
	}
	for k, v := range extra {
		updates[k] = v
	}

	rows, err := r.db.UpdateWhere(ctx, &TransactionRecord{}, updates, "id = ? AND status = ?", id, fromStatus)
	if err != nil {
		return false, fmt.Errorf("mark transaction %s -> %s: %w", fromStatus, toStatus, err)
	}

	return rows > 0, nil
}

// MarkAcknowledged flips the ack flag exactly once per record, so a replayed
// confirmation never produces a duplicate outbound message.
func (r *Store) MarkAcknowledged(ctx context.Context, id, responseText string) (bool, error) {
	updates := map[string]any{
		"ack_sent":      true,
		"response_text": responseText,
		"updated_at":    time.Now().UTC(),
	}

	rows, err := r.db.UpdateWhere(ctx, &TransactionRecord{}, updates, "id = ? AND ack_sent = ?", id, false)
	if err != nil {
		return false, fmt.Errorf("mark acknowledged: %w", err)
	}

	return rows > 0, nil
}

func (r *Store) ListSubmitted(ctx context.Context) ([]TransactionRecord, error) {
	var records []TransactionRecord

	err := r.db.GetAllWhere(ctx, &records, "status = ?", TxStatusSubmitted)
	if err != nil {
		return nil, fmt.Errorf("list submitted transactions: %w", err)
	}

	return records, nil
}

func (r *Store) CreateClaim(ctx context.Context, claim PendingClaim) error {
	now := time.Now().UTC()
	claim.CreatedAt = now
	claim.UpdatedAt = now

	err := r.db.SaveToTable(ctx, &claim)
	if err != nil {
		return fmt.Errorf("create pending claim: %w", err)
	}

	return nil
}

func (r *Store) LockedClaimsByRecipient(ctx context.Context, phone string) ([]PendingClaim, error) {
	var claims []PendingClaim

	err := r.db.GetAllWhere(ctx, &claims, "recipient_phone = ? AND status = ?", phone, ClaimStatusLocked)
	if err != nil {
		return nil, fmt.Errorf("locked claims by recipient: %w", err)
	}

	return claims, nil
}

func (r *Store) LockedClaimsExpiredBefore(ctx context.Context, cutoff time.Time) ([]PendingClaim, error) {
	var claims []PendingClaim

	err := r.db.GetAllWhere(ctx, &claims, "status = ? AND expires_at < ?", ClaimStatusLocked, cutoff)
	if err != nil {
		return nil, fmt.Errorf("locked claims expired before %s: %w", cutoff, err)
	}

	return claims, nil
}

// TransitionClaim moves a claim out of fromStatus under an optimistic guard.
// The claim-vs-expiry race is settled here: the first committed transition
// wins and the loser sees rows == 0.
func (r *Store) TransitionClaim(ctx context.Context, claimID, fromStatus, toStatus string, extra map[string]any) (bool, error) {
	updates := map[string]any{
		"status":     toStatus,
		"updated_at": time.Now().UTC(),
	}
	for k, v := range extra {
		updates[k] = v
	}

	rows, err := r.db.UpdateWhere(ctx, &PendingClaim{}, updates, "claim_id = ? AND status = ?", claimID, fromStatus)
	if err != nil {
		return false, fmt.Errorf("transition claim %s -> %s: %w", fromStatus, toStatus, err)
	}

	return rows > 0, nil
}

func (r *Store) GetOperator(ctx context.Context, username string) (Operator, error) {
	var operator Operator

	err := r.db.GetOneBy(ctx, "username", username, &operator)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Operator{}, ErrOperatorNotFound
		}
		return Operator{}, fmt.Errorf("get operator by username: %w", err)
	}

	return operator, nil
}
