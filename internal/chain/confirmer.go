package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"textpay/internal/repository"
	"textpay/pkg/currency"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// How long a submitted record may sit without a tx hash before it is
// declared unresolvable. Covers a submitter that died between broadcast
// and persisting the hash.
const unhashedGrace = 10 * time.Minute

// Confirmer is the out-of-band reconciliation loop: it walks submitted
// transaction records, polls for receipts and drives each record to a
// terminal state with exactly one user acknowledgment. It runs outside the
// inbound-message critical path, so per-message latency is bounded by
// submission time, not chain finality.
type Confirmer struct {
	logs     *zap.SugaredLogger
	receipts ReceiptFetcher
	records  RecordStore
	notify   Notifier
	interval time.Duration
}

func NewConfirmer(logger *zap.SugaredLogger, receipts ReceiptFetcher, records RecordStore, notify Notifier, interval time.Duration) *Confirmer {
	return &Confirmer{
		logs:     logger,
		receipts: receipts,
		records:  records,
		notify:   notify,
		interval: interval,
	}
}

func (c *Confirmer) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Poll(ctx); err != nil {
				c.logs.Errorw("confirmation poll failed", "error", err)
			}
		}
	}
}

// Poll processes one reconciliation pass. Errors on individual records are
// logged and retried on the next pass.
func (c *Confirmer) Poll(ctx context.Context) error {
	records, err := c.records.ListSubmitted(ctx)
	if err != nil {
		return fmt.Errorf("list submitted records: %w", err)
	}

	for _, record := range records {
		if record.ChainTxHash == nil {
			if err := c.resolveUnhashed(ctx, record); err != nil {
				c.logs.Errorw("failed to resolve hashless record", "id", record.ID, "error", err)
			}
			continue
		}

		if err := c.reconcile(ctx, record); err != nil {
			c.logs.Errorw("failed to reconcile record", "id", record.ID, "error", err)
		}
	}

	return nil
}

// resolveUnhashed settles records whose submission timed out before a tx
// hash was recorded. There is no receipt to poll for, so after a grace
// period the record is failed and the sender told to verify their balance.
func (c *Confirmer) resolveUnhashed(ctx context.Context, record repository.TransactionRecord) error {
	if time.Since(record.UpdatedAt) < unhashedGrace {
		return nil
	}

	won, err := c.records.MarkTransaction(ctx, record.ID, repository.TxStatusSubmitted, repository.TxStatusFailed, nil)
	if err != nil {
		return fmt.Errorf("mark hashless record failed: %w", err)
	}
	if !won {
		return nil
	}

	text := fmt.Sprintf("We could not confirm your transfer of %s %s to %s. Please check your balance before sending again.",
		recordAmount(record), record.Asset, recordRecipient(record))

	acked, err := c.records.MarkAcknowledged(ctx, record.ID, text)
	if err != nil {
		return fmt.Errorf("mark acknowledged: %w", err)
	}
	if !acked {
		return nil
	}

	if err := c.notify.Send(ctx, record.FromPhone, text); err != nil {
		c.logs.Errorw("failed to deliver acknowledgment", "id", record.ID, "error", err)
	}

	c.logs.Infow("hashless submission settled", "id", record.ID)

	return nil
}

func (c *Confirmer) reconcile(ctx context.Context, record repository.TransactionRecord) error {
	receipt, err := c.receipts.TransactionReceipt(ctx, common.HexToHash(*record.ChainTxHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			// not mined yet, next pass
			return nil
		}
		return fmt.Errorf("fetch receipt: %w", err)
	}

	status := repository.TxStatusFailed
	if receipt.Status == types.ReceiptStatusSuccessful {
		status = repository.TxStatusConfirmed
	}

	won, err := c.records.MarkTransaction(ctx, record.ID, repository.TxStatusSubmitted, status, nil)
	if err != nil {
		return fmt.Errorf("mark transaction terminal: %w", err)
	}
	if !won {
		// another poller instance got here first
		return nil
	}

	text := ackText(record, status)

	acked, err := c.records.MarkAcknowledged(ctx, record.ID, text)
	if err != nil {
		return fmt.Errorf("mark acknowledged: %w", err)
	}
	if !acked {
		return nil
	}

	if err := c.notify.Send(ctx, record.FromPhone, text); err != nil {
		// delivery failure never rolls back financial state
		c.logs.Errorw("failed to deliver acknowledgment", "id", record.ID, "error", err)
	}

	c.logs.Infow("transaction reconciled", "id", record.ID, "status", status)

	return nil
}

func ackText(record repository.TransactionRecord, status string) string {
	amount := recordAmount(record)
	recipient := recordRecipient(record)

	if status == repository.TxStatusConfirmed {
		return fmt.Sprintf("Your transfer of %s %s to %s is confirmed.", amount, record.Asset, recipient)
	}
	return fmt.Sprintf("Your transfer of %s %s to %s failed on-chain. Your balance was not affected.", amount, record.Asset, recipient)
}

func recordAmount(record repository.TransactionRecord) string {
	if asset, err := currency.Lookup(record.Asset); err == nil {
		if units, ok := new(big.Int).SetString(record.Amount, 10); ok {
			return currency.FormatAmount(units, asset)
		}
	}
	return record.Amount
}

func recordRecipient(record repository.TransactionRecord) string {
	if record.ToPhone != nil {
		return *record.ToPhone
	}
	return "the recipient"
}
