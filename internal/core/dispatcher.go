package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"textpay/internal/chain"
	"textpay/internal/intent"
	"textpay/internal/repository"
	"textpay/internal/wallet"
	"textpay/pkg/currency"

	"go.uber.org/zap"
)

const processingText = "Your request is being processed. We will confirm shortly."
const unavailableText = "We cannot process your request right now. Please try again later."

// Dispatcher runs the per-message state machine:
// Received -> RateChecked -> Parsed -> Resolved -> Executed -> Acknowledged,
// with early exits for rate denials and unparseable input. Once execution
// starts, the transaction record carries the operation to a terminal state
// regardless of what happens to the channel connection.
type Dispatcher struct {
	logs      *zap.SugaredLogger
	limiter   RateLimiter
	parser    intent.Parser
	directory WalletDirectory
	escrow    ClaimService
	chain     ChainService
	records   RecordStore
	locks     *phoneLocks
}

func NewDispatcher(
	logger *zap.SugaredLogger,
	limiter RateLimiter,
	parser intent.Parser,
	directory WalletDirectory,
	claimService ClaimService,
	chainService ChainService,
	records RecordStore,
) *Dispatcher {
	return &Dispatcher{
		logs:      logger,
		limiter:   limiter,
		parser:    parser,
		directory: directory,
		escrow:    claimService,
		chain:     chainService,
		records:   records,
		locks:     newPhoneLocks(),
	}
}

// Dispatch handles one normalized inbound message end to end and returns the
// immediate acknowledgment. Submitted transfers return a pending ack; their
// terminal ack is delivered out-of-band by the confirmation poller.
func (d *Dispatcher) Dispatch(ctx context.Context, msg InboundMessage) (Ack, error) {
	id := RecordID(msg.Channel, msg.MessageID).String()

	// idempotency gate: a replayed message id must not increment counters,
	// re-submit on-chain, or produce a second acknowledgment
	inserted, err := d.records.CreateTransactionIfAbsent(ctx, repository.TransactionRecord{
		ID:        id,
		Channel:   string(msg.Channel),
		MessageID: msg.MessageID,
		FromPhone: msg.FromPhone,
		Status:    repository.TxStatusPending,
	})
	if err != nil {
		return Ack{}, fmt.Errorf("create transaction record: %w", err)
	}
	if !inserted {
		return d.replayAck(ctx, id, msg)
	}

	verdict, err := d.limiter.CheckAndIncrement(ctx, msg.FromPhone)
	if err != nil {
		// the record must not stay pending: nothing will ever execute it,
		// so a gateway retry has to replay a terminal answer
		d.finalize(ctx, id, msg, unavailableText)
		return Ack{}, fmt.Errorf("rate limit check: %w", err)
	}
	if !verdict.Allowed {
		text := fmt.Sprintf("Daily message limit reached. Try again in %s.", formatRetry(verdict.RetryAfter))
		return d.finalize(ctx, id, msg, text), nil
	}

	parsed := d.parse(msg)
	if parsed.Kind == intent.KindUnknown {
		text := "Sorry, I could not understand that: " + parsed.Reason +
			". Try 'send 10 USDC to +2348010000000' or 'balance'."
		return d.finalize(ctx, id, msg, text), nil
	}

	// per-sender serialization across the resolve-to-execute span
	unlock := d.locks.Lock(msg.FromPhone)
	defer unlock()

	sender, err := d.directory.ResolveOrCreate(ctx, msg.FromPhone)
	if err != nil {
		d.logs.Errorw("failed to resolve sender wallet", "id", id, "error", err)
		return d.finalize(ctx, id, msg, unavailableText), nil
	}

	// first qualifying contact releases everything held for this number
	claimed, err := d.escrow.Claim(ctx, msg.FromPhone)
	if err != nil {
		d.logs.Errorw("failed to release pending claims", "id", id, "phone", msg.FromPhone, "error", err)
	}

	prefix := claimNote(claimed.Released, claimed.Amounts)

	switch parsed.Kind {
	case intent.KindBalance:
		return d.executeBalance(ctx, id, msg, prefix)
	case intent.KindSend:
		return d.executeSend(ctx, id, msg, sender, parsed, prefix)
	default:
		text := prefix + fmt.Sprintf("The %s feature is not available yet. You can send funds and check your balance today.",
			string(parsed.Kind))
		return d.finalize(ctx, id, msg, text), nil
	}
}

func (d *Dispatcher) parse(msg InboundMessage) intent.Intent {
	if msg.MenuPath != "" {
		return d.parser.ParseMenu(msg.MenuPath)
	}
	return d.parser.Parse(msg.Text)
}

func (d *Dispatcher) executeBalance(ctx context.Context, id string, msg InboundMessage, prefix string) (Ack, error) {
	balances, err := d.directory.GetBalance(ctx, msg.FromPhone)
	if err != nil {
		d.logs.Errorw("failed to read balance", "id", id, "error", err)
		return d.finalize(ctx, id, msg, unavailableText), nil
	}

	symbols := make([]string, 0, len(balances))
	for symbol := range balances {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	parts := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		parts = append(parts, fmt.Sprintf("%s %s", balances[symbol], symbol))
	}

	text := prefix + "Your balance: " + strings.Join(parts, ", ") + "."

	if _, err := d.records.MarkTransaction(ctx, id, repository.TxStatusPending, repository.TxStatusConfirmed, nil); err != nil {
		d.logs.Errorw("failed to mark balance record", "id", id, "error", err)
	}

	return d.acknowledge(ctx, id, msg, text, false), nil
}

func (d *Dispatcher) executeSend(ctx context.Context, id string, msg InboundMessage, sender repository.Wallet, parsed intent.Intent, prefix string) (Ack, error) {
	err := d.records.UpdateTransaction(ctx, id, map[string]any{
		"to_phone": parsed.Recipient,
		"amount":   parsed.Amount.String(),
		"asset":    parsed.Asset.Symbol,
	})
	if err != nil {
		d.logs.Errorw("failed to update record with intent", "id", id, "error", err)
	}

	amount := currency.FormatAmount(parsed.Amount, parsed.Asset)
	ref := RecordID(msg.Channel, msg.MessageID)

	recipient, err := d.directory.Lookup(ctx, parsed.Recipient)
	switch {
	case err == nil:
		txHash, err := d.chain.Transfer(ctx, sender, recipient.Address, parsed.Amount, parsed.Asset, ref)
		if err != nil {
			return d.sendFailure(ctx, id, msg, parsed, amount, err), nil
		}

		if _, err := d.records.MarkTransaction(ctx, id, repository.TxStatusPending, repository.TxStatusSubmitted, map[string]any{
			"chain_tx_hash": txHash,
		}); err != nil {
			d.logs.Errorw("failed to mark record submitted", "id", id, "error", err)
		}

		text := prefix + fmt.Sprintf("Sending %s %s to %s. We will confirm shortly.", amount, parsed.Asset.Symbol, parsed.Recipient)
		return Ack{ToPhone: msg.FromPhone, Text: text, Pending: true}, nil

	case errors.Is(err, wallet.ErrWalletNotFound):
		claim, err := d.escrow.LockForUnknownRecipient(ctx, sender, parsed.Recipient, parsed.Amount, parsed.Asset, ref)
		if err != nil {
			return d.sendFailure(ctx, id, msg, parsed, amount, err), nil
		}

		if _, err := d.records.MarkTransaction(ctx, id, repository.TxStatusPending, repository.TxStatusSubmitted, map[string]any{
			"chain_tx_hash": claim.LockTxHash,
		}); err != nil {
			d.logs.Errorw("failed to mark record submitted", "id", id, "error", err)
		}

		text := prefix + fmt.Sprintf(
			"Sending %s %s to %s. They have no wallet yet, so the funds are held until they message us (expires %s).",
			amount, parsed.Asset.Symbol, parsed.Recipient, claim.ExpiresAt.Format("Jan 2"))
		return Ack{ToPhone: msg.FromPhone, Text: text, Pending: true}, nil

	default:
		d.logs.Errorw("failed to look up recipient", "id", id, "error", err)
		return d.finalize(ctx, id, msg, unavailableText), nil
	}
}

// sendFailure maps the chain failure taxonomy onto user-facing text. Only a
// timeout leaves the outcome open; everything else is terminal here.
func (d *Dispatcher) sendFailure(ctx context.Context, id string, msg InboundMessage, parsed intent.Intent, amount string, err error) Ack {
	d.logs.Errorw("send execution failed", "id", id, "error", err)

	switch {
	case errors.Is(err, chain.ErrInsufficientFunds):
		return d.finalize(ctx, id, msg, fmt.Sprintf("You do not have enough %s to send %s %s.", parsed.Asset.Symbol, amount, parsed.Asset.Symbol))
	case errors.Is(err, chain.ErrTimeout):
		// ambiguous: mark submitted without a hash and tell the user the
		// result is pending; reconciliation settles it, never a resubmit
		if _, markErr := d.records.MarkTransaction(ctx, id, repository.TxStatusPending, repository.TxStatusSubmitted, nil); markErr != nil {
			d.logs.Errorw("failed to mark timed-out record", "id", id, "error", markErr)
		}
		return d.acknowledge(ctx, id, msg, "Your transfer is taking longer than expected. We will confirm the result shortly.", true)
	case errors.Is(err, chain.ErrChainUnavailable):
		return d.finalize(ctx, id, msg, unavailableText)
	default:
		return d.finalize(ctx, id, msg, fmt.Sprintf("Your transfer of %s %s could not be completed.", amount, parsed.Asset.Symbol))
	}
}

// finalize marks a record failed and acknowledged in one step, for every
// early exit that never reached the chain.
func (d *Dispatcher) finalize(ctx context.Context, id string, msg InboundMessage, text string) Ack {
	if _, err := d.records.MarkTransaction(ctx, id, repository.TxStatusPending, repository.TxStatusFailed, nil); err != nil {
		d.logs.Errorw("failed to mark record failed", "id", id, "error", err)
	}

	return d.acknowledge(ctx, id, msg, text, false)
}

func (d *Dispatcher) acknowledge(ctx context.Context, id string, msg InboundMessage, text string, pending bool) Ack {
	if _, err := d.records.MarkAcknowledged(ctx, id, text); err != nil {
		d.logs.Errorw("failed to mark record acknowledged", "id", id, "error", err)
	}

	return Ack{ToPhone: msg.FromPhone, Text: text, Pending: pending}
}

// replayAck answers a duplicate delivery with the original response without
// re-running any side effects.
func (d *Dispatcher) replayAck(ctx context.Context, id string, msg InboundMessage) (Ack, error) {
	record, err := d.records.GetTransaction(ctx, id)
	if err != nil {
		return Ack{}, fmt.Errorf("read replayed record: %w", err)
	}

	d.logs.Infow("duplicate message replayed", "id", id, "channel", msg.Channel)

	text := record.ResponseText
	if text == "" {
		text = processingText
	}

	return Ack{
		ToPhone: msg.FromPhone,
		Text:    text,
		Pending: record.Status == repository.TxStatusPending || record.Status == repository.TxStatusSubmitted,
	}, nil
}

func claimNote(released int, amounts map[string]string) string {
	if released == 0 {
		return ""
	}

	parts := make([]string, 0, len(amounts))
	for symbol, amount := range amounts {
		parts = append(parts, fmt.Sprintf("%s %s", amount, symbol))
	}
	sort.Strings(parts)

	return fmt.Sprintf("Funds held for you have been released: %s. ", strings.Join(parts, ", "))
}

func formatRetry(retryAfter time.Duration) string {
	rounded := retryAfter.Round(time.Minute)
	if rounded < time.Minute {
		rounded = time.Minute
	}
	return rounded.String()
}
